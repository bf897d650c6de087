package prosody

// Foot names as they appear in the built-in catalogue.
const (
	FootFaulun     = "fa'ūlun"
	FootMafailun   = "mafāʿīlun"
	FootMafaalun   = "mafāʿilun"
	FootFailatun   = "fāʿilātun"
	FootFailun     = "fāʿilun"
	FootMustafilun = "mustafʿilun"
	FootMutafailun = "mutafāʿilun"
	FootMufaalatun = "mufāʿalatun"
	FootMafulatu   = "mafʿūlātu"
)

// Meter names as they appear in the built-in catalogue.
const (
	MeterTawil     = "al-Ṭawīl"
	MeterMadid     = "al-Madīd"
	MeterBasit     = "al-Basīṭ"
	MeterWafir     = "al-Wāfir"
	MeterKamil     = "al-Kāmil"
	MeterHazaj     = "al-Hazaj"
	MeterRajaz     = "al-Rajaz"
	MeterRamal     = "al-Ramal"
	MeterSari      = "al-Sarīʿ"
	MeterMunsarih  = "al-Munsariḥ"
	MeterKhafif    = "al-Khafīf"
	MeterMudari    = "al-Muḍāriʿ"
	MeterMuqtadab  = "al-Muqtaḍab"
	MeterMujtathth = "al-Mujtathth"
	MeterMutaqarib = "al-Mutaqārib"
	MeterMutadarik = "al-Mutadārik"
)

// License names produced by the positional classifier.
const (
	LicenseKhabn        = "khabn"
	LicenseTayy         = "ṭayy"
	LicenseIqama        = "iqāma"
	LicenseTashil       = "tashīl"
	LicenseUnclassified = "unclassified-break"
)
