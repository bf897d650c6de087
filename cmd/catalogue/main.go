package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/cognicore/farahidi/pkg/farahidi/catalogue"
	"github.com/cognicore/farahidi/pkg/farahidi/internalerr"
)

func main() {
	var (
		validatePath  = flag.String("validate", "", "Validate a catalogue YAML file and exit")
		cataloguePath = flag.String("catalogue", "", "Catalogue YAML to list (default: built-in)")
		meterName     = flag.String("meter", "", "Only list the named meter")
	)
	flag.Parse()

	if *validatePath != "" {
		cat, err := catalogue.LoadFile(*validatePath)
		if err != nil {
			log.Fatalf("%s: %v", *validatePath, err)
		}
		fmt.Printf("%s: ok (%d feet, %d meters, %d templates)\n",
			*validatePath, len(cat.Feet()), len(cat.Meters()), len(cat.Templates()))
		return
	}

	cat := catalogue.Default()
	if *cataloguePath != "" {
		var err error
		cat, err = catalogue.LoadFile(*cataloguePath)
		if err != nil {
			log.Fatal(err)
		}
	}

	if err := list(os.Stdout, cat, *meterName); err != nil {
		log.Fatal(err)
	}
}

func list(w io.Writer, cat *catalogue.Catalogue, meterName string) error {
	if meterName == "" {
		fmt.Fprintln(w, "Feet:")
		for _, f := range cat.Feet() {
			fmt.Fprintf(w, "  %-12s %-8s %s\n", f.Name, f.Pattern, f.Arabic)
			for _, v := range f.Variants {
				fmt.Fprintf(w, "      %-8s %s (%s)\n", v.Pattern, v.License.Name, v.License.Severity)
			}
			if len(f.Related) > 0 {
				fmt.Fprintf(w, "      related: %s\n", strings.Join(f.Related, ", "))
			}
		}
		fmt.Fprintln(w)
	}

	found := false
	fmt.Fprintln(w, "Meters:")
	for _, m := range cat.Meters() {
		if meterName != "" && m.Name != meterName {
			continue
		}
		found = true
		fmt.Fprintf(w, "  %s (%s)\n", m.Name, m.Arabic)
		for _, form := range m.Forms {
			fmt.Fprintf(w, "      %-16s %s\n", form.Form, strings.Join(form.Names(), " "))
		}
	}

	if meterName != "" && !found {
		return fmt.Errorf("meter %q: %w", meterName, internalerr.ErrNotFound)
	}
	return nil
}
