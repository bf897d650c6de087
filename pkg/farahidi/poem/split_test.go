package poem

import (
	"reflect"
	"strings"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Hemistich
	}{
		{
			name: "arabic comma",
			text: "قِفَا نَبْكِ، مِنْ ذِكْرَى",
			want: []Hemistich{
				{0, Sadr, "قِفَا نَبْكِ"},
				{0, Ajuz, "مِنْ ذِكْرَى"},
			},
		},
		{
			name: "asterisk",
			text: "a b * c d",
			want: []Hemistich{{0, Sadr, "a b"}, {0, Ajuz, "c d"}},
		},
		{
			name: "wide gap",
			text: "a b    c",
			want: []Hemistich{{0, Sadr, "a b"}, {0, Ajuz, "c"}},
		},
		{
			name: "tab",
			text: "a\tb c",
			want: []Hemistich{{0, Sadr, "a"}, {0, Ajuz, "b c"}},
		},
		{
			name: "midpoint of even word count",
			text: "w1 w2 w3 w4",
			want: []Hemistich{{0, Sadr, "w1 w2"}, {0, Ajuz, "w3 w4"}},
		},
		{
			name: "midpoint of odd word count",
			text: "w1 w2 w3",
			want: []Hemistich{{0, Sadr, "w1"}, {0, Ajuz, "w2 w3"}},
		},
		{
			name: "trailing marker falls back to midpoint",
			text: "w1 w2،",
			want: []Hemistich{{0, Sadr, "w1"}, {0, Ajuz, "w2"}},
		},
		{
			name: "single word",
			text: "w1",
			want: []Hemistich{{0, Single, "w1"}},
		},
		{
			name: "blank lines are skipped",
			text: "\n  a * b  \r\n\n c * d \n",
			want: []Hemistich{
				{0, Sadr, "a"}, {0, Ajuz, "b"},
				{1, Sadr, "c"}, {1, Ajuz, "d"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Split(tt.text); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestSplitEmpty(t *testing.T) {
	if got := Split("  \n\n "); len(got) != 0 {
		t.Errorf("Expected no hemistichs, got %+v", got)
	}
}

func TestFromHTML(t *testing.T) {
	doc := `<html><head><style>p { color: red }</style></head>
<body>
<p>line one<br>line two</p>
<div>  line three </div>
<script>var x = 1;</script>
<ul><li>four</li></ul>
</body></html>`

	got, err := FromHTML(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("FromHTML: %v", err)
	}
	want := "line one\nline two\nline three\nfour"
	if got != want {
		t.Errorf("FromHTML = %q, want %q", got, want)
	}
}

func TestFromHTMLPlainText(t *testing.T) {
	got, err := FromHTML(strings.NewReader("just text"))
	if err != nil {
		t.Fatalf("FromHTML: %v", err)
	}
	if got != "just text" {
		t.Errorf("FromHTML = %q", got)
	}
}
