package parsing

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StripHTML extracts plain text from an HTML fragment, collapsing runs of
// whitespace. Job descriptions copied from posting sites frequently arrive
// as HTML; the scorer expects plain text.
//
// Input that is not parseable HTML is returned unchanged.
func StripHTML(input string) string {
	if !strings.Contains(input, "<") {
		return input
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(input))
	if err != nil {
		return input
	}

	doc.Find("script, style").Remove()
	return strings.Join(strings.Fields(doc.Text()), " ")
}
