// Package chart parses the Unicode full emoji list HTML into an ordered
// stream of category, subcategory, and glyph-row events. The chart is the
// authority for category names and ordering; the categorizer consumes the
// stream and owns all nesting validation.
package chart

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
)

// ErrMalformedChart marks a chart document that cannot be processed at
// all. Row-level anomalies inside a parseable chart are skipped instead.
var ErrMalformedChart = errors.New("malformed emoji chart")

// EventKind discriminates chart events.
type EventKind int

const (
	// BeginCategory opens a top-level category ("bighead" heading).
	BeginCategory EventKind = iota
	// BeginSubcategory opens a subcategory ("mediumhead" heading).
	BeginSubcategory
	// Row carries the raw glyph text of one emoji row.
	Row
)

// Event is one element of the chart stream. Text is the title-cased
// heading for category events and the raw glyph cell text for rows.
type Event struct {
	Kind EventKind
	Text string
}

// Walk streams the chart's rows in document order, calling visit for each
// event. A non-nil error from visit stops the walk and is returned.
//
// Each table row is classified by its first element child: a th with
// class "bighead" or "mediumhead" becomes a category or subcategory
// event; any other row contributes a Row event if it has a descendant
// cell with class "chars", and is skipped otherwise. Headings with an
// unknown class are skipped too.
func Walk(r io.Reader, visit func(Event) error) error {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedChart, err)
	}

	var visitErr error
	doc.Find("tr").EachWithBreak(func(_ int, tr *goquery.Selection) bool {
		first := tr.Children().First()
		if goquery.NodeName(first) == "th" {
			switch first.AttrOr("class", "") {
			case "bighead":
				visitErr = visit(Event{Kind: BeginCategory, Text: TitleCase(first.Text())})
			case "mediumhead":
				visitErr = visit(Event{Kind: BeginSubcategory, Text: TitleCase(first.Text())})
			}
			return visitErr == nil
		}
		chars := tr.Find(".chars").First()
		if chars.Length() == 0 {
			return true
		}
		visitErr = visit(Event{Kind: Row, Text: chars.Text()})
		return visitErr == nil
	})
	return visitErr
}

// TitleCase converts a chart heading like "face-smiling" into
// "Face Smiling": hyphens become spaces, each word's first codepoint is
// uppercased, the rest is preserved.
func TitleCase(s string) string {
	words := strings.Fields(strings.ReplaceAll(s, "-", " "))
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
