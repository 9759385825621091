// Package render assembles the cheat sheet document from the categorized
// tree. The layout is plain GitHub markdown: a table of contents, one
// section per category with an optional sub-TOC, and per-subcategory
// tables pairing each glyph with its shortcodes.
package render

import (
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/hsqStephenZhang/emoji-cheat-sheet/internal/emoji"
)

// Resource names an upstream dataset in the provenance line.
type Resource struct {
	Name string
	URL  string
}

// Markdown renders the categorized tree into a single markdown document.
type Markdown struct {
	columns   int
	tocTitle  string
	resources []Resource
	policy    *bluemonday.Policy
}

// NewMarkdown creates a renderer. columns is the number of ico/shortcode
// pairs per table row; resources are credited in the document preamble.
// Shortcode ids come from a remote endpoint and the document is rendered
// as HTML downstream, so ids pass through a strict sanitation policy.
func NewMarkdown(columns int, tocTitle string, resources []Resource) *Markdown {
	if columns < 1 {
		columns = 1
	}
	return &Markdown{
		columns:   columns,
		tocTitle:  tocTitle,
		resources: resources,
		policy:    bluemonday.StrictPolicy(),
	}
}

// Render produces the full document.
func (m *Markdown) Render(title string, tree *emoji.Categorized) string {
	var lines []string

	lines = append(lines, fmt.Sprintf("# %s", title), "", "")
	if len(m.resources) == 2 {
		lines = append(lines, fmt.Sprintf(
			"This cheat sheet is automatically generated from [%s](%s) and [%s](%s).",
			m.resources[0].Name, m.resources[0].URL,
			m.resources[1].Name, m.resources[1].URL,
		), "")
	}

	categories := tree.Categories()
	lines = append(lines, fmt.Sprintf("## %s", m.tocTitle), "")
	lines = append(lines, m.toc(categories)...)
	lines = append(lines, "")

	tocAnchor := fmt.Sprintf("[top](#%s)", AnchorID(m.tocTitle))
	for _, category := range categories {
		lines = append(lines, fmt.Sprintf("### %s", category), "")

		subs := tree.Subcategories(category)
		titles := subs.Titles()
		if len(titles) > 1 {
			lines = append(lines, m.toc(titles)...)
			lines = append(lines, "")
		}

		categoryAnchor := fmt.Sprintf("[top](#%s)", AnchorID(category))
		for _, sub := range titles {
			if sub != "" {
				lines = append(lines, fmt.Sprintf("#### %s", sub), "")
			}
			lines = append(lines, m.table(subs.Groups(sub), categoryAnchor, tocAnchor)...)
			lines = append(lines, "")
		}
	}

	return strings.Join(lines, "\n")
}

func (m *Markdown) toc(headers []string) []string {
	entries := make([]string, 0, len(headers))
	for _, header := range headers {
		entries = append(entries, fmt.Sprintf("- [%s](#%s)", header, AnchorID(header)))
	}
	return entries
}

// table emits one markdown table. Each data row holds up to m.columns
// glyph/shortcode pairs, framed by "top" links on both edges; alias
// shortcodes stack under the primary with <br /> breaks.
func (m *Markdown) table(groups []emoji.IDGroup, leftText, rightText string) []string {
	var lines []string

	cols := m.columns
	if len(groups) < cols {
		cols = len(groups)
	}
	header := "| "
	delimiter := "| - "
	for i := 0; i < cols; i++ {
		header += "| ico | shortcode "
		delimiter += "| :-: | - "
	}
	header += "| |"
	delimiter += "| - |"
	lines = append(lines, header, delimiter)

	for i := 0; i < len(groups); i += m.columns {
		row := fmt.Sprintf("| %s ", leftText)
		for j := 0; j < m.columns; j++ {
			if i+j < len(groups) {
				ids := groups[i+j]
				primary := m.policy.Sanitize(ids[0])
				row += fmt.Sprintf("| :%s: | `:%s:` ", primary, primary)
				for _, alias := range ids[1:] {
					row += fmt.Sprintf("<br /> `:%s:` ", m.policy.Sanitize(alias))
				}
			} else if len(groups) > m.columns {
				row += "| | "
			}
		}
		row += fmt.Sprintf("| %s |", rightText)
		lines = append(lines, row)
	}

	return lines
}

// AnchorID derives the GitHub-style anchor id of a markdown header:
// lowercase, spaces to hyphens, everything else non-alphanumeric removed.
func AnchorID(header string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(header) {
		switch {
		case r == ' ':
			b.WriteByte('-')
		case r == '-' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
		}
	}
	return b.String()
}
