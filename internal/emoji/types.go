package emoji

import "fmt"

// Literal is what a GitHub shortcode resolves to: either a sequence of
// Unicode codepoints or a custom image asset hosted by GitHub itself.
type Literal struct {
	codepoints []rune
	customName string
}

// UnicodeLiteral builds a Literal from a non-empty codepoint sequence.
func UnicodeLiteral(codepoints []rune) Literal {
	return Literal{codepoints: codepoints}
}

// CustomLiteral builds a Literal for a non-Unicode asset (e.g. "octocat").
func CustomLiteral(name string) Literal {
	return Literal{customName: name}
}

// IsUnicode reports whether the literal is a Unicode codepoint sequence.
func (l Literal) IsUnicode() bool { return l.customName == "" }

// Codepoints returns the codepoint sequence of a Unicode literal.
func (l Literal) Codepoints() []rune { return l.codepoints }

// CustomName returns the asset name of a custom literal.
func (l Literal) CustomName() string { return l.customName }

func (l Literal) String() string {
	if l.IsUnicode() {
		return fmt.Sprintf("unicode(%q)", string(l.codepoints))
	}
	return fmt.Sprintf("custom(%s)", l.customName)
}

// Entry pairs a shortcode id with its classified literal. The shortcode
// source yields entries in document order, and that order is what group
// ordering is derived from.
type Entry struct {
	ID      string
	Literal Literal
}

// IDGroup is an ordered, non-empty list of shortcode ids that render to
// the same glyph. The first id is the primary, the rest are aliases.
type IDGroup []string

// Subcategories is an insertion-ordered mapping from subcategory title to
// the id groups filed under it.
type Subcategories struct {
	order  []string
	groups map[string][]IDGroup
}

// Titles returns subcategory titles in first-appearance order.
func (s *Subcategories) Titles() []string { return s.order }

// Groups returns the id groups of a subcategory, in chart row order.
func (s *Subcategories) Groups(title string) []IDGroup { return s.groups[title] }

// Len returns the number of subcategories.
func (s *Subcategories) Len() int { return len(s.order) }

func (s *Subcategories) ensure(title string) {
	if s.groups == nil {
		s.groups = make(map[string][]IDGroup)
	}
	if _, ok := s.groups[title]; !ok {
		s.groups[title] = nil
		s.order = append(s.order, title)
	}
}

func (s *Subcategories) append(title string, group IDGroup) {
	s.ensure(title)
	s.groups[title] = append(s.groups[title], group)
}

// Categorized is the final two-level tree: category -> subcategory ->
// id groups. Both levels preserve first-appearance order, which drives
// the table of contents of the rendered document.
type Categorized struct {
	order      []string
	categories map[string]*Subcategories
}

// Categories returns category titles in first-appearance order.
func (c *Categorized) Categories() []string { return c.order }

// Subcategories returns the subcategory map of a category, or nil if the
// category does not exist.
func (c *Categorized) Subcategories(category string) *Subcategories {
	return c.categories[category]
}

// Len returns the number of categories.
func (c *Categorized) Len() int { return len(c.order) }

func (c *Categorized) ensure(category string) *Subcategories {
	if c.categories == nil {
		c.categories = make(map[string]*Subcategories)
	}
	sub, ok := c.categories[category]
	if !ok {
		sub = &Subcategories{}
		c.categories[category] = sub
		c.order = append(c.order, category)
	}
	return sub
}
