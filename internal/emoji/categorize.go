package emoji

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/hsqStephenZhang/emoji-cheat-sheet/internal/chart"
	"github.com/hsqStephenZhang/emoji-cheat-sheet/internal/metrics"
)

// CustomCategory is the synthetic top-level category that collects
// shortcodes backed by GitHub-hosted images instead of Unicode glyphs.
// It has a single subcategory whose title is empty.
const CustomCategory = "GitHub Custom Emoji"

// Categorizer joins the classified shortcode entries with the chart's
// event stream, producing the ordered category tree. Feed it every event
// from one chart walk via Apply, then call Result exactly once.
type Categorizer struct {
	keyToIDs     map[string]IDGroup
	customGroups []IDGroup

	tree       *Categorized
	stack      []string
	matchedKey map[string]bool
	unicodeIDs int
}

// NewCategorizer builds the inverted indexes from the shortcode entries.
// Entry order is preserved: ids sharing a key keep their source order
// within the group, and custom groups keep first-appearance order.
func NewCategorizer(entries []Entry) *Categorizer {
	c := &Categorizer{
		keyToIDs:   make(map[string]IDGroup),
		tree:       &Categorized{},
		matchedKey: make(map[string]bool),
	}
	customIndex := make(map[string]int)
	for _, e := range entries {
		if e.Literal.IsUnicode() {
			key := e.Literal.Key()
			c.keyToIDs[key] = append(c.keyToIDs[key], e.ID)
			c.unicodeIDs++
			metrics.EntriesClassified.WithLabelValues("unicode").Inc()
			continue
		}
		name := e.Literal.CustomName()
		idx, ok := customIndex[name]
		if !ok {
			idx = len(c.customGroups)
			customIndex[name] = idx
			c.customGroups = append(c.customGroups, nil)
		}
		c.customGroups[idx] = append(c.customGroups[idx], e.ID)
		metrics.EntriesClassified.WithLabelValues("custom").Inc()
	}
	return c
}

// Apply processes one chart event.
//
// Category events manage a stack of depth at most two: a new category
// clears it, a new subcategory replaces the previous one. A repeated
// title continues the existing bucket. Rows are normalized, looked up in
// the key index, and appended to the current subcategory as one IDGroup;
// rows with no matching shortcode, or rows arriving before a subcategory
// is open, are skipped.
func (c *Categorizer) Apply(ev chart.Event) error {
	switch ev.Kind {
	case chart.BeginCategory:
		c.stack = c.stack[:0]
		c.stack = append(c.stack, ev.Text)
		c.tree.ensure(ev.Text)
	case chart.BeginSubcategory:
		if len(c.stack) == 0 {
			return fmt.Errorf("%w: subcategory %q before any category", chart.ErrMalformedChart, ev.Text)
		}
		if len(c.stack) > 1 {
			c.stack = c.stack[:1]
		}
		c.stack = append(c.stack, ev.Text)
		c.tree.ensure(c.stack[0]).ensure(ev.Text)
	case chart.Row:
		metrics.ChartRows.Inc()
		if len(c.stack) < 2 {
			// Preamble or summary row outside any subcategory.
			return nil
		}
		key := NormalizeKey(ev.Text)
		ids, ok := c.keyToIDs[key]
		if !ok {
			metrics.ChartRowsUnmatched.Inc()
			return nil
		}
		c.matchedKey[key] = true
		metrics.ChartRowsMatched.Inc()
		c.tree.ensure(c.stack[0]).append(c.stack[1], ids)
	default:
		return fmt.Errorf("unknown chart event kind %d", ev.Kind)
	}
	return nil
}

// Result finalizes the tree: the custom bucket, if any entries exist, is
// appended as the last category. Unicode shortcodes whose key never
// appeared in the chart are dropped; the drop is counted and logged but
// not an error.
func (c *Categorizer) Result() *Categorized {
	dropped := 0
	for key, ids := range c.keyToIDs {
		if c.matchedKey[key] {
			continue
		}
		dropped += len(ids)
		log.Debug().Strs("ids", ids).Str("key", fmt.Sprintf("%+q", key)).
			Msg("Shortcode key absent from chart, dropping")
	}
	if dropped > 0 {
		metrics.ShortcodesDropped.Add(float64(dropped))
		log.Info().Int("dropped", dropped).Int("total_unicode", c.unicodeIDs).
			Msg("Some Unicode shortcodes had no chart row")
	}

	if len(c.customGroups) > 0 {
		sub := c.tree.ensure(CustomCategory)
		for _, group := range c.customGroups {
			sub.append("", group)
		}
	}
	return c.tree
}
