package emoji

// Find locates the first group containing id, in document order, and
// returns its category and subcategory. ok is false if id is absent
// (unknown, or dropped for lack of a chart row).
func (c *Categorized) Find(id string) (category, subcategory string, group IDGroup, ok bool) {
	for _, cat := range c.order {
		subs := c.categories[cat]
		for _, sub := range subs.order {
			for _, g := range subs.groups[sub] {
				for _, candidate := range g {
					if candidate == id {
						return cat, sub, g, true
					}
				}
			}
		}
	}
	return "", "", nil, false
}
