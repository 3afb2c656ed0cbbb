package iterator

type concatIterator struct {
	its []Iterator
	pos int
}

// Concat returns a cursor that traverses its children in order, moving to the
// next child only after the current one is exhausted. The overall position
// sequence is the concatenation of each child's own positions, not a
// renumbering.
func Concat(its ...Iterator) Iterator {
	return &concatIterator{its: its}
}

func (c *concatIterator) Next() bool {
	for c.pos < len(c.its) {
		if c.its[c.pos].Next() {
			return true
		}
		c.pos++
	}
	return false
}

func (c *concatIterator) Current() any {
	if c.pos >= len(c.its) {
		return nil
	}
	return c.its[c.pos].Current()
}

func (c *concatIterator) CurrentIndex() any {
	if c.pos >= len(c.its) {
		return nil
	}
	return c.its[c.pos].CurrentIndex()
}
