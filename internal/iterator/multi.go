package iterator

type multiIterator struct {
	its   []Iterator
	done  bool
	valid bool
}

// Multi returns a cursor advancing all children in lockstep. Next returns
// true only if every child advanced; the moment any child exhausts the cursor
// latches exhausted and stays there on repeated calls. Current and
// CurrentIndex collect each child's value and position into ordered slices.
// With zero children the cursor is vacuously complete.
func Multi(its ...Iterator) Iterator {
	return &multiIterator{its: its}
}

func (m *multiIterator) Next() bool {
	if m.done || len(m.its) == 0 {
		m.done = true
		m.valid = false
		return false
	}
	for _, it := range m.its {
		if !it.Next() {
			m.done = true
			m.valid = false
			return false
		}
	}
	m.valid = true
	return true
}

func (m *multiIterator) Current() any {
	if !m.valid {
		return nil
	}
	out := make([]any, len(m.its))
	for i, it := range m.its {
		out[i] = it.Current()
	}
	return out
}

func (m *multiIterator) CurrentIndex() any {
	if !m.valid {
		return nil
	}
	out := make([]any, len(m.its))
	for i, it := range m.its {
		out[i] = it.CurrentIndex()
	}
	return out
}
