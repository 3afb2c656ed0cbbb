package iterator

type whereIterator struct {
	it   Iterator
	pred func(any) bool
}

// Where returns a cursor yielding only the upstream elements satisfying pred.
// Each Next may advance the upstream several times, so the amortized cost is
// not O(1) per advance. Positions of surviving elements are preserved, not
// renumbered.
func Where(it Iterator, pred func(any) bool) Iterator {
	return &whereIterator{it: it, pred: pred}
}

func (w *whereIterator) Next() bool {
	for w.it.Next() {
		if w.pred(w.it.Current()) {
			return true
		}
	}
	return false
}

func (w *whereIterator) Current() any      { return w.it.Current() }
func (w *whereIterator) CurrentIndex() any { return w.it.CurrentIndex() }

type selectIterator struct {
	it    Iterator
	fn    func(any) any
	valid bool
}

// Select returns a cursor applying fn to each upstream element. fn is applied
// on each Current read rather than memoized; it must be pure.
func Select(it Iterator, fn func(any) any) Iterator {
	return &selectIterator{it: it, fn: fn}
}

func (s *selectIterator) Next() bool {
	s.valid = s.it.Next()
	return s.valid
}

func (s *selectIterator) Current() any {
	if !s.valid {
		return nil
	}
	return s.fn(s.it.Current())
}

func (s *selectIterator) CurrentIndex() any {
	if !s.valid {
		return nil
	}
	return s.it.CurrentIndex()
}

type selectManyIterator struct {
	it    Iterator
	fn    func(any) []any
	buf   []any
	pos   int
	label any
	valid bool
}

// SelectMany returns a cursor that expands each upstream element into the
// ordered sequence fn returns, draining that sub-sequence before advancing
// the upstream again. Every replacement element reports the upstream
// element's position; positions are not densified. Empty expansions drop the
// upstream element entirely.
func SelectMany(it Iterator, fn func(any) []any) Iterator {
	return &selectManyIterator{it: it, fn: fn, pos: -1}
}

func (s *selectManyIterator) Next() bool {
	for {
		if s.pos+1 < len(s.buf) {
			s.pos++
			s.valid = true
			return true
		}
		if !s.it.Next() {
			s.valid = false
			return false
		}
		s.buf = s.fn(s.it.Current())
		s.pos = -1
		s.label = s.it.CurrentIndex()
	}
}

func (s *selectManyIterator) Current() any {
	if !s.valid {
		return nil
	}
	return s.buf[s.pos]
}

func (s *selectManyIterator) CurrentIndex() any {
	if !s.valid {
		return nil
	}
	return s.label
}
