package iterator

type skipIterator struct {
	it        Iterator
	remaining int
}

// Skip returns a cursor that drops the first n elements of it. The skipped
// elements are consumed lazily on the first Next call; if the upstream
// exhausts during the skip phase the cursor permanently reports no elements.
func Skip(it Iterator, n int) Iterator {
	return &skipIterator{it: it, remaining: n}
}

func (s *skipIterator) Next() bool {
	for s.remaining > 0 {
		s.remaining--
		if !s.it.Next() {
			return false
		}
	}
	return s.it.Next()
}

func (s *skipIterator) Current() any      { return s.it.Current() }
func (s *skipIterator) CurrentIndex() any { return s.it.CurrentIndex() }

type skipWhileIterator struct {
	it       Iterator
	pred     func(any) bool
	skipping bool
}

// SkipWhile returns a cursor that drops elements while pred holds. The first
// element failing the predicate is the first yielded element; past that the
// cursor is a pass-through.
func SkipWhile(it Iterator, pred func(any) bool) Iterator {
	return &skipWhileIterator{it: it, pred: pred, skipping: true}
}

func (s *skipWhileIterator) Next() bool {
	if !s.skipping {
		return s.it.Next()
	}
	for s.it.Next() {
		if !s.pred(s.it.Current()) {
			s.skipping = false
			return true
		}
	}
	return false
}

func (s *skipWhileIterator) Current() any {
	if s.skipping {
		return nil
	}
	return s.it.Current()
}

func (s *skipWhileIterator) CurrentIndex() any {
	if s.skipping {
		return nil
	}
	return s.it.CurrentIndex()
}
