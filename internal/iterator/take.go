package iterator

type takeIterator struct {
	it        Iterator
	remaining int
	valid     bool
}

// Take returns a cursor yielding at most n elements of it. After the n-th
// successful advance the cursor reports exhaustion without touching the
// upstream again, and Current/CurrentIndex revert to nil even though the
// upstream may still be positioned.
func Take(it Iterator, n int) Iterator {
	return &takeIterator{it: it, remaining: n}
}

func (t *takeIterator) Next() bool {
	if t.remaining <= 0 {
		t.valid = false
		return false
	}
	if !t.it.Next() {
		t.remaining = 0
		t.valid = false
		return false
	}
	t.remaining--
	t.valid = true
	return true
}

func (t *takeIterator) Current() any {
	if !t.valid {
		return nil
	}
	return t.it.Current()
}

func (t *takeIterator) CurrentIndex() any {
	if !t.valid {
		return nil
	}
	return t.it.CurrentIndex()
}

type takeWhileIterator struct {
	it    Iterator
	pred  func(any) bool
	done  bool
	valid bool
}

// TakeWhile returns a cursor yielding elements while pred holds. The first
// failing element terminates the cursor permanently; it never resumes even if
// later upstream elements would satisfy the predicate.
func TakeWhile(it Iterator, pred func(any) bool) Iterator {
	return &takeWhileIterator{it: it, pred: pred}
}

func (t *takeWhileIterator) Next() bool {
	if t.done {
		return false
	}
	if !t.it.Next() || !t.pred(t.it.Current()) {
		t.done = true
		t.valid = false
		return false
	}
	t.valid = true
	return true
}

func (t *takeWhileIterator) Current() any {
	if !t.valid {
		return nil
	}
	return t.it.Current()
}

func (t *takeWhileIterator) CurrentIndex() any {
	if !t.valid {
		return nil
	}
	return t.it.CurrentIndex()
}
