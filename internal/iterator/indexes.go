package iterator

type indexesIterator struct {
	it    Iterator
	valid bool
}

// Indexes returns a cursor whose values are the positions of it. It is used
// to derive a positional label sequence from an arbitrary value cursor so
// the two stay in lockstep by construction.
func Indexes(it Iterator) Iterator {
	return &indexesIterator{it: it}
}

func (x *indexesIterator) Next() bool {
	x.valid = x.it.Next()
	return x.valid
}

func (x *indexesIterator) Current() any {
	if !x.valid {
		return nil
	}
	return x.it.CurrentIndex()
}

func (x *indexesIterator) CurrentIndex() any {
	if !x.valid {
		return nil
	}
	return x.it.CurrentIndex()
}

// DrainBoth advances it to exhaustion collecting values and positions in one
// pass.
func DrainBoth(it Iterator) (values, indexes []any) {
	for it.Next() {
		values = append(values, it.Current())
		indexes = append(indexes, it.CurrentIndex())
	}
	return values, indexes
}
