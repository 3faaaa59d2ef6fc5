package octree

// pointSource holds either a borrowed Container (the caller's, referenced
// for the tree's lifetime) or an owned snapshot taken at Initialize time.
// Exactly one of the two fields is active; which one is decided once, at
// construction, never flipped afterward.
type pointSource[P any] struct {
	owned    []P
	borrowed Container[P]
}

func borrowedSource[P any](c Container[P]) pointSource[P] {
	return pointSource[P]{borrowed: c}
}

func ownedSource[P any](c Container[P]) pointSource[P] {
	n := c.Len()
	owned := make([]P, n)
	for i := 0; i < n; i++ {
		owned[i] = c.At(i)
	}
	return pointSource[P]{owned: owned}
}

func (s pointSource[P]) At(i Index) P {
	if s.owned != nil {
		return s.owned[i]
	}
	return s.borrowed.At(int(i))
}

func (s pointSource[P]) Len() int {
	if s.owned != nil {
		return len(s.owned)
	}
	return s.borrowed.Len()
}

