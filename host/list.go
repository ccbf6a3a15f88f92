package host

// List is a shared mutable ordered collection of host handles. Element
// order is significant and duplicates are allowed.
type List[E any] struct {
	items []E
}

// NewList creates a list holding the given elements.
func NewList[E any](items ...E) *List[E] {
	l := &List[E]{}
	l.items = append(l.items, items...)
	return l
}

// Len returns the number of elements.
func (l *List[E]) Len() int {
	return len(l.items)
}

// At returns the element at index i, or false if out of range.
func (l *List[E]) At(i int) (E, bool) {
	if i < 0 || i >= len(l.items) {
		var zero E
		return zero, false
	}
	return l.items[i], true
}

// Items returns the live backing slice.
func (l *List[E]) Items() []E {
	return l.items
}

// Append adds elements at the end.
func (l *List[E]) Append(items ...E) {
	l.items = append(l.items, items...)
}

// Set replaces the element at index i. Reports whether i was in range.
func (l *List[E]) Set(i int, v E) bool {
	if i < 0 || i >= len(l.items) {
		return false
	}
	l.items[i] = v
	return true
}

// Remove deletes the element at index i. Reports whether i was in range.
func (l *List[E]) Remove(i int) bool {
	if i < 0 || i >= len(l.items) {
		return false
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	return true
}
