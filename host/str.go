package host

// Str is a shared mutable string object. Interned feature kinds and
// qualifier keys are handles to the same Str, so comparing handles with ==
// tells whether two fields share one interned value.
type Str struct {
	value string
}

// NewStr creates a fresh host string object.
func NewStr(value string) *Str {
	return &Str{value: value}
}

// Value returns the current string content.
func (s *Str) Value() string {
	return s.value
}

// Set replaces the string content. The change is visible through every
// handle to this object.
func (s *Str) Set(value string) {
	s.value = value
}

func (s *Str) String() string {
	return s.value
}
