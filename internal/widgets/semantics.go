package widgets

// Semantics is the accessibility tree a widget exposes, with roles and state
// flags that assistive tooling can query.
type Semantics struct {
	ID       string
	Role     string
	Label    string
	Expanded bool
	Selected bool
	Disabled bool
	Invalid  bool
	Modal    bool
	// Controls is the id of the element this one owns, such as a listbox.
	Controls   string
	LabelledBy string
	Children   []Semantics
}

// Find returns the first node with the given role, searching depth first.
func (s Semantics) Find(role string) (Semantics, bool) {
	if s.Role == role {
		return s, true
	}
	for _, child := range s.Children {
		if found, ok := child.Find(role); ok {
			return found, true
		}
	}
	return Semantics{}, false
}
