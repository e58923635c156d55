package estimate

import "errors"

// View is the selection/document screen state.
type View int

const (
	Editing View = iota
	DocumentGenerated
)

var ErrNothingSelected = errors.New("estimate requires at least one selected item")

func (v View) String() string {
	if v == DocumentGenerated {
		return "document_generated"
	}
	return "editing"
}

// Generate moves Editing to DocumentGenerated. It is refused with no selected items.
func (v View) Generate(itemCount int) (View, error) {
	if itemCount <= 0 {
		return v, ErrNothingSelected
	}
	return DocumentGenerated, nil
}

// Back always returns to Editing. Selections are left as they were.
func (v View) Back() View {
	return Editing
}
