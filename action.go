package paint

import "fmt"

// ActionKind identifies a layer-panel request.
type ActionKind int

const (
	// ActionAdd adds a layer on top named Action.Name ("Layer N" if empty).
	ActionAdd ActionKind = iota
	// ActionDelete removes the active layer.
	ActionDelete
	// ActionMoveUp moves layer Action.Index one step up.
	ActionMoveUp
	// ActionMoveDown moves layer Action.Index one step down.
	ActionMoveDown
	// ActionSetOpacity sets the opacity of layer Action.Index to Action.Opacity.
	ActionSetOpacity
	// ActionSetVisible sets the visibility of layer Action.Index to Action.Visible.
	ActionSetVisible
	// ActionRename renames layer Action.Index to Action.Name.
	ActionRename
	// ActionSetActive makes layer Action.Index active.
	ActionSetActive
)

var actionKindNames = [...]string{
	ActionAdd:        "Add",
	ActionDelete:     "Delete",
	ActionMoveUp:     "MoveUp",
	ActionMoveDown:   "MoveDown",
	ActionSetOpacity: "SetOpacity",
	ActionSetVisible: "SetVisible",
	ActionRename:     "Rename",
	ActionSetActive:  "SetActive",
}

// String returns the action kind name.
func (k ActionKind) String() string {
	if k >= 0 && int(k) < len(actionKindNames) {
		return actionKindNames[k]
	}
	return "Unknown"
}

// Action is a request coming from a layer panel. Only the fields relevant
// to Kind are read.
type Action struct {
	Kind    ActionKind
	Index   int
	Name    string
	Opacity float64
	Visible bool
}

// Apply performs a layer-panel action. Stale requests, such as an index
// that no longer exists, fail with an error from the ErrNoOp family and
// leave the stack unchanged.
func (s *LayerStack) Apply(a Action) error {
	switch a.Kind {
	case ActionAdd:
		_, err := s.AddLayer(a.Name)
		return err
	case ActionDelete:
		return s.RemoveLayer(s.active)
	case ActionMoveUp:
		return s.MoveLayerUp(a.Index)
	case ActionMoveDown:
		return s.MoveLayerDown(a.Index)
	case ActionSetOpacity:
		return s.SetLayerOpacity(a.Index, a.Opacity)
	case ActionSetVisible:
		return s.SetLayerVisible(a.Index, a.Visible)
	case ActionRename:
		return s.RenameLayer(a.Index, a.Name)
	case ActionSetActive:
		return s.SetActive(a.Index)
	default:
		return fmt.Errorf("%w: unknown layer action %d", ErrNoOp, int(a.Kind))
	}
}
