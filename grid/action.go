package grid

import (
	"errors"
	"fmt"
)

// Action names an editing operation a client can request.
type Action string

// Structural actions, in toolbar order.
const (
	ActionAddRowAfter     Action = "add-row-after"
	ActionAddRowBefore    Action = "add-row-before"
	ActionAddColumnBefore Action = "add-column-before"
	ActionAddColumnAfter  Action = "add-column-after"
	ActionDeleteColumn    Action = "delete-column"
	ActionDeleteRow       Action = "delete-row"
	ActionTranspose       Action = "transpose"
	ActionReset           Action = "reset"
)

// Actions that need parameters and are handled by the board service.
const (
	ActionToggleWall   Action = "toggle-wall"
	ActionCarveMaze    Action = "carve-maze"
	ActionScatterWalls Action = "scatter-walls"
	ActionResize       Action = "resize"
)

var ErrUnknownAction = errors.New("unknown action")

var structural = []Action{
	ActionAddRowAfter,
	ActionAddRowBefore,
	ActionAddColumnBefore,
	ActionAddColumnAfter,
	ActionDeleteColumn,
	ActionDeleteRow,
	ActionTranspose,
	ActionReset,
}

// Actions returns the structural actions in toolbar order.
func Actions() []Action {
	out := make([]Action, len(structural))
	copy(out, structural)
	return out
}

// IsStructural reports whether a can be applied by Store.Apply.
func (a Action) IsStructural() bool {
	for _, s := range structural {
		if s == a {
			return true
		}
	}
	return false
}

// ParseAction validates an action name.
func ParseAction(s string) (Action, error) {
	a := Action(s)
	if a.IsStructural() {
		return a, nil
	}
	switch a {
	case ActionToggleWall, ActionCarveMaze, ActionScatterWalls, ActionResize:
		return a, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
}
