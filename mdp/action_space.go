package mdp

import "fmt"

type Action uint8

const (
	Hit Action = iota
	Stick
)

// Actions is the fixed ordering used for index lookups and argmax tie-breaks.
var Actions = [...]Action{Hit, Stick}

func (a Action) Index() int {
	switch a {
	case Hit:
		return 0
	case Stick:
		return 1
	default:
		panic(fmt.Sprintf("unhandled action: %d", uint8(a)))
	}
}

func (a Action) String() string {
	switch a {
	case Hit:
		return "HIT"
	case Stick:
		return "STICK"
	default:
		return fmt.Sprintf("Action(%d)", uint8(a))
	}
}

func ParseAction(s string) (Action, error) {
	for _, a := range Actions {
		if a.String() == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", s)
}
