package scene

// TransitionState represents where the Manager is in a transition cycle.
// Idle is both the initial state and the terminal state of each cycle.
type TransitionState int

const (
	StateIdle TransitionState = iota
	StateFadingOut
	StateFadingIn
)

// String returns the string representation of the transition state
func (s TransitionState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateFadingOut:
		return "FadingOut"
	case StateFadingIn:
		return "FadingIn"
	default:
		return "Unknown"
	}
}

// requestKind identifies the stack mutation a pending request asks for.
type requestKind int

const (
	requestNone requestKind = iota
	requestPush
	requestPop
	requestReplace
)

func (k requestKind) String() string {
	switch k {
	case requestNone:
		return "None"
	case requestPush:
		return "Push"
	case requestPop:
		return "Pop"
	case requestReplace:
		return "Replace"
	default:
		return "Unknown"
	}
}

// request is the single-slot pending transition: only the most recently
// recorded request is honored when the next tick processes it.
type request struct {
	kind   requestKind
	scene  Scene
	params *Params
}
