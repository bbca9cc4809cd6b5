package guard

type GateState int

const (
	GatePending GateState = iota
	GateAllowed
	GatePrompt
)

func (s GateState) String() string {
	switch s {
	case GatePending:
		return "pending"
	case GateAllowed:
		return "allowed"
	case GatePrompt:
		return "prompt"
	default:
		return "unknown"
	}
}

// Prompt is what an authenticated-only view shows. When State is GatePrompt
// the view offers SignIn and Back as explicit choices.
type Prompt struct {
	State  GateState
	SignIn string
	Back   string
}

// LoginGate requires only that someone is signed in. It never redirects.
type LoginGate struct {
	back string
}

func NewLoginGate(backRoute string) *LoginGate {
	if backRoute == "" {
		backRoute = "/"
	}
	return &LoginGate{back: backRoute}
}

func (g *LoginGate) Evaluate(id *Identity, loading bool) Prompt {
	switch {
	case loading:
		return Prompt{State: GatePending}
	case id == nil:
		return Prompt{State: GatePrompt, SignIn: LoginRoute, Back: g.back}
	default:
		return Prompt{State: GateAllowed}
	}
}
