package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoginGate(t *testing.T) {
	g := NewLoginGate("/cart")

	assert.Equal(t, Prompt{State: GatePending}, g.Evaluate(nil, true))
	assert.Equal(t, Prompt{State: GateAllowed}, g.Evaluate(&Identity{Email: "a@x.com"}, false))
	assert.Equal(t, Prompt{State: GatePrompt, SignIn: "/login", Back: "/cart"}, g.Evaluate(nil, false))
}

func TestLoginGate_DefaultBack(t *testing.T) {
	assert.Equal(t, "/", NewLoginGate("").Evaluate(nil, false).Back)
}

func TestGateState_String(t *testing.T) {
	assert.Equal(t, "prompt", GatePrompt.String())
	assert.Equal(t, "allowed", GateAllowed.String())
	assert.Equal(t, "pending", GatePending.String())
	assert.Equal(t, "unknown", GateState(9).String())
}
