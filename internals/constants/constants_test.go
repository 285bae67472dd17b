package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlowFromPath(t *testing.T) {
	f, ok := FlowFromPath("sessions")
	assert.True(t, ok)
	assert.Equal(t, FlowInfoSession, f)

	f, ok = FlowFromPath("orientations")
	assert.True(t, ok)
	assert.Equal(t, FlowOrientation, f)

	_, ok = FlowFromPath("badges")
	assert.False(t, ok)
}

func TestRoles(t *testing.T) {
	assert.True(t, IsValidRole(RoleRecruiter))
	assert.False(t, IsValidRole("user"))
	assert.Contains(t, RoleErrorAdmin("templates"), "templates")
}
