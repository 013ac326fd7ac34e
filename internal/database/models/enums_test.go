package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTeam_CanProducePart(t *testing.T) {
	teamTypes := []TeamType{TeamTypeWing, TeamTypeBody, TeamTypeTail, TeamTypeAvionics, TeamTypeAssembly}

	for _, tt := range teamTypes {
		team := &Team{TeamType: tt}
		for _, pt := range RequiredPartTypes {
			want := tt != TeamTypeAssembly && string(tt) == string(pt)
			assert.Equal(t, want, team.CanProducePart(pt), "%s team producing %s", tt, pt)
		}
	}

	assert.False(t, (&Team{TeamType: "engine"}).CanProducePart(PartTypeWing))
	assert.False(t, (&Team{TeamType: TeamTypeWing}).CanProducePart("Wing"))
	var nilTeam *Team
	assert.False(t, nilTeam.CanProducePart(PartTypeWing))
}

func TestAssemblyStatus_Transitions(t *testing.T) {
	assert.True(t, AssemblyStatusInProgress.CanTransitionTo(AssemblyStatusCompleted))
	assert.True(t, AssemblyStatusInProgress.CanTransitionTo(AssemblyStatusCancelled))
	assert.False(t, AssemblyStatusInProgress.CanTransitionTo(AssemblyStatusInProgress))
	assert.False(t, AssemblyStatus("paused").CanTransitionTo(AssemblyStatusCompleted))

	for _, terminal := range []AssemblyStatus{AssemblyStatusCompleted, AssemblyStatusCancelled} {
		assert.True(t, terminal.IsTerminal())
		for _, next := range []AssemblyStatus{AssemblyStatusInProgress, AssemblyStatusCompleted, AssemblyStatusCancelled} {
			assert.False(t, terminal.CanTransitionTo(next), "%s -> %s", terminal, next)
		}
	}
}

func TestEnumValidation(t *testing.T) {
	for _, at := range AircraftTypes {
		assert.True(t, at.IsValid())
	}
	assert.False(t, AircraftType("tb2").IsValid())
	assert.False(t, PartType("engine").IsValid())
	assert.True(t, TeamTypeAssembly.IsValid())
	assert.True(t, AssemblyActionRemovedPart.IsValid())
	assert.False(t, AssemblyAction("deleted").IsValid())
}

func TestPart_UsageState(t *testing.T) {
	part := &Part{}
	assert.True(t, part.IsAvailable())

	part.IsInAssembly = true
	assert.True(t, part.IsInUse())
	assert.False(t, part.IsAvailable())

	part = &Part{IsRecycled: true}
	assert.False(t, part.IsInUse())
	assert.False(t, part.IsAvailable())
}
