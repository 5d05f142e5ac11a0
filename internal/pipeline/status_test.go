package pipeline

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

// testLogger returns a discard logger for tests.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStateTransitions(t *testing.T) {
	tests := []struct {
		from  State
		to    State
		valid bool
	}{
		{StateQueued, StateImporting, true},
		{StateQueued, StateExporting, false},
		{StateImporting, StateScaffolded, true},
		{StateImporting, StateDone, true},
		{StateScaffolded, StateRigBinding, true},
		{StateScaffolded, StateExporting, true},
		{StateRigBinding, StateExporting, true},
		{StateRigBinding, StateQueued, false},
		{StateExporting, StateDone, true},
		{StateDone, StateQueued, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.valid, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, StateDone.IsTerminal())
	assert.False(t, StateExporting.IsTerminal())
}

func TestJobLifecycle(t *testing.T) {
	j := NewJob("/in/Avatar Test.vrm")
	assert.Equal(t, "Avatar_Test", j.Name)
	assert.Equal(t, StateQueued, j.State)

	j.transition(StateImporting, testLogger())
	j.transition(StateScaffolded, testLogger())
	j.transition(StateExporting, testLogger())
	j.succeed(OutcomeRigged, testLogger())

	assert.Equal(t, StateDone, j.State)
	assert.Equal(t, OutcomeRigged, j.Outcome)
	assert.Empty(t, j.Reason)
}

func TestJobFail(t *testing.T) {
	j := NewJob("/in/broken.vrm")
	j.transition(StateImporting, testLogger())
	j.fail(reasonImportFailed, testLogger())

	assert.Equal(t, StateDone, j.State)
	assert.Equal(t, OutcomeFailed, j.Outcome)
	assert.Equal(t, reasonImportFailed, j.Reason)
}

func TestInvalidTransitionDoesNotBlock(t *testing.T) {
	j := NewJob("/in/a.vrm")
	// A sequencing bug must degrade to a warning, not a stuck job.
	j.transition(StateExporting, testLogger())
	assert.Equal(t, StateExporting, j.State)
}
