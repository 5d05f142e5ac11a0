package pipeline

// State tracks where an asset job is in its lifecycle.
type State string

const (
	StateQueued     State = "queued"
	StateImporting  State = "importing"
	StateScaffolded State = "scaffolded"
	StateRigBinding State = "rig_binding"
	StateExporting  State = "exporting"
	StateDone       State = "done"
)

// validTransitions defines allowed state transitions.
// Key is the "from" state, value is the list of valid "to" states.
var validTransitions = map[State][]State{
	StateQueued:     {StateImporting},
	StateImporting:  {StateScaffolded, StateDone},
	StateScaffolded: {StateRigBinding, StateExporting, StateDone},
	StateRigBinding: {StateExporting, StateDone},
	StateExporting:  {StateDone},
	StateDone:       {},
}

// CanTransitionTo returns true if transitioning from s to target is valid.
func (s State) CanTransitionTo(target State) bool {
	valid, ok := validTransitions[s]
	if !ok {
		return false
	}
	for _, v := range valid {
		if v == target {
			return true
		}
	}
	return false
}

// IsTerminal returns true if this state has no outgoing transitions.
func (s State) IsTerminal() bool {
	return s == StateDone
}

// Outcome is the terminal classification of one asset job.
type Outcome string

const (
	// OutcomeRigged: rig-binding and the primary-format export both succeeded.
	OutcomeRigged Outcome = "rigged_export"

	// OutcomeFallback: the primary-format export succeeded without (or
	// despite failed) rig-binding.
	OutcomeFallback Outcome = "fallback_export"

	// OutcomeFailed: no export attempt produced the primary format.
	OutcomeFailed Outcome = "failed"
)
