package pipeline

import "log/slog"

// Job is one input file under conversion. Only the pipeline mutates it; its
// terminal outcome decides which store the source file moves to.
type Job struct {
	SourcePath string
	Name       string // sanitized canonical name
	State      State
	Outcome    Outcome
	Reason     string // set iff Outcome == OutcomeFailed
}

// NewJob creates a queued job for the given source file.
func NewJob(sourcePath string) *Job {
	return &Job{
		SourcePath: sourcePath,
		Name:       CanonicalName(sourcePath),
		State:      StateQueued,
	}
}

// transition advances the job state, logging (not aborting) on an invalid
// transition so a sequencing bug cannot take the batch down.
func (j *Job) transition(to State, log *slog.Logger) {
	if !j.State.CanTransitionTo(to) {
		log.Warn("invalid job state transition", "job", j.Name, "from", j.State, "to", to)
	}
	j.State = to
}

// fail marks the job terminally failed with the given reason.
func (j *Job) fail(reason string, log *slog.Logger) {
	j.transition(StateDone, log)
	j.Outcome = OutcomeFailed
	j.Reason = reason
}

// succeed marks the job terminally successful.
func (j *Job) succeed(outcome Outcome, log *slog.Logger) {
	j.transition(StateDone, log)
	j.Outcome = outcome
	j.Reason = ""
}
