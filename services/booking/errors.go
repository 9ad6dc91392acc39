package booking

// Stage identifies where in the booking lifecycle a submission currently
// is, or where it failed. A failure halts the flow; there is no automatic
// retry, the user resubmits from idle.
type Stage string

const (
	StageIdle              Stage = "idle"
	StageValidating        Stage = "validating"
	StageQuoting           Stage = "quoting"
	StageCreatingIntent    Stage = "creatingIntent"
	StageConfirmingCard    Stage = "confirmingCard"
	StageConfirmingBooking Stage = "confirmingBooking"
	StageSucceeded         Stage = "succeeded"
	StageFailed            Stage = "failed"
)

// FlowError tags an error with the stage it occurred in. The message is the
// underlying error's verbatim so the UI can display it unchanged.
type FlowError struct {
	Stage Stage
	Err   error
}

func (e *FlowError) Error() string {
	return e.Err.Error()
}

func (e *FlowError) Unwrap() error {
	return e.Err
}

func failAt(stage Stage, err error) *FlowError {
	return &FlowError{Stage: stage, Err: err}
}
