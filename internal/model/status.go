package model

// FieldStatus represents the validation status of a single form field
type FieldStatus string

const (
	// FieldStatusPristine means the field has not been validated yet
	FieldStatusPristine FieldStatus = "Pristine"

	// FieldStatusValid means the field passed its last validation
	FieldStatusValid FieldStatus = "Valid"

	// FieldStatusInvalid means the field failed its last validation
	FieldStatusInvalid FieldStatus = "Invalid"
)

// String returns the string representation of FieldStatus
func (fs FieldStatus) String() string {
	return string(fs)
}

// SubmissionState represents the state of the submission machine
type SubmissionState string

const (
	// StateIdle means no submission is in flight
	StateIdle SubmissionState = "Idle"

	// StateValidating means the synchronous full-form validation pass is running
	StateValidating SubmissionState = "Validating"

	// StateSubmitting means the request and progress stream are in flight
	StateSubmitting SubmissionState = "Submitting"

	// StateCompleted means a terminal server outcome is being dispatched
	StateCompleted SubmissionState = "Completed"
)

// String returns the string representation of SubmissionState
func (ss SubmissionState) String() string {
	return string(ss)
}

// IsBusy returns true if a submission is in flight and a new one must not start
func (ss SubmissionState) IsBusy() bool {
	return ss == StateValidating || ss == StateSubmitting || ss == StateCompleted
}
