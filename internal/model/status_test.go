package model

import "testing"

func TestSubmissionState_IsBusy(t *testing.T) {
	tests := []struct {
		state    SubmissionState
		expected bool
	}{
		{StateIdle, false},
		{StateValidating, true},
		{StateSubmitting, true},
		{StateCompleted, true},
	}

	for _, test := range tests {
		result := test.state.IsBusy()
		if result != test.expected {
			t.Errorf("SubmissionState(%s).IsBusy() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestSubmissionState_String(t *testing.T) {
	state := StateSubmitting
	expected := "Submitting"
	result := state.String()

	if result != expected {
		t.Errorf("SubmissionState.String() = %s, expected %s", result, expected)
	}
}

func TestFieldStatus_String(t *testing.T) {
	tests := []struct {
		status   FieldStatus
		expected string
	}{
		{FieldStatusPristine, "Pristine"},
		{FieldStatusValid, "Valid"},
		{FieldStatusInvalid, "Invalid"},
	}

	for _, test := range tests {
		if test.status.String() != test.expected {
			t.Errorf("FieldStatus.String() = %s, expected %s", test.status.String(), test.expected)
		}
	}
}
