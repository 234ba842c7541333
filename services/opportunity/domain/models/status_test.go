package models

import "testing"

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from Status
		to   Status
		want bool
	}{
		{"draft to submitted", StatusDraft, StatusSubmitted, true},
		{"submitted to matching", StatusSubmitted, StatusMatchingInProgress, true},
		{"matching to matches found", StatusMatchingInProgress, StatusMatchesFound, true},
		{"matches found to architect selected", StatusMatchesFound, StatusArchitectSelected, true},
		{"architect selected to completed", StatusArchitectSelected, StatusCompleted, true},
		{"draft to cancelled", StatusDraft, StatusCancelled, true},
		{"submitted to cancelled", StatusSubmitted, StatusCancelled, true},
		{"matching to cancelled", StatusMatchingInProgress, StatusCancelled, true},
		{"matches found to cancelled", StatusMatchesFound, StatusCancelled, true},
		{"architect selected to cancelled", StatusArchitectSelected, StatusCancelled, true},
		{"cancelled to draft", StatusCancelled, StatusDraft, true},
		{"cancelled to submitted", StatusCancelled, StatusSubmitted, true},
		{"cancelled to matching", StatusCancelled, StatusMatchingInProgress, true},

		{"draft skips to matching", StatusDraft, StatusMatchingInProgress, false},
		{"draft skips to completed", StatusDraft, StatusCompleted, false},
		{"submitted back to draft", StatusSubmitted, StatusDraft, false},
		{"matching back to submitted", StatusMatchingInProgress, StatusSubmitted, false},
		{"completed to cancelled", StatusCompleted, StatusCancelled, false},
		{"completed to anything", StatusCompleted, StatusDraft, false},
		{"cancelled to completed", StatusCancelled, StatusCompleted, false},
		{"cancelled to cancelled", StatusCancelled, StatusCancelled, false},
		{"self transition draft", StatusDraft, StatusDraft, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
				t.Fatalf("%s.CanTransitionTo(%s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{
		"DRAFT", "SUBMITTED", "MATCHING_IN_PROGRESS",
		"MATCHES_FOUND", "ARCHITECT_SELECTED", "COMPLETED", "CANCELLED",
	} {
		if _, err := ParseStatus(valid); err != nil {
			t.Errorf("ParseStatus(%q) unexpected error: %v", valid, err)
		}
	}

	for _, invalid := range []string{"", "draft", "OPEN", "Draft", "DELETED"} {
		if _, err := ParseStatus(invalid); err == nil {
			t.Errorf("ParseStatus(%q) expected error, got nil", invalid)
		}
	}
}

func TestStatusPredicates(t *testing.T) {
	if !StatusDraft.IsModifiable() {
		t.Error("DRAFT should be modifiable")
	}
	for _, s := range []Status{
		StatusSubmitted, StatusMatchingInProgress, StatusMatchesFound,
		StatusArchitectSelected, StatusCompleted, StatusCancelled,
	} {
		if s.IsModifiable() {
			t.Errorf("%s should not be modifiable", s)
		}
	}
	if !StatusCompleted.IsFinal() || !StatusCancelled.IsFinal() {
		t.Error("COMPLETED and CANCELLED should be final")
	}
	if StatusDraft.IsFinal() || StatusArchitectSelected.IsFinal() {
		t.Error("DRAFT and ARCHITECT_SELECTED should not be final")
	}
	if !StatusSubmitted.IsActive() || StatusCancelled.IsActive() {
		t.Error("SUBMITTED should be active, CANCELLED should not")
	}
}
