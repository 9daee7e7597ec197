package domain

import "testing"

func TestParseStatusAcceptsAllStages(t *testing.T) {
	for _, value := range []string{"NEW", "IN_PROGRESS", "WAITING_FINANCIAL", "WON", "LOST"} {
		status, err := ParseStatus(value)
		if err != nil {
			t.Fatalf("ParseStatus(%q): %v", value, err)
		}
		if string(status) != value {
			t.Fatalf("ParseStatus(%q) = %q", value, status)
		}
	}
}

func TestParseStatusRejectsUnknown(t *testing.T) {
	if _, err := ParseStatus("ARCHIVED"); err == nil {
		t.Fatal("expected error for unknown status")
	}
}

func TestIsOpen(t *testing.T) {
	open := []Status{StatusNew, StatusInProgress, StatusWaitingFinancial}
	for _, status := range open {
		if !status.IsOpen() {
			t.Errorf("expected %s to be open", status)
		}
	}
	for _, status := range []Status{StatusWon, StatusLost} {
		if status.IsOpen() {
			t.Errorf("expected %s to be closed", status)
		}
	}
}
