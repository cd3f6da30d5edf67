package evaluation

import "testing"

func TestClassifyStatusCompletedIsSticky(t *testing.T) {
	e := Evaluation{Status: StatusCompleted, StartDate: "2026-09-01", EndDate: "2026-09-30"}
	for _, today := range []string{"2026-01-01", "2026-09-15", "2027-06-01", ""} {
		if got := ClassifyStatus(e, today); got != StatusCompleted {
			t.Fatalf("expected completed for today=%q, got %s", today, got)
		}
	}
}

func TestClassifyStatusByDateWindow(t *testing.T) {
	e := Evaluation{StartDate: "2026-03-01", EndDate: "2026-03-31"}

	if got := ClassifyStatus(e, "2026-02-15"); got != StatusScheduled {
		t.Fatalf("expected scheduled before window, got %s", got)
	}
	if got := ClassifyStatus(e, "2026-03-01"); got != StatusInProgress {
		t.Fatalf("expected in-progress on start date, got %s", got)
	}
	if got := ClassifyStatus(e, "2026-03-31"); got != StatusInProgress {
		t.Fatalf("expected in-progress on end date, got %s", got)
	}
	if got := ClassifyStatus(e, "2026-04-01"); got != StatusCompleted {
		t.Fatalf("expected completed after window, got %s", got)
	}
}

func TestClassifyStatusMissingDatesFailOpen(t *testing.T) {
	cases := []Evaluation{
		{},
		{StartDate: "2026-03-01"},
		{EndDate: "2026-03-31"},
	}
	for _, e := range cases {
		if got := ClassifyStatus(e, "2026-03-15"); got != StatusInProgress {
			t.Fatalf("expected in-progress for %+v, got %s", e, got)
		}
	}
	e := Evaluation{StartDate: "2026-03-01", EndDate: "2026-03-31"}
	if got := ClassifyStatus(e, ""); got != StatusInProgress {
		t.Fatalf("expected in-progress for empty today, got %s", got)
	}
}
