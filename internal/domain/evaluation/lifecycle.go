package evaluation

// ClassifyStatus derives the display status of one evaluation from its stored
// status and date window. Dates are ISO YYYY-MM-DD strings, so they compare
// lexicographically. A stored "completed" status is terminal and never reverts.
// Missing dates default to in-progress rather than failing.
func ClassifyStatus(e Evaluation, today string) string {
	if e.Status == StatusCompleted {
		return StatusCompleted
	}
	if e.StartDate == "" || e.EndDate == "" || today == "" {
		return StatusInProgress
	}
	if e.EndDate < today {
		return StatusCompleted
	}
	if e.StartDate > today {
		return StatusScheduled
	}
	return StatusInProgress
}
