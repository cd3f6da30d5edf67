package monitoring

const (
	FilterAll        = "all"
	FilterComplete   = "complete"
	FilterIncomplete = "incomplete"

	SortName           = "name"
	SortSubmissionDesc = "submission_desc"
	SortScoreDesc      = "score_desc"
	SortScoreAsc       = "score_asc"

	SeverityNormal   = "NORMAL"
	SeverityWarn     = "WARN"
	SeverityCritical = "CRITICAL"
)
