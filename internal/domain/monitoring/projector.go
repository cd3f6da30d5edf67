package monitoring

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"evalhub/internal/domain/campaign"
)

// Row is one dashboard line: a summary plus presentation hints. The hints
// annotate, they never filter.
type Row struct {
	campaign.EvaluateeSummary
	MissingCount int    `json:"missingCount"`
	Severity     string `json:"severity"`
	IsLowScore   bool   `json:"isLowScore"`
}

// ProjectView filters, annotates and sorts evaluatee summaries for the
// monitoring dashboard. Pure and idempotent; recomputed on every input change.
func ProjectView(summaries []campaign.EvaluateeSummary, filter, sortKey string, lowScoreThreshold *float64) []Row {
	rows := make([]Row, 0, len(summaries))
	for _, s := range summaries {
		if !matchesFilter(s, filter) {
			continue
		}
		rows = append(rows, annotate(s, lowScoreThreshold))
	}
	sortRows(rows, sortKey)
	return rows
}

// An evaluatee with no assignments at all is never complete.
func isComplete(s campaign.EvaluateeSummary) bool {
	return s.AssignmentCount > 0 && s.SubmittedCount == s.AssignmentCount
}

func matchesFilter(s campaign.EvaluateeSummary, filter string) bool {
	switch filter {
	case FilterComplete:
		return isComplete(s)
	case FilterIncomplete:
		return !isComplete(s)
	default:
		return true
	}
}

func annotate(s campaign.EvaluateeSummary, threshold *float64) Row {
	row := Row{EvaluateeSummary: s}
	if missing := s.AssignmentCount - s.SubmittedCount; missing > 0 {
		row.MissingCount = missing
	}
	switch ratio := submissionRatio(s); {
	case ratio < 0.4:
		row.Severity = SeverityCritical
	case ratio < 0.7:
		row.Severity = SeverityWarn
	default:
		row.Severity = SeverityNormal
	}
	row.IsLowScore = threshold != nil && s.FinalScore != nil && *s.FinalScore <= *threshold
	return row
}

func submissionRatio(s campaign.EvaluateeSummary) float64 {
	if s.AssignmentCount == 0 {
		return 0
	}
	return float64(s.SubmittedCount) / float64(s.AssignmentCount)
}

func sortRows(rows []Row, sortKey string) {
	byName := collate.New(language.Korean)
	switch sortKey {
	case SortSubmissionDesc:
		sort.SliceStable(rows, func(i, j int) bool {
			ri, rj := submissionRatio(rows[i].EvaluateeSummary), submissionRatio(rows[j].EvaluateeSummary)
			if ri != rj {
				return ri > rj
			}
			return byName.CompareString(rows[i].Name, rows[j].Name) < 0
		})
	case SortScoreDesc:
		sort.SliceStable(rows, func(i, j int) bool {
			return scoreLess(rows[i].FinalScore, rows[j].FinalScore, true)
		})
	case SortScoreAsc:
		sort.SliceStable(rows, func(i, j int) bool {
			return scoreLess(rows[i].FinalScore, rows[j].FinalScore, false)
		})
	default:
		sort.SliceStable(rows, func(i, j int) bool {
			return byName.CompareString(rows[i].Name, rows[j].Name) < 0
		})
	}
}

// scoreLess orders final scores with nil last regardless of direction.
func scoreLess(a, b *float64, desc bool) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	if desc {
		return *a > *b
	}
	return *a < *b
}
