package campaign

// AggregateEvaluatee reconciles one evaluatee's assignment and result records
// into an EvaluateeSummary shell (adjustment fields left for the adjustment
// layer to fill in).
//
// Assignments and results arrive from independently-updated collections, so
// the merge is explicit: assignment rows come first, a result attaching to a
// known assignment promotes a stale PENDING status to SUBMITTED, and a result
// with no matching assignment synthesizes its own row instead of erroring.
func AggregateEvaluatee(assignments []Assignment, results []Result, evaluateeID string, policy BaseScorePolicy) EvaluateeSummary {
	rows := make([]SubmissionRow, 0, len(assignments))
	byAssignment := make(map[string]int)

	for _, a := range assignments {
		if a.EvaluateeID != evaluateeID {
			continue
		}
		byAssignment[a.ID] = len(rows)
		rows = append(rows, SubmissionRow{
			AssignmentID: a.ID,
			EvaluatorID:  a.EvaluatorID,
			Relation:     a.Relation,
			Status:       a.Status,
			Progress:     a.Progress,
			SubmittedAt:  a.SubmittedAt,
		})
	}

	for i := range results {
		r := results[i]
		if r.EvaluateeID != evaluateeID {
			continue
		}
		if idx, ok := byAssignment[r.AssignmentID]; ok {
			rows[idx].Result = &r
			if rows[idx].Status == AssignmentStatusPending {
				rows[idx].Status = AssignmentStatusSubmitted
			}
			continue
		}
		// Orphan result: submission recorded before (or without) its
		// assignment status catching up. Results carry no relation of their
		// own, so the rater is assumed to be a peer.
		submittedAt := r.SubmittedAt
		rows = append(rows, SubmissionRow{
			AssignmentID: r.AssignmentID,
			EvaluatorID:  r.EvaluatorID,
			Relation:     RelationPeer,
			Status:       AssignmentStatusSubmitted,
			Progress:     100,
			SubmittedAt:  &submittedAt,
			Result:       &r,
		})
	}

	summary := EvaluateeSummary{
		ID:              evaluateeID,
		AssignmentCount: len(rows),
		LeaderSubmitted: true,
		Rows:            rows,
	}
	for _, row := range rows {
		if rowSubmitted(row) {
			summary.SubmittedCount++
		}
		if row.Relation == RelationLeader {
			summary.LeaderAssignmentCount++
			if !rowSubmitted(row) {
				summary.LeaderSubmitted = false
			}
		}
	}
	if policy == nil {
		policy = MeanPolicy{}
	}
	summary.BaseScore = policy.BaseScore(rows)
	return summary
}

func rowSubmitted(row SubmissionRow) bool {
	return row.Status == AssignmentStatusSubmitted || row.Result != nil
}
