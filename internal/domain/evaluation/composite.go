package evaluation

import "math"

// ComputeAnnualComposite combines one subject's evaluations for a year into a
// weighted yearly score. Weights must sum to 100; the caller validates that
// before invocation and the calculator does not re-check it. Input statuses are
// expected to be already normalized via ClassifyStatus.
//
// Component scores stay nil when no qualifying evaluation exists, so a genuine
// zero score is distinguishable from "no data yet". A nil component contributes
// 0 to the total.
func ComputeAnnualComposite(evals []Evaluation, weights WeightConfig) Composite {
	var first, second *float64
	var peerTotal float64
	peerCount := 0

	for _, e := range evals {
		if e.Status != StatusCompleted || e.Score == nil {
			continue
		}
		switch {
		case e.Type == TypeSelf && e.Period == PeriodFirstHalf:
			if first == nil {
				first = e.Score
			}
		case e.Type == TypeSelf && e.Period == PeriodSecondHalf:
			if second == nil {
				second = e.Score
			}
		case e.Type == TypePeer:
			peerTotal += *e.Score
			peerCount++
		}
	}

	var peerAvg *float64
	if peerCount > 0 {
		avg := peerTotal / float64(peerCount)
		peerAvg = &avg
	}

	total := scoreOrZero(first)*weights.FirstHalf/100 +
		scoreOrZero(second)*weights.SecondHalf/100 +
		scoreOrZero(peerAvg)*weights.PeerReview/100

	return Composite{
		FirstHalfScore:     first,
		SecondHalfScore:    second,
		PeerReviewAvgScore: peerAvg,
		TotalScore:         int(math.Floor(total + 0.5)),
	}
}

func scoreOrZero(score *float64) float64 {
	if score == nil {
		return 0
	}
	return *score
}
