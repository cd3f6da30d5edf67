package campaign

// BaseScorePolicy turns submitted results into an evaluatee's base score.
// It is a named strategy so campaigns can swap the weighting without touching
// the aggregation itself. A nil return means no submissions to score yet.
type BaseScorePolicy interface {
	Name() string
	BaseScore(rows []SubmissionRow) *float64
}

// MeanPolicy is the default: the arithmetic mean of every submitted total.
type MeanPolicy struct{}

func (MeanPolicy) Name() string {
	return "mean_of_submitted"
}

func (MeanPolicy) BaseScore(rows []SubmissionRow) *float64 {
	var total float64
	count := 0
	for _, row := range rows {
		if row.Result == nil {
			continue
		}
		total += row.Result.TotalScore
		count++
	}
	if count == 0 {
		return nil
	}
	mean := total / float64(count)
	return &mean
}

// RelationWeightedPolicy averages submitted totals per relation, then combines
// the relation means under the configured weights. Weights are renormalized
// over the relations actually present, so a missing relation redistributes its
// share instead of dragging the score down.
type RelationWeightedPolicy struct {
	Weights map[string]float64
}

// DefaultRelationWeights leans on the leader's judgement while keeping self
// and peer input meaningful.
var DefaultRelationWeights = map[string]float64{
	RelationSelf:   20,
	RelationLeader: 50,
	RelationPeer:   20,
	RelationMember: 10,
}

func (RelationWeightedPolicy) Name() string {
	return "relation_weighted_mean"
}

func (p RelationWeightedPolicy) BaseScore(rows []SubmissionRow) *float64 {
	weights := p.Weights
	if len(weights) == 0 {
		weights = DefaultRelationWeights
	}

	totals := make(map[string]float64)
	counts := make(map[string]int)
	for _, row := range rows {
		if row.Result == nil {
			continue
		}
		totals[row.Relation] += row.Result.TotalScore
		counts[row.Relation]++
	}
	if len(counts) == 0 {
		return nil
	}

	var weightSum, weighted float64
	for relation, count := range counts {
		weight, ok := weights[relation]
		if !ok || weight <= 0 {
			continue
		}
		weightSum += weight
		weighted += weight * (totals[relation] / float64(count))
	}
	if weightSum == 0 {
		// Every submitted relation is unweighted; fall back to a plain mean.
		return MeanPolicy{}.BaseScore(rows)
	}
	score := weighted / weightSum
	return &score
}
