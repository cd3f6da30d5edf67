package evaluation

type Evaluation struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Type                 string   `json:"type"`
	Period               string   `json:"period"`
	Status               string   `json:"status"`
	StartDate            string   `json:"startDate"`
	EndDate              string   `json:"endDate"`
	Score                *float64 `json:"score"`
	Progress             float64  `json:"progress"`
	HQAdjustmentRule     string   `json:"hqAdjustmentRule"`
	AllowHQFinalOverride bool     `json:"allowHqFinalOverride"`
}

type WeightConfig struct {
	FirstHalf  float64 `json:"firstHalf"`
	SecondHalf float64 `json:"secondHalf"`
	PeerReview float64 `json:"peerReview"`
}

type Composite struct {
	FirstHalfScore     *float64 `json:"firstHalfScore"`
	SecondHalfScore    *float64 `json:"secondHalfScore"`
	PeerReviewAvgScore *float64 `json:"peerReviewAvgScore"`
	TotalScore         int      `json:"totalScore"`
}
