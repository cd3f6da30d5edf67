package monitoring

import (
	"context"
	"fmt"

	"evalhub/internal/domain/adjustment"
	"evalhub/internal/domain/campaign"
	"evalhub/internal/domain/directory"
	"evalhub/internal/domain/evaluation"
)

// Service assembles dashboard rows from the independently-stored collections:
// assignments and results are aggregated per evaluatee, saved adjustments are
// applied on top, identities resolved, and the result projected for display.
type Service struct {
	Evaluations *evaluation.Service
	Campaigns   *campaign.Service
	Adjustments *adjustment.Service
	Directory   *directory.Service
}

func NewService(evaluations *evaluation.Service, campaigns *campaign.Service, adjustments *adjustment.Service, dir *directory.Service) *Service {
	return &Service{Evaluations: evaluations, Campaigns: campaigns, Adjustments: adjustments, Directory: dir}
}

type ViewQuery struct {
	Filter            string
	SortKey           string
	LowScoreThreshold *float64
}

func (s *Service) Dashboard(ctx context.Context, evaluationID string, query ViewQuery) ([]Row, error) {
	summaries, err := s.summaries(ctx, evaluationID)
	if err != nil {
		return nil, err
	}
	return ProjectView(summaries, query.Filter, query.SortKey, query.LowScoreThreshold), nil
}

// EvaluateeDetail returns one evaluatee's summary with gate decisions for
// both adjustment layers, for the correction panel.
type EvaluateeDetail struct {
	Summary         campaign.EvaluateeSummary `json:"summary"`
	ManagerDecision adjustment.Decision       `json:"managerDecision"`
	HQDecision      adjustment.Decision       `json:"hqDecision"`
}

func (s *Service) Detail(ctx context.Context, evaluationID, evaluateeID string) (EvaluateeDetail, error) {
	eval, err := s.Evaluations.Get(ctx, evaluationID)
	if err != nil {
		return EvaluateeDetail{}, err
	}

	assignments, err := s.Campaigns.Assignments(ctx, evaluationID)
	if err != nil {
		return EvaluateeDetail{}, fmt.Errorf("load assignments: %w", err)
	}
	results, err := s.Campaigns.Results(ctx, evaluationID)
	if err != nil {
		return EvaluateeDetail{}, fmt.Errorf("load results: %w", err)
	}
	adjustments, err := s.Adjustments.ListByEvaluation(ctx, evaluationID)
	if err != nil {
		return EvaluateeDetail{}, fmt.Errorf("load adjustments: %w", err)
	}

	summary := s.Campaigns.Summarize(assignments, results, evaluateeID)
	summary = adjustment.Apply(summary, adjustments)
	member := s.Directory.Member(ctx, evaluateeID)
	summary.Name = member.Name
	summary.Team = member.Team

	return EvaluateeDetail{
		Summary:         summary,
		ManagerDecision: adjustment.CheckPermission(summary, adjustment.RoleManager, eval.HQAdjustmentRule, eval.AllowHQFinalOverride),
		HQDecision:      adjustment.CheckPermission(summary, adjustment.RoleHQ, eval.HQAdjustmentRule, eval.AllowHQFinalOverride),
	}, nil
}

func (s *Service) summaries(ctx context.Context, evaluationID string) ([]campaign.EvaluateeSummary, error) {
	assignments, err := s.Campaigns.Assignments(ctx, evaluationID)
	if err != nil {
		return nil, fmt.Errorf("load assignments: %w", err)
	}
	results, err := s.Campaigns.Results(ctx, evaluationID)
	if err != nil {
		return nil, fmt.Errorf("load results: %w", err)
	}
	adjustments, err := s.Adjustments.ListByEvaluation(ctx, evaluationID)
	if err != nil {
		return nil, fmt.Errorf("load adjustments: %w", err)
	}
	evaluateeIDs, err := s.Campaigns.EvaluateeIDs(ctx, evaluationID)
	if err != nil {
		return nil, fmt.Errorf("load evaluatees: %w", err)
	}

	summaries := make([]campaign.EvaluateeSummary, 0, len(evaluateeIDs))
	for _, evaluateeID := range evaluateeIDs {
		summary := s.Campaigns.Summarize(assignments, results, evaluateeID)
		summary = adjustment.Apply(summary, adjustments)
		member := s.Directory.Member(ctx, evaluateeID)
		summary.Name = member.Name
		summary.Team = member.Team
		summary.Rows = nil // dashboard rows carry counts, not line items
		summaries = append(summaries, summary)
	}
	return summaries, nil
}
