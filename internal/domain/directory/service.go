package directory

import (
	"context"
	"log/slog"
)

// PlaceholderName renders for ids the directory cannot resolve. A missing
// member is never fatal; the row still shows with a placeholder identity.
const PlaceholderName = "Unknown"

type Service struct {
	store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store}
}

func (s *Service) Member(ctx context.Context, memberID string) Member {
	m, err := s.store.Get(ctx, memberID)
	if err != nil {
		slog.Warn("member lookup failed", "memberId", memberID, "err", err)
		return Member{ID: memberID, Name: PlaceholderName}
	}
	return m
}
