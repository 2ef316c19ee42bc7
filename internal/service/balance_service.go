package service

import (
	"context"

	zlog "github.com/rs/zerolog/log"

	"github.com/Cheertaboi/facility-pricing-service/internal/xerrors"
)

type BalanceRepo interface {
	TopUp(ctx context.Context, userID string, amount float64) (float64, error)
}

type BalanceService struct {
	repo BalanceRepo
}

func NewBalanceService(repo BalanceRepo) *BalanceService {
	return &BalanceService{repo: repo}
}

// TopUp credits amount to the user and returns the new balance.
func (s *BalanceService) TopUp(ctx context.Context, userID string, amount float64) (float64, error) {
	if userID == "" {
		return 0, xerrors.InvalidArgument("userId is required")
	}
	if amount <= 0 {
		return 0, xerrors.InvalidArgument("amount must be greater than zero")
	}

	balance, err := s.repo.TopUp(ctx, userID, amount)
	if err != nil {
		return 0, err
	}
	zlog.Ctx(ctx).Info().Str("user_id", userID).Float64("amount", amount).Float64("balance", balance).Msg("balance topped up")
	return balance, nil
}
