package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"ewaste_backend/internal/model"
	"ewaste_backend/internal/repository"

	"github.com/rs/zerolog/log"
)

var (
	ErrRewardNotFound   = errors.New("reward points not found for the selected item")
	ErrEstimateOverflow = errors.New("estimated reward total is too large")
)

// RewardService estimates reward points and maintains the reward table
type RewardService interface {
	Estimate(ctx context.Context, items []model.EstimateItem) (int64, error)
	SeedRewards(ctx context.Context) error
}

type rewardService struct {
	repo repository.RewardRepository
	seed []model.Reward
}

// NewRewardService creates a RewardService seeding the given table
func NewRewardService(repo repository.RewardRepository, seed []model.Reward) RewardService {
	return &rewardService{repo: repo, seed: seed}
}

// Estimate sums quantity*points over items. A single unknown item fails the
// whole estimate.
func (s *rewardService) Estimate(ctx context.Context, items []model.EstimateItem) (int64, error) {
	if len(items) == 0 {
		return 0, nil
	}

	names := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		if _, ok := seen[it.Name]; ok {
			continue
		}
		seen[it.Name] = struct{}{}
		names = append(names, it.Name)
	}

	points, err := s.repo.FindPoints(ctx, names)
	if err != nil {
		return 0, fmt.Errorf("failed to look up rewards: %w", err)
	}

	var total int64
	for _, it := range items {
		p, ok := points[it.Name]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrRewardNotFound, it.Name)
		}
		if p > 0 && it.Quantity > (math.MaxInt64-total)/p {
			return 0, fmt.Errorf("%w: %q x %d", ErrEstimateOverflow, it.Name, it.Quantity)
		}
		total += it.Quantity * p
	}
	return total, nil
}

// SeedRewards upserts the reference table. Safe to run on every start.
func (s *rewardService) SeedRewards(ctx context.Context) error {
	if err := s.repo.Upsert(ctx, s.seed); err != nil {
		return fmt.Errorf("error populating rewards data: %w", err)
	}
	log.Ctx(ctx).Info().Int("items", len(s.seed)).Msg("Rewards data populated successfully")
	return nil
}
