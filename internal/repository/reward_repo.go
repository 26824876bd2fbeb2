package repository

import (
	"context"
	"fmt"

	"ewaste_backend/internal/model"
)

// RewardRepository reads and seeds the reward reference table
type RewardRepository interface {
	// Upsert inserts or updates each reward by item name
	Upsert(ctx context.Context, rewards []model.Reward) error
	// FindPoints returns points keyed by item for the items that exist
	FindPoints(ctx context.Context, items []string) (map[string]int64, error)
}

type rewardRepository struct {
	db DBTX
}

// NewRewardRepository creates a Postgres backed RewardRepository
func NewRewardRepository(db DBTX) RewardRepository {
	return &rewardRepository{db: db}
}

func (r *rewardRepository) Upsert(ctx context.Context, rewards []model.Reward) error {
	if len(rewards) == 0 {
		return nil
	}
	items := make([]string, len(rewards))
	points := make([]int64, len(rewards))
	for i, rw := range rewards {
		items[i] = rw.Item
		points[i] = rw.Points
	}

	sql := `INSERT INTO rewards (item, points)
            SELECT * FROM unnest($1::text[], $2::bigint[])
            ON CONFLICT (item) DO UPDATE SET points = EXCLUDED.points`
	if _, err := r.db.Exec(ctx, sql, items, points); err != nil {
		return fmt.Errorf("failed to upsert rewards: %w", err)
	}
	return nil
}

func (r *rewardRepository) FindPoints(ctx context.Context, items []string) (map[string]int64, error) {
	points := make(map[string]int64, len(items))
	if len(items) == 0 {
		return points, nil
	}

	rows, err := r.db.Query(ctx, `SELECT item, points FROM rewards WHERE item = ANY($1)`, items)
	if err != nil {
		return nil, fmt.Errorf("failed to query rewards: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item string
		var p int64
		if err := rows.Scan(&item, &p); err != nil {
			return nil, fmt.Errorf("failed to scan reward row: %w", err)
		}
		points[item] = p
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reward rows: %w", err)
	}
	return points, nil
}
