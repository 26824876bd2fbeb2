package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store bundles the repositories over one shared backend. It is built once at
// startup and handed to every service.
type Store struct {
	Users      UserRepository
	Admins     AdminRepository
	Pickups    PickupRepository
	Facilities FacilityRepository
	Rewards    RewardRepository

	ping  func(ctx context.Context) error
	close func(ctx context.Context) error
}

// NewPostgresStore wires the Postgres repositories to a connection pool
func NewPostgresStore(pool *pgxpool.Pool) *Store {
	return &Store{
		Users:      NewUserRepository(pool),
		Admins:     NewAdminRepository(pool),
		Pickups:    NewPickupRepository(pool),
		Facilities: NewFacilityRepository(pool),
		Rewards:    NewRewardRepository(pool),
		ping:       pool.Ping,
		close: func(context.Context) error {
			pool.Close()
			return nil
		},
	}
}

// NewMongoStore wires the document store repositories to a database
func NewMongoStore(client *mongo.Client, db *mongo.Database) *Store {
	return &Store{
		Users:      NewMongoUserRepository(db),
		Admins:     NewMongoAdminRepository(db),
		Pickups:    NewMongoPickupRepository(db),
		Facilities: NewMongoFacilityRepository(db),
		Rewards:    NewMongoRewardRepository(db),
		ping: func(ctx context.Context) error {
			return client.Ping(ctx, nil)
		},
		close: client.Disconnect,
	}
}

// Ping checks the backend is reachable
func (s *Store) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}

// Close releases the backend connection
func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}
