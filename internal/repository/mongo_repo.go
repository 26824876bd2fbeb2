package repository

import (
	"context"
	"errors"
	"fmt"

	"ewaste_backend/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names in the document store
const (
	UsersCollection      = "users"
	AdminsCollection     = "admins"
	RequestsCollection   = "requests"
	FacilitiesCollection = "facilities"
	RewardsCollection    = "rewards"
)

var newestFirst = options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

// EnsureIndexes creates the unique and geospatial indexes the repositories rely on
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)
	indexes := map[string][]mongo.IndexModel{
		UsersCollection:      {{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique}},
		AdminsCollection:     {{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique}},
		RewardsCollection:    {{Keys: bson.D{{Key: "item", Value: 1}}, Options: unique}},
		RequestsCollection:   {{Keys: bson.D{{Key: "location", Value: "2dsphere"}}}},
		FacilitiesCollection: {{Keys: bson.D{{Key: "location", Value: "2dsphere"}}}},
	}
	for coll, models := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", coll, err)
		}
	}
	return nil
}

// findOne decodes the first match into out, reporting false when nothing matched
func findOne(ctx context.Context, coll *mongo.Collection, filter any, out any) (bool, error) {
	err := coll.FindOne(ctx, filter).Decode(out)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := coll.Find(ctx, bson.D{}, opts...)
	if err != nil {
		return nil, err
	}
	var out []T
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type mongoUserRepository struct {
	coll *mongo.Collection
}

// NewMongoUserRepository creates a document store backed UserRepository
func NewMongoUserRepository(db *mongo.Database) UserRepository {
	return &mongoUserRepository{coll: db.Collection(UsersCollection)}
}

func (r *mongoUserRepository) Create(ctx context.Context, user *model.User) error {
	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", translateWriteErr(err))
	}
	return nil
}

func (r *mongoUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	found, err := findOne(ctx, r.coll, bson.M{"email": email}, &user)
	if err != nil {
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &user, nil
}

func (r *mongoUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	found, err := findOne(ctx, r.coll, bson.M{"_id": id}, &user)
	if err != nil {
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &user, nil
}

func (r *mongoUserRepository) FindAll(ctx context.Context) ([]model.User, error) {
	users, err := findAll[model.User](ctx, r.coll)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	return users, nil
}

type mongoAdminRepository struct {
	coll *mongo.Collection
}

// NewMongoAdminRepository creates a document store backed AdminRepository
func NewMongoAdminRepository(db *mongo.Database) AdminRepository {
	return &mongoAdminRepository{coll: db.Collection(AdminsCollection)}
}

func (r *mongoAdminRepository) Create(ctx context.Context, admin *model.Admin) error {
	if _, err := r.coll.InsertOne(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin: %w", translateWriteErr(err))
	}
	return nil
}

func (r *mongoAdminRepository) FindByEmail(ctx context.Context, email string) (*model.Admin, error) {
	var admin model.Admin
	found, err := findOne(ctx, r.coll, bson.M{"email": email}, &admin)
	if err != nil {
		return nil, fmt.Errorf("failed to find admin by email: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &admin, nil
}

func (r *mongoAdminRepository) FindAll(ctx context.Context) ([]model.Admin, error) {
	admins, err := findAll[model.Admin](ctx, r.coll)
	if err != nil {
		return nil, fmt.Errorf("failed to query admins: %w", err)
	}
	return admins, nil
}

type mongoPickupRepository struct {
	coll *mongo.Collection
}

// NewMongoPickupRepository creates a document store backed PickupRepository
func NewMongoPickupRepository(db *mongo.Database) PickupRepository {
	return &mongoPickupRepository{coll: db.Collection(RequestsCollection)}
}

func (r *mongoPickupRepository) Create(ctx context.Context, req *model.PickupRequest) error {
	if _, err := r.coll.InsertOne(ctx, req); err != nil {
		return fmt.Errorf("failed to create pickup request: %w", err)
	}
	return nil
}

func (r *mongoPickupRepository) FindAll(ctx context.Context) ([]model.PickupRequest, error) {
	requests, err := findAll[model.PickupRequest](ctx, r.coll, newestFirst)
	if err != nil {
		return nil, fmt.Errorf("failed to query pickup requests: %w", err)
	}
	return requests, nil
}

type mongoFacilityRepository struct {
	coll *mongo.Collection
}

// NewMongoFacilityRepository creates a document store backed FacilityRepository
func NewMongoFacilityRepository(db *mongo.Database) FacilityRepository {
	return &mongoFacilityRepository{coll: db.Collection(FacilitiesCollection)}
}

func (r *mongoFacilityRepository) Create(ctx context.Context, f *model.Facility) error {
	if _, err := r.coll.InsertOne(ctx, f); err != nil {
		return fmt.Errorf("failed to create facility: %w", err)
	}
	return nil
}

func (r *mongoFacilityRepository) FindAll(ctx context.Context) ([]model.Facility, error) {
	facilities, err := findAll[model.Facility](ctx, r.coll, newestFirst)
	if err != nil {
		return nil, fmt.Errorf("failed to query facilities: %w", err)
	}
	return facilities, nil
}

type mongoRewardRepository struct {
	coll *mongo.Collection
}

// NewMongoRewardRepository creates a document store backed RewardRepository
func NewMongoRewardRepository(db *mongo.Database) RewardRepository {
	return &mongoRewardRepository{coll: db.Collection(RewardsCollection)}
}

func (r *mongoRewardRepository) Upsert(ctx context.Context, rewards []model.Reward) error {
	if len(rewards) == 0 {
		return nil
	}
	writes := make([]mongo.WriteModel, 0, len(rewards))
	for _, rw := range rewards {
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"item": rw.Item}).
			SetUpdate(bson.M{"$set": bson.M{"points": rw.Points}}).
			SetUpsert(true))
	}
	if _, err := r.coll.BulkWrite(ctx, writes); err != nil {
		return fmt.Errorf("failed to upsert rewards: %w", err)
	}
	return nil
}

func (r *mongoRewardRepository) FindPoints(ctx context.Context, items []string) (map[string]int64, error) {
	points := make(map[string]int64, len(items))
	if len(items) == 0 {
		return points, nil
	}

	cursor, err := r.coll.Find(ctx, bson.M{"item": bson.M{"$in": items}})
	if err != nil {
		return nil, fmt.Errorf("failed to query rewards: %w", err)
	}
	var rewards []model.Reward
	if err := cursor.All(ctx, &rewards); err != nil {
		return nil, fmt.Errorf("failed to decode rewards: %w", err)
	}
	for _, rw := range rewards {
		points[rw.Item] = rw.Points
	}
	return points, nil
}
