// Package mocks holds testify mocks of the repository interfaces.
package mocks

import (
	"context"

	"ewaste_backend/internal/model"

	"github.com/stretchr/testify/mock"
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *UserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *UserRepository) FindAll(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

type AdminRepository struct {
	mock.Mock
}

func (m *AdminRepository) Create(ctx context.Context, admin *model.Admin) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}

func (m *AdminRepository) FindByEmail(ctx context.Context, email string) (*model.Admin, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Admin), args.Error(1)
}

func (m *AdminRepository) FindAll(ctx context.Context) ([]model.Admin, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Admin), args.Error(1)
}

type PickupRepository struct {
	mock.Mock
}

func (m *PickupRepository) Create(ctx context.Context, req *model.PickupRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *PickupRepository) FindAll(ctx context.Context) ([]model.PickupRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PickupRequest), args.Error(1)
}

type FacilityRepository struct {
	mock.Mock
}

func (m *FacilityRepository) Create(ctx context.Context, f *model.Facility) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *FacilityRepository) FindAll(ctx context.Context) ([]model.Facility, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Facility), args.Error(1)
}

type RewardRepository struct {
	mock.Mock
}

func (m *RewardRepository) Upsert(ctx context.Context, rewards []model.Reward) error {
	args := m.Called(ctx, rewards)
	return args.Error(0)
}

func (m *RewardRepository) FindPoints(ctx context.Context, items []string) (map[string]int64, error) {
	args := m.Called(ctx, items)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}
