package service

import (
	"context"
	"fmt"

	"ewaste_backend/internal/model"
	"ewaste_backend/internal/repository"
)

// DirectoryService serves the account read endpoints
type DirectoryService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	ListAdmins(ctx context.Context) ([]model.Admin, error)
	GetUser(ctx context.Context, id string) (*model.User, error)
}

type directoryService struct {
	users  repository.UserRepository
	admins repository.AdminRepository
}

// NewDirectoryService creates a new DirectoryService
func NewDirectoryService(users repository.UserRepository, admins repository.AdminRepository) DirectoryService {
	return &directoryService{users: users, admins: admins}
}

func (s *directoryService) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if users == nil {
		users = []model.User{}
	}
	return users, nil
}

func (s *directoryService) ListAdmins(ctx context.Context) ([]model.Admin, error) {
	admins, err := s.admins.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	if admins == nil {
		admins = []model.Admin{}
	}
	return admins, nil
}

// GetUser returns ErrUserNotFound when no user has the given ID
func (s *directoryService) GetUser(ctx context.Context, id string) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
