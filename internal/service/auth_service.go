package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ewaste_backend/internal/model"
	"ewaste_backend/internal/repository"
	"ewaste_backend/internal/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrUserAlreadyExists  = errors.New("an account with this email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("incorrect credentials")
)

// AuthService provides registration and login for users and admins
type AuthService interface {
	RegisterUser(ctx context.Context, req model.RegisterUserRequest) (*model.User, error)
	LoginUser(ctx context.Context, email, password string) (*model.User, string, error)
	RegisterAdmin(ctx context.Context, req model.RegisterAdminRequest) (*model.Admin, error)
	LoginAdmin(ctx context.Context, email, password string) (*model.Admin, string, error)
}

type authService struct {
	users   repository.UserRepository
	admins  repository.AdminRepository
	jwtUtil *utils.JWTUtil
}

// NewAuthService creates a new AuthService
func NewAuthService(users repository.UserRepository, admins repository.AdminRepository, jwtUtil *utils.JWTUtil) AuthService {
	return &authService{
		users:   users,
		admins:  admins,
		jwtUtil: jwtUtil,
	}
}

// RegisterUser creates a new user account with a hashed password
func (s *authService) RegisterUser(ctx context.Context, req model.RegisterUserRequest) (*model.User, error) {
	existing, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Contact:      req.Contact,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		// Lost a race with a concurrent registration for the same email
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user in repository: %w", err)
	}

	log.Ctx(ctx).Info().Str("user_id", user.ID).Msg("user registered")
	return user, nil
}

// LoginUser authenticates a user and returns a signed token
func (s *authService) LoginUser(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("error finding user by email: %w", err)
	}
	if user == nil || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwtUtil.GenerateToken(user.ID, model.RoleUser)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	return user, token, nil
}

// RegisterAdmin creates a new admin account with a hashed password
func (s *authService) RegisterAdmin(ctx context.Context, req model.RegisterAdminRequest) (*model.Admin, error) {
	existing, err := s.admins.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing admin: %w", err)
	}
	if existing != nil {
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	admin := &model.Admin{
		ID:           uuid.NewString(),
		AdminName:    req.AdminName,
		Contact:      req.Contact,
		Email:        req.Email,
		FacilityName: req.FacilityName,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.admins.Create(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to create admin in repository: %w", err)
	}

	log.Ctx(ctx).Info().Str("admin_id", admin.ID).Msg("admin registered")
	return admin, nil
}

// LoginAdmin authenticates an admin and returns a token carrying the admin role
func (s *authService) LoginAdmin(ctx context.Context, email, password string) (*model.Admin, string, error) {
	admin, err := s.admins.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("error finding admin by email: %w", err)
	}
	if admin == nil || !utils.CheckPasswordHash(password, admin.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwtUtil.GenerateToken(admin.ID, model.RoleAdmin)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	return admin, token, nil
}
