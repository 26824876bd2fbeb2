package service_test

import (
	"context"
	"testing"

	"ewaste_backend/internal/model"
	"ewaste_backend/internal/repository/mocks"
	"ewaste_backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDirectoryService_GetUser(t *testing.T) {
	users := new(mocks.UserRepository)
	svc := service.NewDirectoryService(users, new(mocks.AdminRepository))
	users.On("FindByID", mock.Anything, "u1").Return(&model.User{ID: "u1", Name: "Asha"}, nil)
	users.On("FindByID", mock.Anything, "gone").Return(nil, nil)

	user, err := svc.GetUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "Asha", user.Name)

	_, err = svc.GetUser(context.Background(), "gone")
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestDirectoryService_Lists(t *testing.T) {
	users := new(mocks.UserRepository)
	admins := new(mocks.AdminRepository)
	svc := service.NewDirectoryService(users, admins)
	users.On("FindAll", mock.Anything).Return([]model.User{{ID: "u1"}, {ID: "u2"}}, nil)
	admins.On("FindAll", mock.Anything).Return(nil, nil)

	list, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)

	adminList, err := svc.ListAdmins(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, adminList)
	assert.Empty(t, adminList)
}

func TestDirectoryService_StoreFailure(t *testing.T) {
	users := new(mocks.UserRepository)
	svc := service.NewDirectoryService(users, new(mocks.AdminRepository))
	users.On("FindAll", mock.Anything).Return(nil, assert.AnError)

	_, err := svc.ListUsers(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}
