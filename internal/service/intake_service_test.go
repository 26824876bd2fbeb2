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

func TestIntakeService_SubmitPickupRequest(t *testing.T) {
	t.Run("stores longitude first", func(t *testing.T) {
		pickups := new(mocks.PickupRepository)
		svc := service.NewIntakeService(pickups, new(mocks.FacilityRepository))

		pickups.On("Create", mock.Anything, mock.MatchedBy(func(p *model.PickupRequest) bool {
			return p.Location.Coordinates == [2]float64{77.6, 12.9} && p.Location.Type == model.GeoJSONPoint
		})).Return(nil)

		pickup, err := svc.SubmitPickupRequest(context.Background(), model.CreatePickupRequest{
			Email:           "asha@example.com",
			ProductCategory: "laptop",
			ProductName:     "ThinkPad T480",
			AdditionalInfo:  "battery swollen",
			Location:        "12.9, 77.6",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, pickup.ID)
		assert.Equal(t, "asha@example.com", pickup.Email)
		assert.Equal(t, "laptop", pickup.ProductCategory)
		assert.Equal(t, "ThinkPad T480", pickup.ProductName)
		assert.Equal(t, "battery swollen", pickup.AdditionalInfo)
		assert.Equal(t, 12.9, pickup.Location.Latitude())
		pickups.AssertExpectations(t)
	})

	t.Run("rejects a malformed location", func(t *testing.T) {
		pickups := new(mocks.PickupRepository)
		svc := service.NewIntakeService(pickups, new(mocks.FacilityRepository))

		for _, loc := range []string{"12.9", "north,east", "12.9,", "1,2,3"} {
			_, err := svc.SubmitPickupRequest(context.Background(), model.CreatePickupRequest{Email: "a@b.c", Location: loc})
			assert.ErrorIs(t, err, service.ErrInvalidLocation, loc)
		}
		pickups.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("store failure", func(t *testing.T) {
		pickups := new(mocks.PickupRepository)
		svc := service.NewIntakeService(pickups, new(mocks.FacilityRepository))
		pickups.On("Create", mock.Anything, mock.Anything).Return(assert.AnError)

		_, err := svc.SubmitPickupRequest(context.Background(), model.CreatePickupRequest{Email: "a@b.c", Location: "1,2"})
		assert.ErrorIs(t, err, assert.AnError)
		assert.NotErrorIs(t, err, service.ErrInvalidLocation)
	})
}

func TestIntakeService_SubmitFacility(t *testing.T) {
	facilities := new(mocks.FacilityRepository)
	svc := service.NewIntakeService(new(mocks.PickupRepository), facilities)
	facilities.On("Create", mock.Anything, mock.AnythingOfType("*model.Facility")).Return(nil)

	facility, err := svc.SubmitFacility(context.Background(), model.CreateFacilityRequest{
		Email:             "ops@greencycle.in",
		FacilityName:      "GreenCycle Whitefield",
		FacilityDetails:   "Mon-Sat 9-6",
		AdditionalDetails: "accepts CRTs",
		Location:          "-33.86,151.21",
	})
	require.NoError(t, err)
	assert.Equal(t, "GreenCycle Whitefield", facility.FacilityName)
	assert.Equal(t, [2]float64{151.21, -33.86}, facility.Location.Coordinates)
	facilities.AssertExpectations(t)
}

func TestIntakeService_Lists(t *testing.T) {
	t.Run("empty collections list as empty slices", func(t *testing.T) {
		pickups := new(mocks.PickupRepository)
		facilities := new(mocks.FacilityRepository)
		svc := service.NewIntakeService(pickups, facilities)
		pickups.On("FindAll", mock.Anything).Return(nil, nil)
		facilities.On("FindAll", mock.Anything).Return(nil, nil)

		requests, err := svc.ListPickupRequests(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, requests)
		assert.Empty(t, requests)

		list, err := svc.ListFacilities(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, list)
	})

	t.Run("store failure", func(t *testing.T) {
		pickups := new(mocks.PickupRepository)
		svc := service.NewIntakeService(pickups, new(mocks.FacilityRepository))
		pickups.On("FindAll", mock.Anything).Return(nil, assert.AnError)

		_, err := svc.ListPickupRequests(context.Background())
		assert.ErrorIs(t, err, assert.AnError)
	})
}
