package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ewaste_backend/internal/model"
	"ewaste_backend/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var ErrInvalidLocation = errors.New("invalid location")

// IntakeService accepts pickup requests and facility registrations
type IntakeService interface {
	SubmitPickupRequest(ctx context.Context, req model.CreatePickupRequest) (*model.PickupRequest, error)
	SubmitFacility(ctx context.Context, req model.CreateFacilityRequest) (*model.Facility, error)
	ListPickupRequests(ctx context.Context) ([]model.PickupRequest, error)
	ListFacilities(ctx context.Context) ([]model.Facility, error)
}

type intakeService struct {
	pickups    repository.PickupRepository
	facilities repository.FacilityRepository
}

// NewIntakeService creates a new IntakeService
func NewIntakeService(pickups repository.PickupRepository, facilities repository.FacilityRepository) IntakeService {
	return &intakeService{pickups: pickups, facilities: facilities}
}

func parseLocation(raw string) (model.GeoPoint, error) {
	point, err := model.ParseLatLon(raw)
	if err != nil {
		return model.GeoPoint{}, fmt.Errorf("%w: %v", ErrInvalidLocation, err)
	}
	return point, nil
}

// SubmitPickupRequest stores a pickup request. The "lat,lon" input is stored
// longitude first.
func (s *intakeService) SubmitPickupRequest(ctx context.Context, req model.CreatePickupRequest) (*model.PickupRequest, error) {
	location, err := parseLocation(req.Location)
	if err != nil {
		return nil, err
	}

	pickup := &model.PickupRequest{
		ID:              uuid.NewString(),
		Email:           req.Email,
		ProductCategory: req.ProductCategory,
		ProductName:     req.ProductName,
		AdditionalInfo:  req.AdditionalInfo,
		Location:        location,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.pickups.Create(ctx, pickup); err != nil {
		return nil, fmt.Errorf("failed to save e-waste request: %w", err)
	}

	log.Ctx(ctx).Info().Str("request_id", pickup.ID).Str("category", pickup.ProductCategory).Msg("e-waste request saved")
	return pickup, nil
}

// SubmitFacility stores a facility registration, same location handling as pickups
func (s *intakeService) SubmitFacility(ctx context.Context, req model.CreateFacilityRequest) (*model.Facility, error) {
	location, err := parseLocation(req.Location)
	if err != nil {
		return nil, err
	}

	facility := &model.Facility{
		ID:                uuid.NewString(),
		Email:             req.Email,
		FacilityName:      req.FacilityName,
		FacilityDetails:   req.FacilityDetails,
		AdditionalDetails: req.AdditionalDetails,
		Location:          location,
		CreatedAt:         time.Now().UTC(),
	}
	if err := s.facilities.Create(ctx, facility); err != nil {
		return nil, fmt.Errorf("failed to save facility: %w", err)
	}

	log.Ctx(ctx).Info().Str("facility_id", facility.ID).Msg("facility saved")
	return facility, nil
}

func (s *intakeService) ListPickupRequests(ctx context.Context) ([]model.PickupRequest, error) {
	requests, err := s.pickups.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pickup requests: %w", err)
	}
	if requests == nil {
		requests = []model.PickupRequest{}
	}
	return requests, nil
}

func (s *intakeService) ListFacilities(ctx context.Context) ([]model.Facility, error) {
	facilities, err := s.facilities.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list facilities: %w", err)
	}
	if facilities == nil {
		facilities = []model.Facility{}
	}
	return facilities, nil
}
