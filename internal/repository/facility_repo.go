package repository

import (
	"context"
	"fmt"

	"ewaste_backend/internal/model"
)

// FacilityRepository stores facility registrations
type FacilityRepository interface {
	Create(ctx context.Context, f *model.Facility) error
	FindAll(ctx context.Context) ([]model.Facility, error)
}

type facilityRepository struct {
	db DBTX
}

// NewFacilityRepository creates a Postgres backed FacilityRepository
func NewFacilityRepository(db DBTX) FacilityRepository {
	return &facilityRepository{db: db}
}

func (r *facilityRepository) Create(ctx context.Context, f *model.Facility) error {
	sql := `INSERT INTO facilities (id, email, facility_name, facility_details, additional_details, longitude, latitude, created_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, sql, f.ID, f.Email, f.FacilityName, f.FacilityDetails, f.AdditionalDetails,
		f.Location.Longitude(), f.Location.Latitude(), f.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create facility: %w", err)
	}
	return nil
}

func (r *facilityRepository) FindAll(ctx context.Context) ([]model.Facility, error) {
	sql := `SELECT id, email, facility_name, facility_details, additional_details, longitude, latitude, created_at
            FROM facilities ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query facilities: %w", err)
	}
	defer rows.Close()

	var facilities []model.Facility
	for rows.Next() {
		var f model.Facility
		var lon, lat float64
		if err := rows.Scan(&f.ID, &f.Email, &f.FacilityName, &f.FacilityDetails, &f.AdditionalDetails, &lon, &lat, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan facility row: %w", err)
		}
		f.Location = model.NewGeoPoint(lat, lon)
		facilities = append(facilities, f)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating facility rows: %w", err)
	}
	return facilities, nil
}
