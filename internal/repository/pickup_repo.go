package repository

import (
	"context"
	"fmt"

	"ewaste_backend/internal/model"
)

// PickupRepository stores e-waste pickup requests
type PickupRepository interface {
	Create(ctx context.Context, req *model.PickupRequest) error
	FindAll(ctx context.Context) ([]model.PickupRequest, error)
}

type pickupRepository struct {
	db DBTX
}

// NewPickupRepository creates a Postgres backed PickupRepository
func NewPickupRepository(db DBTX) PickupRepository {
	return &pickupRepository{db: db}
}

// Create inserts a pickup request. The point is split into its longitude/latitude columns.
func (r *pickupRepository) Create(ctx context.Context, p *model.PickupRequest) error {
	sql := `INSERT INTO pickup_requests (id, email, product_category, product_name, additional_info, longitude, latitude, created_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, sql, p.ID, p.Email, p.ProductCategory, p.ProductName, p.AdditionalInfo,
		p.Location.Longitude(), p.Location.Latitude(), p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create pickup request: %w", err)
	}
	return nil
}

// FindAll retrieves all pickup requests, newest first
func (r *pickupRepository) FindAll(ctx context.Context) ([]model.PickupRequest, error) {
	sql := `SELECT id, email, product_category, product_name, additional_info, longitude, latitude, created_at
            FROM pickup_requests ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query pickup requests: %w", err)
	}
	defer rows.Close()

	var requests []model.PickupRequest
	for rows.Next() {
		var p model.PickupRequest
		var lon, lat float64
		if err := rows.Scan(&p.ID, &p.Email, &p.ProductCategory, &p.ProductName, &p.AdditionalInfo, &lon, &lat, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan pickup request row: %w", err)
		}
		p.Location = model.NewGeoPoint(lat, lon)
		requests = append(requests, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pickup request rows: %w", err)
	}
	return requests, nil
}
