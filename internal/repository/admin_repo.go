package repository

import (
	"context"
	"errors"
	"fmt"

	"ewaste_backend/internal/model"

	"github.com/jackc/pgx/v5"
)

// AdminRepository defines operations for admin data
type AdminRepository interface {
	Create(ctx context.Context, admin *model.Admin) error
	FindByEmail(ctx context.Context, email string) (*model.Admin, error)
	FindAll(ctx context.Context) ([]model.Admin, error)
}

type adminRepository struct {
	db DBTX
}

// NewAdminRepository creates a Postgres backed AdminRepository
func NewAdminRepository(db DBTX) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) Create(ctx context.Context, a *model.Admin) error {
	sql := `INSERT INTO admins (id, admin_name, contact, email, facility_name, password_hash, created_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, sql, a.ID, a.AdminName, a.Contact, a.Email, a.FacilityName, a.PasswordHash, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", translateWriteErr(err))
	}
	return nil
}

func (r *adminRepository) FindByEmail(ctx context.Context, email string) (*model.Admin, error) {
	a := &model.Admin{}
	sql := `SELECT id, admin_name, contact, email, facility_name, password_hash, created_at FROM admins WHERE email = $1`
	err := r.db.QueryRow(ctx, sql, email).Scan(&a.ID, &a.AdminName, &a.Contact, &a.Email, &a.FacilityName, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find admin by email: %w", err)
	}
	return a, nil
}

func (r *adminRepository) FindAll(ctx context.Context) ([]model.Admin, error) {
	sql := `SELECT id, admin_name, contact, email, facility_name, password_hash, created_at FROM admins ORDER BY created_at`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query admins: %w", err)
	}
	defer rows.Close()

	var admins []model.Admin
	for rows.Next() {
		var a model.Admin
		if err := rows.Scan(&a.ID, &a.AdminName, &a.Contact, &a.Email, &a.FacilityName, &a.PasswordHash, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan admin row: %w", err)
		}
		admins = append(admins, a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating admin rows: %w", err)
	}
	return admins, nil
}
