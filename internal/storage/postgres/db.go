// Package postgres implements the repository interfaces of every domain
// package on top of a shared pgx connection pool. The pool is the only
// process-wide resource handle: it is injected at startup and no repository
// owns or closes it.
package postgres

import (
	"context"
	"fmt"

	"github.com/instituto-alma/server/internal/domain/admins"
	"github.com/instituto-alma/server/internal/domain/donations"
	"github.com/instituto-alma/server/internal/domain/events"
	"github.com/instituto-alma/server/internal/domain/ombudsman"
	"github.com/instituto-alma/server/internal/domain/transparency"
	"github.com/instituto-alma/server/internal/domain/volunteers"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) (*Repository, error) {
	if pool == nil {
		return nil, fmt.Errorf("postgres repository: pool is nil")
	}
	return &Repository{pool: pool}, nil
}

func (r *Repository) Donations() donations.Repository {
	return &DonationRepository{pool: r.pool}
}

func (r *Repository) Events() events.Repository {
	return &EventRepository{pool: r.pool}
}

func (r *Repository) Ombudsman() ombudsman.Repository {
	return &MessageRepository{pool: r.pool}
}

func (r *Repository) Transparency() transparency.Repository {
	return &DocumentRepository{pool: r.pool}
}

func (r *Repository) Volunteers() volunteers.Repository {
	return &VolunteerRepository{pool: r.pool}
}

func (r *Repository) Admins() admins.Repository {
	return &AdminRepository{pool: r.pool}
}

// Ping verifies connectivity for readiness checks.
func (r *Repository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

type DonationRepository struct {
	pool *pgxpool.Pool
}

type EventRepository struct {
	pool *pgxpool.Pool
}

type MessageRepository struct {
	pool *pgxpool.Pool
}

type DocumentRepository struct {
	pool *pgxpool.Pool
}

type VolunteerRepository struct {
	pool *pgxpool.Pool
}

type AdminRepository struct {
	pool *pgxpool.Pool
}
