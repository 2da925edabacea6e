// Package donations implements the donation ledger: public creation and
// lookup of donation records, optionally linked to a registered admin donor.
package donations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

var (
	ErrInvalidInput  = errors.New("invalid donation input")
	ErrNotFound      = errors.New("donation not found")
	ErrDonorNotFound = errors.New("donor not found")
)

type Donation struct {
	ID          int64     `json:"id_doacao"`
	UserID      *int64    `json:"id_user"`
	Amount      float64   `json:"valor"`
	DonatedAt   time.Time `json:"data_doacao"`
	Description *string   `json:"descricao"`
	// DonorName is populated by the list query's join against login_users.
	DonorName *string `json:"nome_usuario,omitempty"`
}

type CreateInput struct {
	UserID      *int64  `json:"id_user"`
	Amount      float64 `json:"valor" validate:"required,gt=0"`
	Description *string `json:"descricao"`
}

type CreateParams struct {
	UserID      *int64
	Amount      float64
	DonatedAt   time.Time
	Description *string
}

type Repository interface {
	Create(ctx context.Context, params CreateParams) (int64, error)
	List(ctx context.Context) ([]Donation, error)
	GetByID(ctx context.Context, id int64) (*Donation, error)
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	repo     Repository
	logger   zerolog.Logger
	validate *validator.Validate
}

func NewService(repo Repository, logger zerolog.Logger) *Service {
	return &Service{
		repo:     repo,
		logger:   logger.With().Str("component", "donations").Logger(),
		validate: validator.New(),
	}
}

// Create records a donation. The donation timestamp is assigned here, not by
// the datastore. A missing referenced donor surfaces as ErrDonorNotFound.
func (s *Service) Create(ctx context.Context, input CreateInput) (int64, error) {
	if err := s.validate.Struct(input); err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	return s.repo.Create(ctx, CreateParams{
		UserID:      input.UserID,
		Amount:      input.Amount,
		DonatedAt:   time.Now(),
		Description: input.Description,
	})
}

func (s *Service) List(ctx context.Context) ([]Donation, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Donation, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
