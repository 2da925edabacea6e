// Package volunteers handles volunteer sign-ups. Email uniqueness is
// enforced by the datastore and surfaced as ErrEmailTaken.
package volunteers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

var (
	ErrInvalidInput = errors.New("invalid volunteer input")
	ErrNotFound     = errors.New("volunteer not found")
	ErrEmailTaken   = errors.New("volunteer email already registered")
)

type Volunteer struct {
	ID              int64     `json:"id_voluntario"`
	Nome            string    `json:"nome"`
	Email           string    `json:"email"`
	Telefone        string    `json:"telefone"`
	Disponibilidade *string   `json:"disponibilidade"`
	RegisteredAt    time.Time `json:"data_registro"`
}

type SignupInput struct {
	Nome            string  `json:"nome" validate:"required"`
	Email           string  `json:"email" validate:"required"`
	Telefone        string  `json:"telefone" validate:"required"`
	Disponibilidade *string `json:"disponibilidade"`
}

type CreateParams struct {
	Nome            string
	Email           string
	Telefone        string
	Disponibilidade *string
}

type Repository interface {
	Create(ctx context.Context, params CreateParams) (int64, error)
	List(ctx context.Context) ([]Volunteer, error)
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
		logger:   logger.With().Str("component", "volunteers").Logger(),
		validate: validator.New(),
	}
}

func (s *Service) Create(ctx context.Context, input SignupInput) (int64, error) {
	if err := s.validate.Struct(input); err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	return s.repo.Create(ctx, CreateParams{
		Nome:            input.Nome,
		Email:           input.Email,
		Telefone:        input.Telefone,
		Disponibilidade: input.Disponibilidade,
	})
}

func (s *Service) List(ctx context.Context) ([]Volunteer, error) {
	return s.repo.List(ctx)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
