// Package ombudsman handles contact and complaint messages sent to the
// institute's ombudsman channel.
package ombudsman

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

var (
	ErrInvalidInput = errors.New("invalid message input")
	ErrNotFound     = errors.New("message not found")
)

type Message struct {
	ID       int64     `json:"id_mensagem"`
	Nome     string    `json:"nome"`
	Email    string    `json:"email"`
	Assunto  *string   `json:"assunto"`
	Mensagem string    `json:"mensagem"`
	SentAt   time.Time `json:"data_envio"`
}

type MessageInput struct {
	Nome     string  `json:"nome" validate:"required"`
	Email    string  `json:"email" validate:"required"`
	Assunto  *string `json:"assunto"`
	Mensagem string  `json:"mensagem" validate:"required"`
}

type CreateParams struct {
	Nome     string
	Email    string
	Assunto  *string
	Mensagem string
	SentAt   time.Time
}

type Repository interface {
	Create(ctx context.Context, params CreateParams) (int64, error)
	List(ctx context.Context) ([]Message, error)
	GetByID(ctx context.Context, id int64) (*Message, error)
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
		logger:   logger.With().Str("component", "ombudsman").Logger(),
		validate: validator.New(),
	}
}

func (s *Service) Create(ctx context.Context, input MessageInput) (int64, error) {
	if err := s.validate.Struct(input); err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	return s.repo.Create(ctx, CreateParams{
		Nome:     input.Nome,
		Email:    input.Email,
		Assunto:  input.Assunto,
		Mensagem: input.Mensagem,
		SentAt:   time.Now(),
	})
}

func (s *Service) List(ctx context.Context) ([]Message, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Message, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
