// Package admins manages the sole authenticated principal kind: the admin
// identities used to mint and verify bearer credentials.
package admins

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidInput       = errors.New("invalid admin input")
	ErrNotFound           = errors.New("admin not found")
	ErrEmailInUse         = errors.New("admin email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// BcryptCost matches the salt rounds the institute has always used for
// stored credentials.
const BcryptCost = 10

type Admin struct {
	ID           int64
	Nome         string
	Email        string
	SenhaHash    string
	DataCadastro time.Time
}

type RegisterInput struct {
	Nome  string `json:"nome" validate:"required"`
	Email string `json:"email" validate:"required"`
	Senha string `json:"senha" validate:"required"`
}

type LoginInput struct {
	Email string `json:"email" validate:"required"`
	Senha string `json:"senha" validate:"required"`
}

type CreateParams struct {
	Nome         string
	Email        string
	SenhaHash    string
	DataCadastro time.Time
}

type Repository interface {
	Create(ctx context.Context, params CreateParams) (int64, error)
	GetByEmail(ctx context.Context, email string) (*Admin, error)
}

type Service struct {
	repo     Repository
	logger   zerolog.Logger
	validate *validator.Validate
}

func NewService(repo Repository, logger zerolog.Logger) *Service {
	return &Service{
		repo:     repo,
		logger:   logger.With().Str("component", "admins").Logger(),
		validate: validator.New(),
	}
}

// Register hashes the plaintext secret and persists a new admin identity.
// The registration timestamp is assigned here, not by a datastore default.
func (s *Service) Register(ctx context.Context, input RegisterInput) (int64, error) {
	if err := s.validate.Struct(input); err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Senha), BcryptCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	return s.repo.Create(ctx, CreateParams{
		Nome:         input.Nome,
		Email:        input.Email,
		SenhaHash:    string(hash),
		DataCadastro: time.Now(),
	})
}

// Authenticate verifies an email/password pair. An unknown email and a wrong
// password both return ErrInvalidCredentials so callers cannot enumerate
// registered accounts.
func (s *Service) Authenticate(ctx context.Context, input LoginInput) (*Admin, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	admin, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.SenhaHash), []byte(input.Senha)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return admin, nil
}
