// Package events implements the institute's event calendar. Events are the
// only entity supporting full-record replacement.
package events

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

var (
	ErrInvalidInput = errors.New("invalid event input")
	ErrNotFound     = errors.New("event not found")
)

// Timestamp accepts the date formats the institute's frontend sends
// (date-only, date and time, or RFC 3339) and always renders RFC 3339.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		return fmt.Errorf("empty timestamp")
	}
	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp %q", raw)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Time.Format(time.RFC3339) + `"`), nil
}

type Event struct {
	ID         int64      `json:"id_evento"`
	Titulo     string     `json:"titulo"`
	Descricao  string     `json:"descricao"`
	DataInicio Timestamp  `json:"data_inicio"`
	DataFim    *Timestamp `json:"data_fim"`
	Local      string     `json:"local"`
}

type EventInput struct {
	Titulo     string     `json:"titulo" validate:"required"`
	Descricao  string     `json:"descricao" validate:"required"`
	DataInicio *Timestamp `json:"data_inicio" validate:"required"`
	DataFim    *Timestamp `json:"data_fim"`
	Local      string     `json:"local" validate:"required"`
}

type EventParams struct {
	Titulo     string
	Descricao  string
	DataInicio time.Time
	DataFim    *time.Time
	Local      string
}

type Repository interface {
	Create(ctx context.Context, params EventParams) (int64, error)
	List(ctx context.Context) ([]Event, error)
	GetByID(ctx context.Context, id int64) (*Event, error)
	Update(ctx context.Context, id int64, params EventParams) error
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
		logger:   logger.With().Str("component", "events").Logger(),
		validate: validator.New(),
	}
}

func (s *Service) Create(ctx context.Context, input EventInput) (int64, error) {
	params, err := s.params(input)
	if err != nil {
		return 0, err
	}
	return s.repo.Create(ctx, params)
}

func (s *Service) List(ctx context.Context) ([]Event, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Event, error) {
	return s.repo.GetByID(ctx, id)
}

// Update replaces the full record; partial updates are not supported.
func (s *Service) Update(ctx context.Context, id int64, input EventInput) error {
	params, err := s.params(input)
	if err != nil {
		return err
	}
	return s.repo.Update(ctx, id, params)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) params(input EventInput) (EventParams, error) {
	if err := s.validate.Struct(input); err != nil {
		return EventParams{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	params := EventParams{
		Titulo:     input.Titulo,
		Descricao:  input.Descricao,
		DataInicio: input.DataInicio.Time,
		Local:      input.Local,
	}
	if input.DataFim != nil {
		end := input.DataFim.Time
		params.DataFim = &end
	}
	return params, nil
}
