package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type stubRepo struct {
	createFn func(params EventParams) (int64, error)
	updateFn func(id int64, params EventParams) error
	created  int
}

func (s *stubRepo) Create(_ context.Context, params EventParams) (int64, error) {
	s.created++
	return s.createFn(params)
}

func (s *stubRepo) List(_ context.Context) ([]Event, error)          { return nil, nil }
func (s *stubRepo) GetByID(_ context.Context, _ int64) (*Event, error) { return nil, ErrNotFound }

func (s *stubRepo) Update(_ context.Context, id int64, params EventParams) error {
	return s.updateFn(id, params)
}

func (s *stubRepo) Delete(_ context.Context, _ int64) error { return nil }

func TestTimestampUnmarshalLayouts(t *testing.T) {
	cases := map[string]string{
		`"2024-01-01"`:           "2024-01-01T00:00:00Z",
		`"2024-01-01 18:30:00"`:  "2024-01-01T18:30:00Z",
		`"2024-01-01T18:30:00"`:  "2024-01-01T18:30:00Z",
		`"2024-01-01T18:30:00Z"`: "2024-01-01T18:30:00Z",
	}
	for raw, want := range cases {
		var ts Timestamp
		require.NoError(t, json.Unmarshal([]byte(raw), &ts), "input %s", raw)
		require.Equal(t, want, ts.UTC().Format(time.RFC3339), "input %s", raw)
	}

	var ts Timestamp
	require.Error(t, json.Unmarshal([]byte(`"amanhã"`), &ts))
}

func TestCreateRequiresMandatoryFields(t *testing.T) {
	repo := &stubRepo{createFn: func(EventParams) (int64, error) { return 1, nil }}
	service := NewService(repo, zerolog.Nop())

	start := Timestamp{Time: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	inputs := []EventInput{
		{Descricao: "x", DataInicio: &start, Local: "Praça"},
		{Titulo: "Feira", DataInicio: &start, Local: "Praça"},
		{Titulo: "Feira", Descricao: "x", Local: "Praça"},
		{Titulo: "Feira", Descricao: "x", DataInicio: &start},
	}
	for _, input := range inputs {
		_, err := service.Create(context.Background(), input)
		require.ErrorIs(t, err, ErrInvalidInput)
	}
	require.Zero(t, repo.created)
}

func TestCreatePassesOptionalEndDate(t *testing.T) {
	var got EventParams
	repo := &stubRepo{createFn: func(params EventParams) (int64, error) {
		got = params
		return 4, nil
	}}
	service := NewService(repo, zerolog.Nop())

	start := Timestamp{Time: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	id, err := service.Create(context.Background(), EventInput{
		Titulo:     "Feira",
		Descricao:  "x",
		DataInicio: &start,
		Local:      "Praça",
	})
	require.NoError(t, err)
	require.Equal(t, int64(4), id)
	require.Nil(t, got.DataFim)
	require.Equal(t, start.Time, got.DataInicio)

	end := Timestamp{Time: start.Add(2 * time.Hour)}
	_, err = service.Create(context.Background(), EventInput{
		Titulo:     "Feira",
		Descricao:  "x",
		DataInicio: &start,
		DataFim:    &end,
		Local:      "Praça",
	})
	require.NoError(t, err)
	require.NotNil(t, got.DataFim)
	require.Equal(t, end.Time, *got.DataFim)
}

func TestUpdateValidatesBeforeRepo(t *testing.T) {
	called := false
	repo := &stubRepo{updateFn: func(int64, EventParams) error {
		called = true
		return nil
	}}
	service := NewService(repo, zerolog.Nop())

	err := service.Update(context.Background(), 1, EventInput{Titulo: "só título"})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.False(t, called)
}
