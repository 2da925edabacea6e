package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/instituto-alma/server/internal/domain/events"
)

type stubEventRepo struct {
	created []events.EventParams
	updated map[int64]events.EventParams
	event   *events.Event
}

func (r *stubEventRepo) Create(_ context.Context, params events.EventParams) (int64, error) {
	r.created = append(r.created, params)
	return 3, nil
}

func (r *stubEventRepo) List(context.Context) ([]events.Event, error) {
	if r.event == nil {
		return []events.Event{}, nil
	}
	return []events.Event{*r.event}, nil
}

func (r *stubEventRepo) GetByID(_ context.Context, id int64) (*events.Event, error) {
	if r.event == nil || r.event.ID != id {
		return nil, events.ErrNotFound
	}
	return r.event, nil
}

func (r *stubEventRepo) Update(_ context.Context, id int64, params events.EventParams) error {
	if r.event == nil || r.event.ID != id {
		return events.ErrNotFound
	}
	if r.updated == nil {
		r.updated = make(map[int64]events.EventParams)
	}
	r.updated[id] = params
	return nil
}

func (r *stubEventRepo) Delete(_ context.Context, id int64) error {
	if r.event == nil || r.event.ID != id {
		return events.ErrNotFound
	}
	return nil
}

func newEventsHandler(repo *stubEventRepo) *EventsHandler {
	return NewEventsHandler(events.NewService(repo, zerolog.Nop()))
}

func TestEventsCreate(t *testing.T) {
	repo := &stubEventRepo{}
	h := newEventsHandler(repo)

	body := `{"titulo":"Feira","descricao":"Feira solidária","data_inicio":"2024-01-01","local":"Praça"}`
	rec := httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest(http.MethodPost, "/eventos", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "Evento criado com sucesso!", resp["message"])
	require.Equal(t, float64(3), resp["id_evento_inserido"])
	require.Len(t, repo.created, 1)
	require.Equal(t, "Feira", repo.created[0].Titulo)
}

func TestEventsCreateMissingFields(t *testing.T) {
	h := newEventsHandler(&stubEventRepo{})

	body := `{"titulo":"Feira"}`
	rec := httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest(http.MethodPost, "/eventos", strings.NewReader(body)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "Título, descrição, data de início e local são obrigatórios.", resp["error"])
}

func TestEventsUpdate(t *testing.T) {
	repo := &stubEventRepo{event: &events.Event{ID: 5}}
	h := newEventsHandler(repo)

	body := `{"titulo":"Feira","descricao":"Edição revisada","data_inicio":"2024-02-01T10:00:00","data_fim":"2024-02-01 18:00:00","local":"Praça"}`

	t.Run("success", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/eventos/5", strings.NewReader(body))
		req.SetPathValue("id", "5")
		h.Update(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "Evento atualizado com sucesso.", resp["message"])
		require.NotNil(t, repo.updated[5].DataFim)
	})

	t.Run("missing event", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/eventos/6", strings.NewReader(body))
		req.SetPathValue("id", "6")
		h.Update(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
		var resp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "Evento não encontrado para atualizar.", resp["error"])
	})
}

func TestEventsDelete(t *testing.T) {
	h := newEventsHandler(&stubEventRepo{event: &events.Event{ID: 5}})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/eventos/5", nil)
	req.SetPathValue("id", "5")
	h.Delete(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/eventos/9", nil)
	req.SetPathValue("id", "9")
	h.Delete(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}
