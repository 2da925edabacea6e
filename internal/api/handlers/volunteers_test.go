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

	"github.com/instituto-alma/server/internal/domain/volunteers"
)

type stubVolunteerRepo struct {
	createErr error
	deleteErr error
}

func (r *stubVolunteerRepo) Create(context.Context, volunteers.CreateParams) (int64, error) {
	if r.createErr != nil {
		return 0, r.createErr
	}
	return 9, nil
}

func (r *stubVolunteerRepo) List(context.Context) ([]volunteers.Volunteer, error) {
	return []volunteers.Volunteer{}, nil
}

func (r *stubVolunteerRepo) Delete(context.Context, int64) error {
	return r.deleteErr
}

func newVolunteersHandler(repo *stubVolunteerRepo) *VolunteersHandler {
	return NewVolunteersHandler(volunteers.NewService(repo, zerolog.Nop()))
}

func TestVolunteersCreate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h := newVolunteersHandler(&stubVolunteerRepo{})
		body := `{"nome":"João","email":"joao@x.com","telefone":"11999990000","disponibilidade":"fins de semana"}`
		rec := httptest.NewRecorder()
		h.Create(rec, httptest.NewRequest(http.MethodPost, "/voluntarios", strings.NewReader(body)))

		require.Equal(t, http.StatusCreated, rec.Code)
		var resp map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "Inscrição de voluntário enviada com sucesso!", resp["message"])
		require.Equal(t, float64(9), resp["id_voluntario_inserido"])
	})

	t.Run("missing fields", func(t *testing.T) {
		h := newVolunteersHandler(&stubVolunteerRepo{})
		rec := httptest.NewRecorder()
		h.Create(rec, httptest.NewRequest(http.MethodPost, "/voluntarios", strings.NewReader(`{"nome":"João"}`)))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var resp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "Nome, e-mail e telefone são obrigatórios.", resp["error"])
	})

	t.Run("duplicate email", func(t *testing.T) {
		h := newVolunteersHandler(&stubVolunteerRepo{createErr: volunteers.ErrEmailTaken})
		body := `{"nome":"João","email":"joao@x.com","telefone":"11999990000"}`
		rec := httptest.NewRecorder()
		h.Create(rec, httptest.NewRequest(http.MethodPost, "/voluntarios", strings.NewReader(body)))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var resp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "Este e-mail já está cadastrado.", resp["error"])
	})
}

func TestVolunteersDelete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h := newVolunteersHandler(&stubVolunteerRepo{})
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/voluntarios/9", nil)
		req.SetPathValue("id", "9")
		h.Delete(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing", func(t *testing.T) {
		h := newVolunteersHandler(&stubVolunteerRepo{deleteErr: volunteers.ErrNotFound})
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/voluntarios/9", nil)
		req.SetPathValue("id", "9")
		h.Delete(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
		var resp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "Voluntário não encontrado para deletar.", resp["error"])
	})
}
