package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/instituto-alma/server/internal/api/respond"
	"github.com/instituto-alma/server/internal/domain/volunteers"
)

type VolunteersHandler struct {
	Service *volunteers.Service
}

func NewVolunteersHandler(service *volunteers.Service) *VolunteersHandler {
	return &VolunteersHandler{Service: service}
}

func (h *VolunteersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input volunteers.SignupInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Nome, e-mail e telefone são obrigatórios.", err)
		return
	}

	id, err := h.Service.Create(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, volunteers.ErrInvalidInput):
			respond.Error(w, r, http.StatusBadRequest, "Nome, e-mail e telefone são obrigatórios.", err)
		case errors.Is(err, volunteers.ErrEmailTaken):
			respond.Error(w, r, http.StatusBadRequest, "Este e-mail já está cadastrado.", err)
		default:
			respond.Error(w, r, http.StatusInternalServerError, "Erro interno ao registrar a inscrição.", err)
		}
		return
	}

	respond.JSON(w, http.StatusCreated, map[string]any{
		"message":                "Inscrição de voluntário enviada com sucesso!",
		"id_voluntario_inserido": id,
	})
}

func (h *VolunteersHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.List(r.Context())
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, "Erro interno ao buscar voluntários.", err)
		return
	}
	respond.JSON(w, http.StatusOK, list)
}

func (h *VolunteersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		respond.Error(w, r, http.StatusNotFound, "Voluntário não encontrado para deletar.", err)
		return
	}

	if err := h.Service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, volunteers.ErrNotFound) {
			respond.Error(w, r, http.StatusNotFound, "Voluntário não encontrado para deletar.", err)
			return
		}
		respond.Error(w, r, http.StatusInternalServerError, "Erro interno ao deletar voluntário.", err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{"message": "Inscrição de voluntário deletada com sucesso."})
}
