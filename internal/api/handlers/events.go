package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/instituto-alma/server/internal/api/respond"
	"github.com/instituto-alma/server/internal/domain/events"
)

type EventsHandler struct {
	Service *events.Service
}

func NewEventsHandler(service *events.Service) *EventsHandler {
	return &EventsHandler{Service: service}
}

func (h *EventsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input events.EventInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Título, descrição, data de início e local são obrigatórios.", err)
		return
	}

	id, err := h.Service.Create(r.Context(), input)
	if err != nil {
		if errors.Is(err, events.ErrInvalidInput) {
			respond.Error(w, r, http.StatusBadRequest, "Título, descrição, data de início e local são obrigatórios.", err)
			return
		}
		respond.Error(w, r, http.StatusInternalServerError, "Erro interno ao criar o evento.", err)
		return
	}

	respond.JSON(w, http.StatusCreated, map[string]any{
		"message":            "Evento criado com sucesso!",
		"id_evento_inserido": id,
	})
}

func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.List(r.Context())
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, "Erro interno ao buscar eventos.", err)
		return
	}
	respond.JSON(w, http.StatusOK, list)
}

func (h *EventsHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		respond.Error(w, r, http.StatusNotFound, "Evento não encontrado.", err)
		return
	}

	event, err := h.Service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, events.ErrNotFound) {
			respond.Error(w, r, http.StatusNotFound, "Evento não encontrado.", err)
			return
		}
		respond.Error(w, r, http.StatusInternalServerError, "Erro interno ao buscar evento.", err)
		return
	}
	respond.JSON(w, http.StatusOK, event)
}

func (h *EventsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		respond.Error(w, r, http.StatusNotFound, "Evento não encontrado para atualizar.", err)
		return
	}

	var input events.EventInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Todos os campos obrigatórios devem ser preenchidos.", err)
		return
	}

	if err := h.Service.Update(r.Context(), id, input); err != nil {
		switch {
		case errors.Is(err, events.ErrInvalidInput):
			respond.Error(w, r, http.StatusBadRequest, "Todos os campos obrigatórios devem ser preenchidos.", err)
		case errors.Is(err, events.ErrNotFound):
			respond.Error(w, r, http.StatusNotFound, "Evento não encontrado para atualizar.", err)
		default:
			respond.Error(w, r, http.StatusInternalServerError, "Erro interno ao atualizar evento.", err)
		}
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{"message": "Evento atualizado com sucesso."})
}

func (h *EventsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		respond.Error(w, r, http.StatusNotFound, "Evento não encontrado para deletar.", err)
		return
	}

	if err := h.Service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, events.ErrNotFound) {
			respond.Error(w, r, http.StatusNotFound, "Evento não encontrado para deletar.", err)
			return
		}
		respond.Error(w, r, http.StatusInternalServerError, "Erro interno ao deletar evento.", err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{"message": "Evento deletado com sucesso."})
}
