package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/instituto-alma/server/internal/api/respond"
	"github.com/instituto-alma/server/internal/domain/ombudsman"
)

type OmbudsmanHandler struct {
	Service *ombudsman.Service
}

func NewOmbudsmanHandler(service *ombudsman.Service) *OmbudsmanHandler {
	return &OmbudsmanHandler{Service: service}
}

func (h *OmbudsmanHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input ombudsman.MessageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Nome, e-mail e mensagem são obrigatórios.", err)
		return
	}

	id, err := h.Service.Create(r.Context(), input)
	if err != nil {
		if errors.Is(err, ombudsman.ErrInvalidInput) {
			respond.Error(w, r, http.StatusBadRequest, "Nome, e-mail e mensagem são obrigatórios.", err)
			return
		}
		respond.Error(w, r, http.StatusInternalServerError, "Erro interno ao processar a mensagem.", err)
		return
	}

	respond.JSON(w, http.StatusCreated, map[string]any{
		"message":     "Mensagem enviada com sucesso!",
		"id_inserido": id,
	})
}

func (h *OmbudsmanHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.List(r.Context())
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, "Erro interno ao buscar mensagens.", err)
		return
	}
	respond.JSON(w, http.StatusOK, list)
}

func (h *OmbudsmanHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		respond.Error(w, r, http.StatusNotFound, "Mensagem não encontrada.", err)
		return
	}

	message, err := h.Service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ombudsman.ErrNotFound) {
			respond.Error(w, r, http.StatusNotFound, "Mensagem não encontrada.", err)
			return
		}
		respond.Error(w, r, http.StatusInternalServerError, "Erro interno ao buscar mensagem.", err)
		return
	}
	respond.JSON(w, http.StatusOK, message)
}

func (h *OmbudsmanHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		respond.Error(w, r, http.StatusNotFound, "Mensagem não encontrada para deletar.", err)
		return
	}

	if err := h.Service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ombudsman.ErrNotFound) {
			respond.Error(w, r, http.StatusNotFound, "Mensagem não encontrada para deletar.", err)
			return
		}
		respond.Error(w, r, http.StatusInternalServerError, "Erro interno ao deletar mensagem.", err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{"message": "Mensagem deletada com sucesso."})
}
