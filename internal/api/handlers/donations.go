package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/instituto-alma/server/internal/api/respond"
	"github.com/instituto-alma/server/internal/domain/donations"
)

type DonationsHandler struct {
	Service *donations.Service
}

func NewDonationsHandler(service *donations.Service) *DonationsHandler {
	return &DonationsHandler{Service: service}
}

func (h *DonationsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input donations.CreateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "O valor da doação é obrigatório e deve ser maior que zero.", err)
		return
	}

	id, err := h.Service.Create(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, donations.ErrInvalidInput):
			respond.Error(w, r, http.StatusBadRequest, "O valor da doação é obrigatório e deve ser maior que zero.", err)
		case errors.Is(err, donations.ErrDonorNotFound):
			respond.Error(w, r, http.StatusNotFound, "Usuário (id_user) não encontrado.", err)
		default:
			respond.Error(w, r, http.StatusInternalServerError, "Erro interno ao registrar a doação.", err)
		}
		return
	}

	respond.JSON(w, http.StatusCreated, map[string]any{
		"message":            "Registro de doação criado com sucesso!",
		"id_doacao_inserida": id,
	})
}

func (h *DonationsHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.List(r.Context())
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, "Erro interno ao buscar doações.", err)
		return
	}
	respond.JSON(w, http.StatusOK, list)
}

func (h *DonationsHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		respond.Error(w, r, http.StatusNotFound, "Doação não encontrada.", err)
		return
	}

	donation, err := h.Service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, donations.ErrNotFound) {
			respond.Error(w, r, http.StatusNotFound, "Doação não encontrada.", err)
			return
		}
		respond.Error(w, r, http.StatusInternalServerError, "Erro interno ao buscar doação.", err)
		return
	}
	respond.JSON(w, http.StatusOK, donation)
}

func (h *DonationsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		respond.Error(w, r, http.StatusNotFound, "Doação não encontrada para deletar.", err)
		return
	}

	if err := h.Service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, donations.ErrNotFound) {
			respond.Error(w, r, http.StatusNotFound, "Doação não encontrada para deletar.", err)
			return
		}
		respond.Error(w, r, http.StatusInternalServerError, "Erro interno ao deletar doação.", err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{"message": "Registro de doação deletado com sucesso."})
}
