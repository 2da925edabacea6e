package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/instituto-alma/server/internal/api/respond"
	"github.com/instituto-alma/server/internal/auth"
	"github.com/instituto-alma/server/internal/domain/admins"
)

type AuthHandler struct {
	Service    *admins.Service
	JWTManager *auth.JWTManager
}

func NewAuthHandler(service *admins.Service, jwtManager *auth.JWTManager) *AuthHandler {
	return &AuthHandler{Service: service, JWTManager: jwtManager}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input admins.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Nome, email e senha são obrigatórios.", err)
		return
	}

	id, err := h.Service.Register(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, admins.ErrInvalidInput):
			respond.Error(w, r, http.StatusBadRequest, "Nome, email e senha são obrigatórios.", err)
		case errors.Is(err, admins.ErrEmailInUse):
			respond.Error(w, r, http.StatusBadRequest, "Este e-mail já está em uso.", err)
		default:
			respond.Error(w, r, http.StatusInternalServerError, "Erro interno ao registrar.", err)
		}
		return
	}

	respond.JSON(w, http.StatusCreated, map[string]any{
		"message": "Administrador registrado com sucesso!",
		"id":      id,
	})
}

// Login verifies the credentials and mints the bearer token. Unknown email
// and wrong password produce the exact same response.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input admins.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Email e senha são obrigatórios.", err)
		return
	}

	admin, err := h.Service.Authenticate(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, admins.ErrInvalidInput):
			respond.Error(w, r, http.StatusBadRequest, "Email e senha são obrigatórios.", err)
		case errors.Is(err, admins.ErrInvalidCredentials):
			respond.Error(w, r, http.StatusUnauthorized, "Credenciais inválidas.", err)
		default:
			respond.Error(w, r, http.StatusInternalServerError, "Erro interno no login.", err)
		}
		return
	}

	token, err := h.JWTManager.Generate(admin.ID, admin.Email)
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, "Erro interno no login.", err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"message": "Login bem-sucedido!",
		"token":   token,
		"admin": map[string]any{
			"id":    admin.ID,
			"nome":  admin.Nome,
			"email": admin.Email,
		},
	})
}
