package handlers

import (
	"errors"
	"net/http"

	"github.com/instituto-alma/server/internal/api/respond"
	"github.com/instituto-alma/server/internal/domain/transparency"
)

// maxUploadSize caps how much of a multipart body is held in memory.
const maxUploadSize = 32 << 20 // 32 MiB

type TransparencyHandler struct {
	Service *transparency.Service
}

func NewTransparencyHandler(service *transparency.Service) *TransparencyHandler {
	return &TransparencyHandler{Service: service}
}

// Create accepts a multipart form with a "titulo" field and a single file
// under the "arquivo" field.
func (h *TransparencyHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Nenhum arquivo enviado.", err)
		return
	}

	file, header, err := r.FormFile("arquivo")
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Nenhum arquivo enviado.", err)
		return
	}
	defer file.Close()

	titulo := r.FormValue("titulo")
	if titulo == "" {
		respond.Error(w, r, http.StatusBadRequest, `O campo "titulo" é obrigatório.`, nil)
		return
	}

	id, path, err := h.Service.Create(r.Context(), titulo, header.Filename, file)
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, "Erro interno ao salvar o registro.", err)
		return
	}

	respond.JSON(w, http.StatusCreated, map[string]any{
		"message":     "Documento enviado com sucesso!",
		"id_inserido": id,
		"caminho":     path,
	})
}

func (h *TransparencyHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.List(r.Context())
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, "Erro interno ao buscar documentos.", err)
		return
	}
	respond.JSON(w, http.StatusOK, list)
}

func (h *TransparencyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		respond.Error(w, r, http.StatusNotFound, "Documento não encontrado.", err)
		return
	}

	if err := h.Service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, transparency.ErrNotFound) {
			respond.Error(w, r, http.StatusNotFound, "Documento não encontrado.", err)
			return
		}
		respond.Error(w, r, http.StatusInternalServerError, "Erro interno ao deletar documento.", err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{"message": "Documento deletado com sucesso."})
}
