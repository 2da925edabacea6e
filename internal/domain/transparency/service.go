// Package transparency manages the institute's public accountability
// documents: a database record plus an uploaded file kept in a blob store.
// The two are synchronized best-effort, never transactionally.
package transparency

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/rs/zerolog"
)

var ErrNotFound = errors.New("document not found")

type Document struct {
	ID             int64     `json:"id"`
	Titulo         string    `json:"titulo"`
	CaminhoArquivo string    `json:"caminho_arquivo"`
	DataUpload     time.Time `json:"data_upload"`
}

type Repository interface {
	Create(ctx context.Context, titulo, path string) (int64, error)
	List(ctx context.Context) ([]Document, error)
	GetByID(ctx context.Context, id int64) (*Document, error)
	Delete(ctx context.Context, id int64) error
}

// FileStore is the blob store holding the uploaded files themselves.
type FileStore interface {
	Save(filename string, src io.Reader) (string, error)
	Remove(path string) error
}

type Service struct {
	repo   Repository
	files  FileStore
	logger zerolog.Logger
}

func NewService(repo Repository, files FileStore, logger zerolog.Logger) *Service {
	return &Service{
		repo:   repo,
		files:  files,
		logger: logger.With().Str("component", "transparency").Logger(),
	}
}

// Create persists the uploaded file first and then inserts the row that
// references it. If the insert fails the blob is left orphaned; that window
// is accepted for this domain.
func (s *Service) Create(ctx context.Context, titulo, filename string, src io.Reader) (int64, string, error) {
	path, err := s.files.Save(filename, src)
	if err != nil {
		return 0, "", err
	}

	id, err := s.repo.Create(ctx, titulo, path)
	if err != nil {
		return 0, "", err
	}
	return id, path, nil
}

func (s *Service) List(ctx context.Context) ([]Document, error) {
	return s.repo.List(ctx)
}

// Delete removes the record and then attempts to remove the backing file.
// A failed file removal is logged and never surfaced: the record is already
// gone and the caller's delete succeeded.
func (s *Service) Delete(ctx context.Context, id int64) error {
	doc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.files.Remove(doc.CaminhoArquivo); err != nil {
		s.logger.Error().Err(err).Str("path", doc.CaminhoArquivo).Msg("failed to remove document file")
	}
	return nil
}
