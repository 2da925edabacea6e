package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/instituto-alma/server/internal/domain/transparency"
	"github.com/jackc/pgx/v5"
)

var _ transparency.Repository = (*DocumentRepository)(nil)

func (r *DocumentRepository) Create(ctx context.Context, titulo, path string) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
INSERT INTO transparencia (titulo, caminho_arquivo)
VALUES ($1, $2)
RETURNING id
`, titulo, path).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert document: %w", err)
	}
	return id, nil
}

func (r *DocumentRepository) List(ctx context.Context) ([]transparency.Document, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, titulo, caminho_arquivo, data_upload
  FROM transparencia
 ORDER BY data_upload DESC
`)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	items := make([]transparency.Document, 0)
	for rows.Next() {
		var item transparency.Document
		if err := rows.Scan(&item.ID, &item.Titulo, &item.CaminhoArquivo, &item.DataUpload); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate documents: %w", err)
	}
	return items, nil
}

func (r *DocumentRepository) GetByID(ctx context.Context, id int64) (*transparency.Document, error) {
	var item transparency.Document
	err := r.pool.QueryRow(ctx, `
SELECT id, titulo, caminho_arquivo, data_upload
  FROM transparencia
 WHERE id = $1
`, id).Scan(&item.ID, &item.Titulo, &item.CaminhoArquivo, &item.DataUpload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, transparency.ErrNotFound
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	return &item, nil
}

func (r *DocumentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM transparencia WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return transparency.ErrNotFound
	}
	return nil
}
