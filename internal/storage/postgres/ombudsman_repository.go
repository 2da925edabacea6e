package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/instituto-alma/server/internal/domain/ombudsman"
	"github.com/jackc/pgx/v5"
)

var _ ombudsman.Repository = (*MessageRepository)(nil)

func (r *MessageRepository) Create(ctx context.Context, params ombudsman.CreateParams) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
INSERT INTO ouvidoria (nome, email, assunto, mensagem, data_envio)
VALUES ($1, $2, $3, $4, $5)
RETURNING id_mensagem
`, params.Nome, params.Email, params.Assunto, params.Mensagem, params.SentAt).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert ombudsman message: %w", err)
	}
	return id, nil
}

func (r *MessageRepository) List(ctx context.Context) ([]ombudsman.Message, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id_mensagem, nome, email, assunto, mensagem, data_envio
  FROM ouvidoria
 ORDER BY data_envio DESC
`)
	if err != nil {
		return nil, fmt.Errorf("list ombudsman messages: %w", err)
	}
	defer rows.Close()

	items := make([]ombudsman.Message, 0)
	for rows.Next() {
		var item ombudsman.Message
		if err := rows.Scan(&item.ID, &item.Nome, &item.Email, &item.Assunto, &item.Mensagem, &item.SentAt); err != nil {
			return nil, fmt.Errorf("scan ombudsman message: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ombudsman messages: %w", err)
	}
	return items, nil
}

func (r *MessageRepository) GetByID(ctx context.Context, id int64) (*ombudsman.Message, error) {
	var item ombudsman.Message
	err := r.pool.QueryRow(ctx, `
SELECT id_mensagem, nome, email, assunto, mensagem, data_envio
  FROM ouvidoria
 WHERE id_mensagem = $1
`, id).Scan(&item.ID, &item.Nome, &item.Email, &item.Assunto, &item.Mensagem, &item.SentAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ombudsman.ErrNotFound
		}
		return nil, fmt.Errorf("get ombudsman message: %w", err)
	}
	return &item, nil
}

func (r *MessageRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM ouvidoria WHERE id_mensagem = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ombudsman message: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ombudsman.ErrNotFound
	}
	return nil
}
