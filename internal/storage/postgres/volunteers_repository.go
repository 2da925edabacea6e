package postgres

import (
	"context"
	"fmt"

	"github.com/instituto-alma/server/internal/domain/volunteers"
)

var _ volunteers.Repository = (*VolunteerRepository)(nil)

func (r *VolunteerRepository) Create(ctx context.Context, params volunteers.CreateParams) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
INSERT INTO voluntarios (nome, email, telefone, disponibilidade)
VALUES ($1, $2, $3, $4)
RETURNING id_voluntario
`, params.Nome, params.Email, params.Telefone, params.Disponibilidade).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, volunteers.ErrEmailTaken
		}
		return 0, fmt.Errorf("insert volunteer: %w", err)
	}
	return id, nil
}

func (r *VolunteerRepository) List(ctx context.Context) ([]volunteers.Volunteer, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id_voluntario, nome, email, telefone, disponibilidade, data_registro
  FROM voluntarios
 ORDER BY data_registro DESC
`)
	if err != nil {
		return nil, fmt.Errorf("list volunteers: %w", err)
	}
	defer rows.Close()

	items := make([]volunteers.Volunteer, 0)
	for rows.Next() {
		var item volunteers.Volunteer
		if err := rows.Scan(&item.ID, &item.Nome, &item.Email, &item.Telefone, &item.Disponibilidade, &item.RegisteredAt); err != nil {
			return nil, fmt.Errorf("scan volunteer: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate volunteers: %w", err)
	}
	return items, nil
}

func (r *VolunteerRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM voluntarios WHERE id_voluntario = $1`, id)
	if err != nil {
		return fmt.Errorf("delete volunteer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return volunteers.ErrNotFound
	}
	return nil
}
