package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/instituto-alma/server/internal/domain/events"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var _ events.Repository = (*EventRepository)(nil)

type eventRow struct {
	ID         int64
	Titulo     string
	Descricao  string
	DataInicio pgtype.Timestamptz
	DataFim    pgtype.Timestamptz
	Local      string
}

func (row eventRow) toDomain() events.Event {
	event := events.Event{
		ID:        row.ID,
		Titulo:    row.Titulo,
		Descricao: row.Descricao,
		Local:     row.Local,
	}
	if row.DataInicio.Valid {
		event.DataInicio = events.Timestamp{Time: row.DataInicio.Time}
	}
	if row.DataFim.Valid {
		event.DataFim = &events.Timestamp{Time: row.DataFim.Time}
	}
	return event
}

func (r *EventRepository) Create(ctx context.Context, params events.EventParams) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
INSERT INTO eventos (titulo, descricao, data_inicio, data_fim, local)
VALUES ($1, $2, $3, $4, $5)
RETURNING id_evento
`, params.Titulo, params.Descricao, params.DataInicio, params.DataFim, params.Local).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert event: %w", err)
	}
	return id, nil
}

func (r *EventRepository) List(ctx context.Context) ([]events.Event, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id_evento, titulo, descricao, data_inicio, data_fim, local
  FROM eventos
 ORDER BY data_inicio DESC
`)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	items := make([]events.Event, 0)
	for rows.Next() {
		var row eventRow
		if err := rows.Scan(&row.ID, &row.Titulo, &row.Descricao, &row.DataInicio, &row.DataFim, &row.Local); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		items = append(items, row.toDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return items, nil
}

func (r *EventRepository) GetByID(ctx context.Context, id int64) (*events.Event, error) {
	var row eventRow
	err := r.pool.QueryRow(ctx, `
SELECT id_evento, titulo, descricao, data_inicio, data_fim, local
  FROM eventos
 WHERE id_evento = $1
`, id).Scan(&row.ID, &row.Titulo, &row.Descricao, &row.DataInicio, &row.DataFim, &row.Local)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, events.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	event := row.toDomain()
	return &event, nil
}

func (r *EventRepository) Update(ctx context.Context, id int64, params events.EventParams) error {
	tag, err := r.pool.Exec(ctx, `
UPDATE eventos
   SET titulo = $1, descricao = $2, data_inicio = $3, data_fim = $4, local = $5
 WHERE id_evento = $6
`, params.Titulo, params.Descricao, params.DataInicio, params.DataFim, params.Local, id)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return events.ErrNotFound
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM eventos WHERE id_evento = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return events.ErrNotFound
	}
	return nil
}
