package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/instituto-alma/server/internal/domain/donations"
	"github.com/jackc/pgx/v5"
)

var _ donations.Repository = (*DonationRepository)(nil)

func (r *DonationRepository) Create(ctx context.Context, params donations.CreateParams) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
INSERT INTO doacoes (id_user, valor, data_doacao, descricao)
VALUES ($1, $2, $3, $4)
RETURNING id_doacao
`, params.UserID, params.Amount, params.DonatedAt, params.Description).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, donations.ErrDonorNotFound
		}
		return 0, fmt.Errorf("insert donation: %w", err)
	}
	return id, nil
}

// List joins the donor's display name; donations without a linked donor are
// kept with a null name.
func (r *DonationRepository) List(ctx context.Context) ([]donations.Donation, error) {
	rows, err := r.pool.Query(ctx, `
SELECT d.id_doacao, d.id_user, d.valor, d.data_doacao, d.descricao, u.nome_user AS nome_usuario
  FROM doacoes d
  LEFT JOIN login_users u ON d.id_user = u.id_user
 ORDER BY d.data_doacao DESC
`)
	if err != nil {
		return nil, fmt.Errorf("list donations: %w", err)
	}
	defer rows.Close()

	items := make([]donations.Donation, 0)
	for rows.Next() {
		var item donations.Donation
		if err := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.Amount,
			&item.DonatedAt,
			&item.Description,
			&item.DonorName,
		); err != nil {
			return nil, fmt.Errorf("scan donation: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate donations: %w", err)
	}
	return items, nil
}

func (r *DonationRepository) GetByID(ctx context.Context, id int64) (*donations.Donation, error) {
	var item donations.Donation
	err := r.pool.QueryRow(ctx, `
SELECT id_doacao, id_user, valor, data_doacao, descricao
  FROM doacoes
 WHERE id_doacao = $1
`, id).Scan(&item.ID, &item.UserID, &item.Amount, &item.DonatedAt, &item.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, donations.ErrNotFound
		}
		return nil, fmt.Errorf("get donation: %w", err)
	}
	return &item, nil
}

func (r *DonationRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM doacoes WHERE id_doacao = $1`, id)
	if err != nil {
		return fmt.Errorf("delete donation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return donations.ErrNotFound
	}
	return nil
}
