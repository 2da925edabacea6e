package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/instituto-alma/server/internal/domain/admins"
	"github.com/jackc/pgx/v5"
)

var _ admins.Repository = (*AdminRepository)(nil)

func (r *AdminRepository) Create(ctx context.Context, params admins.CreateParams) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
INSERT INTO login_users (nome_user, email_user, senha_hash, data_cadastro)
VALUES ($1, $2, $3, $4)
RETURNING id_user
`, params.Nome, params.Email, params.SenhaHash, params.DataCadastro).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, admins.ErrEmailInUse
		}
		return 0, fmt.Errorf("insert admin: %w", err)
	}
	return id, nil
}

func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*admins.Admin, error) {
	var admin admins.Admin
	err := r.pool.QueryRow(ctx, `
SELECT id_user, nome_user, email_user, senha_hash, data_cadastro
  FROM login_users
 WHERE email_user = $1
`, email).Scan(&admin.ID, &admin.Nome, &admin.Email, &admin.SenhaHash, &admin.DataCadastro)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, admins.ErrNotFound
		}
		return nil, fmt.Errorf("get admin by email: %w", err)
	}
	return &admin, nil
}
