package admins

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type stubRepo struct {
	createFn func(params CreateParams) (int64, error)
	byEmail  map[string]*Admin
	created  int
}

func (s *stubRepo) Create(_ context.Context, params CreateParams) (int64, error) {
	s.created++
	return s.createFn(params)
}

func (s *stubRepo) GetByEmail(_ context.Context, email string) (*Admin, error) {
	if admin, ok := s.byEmail[email]; ok {
		return admin, nil
	}
	return nil, ErrNotFound
}

func TestRegisterHashesPassword(t *testing.T) {
	var got CreateParams
	repo := &stubRepo{createFn: func(params CreateParams) (int64, error) {
		got = params
		return 11, nil
	}}
	service := NewService(repo, zerolog.Nop())

	id, err := service.Register(context.Background(), RegisterInput{Nome: "A", Email: "a@x.com", Senha: "p"})
	require.NoError(t, err)
	require.Equal(t, int64(11), id)
	require.NotEqual(t, "p", got.SenhaHash, "plaintext must never be persisted")
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(got.SenhaHash), []byte("p")))
	require.False(t, got.DataCadastro.IsZero(), "registration timestamp is application-assigned")
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	repo := &stubRepo{createFn: func(CreateParams) (int64, error) { return 1, nil }}
	service := NewService(repo, zerolog.Nop())

	inputs := []RegisterInput{
		{Email: "a@x.com", Senha: "p"},
		{Nome: "A", Senha: "p"},
		{Nome: "A", Email: "a@x.com"},
	}
	for _, input := range inputs {
		_, err := service.Register(context.Background(), input)
		require.ErrorIs(t, err, ErrInvalidInput)
	}
	require.Zero(t, repo.created)
}

func TestAuthenticateDoesNotDiscloseWhichFieldFailed(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("certa"), BcryptCost)
	require.NoError(t, err)

	repo := &stubRepo{byEmail: map[string]*Admin{
		"a@x.com": {ID: 1, Nome: "A", Email: "a@x.com", SenhaHash: string(hash)},
	}}
	service := NewService(repo, zerolog.Nop())

	_, errUnknown := service.Authenticate(context.Background(), LoginInput{Email: "b@x.com", Senha: "certa"})
	_, errWrongPass := service.Authenticate(context.Background(), LoginInput{Email: "a@x.com", Senha: "errada"})

	require.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	require.ErrorIs(t, errWrongPass, ErrInvalidCredentials)
	require.Equal(t, errUnknown, errWrongPass, "both failures must be indistinguishable")
}

func TestAuthenticateSuccess(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("p"), BcryptCost)
	require.NoError(t, err)

	repo := &stubRepo{byEmail: map[string]*Admin{
		"a@x.com": {ID: 7, Nome: "A", Email: "a@x.com", SenhaHash: string(hash)},
	}}
	service := NewService(repo, zerolog.Nop())

	admin, err := service.Authenticate(context.Background(), LoginInput{Email: "a@x.com", Senha: "p"})
	require.NoError(t, err)
	require.Equal(t, int64(7), admin.ID)
	require.Equal(t, "a@x.com", admin.Email)
}
