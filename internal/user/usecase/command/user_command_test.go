package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minimarket/admin-api/internal/user/domain"
	"github.com/minimarket/admin-api/pkg/auth"
)

type stubUserRepo struct {
	users  map[uint]*domain.User
	nextID uint
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uint]*domain.User), nextID: 1}
}

func (r *stubUserRepo) Create(user *domain.User) error {
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = user
	return nil
}

func (r *stubUserRepo) FindByID(id uint) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, assert.AnError
	}
	return u, nil
}

func (r *stubUserRepo) FindByEmail(email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, assert.AnError
}

func (r *stubUserRepo) FindAll() ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) Update(user *domain.User) error {
	r.users[user.ID] = user
	return nil
}

func seedUser(t *testing.T, repo *stubUserRepo, email, password string, active bool) *domain.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	user := &domain.User{
		Name:     "Cajero",
		Email:    email,
		Password: hash,
		Role:     domain.RoleEmployee,
		IsActive: active,
	}
	require.NoError(t, repo.Create(user))
	return user
}

func TestCreateUser(t *testing.T) {
	repo := newStubUserRepo()
	handler := NewCreateUserHandler(repo)

	user, err := handler.Handle(CreateUserCommand{
		Name:     "Ana",
		Email:    "ana@minimarket.mx",
		Password: "secret1",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.RoleEmployee, user.Role)
	assert.True(t, user.IsActive)
	// The stored password is a bcrypt hash, never the plain text
	assert.NotEqual(t, "secret1", user.Password)
	assert.True(t, auth.CheckPassword(user.Password, "secret1"))
}

func TestCreateUser_Validation(t *testing.T) {
	repo := newStubUserRepo()
	handler := NewCreateUserHandler(repo)

	_, err := handler.Handle(CreateUserCommand{Email: "a@b.com", Password: "secret1"})
	assert.Error(t, err)

	_, err = handler.Handle(CreateUserCommand{Name: "Ana", Email: "not-an-email", Password: "secret1"})
	assert.Error(t, err)

	_, err = handler.Handle(CreateUserCommand{Name: "Ana", Email: "a@b.com", Password: "short"})
	assert.Error(t, err)

	_, err = handler.Handle(CreateUserCommand{Name: "Ana", Email: "a@b.com", Password: "secret1", Role: "superuser"})
	assert.Error(t, err)

	assert.Empty(t, repo.users)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "ana@minimarket.mx", "secret1", true)
	handler := NewCreateUserHandler(repo)

	_, err := handler.Handle(CreateUserCommand{
		Name:     "Otra Ana",
		Email:    "ana@minimarket.mx",
		Password: "secret2",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestLoginUser(t *testing.T) {
	repo := newStubUserRepo()
	seeded := seedUser(t, repo, "ana@minimarket.mx", "secret1", true)
	handler := NewLoginUserHandler(repo)

	result, err := handler.Handle(LoginUserCommand{Email: "ana@minimarket.mx", Password: "secret1"})
	require.NoError(t, err)

	assert.NotEmpty(t, result.Token)
	assert.Equal(t, seeded.ID, result.User.ID)

	claims, err := auth.ValidateToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, claims.UserID)
	assert.Equal(t, domain.RoleEmployee, claims.Role)
}

func TestLoginUser_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "ana@minimarket.mx", "secret1", true)
	handler := NewLoginUserHandler(repo)

	_, err := handler.Handle(LoginUserCommand{Email: "ana@minimarket.mx", Password: "nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestLoginUser_UnknownEmail(t *testing.T) {
	repo := newStubUserRepo()
	handler := NewLoginUserHandler(repo)

	_, err := handler.Handle(LoginUserCommand{Email: "nadie@minimarket.mx", Password: "secret1"})
	require.Error(t, err)
	// Unknown accounts and bad passwords are indistinguishable
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestLoginUser_InactiveAccount(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "baja@minimarket.mx", "secret1", false)
	handler := NewLoginUserHandler(repo)

	_, err := handler.Handle(LoginUserCommand{Email: "baja@minimarket.mx", Password: "secret1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inactive")
}

func TestLoginUser_MissingFields(t *testing.T) {
	repo := newStubUserRepo()
	handler := NewLoginUserHandler(repo)

	_, err := handler.Handle(LoginUserCommand{Email: "", Password: ""})
	assert.Error(t, err)
}
