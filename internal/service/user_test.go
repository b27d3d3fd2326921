package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userDeps struct {
	repo   *mocks.MockUserRepo
	hasher *mocks.MockPasswordHasher
	tokens *mocks.MockTokenIssuer
	svc    *UserService
}

func newUserDeps(t *testing.T) userDeps {
	t.Helper()
	d := userDeps{
		repo:   mocks.NewMockUserRepo(t),
		hasher: mocks.NewMockPasswordHasher(t),
		tokens: mocks.NewMockTokenIssuer(t),
	}
	d.svc = NewUserService(d.repo, d.hasher, d.tokens, newTestLogger(t))
	return d
}

func TestUserService_Register_Success(t *testing.T) {
	d := newUserDeps(t)

	d.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
	d.repo.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == "alice@example.com" && u.PasswordHash == "hashed" && u.Role == domain.RoleUser
	})).Return(nil)

	user, err := d.svc.Register(context.Background(), domain.RegisterInput{
		Name:     "Alice",
		Email:    "  Alice@Example.com ",
		Password: "secret1",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, domain.RoleUser, user.Role)
}

func TestUserService_Register_Organizer(t *testing.T) {
	d := newUserDeps(t)

	d.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
	d.repo.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil)

	user, err := d.svc.Register(context.Background(), domain.RegisterInput{
		Name:     "Olga",
		Email:    "olga@example.com",
		Password: "secret1",
		Role:     domain.RoleOrganizer,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleOrganizer, user.Role)
}

func TestUserService_Register_AdminRefused(t *testing.T) {
	d := newUserDeps(t)

	_, err := d.svc.Register(context.Background(), domain.RegisterInput{
		Name:     "Mallory",
		Email:    "mallory@example.com",
		Password: "secret1",
		Role:     domain.RoleAdmin,
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Register_InvalidInput(t *testing.T) {
	d := newUserDeps(t)

	cases := map[string]domain.RegisterInput{
		"empty name":     {Name: " ", Email: "a@example.com", Password: "secret1"},
		"bad email":      {Name: "A", Email: "not-an-email", Password: "secret1"},
		"display name":   {Name: "A", Email: "Alice <a@example.com>", Password: "secret1"},
		"missing domain": {Name: "A", Email: "a@", Password: "secret1"},
		"empty email":    {Name: "A", Email: "  ", Password: "secret1"},
		"short password": {Name: "A", Email: "a@example.com", Password: "123"},
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := d.svc.Register(context.Background(), input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	d := newUserDeps(t)

	d.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
	d.repo.EXPECT().Insert(mock.Anything, mock.Anything).Return(domain.ErrEmailTaken)

	_, err := d.svc.Register(context.Background(), domain.RegisterInput{
		Name: "Alice", Email: "alice@example.com", Password: "secret1",
	})

	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestUserService_Login_Success(t *testing.T) {
	d := newUserDeps(t)

	stored := &domain.User{ID: "u1", Email: "alice@example.com", PasswordHash: "hashed", Role: domain.RoleUser}
	exp := time.Now().Add(time.Hour)
	d.repo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(stored, nil)
	d.hasher.EXPECT().Compare("hashed", "secret1").Return(true)
	d.tokens.EXPECT().Issue(&domain.Principal{ID: "u1", Role: domain.RoleUser}).Return("token", exp, nil)

	session, err := d.svc.Login(context.Background(), "ALICE@example.com", "secret1")

	require.NoError(t, err)
	assert.Equal(t, "token", session.Token)
	assert.Equal(t, exp, session.ExpiresAt)
	assert.Equal(t, "u1", session.User.ID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	d := newUserDeps(t)

	stored := &domain.User{ID: "u1", PasswordHash: "hashed"}
	d.repo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(stored, nil)
	d.hasher.EXPECT().Compare("hashed", "wrong").Return(false)

	_, err := d.svc.Login(context.Background(), "alice@example.com", "wrong")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	d := newUserDeps(t)

	d.repo.EXPECT().GetByEmail(mock.Anything, "ghost@example.com").Return(nil, domain.ErrUserNotFound)

	_, err := d.svc.Login(context.Background(), "ghost@example.com", "secret1")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestUserService_Login_RepoError(t *testing.T) {
	d := newUserDeps(t)

	d.repo.EXPECT().GetByEmail(mock.Anything, mock.Anything).Return(nil, errors.New("db error"))

	_, err := d.svc.Login(context.Background(), "alice@example.com", "secret1")

	assert.ErrorIs(t, err, domain.ErrPersistence)
}

func TestUserService_Me(t *testing.T) {
	d := newUserDeps(t)

	_, err := d.svc.Me(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	d.repo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1", Name: "Alice"}, nil)

	user, err := d.svc.Me(context.Background(), alice)
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)
}

func TestUserService_EnsureAdmin_Creates(t *testing.T) {
	d := newUserDeps(t)

	d.repo.EXPECT().GetByEmail(mock.Anything, "admin@example.com").Return(nil, domain.ErrUserNotFound)
	d.hasher.EXPECT().Hash("admin123").Return("hashed", nil)
	d.repo.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Role == domain.RoleAdmin
	})).Return(nil)

	created, err := d.svc.EnsureAdmin(context.Background(), "Admin", "admin@example.com", "admin123")

	require.NoError(t, err)
	assert.True(t, created)
}

func TestUserService_EnsureAdmin_Exists(t *testing.T) {
	d := newUserDeps(t)

	d.repo.EXPECT().GetByEmail(mock.Anything, "admin@example.com").
		Return(&domain.User{ID: "a1", Role: domain.RoleAdmin}, nil)

	created, err := d.svc.EnsureAdmin(context.Background(), "Admin", "admin@example.com", "admin123")

	require.NoError(t, err)
	assert.False(t, created)
}

func TestUserService_EnsureAdmin_Race(t *testing.T) {
	d := newUserDeps(t)

	d.repo.EXPECT().GetByEmail(mock.Anything, mock.Anything).Return(nil, domain.ErrUserNotFound)
	d.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
	d.repo.EXPECT().Insert(mock.Anything, mock.Anything).Return(domain.ErrEmailTaken)

	created, err := d.svc.EnsureAdmin(context.Background(), "Admin", "admin@example.com", "admin123")

	require.NoError(t, err)
	assert.False(t, created)
}
