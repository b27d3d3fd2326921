package ports

import (
	"context"
	"time"

	"github.com/stpnv0/EventHub/internal/domain"
)

type UserRepo interface {
	Insert(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) bool
}

type TokenIssuer interface {
	Issue(p *domain.Principal) (string, time.Time, error)
}
