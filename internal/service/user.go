package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const minPasswordLen = 6

var validate = validator.New()

type UserService struct {
	repo   ports.UserRepo
	hasher ports.PasswordHasher
	tokens ports.TokenIssuer
	logger logger.Logger
}

func NewUserService(repo ports.UserRepo, hasher ports.PasswordHasher, tokens ports.TokenIssuer, logger logger.Logger) *UserService {
	return &UserService{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
		logger: logger,
	}
}

// Register creates a user or organizer account. Admin accounts cannot be self-registered.
func (s *UserService) Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error) {
	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}
	if role != domain.RoleUser && role != domain.RoleOrganizer {
		return nil, fmt.Errorf("%w: invalid role", domain.ErrValidation)
	}

	user, err := s.newUser(input.Name, input.Email, input.Password, role)
	if err != nil {
		return nil, err
	}

	if err = s.repo.Insert(ctx, user); err != nil {
		return nil, storeErr("insert user", err)
	}

	s.logger.LogAttrs(ctx, logger.InfoLevel, "user registered",
		logger.String("user_id", user.ID),
		logger.String("role", string(user.Role)),
	)

	return user, nil
}

// Login checks credentials and issues a bearer token. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	user, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, storeErr("get user", err)
	}

	if !s.hasher.Compare(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, exp, err := s.tokens.Issue(user.Principal())
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &domain.Session{Token: token, ExpiresAt: exp, User: user}, nil
}

func (s *UserService) Me(ctx context.Context, p *domain.Principal) (*domain.User, error) {
	if p == nil {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.repo.GetByID(ctx, p.ID)
	if err != nil {
		return nil, storeErr("get user", err)
	}

	return user, nil
}

// EnsureAdmin creates the bootstrap admin account unless the email is already taken.
func (s *UserService) EnsureAdmin(ctx context.Context, name, email, password string) (bool, error) {
	existing, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	switch {
	case err == nil:
		if existing.Role != domain.RoleAdmin {
			s.logger.LogAttrs(ctx, logger.WarnLevel, "bootstrap admin email belongs to a non-admin account",
				logger.String("user_id", existing.ID),
			)
		}
		return false, nil
	case !errors.Is(err, domain.ErrUserNotFound):
		return false, storeErr("get user", err)
	}

	user, err := s.newUser(name, email, password, domain.RoleAdmin)
	if err != nil {
		return false, err
	}

	if err = s.repo.Insert(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return false, nil
		}
		return false, storeErr("insert admin", err)
	}

	s.logger.LogAttrs(ctx, logger.InfoLevel, "admin account created",
		logger.String("user_id", user.ID),
	)

	return true, nil
}

func (s *UserService) newUser(name, email, password string, role domain.Role) (*domain.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	email = normalizeEmail(email)
	if err := validate.Var(email, "required,email"); err != nil {
		return nil, fmt.Errorf("%w: invalid email", domain.ErrValidation)
	}
	if len(password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLen)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return &domain.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
