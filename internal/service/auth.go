package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/rocketscienceinc/counter-backend/internal/apperror"
	"github.com/rocketscienceinc/counter-backend/internal/entity"
	"github.com/rocketscienceinc/counter-backend/internal/pkg"
)

const (
	tokenType         = "bearer"
	minPasswordLength = 6
)

type AuthService interface {
	SignUp(ctx context.Context, email, password string) (*entity.Session, error)
	SignIn(ctx context.Context, email, password string) (*entity.Session, error)
	SignOut(ctx context.Context, identity *entity.Identity) error
	Authenticate(ctx context.Context, token string) (*entity.Identity, error)
}

type userRepo interface {
	Create(ctx context.Context, user *entity.User) error
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}

type sessionRepo interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type AuthOptions struct {
	SecretKey  string
	TokenTTL   time.Duration
	BcryptCost int
}

type claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type authServiceImpl struct {
	logger      *slog.Logger
	userRepo    userRepo
	sessionRepo sessionRepo
	options     AuthOptions
	now         func() time.Time
}

func NewAuthService(logger *slog.Logger, userRepo userRepo, sessionRepo sessionRepo, options AuthOptions) AuthService {
	return &authServiceImpl{
		logger:      logger.With("component", "auth"),
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		options:     options,
		now:         time.Now,
	}
}

func (that *authServiceImpl) SignUp(ctx context.Context, email, password string) (*entity.Session, error) {
	email = normalizeEmail(email)

	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: email must contain @", apperror.ErrInvalidInput)
	}

	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", apperror.ErrInvalidInput, minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), that.options.BcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, fmt.Errorf("%w: password is too long", apperror.ErrInvalidInput)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		ID:           pkg.GenerateNewID(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    that.now().UTC(),
	}

	if err = that.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to sign up: %w", err)
	}

	return that.issue(user)
}

func (that *authServiceImpl) SignIn(ctx context.Context, email, password string) (*entity.Session, error) {
	user, err := that.userRepo.GetByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, apperror.ErrUserNotFound) {
		return nil, apperror.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to sign in: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	return that.issue(user)
}

func (that *authServiceImpl) SignOut(ctx context.Context, identity *entity.Identity) error {
	if err := that.sessionRepo.Revoke(ctx, identity.TokenID, identity.Expires); err != nil {
		return fmt.Errorf("failed to sign out: %w", err)
	}

	return nil
}

func (that *authServiceImpl) Authenticate(ctx context.Context, token string) (*entity.Identity, error) {
	log := that.logger.With("method", "Authenticate")

	parsed, err := jwt.ParseWithClaims(token, &claims{}, func(*jwt.Token) (any, error) {
		return []byte(that.options.SecretKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(that.now),
	)
	if err != nil {
		log.Debug("rejected token", "error", err)
		return nil, apperror.ErrUnauthorized
	}

	tokenClaims, ok := parsed.Claims.(*claims)
	if !ok || tokenClaims.Subject == "" || tokenClaims.ID == "" {
		return nil, apperror.ErrUnauthorized
	}

	revoked, err := that.sessionRepo.IsRevoked(ctx, tokenClaims.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate: %w", err)
	}

	if revoked {
		return nil, apperror.ErrUnauthorized
	}

	return &entity.Identity{
		UserID:  tokenClaims.Subject,
		Email:   tokenClaims.Email,
		TokenID: tokenClaims.ID,
		Expires: tokenClaims.ExpiresAt.Time,
	}, nil
}

func (that *authServiceImpl) issue(user *entity.User) (*entity.Session, error) {
	now := that.now()
	expiresAt := now.Add(that.options.TokenTTL)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        pkg.GenerateNewID(),
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})

	tokenString, err := token.SignedString([]byte(that.options.SecretKey))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &entity.Session{
		AccessToken: tokenString,
		TokenType:   tokenType,
		ExpiresAt:   expiresAt.UTC().Truncate(time.Second),
		User: entity.SessionUser{
			ID:    user.ID,
			Email: user.Email,
		},
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
