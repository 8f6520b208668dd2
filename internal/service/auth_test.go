package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/rocketscienceinc/counter-backend/internal/apperror"
	"github.com/rocketscienceinc/counter-backend/internal/entity"
	mockedService "github.com/rocketscienceinc/counter-backend/mocks/service"
)

const testSecret = "test-secret"

func newTestAuth(t *testing.T) (*authServiceImpl, *mockedService.MockuserRepo, *mockedService.MocksessionRepo) {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	users := mockedService.NewMockuserRepo(t)
	sessions := mockedService.NewMocksessionRepo(t)

	auth := NewAuthService(logger, users, sessions, AuthOptions{
		SecretKey:  testSecret,
		TokenTTL:   time.Hour,
		BcryptCost: bcrypt.MinCost,
	})

	return auth.(*authServiceImpl), users, sessions
}

func TestAuthService_SignUp(t *testing.T) {
	ctx := context.Background()

	t.Run("Registers the user and issues a session", func(t *testing.T) {
		// Given: a repository that accepts the user
		auth, users, sessions := newTestAuth(t)

		var saved *entity.User
		users.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*entity.User")).
			Run(func(_ context.Context, user *entity.User) { saved = user }).
			Return(nil).
			Once()

		// When: signing up with a mixed-case email
		session, err := auth.SignUp(ctx, " Alice@Example.com ", "secret1")

		// Then: the email is normalized and the password hashed
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", saved.Email)
		require.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash), []byte("secret1")))

		// And: the session belongs to the new user
		assert.Equal(t, saved.ID, session.User.ID)
		assert.Equal(t, "bearer", session.TokenType)
		assert.NotEmpty(t, session.AccessToken)

		// And: the token authenticates
		sessions.EXPECT().IsRevoked(mock.Anything, mock.AnythingOfType("string")).Return(false, nil).Once()

		identity, err := auth.Authenticate(ctx, session.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, saved.ID, identity.UserID)
		assert.Equal(t, "alice@example.com", identity.Email)
	})

	t.Run("Rejects malformed input without touching storage", func(t *testing.T) {
		auth, _, _ := newTestAuth(t)

		_, err := auth.SignUp(ctx, "not-an-email", "secret1")
		require.ErrorIs(t, err, apperror.ErrInvalidInput)

		_, err = auth.SignUp(ctx, "alice@example.com", "short")
		require.ErrorIs(t, err, apperror.ErrInvalidInput)
	})

	t.Run("Taken email is reported", func(t *testing.T) {
		auth, users, _ := newTestAuth(t)

		users.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*entity.User")).
			Return(apperror.ErrEmailTaken).
			Once()

		_, err := auth.SignUp(ctx, "alice@example.com", "secret1")

		require.ErrorIs(t, err, apperror.ErrEmailTaken)
	})
}

func TestAuthService_SignIn(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &entity.User{ID: "user-1", Email: "alice@example.com", PasswordHash: string(hash)}

	t.Run("Correct password issues a session", func(t *testing.T) {
		auth, users, _ := newTestAuth(t)

		users.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(user, nil).Once()

		session, err := auth.SignIn(ctx, "ALICE@example.com", "secret1")

		require.NoError(t, err)
		assert.Equal(t, "user-1", session.User.ID)
	})

	t.Run("Wrong password is invalid credentials", func(t *testing.T) {
		auth, users, _ := newTestAuth(t)

		users.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(user, nil).Once()

		_, err := auth.SignIn(ctx, "alice@example.com", "wrong-password")

		require.ErrorIs(t, err, apperror.ErrInvalidCredentials)
	})

	t.Run("Unknown email is invalid credentials", func(t *testing.T) {
		auth, users, _ := newTestAuth(t)

		users.EXPECT().GetByEmail(mock.Anything, "bob@example.com").Return(nil, apperror.ErrUserNotFound).Once()

		_, err := auth.SignIn(ctx, "bob@example.com", "secret1")

		require.ErrorIs(t, err, apperror.ErrInvalidCredentials)
	})

	t.Run("Storage failure is not reported as bad credentials", func(t *testing.T) {
		auth, users, _ := newTestAuth(t)
		errDown := errors.New("postgres down")

		users.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(nil, errDown).Once()

		_, err := auth.SignIn(ctx, "alice@example.com", "secret1")

		require.ErrorIs(t, err, errDown)
		require.NotErrorIs(t, err, apperror.ErrInvalidCredentials)
	})
}

func TestAuthService_Authenticate(t *testing.T) {
	ctx := context.Background()
	user := &entity.User{ID: "user-1", Email: "alice@example.com"}

	t.Run("Revoked token is unauthorized", func(t *testing.T) {
		auth, _, sessions := newTestAuth(t)

		session, err := auth.issue(user)
		require.NoError(t, err)

		sessions.EXPECT().IsRevoked(mock.Anything, mock.AnythingOfType("string")).Return(true, nil).Once()

		_, err = auth.Authenticate(ctx, session.AccessToken)

		require.ErrorIs(t, err, apperror.ErrUnauthorized)
	})

	t.Run("Expired token is unauthorized", func(t *testing.T) {
		auth, _, _ := newTestAuth(t)
		auth.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

		session, err := auth.issue(user)
		require.NoError(t, err)

		auth.now = time.Now

		_, err = auth.Authenticate(ctx, session.AccessToken)

		require.ErrorIs(t, err, apperror.ErrUnauthorized)
	})

	t.Run("Token signed with another key is unauthorized", func(t *testing.T) {
		auth, _, _ := newTestAuth(t)

		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			ID:        "jti",
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})
		forged, err := token.SignedString([]byte("other-secret"))
		require.NoError(t, err)

		_, err = auth.Authenticate(ctx, forged)

		require.ErrorIs(t, err, apperror.ErrUnauthorized)
	})

	t.Run("Garbage is unauthorized", func(t *testing.T) {
		auth, _, _ := newTestAuth(t)

		_, err := auth.Authenticate(ctx, "not.a.token")

		require.ErrorIs(t, err, apperror.ErrUnauthorized)
	})
}

func TestAuthService_SignOut(t *testing.T) {
	auth, _, sessions := newTestAuth(t)
	expires := time.Now().Add(time.Hour)

	// Given: the token id is revoked until it expires
	sessions.EXPECT().Revoke(mock.Anything, "jti-1", expires).Return(nil).Once()

	// When: signing out
	err := auth.SignOut(context.Background(), &entity.Identity{UserID: "user-1", TokenID: "jti-1", Expires: expires})

	// Then: no error
	require.NoError(t, err)
}
