//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"room-reservation/internal/domain/user"
	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/pkg/jwt"
	"room-reservation/internal/pkg/password"
	"room-reservation/internal/usecase/commands"
	"room-reservation/tests/common/builder"
	"room-reservation/tests/common/memuow"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuth(t *testing.T) (*memuow.Store, *jwt.Service, commands.AuthCommands) {
	t.Helper()
	store := memuow.New()
	svc := jwt.NewService("test-secret-key", 15*time.Minute, 24*time.Hour)
	return store, svc, commands.NewAuthCommands(store, svc)
}

func TestAuthCommands_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("学生として登録される", func(t *testing.T) {
		store, _, cmds := newAuth(t)
		in := builder.NewAuthBuilder().BuildRegisterDTO()

		id, err := cmds.Register(ctx, commands.RegisterInput{Name: in.Name, Email: "Siti@Example.ac.id", Password: in.Password})
		require.NoError(t, err)

		u, ok := store.User(id)
		require.True(t, ok)
		assert.Equal(t, user.RoleStudent.String(), u.Role)
		assert.Equal(t, "siti@example.ac.id", u.Email)
		require.NoError(t, password.ComparePassword(u.PasswordHash, in.Password))
	})

	t.Run("登録済みメールはNG", func(t *testing.T) {
		store, _, cmds := newAuth(t)
		store.AddUser(*builder.NewUserBuilder().BuildSnapshot())

		_, err := cmds.Register(ctx, commands.RegisterInput{Name: "Siti", Email: "siti@example.ac.id", Password: "password123"})
		require.ErrorIs(t, err, commands.ErrEmailTaken)
		assert.True(t, errs.Is(err, errs.ErrDuplicate))
	})

	t.Run("短いパスワードNG", func(t *testing.T) {
		_, _, cmds := newAuth(t)
		_, err := cmds.Register(ctx, commands.RegisterInput{Name: "Siti", Email: "siti@example.ac.id", Password: "short"})
		require.ErrorIs(t, err, user.ErrPasswordTooWeak)
	})
}

func TestAuthCommands_Login(t *testing.T) {
	ctx := context.Background()

	hash, err := password.HashPassword("password123")
	require.NoError(t, err)

	t.Run("成功するとトークンを発行する", func(t *testing.T) {
		store, svc, cmds := newAuth(t)
		id := store.AddUser(*builder.NewUserBuilder().AsAdmin().WithPasswordHash(hash).BuildSnapshot())

		result, err := cmds.Login(ctx, "siti@example.ac.id", "password123")
		require.NoError(t, err)
		assert.Equal(t, id, result.UserID)
		assert.Equal(t, user.RoleAdmin, result.Role)

		claims, err := svc.ValidateToken(result.TokenPair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, id, claims.UserID)
		assert.Equal(t, jwt.TokenTypeAccess, claims.TokenType)
	})

	cases := []struct {
		name     string
		prepare  func(*memuow.Store)
		email    string
		password string
		errIs    error
	}{
		{
			name:     "パスワード誤りNG",
			prepare:  func(s *memuow.Store) { s.AddUser(*builder.NewUserBuilder().WithPasswordHash(hash).BuildSnapshot()) },
			email:    "siti@example.ac.id",
			password: "wrong-password",
			errIs:    commands.ErrInvalidCredentials,
		},
		{
			name:     "未登録メールも同じエラー",
			prepare:  func(*memuow.Store) {},
			email:    "nobody@example.ac.id",
			password: "password123",
			errIs:    commands.ErrInvalidCredentials,
		},
		{
			name:     "無効化されたユーザーNG",
			prepare:  func(s *memuow.Store) { s.AddUser(*builder.NewUserBuilder().WithPasswordHash(hash).AsInactive().BuildSnapshot()) },
			email:    "siti@example.ac.id",
			password: "password123",
			errIs:    commands.ErrUserInactive,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			store, _, cmds := newAuth(t)
			c.prepare(store)

			result, err := cmds.Login(ctx, c.email, c.password)
			require.ErrorIs(t, err, c.errIs)
			assert.Nil(t, result)
			assert.True(t, errs.Is(err, errs.ErrUnauthenticated))
		})
	}
}

func TestAuthCommands_RefreshToken(t *testing.T) {
	ctx := context.Background()

	t.Run("リフレッシュトークンで再発行", func(t *testing.T) {
		store, svc, cmds := newAuth(t)
		id := store.AddUser(*builder.NewUserBuilder().BuildSnapshot())
		refresh, err := svc.GenerateRefreshToken(id, user.RoleStudent)
		require.NoError(t, err)

		pair, err := cmds.RefreshToken(ctx, refresh)
		require.NoError(t, err)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)
	})

	t.Run("アクセストークンは使えない", func(t *testing.T) {
		store, svc, cmds := newAuth(t)
		id := store.AddUser(*builder.NewUserBuilder().BuildSnapshot())
		access, err := svc.GenerateAccessToken(id, user.RoleStudent)
		require.NoError(t, err)

		_, err = cmds.RefreshToken(ctx, access)
		require.ErrorIs(t, err, commands.ErrTokenValidation)
	})

	t.Run("削除されたユーザーNG", func(t *testing.T) {
		_, svc, cmds := newAuth(t)
		refresh, err := svc.GenerateRefreshToken(uuid.New(), user.RoleStudent)
		require.NoError(t, err)

		_, err = cmds.RefreshToken(ctx, refresh)
		require.ErrorIs(t, err, commands.ErrUserNotFound)
	})
}
