//go:build unit

package user_test

import (
	"testing"

	"room-reservation/internal/domain/user"
	"room-reservation/internal/pkg/errs"
	"room-reservation/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {

		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		name, _ := user.NewName("Siti Rahma")
		email, _ := user.NewEmail("siti@example.ac.id")
		expected := user.NewUser(name, email, "hashed_password", user.RoleStudent)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsActive())
		assert.Nil(t, actual.LastLogin())
		assert.True(t, actual.CanSignInWithPassword())
	})

	t.Run("メールアドレス検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "有効なメールアドレスOK",
				mutate: func(b *builder.UserBuilder) { b.Email = "valid@example.com" },
			},
			{
				name:   "空のメールアドレスNG",
				mutate: func(b *builder.UserBuilder) { b.Email = "" },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "無効な形式NG",
				mutate: func(b *builder.UserBuilder) { b.Email = "invalid-email" },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("ロール検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "ADMIN ロールOK",
				mutate: func(b *builder.UserBuilder) { b.Role = "ADMIN" },
			},
			{
				name:   "MAHASISWA ロールOK",
				mutate: func(b *builder.UserBuilder) { b.Role = "MAHASISWA" },
			},
			{
				name:   "小文字ロールNG",
				mutate: func(b *builder.UserBuilder) { b.Role = "admin" },
				errIs:  user.ErrInvalidRole,
			},
			{
				name:   "空のロールNG",
				mutate: func(b *builder.UserBuilder) { b.Role = "" },
				errIs:  user.ErrInvalidRole,
			},
		})
	})

	t.Run("氏名検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "空白のみNG",
				mutate: func(b *builder.UserBuilder) { b.Name = "   " },
				errIs:  user.ErrInvalidName,
			},
		})
	})

	t.Run("パスワード未設定はパスワードログイン不可", func(t *testing.T) {
		u, err := builder.NewUserBuilder().With(func(b *builder.UserBuilder) { b.PasswordHash = "" }).BuildDomain()
		require.NoError(t, err)
		assert.False(t, u.CanSignInWithPassword())
	})

	t.Run("検証エラーはバリデーション分類", func(t *testing.T) {
		_, err := user.NewEmail("nope")
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {

			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
