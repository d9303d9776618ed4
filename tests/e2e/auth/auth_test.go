//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"room-reservation/internal/domain/user"
	"room-reservation/internal/handler/dto/request"
	"room-reservation/internal/handler/dto/response"
	"room-reservation/tests/common/authtest"
	"room-reservation/tests/common/dbtest"
	"room-reservation/tests/common/httptest"
	"room-reservation/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	logoutURL   = "/api/auth/logout"
	refreshURL  = "/api/auth/refresh"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	// テスト用ユーザーを作成
	dbtest.CreateTestUser(s.T(), s.DB, "admin@unsil.ac.id", string(user.RoleAdmin))
	dbtest.CreateTestUser(s.T(), s.DB, "siti@student.unsil.ac.id", string(user.RoleStudent))
	inactive := dbtest.CreateTestUser(s.T(), s.DB, "inactive@student.unsil.ac.id", string(user.RoleStudent))
	dbtest.DeactivateUser(s.T(), s.DB, inactive)
}

func (s *authSuite) TestRegister() {
	s.Run("新規登録は学生ロールで作成される", func() {
		t := s.T()

		body := request.RegisterRequest{Name: "Budi Santoso", Email: "budi@student.unsil.ac.id", Password: "rahasia123"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, body, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var role string
		err := s.DB.QueryRow(t.Context(), "SELECT role FROM users WHERE email = $1", body.Email).Scan(&role)
		require.NoError(t, err)
		require.Equal(t, string(user.RoleStudent), role)

		token := authtest.LoginUser(t, s.Router, body.Email, body.Password)
		require.NotEmpty(t, token)
	})

	s.Run("大文字小文字違いのメールは重複", func() {
		t := s.T()

		body := request.RegisterRequest{Name: "Siti", Email: "SITI@student.unsil.ac.id", Password: "rahasia123"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, body, "")
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
		description    string
	}{
		{
			name:           "正常なログイン",
			email:          "siti@student.unsil.ac.id",
			password:       dbtest.DefaultPassword,
			expectedStatus: http.StatusOK,
			description:    "有効な認証情報でログインできること",
		},
		{
			name:           "存在しないユーザー",
			email:          "nobody@unsil.ac.id",
			password:       dbtest.DefaultPassword,
			expectedStatus: http.StatusUnauthorized,
			description:    "存在しないユーザーでログインできないこと",
		},
		{
			name:           "間違ったパスワード",
			email:          "siti@student.unsil.ac.id",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
			description:    "間違ったパスワードでログインできないこと",
		},
		{
			name:           "非アクティブユーザー",
			email:          "inactive@student.unsil.ac.id",
			password:       dbtest.DefaultPassword,
			expectedStatus: http.StatusUnauthorized,
			description:    "非アクティブユーザーはログインできないこと",
		},
		{
			name:           "空のメールアドレス",
			email:          "",
			password:       dbtest.DefaultPassword,
			expectedStatus: http.StatusBadRequest,
			description:    "空のメールアドレスは拒否されること",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.LoginRequest{Email: tt.email, Password: tt.password}
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				var loginRes response.LoginResponse
				require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &loginRes))
				require.NotEmpty(t, loginRes.AccessToken, "アクセストークンが空")
				require.NotEmpty(t, loginRes.RefreshToken, "リフレッシュトークンが空")
				require.Equal(t, tt.email, loginRes.User.Email)

				// last_loginが更新されることを確認
				var lastLogin any
				err := s.DB.QueryRow(t.Context(), "SELECT last_login FROM users WHERE email = $1", tt.email).Scan(&lastLogin)
				require.NoError(t, err)
				require.NotNil(t, lastLogin, "last_loginが更新されていない")
			}
		})
	}
}

func (s *authSuite) TestRefresh() {
	s.Run("正常なリフレッシュ", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "siti@student.unsil.ac.id", Password: dbtest.DefaultPassword}, "")
		require.Equal(t, http.StatusOK, w.Code)
		var loginRes response.LoginResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &loginRes))

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, request.RefreshRequest{RefreshToken: loginRes.RefreshToken}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var refreshRes response.TokenResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &refreshRes))
		require.NotEmpty(t, refreshRes.AccessToken, "新しいアクセストークンが空")
	})

	s.Run("アクセストークンではリフレッシュできない", func() {
		t := s.T()

		access := authtest.LoginUser(t, s.Router, "siti@student.unsil.ac.id", dbtest.DefaultPassword)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, request.RefreshRequest{RefreshToken: access}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("無効なリフレッシュトークン", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, request.RefreshRequest{RefreshToken: "invalid-refresh-token"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestLogoutAndMe() {
	s.Run("ログイン中の本人情報", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, "admin@unsil.ac.id", dbtest.DefaultPassword)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		body := w.Body.String()
		require.Contains(t, body, "admin@unsil.ac.id")
		require.Contains(t, body, string(user.RoleAdmin))
		require.NotContains(t, body, "password", "レスポンスにパスワード情報が含まれている")
	})

	s.Run("ログアウトでクッキーが消える", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "siti@student.unsil.ac.id", Password: dbtest.DefaultPassword}, "")
		require.Equal(t, http.StatusOK, w.Code)

		authtest.LogoutUser(t, s.Router, httptest.ExtractCookies(w))
	})

	s.Run("認証が必要なエンドポイント", func() {
		t := s.T()

		for _, path := range []string{meURL, "/api/rooms", "/api/reservations"} {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, path, nil, "")
			require.Equal(t, http.StatusUnauthorized, w.Code, path)
		}
	})
}

func (s *authSuite) TestTokenExpiry() {
	s.Run("期限切れトークンの拒否", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "expiry@unsil.ac.id", string(user.RoleAdmin))
		expired := s.jwt.CreateExpiredToken(t, userID, user.RoleAdmin)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, expired)
		require.Equal(t, http.StatusUnauthorized, w.Code, "期限切れトークンは拒否されるべき")
	})
}
