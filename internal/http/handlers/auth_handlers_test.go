package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/you/attendsvc/domain"
	"github.com/you/attendsvc/internal/mocks"
)

func performJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func authRouter(authSvc *mocks.MockAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandlers(authSvc)
	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.POST("/auth/register", h.Register)
	r.POST("/auth/request-otp", h.RequestOTP)
	r.POST("/auth/verify-otp", h.VerifyOTP)
	r.POST("/auth/reset-password", h.ResetPassword)
	return r
}

func TestAuthHandlers_Login(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		setupMocks     func(*mocks.MockAuthService)
		expectedStatus int
	}{
		{
			name: "successful login",
			body: LoginRequest{Username: "john", Password: "secret123"},
			setupMocks: func(authSvc *mocks.MockAuthService) {
				authSvc.LoginFunc = func(ctx context.Context, username, password string) (*domain.AuthResult, error) {
					return &domain.AuthResult{
						User:      &domain.User{ID: 1, Username: username, Role: domain.RoleUser, IsActive: true},
						Token:     "jwt-token",
						ExpiresIn: 86400,
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "bad credentials",
			body: LoginRequest{Username: "john", Password: "wrong"},
			setupMocks: func(authSvc *mocks.MockAuthService) {
				authSvc.LoginFunc = func(ctx context.Context, username, password string) (*domain.AuthResult, error) {
					return nil, domain.ErrInvalidCredentials
				}
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "inactive account looks like bad credentials",
			body: LoginRequest{Username: "john", Password: "secret123"},
			setupMocks: func(authSvc *mocks.MockAuthService) {
				authSvc.LoginFunc = func(ctx context.Context, username, password string) (*domain.AuthResult, error) {
					return nil, domain.ErrUserInactive
				}
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "missing fields",
			body:           map[string]string{"username": "john"},
			setupMocks:     func(authSvc *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := mocks.NewMockAuthService()
			tt.setupMocks(authSvc)
			r := authRouter(authSvc)

			w := performJSON(t, r, http.MethodPost, "/auth/login", tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var resp struct {
					Data struct {
						Token     string `json:"token"`
						TokenType string `json:"token_type"`
						ExpiresIn int64  `json:"expires_in"`
					} `json:"data"`
				}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, "jwt-token", resp.Data.Token)
				assert.Equal(t, "Bearer", resp.Data.TokenType)
				assert.Equal(t, int64(86400), resp.Data.ExpiresIn)
			}
		})
	}
}

func TestAuthHandlers_Register(t *testing.T) {
	t.Run("duplicate user", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService()
		authSvc.RegisterFunc = func(ctx context.Context, username, password, name, email, role string) (*domain.User, error) {
			return nil, domain.ErrUserAlreadyExists
		}
		r := authRouter(authSvc)

		w := performJSON(t, r, http.MethodPost, "/auth/register", RegisterRequest{
			Username: "john", Password: "secret123", Name: "John Doe", Email: "john@example.com",
		})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("created", func(t *testing.T) {
		r := authRouter(mocks.NewMockAuthService())

		w := performJSON(t, r, http.MethodPost, "/auth/register", RegisterRequest{
			Username: "jane", Password: "secret123", Name: "Jane Smith", Email: "jane@example.com",
		})
		assert.Equal(t, http.StatusCreated, w.Code)
	})
}

func TestAuthHandlers_PasswordResetFlow(t *testing.T) {
	t.Run("request-otp answers the same for unknown emails", func(t *testing.T) {
		r := authRouter(mocks.NewMockAuthService())

		w := performJSON(t, r, http.MethodPost, "/auth/request-otp", RequestOTPRequest{Email: "nobody@example.com"})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "If the email is registered")
	})

	t.Run("request-otp throttled", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService()
		authSvc.RequestPasswordResetFunc = func(ctx context.Context, email string) error {
			return domain.ErrOTPResendLimit
		}
		r := authRouter(authSvc)

		w := performJSON(t, r, http.MethodPost, "/auth/request-otp", RequestOTPRequest{Email: "john@example.com"})
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
	})

	t.Run("verify-otp rejects a wrong code", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService()
		authSvc.VerifyResetOTPFunc = func(ctx context.Context, email, code string) error {
			return domain.ErrOTPInvalid
		}
		r := authRouter(authSvc)

		w := performJSON(t, r, http.MethodPost, "/auth/verify-otp", VerifyOTPRequest{Email: "john@example.com", OTP: "000000"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("verify-otp max attempts", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService()
		authSvc.VerifyResetOTPFunc = func(ctx context.Context, email, code string) error {
			return domain.ErrOTPMaxAttempts
		}
		r := authRouter(authSvc)

		w := performJSON(t, r, http.MethodPost, "/auth/verify-otp", VerifyOTPRequest{Email: "john@example.com", OTP: "000000"})
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
	})

	t.Run("reset-password succeeds with a valid code", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService()
		var gotEmail, gotCode, gotPassword string
		authSvc.ResetPasswordFunc = func(ctx context.Context, email, code, newPassword string) error {
			gotEmail, gotCode, gotPassword = email, code, newPassword
			return nil
		}
		r := authRouter(authSvc)

		w := performJSON(t, r, http.MethodPost, "/auth/reset-password", ResetPasswordRequest{
			Email: "john@example.com", OTP: "123456", NewPassword: "newsecret",
		})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "john@example.com", gotEmail)
		assert.Equal(t, "123456", gotCode)
		assert.Equal(t, "newsecret", gotPassword)
	})

	t.Run("reset-password with expired code", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService()
		authSvc.ResetPasswordFunc = func(ctx context.Context, email, code, newPassword string) error {
			return domain.ErrOTPNotFound
		}
		r := authRouter(authSvc)

		w := performJSON(t, r, http.MethodPost, "/auth/reset-password", ResetPasswordRequest{
			Email: "john@example.com", OTP: "123456", NewPassword: "newsecret",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
