package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/adapter/http/handlers/mocks"
	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/adapter/http/middleware"
	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/domain/entities"
	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc *mocks.MockIAuthUseCase) *gin.Engine {
		h := NewAuthHandler(uc)
		r := gin.New()
		r.POST("/v1/auth/login", h.Login)
		return r
	}

	post := func(r *gin.Engine, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		r := newRouter(uc)

		w := post(r, `{"email":"admin@oficina.com"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := w.Body.String(); body != `{"code":"INVALID_LOGIN_INPUT","message":"Invalid login payload"}` {
			t.Fatalf("unexpected body %s", body)
		}
	})

	t.Run("rejected credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().Login(gomock.Any(), "admin@oficina.com", "errada").
			Return("", entities.AuthUser{}, usecase.ErrInvalidLogin)

		w := post(r, `{"email":"admin@oficina.com","password":"errada"}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if body := w.Body.String(); body != `{"code":"INVALID_CREDENTIALS","message":"Invalid email or password"}` {
			t.Fatalf("unexpected body %s", body)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().Login(gomock.Any(), "admin@oficina.com", "senha123").
			Return("token-abc", entities.AuthUser{ID: "u-1", Email: "admin@oficina.com", Role: entities.RoleAdmin}, nil)

		w := post(r, `{"email":"admin@oficina.com","password":"senha123"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body struct {
			Token string `json:"token"`
			User  struct {
				ID   string `json:"id"`
				Role string `json:"role"`
			} `json:"user"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body.Token != "token-abc" || body.User.ID != "u-1" || body.User.Role != "admin" {
			t.Fatalf("unexpected body %+v", body)
		}
	})
}

func TestAuthHandler_Me(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("resolved identity is echoed back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		uc.EXPECT().Authenticate(gomock.Any(), "Bearer token-abc").
			Return(entities.AuthUser{ID: "u-1", Email: "admin@oficina.com", Role: entities.RoleAdmin}, nil)

		r := gin.New()
		r.GET("/v1/auth/me", middleware.Authentication(uc), h.Me)

		req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
		req.Header.Set("Authorization", "Bearer token-abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := w.Body.String(); body != `{"id":"u-1","email":"admin@oficina.com","role":"admin"}` {
			t.Fatalf("unexpected body %s", body)
		}
	})

	t.Run("no credential", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		uc.EXPECT().Authenticate(gomock.Any(), "").
			Return(entities.AuthUser{}, usecase.ErrMissingCredential)

		r := gin.New()
		r.GET("/v1/auth/me", middleware.Authentication(uc), h.Me)

		req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if body := w.Body.String(); body != `{"error":"Token não fornecido"}` {
			t.Fatalf("unexpected body %s", body)
		}
	})
}
