package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/adapter/http/handlers/mocks"
	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestSeedAdminHandler_Seed(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc *mocks.MockISeedUseCase) *gin.Engine {
		h := NewSeedAdminHandler(uc)
		r := gin.New()
		r.POST("/v1/public/seed-admin", h.Seed)
		return r
	}

	post := func(r *gin.Engine) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/public/seed-admin", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("creates the admin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISeedUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().EnsureAdmin(gomock.Any()).Return(usecase.SeedResult{
			Created: true, UserID: "u-1", Message: "Admin criado com sucesso",
		}, nil)

		w := post(r)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := w.Body.String(); body != `{"success":true,"message":"Admin criado com sucesso","created":true,"user_id":"u-1"}` {
			t.Fatalf("unexpected body %s", body)
		}
	})

	t.Run("repeat call reports the existing admin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISeedUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().EnsureAdmin(gomock.Any()).Return(usecase.SeedResult{
			Created: false, Message: "Admin já existe no sistema",
		}, nil)

		w := post(r)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := w.Body.String(); body != `{"success":true,"message":"Admin já existe no sistema","created":false}` {
			t.Fatalf("unexpected body %s", body)
		}
	})

	t.Run("failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISeedUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().EnsureAdmin(gomock.Any()).Return(usecase.SeedResult{}, errors.New("db"))

		w := post(r)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
