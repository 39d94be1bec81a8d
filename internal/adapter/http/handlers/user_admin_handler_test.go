package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/adapter/http/handlers/mocks"
	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/domain/entities"
	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestUserAdminHandler_AssignRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc *mocks.MockIUserAdminUseCase) *gin.Engine {
		h := NewUserAdminHandler(uc)
		r := gin.New()
		r.POST("/v1/admin/users/role", h.AssignRole)
		return r
	}

	post := func(r *gin.Engine, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/admin/users/role", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserAdminUseCase(ctrl)
		r := newRouter(uc)

		if w := post(r, `{"user_id":"u-1"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserAdminUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().AssignRole(gomock.Any(), "u-1", entities.Role("root")).Return(usecase.ErrInvalidRole)

		if w := post(r, `{"user_id":"u-1","role":"root"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("assigns", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserAdminUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().AssignRole(gomock.Any(), "u-1", entities.RoleAdmin).Return(nil)

		if w := post(r, `{"user_id":"u-1","role":"admin"}`); w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestUserAdminHandler_ListRoles(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIUserAdminUseCase(ctrl)
	h := NewUserAdminHandler(uc)

	uc.EXPECT().ListRoles(gomock.Any()).Return([]entities.RoleAssignment{
		{UserID: "u-1", Email: "admin@oficina.com", Role: entities.RoleAdmin},
	}, nil)

	r := gin.New()
	r.GET("/v1/admin/users", h.ListRoles)

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/users", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
