package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/adapter/http/handlers/mocks"
	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/domain/entities"
	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPublicLookupHandler_Lookup(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc *mocks.MockILookupUseCase) *gin.Engine {
		h := NewPublicLookupHandler(uc)
		r := gin.New()
		r.POST("/v1/public/consultar-os", h.Lookup)
		return r
	}

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILookupUseCase(ctrl)
		r := newRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/public/consultar-os", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing order number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILookupUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().GetPublicSnapshot(gomock.Any(), 0, "", gomock.Any()).
			Return(entities.Snapshot{}, usecase.ErrMissingOrderNumber)

		req := httptest.NewRequest(http.MethodPost, "/v1/public/consultar-os", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := w.Body.String(); body != `{"error":"Número da OS é obrigatório"}` {
			t.Fatalf("unexpected body %s", body)
		}
	})

	t.Run("unknown order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILookupUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().GetPublicSnapshot(gomock.Any(), 9999, "", gomock.Any()).
			Return(entities.Snapshot{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/public/consultar-os", bytes.NewBufferString(`{"numero_os":9999}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if body := w.Body.String(); body != `{"error":"OS não encontrada"}` {
			t.Fatalf("unexpected body %s", body)
		}
	})

	t.Run("repository failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILookupUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().GetPublicSnapshot(gomock.Any(), 1001, "", gomock.Any()).
			Return(entities.Snapshot{}, errors.New("db"))

		req := httptest.NewRequest(http.MethodPost, "/v1/public/consultar-os", bytes.NewBufferString(`{"numero_os":1001}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("forwards caller identity from the proxy headers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILookupUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().GetPublicSnapshot(gomock.Any(), 1001, "tok-1001", usecase.CallerInfo{
			IP:        "203.0.113.9",
			UserAgent: "status-page",
		}).Return(entities.Snapshot{Public: entities.PublicSnapshot{NumeroOS: 1001}}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/public/consultar-os",
			bytes.NewBufferString(`{"numero_os":1001,"access_token":"tok-1001"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
		req.Header.Set("User-Agent", "status-page")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("success serves the public projection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILookupUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().GetPublicSnapshot(gomock.Any(), 1001, "", gomock.Any()).Return(entities.Snapshot{
			Public: entities.PublicSnapshot{
				NumeroOS:        1001,
				Status:          "Em Execução",
				StatusKey:       entities.OSStatusEmConserto,
				DefeitoRelatado: "Farol apagado",
				DataEntrada:     time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
			},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/public/consultar-os", bytes.NewBufferString(`{"numero_os":1001}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["numero_os"].(float64) != 1001 || body["status"] != "Em Execução" {
			t.Fatalf("unexpected body %v", body)
		}
		if _, hasVeiculo := body["veiculo"]; !hasVeiculo {
			t.Fatalf("expected veiculo key (null) in the body")
		}
		if _, gated := body["orcamento"]; gated {
			t.Fatalf("public projection must not carry the orcamento key")
		}
	})
}
