package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/adapter/http/handlers/mocks"
	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestChatHandler_Ask(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc *mocks.MockIChatUseCase) *gin.Engine {
		h := NewChatHandler(uc)
		r := gin.New()
		r.POST("/v1/public/chat-os", h.Ask)
		return r
	}

	post := func(r *gin.Engine, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/public/chat-os", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChatUseCase(ctrl)
		r := newRouter(uc)

		if w := post(r, "{"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing question", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChatUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().Answer(gomock.Any(), 1001, "", "").Return("", usecase.ErrMissingQuestion)

		w := post(r, `{"numero_os":1001}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := w.Body.String(); body != `{"error":"Número da OS e pergunta são obrigatórios"}` {
			t.Fatalf("unexpected body %s", body)
		}
	})

	t.Run("question too long", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChatUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().Answer(gomock.Any(), 1001, gomock.Any(), "").Return("", usecase.ErrQuestionTooLong)

		w := post(r, `{"numero_os":1001,"pergunta":"qual o status?"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := w.Body.String(); body != `{"error":"Pergunta muito longa. Máximo 500 caracteres."}` {
			t.Fatalf("unexpected body %s", body)
		}
	})

	t.Run("unknown order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChatUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().Answer(gomock.Any(), 9999, "qual o status?", "").Return("", usecase.ErrOrderNotFound)

		w := post(r, `{"numero_os":9999,"pergunta":"qual o status?"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("unexpected failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChatUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().Answer(gomock.Any(), 1001, "qual o status?", "").Return("", errors.New("db"))

		w := post(r, `{"numero_os":1001,"pergunta":"qual o status?"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChatUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().Answer(gomock.Any(), 1001, "qual o status?", "tok-1001").
			Return("A OS nº 1001 está Em Execução.", nil)

		w := post(r, `{"numero_os":1001,"pergunta":"qual o status?","access_token":"tok-1001"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := w.Body.String(); body != `{"resposta":"A OS nº 1001 está Em Execução."}` {
			t.Fatalf("unexpected body %s", body)
		}
	})
}
