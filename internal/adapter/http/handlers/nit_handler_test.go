package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tender_service/internal/adapter/http/handlers/mocks"
	"tender_service/internal/domain/entities"
	"tender_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestNitHandler_PublishNit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITenderWorkflowUseCase(ctrl)
		h := NewNitHandler(uc)

		r := gin.New()
		r.POST("/v1/nits", h.PublishNit)

		w := serve(r, http.MethodPost, "/v1/nits", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid memo date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITenderWorkflowUseCase(ctrl)
		h := NewNitHandler(uc)

		r := gin.New()
		r.POST("/v1/nits", h.PublishNit)

		w := serve(r, http.MethodPost, "/v1/nits", `{"memo_no":"12/PW/2024","memo_date":"01/05/2024"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate memo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITenderWorkflowUseCase(ctrl)
		h := NewNitHandler(uc)

		r := gin.New()
		r.POST("/v1/nits", h.PublishNit)

		uc.EXPECT().PublishNit(gomock.Any(), gomock.Any()).Return(entities.Nit{},
			&usecase.WorkflowError{Class: usecase.ClassBusinessRule, Code: "DUPLICATE_MEMO", Err: usecase.ErrDuplicateMemo})

		w := serve(r, http.MethodPost, "/v1/nits", `{"memo_no":"12/PW/2024","memo_date":"2024-05-01"}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITenderWorkflowUseCase(ctrl)
		h := NewNitHandler(uc)

		r := gin.New()
		r.POST("/v1/nits", h.PublishNit)

		memoDate := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().PublishNit(gomock.Any(), usecase.PublishNitInput{MemoNo: "12/PW/2024", MemoDate: memoDate, IsSupply: true}).
			Return(entities.Nit{ID: "n1", MemoNo: "12/PW/2024", MemoDate: memoDate, IsSupply: true, Published: true}, nil)

		w := serve(r, http.MethodPost, "/v1/nits", `{"memo_no":"12/PW/2024","memo_date":"2024-05-01","is_supply":true}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body["id"] != "n1" || body["memo_date"] != "2024-05-01" {
			t.Fatalf("unexpected body: %v", body)
		}
		if ids, ok := body["work_ids"].([]any); !ok || len(ids) != 0 {
			t.Fatalf("expected empty work_ids, got %v", body["work_ids"])
		}
	})
}

func TestNitHandler_GetNit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITenderWorkflowUseCase(ctrl)
		h := NewNitHandler(uc)

		r := gin.New()
		r.GET("/v1/nits/:nit_id", h.GetNit)

		uc.EXPECT().GetNit(gomock.Any(), "missing").Return(usecase.NitDetail{},
			&usecase.WorkflowError{Class: usecase.ClassNotFound, Code: "NIT_NOT_FOUND", Err: usecase.ErrNitNotFound})

		w := serve(r, http.MethodGet, "/v1/nits/missing", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success with works", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITenderWorkflowUseCase(ctrl)
		h := NewNitHandler(uc)

		r := gin.New()
		r.GET("/v1/nits/:nit_id", h.GetNit)

		uc.EXPECT().GetNit(gomock.Any(), "n1").Return(usecase.NitDetail{
			Nit:   entities.Nit{ID: "n1", MemoNo: "12/PW/2024", WorkIDs: []string{"w1"}},
			Works: []entities.Work{{ID: "w1", NitID: "n1", TenderStatus: entities.TenderStatusToBeOpened}},
		}, nil)

		w := serve(r, http.MethodGet, "/v1/nits/n1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Works []struct {
				ID           string `json:"id"`
				TenderStatus string `json:"tender_status"`
			} `json:"works"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if len(body.Works) != 1 || body.Works[0].TenderStatus != "ToBeOpened" {
			t.Fatalf("unexpected works: %+v", body.Works)
		}
	})
}

func TestNitHandler_DeleteNit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockITenderWorkflowUseCase(ctrl)
	h := NewNitHandler(uc)

	r := gin.New()
	r.DELETE("/v1/nits/:nit_id", h.DeleteNit)

	uc.EXPECT().DeleteNit(gomock.Any(), "n1").Return(
		&usecase.WorkflowError{Class: usecase.ClassBusinessRule, Code: "NIT_HAS_WORKS", Err: usecase.ErrNitHasWorks})
	if w := serve(r, http.MethodDelete, "/v1/nits/n1", ""); w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}

	uc.EXPECT().DeleteNit(gomock.Any(), "n2").Return(nil)
	if w := serve(r, http.MethodDelete, "/v1/nits/n2", ""); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestNitHandler_AddWork(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing estimate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITenderWorkflowUseCase(ctrl)
		h := NewNitHandler(uc)

		r := gin.New()
		r.POST("/v1/nits/:nit_id/works", h.AddWork)

		w := serve(r, http.MethodPost, "/v1/nits/n1/works", `{"serial_no":1,"description":"Road"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITenderWorkflowUseCase(ctrl)
		h := NewNitHandler(uc)

		r := gin.New()
		r.POST("/v1/nits/:nit_id/works", h.AddWork)

		uc.EXPECT().AddWork(gomock.Any(), "n1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, in usecase.AddWorkInput) (entities.Work, error) {
				if in.SerialNo != 1 || !in.EstimatedCost.Equal(decimal.NewFromInt(100000)) {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Work{ID: "w1", NitID: "n1", SerialNo: 1, EstimatedCost: in.EstimatedCost,
					TenderStatus: entities.TenderStatusToBeOpened, WorkStatus: entities.WorkStatusYetToStart}, nil
			})

		w := serve(r, http.MethodPost, "/v1/nits/n1/works", `{"serial_no":1,"description":"Road","estimated_cost":"100000"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["estimated_cost"] != "100000.00" {
			t.Fatalf("expected formatted estimate, got %v", body["estimated_cost"])
		}
	})
}
