package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"tender_service/internal/adapter/http/handlers/mocks"
	"tender_service/internal/domain/entities"
	"tender_service/internal/usecase"
	"tender_service/internal/usecase/readview"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newWorkRouter(t *testing.T) (*gin.Engine, *mocks.MockITenderWorkflowUseCase, *mocks.MockIWorkSummaryService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockITenderWorkflowUseCase(ctrl)
	summary := mocks.NewMockIWorkSummaryService(ctrl)
	h := NewWorkHandler(uc, summary)

	r := gin.New()
	r.GET("/v1/works/:work_id", h.GetWork)
	r.PATCH("/v1/works/:work_id/tender-status", h.AdvanceTenderStage)
	r.POST("/v1/works/:work_id/cancel", h.CancelWork)
	r.POST("/v1/works/:work_id/retender", h.RetenderWork)
	r.PATCH("/v1/works/:work_id/work-status", h.ChangeWorkStatus)
	r.GET("/v1/works/:work_id/qualification", h.QualificationStatus)
	r.GET("/v1/works/:work_id/summary", h.GetSummary)
	return r, uc, summary
}

func TestWorkHandler_AdvanceTenderStage(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		r, _, _ := newWorkRouter(t)
		w := serve(r, http.MethodPatch, "/v1/works/w1/tender-status", `{"tender_status":"Shortlisted"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("alias is accepted", func(t *testing.T) {
		r, uc, _ := newWorkRouter(t)
		uc.EXPECT().AdvanceTenderStage(gomock.Any(), "w1", entities.TenderStatusAOC).
			Return(entities.Work{ID: "w1", TenderStatus: entities.TenderStatusAOC}, nil)

		w := serve(r, http.MethodPatch, "/v1/works/w1/tender-status", `{"tender_status":"Awarded"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("gate rejection carries detail", func(t *testing.T) {
		r, uc, _ := newWorkRouter(t)
		uc.EXPECT().AdvanceTenderStage(gomock.Any(), "w1", entities.TenderStatusFinancialBidOpening).
			Return(entities.Work{}, &usecase.WorkflowError{
				Class:  usecase.ClassBusinessRule,
				Code:   "INSUFFICIENT_QUALIFIED_BIDDERS",
				Detail: "2 of 3 required qualified bidders",
				Err:    usecase.ErrInsufficientQualifiedBidders,
			})

		w := serve(r, http.MethodPatch, "/v1/works/w1/tender-status", `{"tender_status":"FinancialBidOpening"}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body["code"] != "INSUFFICIENT_QUALIFIED_BIDDERS" || body["detail"] != "2 of 3 required qualified bidders" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("lost race", func(t *testing.T) {
		r, uc, _ := newWorkRouter(t)
		uc.EXPECT().AdvanceTenderStage(gomock.Any(), "w1", gomock.Any()).
			Return(entities.Work{}, &usecase.WorkflowError{Class: usecase.ClassConflict, Code: "CONCURRENT_MODIFICATION", Err: usecase.ErrConcurrentModification})

		w := serve(r, http.MethodPatch, "/v1/works/w1/tender-status", `{"tender_status":"TechnicalEvaluation"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestWorkHandler_CancelAndRetender(t *testing.T) {
	r, uc, _ := newWorkRouter(t)
	uc.EXPECT().CancelWork(gomock.Any(), "w1").Return(entities.Work{ID: "w1", TenderStatus: entities.TenderStatusCancelled}, nil)
	uc.EXPECT().RetenderWork(gomock.Any(), "w1").Return(entities.Work{ID: "w1", TenderStatus: entities.TenderStatusToBeOpened, TenderRound: 2}, nil)

	w := serve(r, http.MethodPost, "/v1/works/w1/cancel", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = serve(r, http.MethodPost, "/v1/works/w1/retender", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["tender_round"] != float64(2) {
		t.Fatalf("expected round 2, got %v", body["tender_round"])
	}
}

func TestWorkHandler_ChangeWorkStatus(t *testing.T) {
	t.Run("missing status", func(t *testing.T) {
		r, _, _ := newWorkRouter(t)
		if w := serve(r, http.MethodPatch, "/v1/works/w1/work-status", `{}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not awarded", func(t *testing.T) {
		r, uc, _ := newWorkRouter(t)
		uc.EXPECT().ChangeWorkStatus(gomock.Any(), "w1", entities.WorkStatusInProgress).
			Return(entities.Work{}, &usecase.WorkflowError{Class: usecase.ClassBusinessRule, Code: "WORK_NOT_AWARDED", Err: usecase.ErrWorkNotAwarded})

		if w := serve(r, http.MethodPatch, "/v1/works/w1/work-status", `{"work_status":"workinprogress"}`); w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("completed sets completion date", func(t *testing.T) {
		r, uc, _ := newWorkRouter(t)
		done := time.Date(2024, 9, 30, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().ChangeWorkStatus(gomock.Any(), "w1", entities.WorkStatusCompleted).
			Return(entities.Work{ID: "w1", WorkStatus: entities.WorkStatusCompleted, CompletionDate: &done}, nil)

		w := serve(r, http.MethodPatch, "/v1/works/w1/work-status", `{"work_status":"workcompleted"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["completion_date"] != "2024-09-30" {
			t.Fatalf("unexpected completion date: %v", body["completion_date"])
		}
	})
}

func TestWorkHandler_QualificationStatus(t *testing.T) {
	r, uc, _ := newWorkRouter(t)
	uc.EXPECT().QualificationStatus(gomock.Any(), "w1").Return(usecase.QualificationSummary{
		WorkID: "w1", TotalBids: 3, Evaluated: 3, Qualified: 2, Required: 3,
		Outcome: usecase.OutcomeInsufficient,
	}, nil)

	w := serve(r, http.MethodGet, "/v1/works/w1/qualification", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body usecase.QualificationSummary
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if body.Qualified != 2 || body.CanAdvance {
		t.Fatalf("unexpected summary: %+v", body)
	}
}

func TestWorkHandler_GetSummary(t *testing.T) {
	t.Run("served from summary service", func(t *testing.T) {
		r, _, summary := newWorkRouter(t)
		summary.EXPECT().Get(gomock.Any(), "w1").Return(readview.WorkSummary{
			Work:   entities.Work{ID: "w1", TenderStatus: entities.TenderStatusAOC},
			Totals: entities.PaymentTotals{WorkID: "w1", Pending: decimal.NewFromInt(40000)},
		}, nil)

		w := serve(r, http.MethodGet, "/v1/works/w1/summary", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown work", func(t *testing.T) {
		r, _, summary := newWorkRouter(t)
		summary.EXPECT().Get(gomock.Any(), "nope").Return(readview.WorkSummary{},
			&usecase.WorkflowError{Class: usecase.ClassNotFound, Code: "WORK_NOT_FOUND", Err: usecase.ErrWorkNotFound})

		if w := serve(r, http.MethodGet, "/v1/works/nope/summary", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
