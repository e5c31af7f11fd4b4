package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"tender_service/internal/adapter/http/handlers/mocks"
	"tender_service/internal/domain/entities"
	"tender_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestAwardHandler_AwardContract(t *testing.T) {
	gin.SetMode(gin.TestMode)
	memoDate := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("missing memo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITenderWorkflowUseCase(ctrl)
		h := NewAwardHandler(uc)

		r := gin.New()
		r.POST("/v1/works/:work_id/award", h.AwardContract)

		w := serve(r, http.MethodPost, "/v1/works/w1/award", `{"winning_bid_id":"b2"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("already awarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITenderWorkflowUseCase(ctrl)
		h := NewAwardHandler(uc)

		r := gin.New()
		r.POST("/v1/works/:work_id/award", h.AwardContract)

		uc.EXPECT().AwardContract(gomock.Any(), gomock.Any()).Return(usecase.AwardResult{},
			&usecase.WorkflowError{Class: usecase.ClassBusinessRule, Code: "ALREADY_AWARDED", Err: usecase.ErrAlreadyAwarded})

		w := serve(r, http.MethodPost, "/v1/works/w1/award", `{"winning_bid_id":"b2","work_order_memo_no":"WO/1","work_order_memo_date":"2024-06-01"}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITenderWorkflowUseCase(ctrl)
		h := NewAwardHandler(uc)

		r := gin.New()
		r.POST("/v1/works/:work_id/award", h.AwardContract)

		in := usecase.AwardInput{WorkID: "w1", WinningBidID: "b2", WorkOrderMemoNo: "WO/1", WorkOrderMemoDate: memoDate}
		uc.EXPECT().AwardContract(gomock.Any(), in).Return(usecase.AwardResult{
			Award: entities.Award{ID: "aoc-w1", WorkID: "w1", WorkOrderMemoNo: "WO/1", WorkOrderMemoDate: memoDate},
			Detail: entities.WorkOrderDetail{ID: "wod-w1", AwardID: "aoc-w1", BidID: "b2", AgencyID: "agency-b2",
				EstimatedCost: decimal.NewFromInt(100000), BiddingAmount: decimal.NewFromInt(92500), Percentage: "7.50"},
			Work: entities.Work{ID: "w1", TenderStatus: entities.TenderStatusAOC, AwardID: "aoc-w1"},
		}, nil)

		w := serve(r, http.MethodPost, "/v1/works/w1/award", `{"winning_bid_id":"b2","work_order_memo_no":"WO/1","work_order_memo_date":"2024-06-01"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body struct {
			WorkOrder struct {
				Percentage    string `json:"percentage"`
				BiddingAmount string `json:"bidding_amount"`
			} `json:"work_order"`
			Work struct {
				TenderStatus string `json:"tender_status"`
			} `json:"work"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body.WorkOrder.Percentage != "7.50" || body.WorkOrder.BiddingAmount != "92500.00" || body.Work.TenderStatus != "AOC" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}

func TestAwardHandler_RecordAgreement(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockITenderWorkflowUseCase(ctrl)
	h := NewAwardHandler(uc)

	r := gin.New()
	r.POST("/v1/awards/:award_id/agreement", h.RecordAgreement)

	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	uc.EXPECT().RecordAgreement(gomock.Any(), "aoc-w1", "AG/7", date).Return(entities.Agreement{}, &usecase.WorkflowError{
		Class: usecase.ClassBusinessRule, Code: "AGREEMENT_ALREADY_EXISTS", Err: usecase.ErrAgreementAlreadyExists,
	})
	w := serve(r, http.MethodPost, "/v1/awards/aoc-w1/agreement", `{"agreement_no":"AG/7","agreement_date":"2024-06-10"}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}

	uc.EXPECT().RecordAgreement(gomock.Any(), "aoc-w2", "AG/8", date).Return(entities.Agreement{
		ID: "agr-aoc-w2", AwardID: "aoc-w2", AgreementNo: "AG/8", AgreementDate: date,
	}, nil)
	w = serve(r, http.MethodPost, "/v1/awards/aoc-w2/agreement", `{"agreement_no":"AG/8","agreement_date":"2024-06-10"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
}

func TestAwardHandler_RecordDelivery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty body defaults date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITenderWorkflowUseCase(ctrl)
		h := NewAwardHandler(uc)

		r := gin.New()
		r.PATCH("/v1/awards/:award_id/delivery", h.RecordDelivery)

		uc.EXPECT().RecordDelivery(gomock.Any(), "aoc-w1", time.Time{}).Return(entities.Award{ID: "aoc-w1", Delivered: true}, nil)

		if w := serve(r, http.MethodPatch, "/v1/awards/aoc-w1/delivery", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("explicit date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITenderWorkflowUseCase(ctrl)
		h := NewAwardHandler(uc)

		r := gin.New()
		r.PATCH("/v1/awards/:award_id/delivery", h.RecordDelivery)

		delivered := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().RecordDelivery(gomock.Any(), "aoc-w1", delivered).Return(entities.Award{ID: "aoc-w1", Delivered: true, DeliveryDate: &delivered}, nil)

		w := serve(r, http.MethodPatch, "/v1/awards/aoc-w1/delivery", `{"delivery_date":"2024-07-01"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["delivery_date"] != "2024-07-01" {
			t.Fatalf("unexpected delivery date: %v", body["delivery_date"])
		}
	})

	t.Run("bad date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITenderWorkflowUseCase(ctrl)
		h := NewAwardHandler(uc)

		r := gin.New()
		r.PATCH("/v1/awards/:award_id/delivery", h.RecordDelivery)

		if w := serve(r, http.MethodPatch, "/v1/awards/aoc-w1/delivery", `{"delivery_date":"July 1st"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
