package handlers

import (
	"context"
	"encoding/json"
	"errors"
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

func TestPaymentHandler_RecordPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing gross amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITenderWorkflowUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/works/:work_id/payments", h.RecordPayment)

		if w := serve(r, http.MethodPost, "/v1/works/w1/payments", `{"bill_type":"running bill"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("final bill before award", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITenderWorkflowUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/works/:work_id/payments", h.RecordPayment)

		uc.EXPECT().RecordPayment(gomock.Any(), "w1", gomock.Any()).Return(usecase.PaymentReceipt{},
			&usecase.WorkflowError{Class: usecase.ClassBusinessRule, Code: "FINAL_BILL_NOT_ALLOWED", Err: usecase.ErrFinalBillNotAllowed})

		w := serve(r, http.MethodPost, "/v1/works/w1/payments", `{"gross_bill_amount":"50000","bill_type":"final bill"}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("overpayment is reported with the receipt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITenderWorkflowUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/works/:work_id/payments", h.RecordPayment)

		uc.EXPECT().RecordPayment(gomock.Any(), "w1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, in usecase.PaymentInput) (usecase.PaymentReceipt, error) {
				if in.BillType != entities.BillTypeRunning || !in.Deductions.IncomeTax.Equal(decimal.NewFromInt(1000)) {
					t.Fatalf("unexpected input: %+v", in)
				}
				return usecase.PaymentReceipt{
					Entry: entities.PaymentEntry{ID: "p1", WorkID: "w1", GrossBillAmount: in.GrossBillAmount,
						NetAmount: decimal.NewFromInt(119000), BillType: in.BillType, RecordedAt: time.Now()},
					Totals: entities.PaymentTotals{WorkID: "w1", EstimatedCost: decimal.NewFromInt(100000),
						TotalGross: decimal.NewFromInt(120000), Anomaly: &entities.OverpaymentAnomaly{
							EstimatedCost: decimal.NewFromInt(100000), TotalGross: decimal.NewFromInt(120000), Excess: decimal.NewFromInt(20000),
						}},
				}, nil
			})

		w := serve(r, http.MethodPost, "/v1/works/w1/payments",
			`{"gross_bill_amount":"120000","bill_type":"running bill","deductions":{"income_tax":"1000"}}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body struct {
			Totals struct {
				Pending string `json:"pending"`
				Anomaly *struct {
					Excess string `json:"excess"`
				} `json:"anomaly"`
			} `json:"totals"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body.Totals.Anomaly == nil || body.Totals.Anomaly.Excess != "20000.00" || body.Totals.Pending != "0.00" {
			t.Fatalf("unexpected totals: %+v", body.Totals)
		}
	})
}

func TestPaymentHandler_ComputeTotals(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockITenderWorkflowUseCase(ctrl)
	h := NewPaymentHandler(uc)

	r := gin.New()
	r.GET("/v1/works/:work_id/payments/totals", h.ComputeTotals)

	uc.EXPECT().ComputeTotals(gomock.Any(), "w1").Return(entities.PaymentTotals{
		WorkID: "w1", EstimatedCost: decimal.NewFromInt(100000), TotalGross: decimal.NewFromInt(60000),
		TotalNet: decimal.NewFromInt(55000), Pending: decimal.NewFromInt(40000), Entries: 2,
	}, nil)

	w := serve(r, http.MethodGet, "/v1/works/w1/payments/totals", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["pending"] != "40000.00" || body["entries"] != float64(2) {
		t.Fatalf("unexpected body: %v", body)
	}
	if _, ok := body["anomaly"]; ok {
		t.Fatalf("anomaly should be omitted")
	}
}

func TestPaymentHandler_CompletionCertificate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("store failure hides cause", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITenderWorkflowUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/works/:work_id/certificate", h.CompletionCertificate)

		uc.EXPECT().CompletionCertificate(gomock.Any(), "w1").Return(entities.CompletionCertificate{}, &usecase.WorkflowError{
			Class: usecase.ClassInfrastructure, Code: "INFRASTRUCTURE_ERROR", Detail: "list payments",
			Err: usecase.ErrInfrastructure, Cause: errors.New("ProvisionedThroughputExceededException"),
		})

		w := serve(r, http.MethodGet, "/v1/works/w1/certificate", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var body map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "INTERNAL_ERROR" || body["detail"] != "" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITenderWorkflowUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/works/:work_id/certificate", h.CompletionCertificate)

		uc.EXPECT().CompletionCertificate(gomock.Any(), "w1").Return(entities.CompletionCertificate{
			CertificateNo:  "CC/12/PW/2024/3",
			WorkID:         "w1",
			Percentage:     "7.50",
			CompletionDate: time.Date(2024, 9, 30, 0, 0, 0, 0, time.UTC),
		}, nil)

		w := serve(r, http.MethodGet, "/v1/works/w1/certificate", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["certificate_no"] != "CC/12/PW/2024/3" || body["completion_date"] != "2024-09-30" {
			t.Fatalf("unexpected body: %v", body)
		}
		if payments, ok := body["payments"].([]any); !ok || len(payments) != 0 {
			t.Fatalf("expected empty payments list, got %v", body["payments"])
		}
	})
}
