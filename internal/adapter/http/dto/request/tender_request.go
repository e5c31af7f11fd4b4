package request

import (
	"errors"
	"strings"
	"time"

	"tender_service/internal/domain/entities"
	"tender_service/internal/usecase"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDate   = errors.New("invalid date")
	ErrMissingAmount = errors.New("amount is required")
)

// ParseDate accepts a calendar date ("2024-01-02") or an RFC 3339 timestamp.
// An empty string yields the zero time.
func ParseDate(raw string) (time.Time, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.DateOnly, v); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t.UTC(), nil
}

type PublishNitRequest struct {
	MemoNo   string `json:"memo_no" binding:"required"`
	MemoDate string `json:"memo_date" binding:"required"`
	IsSupply bool   `json:"is_supply"`
}

func (r PublishNitRequest) ToInput() (usecase.PublishNitInput, error) {
	date, err := ParseDate(r.MemoDate)
	if err != nil {
		return usecase.PublishNitInput{}, err
	}
	return usecase.PublishNitInput{MemoNo: r.MemoNo, MemoDate: date, IsSupply: r.IsSupply}, nil
}

type AddWorkRequest struct {
	SerialNo      int              `json:"serial_no" binding:"required"`
	Description   string           `json:"description"`
	EstimatedCost *decimal.Decimal `json:"estimated_cost"`
}

func (r AddWorkRequest) ToInput() (usecase.AddWorkInput, error) {
	if r.EstimatedCost == nil {
		return usecase.AddWorkInput{}, ErrMissingAmount
	}
	return usecase.AddWorkInput{SerialNo: r.SerialNo, Description: r.Description, EstimatedCost: *r.EstimatedCost}, nil
}

type RegisterBidRequest struct {
	AgencyID string `json:"agency_id" binding:"required"`
}

type TechnicalEvaluationRequest struct {
	Qualify     *bool  `json:"qualify" binding:"required"`
	DocumentRef string `json:"document_ref" binding:"required"`
}

type BidAmountRequest struct {
	BiddingAmount *decimal.Decimal `json:"bidding_amount"`
}

type AdvanceStageRequest struct {
	TenderStatus string `json:"tender_status" binding:"required"`
}

func (r AdvanceStageRequest) Target() (entities.TenderStatus, error) {
	return entities.ParseTenderStatus(r.TenderStatus)
}

type WorkStatusRequest struct {
	WorkStatus string `json:"work_status" binding:"required"`
}

func (r WorkStatusRequest) Target() (entities.WorkStatus, error) {
	return entities.ParseWorkStatus(r.WorkStatus)
}

type AwardRequest struct {
	WinningBidID      string `json:"winning_bid_id" binding:"required"`
	WorkOrderMemoNo   string `json:"work_order_memo_no" binding:"required"`
	WorkOrderMemoDate string `json:"work_order_memo_date" binding:"required"`
}

func (r AwardRequest) ToInput(workID string) (usecase.AwardInput, error) {
	date, err := ParseDate(r.WorkOrderMemoDate)
	if err != nil {
		return usecase.AwardInput{}, err
	}
	return usecase.AwardInput{
		WorkID:            workID,
		WinningBidID:      r.WinningBidID,
		WorkOrderMemoNo:   r.WorkOrderMemoNo,
		WorkOrderMemoDate: date,
	}, nil
}

type AgreementRequest struct {
	AgreementNo   string `json:"agreement_no" binding:"required"`
	AgreementDate string `json:"agreement_date" binding:"required"`
}

// DeliveryRequest may be empty; the delivery date then defaults to today.
type DeliveryRequest struct {
	DeliveryDate string `json:"delivery_date"`
}

type DeductionsRequest struct {
	IncomeTax         decimal.Decimal `json:"income_tax"`
	LabourWelfareCess decimal.Decimal `json:"labour_welfare_cess"`
	SecurityDeposit   decimal.Decimal `json:"security_deposit"`
	CGST              decimal.Decimal `json:"cgst"`
	SGST              decimal.Decimal `json:"sgst"`
	IGST              decimal.Decimal `json:"igst"`
}

type PaymentRequest struct {
	GrossBillAmount *decimal.Decimal  `json:"gross_bill_amount"`
	Deductions      DeductionsRequest `json:"deductions"`
	BillType        string            `json:"bill_type" binding:"required"`
}

func (r PaymentRequest) ToInput() (usecase.PaymentInput, error) {
	if r.GrossBillAmount == nil {
		return usecase.PaymentInput{}, ErrMissingAmount
	}
	return usecase.PaymentInput{
		GrossBillAmount: *r.GrossBillAmount,
		Deductions: entities.Deductions{
			IncomeTax:         r.Deductions.IncomeTax,
			LabourWelfareCess: r.Deductions.LabourWelfareCess,
			SecurityDeposit:   r.Deductions.SecurityDeposit,
			CGST:              r.Deductions.CGST,
			SGST:              r.Deductions.SGST,
			IGST:              r.Deductions.IGST,
		},
		BillType: entities.BillType(r.BillType),
	}, nil
}
