package response

import (
	"time"

	"tender_service/internal/domain/entities"
	"tender_service/internal/usecase"
	"tender_service/internal/usecase/readview"

	"github.com/shopspring/decimal"
)

// Money is rendered as a fixed two-decimal string so clients never see
// floating point.
func money(d decimal.Decimal) string { return d.StringFixed(2) }

func moneyPtr(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := money(*d)
	return &s
}

func dateOnly(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.DateOnly)
}

func datePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := dateOnly(*t)
	return &s
}

type NitResponse struct {
	ID        string         `json:"id"`
	MemoNo    string         `json:"memo_no"`
	MemoDate  string         `json:"memo_date"`
	Reference string         `json:"reference"`
	Published bool           `json:"published"`
	IsSupply  bool           `json:"is_supply"`
	Cancelled bool           `json:"cancelled"`
	WorkIDs   []string       `json:"work_ids"`
	Works     []WorkResponse `json:"works,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func FromNit(n entities.Nit) NitResponse {
	ids := n.WorkIDs
	if ids == nil {
		ids = []string{}
	}
	return NitResponse{
		ID:        n.ID,
		MemoNo:    n.MemoNo,
		MemoDate:  dateOnly(n.MemoDate),
		Reference: n.Reference(),
		Published: n.Published,
		IsSupply:  n.IsSupply,
		Cancelled: n.Cancelled,
		WorkIDs:   ids,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func FromNitDetail(d usecase.NitDetail) NitResponse {
	r := FromNit(d.Nit)
	r.Works = make([]WorkResponse, 0, len(d.Works))
	for _, w := range d.Works {
		r.Works = append(r.Works, FromWork(w))
	}
	return r
}

type WorkResponse struct {
	ID             string     `json:"id"`
	NitID          string     `json:"nit_id"`
	SerialNo       int        `json:"serial_no"`
	Description    string     `json:"description"`
	EstimatedCost  string     `json:"estimated_cost"`
	TenderStatus   string     `json:"tender_status"`
	WorkStatus     string     `json:"work_status"`
	TenderRound    int        `json:"tender_round"`
	BidIDs         []string   `json:"bid_ids"`
	QualifiedAt    *time.Time `json:"qualified_at,omitempty"`
	AwardID        string     `json:"award_id,omitempty"`
	CompletionDate *string    `json:"completion_date,omitempty"`
	Version        int64      `json:"version"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func FromWork(w entities.Work) WorkResponse {
	ids := w.BidIDs
	if ids == nil {
		ids = []string{}
	}
	return WorkResponse{
		ID:             w.ID,
		NitID:          w.NitID,
		SerialNo:       w.SerialNo,
		Description:    w.Description,
		EstimatedCost:  money(w.EstimatedCost),
		TenderStatus:   string(w.TenderStatus),
		WorkStatus:     string(w.WorkStatus),
		TenderRound:    w.TenderRound,
		BidIDs:         ids,
		QualifiedAt:    w.QualifiedAt,
		AwardID:        w.AwardID,
		CompletionDate: datePtr(w.CompletionDate),
		Version:        w.Version,
		UpdatedAt:      w.UpdatedAt,
	}
}

type EvaluationResponse struct {
	Qualify     bool      `json:"qualify"`
	DocumentRef string    `json:"document_ref"`
	EvaluatedAt time.Time `json:"evaluated_at"`
}

type BidResponse struct {
	ID            string              `json:"id"`
	WorkID        string              `json:"work_id"`
	AgencyID      string              `json:"agency_id"`
	Round         int                 `json:"round"`
	Evaluation    *EvaluationResponse `json:"evaluation,omitempty"`
	BiddingAmount *string             `json:"bidding_amount,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
}

func FromBid(b entities.Bid) BidResponse {
	r := BidResponse{
		ID:            b.ID,
		WorkID:        b.WorkID,
		AgencyID:      b.AgencyID,
		Round:         b.Round,
		BiddingAmount: moneyPtr(b.BiddingAmount),
		CreatedAt:     b.CreatedAt,
	}
	if b.Evaluation != nil {
		r.Evaluation = &EvaluationResponse{
			Qualify:     b.Evaluation.Qualify,
			DocumentRef: b.Evaluation.DocumentRef,
			EvaluatedAt: b.Evaluation.EvaluatedAt,
		}
	}
	return r
}

type AwardResponse struct {
	ID                string  `json:"id"`
	WorkID            string  `json:"work_id"`
	WorkOrderMemoNo   string  `json:"work_order_memo_no"`
	WorkOrderMemoDate string  `json:"work_order_memo_date"`
	Delivered         bool    `json:"delivered"`
	DeliveryDate      *string `json:"delivery_date,omitempty"`
}

func FromAward(a entities.Award) AwardResponse {
	return AwardResponse{
		ID:                a.ID,
		WorkID:            a.WorkID,
		WorkOrderMemoNo:   a.WorkOrderMemoNo,
		WorkOrderMemoDate: dateOnly(a.WorkOrderMemoDate),
		Delivered:         a.Delivered,
		DeliveryDate:      datePtr(a.DeliveryDate),
	}
}

type WorkOrderDetailResponse struct {
	ID            string `json:"id"`
	BidID         string `json:"bid_id"`
	AgencyID      string `json:"agency_id"`
	EstimatedCost string `json:"estimated_cost"`
	BiddingAmount string `json:"bidding_amount"`
	Percentage    string `json:"percentage"`
}

type AwardResultResponse struct {
	Award     AwardResponse           `json:"award"`
	WorkOrder WorkOrderDetailResponse `json:"work_order"`
	Work      WorkResponse            `json:"work"`
}

func FromAwardResult(r usecase.AwardResult) AwardResultResponse {
	return AwardResultResponse{
		Award: FromAward(r.Award),
		WorkOrder: WorkOrderDetailResponse{
			ID:            r.Detail.ID,
			BidID:         r.Detail.BidID,
			AgencyID:      r.Detail.AgencyID,
			EstimatedCost: money(r.Detail.EstimatedCost),
			BiddingAmount: money(r.Detail.BiddingAmount),
			Percentage:    r.Detail.Percentage,
		},
		Work: FromWork(r.Work),
	}
}

type AgreementResponse struct {
	ID            string `json:"id"`
	AwardID       string `json:"award_id"`
	AgreementNo   string `json:"agreement_no"`
	AgreementDate string `json:"agreement_date"`
}

func FromAgreement(a entities.Agreement) AgreementResponse {
	return AgreementResponse{
		ID:            a.ID,
		AwardID:       a.AwardID,
		AgreementNo:   a.AgreementNo,
		AgreementDate: dateOnly(a.AgreementDate),
	}
}

type DeductionsResponse struct {
	IncomeTax         string `json:"income_tax"`
	LabourWelfareCess string `json:"labour_welfare_cess"`
	SecurityDeposit   string `json:"security_deposit"`
	CGST              string `json:"cgst"`
	SGST              string `json:"sgst"`
	IGST              string `json:"igst"`
	Total             string `json:"total"`
}

type PaymentResponse struct {
	ID              string             `json:"id"`
	WorkID          string             `json:"work_id"`
	BillType        string             `json:"bill_type"`
	GrossBillAmount string             `json:"gross_bill_amount"`
	Deductions      DeductionsResponse `json:"deductions"`
	NetAmount       string             `json:"net_amount"`
	RecordedAt      time.Time          `json:"recorded_at"`
}

func FromPayment(p entities.PaymentEntry) PaymentResponse {
	d := p.Deductions
	return PaymentResponse{
		ID:              p.ID,
		WorkID:          p.WorkID,
		BillType:        string(p.BillType),
		GrossBillAmount: money(p.GrossBillAmount),
		Deductions: DeductionsResponse{
			IncomeTax:         money(d.IncomeTax),
			LabourWelfareCess: money(d.LabourWelfareCess),
			SecurityDeposit:   money(d.SecurityDeposit),
			CGST:              money(d.CGST),
			SGST:              money(d.SGST),
			IGST:              money(d.IGST),
			Total:             money(d.Total()),
		},
		NetAmount:  money(p.NetAmount),
		RecordedAt: p.RecordedAt,
	}
}

type AnomalyResponse struct {
	EstimatedCost string `json:"estimated_cost"`
	TotalGross    string `json:"total_gross"`
	Excess        string `json:"excess"`
}

type TotalsResponse struct {
	WorkID            string           `json:"work_id"`
	EstimatedCost     string           `json:"estimated_cost"`
	TotalGross        string           `json:"total_gross"`
	TotalNet          string           `json:"total_net"`
	Pending           string           `json:"pending"`
	FinalBillRecorded bool             `json:"final_bill_recorded"`
	Entries           int              `json:"entries"`
	Anomaly           *AnomalyResponse `json:"anomaly,omitempty"`
}

func FromTotals(t entities.PaymentTotals) TotalsResponse {
	r := TotalsResponse{
		WorkID:            t.WorkID,
		EstimatedCost:     money(t.EstimatedCost),
		TotalGross:        money(t.TotalGross),
		TotalNet:          money(t.TotalNet),
		Pending:           money(t.Pending),
		FinalBillRecorded: t.FinalBillRecorded,
		Entries:           t.Entries,
	}
	if t.Anomaly != nil {
		r.Anomaly = &AnomalyResponse{
			EstimatedCost: money(t.Anomaly.EstimatedCost),
			TotalGross:    money(t.Anomaly.TotalGross),
			Excess:        money(t.Anomaly.Excess),
		}
	}
	return r
}

type PaymentReceiptResponse struct {
	Payment PaymentResponse `json:"payment"`
	Totals  TotalsResponse  `json:"totals"`
}

func FromPaymentReceipt(r usecase.PaymentReceipt) PaymentReceiptResponse {
	return PaymentReceiptResponse{Payment: FromPayment(r.Entry), Totals: FromTotals(r.Totals)}
}

type CertificateResponse struct {
	CertificateNo     string            `json:"certificate_no"`
	NitReference      string            `json:"nit_reference"`
	WorkID            string            `json:"work_id"`
	SerialNo          int               `json:"serial_no"`
	Description       string            `json:"description"`
	AgencyID          string            `json:"agency_id,omitempty"`
	WorkOrderMemoNo   string            `json:"work_order_memo_no,omitempty"`
	WorkOrderMemoDate *string           `json:"work_order_memo_date,omitempty"`
	AgreementNo       string            `json:"agreement_no,omitempty"`
	AgreementDate     *string           `json:"agreement_date,omitempty"`
	Percentage        string            `json:"percentage"`
	CompletionDate    string            `json:"completion_date"`
	Totals            TotalsResponse    `json:"totals"`
	Payments          []PaymentResponse `json:"payments"`
}

func FromCertificate(c entities.CompletionCertificate) CertificateResponse {
	payments := make([]PaymentResponse, 0, len(c.Payments))
	for _, p := range c.Payments {
		payments = append(payments, FromPayment(p))
	}
	return CertificateResponse{
		CertificateNo:     c.CertificateNo,
		NitReference:      c.NitReference,
		WorkID:            c.WorkID,
		SerialNo:          c.SerialNo,
		Description:       c.Description,
		AgencyID:          c.AgencyID,
		WorkOrderMemoNo:   c.WorkOrderMemoNo,
		WorkOrderMemoDate: datePtr(c.WorkOrderMemoDate),
		AgreementNo:       c.AgreementNo,
		AgreementDate:     datePtr(c.AgreementDate),
		Percentage:        c.Percentage,
		CompletionDate:    dateOnly(c.CompletionDate),
		Totals:            FromTotals(c.Totals),
		Payments:          payments,
	}
}

type WorkSummaryResponse struct {
	Work          WorkResponse                 `json:"work"`
	Qualification usecase.QualificationSummary `json:"qualification"`
	Totals        TotalsResponse               `json:"totals"`
	GeneratedAt   time.Time                    `json:"generated_at"`
}

func FromWorkSummary(s readview.WorkSummary) WorkSummaryResponse {
	return WorkSummaryResponse{
		Work:          FromWork(s.Work),
		Qualification: s.Qualification,
		Totals:        FromTotals(s.Totals),
		GeneratedAt:   s.GeneratedAt,
	}
}
