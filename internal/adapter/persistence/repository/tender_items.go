package repository

import (
	"fmt"
	"time"

	"tender_service/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type nitItem struct {
	ID        string   `dynamodbav:"id"`
	MemoNo    string   `dynamodbav:"memo_no"`
	MemoDate  string   `dynamodbav:"memo_date"`
	Published bool     `dynamodbav:"published"`
	IsSupply  bool     `dynamodbav:"is_supply"`
	Cancelled bool     `dynamodbav:"cancelled"`
	WorkIDs   []string `dynamodbav:"work_ids,omitempty"`
	Version   int64    `dynamodbav:"version"`
	CreatedAt string   `dynamodbav:"created_at"`
	UpdatedAt string   `dynamodbav:"updated_at"`
}

// nitMemoItem reserves a memo number; it lives and dies with its NIT.
type nitMemoItem struct {
	MemoKey string `dynamodbav:"memo_key"`
	NitID   string `dynamodbav:"nit_id"`
}

type workItem struct {
	ID             string   `dynamodbav:"id"`
	NitID          string   `dynamodbav:"nit_id"`
	SerialNo       int      `dynamodbav:"serial_no"`
	Description    string   `dynamodbav:"description"`
	EstimatedCost  string   `dynamodbav:"estimated_cost"`
	TenderStatus   string   `dynamodbav:"tender_status"`
	WorkStatus     string   `dynamodbav:"work_status"`
	TenderRound    int      `dynamodbav:"tender_round"`
	BidIDs         []string `dynamodbav:"bid_ids,omitempty"`
	QualifiedAt    string   `dynamodbav:"qualified_at,omitempty"`
	AwardID        string   `dynamodbav:"award_id,omitempty"`
	CompletionDate string   `dynamodbav:"completion_date,omitempty"`
	Version        int64    `dynamodbav:"version"`
	CreatedAt      string   `dynamodbav:"created_at"`
	UpdatedAt      string   `dynamodbav:"updated_at"`
}

type bidItem struct {
	ID            string `dynamodbav:"id"`
	WorkID        string `dynamodbav:"work_id"`
	AgencyID      string `dynamodbav:"agency_id"`
	Round         int    `dynamodbav:"round"`
	Evaluated     bool   `dynamodbav:"evaluated"`
	Qualify       bool   `dynamodbav:"qualify"`
	DocumentRef   string `dynamodbav:"document_ref,omitempty"`
	EvaluatedAt   string `dynamodbav:"evaluated_at,omitempty"`
	BiddingAmount string `dynamodbav:"bidding_amount,omitempty"`
	Version       int64  `dynamodbav:"version"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

type awardItem struct {
	ID                string `dynamodbav:"id"`
	WorkID            string `dynamodbav:"work_id"`
	WorkOrderMemoNo   string `dynamodbav:"work_order_memo_no"`
	WorkOrderMemoDate string `dynamodbav:"work_order_memo_date"`
	Delivered         bool   `dynamodbav:"delivered"`
	DeliveryDate      string `dynamodbav:"delivery_date,omitempty"`
	Version           int64  `dynamodbav:"version"`
	CreatedAt         string `dynamodbav:"created_at"`
}

type workOrderDetailItem struct {
	ID            string `dynamodbav:"id"`
	AwardID       string `dynamodbav:"award_id"`
	BidID         string `dynamodbav:"bid_id"`
	AgencyID      string `dynamodbav:"agency_id"`
	EstimatedCost string `dynamodbav:"estimated_cost"`
	BiddingAmount string `dynamodbav:"bidding_amount"`
	Percentage    string `dynamodbav:"percentage"`
	CreatedAt     string `dynamodbav:"created_at"`
}

type agreementItem struct {
	ID                string `dynamodbav:"id"`
	AwardID           string `dynamodbav:"award_id"`
	WorkOrderDetailID string `dynamodbav:"work_order_detail_id"`
	AgreementNo       string `dynamodbav:"agreement_no"`
	AgreementDate     string `dynamodbav:"agreement_date"`
	CreatedAt         string `dynamodbav:"created_at"`
}

type deductionsItem struct {
	IncomeTax         string `dynamodbav:"income_tax"`
	LabourWelfareCess string `dynamodbav:"labour_welfare_cess"`
	SecurityDeposit   string `dynamodbav:"security_deposit"`
	CGST              string `dynamodbav:"cgst"`
	SGST              string `dynamodbav:"sgst"`
	IGST              string `dynamodbav:"igst"`
}

type paymentItem struct {
	WorkID          string         `dynamodbav:"work_id"`
	ID              string         `dynamodbav:"id"`
	GrossBillAmount string         `dynamodbav:"gross_bill_amount"`
	Deductions      deductionsItem `dynamodbav:"deductions"`
	NetAmount       string         `dynamodbav:"net_amount"`
	BillType        string         `dynamodbav:"bill_type"`
	RecordedAt      string         `dynamodbav:"recorded_at"`
}

func toNitItem(n entities.Nit) nitItem {
	return nitItem{
		ID:        n.ID,
		MemoNo:    n.MemoNo,
		MemoDate:  formatTime(n.MemoDate),
		Published: n.Published,
		IsSupply:  n.IsSupply,
		Cancelled: n.Cancelled,
		WorkIDs:   n.WorkIDs,
		Version:   n.Version,
		CreatedAt: formatTime(n.CreatedAt),
		UpdatedAt: formatTime(n.UpdatedAt),
	}
}

func fromNitItem(it nitItem) (entities.Nit, error) {
	d := itemDecoder{kind: "nit", id: it.ID}
	n := entities.Nit{
		ID:        it.ID,
		MemoNo:    it.MemoNo,
		MemoDate:  d.parseTime("memo_date", it.MemoDate),
		Published: it.Published,
		IsSupply:  it.IsSupply,
		Cancelled: it.Cancelled,
		WorkIDs:   it.WorkIDs,
		Version:   it.Version,
		CreatedAt: d.parseTime("created_at", it.CreatedAt),
		UpdatedAt: d.parseTime("updated_at", it.UpdatedAt),
	}
	return n, d.err
}

func toWorkItem(w entities.Work) workItem {
	return workItem{
		ID:             w.ID,
		NitID:          w.NitID,
		SerialNo:       w.SerialNo,
		Description:    w.Description,
		EstimatedCost:  w.EstimatedCost.String(),
		TenderStatus:   string(w.TenderStatus),
		WorkStatus:     string(w.WorkStatus),
		TenderRound:    w.TenderRound,
		BidIDs:         w.BidIDs,
		QualifiedAt:    formatTimePtr(w.QualifiedAt),
		AwardID:        w.AwardID,
		CompletionDate: formatTimePtr(w.CompletionDate),
		Version:        w.Version,
		CreatedAt:      formatTime(w.CreatedAt),
		UpdatedAt:      formatTime(w.UpdatedAt),
	}
}

// fromWorkItem rejects statuses outside the closed enumerations and
// malformed money or timestamps.
func fromWorkItem(it workItem) (entities.Work, error) {
	tender := entities.TenderStatus(it.TenderStatus)
	if !tender.Valid() {
		return entities.Work{}, fmt.Errorf("work %s: unknown tender status %q", it.ID, it.TenderStatus)
	}
	status := entities.WorkStatus(it.WorkStatus)
	if !status.Valid() {
		return entities.Work{}, fmt.Errorf("work %s: unknown work status %q", it.ID, it.WorkStatus)
	}
	d := itemDecoder{kind: "work", id: it.ID}
	w := entities.Work{
		ID:             it.ID,
		NitID:          it.NitID,
		SerialNo:       it.SerialNo,
		Description:    it.Description,
		EstimatedCost:  d.parseDecimal("estimated_cost", it.EstimatedCost),
		TenderStatus:   tender,
		WorkStatus:     status,
		TenderRound:    it.TenderRound,
		BidIDs:         it.BidIDs,
		QualifiedAt:    d.parseTimePtr("qualified_at", it.QualifiedAt),
		AwardID:        it.AwardID,
		CompletionDate: d.parseTimePtr("completion_date", it.CompletionDate),
		Version:        it.Version,
		CreatedAt:      d.parseTime("created_at", it.CreatedAt),
		UpdatedAt:      d.parseTime("updated_at", it.UpdatedAt),
	}
	return w, d.err
}

func toBidItem(b entities.Bid) bidItem {
	it := bidItem{
		ID:        b.ID,
		WorkID:    b.WorkID,
		AgencyID:  b.AgencyID,
		Round:     b.Round,
		Version:   b.Version,
		CreatedAt: formatTime(b.CreatedAt),
		UpdatedAt: formatTime(b.UpdatedAt),
	}
	if b.Evaluation != nil {
		it.Evaluated = true
		it.Qualify = b.Evaluation.Qualify
		it.DocumentRef = b.Evaluation.DocumentRef
		it.EvaluatedAt = formatTime(b.Evaluation.EvaluatedAt)
	}
	if b.BiddingAmount != nil {
		it.BiddingAmount = b.BiddingAmount.String()
	}
	return it
}

func fromBidItem(it bidItem) (entities.Bid, error) {
	d := itemDecoder{kind: "bid", id: it.ID}
	b := entities.Bid{
		ID:        it.ID,
		WorkID:    it.WorkID,
		AgencyID:  it.AgencyID,
		Round:     it.Round,
		Version:   it.Version,
		CreatedAt: d.parseTime("created_at", it.CreatedAt),
		UpdatedAt: d.parseTime("updated_at", it.UpdatedAt),
	}
	if it.Evaluated {
		b.Evaluation = &entities.TechnicalEvaluation{
			Qualify:     it.Qualify,
			DocumentRef: it.DocumentRef,
			EvaluatedAt: d.parseTime("evaluated_at", it.EvaluatedAt),
		}
	}
	if it.BiddingAmount != "" {
		amount := d.parseDecimal("bidding_amount", it.BiddingAmount)
		b.BiddingAmount = &amount
	}
	return b, d.err
}

func toAwardItem(a entities.Award) awardItem {
	return awardItem{
		ID:                a.ID,
		WorkID:            a.WorkID,
		WorkOrderMemoNo:   a.WorkOrderMemoNo,
		WorkOrderMemoDate: formatTime(a.WorkOrderMemoDate),
		Delivered:         a.Delivered,
		DeliveryDate:      formatTimePtr(a.DeliveryDate),
		Version:           a.Version,
		CreatedAt:         formatTime(a.CreatedAt),
	}
}

func fromAwardItem(it awardItem) (entities.Award, error) {
	d := itemDecoder{kind: "award", id: it.ID}
	a := entities.Award{
		ID:                it.ID,
		WorkID:            it.WorkID,
		WorkOrderMemoNo:   it.WorkOrderMemoNo,
		WorkOrderMemoDate: d.parseTime("work_order_memo_date", it.WorkOrderMemoDate),
		Delivered:         it.Delivered,
		DeliveryDate:      d.parseTimePtr("delivery_date", it.DeliveryDate),
		Version:           it.Version,
		CreatedAt:         d.parseTime("created_at", it.CreatedAt),
	}
	return a, d.err
}

func toWorkOrderDetailItem(d entities.WorkOrderDetail) workOrderDetailItem {
	return workOrderDetailItem{
		ID:            d.ID,
		AwardID:       d.AwardID,
		BidID:         d.BidID,
		AgencyID:      d.AgencyID,
		EstimatedCost: d.EstimatedCost.String(),
		BiddingAmount: d.BiddingAmount.String(),
		Percentage:    d.Percentage,
		CreatedAt:     formatTime(d.CreatedAt),
	}
}

func fromWorkOrderDetailItem(it workOrderDetailItem) (entities.WorkOrderDetail, error) {
	d := itemDecoder{kind: "work order", id: it.ID}
	detail := entities.WorkOrderDetail{
		ID:            it.ID,
		AwardID:       it.AwardID,
		BidID:         it.BidID,
		AgencyID:      it.AgencyID,
		EstimatedCost: d.parseDecimal("estimated_cost", it.EstimatedCost),
		BiddingAmount: d.parseDecimal("bidding_amount", it.BiddingAmount),
		Percentage:    it.Percentage,
		CreatedAt:     d.parseTime("created_at", it.CreatedAt),
	}
	return detail, d.err
}

func toAgreementItem(a entities.Agreement) agreementItem {
	return agreementItem{
		ID:                a.ID,
		AwardID:           a.AwardID,
		WorkOrderDetailID: a.WorkOrderDetailID,
		AgreementNo:       a.AgreementNo,
		AgreementDate:     formatTime(a.AgreementDate),
		CreatedAt:         formatTime(a.CreatedAt),
	}
}

func fromAgreementItem(it agreementItem) (entities.Agreement, error) {
	d := itemDecoder{kind: "agreement", id: it.ID}
	a := entities.Agreement{
		ID:                it.ID,
		AwardID:           it.AwardID,
		WorkOrderDetailID: it.WorkOrderDetailID,
		AgreementNo:       it.AgreementNo,
		AgreementDate:     d.parseTime("agreement_date", it.AgreementDate),
		CreatedAt:         d.parseTime("created_at", it.CreatedAt),
	}
	return a, d.err
}

func toPaymentItem(p entities.PaymentEntry) paymentItem {
	return paymentItem{
		WorkID:          p.WorkID,
		ID:              p.ID,
		GrossBillAmount: p.GrossBillAmount.String(),
		Deductions: deductionsItem{
			IncomeTax:         p.Deductions.IncomeTax.String(),
			LabourWelfareCess: p.Deductions.LabourWelfareCess.String(),
			SecurityDeposit:   p.Deductions.SecurityDeposit.String(),
			CGST:              p.Deductions.CGST.String(),
			SGST:              p.Deductions.SGST.String(),
			IGST:              p.Deductions.IGST.String(),
		},
		NetAmount:  p.NetAmount.String(),
		BillType:   string(p.BillType),
		RecordedAt: formatTime(p.RecordedAt),
	}
}

func fromPaymentItem(it paymentItem) (entities.PaymentEntry, error) {
	billType, err := entities.ParseBillType(it.BillType)
	if err != nil {
		return entities.PaymentEntry{}, fmt.Errorf("payment %s: %w", it.ID, err)
	}
	d := itemDecoder{kind: "payment", id: it.ID}
	entry := entities.PaymentEntry{
		ID:              it.ID,
		WorkID:          it.WorkID,
		GrossBillAmount: d.parseDecimal("gross_bill_amount", it.GrossBillAmount),
		Deductions: entities.Deductions{
			IncomeTax:         d.parseDecimal("income_tax", it.Deductions.IncomeTax),
			LabourWelfareCess: d.parseDecimal("labour_welfare_cess", it.Deductions.LabourWelfareCess),
			SecurityDeposit:   d.parseDecimal("security_deposit", it.Deductions.SecurityDeposit),
			CGST:              d.parseDecimal("cgst", it.Deductions.CGST),
			SGST:              d.parseDecimal("sgst", it.Deductions.SGST),
			IGST:              d.parseDecimal("igst", it.Deductions.IGST),
		},
		NetAmount:  d.parseDecimal("net_amount", it.NetAmount),
		BillType:   billType,
		RecordedAt: d.parseTime("recorded_at", it.RecordedAt),
	}
	return entry, d.err
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

// itemDecoder keeps the first malformed stored field of an item so a corrupt
// record surfaces as an error instead of a zero value.
type itemDecoder struct {
	kind string
	id   string
	err  error
}

func (d *itemDecoder) fail(field, raw string, err error) {
	if d.err == nil {
		d.err = fmt.Errorf("%s %s: malformed %s %q: %w", d.kind, d.id, field, raw, err)
	}
}

func (d *itemDecoder) parseTime(field, s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		d.fail(field, s, err)
	}
	return t
}

func (d *itemDecoder) parseTimePtr(field, s string) *time.Time {
	if s == "" {
		return nil
	}
	t := d.parseTime(field, s)
	return &t
}

// Money is stored as a decimal string so no precision is lost on the way
// through DynamoDB numbers.
func (d *itemDecoder) parseDecimal(field, s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		d.fail(field, s, err)
		return decimal.Zero
	}
	return v
}
