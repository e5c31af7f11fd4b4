package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// BillType classifies a payment entry. A final bill closes the account.
type BillType string

const (
	BillTypeAdvance BillType = "advance bill"
	BillTypeRunning BillType = "running bill"
	BillTypeFinal   BillType = "final bill"
)

var billTypes = []BillType{BillTypeAdvance, BillTypeRunning, BillTypeFinal}

// ParseBillType normalizes case and separators ("Final_Bill", "final-bill").
func ParseBillType(raw string) (BillType, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	v = strings.Join(strings.FieldsFunc(v, func(r rune) bool {
		return r == ' ' || r == '_' || r == '-'
	}), " ")
	for _, t := range billTypes {
		if v == string(t) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown bill type %q", raw)
}

func (t BillType) IsFinal() bool { return t == BillTypeFinal }

// Deductions are the statutory deductions withheld from a gross bill.
type Deductions struct {
	IncomeTax         decimal.Decimal `json:"income_tax"`
	LabourWelfareCess decimal.Decimal `json:"labour_welfare_cess"`
	SecurityDeposit   decimal.Decimal `json:"security_deposit"`
	CGST              decimal.Decimal `json:"cgst"`
	SGST              decimal.Decimal `json:"sgst"`
	IGST              decimal.Decimal `json:"igst"`
}

func (d Deductions) components() []decimal.Decimal {
	return []decimal.Decimal{d.IncomeTax, d.LabourWelfareCess, d.SecurityDeposit, d.CGST, d.SGST, d.IGST}
}

func (d Deductions) Total() decimal.Decimal {
	return decimal.Sum(decimal.Zero, d.components()...)
}

func (d Deductions) HasNegative() bool {
	for _, c := range d.components() {
		if c.IsNegative() {
			return true
		}
	}
	return false
}

// PaymentEntry is an append-only ledger row against a Work.
//
// Storage model (DynamoDB):
//   - PK: work_id, SK: id; a single consistent Query returns the ledger.
type PaymentEntry struct {
	ID              string          `json:"id"`
	WorkID          string          `json:"work_id"`
	GrossBillAmount decimal.Decimal `json:"gross_bill_amount"`
	Deductions      Deductions      `json:"deductions"`
	NetAmount       decimal.Decimal `json:"net_amount"`
	BillType        BillType        `json:"bill_type"`
	RecordedAt      time.Time       `json:"recorded_at"`
}

// OverpaymentAnomaly flags a ledger whose gross total exceeds the estimate.
// It is reported alongside results, never returned as an error.
type OverpaymentAnomaly struct {
	EstimatedCost decimal.Decimal `json:"estimated_cost"`
	TotalGross    decimal.Decimal `json:"total_gross"`
	Excess        decimal.Decimal `json:"excess"`
}

// PaymentTotals summarizes the ledger of one work.
type PaymentTotals struct {
	WorkID            string              `json:"work_id"`
	EstimatedCost     decimal.Decimal     `json:"estimated_cost"`
	TotalGross        decimal.Decimal     `json:"total_gross"`
	TotalNet          decimal.Decimal     `json:"total_net"`
	Pending           decimal.Decimal     `json:"pending"`
	FinalBillRecorded bool                `json:"final_bill_recorded"`
	Entries           int                 `json:"entries"`
	Anomaly           *OverpaymentAnomaly `json:"anomaly,omitempty"`
}

// ComputePaymentTotals applies the pending rule: zero once any final bill is
// recorded, otherwise the estimate minus the gross total, never below zero.
func ComputePaymentTotals(work Work, entries []PaymentEntry) PaymentTotals {
	t := PaymentTotals{
		WorkID:        work.ID,
		EstimatedCost: work.EstimatedCost,
		TotalGross:    decimal.Zero,
		TotalNet:      decimal.Zero,
		Pending:       decimal.Zero,
		Entries:       len(entries),
	}
	for _, e := range entries {
		t.TotalGross = t.TotalGross.Add(e.GrossBillAmount)
		t.TotalNet = t.TotalNet.Add(e.NetAmount)
		if e.BillType.IsFinal() {
			t.FinalBillRecorded = true
		}
	}

	if t.TotalGross.GreaterThan(work.EstimatedCost) {
		t.Anomaly = &OverpaymentAnomaly{
			EstimatedCost: work.EstimatedCost,
			TotalGross:    t.TotalGross,
			Excess:        t.TotalGross.Sub(work.EstimatedCost),
		}
	}
	if !t.FinalBillRecorded {
		if pending := work.EstimatedCost.Sub(t.TotalGross); pending.IsPositive() {
			t.Pending = pending
		}
	}
	return t
}
