package usecase

import (
	"time"

	"tender_service/internal/domain/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentInput is one bill submitted for disbursement.
type PaymentInput struct {
	GrossBillAmount decimal.Decimal
	Deductions      entities.Deductions
	BillType        entities.BillType
}

// PaymentLedger validates ledger appends and derives paid/pending totals.
type PaymentLedger struct {
	now   func() time.Time
	newID func() string
}

func NewPaymentLedger(now func() time.Time, newID func() string) PaymentLedger {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	if newID == nil {
		newID = uuid.NewString
	}
	return PaymentLedger{now: now, newID: newID}
}

// Prepare builds the entry to append. Amounts may not be negative and the
// deductions may not exceed the gross bill; a final bill needs an awarded work.
func (l PaymentLedger) Prepare(work entities.Work, in PaymentInput) (entities.PaymentEntry, error) {
	if work.ID == "" {
		return entities.PaymentEntry{}, rejectf(ErrWorkNotFound, "work does not exist")
	}
	if in.GrossBillAmount.IsNegative() {
		return entities.PaymentEntry{}, rejectf(ErrInvalidAmount, "gross bill amount %s is negative", in.GrossBillAmount.StringFixed(2))
	}
	if in.Deductions.HasNegative() {
		return entities.PaymentEntry{}, rejectf(ErrInvalidAmount, "deductions may not be negative")
	}
	net := in.GrossBillAmount.Sub(in.Deductions.Total())
	if net.IsNegative() {
		return entities.PaymentEntry{}, rejectf(ErrInvalidAmount, "deductions %s exceed gross bill %s", in.Deductions.Total().StringFixed(2), in.GrossBillAmount.StringFixed(2))
	}
	billType, err := entities.ParseBillType(string(in.BillType))
	if err != nil {
		return entities.PaymentEntry{}, rejectf(ErrInvalidInput, "%v", err)
	}
	if billType.IsFinal() && work.TenderStatus != entities.TenderStatusAOC {
		return entities.PaymentEntry{}, rejectf(ErrFinalBillNotAllowed, "work %s is %s; a final bill needs an awarded work", work.ID, work.TenderStatus)
	}

	return entities.PaymentEntry{
		ID:              l.newID(),
		WorkID:          work.ID,
		GrossBillAmount: in.GrossBillAmount,
		Deductions:      in.Deductions,
		NetAmount:       net,
		BillType:        billType,
		RecordedAt:      l.now(),
	}, nil
}

// Totals expects entries to be one consistent snapshot of the ledger.
func (l PaymentLedger) Totals(work entities.Work, entries []entities.PaymentEntry) entities.PaymentTotals {
	return entities.ComputePaymentTotals(work, entries)
}

func (l PaymentLedger) HasFinalBill(entries []entities.PaymentEntry) bool {
	for _, e := range entries {
		if e.BillType.IsFinal() {
			return true
		}
	}
	return false
}
