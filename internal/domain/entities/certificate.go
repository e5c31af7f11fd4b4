package entities

import (
	"fmt"
	"strings"
	"time"
)

// CompletionCertificate is derived from a completed work and its ledger. It is
// never stored; the same inputs always produce the same certificate.
type CompletionCertificate struct {
	CertificateNo     string         `json:"certificate_no"`
	NitReference      string         `json:"nit_reference"`
	WorkID            string         `json:"work_id"`
	SerialNo          int            `json:"serial_no"`
	Description       string         `json:"description"`
	AgencyID          string         `json:"agency_id,omitempty"`
	WorkOrderMemoNo   string         `json:"work_order_memo_no,omitempty"`
	WorkOrderMemoDate *time.Time     `json:"work_order_memo_date,omitempty"`
	AgreementNo       string         `json:"agreement_no,omitempty"`
	AgreementDate     *time.Time     `json:"agreement_date,omitempty"`
	Percentage        string         `json:"percentage"`
	CompletionDate    time.Time      `json:"completion_date"`
	Totals            PaymentTotals  `json:"totals"`
	Payments          []PaymentEntry `json:"payments"`
}

// CertificateInput gathers the records a certificate is derived from. Award,
// detail and agreement are optional: supply works may complete without an
// agreement on file.
type CertificateInput struct {
	Nit       Nit
	Work      Work
	Award     *Award
	Detail    *WorkOrderDetail
	Agreement *Agreement
	Payments  []PaymentEntry
}

// CertificateNumber is deterministic per work so regeneration is idempotent.
func CertificateNumber(nit Nit, work Work) string {
	memo := strings.ReplaceAll(strings.TrimSpace(nit.MemoNo), " ", "")
	return fmt.Sprintf("CC/%s/%d", memo, work.SerialNo)
}

// BuildCompletionCertificate assumes the caller checked the completion date
// and that at least one payment exists.
func BuildCompletionCertificate(in CertificateInput) CompletionCertificate {
	payments := make([]PaymentEntry, len(in.Payments))
	copy(payments, in.Payments)

	c := CompletionCertificate{
		CertificateNo: CertificateNumber(in.Nit, in.Work),
		NitReference:  in.Nit.Reference(),
		WorkID:        in.Work.ID,
		SerialNo:      in.Work.SerialNo,
		Description:   in.Work.Description,
		Percentage:    "0.00",
		Totals:        ComputePaymentTotals(in.Work, payments),
		Payments:      payments,
	}
	if in.Work.CompletionDate != nil {
		c.CompletionDate = *in.Work.CompletionDate
	}
	if in.Award != nil {
		d := in.Award.WorkOrderMemoDate
		c.WorkOrderMemoNo = in.Award.WorkOrderMemoNo
		c.WorkOrderMemoDate = &d
	}
	if in.Detail != nil {
		c.AgencyID = in.Detail.AgencyID
		c.Percentage = in.Detail.Percentage
	}
	if in.Agreement != nil {
		d := in.Agreement.AgreementDate
		c.AgreementNo = in.Agreement.AgreementNo
		c.AgreementDate = &d
	}
	return c
}
