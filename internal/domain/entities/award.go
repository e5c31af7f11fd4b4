package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	awardIDPrefix           = "aoc-"
	workOrderDetailIDPrefix = "wod-"
	agreementIDPrefix       = "agr-"
)

// AwardIDForWork derives the award id from the work id. One award per work is
// then a create-only put on a fixed key, which the store can enforce inside the
// same transaction that advances the work.
func AwardIDForWork(workID string) string { return awardIDPrefix + workID }

func WorkOrderDetailIDForAward(awardID string) string { return workOrderDetailIDPrefix + awardID }

func AgreementIDForAward(awardID string) string { return agreementIDPrefix + awardID }

// Award is the Award of Contract (AOC) for a Work.
//
// Immutable after creation except for the delivery acknowledgement fields.
type Award struct {
	ID                string     `json:"id"`
	WorkID            string     `json:"work_id"`
	WorkOrderMemoNo   string     `json:"work_order_memo_no"`
	WorkOrderMemoDate time.Time  `json:"work_order_memo_date"`
	Delivered         bool       `json:"delivered"`
	DeliveryDate      *time.Time `json:"delivery_date,omitempty"`
	Version           int64      `json:"version"`
	CreatedAt         time.Time  `json:"created_at"`
}

// WorkOrderDetail links an Award to the winning Bid and freezes the award terms.
type WorkOrderDetail struct {
	ID            string          `json:"id"`
	AwardID       string          `json:"award_id"`
	BidID         string          `json:"bid_id"`
	AgencyID      string          `json:"agency_id"`
	EstimatedCost decimal.Decimal `json:"estimated_cost"`
	BiddingAmount decimal.Decimal `json:"bidding_amount"`
	Percentage    string          `json:"percentage"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Agreement is the legal instrument executed after the award.
type Agreement struct {
	ID                string    `json:"id"`
	AwardID           string    `json:"award_id"`
	WorkOrderDetailID string    `json:"work_order_detail_id"`
	AgreementNo       string    `json:"agreement_no"`
	AgreementDate     time.Time `json:"agreement_date"`
	CreatedAt         time.Time `json:"created_at"`
}

var hundred = decimal.NewFromInt(100)

// BidPercentage computes (estimate - bid) / estimate * 100 with two decimals.
// A negative result means the bid is above the estimate. Zero estimate or a
// missing operand yields "0.00".
func BidPercentage(estimatedCost, biddingAmount *decimal.Decimal) string {
	if estimatedCost == nil || biddingAmount == nil || estimatedCost.IsZero() {
		return "0.00"
	}
	pct := estimatedCost.Sub(*biddingAmount).Div(*estimatedCost).Mul(hundred)
	return pct.StringFixed(2)
}
