package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// TechnicalEvaluation is the qualify/disqualify outcome recorded for a bid.
type TechnicalEvaluation struct {
	Qualify     bool      `json:"qualify"`
	DocumentRef string    `json:"document_ref"`
	EvaluatedAt time.Time `json:"evaluated_at"`
}

// Bid is one agency's submission against a Work (a "bid agency" row).
//
// Storage model (DynamoDB):
//   - PK: id
//   - the owning work lists current-round bid ids, so the gate loads bids by key.
type Bid struct {
	ID            string               `json:"id"`
	WorkID        string               `json:"work_id"`
	AgencyID      string               `json:"agency_id"`
	Round         int                  `json:"round"`
	Evaluation    *TechnicalEvaluation `json:"evaluation,omitempty"`
	BiddingAmount *decimal.Decimal     `json:"bidding_amount,omitempty"`
	Version       int64                `json:"version"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

func (b Bid) Evaluated() bool {
	return b.Evaluation != nil
}

func (b Bid) Qualified() bool {
	return b.Evaluation != nil && b.Evaluation.Qualify
}
