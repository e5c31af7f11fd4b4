package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Work is a single schedule item tendered under a NIT.
//
// Storage model (DynamoDB):
//   - PK: id
//   - every write is conditioned on the loaded version (and tender status), so a
//     concurrent writer makes the commit fail instead of being overwritten.
//
// BidIDs lists the bids of the current tender round only. A retender increments
// TenderRound and starts a fresh list; earlier bids stay in the bids table.
type Work struct {
	ID             string          `json:"id"`
	NitID          string          `json:"nit_id"`
	SerialNo       int             `json:"serial_no"`
	Description    string          `json:"description"`
	EstimatedCost  decimal.Decimal `json:"estimated_cost"`
	TenderStatus   TenderStatus    `json:"tender_status"`
	WorkStatus     WorkStatus      `json:"work_status"`
	TenderRound    int             `json:"tender_round"`
	BidIDs         []string        `json:"bid_ids"`
	QualifiedAt    *time.Time      `json:"qualified_at,omitempty"`
	AwardID        string          `json:"award_id,omitempty"`
	CompletionDate *time.Time      `json:"completion_date,omitempty"`
	Version        int64           `json:"version"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func (w Work) HasBid(bidID string) bool {
	for _, id := range w.BidIDs {
		if id == bidID {
			return true
		}
	}
	return false
}

// WithoutBid returns a copy of the bid list without bidID.
func (w Work) WithoutBid(bidID string) []string {
	out := make([]string, 0, len(w.BidIDs))
	for _, id := range w.BidIDs {
		if id != bidID {
			out = append(out, id)
		}
	}
	return out
}

func (w Work) Awarded() bool {
	return w.TenderStatus == TenderStatusAOC && w.AwardID != ""
}
