package entities

import (
	"strings"
	"time"
)

// Nit is a Notice Inviting Tender: the published solicitation grouping one or
// more Works.
//
// Storage model (DynamoDB):
//   - PK: id
//   - memo uniqueness is held by a guard item keyed by the normalized memo number
//     (see MemoKey), written in the same transaction as the NIT.
//
// WorkIDs keeps the constituent works in serial order; sibling loads for the
// cancellation cascade read this list with a consistent read instead of an index.
type Nit struct {
	ID        string    `json:"id"`
	MemoNo    string    `json:"memo_no"`
	MemoDate  time.Time `json:"memo_date"`
	Published bool      `json:"published"`
	IsSupply  bool      `json:"is_supply"`
	Cancelled bool      `json:"cancelled"`
	WorkIDs   []string  `json:"work_ids"`
	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Reference is the human-readable memo reference, e.g. "12/PW/2024 dated 02-01-2024".
func (n Nit) Reference() string {
	if n.MemoDate.IsZero() {
		return n.MemoNo
	}
	return n.MemoNo + " dated " + n.MemoDate.Format("02-01-2006")
}

func (n Nit) HasWork(workID string) bool {
	for _, id := range n.WorkIDs {
		if id == workID {
			return true
		}
	}
	return false
}

// NitCancellationDue reports whether every work of a NIT is cancelled, which is
// when the NIT itself must be flagged cancelled. A NIT without works is never
// cancelled by cascade.
func NitCancellationDue(works []Work) bool {
	if len(works) == 0 {
		return false
	}
	for _, w := range works {
		if w.TenderStatus != TenderStatusCancelled {
			return false
		}
	}
	return true
}

// MemoKey normalizes a memo number for the uniqueness guard: case and
// whitespace do not make two memos distinct.
func MemoKey(memoNo string) string {
	return strings.ToUpper(strings.Join(strings.Fields(memoNo), ""))
}
