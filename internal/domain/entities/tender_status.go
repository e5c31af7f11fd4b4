package entities

import (
	"fmt"
	"strings"
)

// TenderStatus is the procurement stage of a Work.
//
// The zero value is not a valid status; values are produced by the constants
// below or by ParseTenderStatus, so free text never reaches the store.
type TenderStatus string

const (
	TenderStatusToBeOpened          TenderStatus = "ToBeOpened"
	TenderStatusTechnicalBidOpening TenderStatus = "TechnicalBidOpening"
	TenderStatusTechnicalEvaluation TenderStatus = "TechnicalEvaluation"
	TenderStatusFinancialBidOpening TenderStatus = "FinancialBidOpening"
	TenderStatusFinancialEvaluation TenderStatus = "FinancialEvaluation"
	TenderStatusAOC                 TenderStatus = "AOC"
	TenderStatusCancelled           TenderStatus = "Cancelled"
	TenderStatusRetender            TenderStatus = "Retender"
)

// tenderForward is the adjacency set of the forward path.
var tenderForward = map[TenderStatus]TenderStatus{
	TenderStatusToBeOpened:          TenderStatusTechnicalBidOpening,
	TenderStatusTechnicalBidOpening: TenderStatusTechnicalEvaluation,
	TenderStatusTechnicalEvaluation: TenderStatusFinancialBidOpening,
	TenderStatusFinancialBidOpening: TenderStatusFinancialEvaluation,
	TenderStatusFinancialEvaluation: TenderStatusAOC,
}

var tenderStatuses = []TenderStatus{
	TenderStatusToBeOpened,
	TenderStatusTechnicalBidOpening,
	TenderStatusTechnicalEvaluation,
	TenderStatusFinancialBidOpening,
	TenderStatusFinancialEvaluation,
	TenderStatusAOC,
	TenderStatusCancelled,
	TenderStatusRetender,
}

// TenderStatuses lists every tender status in path order.
func TenderStatuses() []TenderStatus {
	out := make([]TenderStatus, len(tenderStatuses))
	copy(out, tenderStatuses)
	return out
}

// ParseTenderStatus accepts the canonical names case-insensitively, plus the
// "Awarded" alias for AOC.
func ParseTenderStatus(raw string) (TenderStatus, error) {
	v := strings.TrimSpace(raw)
	if strings.EqualFold(v, "awarded") {
		return TenderStatusAOC, nil
	}
	for _, s := range tenderStatuses {
		if strings.EqualFold(v, string(s)) {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown tender status %q", raw)
}

func (s TenderStatus) Valid() bool {
	for _, v := range tenderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Terminal reports whether no forward progress is possible from s.
func (s TenderStatus) Terminal() bool {
	return s == TenderStatusAOC || s == TenderStatusCancelled
}

// Forward reports whether s is on the forward path (everything except the
// cancellation and retender exits).
func (s TenderStatus) Forward() bool {
	return s.Valid() && s != TenderStatusCancelled && s != TenderStatusRetender
}

// Next returns the forward successor of s.
func (s TenderStatus) Next() (TenderStatus, bool) {
	n, ok := tenderForward[s]
	return n, ok
}

// CanTransitionTo is the single table lookup behind the status guard.
func (s TenderStatus) CanTransitionTo(target TenderStatus) bool {
	if !s.Valid() || !target.Valid() || s == target {
		return false
	}
	switch target {
	case TenderStatusCancelled, TenderStatusRetender:
		return !s.Terminal()
	}
	next, ok := tenderForward[s]
	return ok && next == target
}

// CanReopen reports whether the explicit retender action may reset s.
func (s TenderStatus) CanReopen() bool {
	return s == TenderStatusCancelled || s == TenderStatusRetender
}
