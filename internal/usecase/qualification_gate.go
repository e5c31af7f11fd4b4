package usecase

import (
	"strings"
	"time"

	"tender_service/internal/domain/entities"
)

// RequiredQualifiedBidders is a fixed business rule, not a setting.
const RequiredQualifiedBidders = 3

// QualificationOutcome explains why a work may or may not open financial bids.
type QualificationOutcome string

const (
	OutcomeEvaluationPending QualificationOutcome = "evaluation_pending"
	OutcomeNoneQualified     QualificationOutcome = "none_qualified"
	OutcomeInsufficient      QualificationOutcome = "insufficient_qualified"
	OutcomeSatisfied         QualificationOutcome = "satisfied"
)

// QualificationSummary is the gate's view of the current bid round.
type QualificationSummary struct {
	WorkID     string               `json:"work_id"`
	TotalBids  int                  `json:"total_bids"`
	Evaluated  int                  `json:"evaluated"`
	Pending    int                  `json:"pending"`
	Qualified  int                  `json:"qualified"`
	Required   int                  `json:"required"`
	Outcome    QualificationOutcome `json:"outcome"`
	CanAdvance bool                 `json:"can_advance"`
}

// QualificationGate tracks technical-evaluation outcomes and decides whether a
// work may proceed to financial bidding.
type QualificationGate struct {
	now func() time.Time
}

func NewQualificationGate(now func() time.Time) QualificationGate {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return QualificationGate{now: now}
}

func (g QualificationGate) Assess(workID string, bids []entities.Bid) QualificationSummary {
	s := QualificationSummary{WorkID: workID, TotalBids: len(bids), Required: RequiredQualifiedBidders}
	for _, b := range bids {
		if !b.Evaluated() {
			s.Pending++
			continue
		}
		s.Evaluated++
		if b.Qualified() {
			s.Qualified++
		}
	}

	switch {
	case s.Pending > 0:
		s.Outcome = OutcomeEvaluationPending
	case s.Qualified == 0:
		s.Outcome = OutcomeNoneQualified
	case s.Qualified < RequiredQualifiedBidders:
		s.Outcome = OutcomeInsufficient
	default:
		s.Outcome = OutcomeSatisfied
		s.CanAdvance = true
	}
	return s
}

// CanAdvanceToFinancial: every bid evaluated and at least three qualified.
func (g QualificationGate) CanAdvanceToFinancial(bids []entities.Bid) bool {
	return g.Assess("", bids).CanAdvance
}

// Check turns a failing assessment into the matching typed rejection.
func (g QualificationGate) Check(workID string, bids []entities.Bid) error {
	s := g.Assess(workID, bids)
	switch s.Outcome {
	case OutcomeEvaluationPending:
		return rejectf(ErrEvaluationIncomplete, "%d of %d bids awaiting technical evaluation", s.Pending, s.TotalBids)
	case OutcomeNoneQualified:
		if s.TotalBids == 0 {
			return rejectf(ErrNoQualifiedBidders, "no bids registered; %d qualified bidders required", s.Required)
		}
		return rejectf(ErrNoQualifiedBidders, "none of %d bids qualified; %d required", s.TotalBids, s.Required)
	case OutcomeInsufficient:
		return rejectf(ErrInsufficientQualifiedBidders, "%d of %d required qualified bidders", s.Qualified, s.Required)
	}
	return nil
}

// RecordEvaluation overwrites any earlier result, so resubmitting is idempotent.
func (g QualificationGate) RecordEvaluation(bid entities.Bid, qualify bool, documentRef string) (entities.Bid, error) {
	if bid.ID == "" {
		return entities.Bid{}, rejectf(ErrBidNotFound, "bid does not exist")
	}
	documentRef = strings.TrimSpace(documentRef)
	if documentRef == "" {
		return entities.Bid{}, rejectf(ErrInvalidInput, "evaluation document reference is required")
	}

	now := g.now()
	updated := bid
	updated.Evaluation = &entities.TechnicalEvaluation{
		Qualify:     qualify,
		DocumentRef: documentRef,
		EvaluatedAt: now,
	}
	updated.Version++
	updated.UpdatedAt = now
	return updated, nil
}

// CheckWithdrawal rejects removing a bid that already counts toward the gate.
func (g QualificationGate) CheckWithdrawal(bid entities.Bid) error {
	if bid.ID == "" {
		return rejectf(ErrBidNotFound, "bid does not exist")
	}
	if bid.Evaluated() {
		return rejectf(ErrCannotDeleteEvaluatedBid, "bid %s was evaluated on %s", bid.ID, bid.Evaluation.EvaluatedAt.Format(time.DateOnly))
	}
	return nil
}
