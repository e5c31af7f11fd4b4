package usecase

import (
	"time"

	"tender_service/internal/domain/entities"
)

// StatusGuard validates and applies tender-status and work-status transitions.
// It never writes; callers commit the returned copies with the loaded version
// as the optimistic condition.
type StatusGuard struct {
	now func() time.Time
}

func NewStatusGuard(now func() time.Time) StatusGuard {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return StatusGuard{now: now}
}

// Transition moves work to target along the tender adjacency table.
func (g StatusGuard) Transition(work entities.Work, target entities.TenderStatus) (entities.Work, error) {
	if work.ID == "" {
		return entities.Work{}, rejectf(ErrWorkNotFound, "work does not exist")
	}
	if !target.Valid() {
		return entities.Work{}, rejectf(ErrInvalidStatus, "unknown tender status %q", target)
	}

	current := work.TenderStatus
	if current.Terminal() && target.Forward() {
		return entities.Work{}, rejectf(ErrAlreadyTerminal, "work %s is %s and cannot move to %s", work.ID, current, target)
	}
	if !current.CanTransitionTo(target) {
		if next, ok := current.Next(); ok && target.Forward() {
			return entities.Work{}, rejectf(ErrIllegalTransition, "cannot move from %s to %s; next stage is %s", current, target, next)
		}
		return entities.Work{}, rejectf(ErrIllegalTransition, "cannot move from %s to %s", current, target)
	}

	updated := work
	updated.TenderStatus = target
	return g.touch(updated), nil
}

// Reopen is the explicit retender action: a cancelled or retender-marked work
// returns to ToBeOpened with a fresh bid round.
func (g StatusGuard) Reopen(work entities.Work) (entities.Work, error) {
	if work.ID == "" {
		return entities.Work{}, rejectf(ErrWorkNotFound, "work does not exist")
	}
	if !work.TenderStatus.CanReopen() {
		return entities.Work{}, rejectf(ErrIllegalTransition, "only Cancelled or Retender works can be re-tendered, work %s is %s", work.ID, work.TenderStatus)
	}

	updated := work
	updated.TenderStatus = entities.TenderStatusToBeOpened
	updated.TenderRound = work.TenderRound + 1
	updated.BidIDs = nil
	updated.QualifiedAt = nil
	return g.touch(updated), nil
}

// ReconcileNit keeps the NIT cancelled flag equal to "every work cancelled".
// works must be the full sibling set, already reflecting the pending change.
// The NIT version is bumped either way, so two concurrent cancellations under
// one NIT cannot both miss the flip.
func (g StatusGuard) ReconcileNit(nit entities.Nit, works []entities.Work) (updated entities.Nit, flipped bool) {
	updated = nit
	updated.Cancelled = entities.NitCancellationDue(works)
	updated.Version = nit.Version + 1
	updated.UpdatedAt = g.now()
	return updated, updated.Cancelled != nit.Cancelled
}

// AdvanceWorkStatus moves the post-award execution status one step forward.
// finalBillRecorded must come from the ledger when target is billpaid.
func (g StatusGuard) AdvanceWorkStatus(work entities.Work, target entities.WorkStatus, finalBillRecorded bool) (entities.Work, error) {
	if work.ID == "" {
		return entities.Work{}, rejectf(ErrWorkNotFound, "work does not exist")
	}
	if !target.Valid() {
		return entities.Work{}, rejectf(ErrInvalidStatus, "unknown work status %q", target)
	}
	if work.TenderStatus != entities.TenderStatusAOC {
		return entities.Work{}, rejectf(ErrWorkNotAwarded, "work %s is %s; work status applies after award of contract", work.ID, work.TenderStatus)
	}
	if !work.WorkStatus.CanTransitionTo(target) {
		return entities.Work{}, rejectf(ErrIllegalTransition, "cannot move work status from %s to %s", work.WorkStatus, target)
	}
	if target == entities.WorkStatusBillPaid && !finalBillRecorded {
		return entities.Work{}, rejectf(ErrFinalBillMissing, "record a final bill for work %s before marking it %s", work.ID, target)
	}

	updated := work
	updated.WorkStatus = target
	if target == entities.WorkStatusCompleted && updated.CompletionDate == nil {
		done := g.now()
		updated.CompletionDate = &done
	}
	return g.touch(updated), nil
}

func (g StatusGuard) touch(w entities.Work) entities.Work {
	w.Version++
	w.UpdatedAt = g.now()
	return w
}
