package memory

import (
	"context"
	"sort"
	"sync"

	"tender_service/internal/domain/entities"
	"tender_service/internal/usecase/interfaces"
)

// TenderMemoryRepository keeps the tender records in process memory. Commit
// checks every condition before applying any write, under one lock, so it
// gives the same all-or-nothing behavior as the DynamoDB store. Records are
// copied on the way in and out.
type TenderMemoryRepository struct {
	mu         sync.RWMutex
	nits       map[string]entities.Nit
	memos      map[string]string
	works      map[string]entities.Work
	bids       map[string]entities.Bid
	awards     map[string]entities.Award
	workOrders map[string]entities.WorkOrderDetail
	agreements map[string]entities.Agreement
	payments   map[string][]entities.PaymentEntry
	paymentIDs map[string]bool
}

var _ interfaces.ITenderRepository = (*TenderMemoryRepository)(nil)

func NewTenderMemoryRepository() *TenderMemoryRepository {
	return &TenderMemoryRepository{
		nits:       make(map[string]entities.Nit),
		memos:      make(map[string]string),
		works:      make(map[string]entities.Work),
		bids:       make(map[string]entities.Bid),
		awards:     make(map[string]entities.Award),
		workOrders: make(map[string]entities.WorkOrderDetail),
		agreements: make(map[string]entities.Agreement),
		payments:   make(map[string][]entities.PaymentEntry),
		paymentIDs: make(map[string]bool),
	}
}

func (r *TenderMemoryRepository) GetNit(_ context.Context, id string) (entities.Nit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneNit(r.nits[id]), nil
}

func (r *TenderMemoryRepository) GetNitByMemo(_ context.Context, memoNo string) (entities.Nit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.memos[entities.MemoKey(memoNo)]
	if !ok {
		return entities.Nit{}, nil
	}
	return cloneNit(r.nits[id]), nil
}

func (r *TenderMemoryRepository) GetWork(_ context.Context, id string) (entities.Work, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneWork(r.works[id]), nil
}

func (r *TenderMemoryRepository) GetWorks(_ context.Context, ids []string) ([]entities.Work, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	works := make([]entities.Work, 0, len(ids))
	for _, id := range ids {
		if w, ok := r.works[id]; ok {
			works = append(works, cloneWork(w))
		}
	}
	return works, nil
}

func (r *TenderMemoryRepository) GetBid(_ context.Context, id string) (entities.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneBid(r.bids[id]), nil
}

func (r *TenderMemoryRepository) GetBids(_ context.Context, ids []string) ([]entities.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	bids := make([]entities.Bid, 0, len(ids))
	for _, id := range ids {
		if b, ok := r.bids[id]; ok {
			bids = append(bids, cloneBid(b))
		}
	}
	return bids, nil
}

func (r *TenderMemoryRepository) GetAward(_ context.Context, id string) (entities.Award, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneAward(r.awards[id]), nil
}

func (r *TenderMemoryRepository) GetWorkOrderDetail(_ context.Context, id string) (entities.WorkOrderDetail, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.workOrders[id], nil
}

func (r *TenderMemoryRepository) GetAgreement(_ context.Context, id string) (entities.Agreement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.agreements[id], nil
}

func (r *TenderMemoryRepository) ListPayments(_ context.Context, workID string) ([]entities.PaymentEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := append([]entities.PaymentEntry(nil), r.payments[workID]...)
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].RecordedAt.Equal(entries[j].RecordedAt) {
			return entries[i].ID < entries[j].ID
		}
		return entries[i].RecordedAt.Before(entries[j].RecordedAt)
	})
	return entries, nil
}

// Commit evaluates conditions in the same order as the DynamoDB store, so both
// report the same conflict for the same race.
func (r *TenderMemoryRepository) Commit(ctx context.Context, cs interfaces.Changeset) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if cs.Empty() {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if conflict := r.check(cs); conflict != nil {
		return conflict
	}
	r.apply(cs)
	return nil
}

func (r *TenderMemoryRepository) check(cs interfaces.Changeset) *interfaces.CommitConflictError {
	exists := func(entity, id string) *interfaces.CommitConflictError {
		return &interfaces.CommitConflictError{Entity: entity, ID: id, Kind: interfaces.ConflictExists}
	}
	moved := func(entity, id string) *interfaces.CommitConflictError {
		return &interfaces.CommitConflictError{Entity: entity, ID: id, Kind: interfaces.ConflictVersion}
	}

	for _, a := range cs.NewAwards {
		if _, ok := r.awards[a.ID]; ok {
			return exists(interfaces.EntityAward, a.ID)
		}
	}
	for _, d := range cs.NewWorkOrderDetails {
		if _, ok := r.workOrders[d.ID]; ok {
			return exists(interfaces.EntityWorkOrderDetail, d.ID)
		}
	}
	for _, a := range cs.NewAgreements {
		if _, ok := r.agreements[a.ID]; ok {
			return exists(interfaces.EntityAgreement, a.ID)
		}
	}
	for _, n := range cs.NewNits {
		key := entities.MemoKey(n.MemoNo)
		if _, ok := r.memos[key]; ok {
			return exists(interfaces.EntityNitMemo, key)
		}
		if _, ok := r.nits[n.ID]; ok {
			return exists(interfaces.EntityNit, n.ID)
		}
	}
	for _, d := range cs.NitDeletes {
		if n, ok := r.nits[d.ID]; !ok || n.Version != d.ExpectedVersion {
			return moved(interfaces.EntityNit, d.ID)
		}
		key := entities.MemoKey(d.MemoNo)
		if r.memos[key] != d.ID {
			return moved(interfaces.EntityNitMemo, key)
		}
	}
	for _, u := range cs.NitUpdates {
		if n, ok := r.nits[u.Nit.ID]; !ok || n.Version != u.ExpectedVersion {
			return moved(interfaces.EntityNit, u.Nit.ID)
		}
	}
	for _, w := range cs.NewWorks {
		if _, ok := r.works[w.ID]; ok {
			return exists(interfaces.EntityWork, w.ID)
		}
	}
	for _, u := range cs.WorkUpdates {
		w, ok := r.works[u.Work.ID]
		if !ok || w.Version != u.ExpectedVersion || (u.ExpectedStatus != "" && w.TenderStatus != u.ExpectedStatus) {
			return moved(interfaces.EntityWork, u.Work.ID)
		}
	}
	for _, b := range cs.NewBids {
		if _, ok := r.bids[b.ID]; ok {
			return exists(interfaces.EntityBid, b.ID)
		}
	}
	for _, u := range cs.BidUpdates {
		if b, ok := r.bids[u.Bid.ID]; !ok || b.Version != u.ExpectedVersion {
			return moved(interfaces.EntityBid, u.Bid.ID)
		}
	}
	for _, d := range cs.BidDeletes {
		if b, ok := r.bids[d.ID]; !ok || b.Version != d.ExpectedVersion {
			return moved(interfaces.EntityBid, d.ID)
		}
	}
	for _, u := range cs.AwardUpdates {
		if a, ok := r.awards[u.Award.ID]; !ok || a.Version != u.ExpectedVersion {
			return moved(interfaces.EntityAward, u.Award.ID)
		}
	}
	for _, p := range cs.NewPayments {
		if r.paymentIDs[p.ID] {
			return exists(interfaces.EntityPayment, p.ID)
		}
	}
	return nil
}

func (r *TenderMemoryRepository) apply(cs interfaces.Changeset) {
	for _, a := range cs.NewAwards {
		r.awards[a.ID] = cloneAward(a)
	}
	for _, d := range cs.NewWorkOrderDetails {
		r.workOrders[d.ID] = d
	}
	for _, a := range cs.NewAgreements {
		r.agreements[a.ID] = a
	}
	for _, n := range cs.NewNits {
		r.memos[entities.MemoKey(n.MemoNo)] = n.ID
		r.nits[n.ID] = cloneNit(n)
	}
	for _, d := range cs.NitDeletes {
		delete(r.nits, d.ID)
		delete(r.memos, entities.MemoKey(d.MemoNo))
	}
	for _, u := range cs.NitUpdates {
		r.nits[u.Nit.ID] = cloneNit(u.Nit)
	}
	for _, w := range cs.NewWorks {
		r.works[w.ID] = cloneWork(w)
	}
	for _, u := range cs.WorkUpdates {
		r.works[u.Work.ID] = cloneWork(u.Work)
	}
	for _, b := range cs.NewBids {
		r.bids[b.ID] = cloneBid(b)
	}
	for _, u := range cs.BidUpdates {
		r.bids[u.Bid.ID] = cloneBid(u.Bid)
	}
	for _, d := range cs.BidDeletes {
		delete(r.bids, d.ID)
	}
	for _, u := range cs.AwardUpdates {
		r.awards[u.Award.ID] = cloneAward(u.Award)
	}
	for _, p := range cs.NewPayments {
		r.payments[p.WorkID] = append(r.payments[p.WorkID], p)
		r.paymentIDs[p.ID] = true
	}
}

func cloneNit(n entities.Nit) entities.Nit {
	n.WorkIDs = append([]string(nil), n.WorkIDs...)
	return n
}

func cloneWork(w entities.Work) entities.Work {
	w.BidIDs = append([]string(nil), w.BidIDs...)
	w.QualifiedAt = clonePtr(w.QualifiedAt)
	w.CompletionDate = clonePtr(w.CompletionDate)
	return w
}

func cloneBid(b entities.Bid) entities.Bid {
	if b.Evaluation != nil {
		ev := *b.Evaluation
		b.Evaluation = &ev
	}
	if b.BiddingAmount != nil {
		amount := *b.BiddingAmount
		b.BiddingAmount = &amount
	}
	return b
}

func cloneAward(a entities.Award) entities.Award {
	a.DeliveryDate = clonePtr(a.DeliveryDate)
	return a
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
