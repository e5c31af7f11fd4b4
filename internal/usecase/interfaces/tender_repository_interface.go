package interfaces

import (
	"context"
	"errors"
	"fmt"

	"tender_service/internal/domain/entities"
)

//go:generate mockgen -source=tender_repository_interface.go -destination=mocks/mock_tender_repository_interface.go -package=mock_interfaces

// ErrCommitConflict is the sentinel behind every *CommitConflictError.
var ErrCommitConflict = errors.New("commit condition failed")

// ConflictKind tells the usecase which precondition lost the race.
type ConflictKind string

const (
	ConflictVersion ConflictKind = "version" // a conditioned update found a different version or status
	ConflictExists  ConflictKind = "exists"  // a create-only put found the key already taken
)

// CommitConflictError reports the first failed condition of a commit.
type CommitConflictError struct {
	Entity string
	ID     string
	Kind   ConflictKind
}

func (e *CommitConflictError) Error() string {
	return fmt.Sprintf("%s %s: %s condition failed", e.Entity, e.ID, e.Kind)
}

func (e *CommitConflictError) Unwrap() error { return ErrCommitConflict }

// Entity names used in CommitConflictError.
const (
	EntityNit             = "nit"
	EntityNitMemo         = "nit_memo"
	EntityWork            = "work"
	EntityBid             = "bid"
	EntityAward           = "award"
	EntityWorkOrderDetail = "work_order_detail"
	EntityAgreement       = "agreement"
	EntityPayment         = "payment"
)

// NitUpdate replaces a NIT whose stored version must still be ExpectedVersion.
type NitUpdate struct {
	Nit             entities.Nit
	ExpectedVersion int64
}

// WorkUpdate replaces a work whose stored version and tender status must still
// match what the caller loaded.
type WorkUpdate struct {
	Work            entities.Work
	ExpectedVersion int64
	ExpectedStatus  entities.TenderStatus
}

type BidUpdate struct {
	Bid             entities.Bid
	ExpectedVersion int64
}

type BidDelete struct {
	ID              string
	ExpectedVersion int64
}

type NitDelete struct {
	ID              string
	MemoNo          string
	ExpectedVersion int64
}

type AwardUpdate struct {
	Award           entities.Award
	ExpectedVersion int64
}

// Changeset is the set of writes one workflow operation commits. Stores apply
// it all-or-nothing; a failed condition yields a *CommitConflictError and no
// write becomes visible.
type Changeset struct {
	NewNits             []entities.Nit
	NitUpdates          []NitUpdate
	NitDeletes          []NitDelete
	NewWorks            []entities.Work
	WorkUpdates         []WorkUpdate
	NewBids             []entities.Bid
	BidUpdates          []BidUpdate
	BidDeletes          []BidDelete
	NewAwards           []entities.Award
	AwardUpdates        []AwardUpdate
	NewWorkOrderDetails []entities.WorkOrderDetail
	NewAgreements       []entities.Agreement
	NewPayments         []entities.PaymentEntry
}

func (c Changeset) Empty() bool {
	return len(c.NewNits)+len(c.NitUpdates)+len(c.NitDeletes)+
		len(c.NewWorks)+len(c.WorkUpdates)+
		len(c.NewBids)+len(c.BidUpdates)+len(c.BidDeletes)+
		len(c.NewAwards)+len(c.AwardUpdates)+len(c.NewWorkOrderDetails)+
		len(c.NewAgreements)+len(c.NewPayments) == 0
}

// ITenderRepository is the tender record store.
//
// Getters return the zero value (empty ID) when the record does not exist,
// mirroring the other repositories of this service. All reads are strongly
// consistent.
type ITenderRepository interface {
	GetNit(ctx context.Context, id string) (entities.Nit, error)
	GetNitByMemo(ctx context.Context, memoNo string) (entities.Nit, error)
	GetWork(ctx context.Context, id string) (entities.Work, error)
	// GetWorks returns the works in the order of ids, skipping missing ones.
	GetWorks(ctx context.Context, ids []string) ([]entities.Work, error)
	GetBid(ctx context.Context, id string) (entities.Bid, error)
	GetBids(ctx context.Context, ids []string) ([]entities.Bid, error)
	GetAward(ctx context.Context, id string) (entities.Award, error)
	GetWorkOrderDetail(ctx context.Context, id string) (entities.WorkOrderDetail, error)
	GetAgreement(ctx context.Context, id string) (entities.Agreement, error)
	// ListPayments reads the whole ledger of a work as one snapshot, ordered by
	// RecordedAt.
	ListPayments(ctx context.Context, workID string) ([]entities.PaymentEntry, error)

	Commit(ctx context.Context, cs Changeset) error
}
