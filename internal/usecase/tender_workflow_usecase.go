package usecase

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"tender_service/internal/domain/entities"
	"tender_service/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=tender_workflow_usecase.go -destination=../adapter/http/handlers/mocks/mock_tender_workflow_usecase.go -package=mocks

type PublishNitInput struct {
	MemoNo   string
	MemoDate time.Time
	IsSupply bool
}

type AddWorkInput struct {
	SerialNo      int
	Description   string
	EstimatedCost decimal.Decimal
}

type AwardInput struct {
	WorkID            string
	WinningBidID      string
	WorkOrderMemoNo   string
	WorkOrderMemoDate time.Time
}

type AwardResult struct {
	Award  entities.Award
	Detail entities.WorkOrderDetail
	Work   entities.Work
}

// PaymentReceipt is the appended entry plus the ledger totals including it.
type PaymentReceipt struct {
	Entry  entities.PaymentEntry
	Totals entities.PaymentTotals
}

type NitDetail struct {
	Nit   entities.Nit
	Works []entities.Work
}

// ITenderWorkflowUseCase is the single entry point for every tender
// lifecycle mutation and query.
//
// Each mutation loads what it needs, validates it through the guard, gate,
// resolver or ledger, and commits one changeset conditioned on the versions it
// read. A lost race comes back as ErrConcurrentModification and nothing is
// written.
type ITenderWorkflowUseCase interface {
	PublishNit(ctx context.Context, in PublishNitInput) (entities.Nit, error)
	AddWork(ctx context.Context, nitID string, in AddWorkInput) (entities.Work, error)
	DeleteNit(ctx context.Context, nitID string) error
	GetNit(ctx context.Context, nitID string) (NitDetail, error)
	GetWork(ctx context.Context, workID string) (entities.Work, error)

	RegisterBid(ctx context.Context, workID, agencyID string) (entities.Bid, error)
	WithdrawBid(ctx context.Context, bidID string) error
	SubmitTechnicalEvaluation(ctx context.Context, bidID string, qualify bool, documentRef string) (entities.Bid, error)
	RecordBidAmount(ctx context.Context, bidID string, amount decimal.Decimal) (entities.Bid, error)
	QualificationStatus(ctx context.Context, workID string) (QualificationSummary, error)

	AdvanceTenderStage(ctx context.Context, workID string, target entities.TenderStatus) (entities.Work, error)
	CancelWork(ctx context.Context, workID string) (entities.Work, error)
	RetenderWork(ctx context.Context, workID string) (entities.Work, error)

	AwardContract(ctx context.Context, in AwardInput) (AwardResult, error)
	RecordAgreement(ctx context.Context, awardID, agreementNo string, agreementDate time.Time) (entities.Agreement, error)
	RecordDelivery(ctx context.Context, awardID string, deliveredOn time.Time) (entities.Award, error)

	RecordPayment(ctx context.Context, workID string, in PaymentInput) (PaymentReceipt, error)
	ComputeTotals(ctx context.Context, workID string) (entities.PaymentTotals, error)
	ChangeWorkStatus(ctx context.Context, workID string, target entities.WorkStatus) (entities.Work, error)
	CompletionCertificate(ctx context.Context, workID string) (entities.CompletionCertificate, error)
}

type TenderWorkflowUseCase struct {
	repo      interfaces.ITenderRepository
	publisher interfaces.IEventPublisher
	metrics   interfaces.IWorkflowMetrics
	now       func() time.Time
	newID     func() string

	guard    StatusGuard
	gate     QualificationGate
	resolver AwardResolver
	ledger   PaymentLedger
}

var _ ITenderWorkflowUseCase = (*TenderWorkflowUseCase)(nil)

type Option func(*TenderWorkflowUseCase)

func WithClock(now func() time.Time) Option {
	return func(u *TenderWorkflowUseCase) { u.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(u *TenderWorkflowUseCase) { u.newID = newID }
}

func WithMetrics(m interfaces.IWorkflowMetrics) Option {
	return func(u *TenderWorkflowUseCase) { u.metrics = m }
}

func NewTenderWorkflowUseCase(repo interfaces.ITenderRepository, publisher interfaces.IEventPublisher, opts ...Option) *TenderWorkflowUseCase {
	u := &TenderWorkflowUseCase{
		repo:      repo,
		publisher: publisher,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(u)
	}
	u.guard = NewStatusGuard(u.now)
	u.gate = NewQualificationGate(u.now)
	u.resolver = NewAwardResolver(u.now)
	u.ledger = NewPaymentLedger(u.now, u.newID)
	return u
}

func (u *TenderWorkflowUseCase) PublishNit(ctx context.Context, in PublishNitInput) (nit entities.Nit, err error) {
	defer func() {
		err = u.finish("publish_nit", log.Fields{"memo_no": in.MemoNo, "nit_id": nit.ID}, err)
	}()

	memo := strings.TrimSpace(in.MemoNo)
	if memo == "" || in.MemoDate.IsZero() {
		return entities.Nit{}, rejectf(ErrInvalidInput, "memo number and memo date are required")
	}
	existing, err := u.repo.GetNitByMemo(ctx, memo)
	if err != nil {
		return entities.Nit{}, infraError("load nit by memo", err)
	}
	if existing.ID != "" {
		return entities.Nit{}, rejectf(ErrDuplicateMemo, "memo %s is already used by NIT %s", memo, existing.ID)
	}

	now := u.now()
	nit = entities.Nit{
		ID:        u.newID(),
		MemoNo:    memo,
		MemoDate:  in.MemoDate,
		Published: true,
		IsSupply:  in.IsSupply,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.commit(ctx, interfaces.Changeset{NewNits: []entities.Nit{nit}}); err != nil {
		return entities.Nit{}, err
	}
	u.publish(ctx, interfaces.Event{Type: interfaces.EventNitPublished, NitID: nit.ID, EntityID: nit.ID,
		Attributes: map[string]string{"memo_no": nit.MemoNo}})
	return nit, nil
}

func (u *TenderWorkflowUseCase) AddWork(ctx context.Context, nitID string, in AddWorkInput) (work entities.Work, err error) {
	defer func() {
		err = u.finish("add_work", log.Fields{"nit_id": nitID, "serial_no": in.SerialNo, "work_id": work.ID}, err)
	}()

	if in.SerialNo <= 0 {
		return entities.Work{}, rejectf(ErrInvalidInput, "serial number must be positive")
	}
	if in.EstimatedCost.IsNegative() {
		return entities.Work{}, rejectf(ErrInvalidAmount, "estimated cost %s is negative", in.EstimatedCost.StringFixed(2))
	}
	nit, err := u.loadNit(ctx, nitID)
	if err != nil {
		return entities.Work{}, err
	}
	if nit.Cancelled {
		return entities.Work{}, rejectf(ErrNitCancelled, "NIT %s is cancelled", nit.Reference())
	}
	siblings, err := u.repo.GetWorks(ctx, nit.WorkIDs)
	if err != nil {
		return entities.Work{}, infraError("load nit works", err)
	}
	for _, s := range siblings {
		if s.SerialNo == in.SerialNo {
			return entities.Work{}, rejectf(ErrDuplicateSerial, "serial %d is already work %s", in.SerialNo, s.ID)
		}
	}

	now := u.now()
	work = entities.Work{
		ID:            u.newID(),
		NitID:         nit.ID,
		SerialNo:      in.SerialNo,
		Description:   strings.TrimSpace(in.Description),
		EstimatedCost: in.EstimatedCost,
		TenderStatus:  entities.TenderStatusToBeOpened,
		WorkStatus:    entities.WorkStatusYetToStart,
		TenderRound:   1,
		Version:       1,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	updatedNit := nit
	updatedNit.WorkIDs = workIDsBySerial(append(siblings, work))
	updatedNit.Version = nit.Version + 1
	updatedNit.UpdatedAt = now

	cs := interfaces.Changeset{
		NewWorks:   []entities.Work{work},
		NitUpdates: []interfaces.NitUpdate{{Nit: updatedNit, ExpectedVersion: nit.Version}},
	}
	if err := u.commit(ctx, cs); err != nil {
		return entities.Work{}, err
	}
	u.publish(ctx, interfaces.Event{Type: interfaces.EventWorkAdded, NitID: nit.ID, WorkID: work.ID, EntityID: work.ID,
		Attributes: map[string]string{"serial_no": strconv.Itoa(work.SerialNo)}})
	return work, nil
}

func (u *TenderWorkflowUseCase) DeleteNit(ctx context.Context, nitID string) (err error) {
	defer func() {
		err = u.finish("delete_nit", log.Fields{"nit_id": nitID}, err)
	}()

	nit, err := u.loadNit(ctx, nitID)
	if err != nil {
		return err
	}
	if len(nit.WorkIDs) > 0 {
		return rejectf(ErrNitHasWorks, "NIT %s still has %d works", nit.Reference(), len(nit.WorkIDs))
	}
	cs := interfaces.Changeset{
		NitDeletes: []interfaces.NitDelete{{ID: nit.ID, MemoNo: nit.MemoNo, ExpectedVersion: nit.Version}},
	}
	if err := u.commit(ctx, cs); err != nil {
		return err
	}
	u.publish(ctx, interfaces.Event{Type: interfaces.EventNitDeleted, NitID: nit.ID, EntityID: nit.ID,
		Attributes: map[string]string{"memo_no": nit.MemoNo}})
	return nil
}

func (u *TenderWorkflowUseCase) GetNit(ctx context.Context, nitID string) (detail NitDetail, err error) {
	defer func() { err = u.finishQuery("get_nit", log.Fields{"nit_id": nitID}, err) }()

	nit, err := u.loadNit(ctx, nitID)
	if err != nil {
		return NitDetail{}, err
	}
	works, err := u.repo.GetWorks(ctx, nit.WorkIDs)
	if err != nil {
		return NitDetail{}, infraError("load nit works", err)
	}
	return NitDetail{Nit: nit, Works: works}, nil
}

func (u *TenderWorkflowUseCase) GetWork(ctx context.Context, workID string) (work entities.Work, err error) {
	defer func() { err = u.finishQuery("get_work", log.Fields{"work_id": workID}, err) }()
	return u.loadWork(ctx, workID)
}

func (u *TenderWorkflowUseCase) RegisterBid(ctx context.Context, workID, agencyID string) (bid entities.Bid, err error) {
	defer func() {
		err = u.finish("register_bid", log.Fields{"work_id": workID, "agency_id": agencyID, "bid_id": bid.ID}, err)
	}()

	agencyID = strings.TrimSpace(agencyID)
	if agencyID == "" {
		return entities.Bid{}, rejectf(ErrInvalidInput, "agency id is required")
	}
	work, err := u.loadWork(ctx, workID)
	if err != nil {
		return entities.Bid{}, err
	}
	switch work.TenderStatus {
	case entities.TenderStatusToBeOpened, entities.TenderStatusTechnicalBidOpening:
	default:
		return entities.Bid{}, rejectf(ErrBiddingClosed, "work %s is %s; bids are accepted until technical bid opening closes", work.ID, work.TenderStatus)
	}
	bids, err := u.loadCurrentBids(ctx, work)
	if err != nil {
		return entities.Bid{}, err
	}
	for _, b := range bids {
		if b.AgencyID == agencyID {
			return entities.Bid{}, rejectf(ErrDuplicateBidder, "agency %s already holds bid %s on work %s", agencyID, b.ID, work.ID)
		}
	}

	now := u.now()
	bid = entities.Bid{
		ID:        u.newID(),
		WorkID:    work.ID,
		AgencyID:  agencyID,
		Round:     work.TenderRound,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	updatedWork := u.touchWork(work)
	updatedWork.BidIDs = append(append([]string(nil), work.BidIDs...), bid.ID)

	cs := interfaces.Changeset{
		NewBids:     []entities.Bid{bid},
		WorkUpdates: []interfaces.WorkUpdate{workUpdate(work, updatedWork)},
	}
	if err := u.commit(ctx, cs); err != nil {
		return entities.Bid{}, err
	}
	u.publish(ctx, interfaces.Event{Type: interfaces.EventBidRegistered, NitID: work.NitID, WorkID: work.ID, EntityID: bid.ID,
		Attributes: map[string]string{"agency_id": agencyID}})
	return bid, nil
}

func (u *TenderWorkflowUseCase) WithdrawBid(ctx context.Context, bidID string) (err error) {
	defer func() {
		err = u.finish("withdraw_bid", log.Fields{"bid_id": bidID}, err)
	}()

	bid, err := u.loadBid(ctx, bidID)
	if err != nil {
		return err
	}
	if err := u.gate.CheckWithdrawal(bid); err != nil {
		return err
	}
	work, err := u.loadWork(ctx, bid.WorkID)
	if err != nil {
		return err
	}
	if !work.HasBid(bid.ID) {
		return rejectf(ErrBiddingClosed, "bid %s belongs to an earlier tender round of work %s", bid.ID, work.ID)
	}
	switch work.TenderStatus {
	case entities.TenderStatusToBeOpened, entities.TenderStatusTechnicalBidOpening, entities.TenderStatusTechnicalEvaluation:
	default:
		return rejectf(ErrBiddingClosed, "work %s is %s; bids can no longer be withdrawn", work.ID, work.TenderStatus)
	}

	updatedWork := u.touchWork(work)
	updatedWork.BidIDs = work.WithoutBid(bid.ID)
	cs := interfaces.Changeset{
		BidDeletes:  []interfaces.BidDelete{{ID: bid.ID, ExpectedVersion: bid.Version}},
		WorkUpdates: []interfaces.WorkUpdate{workUpdate(work, updatedWork)},
	}
	if err := u.commit(ctx, cs); err != nil {
		return err
	}
	u.publish(ctx, interfaces.Event{Type: interfaces.EventBidWithdrawn, NitID: work.NitID, WorkID: work.ID, EntityID: bid.ID,
		Attributes: map[string]string{"agency_id": bid.AgencyID}})
	return nil
}

func (u *TenderWorkflowUseCase) SubmitTechnicalEvaluation(ctx context.Context, bidID string, qualify bool, documentRef string) (bid entities.Bid, err error) {
	defer func() {
		err = u.finish("submit_technical_evaluation", log.Fields{"bid_id": bidID, "qualify": qualify}, err)
	}()

	current, err := u.loadBid(ctx, bidID)
	if err != nil {
		return entities.Bid{}, err
	}
	work, err := u.loadWork(ctx, current.WorkID)
	if err != nil {
		return entities.Bid{}, err
	}
	if !work.HasBid(current.ID) {
		return entities.Bid{}, rejectf(ErrEvaluationClosed, "bid %s belongs to an earlier tender round of work %s", current.ID, work.ID)
	}
	if work.TenderStatus != entities.TenderStatusTechnicalEvaluation {
		return entities.Bid{}, rejectf(ErrEvaluationClosed, "work %s is %s; technical evaluation is recorded during %s",
			work.ID, work.TenderStatus, entities.TenderStatusTechnicalEvaluation)
	}
	bid, err = u.gate.RecordEvaluation(current, qualify, documentRef)
	if err != nil {
		return entities.Bid{}, err
	}

	updatedWork := u.touchWork(work)
	cs := interfaces.Changeset{
		BidUpdates:  []interfaces.BidUpdate{{Bid: bid, ExpectedVersion: current.Version}},
		WorkUpdates: []interfaces.WorkUpdate{workUpdate(work, updatedWork)},
	}
	if err := u.commit(ctx, cs); err != nil {
		return entities.Bid{}, err
	}
	u.publish(ctx, interfaces.Event{Type: interfaces.EventBidEvaluated, NitID: work.NitID, WorkID: work.ID, EntityID: bid.ID,
		Attributes: map[string]string{"qualify": strconv.FormatBool(qualify)}})
	return bid, nil
}

func (u *TenderWorkflowUseCase) RecordBidAmount(ctx context.Context, bidID string, amount decimal.Decimal) (bid entities.Bid, err error) {
	defer func() {
		err = u.finish("record_bid_amount", log.Fields{"bid_id": bidID, "amount": amount.String()}, err)
	}()

	if !amount.IsPositive() {
		return entities.Bid{}, rejectf(ErrInvalidAmount, "bidding amount must be positive")
	}
	current, err := u.loadBid(ctx, bidID)
	if err != nil {
		return entities.Bid{}, err
	}
	work, err := u.loadWork(ctx, current.WorkID)
	if err != nil {
		return entities.Bid{}, err
	}
	if !work.HasBid(current.ID) {
		return entities.Bid{}, rejectf(ErrFinancialBidClosed, "bid %s belongs to an earlier tender round of work %s", current.ID, work.ID)
	}
	switch work.TenderStatus {
	case entities.TenderStatusFinancialBidOpening, entities.TenderStatusFinancialEvaluation:
	default:
		return entities.Bid{}, rejectf(ErrFinancialBidClosed, "work %s is %s; bidding amounts are recorded after financial bid opening", work.ID, work.TenderStatus)
	}
	if !current.Qualified() {
		return entities.Bid{}, rejectf(ErrNotQualified, "bid %s did not qualify technically", current.ID)
	}

	bid = current
	bid.BiddingAmount = &amount
	bid.Version = current.Version + 1
	bid.UpdatedAt = u.now()

	updatedWork := u.touchWork(work)
	cs := interfaces.Changeset{
		BidUpdates:  []interfaces.BidUpdate{{Bid: bid, ExpectedVersion: current.Version}},
		WorkUpdates: []interfaces.WorkUpdate{workUpdate(work, updatedWork)},
	}
	if err := u.commit(ctx, cs); err != nil {
		return entities.Bid{}, err
	}
	u.publish(ctx, interfaces.Event{Type: interfaces.EventBidAmountRecorded, NitID: work.NitID, WorkID: work.ID, EntityID: bid.ID,
		Attributes: map[string]string{"amount": amount.StringFixed(2)}})
	return bid, nil
}

func (u *TenderWorkflowUseCase) QualificationStatus(ctx context.Context, workID string) (summary QualificationSummary, err error) {
	defer func() { err = u.finishQuery("qualification_status", log.Fields{"work_id": workID}, err) }()

	work, err := u.loadWork(ctx, workID)
	if err != nil {
		return QualificationSummary{}, err
	}
	bids, err := u.loadCurrentBids(ctx, work)
	if err != nil {
		return QualificationSummary{}, err
	}
	return u.gate.Assess(work.ID, bids), nil
}

// AdvanceTenderStage moves a work one step along the tender pipeline.
// Cancelled is accepted as a target and behaves like CancelWork. Award of
// contract is never reached here; it needs the winning bid and the work order
// and goes through AwardContract.
func (u *TenderWorkflowUseCase) AdvanceTenderStage(ctx context.Context, workID string, target entities.TenderStatus) (work entities.Work, err error) {
	defer func() {
		err = u.finish("advance_tender_stage", log.Fields{"work_id": workID, "target": target}, err)
	}()

	if target == entities.TenderStatusCancelled {
		return u.cancelWork(ctx, workID)
	}
	current, err := u.loadWork(ctx, workID)
	if err != nil {
		return entities.Work{}, err
	}
	work, err = u.guard.Transition(current, target)
	if err != nil {
		return entities.Work{}, err
	}
	if target == entities.TenderStatusAOC {
		return entities.Work{}, rejectf(ErrIllegalTransition, "award of contract is recorded through the award action with the winning bid")
	}
	if target == entities.TenderStatusFinancialBidOpening {
		bids, err := u.loadCurrentBids(ctx, current)
		if err != nil {
			return entities.Work{}, err
		}
		if err := u.gate.Check(current.ID, bids); err != nil {
			return entities.Work{}, err
		}
		qualifiedAt := u.now()
		work.QualifiedAt = &qualifiedAt
	}

	cs := interfaces.Changeset{WorkUpdates: []interfaces.WorkUpdate{workUpdate(current, work)}}
	if err := u.commit(ctx, cs); err != nil {
		return entities.Work{}, err
	}
	u.publish(ctx, interfaces.Event{Type: interfaces.EventTenderStageAdvanced, NitID: work.NitID, WorkID: work.ID, EntityID: work.ID,
		Attributes: map[string]string{"from": string(current.TenderStatus), "to": string(work.TenderStatus)}})
	return work, nil
}

func (u *TenderWorkflowUseCase) CancelWork(ctx context.Context, workID string) (work entities.Work, err error) {
	defer func() {
		err = u.finish("cancel_work", log.Fields{"work_id": workID}, err)
	}()
	return u.cancelWork(ctx, workID)
}

// cancelWork commits the cancellation together with the NIT reconciliation.
// The NIT is always rewritten under its loaded version, so of two concurrent
// cancellations under one NIT only one commits. The other fails with
// ErrConcurrentModification; nothing retries here, so the caller must reload
// and retry against the fresh sibling set.
func (u *TenderWorkflowUseCase) cancelWork(ctx context.Context, workID string) (entities.Work, error) {
	current, err := u.loadWork(ctx, workID)
	if err != nil {
		return entities.Work{}, err
	}
	work, err := u.guard.Transition(current, entities.TenderStatusCancelled)
	if err != nil {
		return entities.Work{}, err
	}
	nit, flipped, err := u.reconcileNit(ctx, work)
	if err != nil {
		return entities.Work{}, err
	}

	cs := interfaces.Changeset{
		WorkUpdates: []interfaces.WorkUpdate{workUpdate(current, work)},
		NitUpdates:  []interfaces.NitUpdate{{Nit: nit.updated, ExpectedVersion: nit.loaded.Version}},
	}
	if err := u.commit(ctx, cs); err != nil {
		return entities.Work{}, err
	}
	u.publish(ctx, interfaces.Event{Type: interfaces.EventWorkCancelled, NitID: work.NitID, WorkID: work.ID, EntityID: work.ID,
		Attributes: map[string]string{"from": string(current.TenderStatus)}})
	if flipped {
		u.publish(ctx, interfaces.Event{Type: interfaces.EventNitCancelled, NitID: nit.updated.ID, EntityID: nit.updated.ID,
			Attributes: map[string]string{"memo_no": nit.updated.MemoNo}})
	}
	return work, nil
}

// RetenderWork reopens a cancelled or retender-marked work for a fresh bid
// round. A NIT cancelled by cascade is un-cancelled in the same commit.
func (u *TenderWorkflowUseCase) RetenderWork(ctx context.Context, workID string) (work entities.Work, err error) {
	defer func() {
		err = u.finish("retender_work", log.Fields{"work_id": workID}, err)
	}()

	current, err := u.loadWork(ctx, workID)
	if err != nil {
		return entities.Work{}, err
	}
	work, err = u.guard.Reopen(current)
	if err != nil {
		return entities.Work{}, err
	}
	nit, flipped, err := u.reconcileNit(ctx, work)
	if err != nil {
		return entities.Work{}, err
	}

	cs := interfaces.Changeset{
		WorkUpdates: []interfaces.WorkUpdate{workUpdate(current, work)},
		NitUpdates:  []interfaces.NitUpdate{{Nit: nit.updated, ExpectedVersion: nit.loaded.Version}},
	}
	if err := u.commit(ctx, cs); err != nil {
		return entities.Work{}, err
	}
	u.publish(ctx, interfaces.Event{Type: interfaces.EventWorkRetendered, NitID: work.NitID, WorkID: work.ID, EntityID: work.ID,
		Attributes: map[string]string{
			"round":           strconv.Itoa(work.TenderRound),
			"nit_uncancelled": strconv.FormatBool(flipped),
		}})
	return work, nil
}

type nitReconciliation struct {
	loaded  entities.Nit
	updated entities.Nit
}

// reconcileNit loads the NIT of work and recomputes its cancelled flag with
// work's pending state in place of the stored one.
func (u *TenderWorkflowUseCase) reconcileNit(ctx context.Context, work entities.Work) (nitReconciliation, bool, error) {
	nit, err := u.loadNit(ctx, work.NitID)
	if err != nil {
		return nitReconciliation{}, false, err
	}
	siblings, err := u.repo.GetWorks(ctx, nit.WorkIDs)
	if err != nil {
		return nitReconciliation{}, false, infraError("load nit works", err)
	}
	replaced := false
	for i := range siblings {
		if siblings[i].ID == work.ID {
			siblings[i] = work
			replaced = true
		}
	}
	if !replaced {
		siblings = append(siblings, work)
	}
	updated, flipped := u.guard.ReconcileNit(nit, siblings)
	return nitReconciliation{loaded: nit, updated: updated}, flipped, nil
}

func (u *TenderWorkflowUseCase) loadNit(ctx context.Context, id string) (entities.Nit, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Nit{}, rejectf(ErrInvalidInput, "nit id is required")
	}
	nit, err := u.repo.GetNit(ctx, id)
	if err != nil {
		return entities.Nit{}, infraError("load nit", err)
	}
	if nit.ID == "" {
		return entities.Nit{}, rejectf(ErrNitNotFound, "NIT %s does not exist", id)
	}
	return nit, nil
}

func (u *TenderWorkflowUseCase) loadWork(ctx context.Context, id string) (entities.Work, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Work{}, rejectf(ErrInvalidInput, "work id is required")
	}
	work, err := u.repo.GetWork(ctx, id)
	if err != nil {
		return entities.Work{}, infraError("load work", err)
	}
	if work.ID == "" {
		return entities.Work{}, rejectf(ErrWorkNotFound, "work %s does not exist", id)
	}
	return work, nil
}

func (u *TenderWorkflowUseCase) loadBid(ctx context.Context, id string) (entities.Bid, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Bid{}, rejectf(ErrInvalidInput, "bid id is required")
	}
	bid, err := u.repo.GetBid(ctx, id)
	if err != nil {
		return entities.Bid{}, infraError("load bid", err)
	}
	if bid.ID == "" {
		return entities.Bid{}, rejectf(ErrBidNotFound, "bid %s does not exist", id)
	}
	return bid, nil
}

func (u *TenderWorkflowUseCase) loadAward(ctx context.Context, id string) (entities.Award, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Award{}, rejectf(ErrInvalidInput, "award id is required")
	}
	award, err := u.repo.GetAward(ctx, id)
	if err != nil {
		return entities.Award{}, infraError("load award", err)
	}
	if award.ID == "" {
		return entities.Award{}, rejectf(ErrAwardNotFound, "award %s does not exist", id)
	}
	return award, nil
}

// loadCurrentBids returns the bids of the work's current tender round.
func (u *TenderWorkflowUseCase) loadCurrentBids(ctx context.Context, work entities.Work) ([]entities.Bid, error) {
	bids, err := u.repo.GetBids(ctx, work.BidIDs)
	if err != nil {
		return nil, infraError("load bids", err)
	}
	current := make([]entities.Bid, 0, len(bids))
	for _, b := range bids {
		if b.WorkID == work.ID {
			current = append(current, b)
		}
	}
	return current, nil
}

func (u *TenderWorkflowUseCase) touchWork(w entities.Work) entities.Work {
	w.Version++
	w.UpdatedAt = u.now()
	return w
}

func workUpdate(loaded, updated entities.Work) interfaces.WorkUpdate {
	return interfaces.WorkUpdate{Work: updated, ExpectedVersion: loaded.Version, ExpectedStatus: loaded.TenderStatus}
}

func workIDsBySerial(works []entities.Work) []string {
	sorted := append([]entities.Work(nil), works...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].SerialNo < sorted[j].SerialNo })
	ids := make([]string, 0, len(sorted))
	for _, w := range sorted {
		ids = append(ids, w.ID)
	}
	return ids
}

// commit applies cs and translates a lost condition into the workflow error
// the caller would have seen had it loaded after the winner.
func (u *TenderWorkflowUseCase) commit(ctx context.Context, cs interfaces.Changeset) error {
	err := u.repo.Commit(ctx, cs)
	if err == nil {
		return nil
	}
	var conflict *interfaces.CommitConflictError
	if !errors.As(err, &conflict) {
		return infraError("commit", err)
	}
	if conflict.Kind == interfaces.ConflictExists {
		switch conflict.Entity {
		case interfaces.EntityAward, interfaces.EntityWorkOrderDetail:
			return newError(ErrAlreadyAwarded, "work was awarded concurrently", err)
		case interfaces.EntityAgreement:
			return newError(ErrAgreementAlreadyExists, "agreement was recorded concurrently", err)
		case interfaces.EntityNitMemo:
			return newError(ErrDuplicateMemo, "memo number was published concurrently", err)
		}
	}
	return newError(ErrConcurrentModification, conflict.Entity+" "+conflict.ID+" changed since it was loaded; reload and retry", err)
}

func (u *TenderWorkflowUseCase) publish(ctx context.Context, e interfaces.Event) {
	if u.publisher == nil {
		return
	}
	e.OccurredAt = u.now()
	u.publisher.Publish(ctx, e)
}

// finish records the outcome of a mutation and logs it at a level matching
// the error class.
func (u *TenderWorkflowUseCase) finish(action string, fields log.Fields, err error) error {
	u.observe(action, err)
	entry := log.WithFields(fields).WithField("action", action)
	if err == nil {
		entry.Info("[tender][usecase] committed")
		return nil
	}
	logFailure(entry, err)
	return err
}

func (u *TenderWorkflowUseCase) finishQuery(action string, fields log.Fields, err error) error {
	u.observe(action, err)
	if err != nil {
		logFailure(log.WithFields(fields).WithField("action", action), err)
	}
	return err
}

func (u *TenderWorkflowUseCase) observe(action string, err error) {
	if u.metrics == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = string(ClassOf(err))
	}
	u.metrics.ObserveOutcome(action, outcome)
}

func logFailure(entry *log.Entry, err error) {
	entry = entry.WithField("class", ClassOf(err)).WithError(err)
	switch ClassOf(err) {
	case ClassInfrastructure:
		entry.Error("[tender][usecase] store failure")
	case ClassConflict:
		entry.Warn("[tender][usecase] concurrent modification")
	default:
		entry.Info("[tender][usecase] rejected")
	}
}
