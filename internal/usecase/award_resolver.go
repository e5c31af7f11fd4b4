package usecase

import (
	"strings"
	"time"

	"tender_service/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// AwardTerms is everything one award commit writes.
type AwardTerms struct {
	Award  entities.Award
	Detail entities.WorkOrderDetail
	Work   entities.Work
}

// AwardResolver selects the winning bid, snapshots the award terms and builds
// the agreement record.
type AwardResolver struct {
	now func() time.Time
}

func NewAwardResolver(now func() time.Time) AwardResolver {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return AwardResolver{now: now}
}

// Resolve validates the award preconditions against the loaded work and bid.
// The "no prior award" rule is checked here and again by the store, which
// creates the award under a create-only condition.
func (r AwardResolver) Resolve(work entities.Work, bid entities.Bid, memoNo string, memoDate time.Time) (AwardTerms, error) {
	if work.ID == "" {
		return AwardTerms{}, rejectf(ErrWorkNotFound, "work does not exist")
	}
	memoNo = strings.TrimSpace(memoNo)
	if memoNo == "" || memoDate.IsZero() {
		return AwardTerms{}, rejectf(ErrInvalidInput, "work order memo number and date are required")
	}
	if work.AwardID != "" || work.TenderStatus == entities.TenderStatusAOC {
		return AwardTerms{}, rejectf(ErrAlreadyAwarded, "work %s already has award %s", work.ID, entities.AwardIDForWork(work.ID))
	}
	if work.TenderStatus != entities.TenderStatusFinancialEvaluation || work.QualifiedAt == nil {
		return AwardTerms{}, rejectf(ErrPrematureAward, "work %s is %s; award requires %s after the qualification gate", work.ID, work.TenderStatus, entities.TenderStatusFinancialEvaluation)
	}
	if bid.ID == "" {
		return AwardTerms{}, rejectf(ErrBidNotFound, "bid does not exist")
	}
	if bid.WorkID != work.ID || !work.HasBid(bid.ID) {
		return AwardTerms{}, rejectf(ErrNotQualified, "bid %s is not a current bid of work %s", bid.ID, work.ID)
	}
	if !bid.Qualified() {
		return AwardTerms{}, rejectf(ErrNotQualified, "bid %s did not pass technical evaluation", bid.ID)
	}

	now := r.now()
	estimate := work.EstimatedCost
	amount := decimal.Zero
	if bid.BiddingAmount != nil {
		amount = *bid.BiddingAmount
	}

	award := entities.Award{
		ID:                entities.AwardIDForWork(work.ID),
		WorkID:            work.ID,
		WorkOrderMemoNo:   memoNo,
		WorkOrderMemoDate: memoDate,
		Version:           1,
		CreatedAt:         now,
	}
	detail := entities.WorkOrderDetail{
		ID:            entities.WorkOrderDetailIDForAward(award.ID),
		AwardID:       award.ID,
		BidID:         bid.ID,
		AgencyID:      bid.AgencyID,
		EstimatedCost: estimate,
		BiddingAmount: amount,
		Percentage:    entities.BidPercentage(&estimate, bid.BiddingAmount),
		CreatedAt:     now,
	}

	updated := work
	updated.TenderStatus = entities.TenderStatusAOC
	updated.AwardID = award.ID
	updated.WorkStatus = entities.WorkStatusYetToStart
	updated.Version++
	updated.UpdatedAt = now

	return AwardTerms{Award: award, Detail: detail, Work: updated}, nil
}

// Agreement builds the single agreement of an award. existing is the stored
// agreement for the award, if any; a second agreement is never an overwrite.
func (r AwardResolver) Agreement(award entities.Award, existing entities.Agreement, agreementNo string, agreementDate time.Time) (entities.Agreement, error) {
	if award.ID == "" {
		return entities.Agreement{}, rejectf(ErrAwardNotFound, "award does not exist")
	}
	if existing.ID != "" {
		return entities.Agreement{}, rejectf(ErrAgreementAlreadyExists, "award %s already has agreement %s", award.ID, existing.AgreementNo)
	}
	agreementNo = strings.TrimSpace(agreementNo)
	if agreementNo == "" || agreementDate.IsZero() {
		return entities.Agreement{}, rejectf(ErrInvalidInput, "agreement number and date are required")
	}

	return entities.Agreement{
		ID:                entities.AgreementIDForAward(award.ID),
		AwardID:           award.ID,
		WorkOrderDetailID: entities.WorkOrderDetailIDForAward(award.ID),
		AgreementNo:       agreementNo,
		AgreementDate:     agreementDate,
		CreatedAt:         r.now(),
	}, nil
}

// AcknowledgeDelivery sets the delivery fields, the only mutable part of an
// award. A zero date means today.
func (r AwardResolver) AcknowledgeDelivery(award entities.Award, deliveredOn time.Time) (entities.Award, error) {
	if award.ID == "" {
		return entities.Award{}, rejectf(ErrAwardNotFound, "award does not exist")
	}
	if deliveredOn.IsZero() {
		deliveredOn = r.now()
	}
	if deliveredOn.Before(award.WorkOrderMemoDate) {
		return entities.Award{}, rejectf(ErrInvalidInput, "delivery date %s precedes work order date %s", deliveredOn.Format(time.DateOnly), award.WorkOrderMemoDate.Format(time.DateOnly))
	}

	updated := award
	updated.Delivered = true
	updated.DeliveryDate = &deliveredOn
	updated.Version++
	return updated, nil
}
