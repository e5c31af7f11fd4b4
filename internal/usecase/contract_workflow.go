package usecase

import (
	"context"
	"time"

	"tender_service/internal/domain/entities"
	"tender_service/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

// AwardContract records the award of contract, the work order detail and the
// work's move to AOC in one commit. The award id is derived from the work id,
// so a second award of the same work fails its create condition even when
// both callers passed validation.
func (u *TenderWorkflowUseCase) AwardContract(ctx context.Context, in AwardInput) (res AwardResult, err error) {
	defer func() {
		err = u.finish("award_contract", log.Fields{"work_id": in.WorkID, "bid_id": in.WinningBidID, "award_id": res.Award.ID}, err)
	}()

	work, err := u.loadWork(ctx, in.WorkID)
	if err != nil {
		return AwardResult{}, err
	}
	existing, err := u.repo.GetAward(ctx, entities.AwardIDForWork(work.ID))
	if err != nil {
		return AwardResult{}, infraError("load award", err)
	}
	if existing.ID != "" {
		return AwardResult{}, rejectf(ErrAlreadyAwarded, "work %s was awarded under work order %s", work.ID, existing.WorkOrderMemoNo)
	}
	bid, err := u.repo.GetBid(ctx, in.WinningBidID)
	if err != nil {
		return AwardResult{}, infraError("load bid", err)
	}
	terms, err := u.resolver.Resolve(work, bid, in.WorkOrderMemoNo, in.WorkOrderMemoDate)
	if err != nil {
		return AwardResult{}, err
	}

	cs := interfaces.Changeset{
		NewAwards:           []entities.Award{terms.Award},
		NewWorkOrderDetails: []entities.WorkOrderDetail{terms.Detail},
		WorkUpdates:         []interfaces.WorkUpdate{workUpdate(work, terms.Work)},
	}
	if err := u.commit(ctx, cs); err != nil {
		return AwardResult{}, err
	}
	u.publish(ctx, interfaces.Event{Type: interfaces.EventContractAwarded, NitID: work.NitID, WorkID: work.ID, EntityID: terms.Award.ID,
		Attributes: map[string]string{
			"bid_id":     terms.Detail.BidID,
			"agency_id":  terms.Detail.AgencyID,
			"percentage": terms.Detail.Percentage,
		}})
	return AwardResult{Award: terms.Award, Detail: terms.Detail, Work: terms.Work}, nil
}

func (u *TenderWorkflowUseCase) RecordAgreement(ctx context.Context, awardID, agreementNo string, agreementDate time.Time) (agreement entities.Agreement, err error) {
	defer func() {
		err = u.finish("record_agreement", log.Fields{"award_id": awardID, "agreement_no": agreementNo}, err)
	}()

	award, err := u.loadAward(ctx, awardID)
	if err != nil {
		return entities.Agreement{}, err
	}
	existing, err := u.repo.GetAgreement(ctx, entities.AgreementIDForAward(award.ID))
	if err != nil {
		return entities.Agreement{}, infraError("load agreement", err)
	}
	agreement, err = u.resolver.Agreement(award, existing, agreementNo, agreementDate)
	if err != nil {
		return entities.Agreement{}, err
	}

	if err := u.commit(ctx, interfaces.Changeset{NewAgreements: []entities.Agreement{agreement}}); err != nil {
		return entities.Agreement{}, err
	}
	u.publish(ctx, interfaces.Event{Type: interfaces.EventAgreementRecorded, WorkID: award.WorkID, EntityID: agreement.ID,
		Attributes: map[string]string{"agreement_no": agreement.AgreementNo}})
	return agreement, nil
}

func (u *TenderWorkflowUseCase) RecordDelivery(ctx context.Context, awardID string, deliveredOn time.Time) (award entities.Award, err error) {
	defer func() {
		err = u.finish("record_delivery", log.Fields{"award_id": awardID}, err)
	}()

	current, err := u.loadAward(ctx, awardID)
	if err != nil {
		return entities.Award{}, err
	}
	award, err = u.resolver.AcknowledgeDelivery(current, deliveredOn)
	if err != nil {
		return entities.Award{}, err
	}

	cs := interfaces.Changeset{AwardUpdates: []interfaces.AwardUpdate{{Award: award, ExpectedVersion: current.Version}}}
	if err := u.commit(ctx, cs); err != nil {
		return entities.Award{}, err
	}
	u.publish(ctx, interfaces.Event{Type: interfaces.EventDeliveryAcknowledged, WorkID: award.WorkID, EntityID: award.ID,
		Attributes: map[string]string{"delivery_date": award.DeliveryDate.Format(time.DateOnly)}})
	return award, nil
}

// RecordPayment appends one bill to the work's ledger. Totals in the receipt
// are computed from the ledger snapshot read before the append plus the new
// entry. An overpayment is reported, not refused.
func (u *TenderWorkflowUseCase) RecordPayment(ctx context.Context, workID string, in PaymentInput) (receipt PaymentReceipt, err error) {
	defer func() {
		err = u.finish("record_payment", log.Fields{"work_id": workID, "bill_type": in.BillType, "payment_id": receipt.Entry.ID}, err)
	}()

	work, err := u.loadWork(ctx, workID)
	if err != nil {
		return PaymentReceipt{}, err
	}
	entry, err := u.ledger.Prepare(work, in)
	if err != nil {
		return PaymentReceipt{}, err
	}
	entries, err := u.repo.ListPayments(ctx, work.ID)
	if err != nil {
		return PaymentReceipt{}, infraError("load payments", err)
	}

	if err := u.commit(ctx, interfaces.Changeset{NewPayments: []entities.PaymentEntry{entry}}); err != nil {
		return PaymentReceipt{}, err
	}
	totals := u.ledger.Totals(work, append(entries, entry))

	u.publish(ctx, interfaces.Event{Type: interfaces.EventPaymentRecorded, NitID: work.NitID, WorkID: work.ID, EntityID: entry.ID,
		Attributes: map[string]string{
			"bill_type":  string(entry.BillType),
			"gross":      entry.GrossBillAmount.StringFixed(2),
			"net":        entry.NetAmount.StringFixed(2),
			"total_paid": totals.TotalGross.StringFixed(2),
		}})
	if totals.Anomaly != nil {
		log.WithFields(log.Fields{
			"work_id":        work.ID,
			"estimated_cost": totals.Anomaly.EstimatedCost.StringFixed(2),
			"total_gross":    totals.Anomaly.TotalGross.StringFixed(2),
			"excess":         totals.Anomaly.Excess.StringFixed(2),
		}).Warn("[tender][usecase] payments exceed estimated cost")
		u.publish(ctx, interfaces.Event{Type: interfaces.EventOverpaymentDetected, NitID: work.NitID, WorkID: work.ID, EntityID: entry.ID,
			Attributes: map[string]string{"excess": totals.Anomaly.Excess.StringFixed(2)}})
	}
	return PaymentReceipt{Entry: entry, Totals: totals}, nil
}

func (u *TenderWorkflowUseCase) ComputeTotals(ctx context.Context, workID string) (totals entities.PaymentTotals, err error) {
	defer func() { err = u.finishQuery("compute_totals", log.Fields{"work_id": workID}, err) }()

	work, err := u.loadWork(ctx, workID)
	if err != nil {
		return entities.PaymentTotals{}, err
	}
	entries, err := u.repo.ListPayments(ctx, work.ID)
	if err != nil {
		return entities.PaymentTotals{}, infraError("load payments", err)
	}
	return u.ledger.Totals(work, entries), nil
}

// ChangeWorkStatus advances execution of an awarded work. billpaid needs a
// final bill in the ledger.
func (u *TenderWorkflowUseCase) ChangeWorkStatus(ctx context.Context, workID string, target entities.WorkStatus) (work entities.Work, err error) {
	defer func() {
		err = u.finish("change_work_status", log.Fields{"work_id": workID, "target": target}, err)
	}()

	current, err := u.loadWork(ctx, workID)
	if err != nil {
		return entities.Work{}, err
	}
	finalBill := false
	if target == entities.WorkStatusBillPaid {
		entries, err := u.repo.ListPayments(ctx, current.ID)
		if err != nil {
			return entities.Work{}, infraError("load payments", err)
		}
		finalBill = u.ledger.HasFinalBill(entries)
	}
	work, err = u.guard.AdvanceWorkStatus(current, target, finalBill)
	if err != nil {
		return entities.Work{}, err
	}

	cs := interfaces.Changeset{WorkUpdates: []interfaces.WorkUpdate{workUpdate(current, work)}}
	if err := u.commit(ctx, cs); err != nil {
		return entities.Work{}, err
	}
	u.publish(ctx, interfaces.Event{Type: interfaces.EventWorkStatusChanged, NitID: work.NitID, WorkID: work.ID, EntityID: work.ID,
		Attributes: map[string]string{"from": string(current.WorkStatus), "to": string(work.WorkStatus)}})
	return work, nil
}

// CompletionCertificate derives the certificate of a completed work. It
// writes nothing, so repeated calls return the same document.
func (u *TenderWorkflowUseCase) CompletionCertificate(ctx context.Context, workID string) (cert entities.CompletionCertificate, err error) {
	defer func() { err = u.finishQuery("completion_certificate", log.Fields{"work_id": workID}, err) }()

	work, err := u.loadWork(ctx, workID)
	if err != nil {
		return entities.CompletionCertificate{}, err
	}
	if work.CompletionDate == nil {
		return entities.CompletionCertificate{}, rejectf(ErrCompletionPending, "work %s is %s and has no completion date", work.ID, work.WorkStatus)
	}
	entries, err := u.repo.ListPayments(ctx, work.ID)
	if err != nil {
		return entities.CompletionCertificate{}, infraError("load payments", err)
	}
	if len(entries) == 0 {
		return entities.CompletionCertificate{}, rejectf(ErrNoPayments, "work %s has no recorded payments", work.ID)
	}
	nit, err := u.loadNit(ctx, work.NitID)
	if err != nil {
		return entities.CompletionCertificate{}, err
	}

	in := entities.CertificateInput{Nit: nit, Work: work, Payments: entries}
	if work.AwardID != "" {
		award, err := u.repo.GetAward(ctx, work.AwardID)
		if err != nil {
			return entities.CompletionCertificate{}, infraError("load award", err)
		}
		if award.ID != "" {
			in.Award = &award
			detail, err := u.repo.GetWorkOrderDetail(ctx, entities.WorkOrderDetailIDForAward(award.ID))
			if err != nil {
				return entities.CompletionCertificate{}, infraError("load work order detail", err)
			}
			if detail.ID != "" {
				in.Detail = &detail
			}
			agreement, err := u.repo.GetAgreement(ctx, entities.AgreementIDForAward(award.ID))
			if err != nil {
				return entities.CompletionCertificate{}, infraError("load agreement", err)
			}
			if agreement.ID != "" {
				in.Agreement = &agreement
			}
		}
	}
	return entities.BuildCompletionCertificate(in), nil
}
