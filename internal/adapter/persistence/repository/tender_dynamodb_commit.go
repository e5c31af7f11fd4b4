package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"tender_service/internal/domain/entities"
	"tender_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	log "github.com/sirupsen/logrus"
)

var errChangesetTooLarge = errors.New("changeset exceeds the transaction item limit")

// writeTarget names the record behind one transaction item, so a cancellation
// reason can be reported as a CommitConflictError.
type writeTarget struct {
	entity string
	id     string
	kind   interfaces.ConflictKind
}

type txBuilder struct {
	items   []types.TransactWriteItem
	targets []writeTarget
	err     error
}

// Commit applies the changeset as a single TransactWriteItems call.
//
// Create-only records are written first so that, when both an award and a
// work update fail, the caller learns about the award that already exists.
func (r *TenderDynamoRepository) Commit(ctx context.Context, cs interfaces.Changeset) error {
	if cs.Empty() {
		return nil
	}
	b := r.build(cs)
	if b.err != nil {
		return b.err
	}
	if len(b.items) > transactWriteLimit {
		return fmt.Errorf("%w: %d items", errChangesetTooLarge, len(b.items))
	}

	ctx, cancel := context.WithTimeout(ctx, r.commitTimeout)
	defer cancel()

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: b.items})
	if err == nil {
		return nil
	}
	if conflict := conflictFromCancellation(err, b.targets); conflict != nil {
		log.WithFields(log.Fields{"entity": conflict.Entity, "id": conflict.ID, "kind": conflict.Kind}).
			Debug("[tender][repository] transaction condition failed")
		return conflict
	}
	return fmt.Errorf("commit tender changeset: %w", err)
}

func (r *TenderDynamoRepository) build(cs interfaces.Changeset) *txBuilder {
	b := &txBuilder{}
	t := r.tables

	for _, a := range cs.NewAwards {
		b.create(t.Awards, "id", toAwardItem(a), writeTarget{interfaces.EntityAward, a.ID, interfaces.ConflictExists})
	}
	for _, d := range cs.NewWorkOrderDetails {
		b.create(t.WorkOrders, "id", toWorkOrderDetailItem(d), writeTarget{interfaces.EntityWorkOrderDetail, d.ID, interfaces.ConflictExists})
	}
	for _, a := range cs.NewAgreements {
		b.create(t.Agreements, "id", toAgreementItem(a), writeTarget{interfaces.EntityAgreement, a.ID, interfaces.ConflictExists})
	}
	for _, n := range cs.NewNits {
		key := entities.MemoKey(n.MemoNo)
		b.create(t.NitMemos, "memo_key", nitMemoItem{MemoKey: key, NitID: n.ID}, writeTarget{interfaces.EntityNitMemo, key, interfaces.ConflictExists})
		b.create(t.Nits, "id", toNitItem(n), writeTarget{interfaces.EntityNit, n.ID, interfaces.ConflictExists})
	}
	for _, d := range cs.NitDeletes {
		b.delete(t.Nits, "id", d.ID, d.ExpectedVersion, writeTarget{interfaces.EntityNit, d.ID, interfaces.ConflictVersion})
		key := entities.MemoKey(d.MemoNo)
		b.deleteMemo(t.NitMemos, key, d.ID, writeTarget{interfaces.EntityNitMemo, key, interfaces.ConflictVersion})
	}
	for _, u := range cs.NitUpdates {
		b.replace(t.Nits, toNitItem(u.Nit), u.ExpectedVersion, "", writeTarget{interfaces.EntityNit, u.Nit.ID, interfaces.ConflictVersion})
	}
	for _, w := range cs.NewWorks {
		b.create(t.Works, "id", toWorkItem(w), writeTarget{interfaces.EntityWork, w.ID, interfaces.ConflictExists})
	}
	for _, u := range cs.WorkUpdates {
		b.replace(t.Works, toWorkItem(u.Work), u.ExpectedVersion, string(u.ExpectedStatus), writeTarget{interfaces.EntityWork, u.Work.ID, interfaces.ConflictVersion})
	}
	for _, bid := range cs.NewBids {
		b.create(t.Bids, "id", toBidItem(bid), writeTarget{interfaces.EntityBid, bid.ID, interfaces.ConflictExists})
	}
	for _, u := range cs.BidUpdates {
		b.replace(t.Bids, toBidItem(u.Bid), u.ExpectedVersion, "", writeTarget{interfaces.EntityBid, u.Bid.ID, interfaces.ConflictVersion})
	}
	for _, d := range cs.BidDeletes {
		b.delete(t.Bids, "id", d.ID, d.ExpectedVersion, writeTarget{interfaces.EntityBid, d.ID, interfaces.ConflictVersion})
	}
	for _, u := range cs.AwardUpdates {
		b.replace(t.Awards, toAwardItem(u.Award), u.ExpectedVersion, "", writeTarget{interfaces.EntityAward, u.Award.ID, interfaces.ConflictVersion})
	}
	for _, p := range cs.NewPayments {
		b.create(t.Payments, "id", toPaymentItem(p), writeTarget{interfaces.EntityPayment, p.ID, interfaces.ConflictExists})
	}
	return b
}

func (b *txBuilder) marshal(item any) map[string]types.AttributeValue {
	if b.err != nil {
		return nil
	}
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		b.err = err
		return nil
	}
	return av
}

// create puts item only if no record with the same key exists.
func (b *txBuilder) create(table, keyName string, item any, target writeTarget) {
	av := b.marshal(item)
	if av == nil {
		return
	}
	b.add(types.TransactWriteItem{Put: &types.Put{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#key)"),
		ExpressionAttributeNames: map[string]string{
			"#key": keyName,
		},
	}}, target)
}

// replace overwrites item only if the stored version (and tender status, when
// given) still matches what the caller loaded.
func (b *txBuilder) replace(table string, item any, expectedVersion int64, expectedStatus string, target writeTarget) {
	av := b.marshal(item)
	if av == nil {
		return
	}
	cond := "#version = :expected_version"
	names := map[string]string{"#version": "version"}
	values := map[string]types.AttributeValue{
		":expected_version": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
	}
	if expectedStatus != "" {
		cond += " AND #tender_status = :expected_status"
		names["#tender_status"] = "tender_status"
		values[":expected_status"] = &types.AttributeValueMemberS{Value: expectedStatus}
	}
	b.add(types.TransactWriteItem{Put: &types.Put{
		TableName:                 aws.String(table),
		Item:                      av,
		ConditionExpression:       aws.String(cond),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	}}, target)
}

func (b *txBuilder) delete(table, keyName, id string, expectedVersion int64, target writeTarget) {
	b.add(types.TransactWriteItem{Delete: &types.Delete{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			keyName: &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("#version = :expected_version"),
		ExpressionAttributeNames: map[string]string{
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected_version": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
		},
	}}, target)
}

// deleteMemo releases a memo reservation held by nitID.
func (b *txBuilder) deleteMemo(table, memoKey, nitID string, target writeTarget) {
	b.add(types.TransactWriteItem{Delete: &types.Delete{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"memo_key": &types.AttributeValueMemberS{Value: memoKey},
		},
		ConditionExpression: aws.String("#nit_id = :nit_id"),
		ExpressionAttributeNames: map[string]string{
			"#nit_id": "nit_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":nit_id": &types.AttributeValueMemberS{Value: nitID},
		},
	}}, target)
}

func (b *txBuilder) add(item types.TransactWriteItem, target writeTarget) {
	b.items = append(b.items, item)
	b.targets = append(b.targets, target)
}

// conflictFromCancellation maps the first failed condition of a cancelled
// transaction to its record. A TransactionConflict (another transaction
// touching the same item mid-flight) is reported as a version conflict.
func conflictFromCancellation(err error, targets []writeTarget) *interfaces.CommitConflictError {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return nil
	}
	for _, code := range []string{"ConditionalCheckFailed", "TransactionConflict"} {
		for i, reason := range tce.CancellationReasons {
			if aws.ToString(reason.Code) != code || i >= len(targets) {
				continue
			}
			target := targets[i]
			kind := target.kind
			if code == "TransactionConflict" {
				kind = interfaces.ConflictVersion
			}
			return &interfaces.CommitConflictError{Entity: target.entity, ID: target.id, Kind: kind}
		}
	}
	return nil
}
