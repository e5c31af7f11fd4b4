package repository

import (
	"context"
	"fmt"
	"sort"
	"time"

	"tender_service/internal/domain/entities"
	appconfig "tender_service/internal/infrastructure/config"
	"tender_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	batchGetLimit        = 100
	transactWriteLimit   = 100
	defaultCommitTimeout = 5 * time.Second
)

// DynamoAPI is the subset of *dynamodb.Client the tender store uses.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	BatchGetItem(ctx context.Context, params *dynamodb.BatchGetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchGetItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

// TenderDynamoRepository persists the tender records in DynamoDB.
//
// Table requirements (all string keys):
//   - nits, works, bids, awards, work_order_details, agreements: PK id
//   - nit_memos: PK memo_key
//   - payments: PK work_id, SK id
//
// No secondary index is needed: NITs list their works and works list their
// current bids, and every read is a strongly consistent key lookup or a
// single-partition query. Commit uses one TransactWriteItems call so all
// writes of a workflow operation land together or not at all.
type TenderDynamoRepository struct {
	ddb           DynamoAPI
	tables        appconfig.TableNames
	commitTimeout time.Duration
}

var _ interfaces.ITenderRepository = (*TenderDynamoRepository)(nil)

func NewTenderDynamoRepository(ddb DynamoAPI, tables appconfig.TableNames, commitTimeout time.Duration) *TenderDynamoRepository {
	if commitTimeout <= 0 {
		commitTimeout = defaultCommitTimeout
	}
	return &TenderDynamoRepository{ddb: ddb, tables: tables, commitTimeout: commitTimeout}
}

func (r *TenderDynamoRepository) GetNit(ctx context.Context, id string) (entities.Nit, error) {
	var it nitItem
	found, err := r.getByID(ctx, r.tables.Nits, "id", id, &it)
	if err != nil || !found {
		return entities.Nit{}, err
	}
	return fromNitItem(it)
}

func (r *TenderDynamoRepository) GetNitByMemo(ctx context.Context, memoNo string) (entities.Nit, error) {
	var guard nitMemoItem
	found, err := r.getByID(ctx, r.tables.NitMemos, "memo_key", entities.MemoKey(memoNo), &guard)
	if err != nil || !found {
		return entities.Nit{}, err
	}
	return r.GetNit(ctx, guard.NitID)
}

func (r *TenderDynamoRepository) GetWork(ctx context.Context, id string) (entities.Work, error) {
	var it workItem
	found, err := r.getByID(ctx, r.tables.Works, "id", id, &it)
	if err != nil || !found {
		return entities.Work{}, err
	}
	return fromWorkItem(it)
}

func (r *TenderDynamoRepository) GetWorks(ctx context.Context, ids []string) ([]entities.Work, error) {
	raws, err := r.batchGet(ctx, r.tables.Works, ids)
	if err != nil {
		return nil, err
	}
	works := make([]entities.Work, 0, len(raws))
	for _, raw := range raws {
		var it workItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		w, err := fromWorkItem(it)
		if err != nil {
			return nil, err
		}
		works = append(works, w)
	}
	return works, nil
}

func (r *TenderDynamoRepository) GetBid(ctx context.Context, id string) (entities.Bid, error) {
	var it bidItem
	found, err := r.getByID(ctx, r.tables.Bids, "id", id, &it)
	if err != nil || !found {
		return entities.Bid{}, err
	}
	return fromBidItem(it)
}

func (r *TenderDynamoRepository) GetBids(ctx context.Context, ids []string) ([]entities.Bid, error) {
	raws, err := r.batchGet(ctx, r.tables.Bids, ids)
	if err != nil {
		return nil, err
	}
	bids := make([]entities.Bid, 0, len(raws))
	for _, raw := range raws {
		var it bidItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		b, err := fromBidItem(it)
		if err != nil {
			return nil, err
		}
		bids = append(bids, b)
	}
	return bids, nil
}

func (r *TenderDynamoRepository) GetAward(ctx context.Context, id string) (entities.Award, error) {
	var it awardItem
	found, err := r.getByID(ctx, r.tables.Awards, "id", id, &it)
	if err != nil || !found {
		return entities.Award{}, err
	}
	return fromAwardItem(it)
}

func (r *TenderDynamoRepository) GetWorkOrderDetail(ctx context.Context, id string) (entities.WorkOrderDetail, error) {
	var it workOrderDetailItem
	found, err := r.getByID(ctx, r.tables.WorkOrders, "id", id, &it)
	if err != nil || !found {
		return entities.WorkOrderDetail{}, err
	}
	return fromWorkOrderDetailItem(it)
}

func (r *TenderDynamoRepository) GetAgreement(ctx context.Context, id string) (entities.Agreement, error) {
	var it agreementItem
	found, err := r.getByID(ctx, r.tables.Agreements, "id", id, &it)
	if err != nil || !found {
		return entities.Agreement{}, err
	}
	return fromAgreementItem(it)
}

func (r *TenderDynamoRepository) ListPayments(ctx context.Context, workID string) ([]entities.PaymentEntry, error) {
	var (
		entries  []entities.PaymentEntry
		startKey map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tables.Payments),
			KeyConditionExpression: aws.String("#work_id = :wid"),
			ExpressionAttributeNames: map[string]string{
				"#work_id": "work_id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":wid": &types.AttributeValueMemberS{Value: workID},
			},
			ConsistentRead:    aws.Bool(true),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it paymentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			entry, err := fromPaymentItem(it)
			if err != nil {
				return nil, err
			}
			entries = append(entries, entry)
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].RecordedAt.Equal(entries[j].RecordedAt) {
			return entries[i].ID < entries[j].ID
		}
		return entries[i].RecordedAt.Before(entries[j].RecordedAt)
	})
	return entries, nil
}

func (r *TenderDynamoRepository) getByID(ctx context.Context, table, keyName, key string, out any) (bool, error) {
	if key == "" {
		return false, nil
	}
	res, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			keyName: &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	if len(res.Item) == 0 {
		return false, nil
	}
	if err := attributevalue.UnmarshalMap(res.Item, out); err != nil {
		return false, err
	}
	return true, nil
}

// batchGet loads items keyed by id and returns them in the order of ids.
// Missing ids are skipped.
func (r *TenderDynamoRepository) batchGet(ctx context.Context, table string, ids []string) ([]map[string]types.AttributeValue, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	byID := make(map[string]map[string]types.AttributeValue, len(ids))
	for start := 0; start < len(ids); start += batchGetLimit {
		end := min(start+batchGetLimit, len(ids))
		keys := make([]map[string]types.AttributeValue, 0, end-start)
		seen := make(map[string]bool, end-start)
		for _, id := range ids[start:end] {
			if id == "" || seen[id] {
				continue
			}
			seen[id] = true
			keys = append(keys, map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}})
		}

		request := map[string]types.KeysAndAttributes{
			table: {Keys: keys, ConsistentRead: aws.Bool(true)},
		}
		for attempt := 0; len(request) > 0 && len(request[table].Keys) > 0; attempt++ {
			if attempt > 0 {
				if err := backoff(ctx, attempt); err != nil {
					return nil, err
				}
			}
			out, err := r.ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{RequestItems: request})
			if err != nil {
				return nil, err
			}
			for _, raw := range out.Responses[table] {
				idAttr, ok := raw["id"].(*types.AttributeValueMemberS)
				if !ok {
					return nil, fmt.Errorf("%s item without string id", table)
				}
				byID[idAttr.Value] = raw
			}
			request = out.UnprocessedKeys
		}
	}

	items := make([]map[string]types.AttributeValue, 0, len(byID))
	for _, id := range ids {
		if raw, ok := byID[id]; ok {
			items = append(items, raw)
			delete(byID, id)
		}
	}
	return items, nil
}

func backoff(ctx context.Context, attempt int) error {
	wait := time.Duration(1<<min(attempt, 6)) * 10 * time.Millisecond
	t := time.NewTimer(wait)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
