package readview

import (
	"context"
	"testing"
	"time"

	"tender_service/internal/adapter/persistence/memory"
	"tender_service/internal/domain/entities"
	"tender_service/internal/infrastructure/cache"
	"tender_service/internal/usecase"
	"tender_service/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkSummary_CachedUntilInvalidated(t *testing.T) {
	ctx := context.Background()
	workflow := usecase.NewTenderWorkflowUseCase(memory.NewTenderMemoryRepository(), nil)
	nit, err := workflow.PublishNit(ctx, usecase.PublishNitInput{MemoNo: "7/PW/2024", MemoDate: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	work, err := workflow.AddWork(ctx, nit.ID, usecase.AddWorkInput{SerialNo: 1, Description: "Drain", EstimatedCost: decimal.NewFromInt(100000)})
	require.NoError(t, err)

	svc := NewWorkSummaryService(workflow, cache.NewMemoryCache(), time.Minute)

	first, err := svc.Get(ctx, work.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, first.Qualification.TotalBids)
	assert.True(t, first.Totals.Pending.Equal(decimal.NewFromInt(100000)))

	_, err = workflow.RegisterBid(ctx, work.ID, "agency-1")
	require.NoError(t, err)

	stale, err := svc.Get(ctx, work.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stale.Qualification.TotalBids)

	require.NoError(t, svc.Invalidate(ctx, interfaces.Event{Type: interfaces.EventBidRegistered, WorkID: work.ID}))
	fresh, err := svc.Get(ctx, work.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, fresh.Qualification.TotalBids)
	assert.Equal(t, 1, fresh.Qualification.Pending)
}

func TestWorkSummary_UnknownWork(t *testing.T) {
	workflow := usecase.NewTenderWorkflowUseCase(memory.NewTenderMemoryRepository(), nil)
	svc := NewWorkSummaryService(workflow, cache.NewMemoryCache(), 0)

	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, usecase.ErrWorkNotFound)
}

// commitDuringBuild registers a bid and publishes its invalidation while the
// summary is being rebuilt, after the work and qualification were read.
type commitDuringBuild struct {
	usecase.ITenderWorkflowUseCase
	commit func(ctx context.Context)
	done   bool
}

func (c *commitDuringBuild) ComputeTotals(ctx context.Context, workID string) (entities.PaymentTotals, error) {
	if !c.done {
		c.done = true
		c.commit(ctx)
	}
	return c.ITenderWorkflowUseCase.ComputeTotals(ctx, workID)
}

func TestWorkSummary_InvalidationDuringRebuildIsNotCached(t *testing.T) {
	ctx := context.Background()
	workflow := usecase.NewTenderWorkflowUseCase(memory.NewTenderMemoryRepository(), nil)
	nit, err := workflow.PublishNit(ctx, usecase.PublishNitInput{MemoNo: "8/PW/2024", MemoDate: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	work, err := workflow.AddWork(ctx, nit.ID, usecase.AddWorkInput{SerialNo: 1, Description: "Culvert", EstimatedCost: decimal.NewFromInt(50000)})
	require.NoError(t, err)

	wrapped := &commitDuringBuild{ITenderWorkflowUseCase: workflow}
	svc := NewWorkSummaryService(wrapped, cache.NewMemoryCache(), time.Minute)
	wrapped.commit = func(ctx context.Context) {
		_, err := workflow.RegisterBid(ctx, work.ID, "agency-1")
		require.NoError(t, err)
		require.NoError(t, svc.Invalidate(ctx, interfaces.Event{Type: interfaces.EventBidRegistered, WorkID: work.ID}))
	}

	first, err := svc.Get(ctx, work.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, first.Qualification.TotalBids, "the overlapping rebuild read qualification before the bid")

	second, err := svc.Get(ctx, work.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, second.Qualification.TotalBids, "summary built before the invalidation must not be served")
}
