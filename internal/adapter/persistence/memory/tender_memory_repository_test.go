package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"tender_service/internal/domain/entities"
	"tender_service/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedWork(t *testing.T, r *TenderMemoryRepository) entities.Work {
	t.Helper()
	nit := entities.Nit{ID: "n1", MemoNo: "12/PW/2024", Version: 1, WorkIDs: []string{"w1"}}
	work := entities.Work{ID: "w1", NitID: "n1", TenderStatus: entities.TenderStatusFinancialEvaluation, Version: 4}
	require.NoError(t, r.Commit(context.Background(), interfaces.Changeset{
		NewNits:  []entities.Nit{nit},
		NewWorks: []entities.Work{work},
	}))
	return work
}

func TestCommit_FailedConditionWritesNothing(t *testing.T) {
	ctx := context.Background()
	r := NewTenderMemoryRepository()
	work := seedWork(t, r)

	updated := work
	updated.TenderStatus = entities.TenderStatusAOC
	updated.Version = 5
	err := r.Commit(ctx, interfaces.Changeset{
		NewAwards:   []entities.Award{{ID: "aoc-w1", WorkID: "w1"}},
		WorkUpdates: []interfaces.WorkUpdate{{Work: updated, ExpectedVersion: 3, ExpectedStatus: work.TenderStatus}},
	})

	var conflict *interfaces.CommitConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, interfaces.EntityWork, conflict.Entity)
	assert.Equal(t, interfaces.ConflictVersion, conflict.Kind)

	award, _ := r.GetAward(ctx, "aoc-w1")
	assert.Empty(t, award.ID)
	stored, _ := r.GetWork(ctx, "w1")
	assert.Equal(t, entities.TenderStatusFinancialEvaluation, stored.TenderStatus)
}

func TestCommit_ChecksStatusAsWellAsVersion(t *testing.T) {
	r := NewTenderMemoryRepository()
	work := seedWork(t, r)

	err := r.Commit(context.Background(), interfaces.Changeset{
		WorkUpdates: []interfaces.WorkUpdate{{Work: work, ExpectedVersion: work.Version, ExpectedStatus: entities.TenderStatusTechnicalEvaluation}},
	})
	assert.ErrorIs(t, err, interfaces.ErrCommitConflict)
}

func TestCommit_ExistingAwardReportedBeforeWorkConflict(t *testing.T) {
	ctx := context.Background()
	r := NewTenderMemoryRepository()
	work := seedWork(t, r)
	require.NoError(t, r.Commit(ctx, interfaces.Changeset{NewAwards: []entities.Award{{ID: "aoc-w1", WorkID: "w1"}}}))

	err := r.Commit(ctx, interfaces.Changeset{
		NewAwards:   []entities.Award{{ID: "aoc-w1", WorkID: "w1"}},
		WorkUpdates: []interfaces.WorkUpdate{{Work: work, ExpectedVersion: 99}},
	})
	var conflict *interfaces.CommitConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, interfaces.EntityAward, conflict.Entity)
	assert.Equal(t, interfaces.ConflictExists, conflict.Kind)
}

func TestCommit_MemoGuard(t *testing.T) {
	ctx := context.Background()
	r := NewTenderMemoryRepository()
	seedWork(t, r)

	err := r.Commit(ctx, interfaces.Changeset{NewNits: []entities.Nit{{ID: "n2", MemoNo: "12/pw/2024 "}}})
	var conflict *interfaces.CommitConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, interfaces.EntityNitMemo, conflict.Entity)

	nit, err := r.GetNitByMemo(ctx, "12/PW/2024")
	require.NoError(t, err)
	assert.Equal(t, "n1", nit.ID)

	require.NoError(t, r.Commit(ctx, interfaces.Changeset{
		NitDeletes: []interfaces.NitDelete{{ID: "n1", MemoNo: "12/PW/2024", ExpectedVersion: 1}},
	}))
	released, _ := r.GetNitByMemo(ctx, "12/PW/2024")
	assert.Empty(t, released.ID)
}

func TestReads_ReturnCopies(t *testing.T) {
	ctx := context.Background()
	r := NewTenderMemoryRepository()
	seedWork(t, r)

	nit, _ := r.GetNit(ctx, "n1")
	nit.WorkIDs[0] = "tampered"
	again, _ := r.GetNit(ctx, "n1")
	assert.Equal(t, []string{"w1"}, again.WorkIDs)
}

func TestListPayments_Ordered(t *testing.T) {
	ctx := context.Background()
	r := NewTenderMemoryRepository()
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, r.Commit(ctx, interfaces.Changeset{NewPayments: []entities.PaymentEntry{
		{ID: "p2", WorkID: "w1", RecordedAt: base.Add(time.Minute)},
		{ID: "p1", WorkID: "w1", RecordedAt: base},
	}}))

	entries, err := r.ListPayments(ctx, "w1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "p1", entries[0].ID)
	assert.Equal(t, "p2", entries[1].ID)

	err = r.Commit(ctx, interfaces.Changeset{NewPayments: []entities.PaymentEntry{{ID: "p1", WorkID: "w1"}}})
	assert.ErrorIs(t, err, interfaces.ErrCommitConflict)
}

func TestCommit_HonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := NewTenderMemoryRepository().Commit(ctx, interfaces.Changeset{NewNits: []entities.Nit{{ID: "n1", MemoNo: "m"}}})
	assert.ErrorIs(t, err, context.Canceled)
}
