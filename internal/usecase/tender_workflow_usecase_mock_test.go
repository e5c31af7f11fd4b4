package usecase

import (
	"context"
	"errors"
	"testing"

	"tender_service/internal/domain/entities"
	"tender_service/internal/usecase/interfaces"
	mock_interfaces "tender_service/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestTenderWorkflowUseCase_StoreFailures(t *testing.T) {
	t.Run("read failure is an infrastructure error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITenderRepository(ctrl)
		metrics := mock_interfaces.NewMockIWorkflowMetrics(ctrl)
		uc := NewTenderWorkflowUseCase(repo, nil, WithMetrics(metrics))

		dbErr := errors.New("dynamodb unavailable")
		repo.EXPECT().GetWork(gomock.Any(), "w1").Return(entities.Work{}, dbErr)
		metrics.EXPECT().ObserveOutcome("get_work", string(ClassInfrastructure))

		_, err := uc.GetWork(context.Background(), " w1 ")
		if !errors.Is(err, ErrInfrastructure) || !errors.Is(err, dbErr) {
			t.Fatalf("expected infrastructure error wrapping the cause, got %v", err)
		}
	})

	t.Run("commit failure is an infrastructure error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITenderRepository(ctrl)
		publisher := mock_interfaces.NewMockIEventPublisher(ctrl)
		uc := NewTenderWorkflowUseCase(repo, publisher, WithClock(fixedClock))

		repo.EXPECT().GetWork(gomock.Any(), "w1").Return(entities.Work{ID: "w1", TenderStatus: entities.TenderStatusToBeOpened, Version: 1}, nil)
		repo.EXPECT().Commit(gomock.Any(), gomock.Any()).Return(errors.New("throttled"))

		_, err := uc.AdvanceTenderStage(context.Background(), "w1", entities.TenderStatusTechnicalBidOpening)
		if ClassOf(err) != ClassInfrastructure {
			t.Fatalf("expected infrastructure class, got %v", err)
		}
	})
}

func TestTenderWorkflowUseCase_CommitConflicts(t *testing.T) {
	awardSetup := func(t *testing.T, repo *mock_interfaces.MockITenderRepository) {
		t.Helper()
		work := awardableWork()
		repo.EXPECT().GetWork(gomock.Any(), "w1").Return(work, nil)
		repo.EXPECT().GetAward(gomock.Any(), "aoc-w1").Return(entities.Award{}, nil)
		repo.EXPECT().GetBid(gomock.Any(), "b1").Return(pricedBid("b1", "90000"), nil)
	}
	award := AwardInput{WorkID: "w1", WinningBidID: "b1", WorkOrderMemoNo: "WO/1", WorkOrderMemoDate: fixedNow}

	cases := []struct {
		name     string
		conflict *interfaces.CommitConflictError
		want     error
	}{
		{"award exists", &interfaces.CommitConflictError{Entity: interfaces.EntityAward, ID: "aoc-w1", Kind: interfaces.ConflictExists}, ErrAlreadyAwarded},
		{"work order exists", &interfaces.CommitConflictError{Entity: interfaces.EntityWorkOrderDetail, ID: "wod-aoc-w1", Kind: interfaces.ConflictExists}, ErrAlreadyAwarded},
		{"work moved", &interfaces.CommitConflictError{Entity: interfaces.EntityWork, ID: "w1", Kind: interfaces.ConflictVersion}, ErrConcurrentModification},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockITenderRepository(ctrl)
			publisher := mock_interfaces.NewMockIEventPublisher(ctrl)
			uc := NewTenderWorkflowUseCase(repo, publisher, WithClock(fixedClock))

			awardSetup(t, repo)
			repo.EXPECT().Commit(gomock.Any(), gomock.Any()).Return(c.conflict)

			_, err := uc.AwardContract(context.Background(), award)
			if !errors.Is(err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
			if !errors.Is(err, interfaces.ErrCommitConflict) {
				t.Fatalf("expected the commit conflict to stay in the chain, got %v", err)
			}
		})
	}

	t.Run("memo published concurrently", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITenderRepository(ctrl)
		uc := NewTenderWorkflowUseCase(repo, nil, WithClock(fixedClock))

		repo.EXPECT().GetNitByMemo(gomock.Any(), "12/PW/2024").Return(entities.Nit{}, nil)
		repo.EXPECT().Commit(gomock.Any(), gomock.Any()).Return(&interfaces.CommitConflictError{Entity: interfaces.EntityNitMemo, ID: "12/PW/2024", Kind: interfaces.ConflictExists})

		_, err := uc.PublishNit(context.Background(), PublishNitInput{MemoNo: "12/PW/2024", MemoDate: fixedNow})
		if !errors.Is(err, ErrDuplicateMemo) {
			t.Fatalf("expected ErrDuplicateMemo, got %v", err)
		}
	})
}

func TestTenderWorkflowUseCase_AwardCommitsOneChangeset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockITenderRepository(ctrl)
	publisher := mock_interfaces.NewMockIEventPublisher(ctrl)
	metrics := mock_interfaces.NewMockIWorkflowMetrics(ctrl)
	uc := NewTenderWorkflowUseCase(repo, publisher, WithClock(fixedClock), WithMetrics(metrics))

	work := awardableWork()
	repo.EXPECT().GetWork(gomock.Any(), "w1").Return(work, nil)
	repo.EXPECT().GetAward(gomock.Any(), "aoc-w1").Return(entities.Award{}, nil)
	repo.EXPECT().GetBid(gomock.Any(), "b1").Return(pricedBid("b1", "92500"), nil)
	repo.EXPECT().Commit(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cs interfaces.Changeset) error {
			if len(cs.NewAwards) != 1 || len(cs.NewWorkOrderDetails) != 1 || len(cs.WorkUpdates) != 1 {
				t.Fatalf("unexpected changeset: %+v", cs)
			}
			u := cs.WorkUpdates[0]
			if u.ExpectedVersion != work.Version || u.ExpectedStatus != entities.TenderStatusFinancialEvaluation {
				t.Fatalf("work update must be conditioned on the loaded state: %+v", u)
			}
			if u.Work.TenderStatus != entities.TenderStatusAOC {
				t.Fatalf("expected AOC, got %s", u.Work.TenderStatus)
			}
			return nil
		},
	)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Do(func(_ context.Context, e interfaces.Event) {
		if e.Type != interfaces.EventContractAwarded || e.Attributes["percentage"] != "7.50" || e.Attributes["agency_id"] != "agency-b1" {
			t.Fatalf("unexpected event: %+v", e)
		}
		if !e.OccurredAt.Equal(fixedNow) {
			t.Fatalf("expected event time %v, got %v", fixedNow, e.OccurredAt)
		}
	})
	metrics.EXPECT().ObserveOutcome("award_contract", "success")

	res, err := uc.AwardContract(context.Background(), AwardInput{WorkID: "w1", WinningBidID: "b1", WorkOrderMemoNo: "WO/1", WorkOrderMemoDate: fixedNow})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Award.ID != "aoc-w1" || res.Detail.Percentage != "7.50" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestTenderWorkflowUseCase_RejectionsDoNotCommit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockITenderRepository(ctrl)
	metrics := mock_interfaces.NewMockIWorkflowMetrics(ctrl)
	uc := NewTenderWorkflowUseCase(repo, nil, WithClock(fixedClock), WithMetrics(metrics))

	repo.EXPECT().GetWork(gomock.Any(), "w1").Return(entities.Work{ID: "w1", TenderStatus: entities.TenderStatusTechnicalEvaluation, BidIDs: []string{"b1"}, Version: 4}, nil)
	repo.EXPECT().GetBids(gomock.Any(), []string{"b1"}).Return([]entities.Bid{{ID: "b1", WorkID: "w1"}}, nil)
	metrics.EXPECT().ObserveOutcome("advance_tender_stage", string(ClassBusinessRule))

	_, err := uc.AdvanceTenderStage(context.Background(), "w1", entities.TenderStatusFinancialBidOpening)
	if !errors.Is(err, ErrEvaluationIncomplete) {
		t.Fatalf("expected ErrEvaluationIncomplete, got %v", err)
	}
}
