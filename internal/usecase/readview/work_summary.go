package readview

import (
	"context"
	"encoding/json"
	"time"

	"tender_service/internal/domain/entities"
	"tender_service/internal/usecase"
	"tender_service/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=work_summary.go -destination=../../adapter/http/handlers/mocks/mock_work_summary.go -package=mocks

const defaultTTL = 5 * time.Minute

// Cache is the byte store behind the read views. Invalidate bumps the key's
// generation and drops its value; SetIfGeneration stores only when the
// generation still equals the one read before the value was built.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Generation(ctx context.Context, key string) (int64, error)
	SetIfGeneration(ctx context.Context, key string, gen int64, value []byte, ttl time.Duration) (bool, error)
	Invalidate(ctx context.Context, key string) error
}

// WorkSummary is the dashboard view of one work: its record, where the
// qualification gate stands and what has been paid.
type WorkSummary struct {
	Work          entities.Work                `json:"work"`
	Qualification usecase.QualificationSummary `json:"qualification"`
	Totals        entities.PaymentTotals       `json:"totals"`
	GeneratedAt   time.Time                    `json:"generated_at"`
}

// WorkSummaryService serves WorkSummary from the cache and rebuilds it through
// the workflow on a miss. Invalidate runs when an event for the work is
// published; a rebuild that overlaps an invalidation is returned to its caller
// but not cached.
type WorkSummaryService struct {
	workflow usecase.ITenderWorkflowUseCase
	cache    Cache
	ttl      time.Duration
	now      func() time.Time
}

type IWorkSummaryService interface {
	Get(ctx context.Context, workID string) (WorkSummary, error)
}

var _ IWorkSummaryService = (*WorkSummaryService)(nil)

func NewWorkSummaryService(workflow usecase.ITenderWorkflowUseCase, cache Cache, ttl time.Duration) *WorkSummaryService {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &WorkSummaryService{workflow: workflow, cache: cache, ttl: ttl, now: func() time.Time { return time.Now().UTC() }}
}

func summaryKey(workID string) string { return "work-summary:" + workID }

func (s *WorkSummaryService) Get(ctx context.Context, workID string) (WorkSummary, error) {
	key := summaryKey(workID)
	if raw, ok, err := s.cache.Get(ctx, key); err != nil {
		log.WithField("work_id", workID).WithError(err).Warn("[readview] cache read failed, rebuilding")
	} else if ok {
		var cached WorkSummary
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
	}

	gen, genErr := s.cache.Generation(ctx, key)
	if genErr != nil {
		log.WithField("work_id", workID).WithError(genErr).Warn("[readview] cache generation read failed, not caching")
	}
	summary, err := s.build(ctx, workID)
	if err != nil {
		return WorkSummary{}, err
	}
	if genErr != nil {
		return summary, nil
	}
	if raw, err := json.Marshal(summary); err == nil {
		written, err := s.cache.SetIfGeneration(ctx, key, gen, raw, s.ttl)
		switch {
		case err != nil:
			log.WithField("work_id", workID).WithError(err).Warn("[readview] cache write failed")
		case !written:
			log.WithField("work_id", workID).Debug("[readview] invalidated during rebuild, not caching")
		}
	}
	return summary, nil
}

func (s *WorkSummaryService) build(ctx context.Context, workID string) (WorkSummary, error) {
	work, err := s.workflow.GetWork(ctx, workID)
	if err != nil {
		return WorkSummary{}, err
	}
	qualification, err := s.workflow.QualificationStatus(ctx, workID)
	if err != nil {
		return WorkSummary{}, err
	}
	totals, err := s.workflow.ComputeTotals(ctx, workID)
	if err != nil {
		return WorkSummary{}, err
	}
	return WorkSummary{Work: work, Qualification: qualification, Totals: totals, GeneratedAt: s.now()}, nil
}

// Invalidate is an event bus subscriber.
func (s *WorkSummaryService) Invalidate(ctx context.Context, e interfaces.Event) error {
	if e.WorkID == "" {
		return nil
	}
	return s.cache.Invalidate(ctx, summaryKey(e.WorkID))
}
