package gamesession

import (
	"context"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"showlink/internal/model"
)

const DefaultLimit = 5

// Searcher runs one search against the session backend. It must not
// paginate or reorder the records it returns.
type Searcher interface {
	Search(ctx context.Context, filter Filter) ([]*model.GameSession, error)
}

type Result struct {
	Sessions []*model.GameSession
	// TotalCount is the number of matching sessions before the limit was applied.
	TotalCount int
}

type Option func(*Aggregator)

// WithIntN replaces the random source used for shuffling. intN(n) must
// return a value in [0, n).
func WithIntN(intN func(n int) int) Option {
	return func(a *Aggregator) {
		a.intN = intN
	}
}

func WithLogger(logger *logrus.Entry) Option {
	return func(a *Aggregator) {
		a.logger = logger
	}
}

// Aggregator samples sessions across several status buckets.
type Aggregator struct {
	searcher Searcher
	intN     func(n int) int
	logger   *logrus.Entry
}

func NewAggregator(searcher Searcher, options ...Option) *Aggregator {
	a := &Aggregator{
		searcher: searcher,
		intN:     rand.IntN,
		logger:   logrus.NewEntry(logrus.StandardLogger()),
	}
	for _, option := range options {
		option(a)
	}
	return a
}

// Aggregate searches every status listed in filter.Status concurrently,
// shuffles the merged result when more than one status was searched and
// returns at most limit sessions.
func (a *Aggregator) Aggregate(ctx context.Context, filter Filter, limit int) (*Result, error) {
	statuses := SplitStatuses(filter.Status)

	var sessions []*model.GameSession
	if len(statuses) == 0 {
		found, err := a.searcher.Search(ctx, filter.WithStatus(""))
		if err != nil {
			return nil, err
		}
		sessions = PrepareSessions(found, filter.IgnoreNoConnection)
	} else {
		buckets, err := a.searchBuckets(ctx, filter, statuses)
		if err != nil {
			return nil, err
		}
		for _, bucket := range buckets {
			sessions = append(sessions, bucket...)
		}
		if len(statuses) > 1 {
			Shuffle(sessions, a.intN)
		}
	}

	a.logger.Debugf("aggregated %d sessions over %d status buckets", len(sessions), len(statuses))

	return &Result{
		Sessions:   truncate(sessions, limit),
		TotalCount: len(sessions),
	}, nil
}

func (a *Aggregator) searchBuckets(ctx context.Context, filter Filter, statuses []string) ([][]*model.GameSession, error) {
	buckets := make([][]*model.GameSession, len(statuses))
	g, gctx := errgroup.WithContext(ctx)
	for i, status := range statuses {
		bucketFilter := filter.WithStatus(status)
		g.Go(func() error {
			found, err := a.searcher.Search(gctx, bucketFilter)
			if err != nil {
				return err
			}
			buckets[i] = PrepareSessions(found, bucketFilter.IgnoreNoConnection)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return buckets, nil
}

// Shuffle is a Fisher-Yates shuffle walking from the last element down.
func Shuffle[T any](items []T, intN func(n int) int) {
	for i := len(items) - 1; i > 0; i-- {
		j := intN(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

func truncate(sessions []*model.GameSession, limit int) []*model.GameSession {
	if limit <= 0 {
		return []*model.GameSession{}
	}
	if len(sessions) > limit {
		return sessions[:limit]
	}
	if sessions == nil {
		return []*model.GameSession{}
	}
	return sessions
}
