package queries

import (
	"context"
)

type CandidateReadStore interface {
	FindAll(ctx context.Context) ([]*CandidateView, error)
}

type CandidateQueries interface {
	List(ctx context.Context) ([]*CandidateView, error)
}

type candidateQueriesImpl struct {
	readStore CandidateReadStore
}

func NewCandidateQueries(readStore CandidateReadStore) CandidateQueries {
	return &candidateQueriesImpl{readStore: readStore}
}

// List returns the ballot as voters see it: candidates only, never counts.
func (q *candidateQueriesImpl) List(ctx context.Context) ([]*CandidateView, error) {
	candidates, err := q.readStore.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if candidates == nil {
		candidates = []*CandidateView{}
	}
	return candidates, nil
}
