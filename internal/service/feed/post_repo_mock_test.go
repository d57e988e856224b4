package feed

import (
	"context"
	"sync"

	"github.com/wayfarer-app/wayfarer-backend/internal/domain"
)

// Ensure, that postRepoMock does implement postRepo.
// If this is not the case, regenerate this file with moq.
var _ postRepo = &postRepoMock{}

// postRepoMock is a mock implementation of postRepo.
type postRepoMock struct {
	// FeedFunc mocks the Feed method.
	FeedFunc func(ctx context.Context, f domain.FeedFilter) ([]domain.Post, error)

	// calls tracks calls to the methods.
	calls struct {
		// Feed holds details about calls to the Feed method.
		Feed []struct {
			// Ctx is the ctx argument value.
			Ctx context.Context
			// F is the f argument value.
			F   domain.FeedFilter
		}
	}
	lockFeed sync.RWMutex
}

// Feed calls FeedFunc.
func (mock *postRepoMock) Feed(ctx context.Context, f domain.FeedFilter) ([]domain.Post, error) {
	if mock.FeedFunc == nil {
		panic("postRepoMock.FeedFunc: method is nil but postRepo.Feed was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.FeedFilter
	}{
		Ctx: ctx,
		F:   f,
	}
	mock.lockFeed.Lock()
	mock.calls.Feed = append(mock.calls.Feed, callInfo)
	mock.lockFeed.Unlock()
	return mock.FeedFunc(ctx, f)
}

// FeedCalls gets all the calls that were made to Feed.
// Check the length with:
//
//	len(mockedPostRepo.FeedCalls())
func (mock *postRepoMock) FeedCalls() []struct {
	Ctx context.Context
	F   domain.FeedFilter
} {
	var calls []struct {
		Ctx context.Context
		F   domain.FeedFilter
	}
	mock.lockFeed.RLock()
	calls = mock.calls.Feed
	mock.lockFeed.RUnlock()
	return calls
}
