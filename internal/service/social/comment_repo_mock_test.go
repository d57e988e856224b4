package social

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/wayfarer-app/wayfarer-backend/internal/domain"
)

// Ensure, that commentRepoMock does implement commentRepo.
// If this is not the case, regenerate this file with moq.
var _ commentRepo = &commentRepoMock{}

// commentRepoMock is a mock implementation of commentRepo.
type commentRepoMock struct {
	// ListCommentsFunc mocks the ListComments method.
	ListCommentsFunc func(ctx context.Context, postID uuid.UUID, limit int, offset int) ([]domain.Comment, error)

	// calls tracks calls to the methods.
	calls struct {
		// ListComments holds details about calls to the ListComments method.
		ListComments []struct {
			// Ctx is the ctx argument value.
			Ctx    context.Context
			// PostID is the postID argument value.
			PostID uuid.UUID
			// Limit is the limit argument value.
			Limit  int
			// Offset is the offset argument value.
			Offset int
		}
	}
	lockListComments sync.RWMutex
}

// ListComments calls ListCommentsFunc.
func (mock *commentRepoMock) ListComments(ctx context.Context, postID uuid.UUID, limit int, offset int) ([]domain.Comment, error) {
	if mock.ListCommentsFunc == nil {
		panic("commentRepoMock.ListCommentsFunc: method is nil but commentRepo.ListComments was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		PostID uuid.UUID
		Limit  int
		Offset int
	}{
		Ctx:    ctx,
		PostID: postID,
		Limit:  limit,
		Offset: offset,
	}
	mock.lockListComments.Lock()
	mock.calls.ListComments = append(mock.calls.ListComments, callInfo)
	mock.lockListComments.Unlock()
	return mock.ListCommentsFunc(ctx, postID, limit, offset)
}

// ListCommentsCalls gets all the calls that were made to ListComments.
// Check the length with:
//
//	len(mockedCommentRepo.ListCommentsCalls())
func (mock *commentRepoMock) ListCommentsCalls() []struct {
	Ctx    context.Context
	PostID uuid.UUID
	Limit  int
	Offset int
} {
	var calls []struct {
		Ctx    context.Context
		PostID uuid.UUID
		Limit  int
		Offset int
	}
	mock.lockListComments.RLock()
	calls = mock.calls.ListComments
	mock.lockListComments.RUnlock()
	return calls
}
