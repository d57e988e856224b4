package rest

import (
	"context"
	"sync"

	"github.com/wayfarer-app/wayfarer-backend/internal/domain"
	"github.com/wayfarer-app/wayfarer-backend/internal/service/social"
)

// Ensure, that socialServiceMock does implement socialService.
// If this is not the case, regenerate this file with moq.
var _ socialService = &socialServiceMock{}

// socialServiceMock is a mock implementation of socialService.
type socialServiceMock struct {
	// CommentsFunc mocks the Comments method.
	CommentsFunc func(ctx context.Context, input social.ListInput) ([]domain.Comment, error)

	// FollowersFunc mocks the Followers method.
	FollowersFunc func(ctx context.Context, input social.ListInput) ([]domain.UserSummary, error)

	// FollowingFunc mocks the Following method.
	FollowingFunc func(ctx context.Context, input social.ListInput) ([]domain.UserSummary, error)

	// calls tracks calls to the methods.
	calls struct {
		// Comments holds details about calls to the Comments method.
		Comments []struct {
			// Ctx is the ctx argument value.
			Ctx   context.Context
			// Input is the input argument value.
			Input social.ListInput
		}
		// Followers holds details about calls to the Followers method.
		Followers []struct {
			// Ctx is the ctx argument value.
			Ctx   context.Context
			// Input is the input argument value.
			Input social.ListInput
		}
		// Following holds details about calls to the Following method.
		Following []struct {
			// Ctx is the ctx argument value.
			Ctx   context.Context
			// Input is the input argument value.
			Input social.ListInput
		}
	}
	lockComments  sync.RWMutex
	lockFollowers sync.RWMutex
	lockFollowing sync.RWMutex
}

// Comments calls CommentsFunc.
func (mock *socialServiceMock) Comments(ctx context.Context, input social.ListInput) ([]domain.Comment, error) {
	if mock.CommentsFunc == nil {
		panic("socialServiceMock.CommentsFunc: method is nil but socialService.Comments was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input social.ListInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockComments.Lock()
	mock.calls.Comments = append(mock.calls.Comments, callInfo)
	mock.lockComments.Unlock()
	return mock.CommentsFunc(ctx, input)
}

// CommentsCalls gets all the calls that were made to Comments.
// Check the length with:
//
//	len(mockedSocialService.CommentsCalls())
func (mock *socialServiceMock) CommentsCalls() []struct {
	Ctx   context.Context
	Input social.ListInput
} {
	var calls []struct {
		Ctx   context.Context
		Input social.ListInput
	}
	mock.lockComments.RLock()
	calls = mock.calls.Comments
	mock.lockComments.RUnlock()
	return calls
}

// Followers calls FollowersFunc.
func (mock *socialServiceMock) Followers(ctx context.Context, input social.ListInput) ([]domain.UserSummary, error) {
	if mock.FollowersFunc == nil {
		panic("socialServiceMock.FollowersFunc: method is nil but socialService.Followers was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input social.ListInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockFollowers.Lock()
	mock.calls.Followers = append(mock.calls.Followers, callInfo)
	mock.lockFollowers.Unlock()
	return mock.FollowersFunc(ctx, input)
}

// FollowersCalls gets all the calls that were made to Followers.
// Check the length with:
//
//	len(mockedSocialService.FollowersCalls())
func (mock *socialServiceMock) FollowersCalls() []struct {
	Ctx   context.Context
	Input social.ListInput
} {
	var calls []struct {
		Ctx   context.Context
		Input social.ListInput
	}
	mock.lockFollowers.RLock()
	calls = mock.calls.Followers
	mock.lockFollowers.RUnlock()
	return calls
}

// Following calls FollowingFunc.
func (mock *socialServiceMock) Following(ctx context.Context, input social.ListInput) ([]domain.UserSummary, error) {
	if mock.FollowingFunc == nil {
		panic("socialServiceMock.FollowingFunc: method is nil but socialService.Following was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input social.ListInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockFollowing.Lock()
	mock.calls.Following = append(mock.calls.Following, callInfo)
	mock.lockFollowing.Unlock()
	return mock.FollowingFunc(ctx, input)
}

// FollowingCalls gets all the calls that were made to Following.
// Check the length with:
//
//	len(mockedSocialService.FollowingCalls())
func (mock *socialServiceMock) FollowingCalls() []struct {
	Ctx   context.Context
	Input social.ListInput
} {
	var calls []struct {
		Ctx   context.Context
		Input social.ListInput
	}
	mock.lockFollowing.RLock()
	calls = mock.calls.Following
	mock.lockFollowing.RUnlock()
	return calls
}
