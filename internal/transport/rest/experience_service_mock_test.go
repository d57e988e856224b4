package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/wayfarer-app/wayfarer-backend/internal/domain"
	"github.com/wayfarer-app/wayfarer-backend/internal/service/experience"
)

// Ensure, that experienceServiceMock does implement experienceService.
// If this is not the case, regenerate this file with moq.
var _ experienceService = &experienceServiceMock{}

// experienceServiceMock is a mock implementation of experienceService.
type experienceServiceMock struct {
	// AddReviewFunc mocks the AddReview method.
	AddReviewFunc func(ctx context.Context, input experience.AddReviewInput) (*domain.Review, error)

	// CreateFunc mocks the Create method.
	CreateFunc func(ctx context.Context, input experience.CreateInput) (*domain.Experience, error)

	// GetFunc mocks the Get method.
	GetFunc func(ctx context.Context, id uuid.UUID) (*domain.ExperienceDetails, error)

	// ListReviewsFunc mocks the ListReviews method.
	ListReviewsFunc func(ctx context.Context, input experience.ListReviewsInput) ([]domain.Review, error)

	// NearbyFunc mocks the Nearby method.
	NearbyFunc func(ctx context.Context, input experience.NearbyInput) ([]domain.Experience, error)

	// SearchFunc mocks the Search method.
	SearchFunc func(ctx context.Context, input experience.SearchInput) ([]domain.Experience, error)

	// calls tracks calls to the methods.
	calls struct {
		// AddReview holds details about calls to the AddReview method.
		AddReview []struct {
			// Ctx is the ctx argument value.
			Ctx   context.Context
			// Input is the input argument value.
			Input experience.AddReviewInput
		}
		// Create holds details about calls to the Create method.
		Create []struct {
			// Ctx is the ctx argument value.
			Ctx   context.Context
			// Input is the input argument value.
			Input experience.CreateInput
		}
		// Get holds details about calls to the Get method.
		Get []struct {
			// Ctx is the ctx argument value.
			Ctx context.Context
			// Id is the id argument value.
			Id  uuid.UUID
		}
		// ListReviews holds details about calls to the ListReviews method.
		ListReviews []struct {
			// Ctx is the ctx argument value.
			Ctx   context.Context
			// Input is the input argument value.
			Input experience.ListReviewsInput
		}
		// Nearby holds details about calls to the Nearby method.
		Nearby []struct {
			// Ctx is the ctx argument value.
			Ctx   context.Context
			// Input is the input argument value.
			Input experience.NearbyInput
		}
		// Search holds details about calls to the Search method.
		Search []struct {
			// Ctx is the ctx argument value.
			Ctx   context.Context
			// Input is the input argument value.
			Input experience.SearchInput
		}
	}
	lockAddReview   sync.RWMutex
	lockCreate      sync.RWMutex
	lockGet         sync.RWMutex
	lockListReviews sync.RWMutex
	lockNearby      sync.RWMutex
	lockSearch      sync.RWMutex
}

// AddReview calls AddReviewFunc.
func (mock *experienceServiceMock) AddReview(ctx context.Context, input experience.AddReviewInput) (*domain.Review, error) {
	if mock.AddReviewFunc == nil {
		panic("experienceServiceMock.AddReviewFunc: method is nil but experienceService.AddReview was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input experience.AddReviewInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockAddReview.Lock()
	mock.calls.AddReview = append(mock.calls.AddReview, callInfo)
	mock.lockAddReview.Unlock()
	return mock.AddReviewFunc(ctx, input)
}

// AddReviewCalls gets all the calls that were made to AddReview.
// Check the length with:
//
//	len(mockedExperienceService.AddReviewCalls())
func (mock *experienceServiceMock) AddReviewCalls() []struct {
	Ctx   context.Context
	Input experience.AddReviewInput
} {
	var calls []struct {
		Ctx   context.Context
		Input experience.AddReviewInput
	}
	mock.lockAddReview.RLock()
	calls = mock.calls.AddReview
	mock.lockAddReview.RUnlock()
	return calls
}

// Create calls CreateFunc.
func (mock *experienceServiceMock) Create(ctx context.Context, input experience.CreateInput) (*domain.Experience, error) {
	if mock.CreateFunc == nil {
		panic("experienceServiceMock.CreateFunc: method is nil but experienceService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input experience.CreateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

// CreateCalls gets all the calls that were made to Create.
// Check the length with:
//
//	len(mockedExperienceService.CreateCalls())
func (mock *experienceServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input experience.CreateInput
} {
	var calls []struct {
		Ctx   context.Context
		Input experience.CreateInput
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

// Get calls GetFunc.
func (mock *experienceServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.ExperienceDetails, error) {
	if mock.GetFunc == nil {
		panic("experienceServiceMock.GetFunc: method is nil but experienceService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

// GetCalls gets all the calls that were made to Get.
// Check the length with:
//
//	len(mockedExperienceService.GetCalls())
func (mock *experienceServiceMock) GetCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

// ListReviews calls ListReviewsFunc.
func (mock *experienceServiceMock) ListReviews(ctx context.Context, input experience.ListReviewsInput) ([]domain.Review, error) {
	if mock.ListReviewsFunc == nil {
		panic("experienceServiceMock.ListReviewsFunc: method is nil but experienceService.ListReviews was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input experience.ListReviewsInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockListReviews.Lock()
	mock.calls.ListReviews = append(mock.calls.ListReviews, callInfo)
	mock.lockListReviews.Unlock()
	return mock.ListReviewsFunc(ctx, input)
}

// ListReviewsCalls gets all the calls that were made to ListReviews.
// Check the length with:
//
//	len(mockedExperienceService.ListReviewsCalls())
func (mock *experienceServiceMock) ListReviewsCalls() []struct {
	Ctx   context.Context
	Input experience.ListReviewsInput
} {
	var calls []struct {
		Ctx   context.Context
		Input experience.ListReviewsInput
	}
	mock.lockListReviews.RLock()
	calls = mock.calls.ListReviews
	mock.lockListReviews.RUnlock()
	return calls
}

// Nearby calls NearbyFunc.
func (mock *experienceServiceMock) Nearby(ctx context.Context, input experience.NearbyInput) ([]domain.Experience, error) {
	if mock.NearbyFunc == nil {
		panic("experienceServiceMock.NearbyFunc: method is nil but experienceService.Nearby was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input experience.NearbyInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockNearby.Lock()
	mock.calls.Nearby = append(mock.calls.Nearby, callInfo)
	mock.lockNearby.Unlock()
	return mock.NearbyFunc(ctx, input)
}

// NearbyCalls gets all the calls that were made to Nearby.
// Check the length with:
//
//	len(mockedExperienceService.NearbyCalls())
func (mock *experienceServiceMock) NearbyCalls() []struct {
	Ctx   context.Context
	Input experience.NearbyInput
} {
	var calls []struct {
		Ctx   context.Context
		Input experience.NearbyInput
	}
	mock.lockNearby.RLock()
	calls = mock.calls.Nearby
	mock.lockNearby.RUnlock()
	return calls
}

// Search calls SearchFunc.
func (mock *experienceServiceMock) Search(ctx context.Context, input experience.SearchInput) ([]domain.Experience, error) {
	if mock.SearchFunc == nil {
		panic("experienceServiceMock.SearchFunc: method is nil but experienceService.Search was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input experience.SearchInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, input)
}

// SearchCalls gets all the calls that were made to Search.
// Check the length with:
//
//	len(mockedExperienceService.SearchCalls())
func (mock *experienceServiceMock) SearchCalls() []struct {
	Ctx   context.Context
	Input experience.SearchInput
} {
	var calls []struct {
		Ctx   context.Context
		Input experience.SearchInput
	}
	mock.lockSearch.RLock()
	calls = mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}
