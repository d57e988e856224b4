package experience

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/wayfarer-app/wayfarer-backend/internal/domain"
)

// Ensure, that experienceRepoMock does implement experienceRepo.
// If this is not the case, regenerate this file with moq.
var _ experienceRepo = &experienceRepoMock{}

// experienceRepoMock is a mock implementation of experienceRepo.
type experienceRepoMock struct {
	// CreateFunc mocks the Create method.
	CreateFunc func(ctx context.Context, e domain.Experience) (*domain.Experience, error)

	// GetDetailsFunc mocks the GetDetails method.
	GetDetailsFunc func(ctx context.Context, id uuid.UUID) (*domain.ExperienceDetails, error)

	// LockActiveFunc mocks the LockActive method.
	LockActiveFunc func(ctx context.Context, id uuid.UUID) error

	// RecomputeRatingFunc mocks the RecomputeRating method.
	RecomputeRatingFunc func(ctx context.Context, id uuid.UUID) (*float64, error)

	// SearchFunc mocks the Search method.
	SearchFunc func(ctx context.Context, f domain.ExperienceFilter) ([]domain.Experience, error)

	// calls tracks calls to the methods.
	calls struct {
		// Create holds details about calls to the Create method.
		Create []struct {
			// Ctx is the ctx argument value.
			Ctx context.Context
			// E is the e argument value.
			E   domain.Experience
		}
		// GetDetails holds details about calls to the GetDetails method.
		GetDetails []struct {
			// Ctx is the ctx argument value.
			Ctx context.Context
			// Id is the id argument value.
			Id  uuid.UUID
		}
		// LockActive holds details about calls to the LockActive method.
		LockActive []struct {
			// Ctx is the ctx argument value.
			Ctx context.Context
			// Id is the id argument value.
			Id  uuid.UUID
		}
		// RecomputeRating holds details about calls to the RecomputeRating method.
		RecomputeRating []struct {
			// Ctx is the ctx argument value.
			Ctx context.Context
			// Id is the id argument value.
			Id  uuid.UUID
		}
		// Search holds details about calls to the Search method.
		Search []struct {
			// Ctx is the ctx argument value.
			Ctx context.Context
			// F is the f argument value.
			F   domain.ExperienceFilter
		}
	}
	lockCreate          sync.RWMutex
	lockGetDetails      sync.RWMutex
	lockLockActive      sync.RWMutex
	lockRecomputeRating sync.RWMutex
	lockSearch          sync.RWMutex
}

// Create calls CreateFunc.
func (mock *experienceRepoMock) Create(ctx context.Context, e domain.Experience) (*domain.Experience, error) {
	if mock.CreateFunc == nil {
		panic("experienceRepoMock.CreateFunc: method is nil but experienceRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   domain.Experience
	}{
		Ctx: ctx,
		E:   e,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

// CreateCalls gets all the calls that were made to Create.
// Check the length with:
//
//	len(mockedExperienceRepo.CreateCalls())
func (mock *experienceRepoMock) CreateCalls() []struct {
	Ctx context.Context
	E   domain.Experience
} {
	var calls []struct {
		Ctx context.Context
		E   domain.Experience
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

// GetDetails calls GetDetailsFunc.
func (mock *experienceRepoMock) GetDetails(ctx context.Context, id uuid.UUID) (*domain.ExperienceDetails, error) {
	if mock.GetDetailsFunc == nil {
		panic("experienceRepoMock.GetDetailsFunc: method is nil but experienceRepo.GetDetails was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetDetails.Lock()
	mock.calls.GetDetails = append(mock.calls.GetDetails, callInfo)
	mock.lockGetDetails.Unlock()
	return mock.GetDetailsFunc(ctx, id)
}

// GetDetailsCalls gets all the calls that were made to GetDetails.
// Check the length with:
//
//	len(mockedExperienceRepo.GetDetailsCalls())
func (mock *experienceRepoMock) GetDetailsCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockGetDetails.RLock()
	calls = mock.calls.GetDetails
	mock.lockGetDetails.RUnlock()
	return calls
}

// LockActive calls LockActiveFunc.
func (mock *experienceRepoMock) LockActive(ctx context.Context, id uuid.UUID) error {
	if mock.LockActiveFunc == nil {
		panic("experienceRepoMock.LockActiveFunc: method is nil but experienceRepo.LockActive was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockLockActive.Lock()
	mock.calls.LockActive = append(mock.calls.LockActive, callInfo)
	mock.lockLockActive.Unlock()
	return mock.LockActiveFunc(ctx, id)
}

// LockActiveCalls gets all the calls that were made to LockActive.
// Check the length with:
//
//	len(mockedExperienceRepo.LockActiveCalls())
func (mock *experienceRepoMock) LockActiveCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockLockActive.RLock()
	calls = mock.calls.LockActive
	mock.lockLockActive.RUnlock()
	return calls
}

// RecomputeRating calls RecomputeRatingFunc.
func (mock *experienceRepoMock) RecomputeRating(ctx context.Context, id uuid.UUID) (*float64, error) {
	if mock.RecomputeRatingFunc == nil {
		panic("experienceRepoMock.RecomputeRatingFunc: method is nil but experienceRepo.RecomputeRating was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockRecomputeRating.Lock()
	mock.calls.RecomputeRating = append(mock.calls.RecomputeRating, callInfo)
	mock.lockRecomputeRating.Unlock()
	return mock.RecomputeRatingFunc(ctx, id)
}

// RecomputeRatingCalls gets all the calls that were made to RecomputeRating.
// Check the length with:
//
//	len(mockedExperienceRepo.RecomputeRatingCalls())
func (mock *experienceRepoMock) RecomputeRatingCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockRecomputeRating.RLock()
	calls = mock.calls.RecomputeRating
	mock.lockRecomputeRating.RUnlock()
	return calls
}

// Search calls SearchFunc.
func (mock *experienceRepoMock) Search(ctx context.Context, f domain.ExperienceFilter) ([]domain.Experience, error) {
	if mock.SearchFunc == nil {
		panic("experienceRepoMock.SearchFunc: method is nil but experienceRepo.Search was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.ExperienceFilter
	}{
		Ctx: ctx,
		F:   f,
	}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, f)
}

// SearchCalls gets all the calls that were made to Search.
// Check the length with:
//
//	len(mockedExperienceRepo.SearchCalls())
func (mock *experienceRepoMock) SearchCalls() []struct {
	Ctx context.Context
	F   domain.ExperienceFilter
} {
	var calls []struct {
		Ctx context.Context
		F   domain.ExperienceFilter
	}
	mock.lockSearch.RLock()
	calls = mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}
