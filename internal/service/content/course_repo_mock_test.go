package content

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/linguacourse-backend/internal/domain"
)

var _ courseRepo = &courseRepoMock{}

type courseRepoMock struct {
	CreateFunc      func(ctx context.Context, course *domain.Course) (*domain.Course, error)
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Course, error)
	ListByOwnerFunc func(ctx context.Context, ownerID uuid.UUID) ([]*domain.Course, error)
	AppendTopicFunc func(ctx context.Context, courseID uuid.UUID, category domain.TopicCategory, topicID uuid.UUID) (*domain.Course, error)

	calls struct {
		Create []struct {
			Ctx    context.Context
			Course *domain.Course
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListByOwner []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
		AppendTopic []struct {
			Ctx      context.Context
			CourseID uuid.UUID
			Category domain.TopicCategory
			TopicID  uuid.UUID
		}
	}
	lockCreate      sync.RWMutex
	lockGetByID     sync.RWMutex
	lockListByOwner sync.RWMutex
	lockAppendTopic sync.RWMutex
}

func (mock *courseRepoMock) Create(ctx context.Context, course *domain.Course) (*domain.Course, error) {
	if mock.CreateFunc == nil {
		panic("courseRepoMock.CreateFunc: method is nil but courseRepo.Create was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Course *domain.Course
	}{Ctx: ctx, Course: course}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, course)
}

func (mock *courseRepoMock) CreateCalls() []struct {
	Ctx    context.Context
	Course *domain.Course
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *courseRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Course, error) {
	if mock.GetByIDFunc == nil {
		panic("courseRepoMock.GetByIDFunc: method is nil but courseRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *courseRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *courseRepoMock) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Course, error) {
	if mock.ListByOwnerFunc == nil {
		panic("courseRepoMock.ListByOwnerFunc: method is nil but courseRepo.ListByOwner was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID}
	mock.lockListByOwner.Lock()
	mock.calls.ListByOwner = append(mock.calls.ListByOwner, callInfo)
	mock.lockListByOwner.Unlock()
	return mock.ListByOwnerFunc(ctx, ownerID)
}

func (mock *courseRepoMock) ListByOwnerCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
} {
	mock.lockListByOwner.RLock()
	calls := mock.calls.ListByOwner
	mock.lockListByOwner.RUnlock()
	return calls
}

func (mock *courseRepoMock) AppendTopic(ctx context.Context, courseID uuid.UUID, category domain.TopicCategory, topicID uuid.UUID) (*domain.Course, error) {
	if mock.AppendTopicFunc == nil {
		panic("courseRepoMock.AppendTopicFunc: method is nil but courseRepo.AppendTopic was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		CourseID uuid.UUID
		Category domain.TopicCategory
		TopicID  uuid.UUID
	}{Ctx: ctx, CourseID: courseID, Category: category, TopicID: topicID}
	mock.lockAppendTopic.Lock()
	mock.calls.AppendTopic = append(mock.calls.AppendTopic, callInfo)
	mock.lockAppendTopic.Unlock()
	return mock.AppendTopicFunc(ctx, courseID, category, topicID)
}

func (mock *courseRepoMock) AppendTopicCalls() []struct {
	Ctx      context.Context
	CourseID uuid.UUID
	Category domain.TopicCategory
	TopicID  uuid.UUID
} {
	mock.lockAppendTopic.RLock()
	calls := mock.calls.AppendTopic
	mock.lockAppendTopic.RUnlock()
	return calls
}
