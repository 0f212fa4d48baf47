package generator

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/linguacourse-backend/internal/domain"
)

var _ courseRepo = &courseRepoMock{}

type courseRepoMock struct {
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Course, error)
	AppendTopicFunc func(ctx context.Context, courseID uuid.UUID, category domain.TopicCategory, topicID uuid.UUID) (*domain.Course, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		AppendTopic []struct {
			Ctx      context.Context
			CourseID uuid.UUID
			Category domain.TopicCategory
			TopicID  uuid.UUID
		}
	}
	lockGetByID     sync.RWMutex
	lockAppendTopic sync.RWMutex
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
