package content

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/linguacourse-backend/internal/domain"
)

var _ topicRepo = &topicRepoMock{}

type topicRepoMock struct {
	CreateFunc       func(ctx context.Context, topic *domain.Topic) (*domain.Topic, error)
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Topic, error)
	GetByIDsFunc     func(ctx context.Context, ids []uuid.UUID) ([]*domain.Topic, error)
	AppendItemsFunc  func(ctx context.Context, id uuid.UUID, items []domain.Item) (*domain.Topic, error)
	ReplaceItemsFunc func(ctx context.Context, id uuid.UUID, items []domain.Item) (*domain.Topic, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Topic *domain.Topic
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByIDs []struct {
			Ctx context.Context
			IDs []uuid.UUID
		}
		AppendItems []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Items []domain.Item
		}
		ReplaceItems []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Items []domain.Item
		}
	}
	lockCreate       sync.RWMutex
	lockGetByID      sync.RWMutex
	lockGetByIDs     sync.RWMutex
	lockAppendItems  sync.RWMutex
	lockReplaceItems sync.RWMutex
}

func (mock *topicRepoMock) Create(ctx context.Context, topic *domain.Topic) (*domain.Topic, error) {
	if mock.CreateFunc == nil {
		panic("topicRepoMock.CreateFunc: method is nil but topicRepo.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Topic *domain.Topic
	}{Ctx: ctx, Topic: topic}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, topic)
}

func (mock *topicRepoMock) CreateCalls() []struct {
	Ctx   context.Context
	Topic *domain.Topic
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *topicRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error) {
	if mock.GetByIDFunc == nil {
		panic("topicRepoMock.GetByIDFunc: method is nil but topicRepo.GetByID was just called")
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

func (mock *topicRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *topicRepoMock) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Topic, error) {
	if mock.GetByIDsFunc == nil {
		panic("topicRepoMock.GetByIDsFunc: method is nil but topicRepo.GetByIDs was just called")
	}
	callInfo := struct {
		Ctx context.Context
		IDs []uuid.UUID
	}{Ctx: ctx, IDs: ids}
	mock.lockGetByIDs.Lock()
	mock.calls.GetByIDs = append(mock.calls.GetByIDs, callInfo)
	mock.lockGetByIDs.Unlock()
	return mock.GetByIDsFunc(ctx, ids)
}

func (mock *topicRepoMock) GetByIDsCalls() []struct {
	Ctx context.Context
	IDs []uuid.UUID
} {
	mock.lockGetByIDs.RLock()
	calls := mock.calls.GetByIDs
	mock.lockGetByIDs.RUnlock()
	return calls
}

func (mock *topicRepoMock) AppendItems(ctx context.Context, id uuid.UUID, items []domain.Item) (*domain.Topic, error) {
	if mock.AppendItemsFunc == nil {
		panic("topicRepoMock.AppendItemsFunc: method is nil but topicRepo.AppendItems was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Items []domain.Item
	}{Ctx: ctx, ID: id, Items: items}
	mock.lockAppendItems.Lock()
	mock.calls.AppendItems = append(mock.calls.AppendItems, callInfo)
	mock.lockAppendItems.Unlock()
	return mock.AppendItemsFunc(ctx, id, items)
}

func (mock *topicRepoMock) AppendItemsCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Items []domain.Item
} {
	mock.lockAppendItems.RLock()
	calls := mock.calls.AppendItems
	mock.lockAppendItems.RUnlock()
	return calls
}

func (mock *topicRepoMock) ReplaceItems(ctx context.Context, id uuid.UUID, items []domain.Item) (*domain.Topic, error) {
	if mock.ReplaceItemsFunc == nil {
		panic("topicRepoMock.ReplaceItemsFunc: method is nil but topicRepo.ReplaceItems was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Items []domain.Item
	}{Ctx: ctx, ID: id, Items: items}
	mock.lockReplaceItems.Lock()
	mock.calls.ReplaceItems = append(mock.calls.ReplaceItems, callInfo)
	mock.lockReplaceItems.Unlock()
	return mock.ReplaceItemsFunc(ctx, id, items)
}

func (mock *topicRepoMock) ReplaceItemsCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Items []domain.Item
} {
	mock.lockReplaceItems.RLock()
	calls := mock.calls.ReplaceItems
	mock.lockReplaceItems.RUnlock()
	return calls
}
