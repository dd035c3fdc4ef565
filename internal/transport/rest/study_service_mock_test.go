package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/linguahub/srs-backend/internal/domain"
	"github.com/linguahub/srs-backend/internal/service/study"
)

var _ studyService = &studyServiceMock{}

type studyServiceMock struct {
	GetStudyQueueFunc func(ctx context.Context, input study.GetQueueInput) ([]domain.Card, error)
	ReviewCardFunc func(ctx context.Context, input study.ReviewCardInput) (domain.Card, error)
	CreateCardFunc func(ctx context.Context, input study.CreateCardInput) (domain.Card, error)
	GetCardFunc func(ctx context.Context, cardID uuid.UUID) (domain.Card, error)
	ListCardsFunc func(ctx context.Context, input study.ListCardsInput) ([]domain.Card, error)
	DeleteCardFunc func(ctx context.Context, input study.DeleteCardInput) error
	GetCardHistoryFunc func(ctx context.Context, input study.GetCardHistoryInput) ([]*domain.Review, int, error)
	GetCardStatsFunc func(ctx context.Context, input study.GetCardHistoryInput) (domain.CardStats, error)
	StartSessionFunc func(ctx context.Context) (*domain.ReviewSession, error)
	GetActiveSessionFunc func(ctx context.Context) (*domain.ReviewSession, error)
	FinishActiveSessionFunc func(ctx context.Context) (*domain.ReviewSession, error)
	FinishSessionFunc func(ctx context.Context, input study.FinishSessionInput) (*domain.ReviewSession, error)
	AbandonSessionFunc func(ctx context.Context) error
	ListSessionsFunc func(ctx context.Context, limit int, offset int) ([]*domain.ReviewSession, int, error)
	GetUserStatsFunc func(ctx context.Context, input study.GetStatsInput) (domain.UserStats, error)

	calls struct {
		GetStudyQueue []struct {
			Ctx context.Context
			Input study.GetQueueInput
		}
		ReviewCard []struct {
			Ctx context.Context
			Input study.ReviewCardInput
		}
		CreateCard []struct {
			Ctx context.Context
			Input study.CreateCardInput
		}
		GetCard []struct {
			Ctx context.Context
			CardID uuid.UUID
		}
		ListCards []struct {
			Ctx context.Context
			Input study.ListCardsInput
		}
		DeleteCard []struct {
			Ctx context.Context
			Input study.DeleteCardInput
		}
		GetCardHistory []struct {
			Ctx context.Context
			Input study.GetCardHistoryInput
		}
		GetCardStats []struct {
			Ctx context.Context
			Input study.GetCardHistoryInput
		}
		StartSession []struct {
			Ctx context.Context
		}
		GetActiveSession []struct {
			Ctx context.Context
		}
		FinishActiveSession []struct {
			Ctx context.Context
		}
		FinishSession []struct {
			Ctx context.Context
			Input study.FinishSessionInput
		}
		AbandonSession []struct {
			Ctx context.Context
		}
		ListSessions []struct {
			Ctx context.Context
			Limit int
			Offset int
		}
		GetUserStats []struct {
			Ctx context.Context
			Input study.GetStatsInput
		}
	}
	lockGetStudyQueue sync.RWMutex
	lockReviewCard sync.RWMutex
	lockCreateCard sync.RWMutex
	lockGetCard sync.RWMutex
	lockListCards sync.RWMutex
	lockDeleteCard sync.RWMutex
	lockGetCardHistory sync.RWMutex
	lockGetCardStats sync.RWMutex
	lockStartSession sync.RWMutex
	lockGetActiveSession sync.RWMutex
	lockFinishActiveSession sync.RWMutex
	lockFinishSession sync.RWMutex
	lockAbandonSession sync.RWMutex
	lockListSessions sync.RWMutex
	lockGetUserStats sync.RWMutex
}

func (mock *studyServiceMock) GetStudyQueue(ctx context.Context, input study.GetQueueInput) ([]domain.Card, error) {
	if mock.GetStudyQueueFunc == nil {
		panic("studyServiceMock.GetStudyQueueFunc: method is nil but studyService.GetStudyQueue was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Input study.GetQueueInput
	}{Ctx: ctx, Input: input}
	mock.lockGetStudyQueue.Lock()
	mock.calls.GetStudyQueue = append(mock.calls.GetStudyQueue, callInfo)
	mock.lockGetStudyQueue.Unlock()
	return mock.GetStudyQueueFunc(ctx, input)
}

func (mock *studyServiceMock) GetStudyQueueCalls() []struct {
	Ctx context.Context
	Input study.GetQueueInput
} {
	mock.lockGetStudyQueue.RLock()
	calls := mock.calls.GetStudyQueue
	mock.lockGetStudyQueue.RUnlock()
	return calls
}

func (mock *studyServiceMock) ReviewCard(ctx context.Context, input study.ReviewCardInput) (domain.Card, error) {
	if mock.ReviewCardFunc == nil {
		panic("studyServiceMock.ReviewCardFunc: method is nil but studyService.ReviewCard was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Input study.ReviewCardInput
	}{Ctx: ctx, Input: input}
	mock.lockReviewCard.Lock()
	mock.calls.ReviewCard = append(mock.calls.ReviewCard, callInfo)
	mock.lockReviewCard.Unlock()
	return mock.ReviewCardFunc(ctx, input)
}

func (mock *studyServiceMock) ReviewCardCalls() []struct {
	Ctx context.Context
	Input study.ReviewCardInput
} {
	mock.lockReviewCard.RLock()
	calls := mock.calls.ReviewCard
	mock.lockReviewCard.RUnlock()
	return calls
}

func (mock *studyServiceMock) CreateCard(ctx context.Context, input study.CreateCardInput) (domain.Card, error) {
	if mock.CreateCardFunc == nil {
		panic("studyServiceMock.CreateCardFunc: method is nil but studyService.CreateCard was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Input study.CreateCardInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateCard.Lock()
	mock.calls.CreateCard = append(mock.calls.CreateCard, callInfo)
	mock.lockCreateCard.Unlock()
	return mock.CreateCardFunc(ctx, input)
}

func (mock *studyServiceMock) CreateCardCalls() []struct {
	Ctx context.Context
	Input study.CreateCardInput
} {
	mock.lockCreateCard.RLock()
	calls := mock.calls.CreateCard
	mock.lockCreateCard.RUnlock()
	return calls
}

func (mock *studyServiceMock) GetCard(ctx context.Context, cardID uuid.UUID) (domain.Card, error) {
	if mock.GetCardFunc == nil {
		panic("studyServiceMock.GetCardFunc: method is nil but studyService.GetCard was just called")
	}
	callInfo := struct {
		Ctx context.Context
		CardID uuid.UUID
	}{Ctx: ctx, CardID: cardID}
	mock.lockGetCard.Lock()
	mock.calls.GetCard = append(mock.calls.GetCard, callInfo)
	mock.lockGetCard.Unlock()
	return mock.GetCardFunc(ctx, cardID)
}

func (mock *studyServiceMock) GetCardCalls() []struct {
	Ctx context.Context
	CardID uuid.UUID
} {
	mock.lockGetCard.RLock()
	calls := mock.calls.GetCard
	mock.lockGetCard.RUnlock()
	return calls
}

func (mock *studyServiceMock) ListCards(ctx context.Context, input study.ListCardsInput) ([]domain.Card, error) {
	if mock.ListCardsFunc == nil {
		panic("studyServiceMock.ListCardsFunc: method is nil but studyService.ListCards was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Input study.ListCardsInput
	}{Ctx: ctx, Input: input}
	mock.lockListCards.Lock()
	mock.calls.ListCards = append(mock.calls.ListCards, callInfo)
	mock.lockListCards.Unlock()
	return mock.ListCardsFunc(ctx, input)
}

func (mock *studyServiceMock) ListCardsCalls() []struct {
	Ctx context.Context
	Input study.ListCardsInput
} {
	mock.lockListCards.RLock()
	calls := mock.calls.ListCards
	mock.lockListCards.RUnlock()
	return calls
}

func (mock *studyServiceMock) DeleteCard(ctx context.Context, input study.DeleteCardInput) error {
	if mock.DeleteCardFunc == nil {
		panic("studyServiceMock.DeleteCardFunc: method is nil but studyService.DeleteCard was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Input study.DeleteCardInput
	}{Ctx: ctx, Input: input}
	mock.lockDeleteCard.Lock()
	mock.calls.DeleteCard = append(mock.calls.DeleteCard, callInfo)
	mock.lockDeleteCard.Unlock()
	return mock.DeleteCardFunc(ctx, input)
}

func (mock *studyServiceMock) DeleteCardCalls() []struct {
	Ctx context.Context
	Input study.DeleteCardInput
} {
	mock.lockDeleteCard.RLock()
	calls := mock.calls.DeleteCard
	mock.lockDeleteCard.RUnlock()
	return calls
}

func (mock *studyServiceMock) GetCardHistory(ctx context.Context, input study.GetCardHistoryInput) ([]*domain.Review, int, error) {
	if mock.GetCardHistoryFunc == nil {
		panic("studyServiceMock.GetCardHistoryFunc: method is nil but studyService.GetCardHistory was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Input study.GetCardHistoryInput
	}{Ctx: ctx, Input: input}
	mock.lockGetCardHistory.Lock()
	mock.calls.GetCardHistory = append(mock.calls.GetCardHistory, callInfo)
	mock.lockGetCardHistory.Unlock()
	return mock.GetCardHistoryFunc(ctx, input)
}

func (mock *studyServiceMock) GetCardHistoryCalls() []struct {
	Ctx context.Context
	Input study.GetCardHistoryInput
} {
	mock.lockGetCardHistory.RLock()
	calls := mock.calls.GetCardHistory
	mock.lockGetCardHistory.RUnlock()
	return calls
}

func (mock *studyServiceMock) GetCardStats(ctx context.Context, input study.GetCardHistoryInput) (domain.CardStats, error) {
	if mock.GetCardStatsFunc == nil {
		panic("studyServiceMock.GetCardStatsFunc: method is nil but studyService.GetCardStats was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Input study.GetCardHistoryInput
	}{Ctx: ctx, Input: input}
	mock.lockGetCardStats.Lock()
	mock.calls.GetCardStats = append(mock.calls.GetCardStats, callInfo)
	mock.lockGetCardStats.Unlock()
	return mock.GetCardStatsFunc(ctx, input)
}

func (mock *studyServiceMock) GetCardStatsCalls() []struct {
	Ctx context.Context
	Input study.GetCardHistoryInput
} {
	mock.lockGetCardStats.RLock()
	calls := mock.calls.GetCardStats
	mock.lockGetCardStats.RUnlock()
	return calls
}

func (mock *studyServiceMock) StartSession(ctx context.Context) (*domain.ReviewSession, error) {
	if mock.StartSessionFunc == nil {
		panic("studyServiceMock.StartSessionFunc: method is nil but studyService.StartSession was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockStartSession.Lock()
	mock.calls.StartSession = append(mock.calls.StartSession, callInfo)
	mock.lockStartSession.Unlock()
	return mock.StartSessionFunc(ctx)
}

func (mock *studyServiceMock) StartSessionCalls() []struct {
	Ctx context.Context
} {
	mock.lockStartSession.RLock()
	calls := mock.calls.StartSession
	mock.lockStartSession.RUnlock()
	return calls
}

func (mock *studyServiceMock) GetActiveSession(ctx context.Context) (*domain.ReviewSession, error) {
	if mock.GetActiveSessionFunc == nil {
		panic("studyServiceMock.GetActiveSessionFunc: method is nil but studyService.GetActiveSession was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGetActiveSession.Lock()
	mock.calls.GetActiveSession = append(mock.calls.GetActiveSession, callInfo)
	mock.lockGetActiveSession.Unlock()
	return mock.GetActiveSessionFunc(ctx)
}

func (mock *studyServiceMock) GetActiveSessionCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetActiveSession.RLock()
	calls := mock.calls.GetActiveSession
	mock.lockGetActiveSession.RUnlock()
	return calls
}

func (mock *studyServiceMock) FinishActiveSession(ctx context.Context) (*domain.ReviewSession, error) {
	if mock.FinishActiveSessionFunc == nil {
		panic("studyServiceMock.FinishActiveSessionFunc: method is nil but studyService.FinishActiveSession was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockFinishActiveSession.Lock()
	mock.calls.FinishActiveSession = append(mock.calls.FinishActiveSession, callInfo)
	mock.lockFinishActiveSession.Unlock()
	return mock.FinishActiveSessionFunc(ctx)
}

func (mock *studyServiceMock) FinishActiveSessionCalls() []struct {
	Ctx context.Context
} {
	mock.lockFinishActiveSession.RLock()
	calls := mock.calls.FinishActiveSession
	mock.lockFinishActiveSession.RUnlock()
	return calls
}

func (mock *studyServiceMock) FinishSession(ctx context.Context, input study.FinishSessionInput) (*domain.ReviewSession, error) {
	if mock.FinishSessionFunc == nil {
		panic("studyServiceMock.FinishSessionFunc: method is nil but studyService.FinishSession was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Input study.FinishSessionInput
	}{Ctx: ctx, Input: input}
	mock.lockFinishSession.Lock()
	mock.calls.FinishSession = append(mock.calls.FinishSession, callInfo)
	mock.lockFinishSession.Unlock()
	return mock.FinishSessionFunc(ctx, input)
}

func (mock *studyServiceMock) FinishSessionCalls() []struct {
	Ctx context.Context
	Input study.FinishSessionInput
} {
	mock.lockFinishSession.RLock()
	calls := mock.calls.FinishSession
	mock.lockFinishSession.RUnlock()
	return calls
}

func (mock *studyServiceMock) AbandonSession(ctx context.Context) error {
	if mock.AbandonSessionFunc == nil {
		panic("studyServiceMock.AbandonSessionFunc: method is nil but studyService.AbandonSession was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockAbandonSession.Lock()
	mock.calls.AbandonSession = append(mock.calls.AbandonSession, callInfo)
	mock.lockAbandonSession.Unlock()
	return mock.AbandonSessionFunc(ctx)
}

func (mock *studyServiceMock) AbandonSessionCalls() []struct {
	Ctx context.Context
} {
	mock.lockAbandonSession.RLock()
	calls := mock.calls.AbandonSession
	mock.lockAbandonSession.RUnlock()
	return calls
}

func (mock *studyServiceMock) ListSessions(ctx context.Context, limit int, offset int) ([]*domain.ReviewSession, int, error) {
	if mock.ListSessionsFunc == nil {
		panic("studyServiceMock.ListSessionsFunc: method is nil but studyService.ListSessions was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Limit int
		Offset int
	}{Ctx: ctx, Limit: limit, Offset: offset}
	mock.lockListSessions.Lock()
	mock.calls.ListSessions = append(mock.calls.ListSessions, callInfo)
	mock.lockListSessions.Unlock()
	return mock.ListSessionsFunc(ctx, limit, offset)
}

func (mock *studyServiceMock) ListSessionsCalls() []struct {
	Ctx context.Context
	Limit int
	Offset int
} {
	mock.lockListSessions.RLock()
	calls := mock.calls.ListSessions
	mock.lockListSessions.RUnlock()
	return calls
}

func (mock *studyServiceMock) GetUserStats(ctx context.Context, input study.GetStatsInput) (domain.UserStats, error) {
	if mock.GetUserStatsFunc == nil {
		panic("studyServiceMock.GetUserStatsFunc: method is nil but studyService.GetUserStats was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Input study.GetStatsInput
	}{Ctx: ctx, Input: input}
	mock.lockGetUserStats.Lock()
	mock.calls.GetUserStats = append(mock.calls.GetUserStats, callInfo)
	mock.lockGetUserStats.Unlock()
	return mock.GetUserStatsFunc(ctx, input)
}

func (mock *studyServiceMock) GetUserStatsCalls() []struct {
	Ctx context.Context
	Input study.GetStatsInput
} {
	mock.lockGetUserStats.RLock()
	calls := mock.calls.GetUserStats
	mock.lockGetUserStats.RUnlock()
	return calls
}
