package study

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/linguahub/srs-backend/internal/domain"
)

var _ cardRepo = &cardRepoMock{}

type cardRepoMock struct {
	GetByIDFunc func(ctx context.Context, userID uuid.UUID, cardID uuid.UUID) (domain.Card, error)
	GetByContentFunc func(ctx context.Context, userID uuid.UUID, cardType domain.CardType, contentID string) (domain.Card, error)
	CreateFunc func(ctx context.Context, card domain.Card) (domain.Card, error)
	ListFunc func(ctx context.Context, userID uuid.UUID, filter domain.CardFilter) ([]domain.Card, error)
	DeleteFunc func(ctx context.Context, userID uuid.UUID, cardID uuid.UUID) error
	GetDueCardsFunc func(ctx context.Context, userID uuid.UUID, now time.Time, limit int, cardType *domain.CardType) ([]domain.Card, error)
	GetNewCardsFunc func(ctx context.Context, userID uuid.UUID, limit int, cardType *domain.CardType) ([]domain.Card, error)
	UpdateSRSFunc func(ctx context.Context, userID uuid.UUID, cardID uuid.UUID, params domain.SRSUpdateParams) (domain.Card, error)
	CountByStatusFunc func(ctx context.Context, userID uuid.UUID) (domain.CardStatusCounts, error)
	CountDueBeforeFunc func(ctx context.Context, userID uuid.UUID, before time.Time) (int, error)
	CountDueBetweenFunc func(ctx context.Context, userID uuid.UUID, from time.Time, to time.Time) (int, error)
	AverageEaseFunc func(ctx context.Context, userID uuid.UUID) (float64, error)
	DueCountsByDayFunc func(ctx context.Context, userID uuid.UUID, from time.Time, to time.Time, tz string) ([]domain.DayDueCount, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			UserID uuid.UUID
			CardID uuid.UUID
		}
		GetByContent []struct {
			Ctx context.Context
			UserID uuid.UUID
			CardType domain.CardType
			ContentID string
		}
		Create []struct {
			Ctx context.Context
			Card domain.Card
		}
		List []struct {
			Ctx context.Context
			UserID uuid.UUID
			Filter domain.CardFilter
		}
		Delete []struct {
			Ctx context.Context
			UserID uuid.UUID
			CardID uuid.UUID
		}
		GetDueCards []struct {
			Ctx context.Context
			UserID uuid.UUID
			Now time.Time
			Limit int
			CardType *domain.CardType
		}
		GetNewCards []struct {
			Ctx context.Context
			UserID uuid.UUID
			Limit int
			CardType *domain.CardType
		}
		UpdateSRS []struct {
			Ctx context.Context
			UserID uuid.UUID
			CardID uuid.UUID
			Params domain.SRSUpdateParams
		}
		CountByStatus []struct {
			Ctx context.Context
			UserID uuid.UUID
		}
		CountDueBefore []struct {
			Ctx context.Context
			UserID uuid.UUID
			Before time.Time
		}
		CountDueBetween []struct {
			Ctx context.Context
			UserID uuid.UUID
			From time.Time
			To time.Time
		}
		AverageEase []struct {
			Ctx context.Context
			UserID uuid.UUID
		}
		DueCountsByDay []struct {
			Ctx context.Context
			UserID uuid.UUID
			From time.Time
			To time.Time
			Tz string
		}
	}
	lockGetByID sync.RWMutex
	lockGetByContent sync.RWMutex
	lockCreate sync.RWMutex
	lockList sync.RWMutex
	lockDelete sync.RWMutex
	lockGetDueCards sync.RWMutex
	lockGetNewCards sync.RWMutex
	lockUpdateSRS sync.RWMutex
	lockCountByStatus sync.RWMutex
	lockCountDueBefore sync.RWMutex
	lockCountDueBetween sync.RWMutex
	lockAverageEase sync.RWMutex
	lockDueCountsByDay sync.RWMutex
}

func (mock *cardRepoMock) GetByID(ctx context.Context, userID uuid.UUID, cardID uuid.UUID) (domain.Card, error) {
	if mock.GetByIDFunc == nil {
		panic("cardRepoMock.GetByIDFunc: method is nil but cardRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		UserID uuid.UUID
		CardID uuid.UUID
	}{Ctx: ctx, UserID: userID, CardID: cardID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, cardID)
}

func (mock *cardRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	UserID uuid.UUID
	CardID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *cardRepoMock) GetByContent(ctx context.Context, userID uuid.UUID, cardType domain.CardType, contentID string) (domain.Card, error) {
	if mock.GetByContentFunc == nil {
		panic("cardRepoMock.GetByContentFunc: method is nil but cardRepo.GetByContent was just called")
	}
	callInfo := struct {
		Ctx context.Context
		UserID uuid.UUID
		CardType domain.CardType
		ContentID string
	}{Ctx: ctx, UserID: userID, CardType: cardType, ContentID: contentID}
	mock.lockGetByContent.Lock()
	mock.calls.GetByContent = append(mock.calls.GetByContent, callInfo)
	mock.lockGetByContent.Unlock()
	return mock.GetByContentFunc(ctx, userID, cardType, contentID)
}

func (mock *cardRepoMock) GetByContentCalls() []struct {
	Ctx context.Context
	UserID uuid.UUID
	CardType domain.CardType
	ContentID string
} {
	mock.lockGetByContent.RLock()
	calls := mock.calls.GetByContent
	mock.lockGetByContent.RUnlock()
	return calls
}

func (mock *cardRepoMock) Create(ctx context.Context, card domain.Card) (domain.Card, error) {
	if mock.CreateFunc == nil {
		panic("cardRepoMock.CreateFunc: method is nil but cardRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Card domain.Card
	}{Ctx: ctx, Card: card}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, card)
}

func (mock *cardRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Card domain.Card
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *cardRepoMock) List(ctx context.Context, userID uuid.UUID, filter domain.CardFilter) ([]domain.Card, error) {
	if mock.ListFunc == nil {
		panic("cardRepoMock.ListFunc: method is nil but cardRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		UserID uuid.UUID
		Filter domain.CardFilter
	}{Ctx: ctx, UserID: userID, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, filter)
}

func (mock *cardRepoMock) ListCalls() []struct {
	Ctx context.Context
	UserID uuid.UUID
	Filter domain.CardFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *cardRepoMock) Delete(ctx context.Context, userID uuid.UUID, cardID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("cardRepoMock.DeleteFunc: method is nil but cardRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		UserID uuid.UUID
		CardID uuid.UUID
	}{Ctx: ctx, UserID: userID, CardID: cardID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, cardID)
}

func (mock *cardRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	UserID uuid.UUID
	CardID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *cardRepoMock) GetDueCards(ctx context.Context, userID uuid.UUID, now time.Time, limit int, cardType *domain.CardType) ([]domain.Card, error) {
	if mock.GetDueCardsFunc == nil {
		panic("cardRepoMock.GetDueCardsFunc: method is nil but cardRepo.GetDueCards was just called")
	}
	callInfo := struct {
		Ctx context.Context
		UserID uuid.UUID
		Now time.Time
		Limit int
		CardType *domain.CardType
	}{Ctx: ctx, UserID: userID, Now: now, Limit: limit, CardType: cardType}
	mock.lockGetDueCards.Lock()
	mock.calls.GetDueCards = append(mock.calls.GetDueCards, callInfo)
	mock.lockGetDueCards.Unlock()
	return mock.GetDueCardsFunc(ctx, userID, now, limit, cardType)
}

func (mock *cardRepoMock) GetDueCardsCalls() []struct {
	Ctx context.Context
	UserID uuid.UUID
	Now time.Time
	Limit int
	CardType *domain.CardType
} {
	mock.lockGetDueCards.RLock()
	calls := mock.calls.GetDueCards
	mock.lockGetDueCards.RUnlock()
	return calls
}

func (mock *cardRepoMock) GetNewCards(ctx context.Context, userID uuid.UUID, limit int, cardType *domain.CardType) ([]domain.Card, error) {
	if mock.GetNewCardsFunc == nil {
		panic("cardRepoMock.GetNewCardsFunc: method is nil but cardRepo.GetNewCards was just called")
	}
	callInfo := struct {
		Ctx context.Context
		UserID uuid.UUID
		Limit int
		CardType *domain.CardType
	}{Ctx: ctx, UserID: userID, Limit: limit, CardType: cardType}
	mock.lockGetNewCards.Lock()
	mock.calls.GetNewCards = append(mock.calls.GetNewCards, callInfo)
	mock.lockGetNewCards.Unlock()
	return mock.GetNewCardsFunc(ctx, userID, limit, cardType)
}

func (mock *cardRepoMock) GetNewCardsCalls() []struct {
	Ctx context.Context
	UserID uuid.UUID
	Limit int
	CardType *domain.CardType
} {
	mock.lockGetNewCards.RLock()
	calls := mock.calls.GetNewCards
	mock.lockGetNewCards.RUnlock()
	return calls
}

func (mock *cardRepoMock) UpdateSRS(ctx context.Context, userID uuid.UUID, cardID uuid.UUID, params domain.SRSUpdateParams) (domain.Card, error) {
	if mock.UpdateSRSFunc == nil {
		panic("cardRepoMock.UpdateSRSFunc: method is nil but cardRepo.UpdateSRS was just called")
	}
	callInfo := struct {
		Ctx context.Context
		UserID uuid.UUID
		CardID uuid.UUID
		Params domain.SRSUpdateParams
	}{Ctx: ctx, UserID: userID, CardID: cardID, Params: params}
	mock.lockUpdateSRS.Lock()
	mock.calls.UpdateSRS = append(mock.calls.UpdateSRS, callInfo)
	mock.lockUpdateSRS.Unlock()
	return mock.UpdateSRSFunc(ctx, userID, cardID, params)
}

func (mock *cardRepoMock) UpdateSRSCalls() []struct {
	Ctx context.Context
	UserID uuid.UUID
	CardID uuid.UUID
	Params domain.SRSUpdateParams
} {
	mock.lockUpdateSRS.RLock()
	calls := mock.calls.UpdateSRS
	mock.lockUpdateSRS.RUnlock()
	return calls
}

func (mock *cardRepoMock) CountByStatus(ctx context.Context, userID uuid.UUID) (domain.CardStatusCounts, error) {
	if mock.CountByStatusFunc == nil {
		panic("cardRepoMock.CountByStatusFunc: method is nil but cardRepo.CountByStatus was just called")
	}
	callInfo := struct {
		Ctx context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockCountByStatus.Lock()
	mock.calls.CountByStatus = append(mock.calls.CountByStatus, callInfo)
	mock.lockCountByStatus.Unlock()
	return mock.CountByStatusFunc(ctx, userID)
}

func (mock *cardRepoMock) CountByStatusCalls() []struct {
	Ctx context.Context
	UserID uuid.UUID
} {
	mock.lockCountByStatus.RLock()
	calls := mock.calls.CountByStatus
	mock.lockCountByStatus.RUnlock()
	return calls
}

func (mock *cardRepoMock) CountDueBefore(ctx context.Context, userID uuid.UUID, before time.Time) (int, error) {
	if mock.CountDueBeforeFunc == nil {
		panic("cardRepoMock.CountDueBeforeFunc: method is nil but cardRepo.CountDueBefore was just called")
	}
	callInfo := struct {
		Ctx context.Context
		UserID uuid.UUID
		Before time.Time
	}{Ctx: ctx, UserID: userID, Before: before}
	mock.lockCountDueBefore.Lock()
	mock.calls.CountDueBefore = append(mock.calls.CountDueBefore, callInfo)
	mock.lockCountDueBefore.Unlock()
	return mock.CountDueBeforeFunc(ctx, userID, before)
}

func (mock *cardRepoMock) CountDueBeforeCalls() []struct {
	Ctx context.Context
	UserID uuid.UUID
	Before time.Time
} {
	mock.lockCountDueBefore.RLock()
	calls := mock.calls.CountDueBefore
	mock.lockCountDueBefore.RUnlock()
	return calls
}

func (mock *cardRepoMock) CountDueBetween(ctx context.Context, userID uuid.UUID, from time.Time, to time.Time) (int, error) {
	if mock.CountDueBetweenFunc == nil {
		panic("cardRepoMock.CountDueBetweenFunc: method is nil but cardRepo.CountDueBetween was just called")
	}
	callInfo := struct {
		Ctx context.Context
		UserID uuid.UUID
		From time.Time
		To time.Time
	}{Ctx: ctx, UserID: userID, From: from, To: to}
	mock.lockCountDueBetween.Lock()
	mock.calls.CountDueBetween = append(mock.calls.CountDueBetween, callInfo)
	mock.lockCountDueBetween.Unlock()
	return mock.CountDueBetweenFunc(ctx, userID, from, to)
}

func (mock *cardRepoMock) CountDueBetweenCalls() []struct {
	Ctx context.Context
	UserID uuid.UUID
	From time.Time
	To time.Time
} {
	mock.lockCountDueBetween.RLock()
	calls := mock.calls.CountDueBetween
	mock.lockCountDueBetween.RUnlock()
	return calls
}

func (mock *cardRepoMock) AverageEase(ctx context.Context, userID uuid.UUID) (float64, error) {
	if mock.AverageEaseFunc == nil {
		panic("cardRepoMock.AverageEaseFunc: method is nil but cardRepo.AverageEase was just called")
	}
	callInfo := struct {
		Ctx context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockAverageEase.Lock()
	mock.calls.AverageEase = append(mock.calls.AverageEase, callInfo)
	mock.lockAverageEase.Unlock()
	return mock.AverageEaseFunc(ctx, userID)
}

func (mock *cardRepoMock) AverageEaseCalls() []struct {
	Ctx context.Context
	UserID uuid.UUID
} {
	mock.lockAverageEase.RLock()
	calls := mock.calls.AverageEase
	mock.lockAverageEase.RUnlock()
	return calls
}

func (mock *cardRepoMock) DueCountsByDay(ctx context.Context, userID uuid.UUID, from time.Time, to time.Time, tz string) ([]domain.DayDueCount, error) {
	if mock.DueCountsByDayFunc == nil {
		panic("cardRepoMock.DueCountsByDayFunc: method is nil but cardRepo.DueCountsByDay was just called")
	}
	callInfo := struct {
		Ctx context.Context
		UserID uuid.UUID
		From time.Time
		To time.Time
		Tz string
	}{Ctx: ctx, UserID: userID, From: from, To: to, Tz: tz}
	mock.lockDueCountsByDay.Lock()
	mock.calls.DueCountsByDay = append(mock.calls.DueCountsByDay, callInfo)
	mock.lockDueCountsByDay.Unlock()
	return mock.DueCountsByDayFunc(ctx, userID, from, to, tz)
}

func (mock *cardRepoMock) DueCountsByDayCalls() []struct {
	Ctx context.Context
	UserID uuid.UUID
	From time.Time
	To time.Time
	Tz string
} {
	mock.lockDueCountsByDay.RLock()
	calls := mock.calls.DueCountsByDay
	mock.lockDueCountsByDay.RUnlock()
	return calls
}

var _ reviewRepo = &reviewRepoMock{}

type reviewRepoMock struct {
	CreateFunc func(ctx context.Context, review *domain.Review) (*domain.Review, error)
	GetByCardIDFunc func(ctx context.Context, cardID uuid.UUID, limit int, offset int) ([]*domain.Review, int, error)
	GetRecentFunc func(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.Review, error)
	CountSinceFunc func(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
	TotalResponseTimeFunc func(ctx context.Context, userID uuid.UUID) (int64, error)
	DayCountsFunc func(ctx context.Context, userID uuid.UUID, tz string) ([]domain.DayReviewCount, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Review *domain.Review
		}
		GetByCardID []struct {
			Ctx context.Context
			CardID uuid.UUID
			Limit int
			Offset int
		}
		GetRecent []struct {
			Ctx context.Context
			UserID uuid.UUID
			Limit int
		}
		CountSince []struct {
			Ctx context.Context
			UserID uuid.UUID
			Since time.Time
		}
		TotalResponseTime []struct {
			Ctx context.Context
			UserID uuid.UUID
		}
		DayCounts []struct {
			Ctx context.Context
			UserID uuid.UUID
			Tz string
		}
	}
	lockCreate sync.RWMutex
	lockGetByCardID sync.RWMutex
	lockGetRecent sync.RWMutex
	lockCountSince sync.RWMutex
	lockTotalResponseTime sync.RWMutex
	lockDayCounts sync.RWMutex
}

func (mock *reviewRepoMock) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	if mock.CreateFunc == nil {
		panic("reviewRepoMock.CreateFunc: method is nil but reviewRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Review *domain.Review
	}{Ctx: ctx, Review: review}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, review)
}

func (mock *reviewRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Review *domain.Review
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *reviewRepoMock) GetByCardID(ctx context.Context, cardID uuid.UUID, limit int, offset int) ([]*domain.Review, int, error) {
	if mock.GetByCardIDFunc == nil {
		panic("reviewRepoMock.GetByCardIDFunc: method is nil but reviewRepo.GetByCardID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		CardID uuid.UUID
		Limit int
		Offset int
	}{Ctx: ctx, CardID: cardID, Limit: limit, Offset: offset}
	mock.lockGetByCardID.Lock()
	mock.calls.GetByCardID = append(mock.calls.GetByCardID, callInfo)
	mock.lockGetByCardID.Unlock()
	return mock.GetByCardIDFunc(ctx, cardID, limit, offset)
}

func (mock *reviewRepoMock) GetByCardIDCalls() []struct {
	Ctx context.Context
	CardID uuid.UUID
	Limit int
	Offset int
} {
	mock.lockGetByCardID.RLock()
	calls := mock.calls.GetByCardID
	mock.lockGetByCardID.RUnlock()
	return calls
}

func (mock *reviewRepoMock) GetRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.Review, error) {
	if mock.GetRecentFunc == nil {
		panic("reviewRepoMock.GetRecentFunc: method is nil but reviewRepo.GetRecent was just called")
	}
	callInfo := struct {
		Ctx context.Context
		UserID uuid.UUID
		Limit int
	}{Ctx: ctx, UserID: userID, Limit: limit}
	mock.lockGetRecent.Lock()
	mock.calls.GetRecent = append(mock.calls.GetRecent, callInfo)
	mock.lockGetRecent.Unlock()
	return mock.GetRecentFunc(ctx, userID, limit)
}

func (mock *reviewRepoMock) GetRecentCalls() []struct {
	Ctx context.Context
	UserID uuid.UUID
	Limit int
} {
	mock.lockGetRecent.RLock()
	calls := mock.calls.GetRecent
	mock.lockGetRecent.RUnlock()
	return calls
}

func (mock *reviewRepoMock) CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	if mock.CountSinceFunc == nil {
		panic("reviewRepoMock.CountSinceFunc: method is nil but reviewRepo.CountSince was just called")
	}
	callInfo := struct {
		Ctx context.Context
		UserID uuid.UUID
		Since time.Time
	}{Ctx: ctx, UserID: userID, Since: since}
	mock.lockCountSince.Lock()
	mock.calls.CountSince = append(mock.calls.CountSince, callInfo)
	mock.lockCountSince.Unlock()
	return mock.CountSinceFunc(ctx, userID, since)
}

func (mock *reviewRepoMock) CountSinceCalls() []struct {
	Ctx context.Context
	UserID uuid.UUID
	Since time.Time
} {
	mock.lockCountSince.RLock()
	calls := mock.calls.CountSince
	mock.lockCountSince.RUnlock()
	return calls
}

func (mock *reviewRepoMock) TotalResponseTime(ctx context.Context, userID uuid.UUID) (int64, error) {
	if mock.TotalResponseTimeFunc == nil {
		panic("reviewRepoMock.TotalResponseTimeFunc: method is nil but reviewRepo.TotalResponseTime was just called")
	}
	callInfo := struct {
		Ctx context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockTotalResponseTime.Lock()
	mock.calls.TotalResponseTime = append(mock.calls.TotalResponseTime, callInfo)
	mock.lockTotalResponseTime.Unlock()
	return mock.TotalResponseTimeFunc(ctx, userID)
}

func (mock *reviewRepoMock) TotalResponseTimeCalls() []struct {
	Ctx context.Context
	UserID uuid.UUID
} {
	mock.lockTotalResponseTime.RLock()
	calls := mock.calls.TotalResponseTime
	mock.lockTotalResponseTime.RUnlock()
	return calls
}

func (mock *reviewRepoMock) DayCounts(ctx context.Context, userID uuid.UUID, tz string) ([]domain.DayReviewCount, error) {
	if mock.DayCountsFunc == nil {
		panic("reviewRepoMock.DayCountsFunc: method is nil but reviewRepo.DayCounts was just called")
	}
	callInfo := struct {
		Ctx context.Context
		UserID uuid.UUID
		Tz string
	}{Ctx: ctx, UserID: userID, Tz: tz}
	mock.lockDayCounts.Lock()
	mock.calls.DayCounts = append(mock.calls.DayCounts, callInfo)
	mock.lockDayCounts.Unlock()
	return mock.DayCountsFunc(ctx, userID, tz)
}

func (mock *reviewRepoMock) DayCountsCalls() []struct {
	Ctx context.Context
	UserID uuid.UUID
	Tz string
} {
	mock.lockDayCounts.RLock()
	calls := mock.calls.DayCounts
	mock.lockDayCounts.RUnlock()
	return calls
}

var _ sessionRepo = &sessionRepoMock{}

type sessionRepoMock struct {
	CreateFunc func(ctx context.Context, session *domain.ReviewSession) (*domain.ReviewSession, error)
	GetByIDFunc func(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID) (*domain.ReviewSession, error)
	GetActiveFunc func(ctx context.Context, userID uuid.UUID) (*domain.ReviewSession, error)
	RecordReviewFunc func(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID, quality domain.Quality, responseTimeMs int) error
	FinishFunc func(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID, result domain.SessionSummary) (*domain.ReviewSession, error)
	AbandonFunc func(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID) error
	AbandonStaleFunc func(ctx context.Context, cutoff time.Time) (int, error)
	ListFunc func(ctx context.Context, userID uuid.UUID, limit int, offset int) ([]*domain.ReviewSession, int, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Session *domain.ReviewSession
		}
		GetByID []struct {
			Ctx context.Context
			UserID uuid.UUID
			SessionID uuid.UUID
		}
		GetActive []struct {
			Ctx context.Context
			UserID uuid.UUID
		}
		RecordReview []struct {
			Ctx context.Context
			UserID uuid.UUID
			SessionID uuid.UUID
			Quality domain.Quality
			ResponseTimeMs int
		}
		Finish []struct {
			Ctx context.Context
			UserID uuid.UUID
			SessionID uuid.UUID
			Result domain.SessionSummary
		}
		Abandon []struct {
			Ctx context.Context
			UserID uuid.UUID
			SessionID uuid.UUID
		}
		AbandonStale []struct {
			Ctx context.Context
			Cutoff time.Time
		}
		List []struct {
			Ctx context.Context
			UserID uuid.UUID
			Limit int
			Offset int
		}
	}
	lockCreate sync.RWMutex
	lockGetByID sync.RWMutex
	lockGetActive sync.RWMutex
	lockRecordReview sync.RWMutex
	lockFinish sync.RWMutex
	lockAbandon sync.RWMutex
	lockAbandonStale sync.RWMutex
	lockList sync.RWMutex
}

func (mock *sessionRepoMock) Create(ctx context.Context, session *domain.ReviewSession) (*domain.ReviewSession, error) {
	if mock.CreateFunc == nil {
		panic("sessionRepoMock.CreateFunc: method is nil but sessionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Session *domain.ReviewSession
	}{Ctx: ctx, Session: session}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, session)
}

func (mock *sessionRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Session *domain.ReviewSession
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *sessionRepoMock) GetByID(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID) (*domain.ReviewSession, error) {
	if mock.GetByIDFunc == nil {
		panic("sessionRepoMock.GetByIDFunc: method is nil but sessionRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		UserID uuid.UUID
		SessionID uuid.UUID
	}{Ctx: ctx, UserID: userID, SessionID: sessionID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, sessionID)
}

func (mock *sessionRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	UserID uuid.UUID
	SessionID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *sessionRepoMock) GetActive(ctx context.Context, userID uuid.UUID) (*domain.ReviewSession, error) {
	if mock.GetActiveFunc == nil {
		panic("sessionRepoMock.GetActiveFunc: method is nil but sessionRepo.GetActive was just called")
	}
	callInfo := struct {
		Ctx context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockGetActive.Lock()
	mock.calls.GetActive = append(mock.calls.GetActive, callInfo)
	mock.lockGetActive.Unlock()
	return mock.GetActiveFunc(ctx, userID)
}

func (mock *sessionRepoMock) GetActiveCalls() []struct {
	Ctx context.Context
	UserID uuid.UUID
} {
	mock.lockGetActive.RLock()
	calls := mock.calls.GetActive
	mock.lockGetActive.RUnlock()
	return calls
}

func (mock *sessionRepoMock) RecordReview(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID, quality domain.Quality, responseTimeMs int) error {
	if mock.RecordReviewFunc == nil {
		panic("sessionRepoMock.RecordReviewFunc: method is nil but sessionRepo.RecordReview was just called")
	}
	callInfo := struct {
		Ctx context.Context
		UserID uuid.UUID
		SessionID uuid.UUID
		Quality domain.Quality
		ResponseTimeMs int
	}{Ctx: ctx, UserID: userID, SessionID: sessionID, Quality: quality, ResponseTimeMs: responseTimeMs}
	mock.lockRecordReview.Lock()
	mock.calls.RecordReview = append(mock.calls.RecordReview, callInfo)
	mock.lockRecordReview.Unlock()
	return mock.RecordReviewFunc(ctx, userID, sessionID, quality, responseTimeMs)
}

func (mock *sessionRepoMock) RecordReviewCalls() []struct {
	Ctx context.Context
	UserID uuid.UUID
	SessionID uuid.UUID
	Quality domain.Quality
	ResponseTimeMs int
} {
	mock.lockRecordReview.RLock()
	calls := mock.calls.RecordReview
	mock.lockRecordReview.RUnlock()
	return calls
}

func (mock *sessionRepoMock) Finish(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID, result domain.SessionSummary) (*domain.ReviewSession, error) {
	if mock.FinishFunc == nil {
		panic("sessionRepoMock.FinishFunc: method is nil but sessionRepo.Finish was just called")
	}
	callInfo := struct {
		Ctx context.Context
		UserID uuid.UUID
		SessionID uuid.UUID
		Result domain.SessionSummary
	}{Ctx: ctx, UserID: userID, SessionID: sessionID, Result: result}
	mock.lockFinish.Lock()
	mock.calls.Finish = append(mock.calls.Finish, callInfo)
	mock.lockFinish.Unlock()
	return mock.FinishFunc(ctx, userID, sessionID, result)
}

func (mock *sessionRepoMock) FinishCalls() []struct {
	Ctx context.Context
	UserID uuid.UUID
	SessionID uuid.UUID
	Result domain.SessionSummary
} {
	mock.lockFinish.RLock()
	calls := mock.calls.Finish
	mock.lockFinish.RUnlock()
	return calls
}

func (mock *sessionRepoMock) Abandon(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID) error {
	if mock.AbandonFunc == nil {
		panic("sessionRepoMock.AbandonFunc: method is nil but sessionRepo.Abandon was just called")
	}
	callInfo := struct {
		Ctx context.Context
		UserID uuid.UUID
		SessionID uuid.UUID
	}{Ctx: ctx, UserID: userID, SessionID: sessionID}
	mock.lockAbandon.Lock()
	mock.calls.Abandon = append(mock.calls.Abandon, callInfo)
	mock.lockAbandon.Unlock()
	return mock.AbandonFunc(ctx, userID, sessionID)
}

func (mock *sessionRepoMock) AbandonCalls() []struct {
	Ctx context.Context
	UserID uuid.UUID
	SessionID uuid.UUID
} {
	mock.lockAbandon.RLock()
	calls := mock.calls.Abandon
	mock.lockAbandon.RUnlock()
	return calls
}

func (mock *sessionRepoMock) AbandonStale(ctx context.Context, cutoff time.Time) (int, error) {
	if mock.AbandonStaleFunc == nil {
		panic("sessionRepoMock.AbandonStaleFunc: method is nil but sessionRepo.AbandonStale was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Cutoff time.Time
	}{Ctx: ctx, Cutoff: cutoff}
	mock.lockAbandonStale.Lock()
	mock.calls.AbandonStale = append(mock.calls.AbandonStale, callInfo)
	mock.lockAbandonStale.Unlock()
	return mock.AbandonStaleFunc(ctx, cutoff)
}

func (mock *sessionRepoMock) AbandonStaleCalls() []struct {
	Ctx context.Context
	Cutoff time.Time
} {
	mock.lockAbandonStale.RLock()
	calls := mock.calls.AbandonStale
	mock.lockAbandonStale.RUnlock()
	return calls
}

func (mock *sessionRepoMock) List(ctx context.Context, userID uuid.UUID, limit int, offset int) ([]*domain.ReviewSession, int, error) {
	if mock.ListFunc == nil {
		panic("sessionRepoMock.ListFunc: method is nil but sessionRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		UserID uuid.UUID
		Limit int
		Offset int
	}{Ctx: ctx, UserID: userID, Limit: limit, Offset: offset}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, limit, offset)
}

func (mock *sessionRepoMock) ListCalls() []struct {
	Ctx context.Context
	UserID uuid.UUID
	Limit int
	Offset int
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
