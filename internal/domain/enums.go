package domain

// CardType categorizes the learning content a card is built from.
// Scheduling treats all types identically; the type only scopes content IDs
// and filters queues.
type CardType string

const (
	CardTypeVocabulary CardType = "VOCABULARY"
	CardTypeLesson     CardType = "LESSON"
	CardTypeCharacter  CardType = "CHARACTER"
	CardTypePhrase     CardType = "PHRASE"
)

func (t CardType) String() string { return string(t) }

func (t CardType) IsValid() bool {
	switch t {
	case CardTypeVocabulary, CardTypeLesson, CardTypeCharacter, CardTypePhrase:
		return true
	}
	return false
}

// LearningStatus is the lifecycle stage of a card.
// Transitions happen only through review processing: NEW/LEARNING -> REVIEW on
// sustained success, REVIEW -> MASTERED past the mastered thresholds, and any
// failure drops the card back to LEARNING.
type LearningStatus string

const (
	LearningStatusNew      LearningStatus = "NEW"
	LearningStatusLearning LearningStatus = "LEARNING"
	LearningStatusReview   LearningStatus = "REVIEW"
	LearningStatusMastered LearningStatus = "MASTERED"
)

func (s LearningStatus) String() string { return string(s) }

func (s LearningStatus) IsValid() bool {
	switch s {
	case LearningStatusNew, LearningStatusLearning, LearningStatusReview, LearningStatusMastered:
		return true
	}
	return false
}

// Quality is the learner's 0-5 self-rating of recall for one review.
// Ratings 0-2 count as failures, 3-5 as successes.
type Quality int

const (
	QualityMin Quality = 0
	QualityMax Quality = 5

	// SuccessThreshold is the lowest quality counted as a successful recall.
	SuccessThreshold Quality = 3
)

func (q Quality) IsValid() bool { return q >= QualityMin && q <= QualityMax }

// IsSuccess reports whether the rating counts as a successful recall.
func (q Quality) IsSuccess() bool { return q >= SuccessThreshold }

// SessionStatus represents the state of a review session.
type SessionStatus string

const (
	SessionStatusActive    SessionStatus = "ACTIVE"
	SessionStatusFinished  SessionStatus = "FINISHED"
	SessionStatusAbandoned SessionStatus = "ABANDONED"
)

func (s SessionStatus) String() string { return string(s) }

func (s SessionStatus) IsValid() bool {
	switch s {
	case SessionStatusActive, SessionStatusFinished, SessionStatusAbandoned:
		return true
	}
	return false
}
