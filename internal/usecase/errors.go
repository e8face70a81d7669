package usecase

import "errors"

// Actions a candidate can apply to a recommendation.
const (
	ActionInterested = "interested"
	ActionDismiss    = "dismiss"
	ActionView       = "view"
)

var (
	// ErrInvalidAction rejects actions outside {interested, dismiss, view}
	// before any state is touched.
	ErrInvalidAction = errors.New("invalid action: must be one of interested, dismiss, view")

	// ErrInvalidFeedbackType rejects feedback types outside the enumerated set.
	ErrInvalidFeedbackType = errors.New("invalid feedback type")
)
