package program

import (
	"github.com/pkg/errors"
)

// Top-level error taxonomy. Every handler failure wraps exactly one of
// these sentinels, with a cause-level error carrying the detail.
var (
	ErrAlreadyExists = errors.New("account already exists")
	ErrNotFound      = errors.New("account not found")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrInvalidState  = errors.New("invalid state")
	ErrCapExceeded   = errors.New("cap exceeded")
	ErrInconsistent  = errors.New("inconsistent state")
)

var (
	ErrPlatformAlreadyInitialized = errors.Wrap(ErrAlreadyExists, "platform already initialized")
	ErrCourseAlreadyExists        = errors.Wrap(ErrAlreadyExists, "course already exists")
	ErrLearnerAlreadyExists       = errors.Wrap(ErrAlreadyExists, "learner profile already exists")
	ErrAlreadyEnrolled            = errors.Wrap(ErrAlreadyExists, "already enrolled")
	ErrCredentialAlreadyIssued    = errors.Wrap(ErrAlreadyExists, "credential already issued")

	ErrPlatformNotInitialized = errors.Wrap(ErrNotFound, "platform not initialized")
	ErrCourseNotFound         = errors.Wrap(ErrNotFound, "course not found")
	ErrLearnerNotFound        = errors.Wrap(ErrNotFound, "learner profile not found")
	ErrEnrollmentNotFound     = errors.Wrap(ErrNotFound, "enrollment not found")
	ErrAddressMismatch        = errors.Wrap(ErrNotFound, "account not at derived address")

	ErrInvalidAuthority     = errors.Wrap(ErrUnauthorized, "authority mismatch")
	ErrInvalidBackendSigner = errors.Wrap(ErrUnauthorized, "backend signer mismatch")

	ErrCourseInactive          = errors.Wrap(ErrInvalidState, "course is not active")
	ErrPrerequisiteNotMet      = errors.Wrap(ErrInvalidState, "prerequisite not met")
	ErrLessonOutOfBounds       = errors.Wrap(ErrInvalidState, "lesson index out of bounds")
	ErrLessonAlreadyCompleted  = errors.Wrap(ErrInvalidState, "lesson already completed")
	ErrCourseAlreadyFinalized  = errors.Wrap(ErrInvalidState, "course already finalized")
	ErrCourseNotCompleted      = errors.Wrap(ErrInvalidState, "course not fully completed")
	ErrCourseNotFinalized      = errors.Wrap(ErrInvalidState, "course not finalized")
	ErrBonusAlreadyClaimed     = errors.Wrap(ErrInvalidState, "completion bonus already claimed")
	ErrAchievementClaimed      = errors.Wrap(ErrInvalidState, "achievement already claimed")
	ErrSelfReferral            = errors.Wrap(ErrInvalidState, "cannot refer self")
	ErrAlreadyReferred         = errors.Wrap(ErrInvalidState, "learner already has a referrer")
	ErrInvalidSeasonNumber     = errors.Wrap(ErrInvalidState, "season number must be sequential")
	ErrSeasonNotClosed         = errors.Wrap(ErrInvalidState, "current season is not closed")
	ErrSeasonNotActive         = errors.Wrap(ErrInvalidState, "no active season")
	ErrUnenrollCooldown        = errors.Wrap(ErrInvalidState, "unenroll cooldown not elapsed")
	ErrStreakFreezeLimit       = errors.Wrap(ErrInvalidState, "streak freeze count at maximum")
	ErrInvalidCourseParameters = errors.Wrap(ErrInvalidState, "invalid course parameters")

	ErrDailyXpLimitExceeded = errors.Wrap(ErrCapExceeded, "daily xp limit exceeded")

	ErrCreatorMismatch = errors.Wrap(ErrInconsistent, "creator does not match course record")
)
