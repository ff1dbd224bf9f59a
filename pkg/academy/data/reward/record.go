package reward

import (
	"errors"
	"time"

	"github.com/superteam-academy/academy-server/pkg/pointer"
)

type Kind uint8

const (
	KindUnknown Kind = iota
	KindLesson
	KindCompletionBonus
	KindCreatorReward
	KindAchievement
	KindStreakMilestone
	KindReferral
)

func (k Kind) String() string {
	switch k {
	case KindLesson:
		return "lesson"
	case KindCompletionBonus:
		return "completion_bonus"
	case KindCreatorReward:
		return "creator_reward"
	case KindAchievement:
		return "achievement"
	case KindStreakMilestone:
		return "streak_milestone"
	case KindReferral:
		return "referral"
	}
	return "unknown"
}

// Record is an append-only ledger entry for a single XP grant.
type Record struct {
	Id uint64

	Destination string
	Kind        Kind
	Amount      uint64

	Season uint16
	Mint   string

	CourseId *string

	CreatedAt time.Time
}

func (r *Record) Validate() error {
	if len(r.Destination) == 0 {
		return errors.New("destination is required")
	}

	if r.Kind == KindUnknown {
		return errors.New("kind is required")
	}

	if r.Amount == 0 {
		return errors.New("amount cannot be zero")
	}

	if r.CourseId != nil && len(*r.CourseId) == 0 {
		return errors.New("course id is empty")
	}

	return nil
}

func (r *Record) Clone() Record {
	return Record{
		Id: r.Id,

		Destination: r.Destination,
		Kind:        r.Kind,
		Amount:      r.Amount,

		Season: r.Season,
		Mint:   r.Mint,

		CourseId: pointer.StringCopy(r.CourseId),

		CreatedAt: r.CreatedAt,
	}
}

func (r *Record) CopyTo(dst *Record) {
	dst.Id = r.Id

	dst.Destination = r.Destination
	dst.Kind = r.Kind
	dst.Amount = r.Amount

	dst.Season = r.Season
	dst.Mint = r.Mint

	dst.CourseId = pointer.StringCopy(r.CourseId)

	dst.CreatedAt = r.CreatedAt
}
