package learner

import (
	"errors"
	"time"

	"github.com/superteam-academy/academy-server/pkg/pointer"
)

const MaxAchievementCount = 256

// Record tracks a learner's streak, daily XP, referral and achievement
// state.
type Record struct {
	Id uint64

	Address string
	Bump    uint8

	Owner string

	CurrentStreak    uint16
	LongestStreak    uint16
	LastActivityDate time.Time
	StreakFreezes    uint8

	AchievementFlags [4]uint64

	XpEarnedToday uint32
	LastXpDay     uint16

	ReferralCount uint16
	Referrer      *string

	CreatedAt time.Time
}

func (r *Record) Validate() error {
	if len(r.Address) == 0 {
		return errors.New("address is required")
	}

	if len(r.Owner) == 0 {
		return errors.New("owner is required")
	}

	if r.Referrer != nil {
		if len(*r.Referrer) == 0 {
			return errors.New("referrer is empty")
		}
		if *r.Referrer == r.Owner {
			return errors.New("referrer cannot be the owner")
		}
	}

	return nil
}

// IsAchievementClaimed reports whether the achievement at index has been
// claimed.
func (r *Record) IsAchievementClaimed(index uint8) bool {
	word := index / 64
	bit := index % 64
	return r.AchievementFlags[word]&(uint64(1)<<bit) != 0
}

// ClaimAchievement marks the achievement at index as claimed.
func (r *Record) ClaimAchievement(index uint8) {
	word := index / 64
	bit := index % 64
	r.AchievementFlags[word] |= uint64(1) << bit
}

func (r *Record) Clone() Record {
	return Record{
		Id: r.Id,

		Address: r.Address,
		Bump:    r.Bump,

		Owner: r.Owner,

		CurrentStreak:    r.CurrentStreak,
		LongestStreak:    r.LongestStreak,
		LastActivityDate: r.LastActivityDate,
		StreakFreezes:    r.StreakFreezes,

		AchievementFlags: r.AchievementFlags,

		XpEarnedToday: r.XpEarnedToday,
		LastXpDay:     r.LastXpDay,

		ReferralCount: r.ReferralCount,
		Referrer:      pointer.StringCopy(r.Referrer),

		CreatedAt: r.CreatedAt,
	}
}

func (r *Record) CopyTo(dst *Record) {
	dst.Id = r.Id

	dst.Address = r.Address
	dst.Bump = r.Bump

	dst.Owner = r.Owner

	dst.CurrentStreak = r.CurrentStreak
	dst.LongestStreak = r.LongestStreak
	dst.LastActivityDate = r.LastActivityDate
	dst.StreakFreezes = r.StreakFreezes

	dst.AchievementFlags = r.AchievementFlags

	dst.XpEarnedToday = r.XpEarnedToday
	dst.LastXpDay = r.LastXpDay

	dst.ReferralCount = r.ReferralCount
	dst.Referrer = pointer.StringCopy(r.Referrer)

	dst.CreatedAt = r.CreatedAt
}
