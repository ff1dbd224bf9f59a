package program

import (
	"time"

	"github.com/superteam-academy/academy-server/pkg/academy/data/learner"
)

// Streak milestone lengths mapped to their reserved slots in the
// achievement bitmap, so each milestone bonus is granted at most once.
var streakMilestoneAchievements = map[uint16]uint8{
	7:   0,
	30:  1,
	100: 2,
	365: 3,
}

// streakMilestoneBonusXp is the one-time ledger bonus for reaching a
// milestone, scaled by the milestone length.
func streakMilestoneBonusXp(milestone uint16) uint64 {
	return uint64(milestone) * 10
}

type streakUpdate struct {
	updated     bool
	freezesUsed uint8
	broken      bool

	// milestone is nonzero when this update earned a new milestone bonus
	milestone uint16
}

// updateStreak advances the learner's streak for a qualifying activity at
// now. Same-day activity is a no-op. A gap of n missed days is bridged
// when n streak freezes are available, consuming them; otherwise the
// streak resets to 1.
func updateStreak(profile *learner.Record, now time.Time) streakUpdate {
	today := now.Unix() / 86400
	lastDay := profile.LastActivityDate.Unix() / 86400

	if today <= lastDay {
		return streakUpdate{}
	}

	update := streakUpdate{updated: true}

	gap := today - lastDay - 1
	switch {
	case gap == 0:
		profile.CurrentStreak++
	case gap <= int64(profile.StreakFreezes):
		update.freezesUsed = uint8(gap)
		profile.StreakFreezes -= update.freezesUsed
		profile.CurrentStreak++
	default:
		update.broken = true
		profile.CurrentStreak = 1
	}

	if profile.CurrentStreak > profile.LongestStreak {
		profile.LongestStreak = profile.CurrentStreak
	}
	profile.LastActivityDate = now

	if index, ok := streakMilestoneAchievements[profile.CurrentStreak]; ok && !profile.IsAchievementClaimed(index) {
		profile.ClaimAchievement(index)
		update.milestone = profile.CurrentStreak
	}

	return update
}
