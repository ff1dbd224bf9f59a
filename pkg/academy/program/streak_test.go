package program

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/superteam-academy/academy-server/pkg/academy/data/learner"
)

func TestUpdateStreak_FreezeConsumption(t *testing.T) {
	start := time.Unix(1700000000, 0).UTC()

	profile := &learner.Record{
		Owner:            "learner",
		CurrentStreak:    5,
		LongestStreak:    5,
		LastActivityDate: start,
		StreakFreezes:    3,
	}

	// A 2 day gap consumes 2 freezes and continues the streak
	update := updateStreak(profile, start.Add(3*24*time.Hour))
	assert.True(t, update.updated)
	assert.False(t, update.broken)
	assert.EqualValues(t, 2, update.freezesUsed)
	assert.EqualValues(t, 6, profile.CurrentStreak)
	assert.EqualValues(t, 1, profile.StreakFreezes)

	// A 2 day gap with only 1 freeze left breaks the streak
	update = updateStreak(profile, profile.LastActivityDate.Add(3*24*time.Hour))
	assert.True(t, update.broken)
	assert.EqualValues(t, 0, update.freezesUsed)
	assert.EqualValues(t, 1, profile.CurrentStreak)
	assert.EqualValues(t, 1, profile.StreakFreezes)
	assert.EqualValues(t, 6, profile.LongestStreak)
}

func TestUpdateStreak_SameDayNoOp(t *testing.T) {
	start := time.Unix(1700000000, 0).UTC()

	profile := &learner.Record{
		Owner:            "learner",
		CurrentStreak:    3,
		LongestStreak:    3,
		LastActivityDate: start,
	}

	update := updateStreak(profile, start.Add(time.Hour))
	assert.False(t, update.updated)
	assert.EqualValues(t, 3, profile.CurrentStreak)
	assert.Equal(t, start, profile.LastActivityDate)
}

func TestUpdateStreak_MilestoneOneShot(t *testing.T) {
	start := time.Unix(1700000000, 0).UTC()

	profile := &learner.Record{
		Owner:            "learner",
		CurrentStreak:    6,
		LongestStreak:    6,
		LastActivityDate: start,
	}

	update := updateStreak(profile, start.Add(24*time.Hour))
	assert.EqualValues(t, 7, update.milestone)
	assert.True(t, profile.IsAchievementClaimed(streakMilestoneAchievements[7]))

	// Rebuilt streaks don't re-award the milestone
	profile.CurrentStreak = 6
	update = updateStreak(profile, profile.LastActivityDate.Add(24*time.Hour))
	assert.EqualValues(t, 7, profile.CurrentStreak)
	assert.EqualValues(t, 0, update.milestone)
}
