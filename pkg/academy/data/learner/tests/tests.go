package tests

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/superteam-academy/academy-server/pkg/academy/data/learner"
	"github.com/superteam-academy/academy-server/pkg/pointer"
)

func RunTests(t *testing.T, s learner.Store, teardown func()) {
	for _, tf := range []func(t *testing.T, s learner.Store){
		testRoundTrip,
		testUpdate,
	} {
		tf(t, s)
		teardown()
	}
}

func testRoundTrip(t *testing.T, s learner.Store) {
	t.Run("testRoundTrip", func(t *testing.T) {
		ctx := context.Background()

		actual, err := s.GetLearnerProfile(ctx, "owner")
		assert.Equal(t, learner.ErrLearnerProfileNotFound, err)
		assert.Nil(t, actual)

		expected := &learner.Record{
			Address:          "profile-address",
			Bump:             252,
			Owner:            "owner",
			CurrentStreak:    3,
			LongestStreak:    7,
			LastActivityDate: time.Now(),
			StreakFreezes:    1,
			AchievementFlags: [4]uint64{0x5, 0, 0, 0},
			XpEarnedToday:    120,
			LastXpDay:        19676,
			ReferralCount:    2,
			Referrer:         pointer.String("referrer"),
		}
		cloned := expected.Clone()

		require.NoError(t, s.CreateLearnerProfile(ctx, expected))
		assert.Equal(t, learner.ErrLearnerProfileExists, s.CreateLearnerProfile(ctx, expected))

		actual, err = s.GetLearnerProfile(ctx, "owner")
		require.NoError(t, err)
		assertEquivalentRecords(t, &cloned, actual)
		assert.EqualValues(t, 1, actual.Id)
	})
}

func testUpdate(t *testing.T, s learner.Store) {
	t.Run("testUpdate", func(t *testing.T) {
		ctx := context.Background()

		record := &learner.Record{
			Address: "profile-address",
			Bump:    252,
			Owner:   "owner",
		}
		assert.Equal(t, learner.ErrLearnerProfileNotFound, s.SaveLearnerProfile(ctx, record))

		require.NoError(t, s.CreateLearnerProfile(ctx, record))

		record.CurrentStreak = 1
		record.LongestStreak = 1
		record.LastActivityDate = time.Now()
		record.XpEarnedToday = 30
		record.LastXpDay = 20000
		record.ClaimAchievement(5)
		require.NoError(t, s.SaveLearnerProfile(ctx, record))

		actual, err := s.GetLearnerProfile(ctx, "owner")
		require.NoError(t, err)
		assertEquivalentRecords(t, record, actual)
		assert.True(t, actual.IsAchievementClaimed(5))
		assert.False(t, actual.IsAchievementClaimed(6))
	})
}

func assertEquivalentRecords(t *testing.T, obj1, obj2 *learner.Record) {
	assert.Equal(t, obj1.Address, obj2.Address)
	assert.Equal(t, obj1.Bump, obj2.Bump)
	assert.Equal(t, obj1.Owner, obj2.Owner)
	assert.Equal(t, obj1.CurrentStreak, obj2.CurrentStreak)
	assert.Equal(t, obj1.LongestStreak, obj2.LongestStreak)
	assert.Equal(t, obj1.LastActivityDate.Unix(), obj2.LastActivityDate.Unix())
	assert.Equal(t, obj1.StreakFreezes, obj2.StreakFreezes)
	assert.Equal(t, obj1.AchievementFlags, obj2.AchievementFlags)
	assert.Equal(t, obj1.XpEarnedToday, obj2.XpEarnedToday)
	assert.Equal(t, obj1.LastXpDay, obj2.LastXpDay)
	assert.Equal(t, obj1.ReferralCount, obj2.ReferralCount)
	assert.Equal(t, obj1.Referrer, obj2.Referrer)
}
