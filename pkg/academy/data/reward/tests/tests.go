package tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/superteam-academy/academy-server/pkg/academy/data/reward"
	"github.com/superteam-academy/academy-server/pkg/pointer"
)

func RunTests(t *testing.T, s reward.Store, teardown func()) {
	for _, tf := range []func(t *testing.T, s reward.Store){
		testRoundTrip,
		testTotals,
	} {
		tf(t, s)
		teardown()
	}
}

func testRoundTrip(t *testing.T, s reward.Store) {
	t.Run("testRoundTrip", func(t *testing.T) {
		ctx := context.Background()

		actual, err := s.GetRewardEntriesByDestination(ctx, "learner")
		assert.Equal(t, reward.ErrRewardEntryNotFound, err)
		assert.Nil(t, actual)

		expected := &reward.Record{
			Destination: "learner",
			Kind:        reward.KindLesson,
			Amount:      30,
			Season:      1,
			Mint:        "mint",
			CourseId:    pointer.String("solana-101"),
		}
		cloned := expected.Clone()

		require.NoError(t, s.CreateRewardEntry(ctx, expected))

		actual, err = s.GetRewardEntriesByDestination(ctx, "learner")
		require.NoError(t, err)
		require.Len(t, actual, 1)
		assertEquivalentRecords(t, &cloned, actual[0])
		assert.EqualValues(t, 1, actual[0].Id)
	})
}

func testTotals(t *testing.T, s reward.Store) {
	t.Run("testTotals", func(t *testing.T) {
		ctx := context.Background()

		total, err := s.GetTotalRewarded(ctx, "learner", 1)
		require.NoError(t, err)
		assert.EqualValues(t, 0, total)

		for _, record := range []*reward.Record{
			{Destination: "learner", Kind: reward.KindLesson, Amount: 30, Season: 1, Mint: "mint"},
			{Destination: "learner", Kind: reward.KindCompletionBonus, Amount: 100, Season: 1, Mint: "mint"},
			{Destination: "learner", Kind: reward.KindLesson, Amount: 30, Season: 2, Mint: "mint-2"},
			{Destination: "creator", Kind: reward.KindCreatorReward, Amount: 500, Season: 1, Mint: "mint"},
		} {
			require.NoError(t, s.CreateRewardEntry(ctx, record))
		}

		total, err = s.GetTotalRewarded(ctx, "learner", 1)
		require.NoError(t, err)
		assert.EqualValues(t, 130, total)

		total, err = s.GetTotalRewarded(ctx, "learner", 2)
		require.NoError(t, err)
		assert.EqualValues(t, 30, total)

		total, err = s.GetTotalRewarded(ctx, "creator", 1)
		require.NoError(t, err)
		assert.EqualValues(t, 500, total)

		entries, err := s.GetRewardEntriesByDestination(ctx, "learner")
		require.NoError(t, err)
		assert.Len(t, entries, 3)
	})
}

func assertEquivalentRecords(t *testing.T, obj1, obj2 *reward.Record) {
	assert.Equal(t, obj1.Destination, obj2.Destination)
	assert.Equal(t, obj1.Kind, obj2.Kind)
	assert.Equal(t, obj1.Amount, obj2.Amount)
	assert.Equal(t, obj1.Season, obj2.Season)
	assert.Equal(t, obj1.Mint, obj2.Mint)
	assert.Equal(t, obj1.CourseId, obj2.CourseId)
}
