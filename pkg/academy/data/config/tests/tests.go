package tests

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/superteam-academy/academy-server/pkg/academy/data/config"
)

func RunTests(t *testing.T, s config.Store, teardown func()) {
	for _, tf := range []func(t *testing.T, s config.Store){
		testRoundTrip,
		testUpdate,
	} {
		tf(t, s)
		teardown()
	}
}

func testRoundTrip(t *testing.T, s config.Store) {
	t.Run("testRoundTrip", func(t *testing.T) {
		ctx := context.Background()

		actual, err := s.GetConfig(ctx)
		assert.Equal(t, config.ErrConfigNotFound, err)
		assert.Nil(t, actual)

		expected := &config.Record{
			Address:          "config-address",
			Bump:             254,
			Authority:        "authority",
			BackendSigner:    "backend-signer",
			CurrentSeason:    0,
			SeasonClosed:     true,
			MaxDailyXp:       2000,
			MaxAchievementXp: 500,
		}
		cloned := expected.Clone()

		require.NoError(t, s.PutConfig(ctx, expected))
		assert.Equal(t, config.ErrConfigExists, s.PutConfig(ctx, expected))

		actual, err = s.GetConfig(ctx)
		require.NoError(t, err)
		assertEquivalentRecords(t, &cloned, actual)
		assert.EqualValues(t, 1, actual.Id)
	})
}

func testUpdate(t *testing.T, s config.Store) {
	t.Run("testUpdate", func(t *testing.T) {
		ctx := context.Background()

		record := &config.Record{
			Address:          "config-address",
			Bump:             254,
			Authority:        "authority",
			BackendSigner:    "backend-signer",
			SeasonClosed:     true,
			MaxDailyXp:       2000,
			MaxAchievementXp: 500,
		}
		assert.Equal(t, config.ErrConfigNotFound, s.SaveConfig(ctx, record))

		require.NoError(t, s.PutConfig(ctx, record))

		record.CurrentSeason = 1
		record.CurrentMint = "mint"
		record.SeasonClosed = false
		record.SeasonStartedAt = time.Now()
		record.MaxDailyXp = 2500
		require.NoError(t, s.SaveConfig(ctx, record))

		actual, err := s.GetConfig(ctx)
		require.NoError(t, err)
		assertEquivalentRecords(t, record, actual)
	})
}

func assertEquivalentRecords(t *testing.T, obj1, obj2 *config.Record) {
	assert.Equal(t, obj1.Address, obj2.Address)
	assert.Equal(t, obj1.Bump, obj2.Bump)
	assert.Equal(t, obj1.Authority, obj2.Authority)
	assert.Equal(t, obj1.BackendSigner, obj2.BackendSigner)
	assert.Equal(t, obj1.CurrentSeason, obj2.CurrentSeason)
	assert.Equal(t, obj1.CurrentMint, obj2.CurrentMint)
	assert.Equal(t, obj1.SeasonClosed, obj2.SeasonClosed)
	assert.Equal(t, obj1.SeasonStartedAt.Unix(), obj2.SeasonStartedAt.Unix())
	assert.Equal(t, obj1.MaxDailyXp, obj2.MaxDailyXp)
	assert.Equal(t, obj1.MaxAchievementXp, obj2.MaxAchievementXp)
}
