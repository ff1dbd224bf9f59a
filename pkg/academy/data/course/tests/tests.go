package tests

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/superteam-academy/academy-server/pkg/academy/data/course"
	"github.com/superteam-academy/academy-server/pkg/pointer"
)

func RunTests(t *testing.T, s course.Store, teardown func()) {
	for _, tf := range []func(t *testing.T, s course.Store){
		testRoundTrip,
		testUpdate,
		testVersionGuard,
		testGetAll,
	} {
		tf(t, s)
		teardown()
	}
}

func testRoundTrip(t *testing.T, s course.Store) {
	t.Run("testRoundTrip", func(t *testing.T) {
		ctx := context.Background()

		actual, err := s.GetCourseById(ctx, "solana-101")
		assert.Equal(t, course.ErrCourseNotFound, err)
		assert.Nil(t, actual)

		expected := newTestRecord("solana-101")
		cloned := expected.Clone()

		require.NoError(t, s.CreateCourse(ctx, expected))
		assert.Equal(t, course.ErrCourseExists, s.CreateCourse(ctx, expected))

		actual, err = s.GetCourseById(ctx, "solana-101")
		require.NoError(t, err)
		assertEquivalentRecords(t, &cloned, actual)
		assert.EqualValues(t, 1, actual.Id)

		actual, err = s.GetCourseByAddress(ctx, "address-solana-101")
		require.NoError(t, err)
		assertEquivalentRecords(t, &cloned, actual)

		_, err = s.GetCourseByAddress(ctx, "unknown-address")
		assert.Equal(t, course.ErrCourseNotFound, err)
	})
}

func testUpdate(t *testing.T, s course.Store) {
	t.Run("testUpdate", func(t *testing.T) {
		ctx := context.Background()

		record := newTestRecord("solana-101")
		assert.Equal(t, course.ErrCourseNotFound, s.SaveCourse(ctx, record))

		require.NoError(t, s.CreateCourse(ctx, record))

		record.Version = 2
		record.CreatorRewardXp = 75
		record.TotalEnrollments = 1
		record.IsActive = false
		require.NoError(t, s.SaveCourse(ctx, record))

		actual, err := s.GetCourseById(ctx, "solana-101")
		require.NoError(t, err)
		assertEquivalentRecords(t, record, actual)
	})
}

func testVersionGuard(t *testing.T, s course.Store) {
	t.Run("testVersionGuard", func(t *testing.T) {
		ctx := context.Background()

		record := newTestRecord("solana-101")
		record.Version = 3
		require.NoError(t, s.CreateCourse(ctx, record))

		stale := record.Clone()
		stale.Version = 2
		assert.Equal(t, course.ErrStaleVersion, s.SaveCourse(ctx, &stale))

		// Counter-only updates keep the same version
		same := record.Clone()
		same.TotalCompletions = 1
		require.NoError(t, s.SaveCourse(ctx, &same))

		actual, err := s.GetCourseById(ctx, "solana-101")
		require.NoError(t, err)
		assert.EqualValues(t, 3, actual.Version)
		assert.EqualValues(t, 1, actual.TotalCompletions)
	})
}

func testGetAll(t *testing.T, s course.Store) {
	t.Run("testGetAll", func(t *testing.T) {
		ctx := context.Background()

		actual, err := s.GetAllCourses(ctx)
		require.NoError(t, err)
		assert.Empty(t, actual)

		for _, courseId := range []string{"solana-101", "solana-102", "rust-basics"} {
			require.NoError(t, s.CreateCourse(ctx, newTestRecord(courseId)))
		}

		actual, err = s.GetAllCourses(ctx)
		require.NoError(t, err)
		assert.Len(t, actual, 3)
	})
}

func newTestRecord(courseId string) *course.Record {
	contentTxId := make([]byte, course.ContentTxIdLength)
	for i := range contentTxId {
		contentTxId[i] = byte(i)
	}

	return &course.Record{
		Address:                 "address-" + courseId,
		Bump:                    253,
		CourseId:                courseId,
		Creator:                 "creator",
		Authority:               "authority",
		ContentTxId:             contentTxId,
		Version:                 1,
		LessonCount:             10,
		Difficulty:              2,
		XpPerLesson:             30,
		TrackId:                 1,
		TrackLevel:              1,
		Prerequisite:            pointer.String("prerequisite-course"),
		CompletionBonusXp:       100,
		CreatorRewardXp:         50,
		MinCompletionsForReward: 5,
		IsActive:                true,
		CreatedAt:               time.Now(),
		UpdatedAt:               time.Now(),
	}
}

func assertEquivalentRecords(t *testing.T, obj1, obj2 *course.Record) {
	assert.Equal(t, obj1.Address, obj2.Address)
	assert.Equal(t, obj1.Bump, obj2.Bump)
	assert.Equal(t, obj1.CourseId, obj2.CourseId)
	assert.Equal(t, obj1.Creator, obj2.Creator)
	assert.Equal(t, obj1.Authority, obj2.Authority)
	assert.Equal(t, obj1.ContentTxId, obj2.ContentTxId)
	assert.Equal(t, obj1.Version, obj2.Version)
	assert.Equal(t, obj1.LessonCount, obj2.LessonCount)
	assert.Equal(t, obj1.Difficulty, obj2.Difficulty)
	assert.Equal(t, obj1.XpPerLesson, obj2.XpPerLesson)
	assert.Equal(t, obj1.TrackId, obj2.TrackId)
	assert.Equal(t, obj1.TrackLevel, obj2.TrackLevel)
	assert.Equal(t, obj1.Prerequisite, obj2.Prerequisite)
	assert.Equal(t, obj1.CompletionBonusXp, obj2.CompletionBonusXp)
	assert.Equal(t, obj1.CreatorRewardXp, obj2.CreatorRewardXp)
	assert.Equal(t, obj1.MinCompletionsForReward, obj2.MinCompletionsForReward)
	assert.Equal(t, obj1.TotalCompletions, obj2.TotalCompletions)
	assert.Equal(t, obj1.TotalEnrollments, obj2.TotalEnrollments)
	assert.Equal(t, obj1.IsActive, obj2.IsActive)
	assert.Equal(t, obj1.CreatedAt.Unix(), obj2.CreatedAt.Unix())
}
