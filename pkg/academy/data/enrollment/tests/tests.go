package tests

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/superteam-academy/academy-server/pkg/academy/data/enrollment"
	"github.com/superteam-academy/academy-server/pkg/pointer"
)

func RunTests(t *testing.T, s enrollment.Store, teardown func()) {
	for _, tf := range []func(t *testing.T, s enrollment.Store){
		testRoundTrip,
		testUpdate,
		testGetByLearner,
		testDelete,
	} {
		tf(t, s)
		teardown()
	}
}

func testRoundTrip(t *testing.T, s enrollment.Store) {
	t.Run("testRoundTrip", func(t *testing.T) {
		ctx := context.Background()

		actual, err := s.GetEnrollment(ctx, "solana-101", "learner")
		assert.Equal(t, enrollment.ErrEnrollmentNotFound, err)
		assert.Nil(t, actual)

		expected := newTestRecord("solana-101", "learner")
		cloned := expected.Clone()

		require.NoError(t, s.CreateEnrollment(ctx, expected))
		assert.Equal(t, enrollment.ErrEnrollmentExists, s.CreateEnrollment(ctx, expected))

		actual, err = s.GetEnrollment(ctx, "solana-101", "learner")
		require.NoError(t, err)
		assertEquivalentRecords(t, &cloned, actual)
		assert.EqualValues(t, 1, actual.Id)
	})
}

func testUpdate(t *testing.T, s enrollment.Store) {
	t.Run("testUpdate", func(t *testing.T) {
		ctx := context.Background()

		record := newTestRecord("solana-101", "learner")
		assert.Equal(t, enrollment.ErrEnrollmentNotFound, s.SaveEnrollment(ctx, record))

		require.NoError(t, s.CreateEnrollment(ctx, record))

		assert.True(t, record.CompleteLesson(0))
		assert.True(t, record.CompleteLesson(1))
		record.CompletedAt = pointer.Time(time.Now())
		record.CredentialAsset = pointer.String("credential-asset")
		record.CredentialMetadataUri = pointer.String("https://arweave.net/abc123")
		record.BonusClaimed = true
		require.NoError(t, s.SaveEnrollment(ctx, record))

		actual, err := s.GetEnrollment(ctx, "solana-101", "learner")
		require.NoError(t, err)
		assertEquivalentRecords(t, record, actual)
		assert.True(t, actual.IsLessonCompleted(0))
		assert.False(t, actual.IsLessonCompleted(2))
		assert.Equal(t, 2, actual.CompletedLessons())
	})
}

func testGetByLearner(t *testing.T, s enrollment.Store) {
	t.Run("testGetByLearner", func(t *testing.T) {
		ctx := context.Background()

		actual, err := s.GetEnrollmentsByLearner(ctx, "learner")
		require.NoError(t, err)
		assert.Empty(t, actual)

		require.NoError(t, s.CreateEnrollment(ctx, newTestRecord("solana-101", "learner")))
		require.NoError(t, s.CreateEnrollment(ctx, newTestRecord("solana-102", "learner")))
		require.NoError(t, s.CreateEnrollment(ctx, newTestRecord("solana-101", "other")))

		actual, err = s.GetEnrollmentsByLearner(ctx, "learner")
		require.NoError(t, err)
		assert.Len(t, actual, 2)
	})
}

func testDelete(t *testing.T, s enrollment.Store) {
	t.Run("testDelete", func(t *testing.T) {
		ctx := context.Background()

		assert.Equal(t, enrollment.ErrEnrollmentNotFound, s.DeleteEnrollment(ctx, "solana-101", "learner"))

		require.NoError(t, s.CreateEnrollment(ctx, newTestRecord("solana-101", "learner")))
		require.NoError(t, s.DeleteEnrollment(ctx, "solana-101", "learner"))

		_, err := s.GetEnrollment(ctx, "solana-101", "learner")
		assert.Equal(t, enrollment.ErrEnrollmentNotFound, err)
	})
}

func newTestRecord(courseId, learner string) *enrollment.Record {
	return &enrollment.Record{
		Address:         "address-" + courseId + "-" + learner,
		Bump:            251,
		CourseId:        courseId,
		Course:          "course-" + courseId,
		Learner:         learner,
		EnrolledVersion: 2,
		EnrolledAt:      time.Now(),
	}
}

func assertEquivalentRecords(t *testing.T, obj1, obj2 *enrollment.Record) {
	assert.Equal(t, obj1.Address, obj2.Address)
	assert.Equal(t, obj1.Bump, obj2.Bump)
	assert.Equal(t, obj1.CourseId, obj2.CourseId)
	assert.Equal(t, obj1.Course, obj2.Course)
	assert.Equal(t, obj1.Learner, obj2.Learner)
	assert.Equal(t, obj1.EnrolledVersion, obj2.EnrolledVersion)
	assert.Equal(t, obj1.EnrolledAt.Unix(), obj2.EnrolledAt.Unix())
	if obj1.CompletedAt != nil {
		require.NotNil(t, obj2.CompletedAt)
		assert.Equal(t, obj1.CompletedAt.Unix(), obj2.CompletedAt.Unix())
	} else {
		assert.Nil(t, obj2.CompletedAt)
	}
	assert.Equal(t, obj1.LessonFlags, obj2.LessonFlags)
	assert.Equal(t, obj1.CredentialAsset, obj2.CredentialAsset)
	assert.Equal(t, obj1.CredentialMetadataUri, obj2.CredentialMetadataUri)
	assert.Equal(t, obj1.BonusClaimed, obj2.BonusClaimed)
}
