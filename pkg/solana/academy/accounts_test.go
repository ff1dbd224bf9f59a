package academy

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/superteam-academy/academy-server/pkg/pointer"
)

func TestConfigAccountRoundTrip(t *testing.T) {
	expected := ConfigAccount{
		Authority:        generateKey(t, 1),
		BackendSigner:    generateKey(t, 2),
		CurrentSeason:    3,
		CurrentMint:      generateKey(t, 4),
		SeasonClosed:     true,
		SeasonStartedAt:  1700000000,
		MaxDailyXp:       500,
		MaxAchievementXp: 250,
		Bump:             254,
	}

	marshalled := expected.Marshal()
	assert.Len(t, marshalled, ConfigAccountSize)

	var actual ConfigAccount
	require.NoError(t, actual.Unmarshal(marshalled))
	assert.Equal(t, expected, actual)
}

func TestCourseAccountRoundTrip(t *testing.T) {
	var contentTxId [ContentTxIdLength]byte
	for i := range contentTxId {
		contentTxId[i] = byte(i)
	}

	expected := CourseAccount{
		CourseId:                "solana-101",
		Creator:                 generateKey(t, 1),
		Authority:               generateKey(t, 2),
		ContentTxId:             contentTxId,
		Version:                 2,
		LessonCount:             12,
		Difficulty:              2,
		XpPerLesson:             50,
		TrackId:                 7,
		TrackLevel:              1,
		Prerequisite:            generateKey(t, 3),
		CompletionBonusXp:       100,
		CreatorRewardXp:         500,
		MinCompletionsForReward: 10,
		TotalCompletions:        4,
		TotalEnrollments:        20,
		IsActive:                true,
		CreatedAt:               1700000000,
		UpdatedAt:               1700001000,
		Bump:                    253,
	}

	marshalled := expected.Marshal()
	assert.Len(t, marshalled, CourseAccountSize)

	var actual CourseAccount
	require.NoError(t, actual.Unmarshal(marshalled))
	assert.Equal(t, expected, actual)
}

func TestCourseAccountRoundTrip_NoPrerequisite(t *testing.T) {
	expected := CourseAccount{
		CourseId:    "rust-basics",
		Creator:     generateKey(t, 1),
		Authority:   generateKey(t, 2),
		Version:     1,
		LessonCount: 8,
		Difficulty:  1,
		XpPerLesson: 25,
		TrackId:     1,
		TrackLevel:  1,
		IsActive:    true,
		CreatedAt:   1700000000,
		UpdatedAt:   1700000000,
		Bump:        255,
	}

	var actual CourseAccount
	require.NoError(t, actual.Unmarshal(expected.Marshal()))
	assert.Equal(t, expected, actual)
	assert.Nil(t, actual.Prerequisite)
}

func TestLearnerProfileAccountRoundTrip(t *testing.T) {
	expected := LearnerProfileAccount{
		Authority:        generateKey(t, 1),
		CurrentStreak:    14,
		LongestStreak:    30,
		LastActivityDate: 1700000000,
		StreakFreezes:    2,
		AchievementFlags: [4]uint64{0x5, 0, 0x8000000000000000, 1},
		XpEarnedToday:    120,
		LastXpDay:        19676,
		ReferralCount:    3,
		HasReferrer:      true,
		Bump:             252,
	}

	marshalled := expected.Marshal()
	assert.Len(t, marshalled, LearnerProfileAccountSize)

	var actual LearnerProfileAccount
	require.NoError(t, actual.Unmarshal(marshalled))
	assert.Equal(t, expected, actual)
}

func TestLearnerProfileAccountAchievementBitmap(t *testing.T) {
	var profile LearnerProfileAccount

	for _, index := range []uint8{0, 1, 63, 64, 127, 128, 255} {
		assert.False(t, profile.IsAchievementClaimed(index))
		profile.ClaimAchievement(index)
		assert.True(t, profile.IsAchievementClaimed(index))
	}

	assert.False(t, profile.IsAchievementClaimed(2))
	assert.False(t, profile.IsAchievementClaimed(65))
}

func TestEnrollmentAccountRoundTrip(t *testing.T) {
	expected := EnrollmentAccount{
		Course:          generateKey(t, 1),
		EnrolledVersion: 2,
		EnrolledAt:      1700000000,
		CompletedAt:     pointer.Int64(1700100000),
		LessonFlags:     [4]uint64{0xff, 0, 0, 0},
		CredentialAsset: generateKey(t, 2),
		BonusClaimed:    true,
		Bump:            251,
	}

	marshalled := expected.Marshal()
	assert.Len(t, marshalled, EnrollmentAccountSize)

	var actual EnrollmentAccount
	require.NoError(t, actual.Unmarshal(marshalled))
	assert.Equal(t, expected, actual)
}

func TestEnrollmentAccountRoundTrip_InProgress(t *testing.T) {
	expected := EnrollmentAccount{
		Course:          generateKey(t, 1),
		EnrolledVersion: 1,
		EnrolledAt:      1700000000,
		LessonFlags:     [4]uint64{0x3, 0, 0, 0},
		Bump:            250,
	}

	var actual EnrollmentAccount
	require.NoError(t, actual.Unmarshal(expected.Marshal()))
	assert.Equal(t, expected, actual)
	assert.Nil(t, actual.CompletedAt)
	assert.Nil(t, actual.CredentialAsset)
}

func TestEnrollmentAccountLessonBitmap(t *testing.T) {
	var enrollment EnrollmentAccount

	assert.True(t, enrollment.CompleteLesson(0))
	assert.True(t, enrollment.CompleteLesson(5))
	assert.True(t, enrollment.CompleteLesson(127))

	assert.False(t, enrollment.CompleteLesson(0))
	assert.False(t, enrollment.CompleteLesson(MaxLessonCount))

	assert.True(t, enrollment.IsLessonCompleted(5))
	assert.False(t, enrollment.IsLessonCompleted(6))
	assert.Equal(t, 3, enrollment.CompletedLessons())
}

func TestEnrollmentAccountCourseCompletion(t *testing.T) {
	var enrollment EnrollmentAccount

	for i := uint8(0); i < 4; i++ {
		enrollment.CompleteLesson(i)
	}
	assert.False(t, enrollment.IsCourseCompleted(5))
	assert.True(t, enrollment.IsCourseCompleted(4))

	enrollment.CompleteLesson(4)
	assert.True(t, enrollment.IsCourseCompleted(5))
}

func TestUnmarshalInvalidData(t *testing.T) {
	var config ConfigAccount
	assert.Error(t, config.Unmarshal(nil))
	assert.Error(t, config.Unmarshal(make([]byte, ConfigAccountSize-1)))

	badDiscriminator := make([]byte, ConfigAccountSize)
	badDiscriminator[0] = byte(AccountTypeCourse)
	assert.Error(t, config.Unmarshal(badDiscriminator))

	var course CourseAccount
	assert.Error(t, course.Unmarshal(make([]byte, CourseAccountSize-1)))

	var profile LearnerProfileAccount
	assert.Error(t, profile.Unmarshal(make([]byte, LearnerProfileAccountSize-1)))

	var enrollment EnrollmentAccount
	assert.Error(t, enrollment.Unmarshal(make([]byte, EnrollmentAccountSize-1)))
}

func generateKey(t *testing.T, fill byte) ed25519.PublicKey {
	key := make(ed25519.PublicKey, ed25519.PublicKeySize)
	for i := range key {
		key[i] = fill
	}
	return key
}
