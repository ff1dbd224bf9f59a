package program

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"testing"
	"time"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/superteam-academy/academy-server/pkg/academy/data"
	"github.com/superteam-academy/academy-server/pkg/academy/data/enrollment"
	"github.com/superteam-academy/academy-server/pkg/academy/data/reward"
	"github.com/superteam-academy/academy-server/pkg/pointer"
	"github.com/superteam-academy/academy-server/pkg/solana/academy"
)

type testEnv struct {
	ctx  context.Context
	prog *Program
	data data.Provider
	now  time.Time

	payer         ed25519.PublicKey
	authority     ed25519.PublicKey
	backendSigner ed25519.PublicKey
	xpMint        ed25519.PublicKey
}

func setup(t *testing.T) *testEnv {
	env := &testEnv{
		ctx:  context.Background(),
		data: data.NewMemoryProvider(),
		now:  time.Unix(1700000000, 0).UTC(),

		payer:         generateKey(t),
		authority:     generateKey(t),
		backendSigner: generateKey(t),
		xpMint:        generateKey(t),
	}
	env.prog = New(env.data)
	env.prog.SetClock(func() time.Time {
		return env.now
	})
	return env
}

func (env *testEnv) advanceDays(n int) {
	env.now = env.now.Add(time.Duration(n) * 24 * time.Hour)
}

func generateKey(t *testing.T) ed25519.PublicKey {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	return pub
}

func (env *testEnv) configAddress(t *testing.T) ed25519.PublicKey {
	address, _, err := academy.GetConfigAddress()
	require.NoError(t, err)
	return address
}

func (env *testEnv) courseAddress(t *testing.T, courseId string) ed25519.PublicKey {
	address, _, err := academy.GetCourseAddress(&academy.GetCourseAddressArgs{
		CourseId: courseId,
	})
	require.NoError(t, err)
	return address
}

func (env *testEnv) profileAddress(t *testing.T, learner ed25519.PublicKey) ed25519.PublicKey {
	address, _, err := academy.GetLearnerProfileAddress(&academy.GetLearnerProfileAddressArgs{
		Learner: learner,
	})
	require.NoError(t, err)
	return address
}

func (env *testEnv) enrollmentAddress(t *testing.T, courseId string, learner ed25519.PublicKey) ed25519.PublicKey {
	address, _, err := academy.GetEnrollmentAddress(&academy.GetEnrollmentAddressArgs{
		CourseId: courseId,
		Learner:  learner,
	})
	require.NoError(t, err)
	return address
}

func (env *testEnv) credentialAddress(t *testing.T, courseId string, learner ed25519.PublicKey) ed25519.PublicKey {
	address, _, err := academy.GetCredentialAddress(&academy.GetCredentialAddressArgs{
		CourseId: courseId,
		Learner:  learner,
	})
	require.NoError(t, err)
	return address
}

func (env *testEnv) initializePlatform(t *testing.T, maxDailyXp, maxAchievementXp uint32) error {
	return env.prog.Execute(env.ctx, academy.NewInitializeInstruction(
		&academy.InitializeInstructionAccounts{
			Payer:         env.payer,
			Authority:     env.authority,
			BackendSigner: env.backendSigner,
			Config:        env.configAddress(t),
		},
		&academy.InitializeInstructionArgs{
			MaxDailyXp:       maxDailyXp,
			MaxAchievementXp: maxAchievementXp,
		},
	))
}

func (env *testEnv) createSeason(t *testing.T, season uint16) error {
	return env.prog.Execute(env.ctx, academy.NewCreateSeasonInstruction(
		&academy.CreateSeasonInstructionAccounts{
			Payer:     env.payer,
			Config:    env.configAddress(t),
			Authority: env.authority,
			XpMint:    env.xpMint,
		},
		&academy.CreateSeasonInstructionArgs{
			Season: season,
		},
	))
}

func (env *testEnv) closeSeason(t *testing.T) error {
	return env.prog.Execute(env.ctx, academy.NewCloseSeasonInstruction(
		&academy.CloseSeasonInstructionAccounts{
			Config:    env.configAddress(t),
			Authority: env.authority,
		},
	))
}

// createCourse fills reasonable defaults for fields the test doesn't care
// about.
func (env *testEnv) createCourse(t *testing.T, args *academy.CreateCourseInstructionArgs) error {
	if args.Creator == nil {
		args.Creator = env.authority
	}
	if args.Authority == nil {
		args.Authority = env.authority
	}
	if args.LessonCount == 0 {
		args.LessonCount = 4
	}
	if args.Difficulty == 0 {
		args.Difficulty = 1
	}
	if args.TrackLevel == 0 {
		args.TrackLevel = 1
	}
	if args.XpPerLesson == 0 {
		args.XpPerLesson = 25
	}

	return env.prog.Execute(env.ctx, academy.NewCreateCourseInstruction(
		&academy.CreateCourseInstructionAccounts{
			Payer:        env.payer,
			Config:       env.configAddress(t),
			Authority:    env.authority,
			Course:       env.courseAddress(t, args.CourseId),
			Prerequisite: args.Prerequisite,
		},
		args,
	))
}

func (env *testEnv) initLearner(t *testing.T, learner ed25519.PublicKey) error {
	return env.prog.Execute(env.ctx, academy.NewInitLearnerInstruction(
		&academy.InitLearnerInstructionAccounts{
			Payer:   env.payer,
			Learner: learner,
			Profile: env.profileAddress(t, learner),
		},
	))
}

func (env *testEnv) enroll(t *testing.T, learner ed25519.PublicKey, courseId string, prerequisiteEnrollment ed25519.PublicKey) error {
	return env.prog.Execute(env.ctx, academy.NewEnrollInstruction(
		&academy.EnrollInstructionAccounts{
			Payer:                  env.payer,
			Learner:                learner,
			LearnerProfile:         env.profileAddress(t, learner),
			Course:                 env.courseAddress(t, courseId),
			Enrollment:             env.enrollmentAddress(t, courseId, learner),
			PrerequisiteEnrollment: prerequisiteEnrollment,
		},
		&academy.EnrollInstructionArgs{
			CourseId: courseId,
		},
	))
}

func (env *testEnv) completeLesson(t *testing.T, learner ed25519.PublicKey, courseId string, lessonIndex uint8) error {
	return env.prog.Execute(env.ctx, academy.NewCompleteLessonInstruction(
		&academy.CompleteLessonInstructionAccounts{
			BackendSigner:  env.backendSigner,
			Config:         env.configAddress(t),
			Course:         env.courseAddress(t, courseId),
			Learner:        learner,
			LearnerProfile: env.profileAddress(t, learner),
			Enrollment:     env.enrollmentAddress(t, courseId, learner),
		},
		&academy.CompleteLessonInstructionArgs{
			LessonIndex: lessonIndex,
		},
	))
}

func (env *testEnv) finalizeCourse(t *testing.T, learner, creator ed25519.PublicKey, courseId string) error {
	return env.prog.Execute(env.ctx, academy.NewFinalizeCourseInstruction(
		&academy.FinalizeCourseInstructionAccounts{
			BackendSigner: env.backendSigner,
			Config:        env.configAddress(t),
			Course:        env.courseAddress(t, courseId),
			Creator:       creator,
			Learner:       learner,
			Enrollment:    env.enrollmentAddress(t, courseId, learner),
		},
	))
}

func (env *testEnv) claimCompletionBonus(t *testing.T, learner ed25519.PublicKey, courseId string) error {
	return env.prog.Execute(env.ctx, academy.NewClaimCompletionBonusInstruction(
		&academy.ClaimCompletionBonusInstructionAccounts{
			Learner:        learner,
			Config:         env.configAddress(t),
			Course:         env.courseAddress(t, courseId),
			LearnerProfile: env.profileAddress(t, learner),
			Enrollment:     env.enrollmentAddress(t, courseId, learner),
		},
	))
}

func (env *testEnv) claimAchievement(t *testing.T, learner ed25519.PublicKey, index uint8, xpReward uint32) error {
	return env.prog.Execute(env.ctx, academy.NewClaimAchievementInstruction(
		&academy.ClaimAchievementInstructionAccounts{
			BackendSigner:  env.backendSigner,
			Config:         env.configAddress(t),
			Learner:        learner,
			LearnerProfile: env.profileAddress(t, learner),
			XpMint:         env.xpMint,
		},
		&academy.ClaimAchievementInstructionArgs{
			AchievementIndex: index,
			XpReward:         xpReward,
		},
	))
}

func (env *testEnv) awardStreakFreeze(t *testing.T, learner ed25519.PublicKey) error {
	return env.prog.Execute(env.ctx, academy.NewAwardStreakFreezeInstruction(
		&academy.AwardStreakFreezeInstructionAccounts{
			BackendSigner:  env.backendSigner,
			Config:         env.configAddress(t),
			Learner:        learner,
			LearnerProfile: env.profileAddress(t, learner),
		},
	))
}

func (env *testEnv) issueCredential(t *testing.T, learner ed25519.PublicKey, courseId, metadataUri string) error {
	return env.prog.Execute(env.ctx, academy.NewIssueCredentialInstruction(
		&academy.IssueCredentialInstructionAccounts{
			Payer:         env.payer,
			BackendSigner: env.backendSigner,
			Config:        env.configAddress(t),
			Course:        env.courseAddress(t, courseId),
			Learner:       learner,
			Enrollment:    env.enrollmentAddress(t, courseId, learner),
			Credential:    env.credentialAddress(t, courseId, learner),
		},
		&academy.IssueCredentialInstructionArgs{
			MetadataUri: metadataUri,
		},
	))
}

func (env *testEnv) closeEnrollment(t *testing.T, learner ed25519.PublicKey, courseId string) error {
	return env.prog.Execute(env.ctx, academy.NewCloseEnrollmentInstruction(
		&academy.CloseEnrollmentInstructionAccounts{
			Learner:    learner,
			Course:     env.courseAddress(t, courseId),
			Enrollment: env.enrollmentAddress(t, courseId, learner),
		},
	))
}

// newLearner initializes a profile and enrolls it in courseId.
func (env *testEnv) newLearner(t *testing.T, courseId string) ed25519.PublicKey {
	learner := generateKey(t)
	require.NoError(t, env.initLearner(t, learner))
	require.NoError(t, env.enroll(t, learner, courseId, nil))
	return learner
}

func TestProgram_Initialize(t *testing.T) {
	env := setup(t)

	require.NoError(t, env.initializePlatform(t, 500, 1000))

	cfg, err := env.data.GetConfig(env.ctx)
	require.NoError(t, err)
	assert.Equal(t, base58.Encode(env.authority), cfg.Authority)
	assert.Equal(t, base58.Encode(env.backendSigner), cfg.BackendSigner)
	assert.EqualValues(t, 0, cfg.CurrentSeason)
	assert.True(t, cfg.SeasonClosed)
	assert.EqualValues(t, 500, cfg.MaxDailyXp)
	assert.EqualValues(t, 1000, cfg.MaxAchievementXp)

	err = env.initializePlatform(t, 500, 1000)
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestProgram_Initialize_WrongConfigAddress(t *testing.T) {
	env := setup(t)

	err := env.prog.Execute(env.ctx, academy.NewInitializeInstruction(
		&academy.InitializeInstructionAccounts{
			Payer:         env.payer,
			Authority:     env.authority,
			BackendSigner: env.backendSigner,
			Config:        generateKey(t),
		},
		&academy.InitializeInstructionArgs{
			MaxDailyXp:       500,
			MaxAchievementXp: 1000,
		},
	))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProgram_UpdateConfig(t *testing.T) {
	env := setup(t)
	require.NoError(t, env.initializePlatform(t, 500, 1000))

	newBackendSigner := generateKey(t)
	require.NoError(t, env.prog.Execute(env.ctx, academy.NewUpdateConfigInstruction(
		&academy.UpdateConfigInstructionAccounts{
			Config:    env.configAddress(t),
			Authority: env.authority,
		},
		&academy.UpdateConfigInstructionArgs{
			BackendSigner: newBackendSigner,
			MaxDailyXp:    pointer.Uint32(750),
		},
	)))

	cfg, err := env.data.GetConfig(env.ctx)
	require.NoError(t, err)
	assert.Equal(t, base58.Encode(newBackendSigner), cfg.BackendSigner)
	assert.EqualValues(t, 750, cfg.MaxDailyXp)

	// Unsupplied fields retain their previous values
	assert.EqualValues(t, 1000, cfg.MaxAchievementXp)

	err = env.prog.Execute(env.ctx, academy.NewUpdateConfigInstruction(
		&academy.UpdateConfigInstructionAccounts{
			Config:    env.configAddress(t),
			Authority: generateKey(t),
		},
		&academy.UpdateConfigInstructionArgs{
			MaxDailyXp: pointer.Uint32(1),
		},
	))
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestProgram_SeasonLifecycle(t *testing.T) {
	env := setup(t)
	require.NoError(t, env.initializePlatform(t, 500, 1000))

	// Seasons are strictly sequential
	assert.ErrorIs(t, env.createSeason(t, 2), ErrInvalidState)

	require.NoError(t, env.createSeason(t, 1))

	cfg, err := env.data.GetConfig(env.ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, cfg.CurrentSeason)
	assert.Equal(t, base58.Encode(env.xpMint), cfg.CurrentMint)
	assert.False(t, cfg.SeasonClosed)
	assert.Equal(t, env.now, cfg.SeasonStartedAt)

	// Season 1 must close before season 2 opens
	assert.ErrorIs(t, env.createSeason(t, 2), ErrInvalidState)

	require.NoError(t, env.closeSeason(t))
	assert.ErrorIs(t, env.closeSeason(t), ErrInvalidState)

	require.NoError(t, env.createSeason(t, 2))

	cfg, err = env.data.GetConfig(env.ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, cfg.CurrentSeason)
	assert.False(t, cfg.SeasonClosed)
}

func TestProgram_CreateCourse(t *testing.T) {
	env := setup(t)
	require.NoError(t, env.initializePlatform(t, 500, 1000))

	require.NoError(t, env.createCourse(t, &academy.CreateCourseInstructionArgs{
		CourseId:    "anchor-beginner",
		LessonCount: 10,
		XpPerLesson: 30,
	}))

	record, err := env.data.GetCourseById(env.ctx, "anchor-beginner")
	require.NoError(t, err)
	assert.EqualValues(t, 1, record.Version)
	assert.EqualValues(t, 10, record.LessonCount)
	assert.EqualValues(t, 30, record.XpPerLesson)
	assert.EqualValues(t, 0, record.TotalEnrollments)
	assert.EqualValues(t, 0, record.TotalCompletions)
	assert.True(t, record.IsActive)
	assert.Nil(t, record.Prerequisite)

	err = env.createCourse(t, &academy.CreateCourseInstructionArgs{
		CourseId: "anchor-beginner",
	})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	err = env.createCourse(t, &academy.CreateCourseInstructionArgs{
		CourseId:   "bad-difficulty",
		Difficulty: 4,
	})
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestProgram_CreateCourse_Prerequisite(t *testing.T) {
	env := setup(t)
	require.NoError(t, env.initializePlatform(t, 500, 1000))

	// Prerequisite must exist
	err := env.createCourse(t, &academy.CreateCourseInstructionArgs{
		CourseId:     "anchor-advanced",
		Prerequisite: env.courseAddress(t, "anchor-beginner"),
	})
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, env.createCourse(t, &academy.CreateCourseInstructionArgs{
		CourseId: "anchor-beginner",
	}))

	// Prerequisite must be active
	require.NoError(t, env.prog.Execute(env.ctx, academy.NewUpdateCourseInstruction(
		&academy.UpdateCourseInstructionAccounts{
			Course:    env.courseAddress(t, "anchor-beginner"),
			Authority: env.authority,
		},
		&academy.UpdateCourseInstructionArgs{
			IsActive: pointer.Bool(false),
		},
	)))
	err = env.createCourse(t, &academy.CreateCourseInstructionArgs{
		CourseId:     "anchor-advanced",
		Prerequisite: env.courseAddress(t, "anchor-beginner"),
	})
	assert.ErrorIs(t, err, ErrInvalidState)

	require.NoError(t, env.prog.Execute(env.ctx, academy.NewUpdateCourseInstruction(
		&academy.UpdateCourseInstructionAccounts{
			Course:    env.courseAddress(t, "anchor-beginner"),
			Authority: env.authority,
		},
		&academy.UpdateCourseInstructionArgs{
			IsActive: pointer.Bool(true),
		},
	)))
	require.NoError(t, env.createCourse(t, &academy.CreateCourseInstructionArgs{
		CourseId:     "anchor-advanced",
		Prerequisite: env.courseAddress(t, "anchor-beginner"),
	}))

	record, err := env.data.GetCourseById(env.ctx, "anchor-advanced")
	require.NoError(t, err)
	require.NotNil(t, record.Prerequisite)
	assert.Equal(t, base58.Encode(env.courseAddress(t, "anchor-beginner")), *record.Prerequisite)
}

func TestProgram_UpdateCourse(t *testing.T) {
	env := setup(t)
	require.NoError(t, env.initializePlatform(t, 500, 1000))
	require.NoError(t, env.createCourse(t, &academy.CreateCourseInstructionArgs{
		CourseId: "anchor-beginner",
	}))

	require.NoError(t, env.prog.Execute(env.ctx, academy.NewUpdateCourseInstruction(
		&academy.UpdateCourseInstructionAccounts{
			Course:    env.courseAddress(t, "anchor-beginner"),
			Authority: env.authority,
		},
		&academy.UpdateCourseInstructionArgs{
			CreatorRewardXp: pointer.Uint32(75),
		},
	)))

	record, err := env.data.GetCourseById(env.ctx, "anchor-beginner")
	require.NoError(t, err)
	assert.EqualValues(t, 2, record.Version)
	assert.EqualValues(t, 75, record.CreatorRewardXp)

	// The version bumps even when no field is supplied
	require.NoError(t, env.prog.Execute(env.ctx, academy.NewUpdateCourseInstruction(
		&academy.UpdateCourseInstructionAccounts{
			Course:    env.courseAddress(t, "anchor-beginner"),
			Authority: env.authority,
		},
		&academy.UpdateCourseInstructionArgs{},
	)))

	record, err = env.data.GetCourseById(env.ctx, "anchor-beginner")
	require.NoError(t, err)
	assert.EqualValues(t, 3, record.Version)

	err = env.prog.Execute(env.ctx, academy.NewUpdateCourseInstruction(
		&academy.UpdateCourseInstructionAccounts{
			Course:    env.courseAddress(t, "anchor-beginner"),
			Authority: generateKey(t),
		},
		&academy.UpdateCourseInstructionArgs{},
	))
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestProgram_InitLearner(t *testing.T) {
	env := setup(t)
	require.NoError(t, env.initializePlatform(t, 500, 1000))

	learner := generateKey(t)
	require.NoError(t, env.initLearner(t, learner))

	record, err := env.data.GetLearnerProfile(env.ctx, base58.Encode(learner))
	require.NoError(t, err)
	assert.EqualValues(t, 0, record.CurrentStreak)
	assert.EqualValues(t, 0, record.XpEarnedToday)
	assert.Equal(t, env.now, record.LastActivityDate)

	assert.ErrorIs(t, env.initLearner(t, learner), ErrAlreadyExists)
}

func TestProgram_RegisterReferral(t *testing.T) {
	env := setup(t)
	require.NoError(t, env.initializePlatform(t, 500, 1000))

	learner := generateKey(t)
	referrer := generateKey(t)
	require.NoError(t, env.initLearner(t, learner))
	require.NoError(t, env.initLearner(t, referrer))

	register := func(learner, referrer ed25519.PublicKey) error {
		return env.prog.Execute(env.ctx, academy.NewRegisterReferralInstruction(
			&academy.RegisterReferralInstructionAccounts{
				Payer:           env.payer,
				Learner:         learner,
				ReferrerProfile: env.profileAddress(t, referrer),
				Referrer:        referrer,
				LearnerProfile:  env.profileAddress(t, learner),
			},
		))
	}

	assert.ErrorIs(t, register(learner, learner), ErrInvalidState)

	require.NoError(t, register(learner, referrer))

	learnerRecord, err := env.data.GetLearnerProfile(env.ctx, base58.Encode(learner))
	require.NoError(t, err)
	require.NotNil(t, learnerRecord.Referrer)
	assert.Equal(t, base58.Encode(referrer), *learnerRecord.Referrer)

	referrerRecord, err := env.data.GetLearnerProfile(env.ctx, base58.Encode(referrer))
	require.NoError(t, err)
	assert.EqualValues(t, 1, referrerRecord.ReferralCount)

	assert.ErrorIs(t, register(learner, referrer), ErrInvalidState)
}

func TestProgram_Enroll(t *testing.T) {
	env := setup(t)
	require.NoError(t, env.initializePlatform(t, 500, 1000))
	require.NoError(t, env.createCourse(t, &academy.CreateCourseInstructionArgs{
		CourseId: "anchor-beginner",
	}))

	learner := generateKey(t)

	// Profile must exist first
	assert.ErrorIs(t, env.enroll(t, learner, "anchor-beginner", nil), ErrNotFound)

	require.NoError(t, env.initLearner(t, learner))
	require.NoError(t, env.enroll(t, learner, "anchor-beginner", nil))

	record, err := env.data.GetEnrollment(env.ctx, "anchor-beginner", base58.Encode(learner))
	require.NoError(t, err)
	assert.EqualValues(t, 1, record.EnrolledVersion)
	assert.Equal(t, env.now, record.EnrolledAt)
	assert.Nil(t, record.CompletedAt)

	courseRecord, err := env.data.GetCourseById(env.ctx, "anchor-beginner")
	require.NoError(t, err)
	assert.EqualValues(t, 1, courseRecord.TotalEnrollments)

	assert.ErrorIs(t, env.enroll(t, learner, "anchor-beginner", nil), ErrAlreadyExists)
}

func TestProgram_Enroll_VersionSnapshot(t *testing.T) {
	env := setup(t)
	require.NoError(t, env.initializePlatform(t, 500, 1000))
	require.NoError(t, env.createCourse(t, &academy.CreateCourseInstructionArgs{
		CourseId: "anchor-beginner",
	}))

	require.NoError(t, env.prog.Execute(env.ctx, academy.NewUpdateCourseInstruction(
		&academy.UpdateCourseInstructionAccounts{
			Course:    env.courseAddress(t, "anchor-beginner"),
			Authority: env.authority,
		},
		&academy.UpdateCourseInstructionArgs{},
	)))

	learner := env.newLearner(t, "anchor-beginner")

	record, err := env.data.GetEnrollment(env.ctx, "anchor-beginner", base58.Encode(learner))
	require.NoError(t, err)
	assert.EqualValues(t, 2, record.EnrolledVersion)
}

func TestProgram_Enroll_InactiveCourse(t *testing.T) {
	env := setup(t)
	require.NoError(t, env.initializePlatform(t, 500, 1000))
	require.NoError(t, env.createCourse(t, &academy.CreateCourseInstructionArgs{
		CourseId: "anchor-beginner",
	}))
	require.NoError(t, env.prog.Execute(env.ctx, academy.NewUpdateCourseInstruction(
		&academy.UpdateCourseInstructionAccounts{
			Course:    env.courseAddress(t, "anchor-beginner"),
			Authority: env.authority,
		},
		&academy.UpdateCourseInstructionArgs{
			IsActive: pointer.Bool(false),
		},
	)))

	learner := generateKey(t)
	require.NoError(t, env.initLearner(t, learner))
	assert.ErrorIs(t, env.enroll(t, learner, "anchor-beginner", nil), ErrInvalidState)
}

func TestProgram_Enroll_PrerequisiteGate(t *testing.T) {
	env := setup(t)
	require.NoError(t, env.initializePlatform(t, 500, 1000))
	require.NoError(t, env.createCourse(t, &academy.CreateCourseInstructionArgs{
		CourseId:    "anchor-beginner",
		LessonCount: 2,
	}))
	require.NoError(t, env.createCourse(t, &academy.CreateCourseInstructionArgs{
		CourseId:     "anchor-advanced",
		Prerequisite: env.courseAddress(t, "anchor-beginner"),
	}))

	learner := generateKey(t)
	require.NoError(t, env.initLearner(t, learner))

	// No prerequisite enrollment at all
	assert.ErrorIs(t, env.enroll(t, learner, "anchor-advanced", nil), ErrInvalidState)

	require.NoError(t, env.enroll(t, learner, "anchor-beginner", nil))

	// Enrolled but not completed
	prereqEnrollment := env.enrollmentAddress(t, "anchor-beginner", learner)
	assert.ErrorIs(t, env.enroll(t, learner, "anchor-advanced", prereqEnrollment), ErrInvalidState)

	require.NoError(t, env.completeLesson(t, learner, "anchor-beginner", 0))
	require.NoError(t, env.completeLesson(t, learner, "anchor-beginner", 1))
	require.NoError(t, env.finalizeCourse(t, learner, env.authority, "anchor-beginner"))

	require.NoError(t, env.enroll(t, learner, "anchor-advanced", prereqEnrollment))
}

func TestProgram_CompleteLesson(t *testing.T) {
	env := setup(t)
	require.NoError(t, env.initializePlatform(t, 500, 1000))
	require.NoError(t, env.createCourse(t, &academy.CreateCourseInstructionArgs{
		CourseId:    "anchor-beginner",
		LessonCount: 4,
		XpPerLesson: 30,
	}))

	learner := env.newLearner(t, "anchor-beginner")

	require.NoError(t, env.completeLesson(t, learner, "anchor-beginner", 0))

	record, err := env.data.GetEnrollment(env.ctx, "anchor-beginner", base58.Encode(learner))
	require.NoError(t, err)
	assert.True(t, record.IsLessonCompleted(0))
	assert.False(t, record.IsLessonCompleted(1))

	profile, err := env.data.GetLearnerProfile(env.ctx, base58.Encode(learner))
	require.NoError(t, err)
	assert.EqualValues(t, 30, profile.XpEarnedToday)

	entries, err := env.data.GetRewardEntriesByDestination(env.ctx, base58.Encode(learner))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, reward.KindLesson, entries[0].Kind)
	assert.EqualValues(t, 30, entries[0].Amount)

	// Re-completing the same lesson is rejected
	assert.ErrorIs(t, env.completeLesson(t, learner, "anchor-beginner", 0), ErrInvalidState)

	// Out of bounds index
	assert.ErrorIs(t, env.completeLesson(t, learner, "anchor-beginner", 4), ErrInvalidState)
}

func TestProgram_CompleteLesson_WrongBackendSigner(t *testing.T) {
	env := setup(t)
	require.NoError(t, env.initializePlatform(t, 500, 1000))
	require.NoError(t, env.createCourse(t, &academy.CreateCourseInstructionArgs{
		CourseId: "anchor-beginner",
	}))

	learner := env.newLearner(t, "anchor-beginner")

	err := env.prog.Execute(env.ctx, academy.NewCompleteLessonInstruction(
		&academy.CompleteLessonInstructionAccounts{
			BackendSigner:  generateKey(t),
			Config:         env.configAddress(t),
			Course:         env.courseAddress(t, "anchor-beginner"),
			Learner:        learner,
			LearnerProfile: env.profileAddress(t, learner),
			Enrollment:     env.enrollmentAddress(t, "anchor-beginner", learner),
		},
		&academy.CompleteLessonInstructionArgs{},
	))
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestProgram_CompleteLesson_DailyCap(t *testing.T) {
	env := setup(t)
	require.NoError(t, env.initializePlatform(t, 50, 1000))
	require.NoError(t, env.createCourse(t, &academy.CreateCourseInstructionArgs{
		CourseId:    "anchor-beginner",
		LessonCount: 4,
		XpPerLesson: 30,
	}))

	learner := env.newLearner(t, "anchor-beginner")

	require.NoError(t, env.completeLesson(t, learner, "anchor-beginner", 0))

	// Second grant is clamped to the remaining budget
	require.NoError(t, env.completeLesson(t, learner, "anchor-beginner", 1))

	profile, err := env.data.GetLearnerProfile(env.ctx, base58.Encode(learner))
	require.NoError(t, err)
	assert.EqualValues(t, 50, profile.XpEarnedToday)

	entries, err := env.data.GetRewardEntriesByDestination(env.ctx, base58.Encode(learner))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.EqualValues(t, 30, entries[0].Amount)
	assert.EqualValues(t, 20, entries[1].Amount)

	// Exhausted budget rejects the instruction and leaves the lesson
	// bit unset
	assert.ErrorIs(t, env.completeLesson(t, learner, "anchor-beginner", 2), ErrCapExceeded)

	record, err := env.data.GetEnrollment(env.ctx, "anchor-beginner", base58.Encode(learner))
	require.NoError(t, err)
	assert.False(t, record.IsLessonCompleted(2))

	// The window resets on the next day
	env.advanceDays(1)
	require.NoError(t, env.completeLesson(t, learner, "anchor-beginner", 2))

	profile, err = env.data.GetLearnerProfile(env.ctx, base58.Encode(learner))
	require.NoError(t, err)
	assert.EqualValues(t, 30, profile.XpEarnedToday)
}

func TestProgram_Streaks(t *testing.T) {
	env := setup(t)
	require.NoError(t, env.initializePlatform(t, 5000, 1000))
	require.NoError(t, env.createCourse(t, &academy.CreateCourseInstructionArgs{
		CourseId:    "anchor-beginner",
		LessonCount: 20,
		XpPerLesson: 10,
	}))

	learner := env.newLearner(t, "anchor-beginner")
	owner := base58.Encode(learner)

	// Same-day activity doesn't move the streak
	require.NoError(t, env.completeLesson(t, learner, "anchor-beginner", 0))
	profile, err := env.data.GetLearnerProfile(env.ctx, owner)
	require.NoError(t, err)
	assert.EqualValues(t, 0, profile.CurrentStreak)

	// Two consecutive days of activity
	env.advanceDays(1)
	require.NoError(t, env.completeLesson(t, learner, "anchor-beginner", 1))
	env.advanceDays(1)
	require.NoError(t, env.completeLesson(t, learner, "anchor-beginner", 2))

	profile, err = env.data.GetLearnerProfile(env.ctx, owner)
	require.NoError(t, err)
	assert.EqualValues(t, 2, profile.CurrentStreak)
	assert.EqualValues(t, 2, profile.LongestStreak)

	// A two-day gap without freezes resets the streak
	env.advanceDays(3)
	require.NoError(t, env.completeLesson(t, learner, "anchor-beginner", 3))

	profile, err = env.data.GetLearnerProfile(env.ctx, owner)
	require.NoError(t, err)
	assert.EqualValues(t, 1, profile.CurrentStreak)
	assert.EqualValues(t, 2, profile.LongestStreak)
}

func TestProgram_Streaks_FreezeBridgesGap(t *testing.T) {
	env := setup(t)
	require.NoError(t, env.initializePlatform(t, 5000, 1000))
	require.NoError(t, env.createCourse(t, &academy.CreateCourseInstructionArgs{
		CourseId:    "anchor-beginner",
		LessonCount: 20,
		XpPerLesson: 10,
	}))

	learner := env.newLearner(t, "anchor-beginner")
	owner := base58.Encode(learner)

	env.advanceDays(1)
	require.NoError(t, env.completeLesson(t, learner, "anchor-beginner", 0))
	env.advanceDays(1)
	require.NoError(t, env.completeLesson(t, learner, "anchor-beginner", 1))

	require.NoError(t, env.awardStreakFreeze(t, learner))

	// One missed day, bridged by the freeze
	env.advanceDays(2)
	require.NoError(t, env.completeLesson(t, learner, "anchor-beginner", 2))

	profile, err := env.data.GetLearnerProfile(env.ctx, owner)
	require.NoError(t, err)
	assert.EqualValues(t, 3, profile.CurrentStreak)
	assert.EqualValues(t, 0, profile.StreakFreezes)
}

func TestProgram_Streaks_MilestoneAwardedOnce(t *testing.T) {
	env := setup(t)
	require.NoError(t, env.initializePlatform(t, 5000, 1000))
	require.NoError(t, env.createCourse(t, &academy.CreateCourseInstructionArgs{
		CourseId:    "anchor-beginner",
		LessonCount: 30,
		XpPerLesson: 10,
	}))

	learner := env.newLearner(t, "anchor-beginner")
	owner := base58.Encode(learner)

	var lesson uint8
	for day := 0; day < 7; day++ {
		env.advanceDays(1)
		require.NoError(t, env.completeLesson(t, learner, "anchor-beginner", lesson))
		lesson++
	}

	profile, err := env.data.GetLearnerProfile(env.ctx, owner)
	require.NoError(t, err)
	assert.EqualValues(t, 7, profile.CurrentStreak)

	milestones := func() (count int) {
		entries, err := env.data.GetRewardEntriesByDestination(env.ctx, owner)
		require.NoError(t, err)
		for _, entry := range entries {
			if entry.Kind == reward.KindStreakMilestone {
				count++
			}
		}
		return count
	}
	assert.Equal(t, 1, milestones())

	// Break the streak, then rebuild it past 7. The milestone bonus
	// doesn't fire again.
	env.advanceDays(3)
	for day := 0; day < 8; day++ {
		require.NoError(t, env.completeLesson(t, learner, "anchor-beginner", lesson))
		lesson++
		env.advanceDays(1)
	}

	profile, err = env.data.GetLearnerProfile(env.ctx, owner)
	require.NoError(t, err)
	assert.EqualValues(t, 8, profile.CurrentStreak)
	assert.Equal(t, 1, milestones())
}

func TestProgram_FinalizeCourse(t *testing.T) {
	env := setup(t)
	require.NoError(t, env.initializePlatform(t, 500, 1000))
	require.NoError(t, env.createCourse(t, &academy.CreateCourseInstructionArgs{
		CourseId:    "anchor-beginner",
		LessonCount: 2,
		XpPerLesson: 10,
	}))

	learner := env.newLearner(t, "anchor-beginner")

	require.NoError(t, env.completeLesson(t, learner, "anchor-beginner", 0))

	// Not all lessons completed
	err := env.finalizeCourse(t, learner, env.authority, "anchor-beginner")
	assert.ErrorIs(t, err, ErrInvalidState)

	require.NoError(t, env.completeLesson(t, learner, "anchor-beginner", 1))
	require.NoError(t, env.finalizeCourse(t, learner, env.authority, "anchor-beginner"))

	record, err := env.data.GetEnrollment(env.ctx, "anchor-beginner", base58.Encode(learner))
	require.NoError(t, err)
	require.NotNil(t, record.CompletedAt)
	assert.Equal(t, env.now, *record.CompletedAt)

	courseRecord, err := env.data.GetCourseById(env.ctx, "anchor-beginner")
	require.NoError(t, err)
	assert.EqualValues(t, 1, courseRecord.TotalCompletions)

	// completedAt is write-once
	err = env.finalizeCourse(t, learner, env.authority, "anchor-beginner")
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestProgram_FinalizeCourse_CreatorRewardOnce(t *testing.T) {
	env := setup(t)
	require.NoError(t, env.initializePlatform(t, 500, 1000))

	creator := generateKey(t)
	require.NoError(t, env.createCourse(t, &academy.CreateCourseInstructionArgs{
		CourseId:                "anchor-beginner",
		LessonCount:             1,
		XpPerLesson:             10,
		Creator:                 creator,
		CreatorRewardXp:         75,
		MinCompletionsForReward: 2,
	}))

	creatorRewards := func() []*reward.Record {
		entries, err := env.data.GetRewardEntriesByDestination(env.ctx, base58.Encode(creator))
		if err == reward.ErrRewardEntryNotFound {
			return nil
		}
		require.NoError(t, err)
		return entries
	}

	complete := func() {
		learner := env.newLearner(t, "anchor-beginner")
		require.NoError(t, env.completeLesson(t, learner, "anchor-beginner", 0))
		require.NoError(t, env.finalizeCourse(t, learner, creator, "anchor-beginner"))
	}

	complete()
	assert.Empty(t, creatorRewards())

	// The completion that reaches the threshold grants the reward
	complete()
	entries := creatorRewards()
	require.Len(t, entries, 1)
	assert.Equal(t, reward.KindCreatorReward, entries[0].Kind)
	assert.EqualValues(t, 75, entries[0].Amount)

	// Never again past it
	complete()
	assert.Len(t, creatorRewards(), 1)
}

func TestProgram_ClaimCompletionBonus(t *testing.T) {
	env := setup(t)
	require.NoError(t, env.initializePlatform(t, 500, 1000))
	require.NoError(t, env.createCourse(t, &academy.CreateCourseInstructionArgs{
		CourseId:          "anchor-beginner",
		LessonCount:       1,
		XpPerLesson:       10,
		CompletionBonusXp: 100,
	}))

	learner := env.newLearner(t, "anchor-beginner")
	require.NoError(t, env.completeLesson(t, learner, "anchor-beginner", 0))

	// Must be finalized first
	err := env.claimCompletionBonus(t, learner, "anchor-beginner")
	assert.ErrorIs(t, err, ErrInvalidState)

	require.NoError(t, env.finalizeCourse(t, learner, env.authority, "anchor-beginner"))
	require.NoError(t, env.claimCompletionBonus(t, learner, "anchor-beginner"))

	record, err := env.data.GetEnrollment(env.ctx, "anchor-beginner", base58.Encode(learner))
	require.NoError(t, err)
	assert.True(t, record.BonusClaimed)

	profile, err := env.data.GetLearnerProfile(env.ctx, base58.Encode(learner))
	require.NoError(t, err)
	assert.EqualValues(t, 110, profile.XpEarnedToday)

	err = env.claimCompletionBonus(t, learner, "anchor-beginner")
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestProgram_ClaimAchievement(t *testing.T) {
	env := setup(t)
	require.NoError(t, env.initializePlatform(t, 500, 100))

	learner := generateKey(t)
	require.NoError(t, env.initLearner(t, learner))

	// Requires an open season
	err := env.claimAchievement(t, learner, 10, 250)
	assert.ErrorIs(t, err, ErrInvalidState)

	require.NoError(t, env.createSeason(t, 1))

	require.NoError(t, env.claimAchievement(t, learner, 10, 250))

	profile, err := env.data.GetLearnerProfile(env.ctx, base58.Encode(learner))
	require.NoError(t, err)
	assert.True(t, profile.IsAchievementClaimed(10))

	// Reward clamped to maxAchievementXp
	entries, err := env.data.GetRewardEntriesByDestination(env.ctx, base58.Encode(learner))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, reward.KindAchievement, entries[0].Kind)
	assert.EqualValues(t, 100, entries[0].Amount)
	assert.EqualValues(t, 1, entries[0].Season)
	assert.Equal(t, base58.Encode(env.xpMint), entries[0].Mint)

	total, err := env.data.GetTotalRewarded(env.ctx, base58.Encode(learner), 1)
	require.NoError(t, err)
	assert.EqualValues(t, 100, total)

	err = env.claimAchievement(t, learner, 10, 50)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestProgram_AwardStreakFreeze(t *testing.T) {
	env := setup(t)
	require.NoError(t, env.initializePlatform(t, 500, 1000))

	learner := generateKey(t)
	require.NoError(t, env.initLearner(t, learner))

	require.NoError(t, env.awardStreakFreeze(t, learner))
	require.NoError(t, env.awardStreakFreeze(t, learner))

	profile, err := env.data.GetLearnerProfile(env.ctx, base58.Encode(learner))
	require.NoError(t, err)
	assert.EqualValues(t, 2, profile.StreakFreezes)
}

func TestProgram_IssueCredential(t *testing.T) {
	env := setup(t)
	require.NoError(t, env.initializePlatform(t, 500, 1000))
	require.NoError(t, env.createCourse(t, &academy.CreateCourseInstructionArgs{
		CourseId:    "anchor-beginner",
		LessonCount: 1,
		XpPerLesson: 10,
	}))

	learner := env.newLearner(t, "anchor-beginner")
	require.NoError(t, env.completeLesson(t, learner, "anchor-beginner", 0))

	err := env.issueCredential(t, learner, "anchor-beginner", "https://arweave.net/abc123")
	assert.ErrorIs(t, err, ErrInvalidState)

	require.NoError(t, env.finalizeCourse(t, learner, env.authority, "anchor-beginner"))
	require.NoError(t, env.issueCredential(t, learner, "anchor-beginner", "https://arweave.net/abc123"))

	record, err := env.data.GetEnrollment(env.ctx, "anchor-beginner", base58.Encode(learner))
	require.NoError(t, err)
	require.NotNil(t, record.CredentialAsset)
	assert.Equal(t, base58.Encode(env.credentialAddress(t, "anchor-beginner", learner)), *record.CredentialAsset)
	require.NotNil(t, record.CredentialMetadataUri)
	assert.Equal(t, "https://arweave.net/abc123", *record.CredentialMetadataUri)

	// One credential per enrollment
	err = env.issueCredential(t, learner, "anchor-beginner", "https://arweave.net/def456")
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestProgram_CloseEnrollment(t *testing.T) {
	env := setup(t)
	require.NoError(t, env.initializePlatform(t, 500, 1000))
	require.NoError(t, env.createCourse(t, &academy.CreateCourseInstructionArgs{
		CourseId:    "anchor-beginner",
		LessonCount: 1,
		XpPerLesson: 10,
	}))

	learner := env.newLearner(t, "anchor-beginner")

	// Unfinished enrollments wait out the cooldown
	err := env.closeEnrollment(t, learner, "anchor-beginner")
	assert.ErrorIs(t, err, ErrInvalidState)

	env.advanceDays(1)
	require.NoError(t, env.closeEnrollment(t, learner, "anchor-beginner"))

	_, err = env.data.GetEnrollment(env.ctx, "anchor-beginner", base58.Encode(learner))
	assert.Equal(t, enrollment.ErrEnrollmentNotFound, err)
}

func TestProgram_CloseEnrollment_ImmediateWhenCompleted(t *testing.T) {
	env := setup(t)
	require.NoError(t, env.initializePlatform(t, 500, 1000))
	require.NoError(t, env.createCourse(t, &academy.CreateCourseInstructionArgs{
		CourseId:    "anchor-beginner",
		LessonCount: 1,
		XpPerLesson: 10,
	}))

	learner := env.newLearner(t, "anchor-beginner")
	require.NoError(t, env.completeLesson(t, learner, "anchor-beginner", 0))
	require.NoError(t, env.finalizeCourse(t, learner, env.authority, "anchor-beginner"))

	require.NoError(t, env.closeEnrollment(t, learner, "anchor-beginner"))

	_, err := env.data.GetEnrollment(env.ctx, "anchor-beginner", base58.Encode(learner))
	assert.Equal(t, enrollment.ErrEnrollmentNotFound, err)
}
