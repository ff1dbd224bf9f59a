package program

import (
	"context"
	"crypto/ed25519"

	"github.com/sirupsen/logrus"

	"github.com/superteam-academy/academy-server/pkg/academy/data/course"
	"github.com/superteam-academy/academy-server/pkg/academy/data/enrollment"
	"github.com/superteam-academy/academy-server/pkg/academy/data/reward"
	"github.com/superteam-academy/academy-server/pkg/pointer"
	"github.com/superteam-academy/academy-server/pkg/solana"
	"github.com/superteam-academy/academy-server/pkg/solana/academy"
)

func (p *Program) getEnrollment(ctx context.Context, courseId string, learnerAccount, account ed25519.PublicKey) (*enrollment.Record, error) {
	record, err := p.data.GetEnrollment(ctx, courseId, publicKeyString(learnerAccount))
	if err == enrollment.ErrEnrollmentNotFound {
		return nil, ErrEnrollmentNotFound
	} else if err != nil {
		return nil, err
	}

	if publicKeyString(account) != record.Address {
		return nil, ErrAddressMismatch
	}

	return record, nil
}

func (p *Program) enroll(ctx context.Context, ixn solana.Instruction) error {
	accounts, args, err := academy.ParseEnrollInstruction(ixn)
	if err != nil {
		return err
	}

	courseRecord, err := p.data.GetCourseById(ctx, args.CourseId)
	if err == course.ErrCourseNotFound {
		return ErrCourseNotFound
	} else if err != nil {
		return err
	}

	if publicKeyString(accounts.Course) != courseRecord.Address {
		return ErrAddressMismatch
	}

	if !courseRecord.IsActive {
		return ErrCourseInactive
	}

	// Profile must exist before enrolling
	if _, err := p.getLearnerProfile(ctx, accounts.Learner, accounts.LearnerProfile); err != nil {
		return err
	}

	owner := publicKeyString(accounts.Learner)

	if courseRecord.Prerequisite != nil {
		prereqCourse, err := p.data.GetCourseByAddress(ctx, *courseRecord.Prerequisite)
		if err == course.ErrCourseNotFound {
			return ErrCourseNotFound
		} else if err != nil {
			return err
		}

		prereqEnrollment, err := p.data.GetEnrollment(ctx, prereqCourse.CourseId, owner)
		if err == enrollment.ErrEnrollmentNotFound {
			return ErrPrerequisiteNotMet
		} else if err != nil {
			return err
		}

		if len(accounts.PrerequisiteEnrollment) > 0 && publicKeyString(accounts.PrerequisiteEnrollment) != prereqEnrollment.Address {
			return ErrAddressMismatch
		}

		if prereqEnrollment.CompletedAt == nil {
			return ErrPrerequisiteNotMet
		}
	}

	derived, bump, err := academy.GetEnrollmentAddress(&academy.GetEnrollmentAddressArgs{
		CourseId: args.CourseId,
		Learner:  accounts.Learner,
	})
	if err != nil {
		return err
	}
	if err := checkDerivedAddress(accounts.Enrollment, derived); err != nil {
		return err
	}

	record := &enrollment.Record{
		Address: publicKeyString(derived),
		Bump:    bump,

		CourseId: courseRecord.CourseId,
		Course:   courseRecord.Address,
		Learner:  owner,

		EnrolledVersion: courseRecord.Version,
		EnrolledAt:      p.clock(),
	}

	if err := p.data.CreateEnrollment(ctx, record); err != nil {
		if err == enrollment.ErrEnrollmentExists {
			return ErrAlreadyEnrolled
		}
		return err
	}

	courseRecord.TotalEnrollments++
	if err := p.data.SaveCourse(ctx, courseRecord); err != nil {
		return err
	}

	p.log.WithFields(logrus.Fields{
		"course":  courseRecord.CourseId,
		"learner": owner,
	}).Info("learner enrolled")

	return nil
}

func (p *Program) completeLesson(ctx context.Context, ixn solana.Instruction) error {
	accounts, args, err := academy.ParseCompleteLessonInstruction(ixn)
	if err != nil {
		return err
	}

	cfg, err := p.getConfig(ctx, accounts.Config)
	if err != nil {
		return err
	}

	if err := checkBackendSigner(accounts.BackendSigner, cfg); err != nil {
		return err
	}

	courseRecord, err := p.getCourseByAccount(ctx, accounts.Course)
	if err != nil {
		return err
	}

	profile, err := p.getLearnerProfile(ctx, accounts.Learner, accounts.LearnerProfile)
	if err != nil {
		return err
	}

	enrollmentRecord, err := p.getEnrollment(ctx, courseRecord.CourseId, accounts.Learner, accounts.Enrollment)
	if err != nil {
		return err
	}

	if args.LessonIndex >= courseRecord.LessonCount {
		return ErrLessonOutOfBounds
	}

	if !enrollmentRecord.CompleteLesson(args.LessonIndex) {
		return ErrLessonAlreadyCompleted
	}

	now := p.clock()

	credited, err := grantXpUnderDailyCap(cfg, profile, now, courseRecord.XpPerLesson)
	if err != nil {
		return err
	}

	update := updateStreak(profile, now)

	if err := p.data.SaveEnrollment(ctx, enrollmentRecord); err != nil {
		return err
	}
	if err := p.data.SaveLearnerProfile(ctx, profile); err != nil {
		return err
	}

	if err := p.appendReward(ctx, profile.Owner, reward.KindLesson, uint64(credited), cfg, pointer.String(courseRecord.CourseId)); err != nil {
		return err
	}

	if update.milestone > 0 {
		// The milestone bonus is a one-shot side effect, so it bypasses
		// the daily cap rather than being clamped away.
		bonus := streakMilestoneBonusXp(update.milestone)
		if err := p.appendReward(ctx, profile.Owner, reward.KindStreakMilestone, bonus, cfg, nil); err != nil {
			return err
		}
	}

	return nil
}

func (p *Program) finalizeCourse(ctx context.Context, ixn solana.Instruction) error {
	accounts, err := academy.ParseFinalizeCourseInstruction(ixn)
	if err != nil {
		return err
	}

	cfg, err := p.getConfig(ctx, accounts.Config)
	if err != nil {
		return err
	}

	if err := checkBackendSigner(accounts.BackendSigner, cfg); err != nil {
		return err
	}

	courseRecord, err := p.getCourseByAccount(ctx, accounts.Course)
	if err != nil {
		return err
	}

	if publicKeyString(accounts.Creator) != courseRecord.Creator {
		return ErrCreatorMismatch
	}

	enrollmentRecord, err := p.getEnrollment(ctx, courseRecord.CourseId, accounts.Learner, accounts.Enrollment)
	if err != nil {
		return err
	}

	if enrollmentRecord.CompletedAt != nil {
		return ErrCourseAlreadyFinalized
	}

	if !enrollmentRecord.IsCourseCompleted(courseRecord.LessonCount) {
		return ErrCourseNotCompleted
	}

	enrollmentRecord.CompletedAt = pointer.Time(p.clock())
	courseRecord.TotalCompletions++

	if err := p.data.SaveEnrollment(ctx, enrollmentRecord); err != nil {
		return err
	}
	if err := p.data.SaveCourse(ctx, courseRecord); err != nil {
		return err
	}

	// The creator reward fires exactly once, on the completion that
	// reaches the threshold. A zero threshold rewards the first one.
	threshold := uint32(courseRecord.MinCompletionsForReward)
	if threshold == 0 {
		threshold = 1
	}
	if courseRecord.TotalCompletions == threshold && courseRecord.CreatorRewardXp > 0 {
		err := p.appendReward(ctx, courseRecord.Creator, reward.KindCreatorReward, uint64(courseRecord.CreatorRewardXp), cfg, pointer.String(courseRecord.CourseId))
		if err != nil {
			return err
		}
	}

	p.log.WithFields(logrus.Fields{
		"course":  courseRecord.CourseId,
		"learner": enrollmentRecord.Learner,
	}).Info("course finalized")

	return nil
}

func (p *Program) claimCompletionBonus(ctx context.Context, ixn solana.Instruction) error {
	accounts, err := academy.ParseClaimCompletionBonusInstruction(ixn)
	if err != nil {
		return err
	}

	cfg, err := p.getConfig(ctx, accounts.Config)
	if err != nil {
		return err
	}

	courseRecord, err := p.getCourseByAccount(ctx, accounts.Course)
	if err != nil {
		return err
	}

	profile, err := p.getLearnerProfile(ctx, accounts.Learner, accounts.LearnerProfile)
	if err != nil {
		return err
	}

	enrollmentRecord, err := p.getEnrollment(ctx, courseRecord.CourseId, accounts.Learner, accounts.Enrollment)
	if err != nil {
		return err
	}

	if enrollmentRecord.CompletedAt == nil {
		return ErrCourseNotFinalized
	}

	if enrollmentRecord.BonusClaimed {
		return ErrBonusAlreadyClaimed
	}

	credited, err := grantXpUnderDailyCap(cfg, profile, p.clock(), courseRecord.CompletionBonusXp)
	if err != nil {
		return err
	}

	enrollmentRecord.BonusClaimed = true

	if err := p.data.SaveEnrollment(ctx, enrollmentRecord); err != nil {
		return err
	}
	if err := p.data.SaveLearnerProfile(ctx, profile); err != nil {
		return err
	}

	return p.appendReward(ctx, profile.Owner, reward.KindCompletionBonus, uint64(credited), cfg, pointer.String(courseRecord.CourseId))
}

func (p *Program) closeEnrollment(ctx context.Context, ixn solana.Instruction) error {
	accounts, err := academy.ParseCloseEnrollmentInstruction(ixn)
	if err != nil {
		return err
	}

	courseRecord, err := p.getCourseByAccount(ctx, accounts.Course)
	if err != nil {
		return err
	}

	enrollmentRecord, err := p.getEnrollment(ctx, courseRecord.CourseId, accounts.Learner, accounts.Enrollment)
	if err != nil {
		return err
	}

	if enrollmentRecord.CompletedAt == nil {
		if p.clock().Sub(enrollmentRecord.EnrolledAt) < CloseEnrollmentCooldown {
			return ErrUnenrollCooldown
		}
	}

	return p.data.DeleteEnrollment(ctx, courseRecord.CourseId, enrollmentRecord.Learner)
}
