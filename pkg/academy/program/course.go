package program

import (
	"bytes"
	"context"
	"crypto/ed25519"

	"github.com/superteam-academy/academy-server/pkg/academy/data/course"
	"github.com/superteam-academy/academy-server/pkg/academy/data/enrollment"
	"github.com/superteam-academy/academy-server/pkg/pointer"
	"github.com/superteam-academy/academy-server/pkg/solana"
	"github.com/superteam-academy/academy-server/pkg/solana/academy"
)

func (p *Program) getCourseByAccount(ctx context.Context, account ed25519.PublicKey) (*course.Record, error) {
	record, err := p.data.GetCourseByAddress(ctx, publicKeyString(account))
	if err == course.ErrCourseNotFound {
		return nil, ErrCourseNotFound
	} else if err != nil {
		return nil, err
	}
	return record, nil
}

func (p *Program) createCourse(ctx context.Context, ixn solana.Instruction) error {
	accounts, args, err := academy.ParseCreateCourseInstruction(ixn)
	if err != nil {
		return err
	}

	cfg, err := p.getConfig(ctx, accounts.Config)
	if err != nil {
		return err
	}

	if err := checkAuthority(accounts.Authority, cfg.Authority); err != nil {
		return err
	}

	if len(args.CourseId) == 0 || len(args.CourseId) > course.MaxCourseIdLength {
		return ErrInvalidCourseParameters
	}
	if args.Difficulty < course.MinDifficulty || args.Difficulty > course.MaxDifficulty {
		return ErrInvalidCourseParameters
	}
	if args.TrackLevel < course.MinTrackLevel || args.TrackLevel > course.MaxTrackLevel {
		return ErrInvalidCourseParameters
	}
	if args.LessonCount == 0 || args.LessonCount > enrollment.MaxLessonCount {
		return ErrInvalidCourseParameters
	}

	derived, bump, err := academy.GetCourseAddress(&academy.GetCourseAddressArgs{
		CourseId: args.CourseId,
	})
	if err != nil {
		return err
	}
	if err := checkDerivedAddress(accounts.Course, derived); err != nil {
		return err
	}

	var prerequisite *string
	if len(args.Prerequisite) > 0 {
		if len(accounts.Prerequisite) > 0 {
			if err := checkDerivedAddress(accounts.Prerequisite, args.Prerequisite); err != nil {
				return err
			}
		}

		prereq, err := p.getCourseByAccount(ctx, args.Prerequisite)
		if err != nil {
			return err
		}
		if !prereq.IsActive {
			return ErrCourseInactive
		}

		prerequisite = pointer.String(publicKeyString(args.Prerequisite))
	}

	now := p.clock()
	record := &course.Record{
		Address: publicKeyString(derived),
		Bump:    bump,

		CourseId:  args.CourseId,
		Creator:   publicKeyString(args.Creator),
		Authority: publicKeyString(args.Authority),

		ContentTxId: bytes.Clone(args.ContentTxId[:]),
		Version:     1,
		LessonCount: args.LessonCount,
		Difficulty:  args.Difficulty,
		XpPerLesson: args.XpPerLesson,
		TrackId:     args.TrackId,
		TrackLevel:  args.TrackLevel,

		Prerequisite: prerequisite,

		CompletionBonusXp:       args.CompletionBonusXp,
		CreatorRewardXp:         args.CreatorRewardXp,
		MinCompletionsForReward: args.MinCompletionsForReward,

		IsActive: true,

		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := p.data.CreateCourse(ctx, record); err != nil {
		if err == course.ErrCourseExists {
			return ErrCourseAlreadyExists
		}
		return err
	}

	p.log.WithField("course", args.CourseId).Info("course created")

	return nil
}

func (p *Program) updateCourse(ctx context.Context, ixn solana.Instruction) error {
	accounts, args, err := academy.ParseUpdateCourseInstruction(ixn)
	if err != nil {
		return err
	}

	record, err := p.getCourseByAccount(ctx, accounts.Course)
	if err != nil {
		return err
	}

	if err := checkAuthority(accounts.Authority, record.Authority); err != nil {
		return err
	}

	if args.ContentTxId != nil {
		record.ContentTxId = bytes.Clone(args.ContentTxId[:])
	}
	if args.IsActive != nil {
		record.IsActive = *args.IsActive
	}
	if args.CompletionBonusXp != nil {
		record.CompletionBonusXp = *args.CompletionBonusXp
	}
	if args.CreatorRewardXp != nil {
		record.CreatorRewardXp = *args.CreatorRewardXp
	}
	if args.MinCompletionsForReward != nil {
		record.MinCompletionsForReward = *args.MinCompletionsForReward
	}

	// Enrollments pin against the version, so every successful update
	// bumps it even when no field changed.
	record.Version++
	record.UpdatedAt = p.clock()

	return p.data.SaveCourse(ctx, record)
}
