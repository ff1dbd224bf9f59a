package program

import (
	"context"
	"crypto/ed25519"
	"math"

	"github.com/superteam-academy/academy-server/pkg/academy/data/learner"
	"github.com/superteam-academy/academy-server/pkg/academy/data/reward"
	"github.com/superteam-academy/academy-server/pkg/pointer"
	"github.com/superteam-academy/academy-server/pkg/solana"
	"github.com/superteam-academy/academy-server/pkg/solana/academy"
)

func (p *Program) getLearnerProfile(ctx context.Context, owner, account ed25519.PublicKey) (*learner.Record, error) {
	record, err := p.data.GetLearnerProfile(ctx, publicKeyString(owner))
	if err == learner.ErrLearnerProfileNotFound {
		return nil, ErrLearnerNotFound
	} else if err != nil {
		return nil, err
	}

	if publicKeyString(account) != record.Address {
		return nil, ErrAddressMismatch
	}

	return record, nil
}

func (p *Program) initLearner(ctx context.Context, ixn solana.Instruction) error {
	accounts, err := academy.ParseInitLearnerInstruction(ixn)
	if err != nil {
		return err
	}

	derived, bump, err := academy.GetLearnerProfileAddress(&academy.GetLearnerProfileAddressArgs{
		Learner: accounts.Learner,
	})
	if err != nil {
		return err
	}
	if err := checkDerivedAddress(accounts.Profile, derived); err != nil {
		return err
	}

	now := p.clock()
	record := &learner.Record{
		Address: publicKeyString(derived),
		Bump:    bump,

		Owner: publicKeyString(accounts.Learner),

		LastActivityDate: now,
		CreatedAt:        now,
	}

	if err := p.data.CreateLearnerProfile(ctx, record); err != nil {
		if err == learner.ErrLearnerProfileExists {
			return ErrLearnerAlreadyExists
		}
		return err
	}

	p.log.WithField("learner", record.Owner).Info("learner initialized")

	return nil
}

func (p *Program) registerReferral(ctx context.Context, ixn solana.Instruction) error {
	accounts, err := academy.ParseRegisterReferralInstruction(ixn)
	if err != nil {
		return err
	}

	if publicKeyString(accounts.Learner) == publicKeyString(accounts.Referrer) {
		return ErrSelfReferral
	}

	profile, err := p.getLearnerProfile(ctx, accounts.Learner, accounts.LearnerProfile)
	if err != nil {
		return err
	}

	if profile.Referrer != nil {
		return ErrAlreadyReferred
	}

	referrerProfile, err := p.getLearnerProfile(ctx, accounts.Referrer, accounts.ReferrerProfile)
	if err != nil {
		return err
	}

	profile.Referrer = pointer.String(referrerProfile.Owner)
	referrerProfile.ReferralCount++

	if err := p.data.SaveLearnerProfile(ctx, profile); err != nil {
		return err
	}
	return p.data.SaveLearnerProfile(ctx, referrerProfile)
}

func (p *Program) claimAchievement(ctx context.Context, ixn solana.Instruction) error {
	accounts, args, err := academy.ParseClaimAchievementInstruction(ixn)
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

	// Achievement XP mints against the season mint, so a season must be
	// open and the supplied mint must be the current one.
	if cfg.CurrentSeason == 0 || cfg.SeasonClosed {
		return ErrSeasonNotActive
	}
	if publicKeyString(accounts.XpMint) != cfg.CurrentMint {
		return ErrSeasonNotActive
	}

	profile, err := p.getLearnerProfile(ctx, accounts.Learner, accounts.LearnerProfile)
	if err != nil {
		return err
	}

	if profile.IsAchievementClaimed(args.AchievementIndex) {
		return ErrAchievementClaimed
	}

	cappedReward := args.XpReward
	if cappedReward > cfg.MaxAchievementXp {
		cappedReward = cfg.MaxAchievementXp
	}

	credited, err := grantXpUnderDailyCap(cfg, profile, p.clock(), cappedReward)
	if err != nil {
		return err
	}

	profile.ClaimAchievement(args.AchievementIndex)

	if err := p.data.SaveLearnerProfile(ctx, profile); err != nil {
		return err
	}

	return p.appendReward(ctx, profile.Owner, reward.KindAchievement, uint64(credited), cfg, nil)
}

func (p *Program) awardStreakFreeze(ctx context.Context, ixn solana.Instruction) error {
	accounts, err := academy.ParseAwardStreakFreezeInstruction(ixn)
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

	profile, err := p.getLearnerProfile(ctx, accounts.Learner, accounts.LearnerProfile)
	if err != nil {
		return err
	}

	if profile.StreakFreezes == math.MaxUint8 {
		return ErrStreakFreezeLimit
	}
	profile.StreakFreezes++

	return p.data.SaveLearnerProfile(ctx, profile)
}
