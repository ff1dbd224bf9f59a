package program

import (
	"context"
	"crypto/ed25519"

	"github.com/superteam-academy/academy-server/pkg/academy/data/config"
	"github.com/superteam-academy/academy-server/pkg/solana"
	"github.com/superteam-academy/academy-server/pkg/solana/academy"
)

// getConfig loads the singleton config and rejects instructions that
// supply a config account other than the derived one.
func (p *Program) getConfig(ctx context.Context, account ed25519.PublicKey) (*config.Record, error) {
	record, err := p.data.GetConfig(ctx)
	if err == config.ErrConfigNotFound {
		return nil, ErrPlatformNotInitialized
	} else if err != nil {
		return nil, err
	}

	if publicKeyString(account) != record.Address {
		return nil, ErrAddressMismatch
	}

	return record, nil
}

func checkAuthority(signer ed25519.PublicKey, expected string) error {
	if publicKeyString(signer) != expected {
		return ErrInvalidAuthority
	}
	return nil
}

func checkBackendSigner(signer ed25519.PublicKey, cfg *config.Record) error {
	if publicKeyString(signer) != cfg.BackendSigner {
		return ErrInvalidBackendSigner
	}
	return nil
}

func (p *Program) initialize(ctx context.Context, ixn solana.Instruction) error {
	accounts, args, err := academy.ParseInitializeInstruction(ixn)
	if err != nil {
		return err
	}

	derived, bump, err := academy.GetConfigAddress()
	if err != nil {
		return err
	}
	if err := checkDerivedAddress(accounts.Config, derived); err != nil {
		return err
	}

	record := &config.Record{
		Address: publicKeyString(derived),
		Bump:    bump,

		Authority:     publicKeyString(accounts.Authority),
		BackendSigner: publicKeyString(accounts.BackendSigner),

		// Season 0 is a placeholder until the first season is created
		CurrentSeason: 0,
		SeasonClosed:  true,

		MaxDailyXp:       args.MaxDailyXp,
		MaxAchievementXp: args.MaxAchievementXp,

		LastUpdatedAt: p.clock(),
	}

	if err := p.data.PutConfig(ctx, record); err != nil {
		if err == config.ErrConfigExists {
			return ErrPlatformAlreadyInitialized
		}
		return err
	}

	p.log.WithField("authority", record.Authority).Info("platform initialized")

	return nil
}

func (p *Program) updateConfig(ctx context.Context, ixn solana.Instruction) error {
	accounts, args, err := academy.ParseUpdateConfigInstruction(ixn)
	if err != nil {
		return err
	}

	record, err := p.getConfig(ctx, accounts.Config)
	if err != nil {
		return err
	}

	if err := checkAuthority(accounts.Authority, record.Authority); err != nil {
		return err
	}

	if len(args.BackendSigner) > 0 {
		record.BackendSigner = publicKeyString(args.BackendSigner)
	}
	if args.MaxDailyXp != nil {
		record.MaxDailyXp = *args.MaxDailyXp
	}
	if args.MaxAchievementXp != nil {
		record.MaxAchievementXp = *args.MaxAchievementXp
	}
	record.LastUpdatedAt = p.clock()

	return p.data.SaveConfig(ctx, record)
}

func (p *Program) createSeason(ctx context.Context, ixn solana.Instruction) error {
	accounts, args, err := academy.ParseCreateSeasonInstruction(ixn)
	if err != nil {
		return err
	}

	record, err := p.getConfig(ctx, accounts.Config)
	if err != nil {
		return err
	}

	if err := checkAuthority(accounts.Authority, record.Authority); err != nil {
		return err
	}

	if args.Season != record.CurrentSeason+1 {
		return ErrInvalidSeasonNumber
	}

	if record.CurrentSeason > 0 && !record.SeasonClosed {
		return ErrSeasonNotClosed
	}

	now := p.clock()
	record.CurrentSeason = args.Season
	record.CurrentMint = publicKeyString(accounts.XpMint)
	record.SeasonClosed = false
	record.SeasonStartedAt = now
	record.LastUpdatedAt = now

	if err := p.data.SaveConfig(ctx, record); err != nil {
		return err
	}

	p.log.WithField("season", args.Season).Info("season created")

	return nil
}

func (p *Program) closeSeason(ctx context.Context, ixn solana.Instruction) error {
	accounts, err := academy.ParseCloseSeasonInstruction(ixn)
	if err != nil {
		return err
	}

	record, err := p.getConfig(ctx, accounts.Config)
	if err != nil {
		return err
	}

	if err := checkAuthority(accounts.Authority, record.Authority); err != nil {
		return err
	}

	if record.CurrentSeason == 0 || record.SeasonClosed {
		return ErrSeasonNotActive
	}

	record.SeasonClosed = true
	record.LastUpdatedAt = p.clock()

	if err := p.data.SaveConfig(ctx, record); err != nil {
		return err
	}

	p.log.WithField("season", record.CurrentSeason).Info("season closed")

	return nil
}
