package config

import (
	"errors"
	"time"
)

// Record is the singleton platform configuration.
type Record struct {
	Id uint64

	Address string
	Bump    uint8

	Authority     string
	BackendSigner string

	CurrentSeason   uint16
	CurrentMint     string
	SeasonClosed    bool
	SeasonStartedAt time.Time

	MaxDailyXp       uint32
	MaxAchievementXp uint32

	LastUpdatedAt time.Time
}

func (r *Record) Validate() error {
	if len(r.Address) == 0 {
		return errors.New("address is required")
	}

	if len(r.Authority) == 0 {
		return errors.New("authority is required")
	}

	if len(r.BackendSigner) == 0 {
		return errors.New("backend signer is required")
	}

	return nil
}

func (r *Record) Clone() Record {
	return Record{
		Id: r.Id,

		Address: r.Address,
		Bump:    r.Bump,

		Authority:     r.Authority,
		BackendSigner: r.BackendSigner,

		CurrentSeason:   r.CurrentSeason,
		CurrentMint:     r.CurrentMint,
		SeasonClosed:    r.SeasonClosed,
		SeasonStartedAt: r.SeasonStartedAt,

		MaxDailyXp:       r.MaxDailyXp,
		MaxAchievementXp: r.MaxAchievementXp,

		LastUpdatedAt: r.LastUpdatedAt,
	}
}

func (r *Record) CopyTo(dst *Record) {
	dst.Id = r.Id

	dst.Address = r.Address
	dst.Bump = r.Bump

	dst.Authority = r.Authority
	dst.BackendSigner = r.BackendSigner

	dst.CurrentSeason = r.CurrentSeason
	dst.CurrentMint = r.CurrentMint
	dst.SeasonClosed = r.SeasonClosed
	dst.SeasonStartedAt = r.SeasonStartedAt

	dst.MaxDailyXp = r.MaxDailyXp
	dst.MaxAchievementXp = r.MaxAchievementXp

	dst.LastUpdatedAt = r.LastUpdatedAt
}
