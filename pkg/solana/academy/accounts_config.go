package academy

import (
	"bytes"
	"crypto/ed25519"
	"fmt"

	"github.com/mr-tron/base58"
)

const (
	ConfigAccountSize = (8 + // discriminator
		32 + // authority
		32 + // backend_signer
		2 + // current_season
		32 + // current_mint
		1 + // season_closed
		8 + // season_started_at
		4 + // max_daily_xp
		4 + // max_achievement_xp
		32 + // reserved
		1) // bump
)

var ConfigAccountDiscriminator = []byte{byte(AccountTypeConfig), 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}

// ConfigAccount is the singleton platform configuration.
//
// Seeds: ["config"]
type ConfigAccount struct {
	Authority        ed25519.PublicKey
	BackendSigner    ed25519.PublicKey
	CurrentSeason    uint16
	CurrentMint      ed25519.PublicKey
	SeasonClosed     bool
	SeasonStartedAt  int64
	MaxDailyXp       uint32
	MaxAchievementXp uint32
	Bump             uint8
}

func (obj *ConfigAccount) Marshal() []byte {
	data := make([]byte, ConfigAccountSize)

	var offset int

	putDiscriminator(data, ConfigAccountDiscriminator, &offset)
	putKey(data, obj.Authority, &offset)
	putKey(data, obj.BackendSigner, &offset)
	putUint16(data, obj.CurrentSeason, &offset)
	putKey(data, obj.CurrentMint, &offset)
	putBool(data, obj.SeasonClosed, &offset)
	putInt64(data, obj.SeasonStartedAt, &offset)
	putUint32(data, obj.MaxDailyXp, &offset)
	putUint32(data, obj.MaxAchievementXp, &offset)
	offset += 32 // reserved
	putUint8(data, obj.Bump, &offset)

	return data
}

func (obj *ConfigAccount) Unmarshal(data []byte) error {
	if len(data) < ConfigAccountSize {
		return ErrInvalidAccountData
	}

	var offset int

	var discriminator []byte
	getDiscriminator(data, &discriminator, &offset)
	if !bytes.Equal(discriminator, ConfigAccountDiscriminator) {
		return ErrInvalidAccountData
	}

	getKey(data, &obj.Authority, &offset)
	getKey(data, &obj.BackendSigner, &offset)
	getUint16(data, &obj.CurrentSeason, &offset)
	getKey(data, &obj.CurrentMint, &offset)
	getBool(data, &obj.SeasonClosed, &offset)
	getInt64(data, &obj.SeasonStartedAt, &offset)
	getUint32(data, &obj.MaxDailyXp, &offset)
	getUint32(data, &obj.MaxAchievementXp, &offset)
	offset += 32 // reserved
	getUint8(data, &obj.Bump, &offset)

	return nil
}

func (obj *ConfigAccount) String() string {
	return fmt.Sprintf(
		"ConfigAccount{authority=%s,backend_signer=%s,current_season=%d,current_mint=%s,season_closed=%v,season_started_at=%d,max_daily_xp=%d,max_achievement_xp=%d,bump=%d}",
		base58.Encode(obj.Authority),
		base58.Encode(obj.BackendSigner),
		obj.CurrentSeason,
		base58.Encode(obj.CurrentMint),
		obj.SeasonClosed,
		obj.SeasonStartedAt,
		obj.MaxDailyXp,
		obj.MaxAchievementXp,
		obj.Bump,
	)
}
