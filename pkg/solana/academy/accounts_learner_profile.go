package academy

import (
	"bytes"
	"crypto/ed25519"
	"fmt"

	"github.com/mr-tron/base58"
)

const (
	MaxAchievementCount = 256

	LearnerProfileAccountSize = (8 + // discriminator
		32 + // authority
		2 + // current_streak
		2 + // longest_streak
		8 + // last_activity_date
		1 + // streak_freezes
		32 + // achievement_flags
		4 + // xp_earned_today
		2 + // last_xp_day
		2 + // referral_count
		1 + // has_referrer
		16 + // reserved
		1) // bump
)

var LearnerProfileAccountDiscriminator = []byte{byte(AccountTypeLearnerProfile), 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}

// LearnerProfileAccount tracks a learner's streak, XP, referral and
// achievement state.
//
// Seeds: ["learner", learner]
type LearnerProfileAccount struct {
	Authority        ed25519.PublicKey
	CurrentStreak    uint16
	LongestStreak    uint16
	LastActivityDate int64
	StreakFreezes    uint8
	AchievementFlags [4]uint64
	XpEarnedToday    uint32
	LastXpDay        uint16
	ReferralCount    uint16
	HasReferrer      bool
	Bump             uint8
}

func (obj *LearnerProfileAccount) Marshal() []byte {
	data := make([]byte, LearnerProfileAccountSize)

	var offset int

	putDiscriminator(data, LearnerProfileAccountDiscriminator, &offset)
	putKey(data, obj.Authority, &offset)
	putUint16(data, obj.CurrentStreak, &offset)
	putUint16(data, obj.LongestStreak, &offset)
	putInt64(data, obj.LastActivityDate, &offset)
	putUint8(data, obj.StreakFreezes, &offset)
	putUint64Array(data, obj.AchievementFlags, &offset)
	putUint32(data, obj.XpEarnedToday, &offset)
	putUint16(data, obj.LastXpDay, &offset)
	putUint16(data, obj.ReferralCount, &offset)
	putBool(data, obj.HasReferrer, &offset)
	offset += 16 // reserved
	putUint8(data, obj.Bump, &offset)

	return data
}

func (obj *LearnerProfileAccount) Unmarshal(data []byte) error {
	if len(data) < LearnerProfileAccountSize {
		return ErrInvalidAccountData
	}

	var offset int

	var discriminator []byte
	getDiscriminator(data, &discriminator, &offset)
	if !bytes.Equal(discriminator, LearnerProfileAccountDiscriminator) {
		return ErrInvalidAccountData
	}

	getKey(data, &obj.Authority, &offset)
	getUint16(data, &obj.CurrentStreak, &offset)
	getUint16(data, &obj.LongestStreak, &offset)
	getInt64(data, &obj.LastActivityDate, &offset)
	getUint8(data, &obj.StreakFreezes, &offset)
	getUint64Array(data, &obj.AchievementFlags, &offset)
	getUint32(data, &obj.XpEarnedToday, &offset)
	getUint16(data, &obj.LastXpDay, &offset)
	getUint16(data, &obj.ReferralCount, &offset)
	getBool(data, &obj.HasReferrer, &offset)
	offset += 16 // reserved
	getUint8(data, &obj.Bump, &offset)

	return nil
}

// IsAchievementClaimed reports whether the achievement at index has been
// claimed.
func (obj *LearnerProfileAccount) IsAchievementClaimed(index uint8) bool {
	word := index / 64
	bit := index % 64
	return obj.AchievementFlags[word]&(uint64(1)<<bit) != 0
}

// ClaimAchievement marks the achievement at index as claimed.
func (obj *LearnerProfileAccount) ClaimAchievement(index uint8) {
	word := index / 64
	bit := index % 64
	obj.AchievementFlags[word] |= uint64(1) << bit
}

func (obj *LearnerProfileAccount) String() string {
	return fmt.Sprintf(
		"LearnerProfileAccount{authority=%s,current_streak=%d,longest_streak=%d,last_activity_date=%d,streak_freezes=%d,xp_earned_today=%d,last_xp_day=%d,referral_count=%d,has_referrer=%v,bump=%d}",
		base58.Encode(obj.Authority),
		obj.CurrentStreak,
		obj.LongestStreak,
		obj.LastActivityDate,
		obj.StreakFreezes,
		obj.XpEarnedToday,
		obj.LastXpDay,
		obj.ReferralCount,
		obj.HasReferrer,
		obj.Bump,
	)
}
