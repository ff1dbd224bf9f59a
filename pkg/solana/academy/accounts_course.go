package academy

import (
	"bytes"
	"crypto/ed25519"
	"fmt"

	"github.com/mr-tron/base58"
)

const (
	MaxCourseIdLength  = 32
	ContentTxIdLength  = 32
	MinDifficultyLevel = 1
	MaxDifficultyLevel = 3
	MinTrackLevel      = 1
	MaxTrackLevel      = 3

	CourseAccountSize = (8 + // discriminator
		4 + MaxCourseIdLength + // course_id
		32 + // creator
		32 + // authority
		32 + // content_tx_id
		2 + // version
		1 + // lesson_count
		1 + // difficulty
		4 + // xp_per_lesson
		2 + // track_id
		1 + // track_level
		33 + // prerequisite
		4 + // completion_bonus_xp
		4 + // creator_reward_xp
		2 + // min_completions_for_reward
		4 + // total_completions
		4 + // total_enrollments
		1 + // is_active
		8 + // created_at
		8 + // updated_at
		16 + // reserved
		1) // bump
)

var CourseAccountDiscriminator = []byte{byte(AccountTypeCourse), 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}

// CourseAccount is the registry entry for a single course.
//
// Seeds: ["course", course_id]
type CourseAccount struct {
	CourseId                string
	Creator                 ed25519.PublicKey
	Authority               ed25519.PublicKey
	ContentTxId             [ContentTxIdLength]byte
	Version                 uint16
	LessonCount             uint8
	Difficulty              uint8
	XpPerLesson             uint32
	TrackId                 uint16
	TrackLevel              uint8
	Prerequisite            ed25519.PublicKey // optional
	CompletionBonusXp       uint32
	CreatorRewardXp         uint32
	MinCompletionsForReward uint16
	TotalCompletions        uint32
	TotalEnrollments        uint32
	IsActive                bool
	CreatedAt               int64
	UpdatedAt               int64
	Bump                    uint8
}

func (obj *CourseAccount) Marshal() []byte {
	data := make([]byte, CourseAccountSize)

	var offset int

	putDiscriminator(data, CourseAccountDiscriminator, &offset)
	putString(data, obj.CourseId, &offset)
	putKey(data, obj.Creator, &offset)
	putKey(data, obj.Authority, &offset)
	putData(data, obj.ContentTxId[:], &offset)
	putUint16(data, obj.Version, &offset)
	putUint8(data, obj.LessonCount, &offset)
	putUint8(data, obj.Difficulty, &offset)
	putUint32(data, obj.XpPerLesson, &offset)
	putUint16(data, obj.TrackId, &offset)
	putUint8(data, obj.TrackLevel, &offset)
	putOptionalKey(data, obj.Prerequisite, &offset)
	putUint32(data, obj.CompletionBonusXp, &offset)
	putUint32(data, obj.CreatorRewardXp, &offset)
	putUint16(data, obj.MinCompletionsForReward, &offset)
	putUint32(data, obj.TotalCompletions, &offset)
	putUint32(data, obj.TotalEnrollments, &offset)
	putBool(data, obj.IsActive, &offset)
	putInt64(data, obj.CreatedAt, &offset)
	putInt64(data, obj.UpdatedAt, &offset)
	offset += 16 // reserved
	putUint8(data, obj.Bump, &offset)

	return data
}

func (obj *CourseAccount) Unmarshal(data []byte) error {
	if len(data) < CourseAccountSize {
		return ErrInvalidAccountData
	}

	var offset int

	var discriminator []byte
	getDiscriminator(data, &discriminator, &offset)
	if !bytes.Equal(discriminator, CourseAccountDiscriminator) {
		return ErrInvalidAccountData
	}

	if !getString(data, &obj.CourseId, MaxCourseIdLength, &offset) {
		return ErrInvalidAccountData
	}
	getKey(data, &obj.Creator, &offset)
	getKey(data, &obj.Authority, &offset)
	getData(data, obj.ContentTxId[:], ContentTxIdLength, &offset)
	getUint16(data, &obj.Version, &offset)
	getUint8(data, &obj.LessonCount, &offset)
	getUint8(data, &obj.Difficulty, &offset)
	getUint32(data, &obj.XpPerLesson, &offset)
	getUint16(data, &obj.TrackId, &offset)
	getUint8(data, &obj.TrackLevel, &offset)
	if !getOptionalKey(data, &obj.Prerequisite, &offset) {
		return ErrInvalidAccountData
	}
	getUint32(data, &obj.CompletionBonusXp, &offset)
	getUint32(data, &obj.CreatorRewardXp, &offset)
	getUint16(data, &obj.MinCompletionsForReward, &offset)
	getUint32(data, &obj.TotalCompletions, &offset)
	getUint32(data, &obj.TotalEnrollments, &offset)
	getBool(data, &obj.IsActive, &offset)
	getInt64(data, &obj.CreatedAt, &offset)
	getInt64(data, &obj.UpdatedAt, &offset)
	offset += 16 // reserved
	getUint8(data, &obj.Bump, &offset)

	return nil
}

func (obj *CourseAccount) String() string {
	var prerequisite string
	if obj.Prerequisite != nil {
		prerequisite = base58.Encode(obj.Prerequisite)
	}

	return fmt.Sprintf(
		"CourseAccount{course_id=%s,creator=%s,authority=%s,version=%d,lesson_count=%d,difficulty=%d,xp_per_lesson=%d,track_id=%d,track_level=%d,prerequisite=%s,completion_bonus_xp=%d,creator_reward_xp=%d,min_completions_for_reward=%d,total_completions=%d,total_enrollments=%d,is_active=%v,bump=%d}",
		obj.CourseId,
		base58.Encode(obj.Creator),
		base58.Encode(obj.Authority),
		obj.Version,
		obj.LessonCount,
		obj.Difficulty,
		obj.XpPerLesson,
		obj.TrackId,
		obj.TrackLevel,
		prerequisite,
		obj.CompletionBonusXp,
		obj.CreatorRewardXp,
		obj.MinCompletionsForReward,
		obj.TotalCompletions,
		obj.TotalEnrollments,
		obj.IsActive,
		obj.Bump,
	)
}
