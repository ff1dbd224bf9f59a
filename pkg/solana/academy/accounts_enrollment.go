package academy

import (
	"bytes"
	"crypto/ed25519"
	"fmt"
	"math/bits"

	"github.com/mr-tron/base58"
)

const (
	MaxLessonCount = 128

	EnrollmentAccountSize = (8 + // discriminator
		32 + // course
		2 + // enrolled_version
		8 + // enrolled_at
		9 + // completed_at
		32 + // lesson_flags
		33 + // credential_asset
		1 + // bonus_claimed
		7 + // reserved
		1) // bump
)

var EnrollmentAccountDiscriminator = []byte{byte(AccountTypeEnrollment), 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}

// EnrollmentAccount is a learner's progress through a single course.
//
// Seeds: ["enrollment", course_id, learner]
type EnrollmentAccount struct {
	Course          ed25519.PublicKey
	EnrolledVersion uint16
	EnrolledAt      int64
	CompletedAt     *int64
	LessonFlags     [4]uint64
	CredentialAsset ed25519.PublicKey // optional
	BonusClaimed    bool
	Bump            uint8
}

func (obj *EnrollmentAccount) Marshal() []byte {
	data := make([]byte, EnrollmentAccountSize)

	var offset int

	putDiscriminator(data, EnrollmentAccountDiscriminator, &offset)
	putKey(data, obj.Course, &offset)
	putUint16(data, obj.EnrolledVersion, &offset)
	putInt64(data, obj.EnrolledAt, &offset)
	putOptionalInt64(data, obj.CompletedAt, &offset)
	putUint64Array(data, obj.LessonFlags, &offset)
	putOptionalKey(data, obj.CredentialAsset, &offset)
	putBool(data, obj.BonusClaimed, &offset)
	offset += 7 // reserved
	putUint8(data, obj.Bump, &offset)

	return data
}

func (obj *EnrollmentAccount) Unmarshal(data []byte) error {
	if len(data) < EnrollmentAccountSize {
		return ErrInvalidAccountData
	}

	var offset int

	var discriminator []byte
	getDiscriminator(data, &discriminator, &offset)
	if !bytes.Equal(discriminator, EnrollmentAccountDiscriminator) {
		return ErrInvalidAccountData
	}

	getKey(data, &obj.Course, &offset)
	getUint16(data, &obj.EnrolledVersion, &offset)
	getInt64(data, &obj.EnrolledAt, &offset)
	if !getOptionalInt64(data, &obj.CompletedAt, &offset) {
		return ErrInvalidAccountData
	}
	getUint64Array(data, &obj.LessonFlags, &offset)
	if !getOptionalKey(data, &obj.CredentialAsset, &offset) {
		return ErrInvalidAccountData
	}
	getBool(data, &obj.BonusClaimed, &offset)
	offset += 7 // reserved
	getUint8(data, &obj.Bump, &offset)

	return nil
}

// IsLessonCompleted reports whether the lesson at index has been completed.
func (obj *EnrollmentAccount) IsLessonCompleted(index uint8) bool {
	if index >= MaxLessonCount {
		return false
	}
	word := index / 64
	bit := index % 64
	return obj.LessonFlags[word]&(uint64(1)<<bit) != 0
}

// CompleteLesson sets the bit for the lesson at index, returning false if
// it was already set.
func (obj *EnrollmentAccount) CompleteLesson(index uint8) bool {
	if index >= MaxLessonCount {
		return false
	}
	if obj.IsLessonCompleted(index) {
		return false
	}
	word := index / 64
	bit := index % 64
	obj.LessonFlags[word] |= uint64(1) << bit
	return true
}

// IsCourseCompleted reports whether all lessonCount lesson bits are set.
func (obj *EnrollmentAccount) IsCourseCompleted(lessonCount uint8) bool {
	for i := uint8(0); i < lessonCount; i++ {
		if !obj.IsLessonCompleted(i) {
			return false
		}
	}
	return true
}

// CompletedLessons counts the set lesson bits.
func (obj *EnrollmentAccount) CompletedLessons() int {
	var count int
	for _, word := range obj.LessonFlags {
		count += bits.OnesCount64(word)
	}
	return count
}

func (obj *EnrollmentAccount) String() string {
	var completedAt int64
	if obj.CompletedAt != nil {
		completedAt = *obj.CompletedAt
	}
	var credentialAsset string
	if obj.CredentialAsset != nil {
		credentialAsset = base58.Encode(obj.CredentialAsset)
	}

	return fmt.Sprintf(
		"EnrollmentAccount{course=%s,enrolled_version=%d,enrolled_at=%d,completed_at=%d,completed_lessons=%d,credential_asset=%s,bonus_claimed=%v,bump=%d}",
		base58.Encode(obj.Course),
		obj.EnrolledVersion,
		obj.EnrolledAt,
		completedAt,
		obj.CompletedLessons(),
		credentialAsset,
		obj.BonusClaimed,
		obj.Bump,
	)
}
