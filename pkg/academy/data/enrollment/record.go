package enrollment

import (
	"errors"
	"math/bits"
	"time"

	"github.com/superteam-academy/academy-server/pkg/pointer"
)

const MaxLessonCount = 128

// Record is a learner's progress through a single course.
type Record struct {
	Id uint64

	Address string
	Bump    uint8

	CourseId string
	Course   string
	Learner  string

	EnrolledVersion uint16
	EnrolledAt      time.Time
	CompletedAt     *time.Time

	LessonFlags [4]uint64

	CredentialAsset       *string
	CredentialMetadataUri *string

	BonusClaimed bool
}

func (r *Record) Validate() error {
	if len(r.Address) == 0 {
		return errors.New("address is required")
	}

	if len(r.CourseId) == 0 {
		return errors.New("course id is required")
	}

	if len(r.Course) == 0 {
		return errors.New("course is required")
	}

	if len(r.Learner) == 0 {
		return errors.New("learner is required")
	}

	if r.EnrolledVersion == 0 {
		return errors.New("enrolled version cannot be zero")
	}

	if r.CredentialAsset != nil && len(*r.CredentialAsset) == 0 {
		return errors.New("credential asset is empty")
	}

	return nil
}

// IsLessonCompleted reports whether the lesson at index has been completed.
func (r *Record) IsLessonCompleted(index uint8) bool {
	if index >= MaxLessonCount {
		return false
	}
	word := index / 64
	bit := index % 64
	return r.LessonFlags[word]&(uint64(1)<<bit) != 0
}

// CompleteLesson sets the bit for the lesson at index, returning false if
// it was already set.
func (r *Record) CompleteLesson(index uint8) bool {
	if index >= MaxLessonCount {
		return false
	}
	if r.IsLessonCompleted(index) {
		return false
	}
	word := index / 64
	bit := index % 64
	r.LessonFlags[word] |= uint64(1) << bit
	return true
}

// IsCourseCompleted reports whether all lessonCount lesson bits are set.
func (r *Record) IsCourseCompleted(lessonCount uint8) bool {
	for i := uint8(0); i < lessonCount; i++ {
		if !r.IsLessonCompleted(i) {
			return false
		}
	}
	return true
}

// CompletedLessons counts the set lesson bits.
func (r *Record) CompletedLessons() int {
	var count int
	for _, word := range r.LessonFlags {
		count += bits.OnesCount64(word)
	}
	return count
}

func (r *Record) Clone() Record {
	return Record{
		Id: r.Id,

		Address: r.Address,
		Bump:    r.Bump,

		CourseId: r.CourseId,
		Course:   r.Course,
		Learner:  r.Learner,

		EnrolledVersion: r.EnrolledVersion,
		EnrolledAt:      r.EnrolledAt,
		CompletedAt:     pointer.TimeCopy(r.CompletedAt),

		LessonFlags: r.LessonFlags,

		CredentialAsset:       pointer.StringCopy(r.CredentialAsset),
		CredentialMetadataUri: pointer.StringCopy(r.CredentialMetadataUri),

		BonusClaimed: r.BonusClaimed,
	}
}

func (r *Record) CopyTo(dst *Record) {
	dst.Id = r.Id

	dst.Address = r.Address
	dst.Bump = r.Bump

	dst.CourseId = r.CourseId
	dst.Course = r.Course
	dst.Learner = r.Learner

	dst.EnrolledVersion = r.EnrolledVersion
	dst.EnrolledAt = r.EnrolledAt
	dst.CompletedAt = pointer.TimeCopy(r.CompletedAt)

	dst.LessonFlags = r.LessonFlags

	dst.CredentialAsset = pointer.StringCopy(r.CredentialAsset)
	dst.CredentialMetadataUri = pointer.StringCopy(r.CredentialMetadataUri)

	dst.BonusClaimed = r.BonusClaimed
}
