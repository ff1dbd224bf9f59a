package course

import (
	"bytes"
	"errors"
	"time"

	"github.com/superteam-academy/academy-server/pkg/pointer"
)

const (
	MaxCourseIdLength = 32
	ContentTxIdLength = 32

	MinDifficulty = 1
	MaxDifficulty = 3

	MinTrackLevel = 1
	MaxTrackLevel = 3
)

// Record is the registry entry for a single course.
type Record struct {
	Id uint64

	Address string
	Bump    uint8

	CourseId  string
	Creator   string
	Authority string

	ContentTxId []byte
	Version     uint16
	LessonCount uint8
	Difficulty  uint8
	XpPerLesson uint32
	TrackId     uint16
	TrackLevel  uint8

	Prerequisite *string

	CompletionBonusXp       uint32
	CreatorRewardXp         uint32
	MinCompletionsForReward uint16

	TotalCompletions uint32
	TotalEnrollments uint32

	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r *Record) Validate() error {
	if len(r.Address) == 0 {
		return errors.New("address is required")
	}

	if len(r.CourseId) == 0 {
		return errors.New("course id is required")
	}

	if len(r.CourseId) > MaxCourseIdLength {
		return errors.New("course id is too long")
	}

	if len(r.Creator) == 0 {
		return errors.New("creator is required")
	}

	if len(r.Authority) == 0 {
		return errors.New("authority is required")
	}

	if len(r.ContentTxId) != ContentTxIdLength {
		return errors.New("content tx id must be 32 bytes")
	}

	if r.Version == 0 {
		return errors.New("version cannot be zero")
	}

	if r.LessonCount == 0 {
		return errors.New("lesson count cannot be zero")
	}

	if r.Difficulty < MinDifficulty || r.Difficulty > MaxDifficulty {
		return errors.New("difficulty is out of range")
	}

	if r.TrackLevel < MinTrackLevel || r.TrackLevel > MaxTrackLevel {
		return errors.New("track level is out of range")
	}

	if r.Prerequisite != nil && len(*r.Prerequisite) == 0 {
		return errors.New("prerequisite is empty")
	}

	return nil
}

func (r *Record) Clone() Record {
	return Record{
		Id: r.Id,

		Address: r.Address,
		Bump:    r.Bump,

		CourseId:  r.CourseId,
		Creator:   r.Creator,
		Authority: r.Authority,

		ContentTxId: bytes.Clone(r.ContentTxId),
		Version:     r.Version,
		LessonCount: r.LessonCount,
		Difficulty:  r.Difficulty,
		XpPerLesson: r.XpPerLesson,
		TrackId:     r.TrackId,
		TrackLevel:  r.TrackLevel,

		Prerequisite: pointer.StringCopy(r.Prerequisite),

		CompletionBonusXp:       r.CompletionBonusXp,
		CreatorRewardXp:         r.CreatorRewardXp,
		MinCompletionsForReward: r.MinCompletionsForReward,

		TotalCompletions: r.TotalCompletions,
		TotalEnrollments: r.TotalEnrollments,

		IsActive: r.IsActive,

		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func (r *Record) CopyTo(dst *Record) {
	dst.Id = r.Id

	dst.Address = r.Address
	dst.Bump = r.Bump

	dst.CourseId = r.CourseId
	dst.Creator = r.Creator
	dst.Authority = r.Authority

	dst.ContentTxId = bytes.Clone(r.ContentTxId)
	dst.Version = r.Version
	dst.LessonCount = r.LessonCount
	dst.Difficulty = r.Difficulty
	dst.XpPerLesson = r.XpPerLesson
	dst.TrackId = r.TrackId
	dst.TrackLevel = r.TrackLevel

	dst.Prerequisite = pointer.StringCopy(r.Prerequisite)

	dst.CompletionBonusXp = r.CompletionBonusXp
	dst.CreatorRewardXp = r.CreatorRewardXp
	dst.MinCompletionsForReward = r.MinCompletionsForReward

	dst.TotalCompletions = r.TotalCompletions
	dst.TotalEnrollments = r.TotalEnrollments

	dst.IsActive = r.IsActive

	dst.CreatedAt = r.CreatedAt
	dst.UpdatedAt = r.UpdatedAt
}
