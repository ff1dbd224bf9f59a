package academy

import (
	"crypto/ed25519"

	"github.com/superteam-academy/academy-server/pkg/solana"
)

type CreateCourseInstructionArgs struct {
	CourseId                string
	Creator                 ed25519.PublicKey
	Authority               ed25519.PublicKey
	ContentTxId             [ContentTxIdLength]byte
	LessonCount             uint8
	Difficulty              uint8
	XpPerLesson             uint32
	TrackId                 uint16
	TrackLevel              uint8
	Prerequisite            ed25519.PublicKey // optional
	CompletionBonusXp       uint32
	CreatorRewardXp         uint32
	MinCompletionsForReward uint16
}

type CreateCourseInstructionAccounts struct {
	Payer        ed25519.PublicKey
	Config       ed25519.PublicKey
	Authority    ed25519.PublicKey
	Course       ed25519.PublicKey
	Prerequisite ed25519.PublicKey // optional
}

func getCreateCourseInstructionArgsSize(args *CreateCourseInstructionArgs) int {
	size := (4 + len(args.CourseId) + // course_id
		32 + // creator
		32 + // authority
		ContentTxIdLength + // content_tx_id
		1 + // lesson_count
		1 + // difficulty
		4 + // xp_per_lesson
		2 + // track_id
		1 + // track_level
		1 + // prerequisite tag
		4 + // completion_bonus_xp
		4 + // creator_reward_xp
		2) // min_completions_for_reward
	if args.Prerequisite != nil {
		size += 32
	}
	return size
}

func NewCreateCourseInstruction(
	accounts *CreateCourseInstructionAccounts,
	args *CreateCourseInstructionArgs,
) solana.Instruction {
	var offset int

	data := make([]byte, 1+getCreateCourseInstructionArgsSize(args))

	putAcademyInstruction(data, AcademyInstructionCreateCourse, &offset)
	putString(data, args.CourseId, &offset)
	putKey(data, args.Creator, &offset)
	putKey(data, args.Authority, &offset)
	putData(data, args.ContentTxId[:], &offset)
	putUint8(data, args.LessonCount, &offset)
	putUint8(data, args.Difficulty, &offset)
	putUint32(data, args.XpPerLesson, &offset)
	putUint16(data, args.TrackId, &offset)
	putUint8(data, args.TrackLevel, &offset)
	putOptionalKey(data, args.Prerequisite, &offset)
	putUint32(data, args.CompletionBonusXp, &offset)
	putUint32(data, args.CreatorRewardXp, &offset)
	putUint16(data, args.MinCompletionsForReward, &offset)

	metas := []solana.AccountMeta{
		{
			PublicKey:  accounts.Payer,
			IsWritable: true,
			IsSigner:   true,
		},
		{
			PublicKey: accounts.Config,
		},
		{
			PublicKey: accounts.Authority,
			IsSigner:  true,
		},
		{
			PublicKey:  accounts.Course,
			IsWritable: true,
		},
	}
	if accounts.Prerequisite != nil {
		metas = append(metas, solana.AccountMeta{
			PublicKey: accounts.Prerequisite,
		})
	}
	metas = append(metas, solana.AccountMeta{
		PublicKey: SYSTEM_PROGRAM_ID,
	})

	return solana.Instruction{
		Program:  PROGRAM_ID,
		Data:     data,
		Accounts: metas,
	}
}

func ParseCreateCourseInstruction(ixn solana.Instruction) (*CreateCourseInstructionAccounts, *CreateCourseInstructionArgs, error) {
	if err := checkProgram(ixn); err != nil {
		return nil, nil, err
	}
	if err := checkInstructionData(ixn, AcademyInstructionCreateCourse, -1); err != nil {
		return nil, nil, err
	}
	if err := checkAccounts(ixn, 4, 0, 2); err != nil {
		return nil, nil, err
	}

	var offset = 1
	var args CreateCourseInstructionArgs
	if !getString(ixn.Data, &args.CourseId, MaxCourseIdLength, &offset) {
		return nil, nil, ErrInvalidInstructionData
	}
	if len(ixn.Data) < offset+32+32+ContentTxIdLength+1+1+4+2+1 {
		return nil, nil, ErrInvalidInstructionData
	}
	getKey(ixn.Data, &args.Creator, &offset)
	getKey(ixn.Data, &args.Authority, &offset)
	getData(ixn.Data, args.ContentTxId[:], ContentTxIdLength, &offset)
	getUint8(ixn.Data, &args.LessonCount, &offset)
	getUint8(ixn.Data, &args.Difficulty, &offset)
	getUint32(ixn.Data, &args.XpPerLesson, &offset)
	getUint16(ixn.Data, &args.TrackId, &offset)
	getUint8(ixn.Data, &args.TrackLevel, &offset)
	if !getOptionalKey(ixn.Data, &args.Prerequisite, &offset) {
		return nil, nil, ErrInvalidInstructionData
	}
	if len(ixn.Data) != offset+4+4+2 {
		return nil, nil, ErrInvalidInstructionData
	}
	getUint32(ixn.Data, &args.CompletionBonusXp, &offset)
	getUint32(ixn.Data, &args.CreatorRewardXp, &offset)
	getUint16(ixn.Data, &args.MinCompletionsForReward, &offset)

	accounts := &CreateCourseInstructionAccounts{
		Payer:     ixn.Accounts[0].PublicKey,
		Config:    ixn.Accounts[1].PublicKey,
		Authority: ixn.Accounts[2].PublicKey,
		Course:    ixn.Accounts[3].PublicKey,
	}
	if args.Prerequisite != nil && len(ixn.Accounts) >= 6 {
		accounts.Prerequisite = ixn.Accounts[4].PublicKey
	}
	return accounts, &args, nil
}
