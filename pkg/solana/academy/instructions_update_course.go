package academy

import (
	"crypto/ed25519"

	"github.com/superteam-academy/academy-server/pkg/solana"
)

// UpdateCourseInstructionArgs is a merge-patch: nil fields retain their
// prior values.
type UpdateCourseInstructionArgs struct {
	ContentTxId             *[ContentTxIdLength]byte
	IsActive                *bool
	CompletionBonusXp       *uint32
	CreatorRewardXp         *uint32
	MinCompletionsForReward *uint16
}

type UpdateCourseInstructionAccounts struct {
	Course    ed25519.PublicKey
	Authority ed25519.PublicKey
}

func getUpdateCourseInstructionArgsSize(args *UpdateCourseInstructionArgs) int {
	size := 5
	if args.ContentTxId != nil {
		size += ContentTxIdLength
	}
	if args.IsActive != nil {
		size += 1
	}
	if args.CompletionBonusXp != nil {
		size += 4
	}
	if args.CreatorRewardXp != nil {
		size += 4
	}
	if args.MinCompletionsForReward != nil {
		size += 2
	}
	return size
}

func NewUpdateCourseInstruction(
	accounts *UpdateCourseInstructionAccounts,
	args *UpdateCourseInstructionArgs,
) solana.Instruction {
	var offset int

	data := make([]byte, 1+getUpdateCourseInstructionArgsSize(args))

	putAcademyInstruction(data, AcademyInstructionUpdateCourse, &offset)
	if args.ContentTxId != nil {
		putUint8(data, 1, &offset)
		putData(data, args.ContentTxId[:], &offset)
	} else {
		putUint8(data, 0, &offset)
	}
	putOptionalBool(data, args.IsActive, &offset)
	putOptionalUint32(data, args.CompletionBonusXp, &offset)
	putOptionalUint32(data, args.CreatorRewardXp, &offset)
	putOptionalUint16(data, args.MinCompletionsForReward, &offset)

	return solana.Instruction{
		Program: PROGRAM_ID,

		Data: data,

		Accounts: []solana.AccountMeta{
			{
				PublicKey:  accounts.Course,
				IsWritable: true,
			},
			{
				PublicKey: accounts.Authority,
				IsSigner:  true,
			},
		},
	}
}

func ParseUpdateCourseInstruction(ixn solana.Instruction) (*UpdateCourseInstructionAccounts, *UpdateCourseInstructionArgs, error) {
	if err := checkProgram(ixn); err != nil {
		return nil, nil, err
	}
	if err := checkInstructionData(ixn, AcademyInstructionUpdateCourse, -1); err != nil {
		return nil, nil, err
	}
	if err := checkAccounts(ixn, 2, 1); err != nil {
		return nil, nil, err
	}

	var offset = 1
	var args UpdateCourseInstructionArgs
	if offset >= len(ixn.Data) {
		return nil, nil, ErrInvalidInstructionData
	}
	if ixn.Data[offset] == 1 {
		offset += 1
		if offset+ContentTxIdLength > len(ixn.Data) {
			return nil, nil, ErrInvalidInstructionData
		}
		var contentTxId [ContentTxIdLength]byte
		getData(ixn.Data, contentTxId[:], ContentTxIdLength, &offset)
		args.ContentTxId = &contentTxId
	} else {
		offset += 1
	}
	if !getOptionalBool(ixn.Data, &args.IsActive, &offset) {
		return nil, nil, ErrInvalidInstructionData
	}
	if !getOptionalUint32(ixn.Data, &args.CompletionBonusXp, &offset) {
		return nil, nil, ErrInvalidInstructionData
	}
	if !getOptionalUint32(ixn.Data, &args.CreatorRewardXp, &offset) {
		return nil, nil, ErrInvalidInstructionData
	}
	if !getOptionalUint16(ixn.Data, &args.MinCompletionsForReward, &offset) {
		return nil, nil, ErrInvalidInstructionData
	}
	if offset != len(ixn.Data) {
		return nil, nil, ErrInvalidInstructionData
	}

	accounts := &UpdateCourseInstructionAccounts{
		Course:    ixn.Accounts[0].PublicKey,
		Authority: ixn.Accounts[1].PublicKey,
	}
	return accounts, &args, nil
}
