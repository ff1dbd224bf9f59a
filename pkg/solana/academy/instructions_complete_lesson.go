package academy

import (
	"crypto/ed25519"

	"github.com/superteam-academy/academy-server/pkg/solana"
)

const (
	CompleteLessonInstructionArgsSize = 1 // lesson_index
)

type CompleteLessonInstructionArgs struct {
	LessonIndex uint8
}

type CompleteLessonInstructionAccounts struct {
	BackendSigner  ed25519.PublicKey
	Config         ed25519.PublicKey
	Course         ed25519.PublicKey
	Learner        ed25519.PublicKey
	LearnerProfile ed25519.PublicKey
	Enrollment     ed25519.PublicKey
}

func NewCompleteLessonInstruction(
	accounts *CompleteLessonInstructionAccounts,
	args *CompleteLessonInstructionArgs,
) solana.Instruction {
	var offset int

	data := make([]byte, 1+CompleteLessonInstructionArgsSize)

	putAcademyInstruction(data, AcademyInstructionCompleteLesson, &offset)
	putUint8(data, args.LessonIndex, &offset)

	return solana.Instruction{
		Program: PROGRAM_ID,

		Data: data,

		Accounts: []solana.AccountMeta{
			{
				PublicKey: accounts.BackendSigner,
				IsSigner:  true,
			},
			{
				PublicKey: accounts.Config,
			},
			{
				PublicKey:  accounts.Course,
				IsWritable: true,
			},
			{
				PublicKey: accounts.Learner,
			},
			{
				PublicKey:  accounts.LearnerProfile,
				IsWritable: true,
			},
			{
				PublicKey:  accounts.Enrollment,
				IsWritable: true,
			},
		},
	}
}

func ParseCompleteLessonInstruction(ixn solana.Instruction) (*CompleteLessonInstructionAccounts, *CompleteLessonInstructionArgs, error) {
	if err := checkProgram(ixn); err != nil {
		return nil, nil, err
	}
	if err := checkInstructionData(ixn, AcademyInstructionCompleteLesson, 1+CompleteLessonInstructionArgsSize); err != nil {
		return nil, nil, err
	}
	if err := checkAccounts(ixn, 6, 0); err != nil {
		return nil, nil, err
	}

	var offset = 1
	var args CompleteLessonInstructionArgs
	getUint8(ixn.Data, &args.LessonIndex, &offset)

	accounts := &CompleteLessonInstructionAccounts{
		BackendSigner:  ixn.Accounts[0].PublicKey,
		Config:         ixn.Accounts[1].PublicKey,
		Course:         ixn.Accounts[2].PublicKey,
		Learner:        ixn.Accounts[3].PublicKey,
		LearnerProfile: ixn.Accounts[4].PublicKey,
		Enrollment:     ixn.Accounts[5].PublicKey,
	}
	return accounts, &args, nil
}
