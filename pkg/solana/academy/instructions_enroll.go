package academy

import (
	"crypto/ed25519"

	"github.com/superteam-academy/academy-server/pkg/solana"
)

type EnrollInstructionArgs struct {
	CourseId string
}

type EnrollInstructionAccounts struct {
	Payer                  ed25519.PublicKey
	Learner                ed25519.PublicKey
	LearnerProfile         ed25519.PublicKey
	Course                 ed25519.PublicKey
	Enrollment             ed25519.PublicKey
	PrerequisiteEnrollment ed25519.PublicKey // optional
}

func NewEnrollInstruction(
	accounts *EnrollInstructionAccounts,
	args *EnrollInstructionArgs,
) solana.Instruction {
	var offset int

	data := make([]byte, 1+4+len(args.CourseId))

	putAcademyInstruction(data, AcademyInstructionEnroll, &offset)
	putString(data, args.CourseId, &offset)

	metas := []solana.AccountMeta{
		{
			PublicKey:  accounts.Payer,
			IsWritable: true,
			IsSigner:   true,
		},
		{
			PublicKey: accounts.Learner,
			IsSigner:  true,
		},
		{
			PublicKey: accounts.LearnerProfile,
		},
		{
			PublicKey:  accounts.Course,
			IsWritable: true,
		},
		{
			PublicKey:  accounts.Enrollment,
			IsWritable: true,
		},
	}
	if accounts.PrerequisiteEnrollment != nil {
		metas = append(metas, solana.AccountMeta{
			PublicKey: accounts.PrerequisiteEnrollment,
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

func ParseEnrollInstruction(ixn solana.Instruction) (*EnrollInstructionAccounts, *EnrollInstructionArgs, error) {
	if err := checkProgram(ixn); err != nil {
		return nil, nil, err
	}
	if err := checkInstructionData(ixn, AcademyInstructionEnroll, -1); err != nil {
		return nil, nil, err
	}
	if err := checkAccounts(ixn, 5, 0, 1); err != nil {
		return nil, nil, err
	}

	var offset = 1
	var args EnrollInstructionArgs
	if !getString(ixn.Data, &args.CourseId, MaxCourseIdLength, &offset) {
		return nil, nil, ErrInvalidInstructionData
	}
	if offset != len(ixn.Data) {
		return nil, nil, ErrInvalidInstructionData
	}

	accounts := &EnrollInstructionAccounts{
		Payer:          ixn.Accounts[0].PublicKey,
		Learner:        ixn.Accounts[1].PublicKey,
		LearnerProfile: ixn.Accounts[2].PublicKey,
		Course:         ixn.Accounts[3].PublicKey,
		Enrollment:     ixn.Accounts[4].PublicKey,
	}
	if len(ixn.Accounts) >= 7 {
		accounts.PrerequisiteEnrollment = ixn.Accounts[5].PublicKey
	}
	return accounts, &args, nil
}
