package academy

import (
	"crypto/ed25519"

	"github.com/superteam-academy/academy-server/pkg/solana"
)

type FinalizeCourseInstructionAccounts struct {
	BackendSigner ed25519.PublicKey
	Config        ed25519.PublicKey
	Course        ed25519.PublicKey
	Creator       ed25519.PublicKey
	Learner       ed25519.PublicKey
	Enrollment    ed25519.PublicKey
}

func NewFinalizeCourseInstruction(
	accounts *FinalizeCourseInstructionAccounts,
) solana.Instruction {
	var offset int

	data := make([]byte, 1)

	putAcademyInstruction(data, AcademyInstructionFinalizeCourse, &offset)

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
				PublicKey: accounts.Creator,
			},
			{
				PublicKey: accounts.Learner,
			},
			{
				PublicKey:  accounts.Enrollment,
				IsWritable: true,
			},
		},
	}
}

func ParseFinalizeCourseInstruction(ixn solana.Instruction) (*FinalizeCourseInstructionAccounts, error) {
	if err := checkProgram(ixn); err != nil {
		return nil, err
	}
	if err := checkInstructionData(ixn, AcademyInstructionFinalizeCourse, 1); err != nil {
		return nil, err
	}
	if err := checkAccounts(ixn, 6, 0); err != nil {
		return nil, err
	}

	return &FinalizeCourseInstructionAccounts{
		BackendSigner: ixn.Accounts[0].PublicKey,
		Config:        ixn.Accounts[1].PublicKey,
		Course:        ixn.Accounts[2].PublicKey,
		Creator:       ixn.Accounts[3].PublicKey,
		Learner:       ixn.Accounts[4].PublicKey,
		Enrollment:    ixn.Accounts[5].PublicKey,
	}, nil
}
