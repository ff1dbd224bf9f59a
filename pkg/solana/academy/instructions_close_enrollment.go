package academy

import (
	"crypto/ed25519"

	"github.com/superteam-academy/academy-server/pkg/solana"
)

type CloseEnrollmentInstructionAccounts struct {
	Learner    ed25519.PublicKey
	Course     ed25519.PublicKey
	Enrollment ed25519.PublicKey
}

func NewCloseEnrollmentInstruction(
	accounts *CloseEnrollmentInstructionAccounts,
) solana.Instruction {
	var offset int

	data := make([]byte, 1)

	putAcademyInstruction(data, AcademyInstructionCloseEnrollment, &offset)

	return solana.Instruction{
		Program: PROGRAM_ID,

		Data: data,

		Accounts: []solana.AccountMeta{
			{
				PublicKey:  accounts.Learner,
				IsWritable: true,
				IsSigner:   true,
			},
			{
				PublicKey: accounts.Course,
			},
			{
				PublicKey:  accounts.Enrollment,
				IsWritable: true,
			},
		},
	}
}

func ParseCloseEnrollmentInstruction(ixn solana.Instruction) (*CloseEnrollmentInstructionAccounts, error) {
	if err := checkProgram(ixn); err != nil {
		return nil, err
	}
	if err := checkInstructionData(ixn, AcademyInstructionCloseEnrollment, 1); err != nil {
		return nil, err
	}
	if err := checkAccounts(ixn, 3, 0); err != nil {
		return nil, err
	}

	return &CloseEnrollmentInstructionAccounts{
		Learner:    ixn.Accounts[0].PublicKey,
		Course:     ixn.Accounts[1].PublicKey,
		Enrollment: ixn.Accounts[2].PublicKey,
	}, nil
}
