package academy

import (
	"crypto/ed25519"

	"github.com/superteam-academy/academy-server/pkg/solana"
)

type ClaimCompletionBonusInstructionAccounts struct {
	Learner        ed25519.PublicKey
	Config         ed25519.PublicKey
	Course         ed25519.PublicKey
	LearnerProfile ed25519.PublicKey
	Enrollment     ed25519.PublicKey
}

func NewClaimCompletionBonusInstruction(
	accounts *ClaimCompletionBonusInstructionAccounts,
) solana.Instruction {
	var offset int

	data := make([]byte, 1)

	putAcademyInstruction(data, AcademyInstructionClaimCompletionBonus, &offset)

	return solana.Instruction{
		Program: PROGRAM_ID,

		Data: data,

		Accounts: []solana.AccountMeta{
			{
				PublicKey: accounts.Learner,
				IsSigner:  true,
			},
			{
				PublicKey: accounts.Config,
			},
			{
				PublicKey: accounts.Course,
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

func ParseClaimCompletionBonusInstruction(ixn solana.Instruction) (*ClaimCompletionBonusInstructionAccounts, error) {
	if err := checkProgram(ixn); err != nil {
		return nil, err
	}
	if err := checkInstructionData(ixn, AcademyInstructionClaimCompletionBonus, 1); err != nil {
		return nil, err
	}
	if err := checkAccounts(ixn, 5, 0); err != nil {
		return nil, err
	}

	return &ClaimCompletionBonusInstructionAccounts{
		Learner:        ixn.Accounts[0].PublicKey,
		Config:         ixn.Accounts[1].PublicKey,
		Course:         ixn.Accounts[2].PublicKey,
		LearnerProfile: ixn.Accounts[3].PublicKey,
		Enrollment:     ixn.Accounts[4].PublicKey,
	}, nil
}
