package academy

import (
	"crypto/ed25519"

	"github.com/superteam-academy/academy-server/pkg/solana"
)

type AwardStreakFreezeInstructionAccounts struct {
	BackendSigner  ed25519.PublicKey
	Config         ed25519.PublicKey
	Learner        ed25519.PublicKey
	LearnerProfile ed25519.PublicKey
}

func NewAwardStreakFreezeInstruction(
	accounts *AwardStreakFreezeInstructionAccounts,
) solana.Instruction {
	var offset int

	data := make([]byte, 1)

	putAcademyInstruction(data, AcademyInstructionAwardStreakFreeze, &offset)

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
				PublicKey: accounts.Learner,
			},
			{
				PublicKey:  accounts.LearnerProfile,
				IsWritable: true,
			},
		},
	}
}

func ParseAwardStreakFreezeInstruction(ixn solana.Instruction) (*AwardStreakFreezeInstructionAccounts, error) {
	if err := checkProgram(ixn); err != nil {
		return nil, err
	}
	if err := checkInstructionData(ixn, AcademyInstructionAwardStreakFreeze, 1); err != nil {
		return nil, err
	}
	if err := checkAccounts(ixn, 4, 0); err != nil {
		return nil, err
	}

	return &AwardStreakFreezeInstructionAccounts{
		BackendSigner:  ixn.Accounts[0].PublicKey,
		Config:         ixn.Accounts[1].PublicKey,
		Learner:        ixn.Accounts[2].PublicKey,
		LearnerProfile: ixn.Accounts[3].PublicKey,
	}, nil
}
