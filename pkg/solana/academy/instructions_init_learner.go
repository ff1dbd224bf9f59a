package academy

import (
	"crypto/ed25519"

	"github.com/superteam-academy/academy-server/pkg/solana"
)

type InitLearnerInstructionAccounts struct {
	Payer   ed25519.PublicKey
	Learner ed25519.PublicKey
	Profile ed25519.PublicKey
}

func NewInitLearnerInstruction(
	accounts *InitLearnerInstructionAccounts,
) solana.Instruction {
	var offset int

	data := make([]byte, 1)

	putAcademyInstruction(data, AcademyInstructionInitLearner, &offset)

	return solana.Instruction{
		Program: PROGRAM_ID,

		Data: data,

		Accounts: []solana.AccountMeta{
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
				PublicKey:  accounts.Profile,
				IsWritable: true,
			},
			{
				PublicKey: SYSTEM_PROGRAM_ID,
			},
		},
	}
}

func ParseInitLearnerInstruction(ixn solana.Instruction) (*InitLearnerInstructionAccounts, error) {
	if err := checkProgram(ixn); err != nil {
		return nil, err
	}
	if err := checkInstructionData(ixn, AcademyInstructionInitLearner, 1); err != nil {
		return nil, err
	}
	if err := checkAccounts(ixn, 3, 0, 1); err != nil {
		return nil, err
	}

	return &InitLearnerInstructionAccounts{
		Payer:   ixn.Accounts[0].PublicKey,
		Learner: ixn.Accounts[1].PublicKey,
		Profile: ixn.Accounts[2].PublicKey,
	}, nil
}
