package academy

import (
	"crypto/ed25519"

	"github.com/superteam-academy/academy-server/pkg/solana"
)

type CloseSeasonInstructionAccounts struct {
	Config    ed25519.PublicKey
	Authority ed25519.PublicKey
}

func NewCloseSeasonInstruction(
	accounts *CloseSeasonInstructionAccounts,
) solana.Instruction {
	var offset int

	data := make([]byte, 1)

	putAcademyInstruction(data, AcademyInstructionCloseSeason, &offset)

	return solana.Instruction{
		Program: PROGRAM_ID,

		Data: data,

		Accounts: []solana.AccountMeta{
			{
				PublicKey:  accounts.Config,
				IsWritable: true,
			},
			{
				PublicKey: accounts.Authority,
				IsSigner:  true,
			},
		},
	}
}

func ParseCloseSeasonInstruction(ixn solana.Instruction) (*CloseSeasonInstructionAccounts, error) {
	if err := checkProgram(ixn); err != nil {
		return nil, err
	}
	if err := checkInstructionData(ixn, AcademyInstructionCloseSeason, 1); err != nil {
		return nil, err
	}
	if err := checkAccounts(ixn, 2, 1); err != nil {
		return nil, err
	}

	return &CloseSeasonInstructionAccounts{
		Config:    ixn.Accounts[0].PublicKey,
		Authority: ixn.Accounts[1].PublicKey,
	}, nil
}
