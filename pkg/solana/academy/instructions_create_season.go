package academy

import (
	"crypto/ed25519"

	"github.com/superteam-academy/academy-server/pkg/solana"
)

const (
	CreateSeasonInstructionArgsSize = 2 // season
)

type CreateSeasonInstructionArgs struct {
	Season uint16
}

type CreateSeasonInstructionAccounts struct {
	Payer     ed25519.PublicKey
	Config    ed25519.PublicKey
	Authority ed25519.PublicKey
	XpMint    ed25519.PublicKey
}

func NewCreateSeasonInstruction(
	accounts *CreateSeasonInstructionAccounts,
	args *CreateSeasonInstructionArgs,
) solana.Instruction {
	var offset int

	data := make([]byte, 1+CreateSeasonInstructionArgsSize)

	putAcademyInstruction(data, AcademyInstructionCreateSeason, &offset)
	putUint16(data, args.Season, &offset)

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
				PublicKey:  accounts.Config,
				IsWritable: true,
			},
			{
				PublicKey: accounts.Authority,
				IsSigner:  true,
			},
			{
				PublicKey:  accounts.XpMint,
				IsWritable: true,
			},
			{
				PublicKey: SYSTEM_PROGRAM_ID,
			},
			{
				PublicKey: SYSVAR_RENT_PUBKEY,
			},
		},
	}
}

func ParseCreateSeasonInstruction(ixn solana.Instruction) (*CreateSeasonInstructionAccounts, *CreateSeasonInstructionArgs, error) {
	if err := checkProgram(ixn); err != nil {
		return nil, nil, err
	}
	if err := checkInstructionData(ixn, AcademyInstructionCreateSeason, 1+CreateSeasonInstructionArgsSize); err != nil {
		return nil, nil, err
	}
	if err := checkAccounts(ixn, 4, 0, 2); err != nil {
		return nil, nil, err
	}

	var offset = 1
	var args CreateSeasonInstructionArgs
	getUint16(ixn.Data, &args.Season, &offset)

	accounts := &CreateSeasonInstructionAccounts{
		Payer:     ixn.Accounts[0].PublicKey,
		Config:    ixn.Accounts[1].PublicKey,
		Authority: ixn.Accounts[2].PublicKey,
		XpMint:    ixn.Accounts[3].PublicKey,
	}
	return accounts, &args, nil
}
