package academy

import (
	"crypto/ed25519"

	"github.com/superteam-academy/academy-server/pkg/solana"
)

const (
	InitializeInstructionArgsSize = (4 + // max_daily_xp
		4) // max_achievement_xp
)

type InitializeInstructionArgs struct {
	MaxDailyXp       uint32
	MaxAchievementXp uint32
}

type InitializeInstructionAccounts struct {
	Payer         ed25519.PublicKey
	Authority     ed25519.PublicKey
	BackendSigner ed25519.PublicKey
	Config        ed25519.PublicKey
}

func NewInitializeInstruction(
	accounts *InitializeInstructionAccounts,
	args *InitializeInstructionArgs,
) solana.Instruction {
	var offset int

	data := make([]byte, 1+InitializeInstructionArgsSize)

	putAcademyInstruction(data, AcademyInstructionInitialize, &offset)
	putUint32(data, args.MaxDailyXp, &offset)
	putUint32(data, args.MaxAchievementXp, &offset)

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
				PublicKey: accounts.Authority,
			},
			{
				PublicKey: accounts.BackendSigner,
			},
			{
				PublicKey:  accounts.Config,
				IsWritable: true,
			},
			{
				PublicKey: SYSTEM_PROGRAM_ID,
			},
		},
	}
}

func ParseInitializeInstruction(ixn solana.Instruction) (*InitializeInstructionAccounts, *InitializeInstructionArgs, error) {
	if err := checkProgram(ixn); err != nil {
		return nil, nil, err
	}
	if err := checkInstructionData(ixn, AcademyInstructionInitialize, 1+InitializeInstructionArgsSize); err != nil {
		return nil, nil, err
	}
	if err := checkAccounts(ixn, 4, 0); err != nil {
		return nil, nil, err
	}

	var offset = 1
	var args InitializeInstructionArgs
	getUint32(ixn.Data, &args.MaxDailyXp, &offset)
	getUint32(ixn.Data, &args.MaxAchievementXp, &offset)

	accounts := &InitializeInstructionAccounts{
		Payer:         ixn.Accounts[0].PublicKey,
		Authority:     ixn.Accounts[1].PublicKey,
		BackendSigner: ixn.Accounts[2].PublicKey,
		Config:        ixn.Accounts[3].PublicKey,
	}
	return accounts, &args, nil
}
