package academy

import (
	"crypto/ed25519"

	"github.com/superteam-academy/academy-server/pkg/solana"
)

// UpdateConfigInstructionArgs is a merge-patch: nil fields retain their
// prior values.
type UpdateConfigInstructionArgs struct {
	BackendSigner    ed25519.PublicKey // optional
	MaxDailyXp       *uint32
	MaxAchievementXp *uint32
}

type UpdateConfigInstructionAccounts struct {
	Config    ed25519.PublicKey
	Authority ed25519.PublicKey
}

func getUpdateConfigInstructionArgsSize(args *UpdateConfigInstructionArgs) int {
	size := 3
	if args.BackendSigner != nil {
		size += 32
	}
	if args.MaxDailyXp != nil {
		size += 4
	}
	if args.MaxAchievementXp != nil {
		size += 4
	}
	return size
}

func NewUpdateConfigInstruction(
	accounts *UpdateConfigInstructionAccounts,
	args *UpdateConfigInstructionArgs,
) solana.Instruction {
	var offset int

	data := make([]byte, 1+getUpdateConfigInstructionArgsSize(args))

	putAcademyInstruction(data, AcademyInstructionUpdateConfig, &offset)
	putOptionalKey(data, args.BackendSigner, &offset)
	putOptionalUint32(data, args.MaxDailyXp, &offset)
	putOptionalUint32(data, args.MaxAchievementXp, &offset)

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

func ParseUpdateConfigInstruction(ixn solana.Instruction) (*UpdateConfigInstructionAccounts, *UpdateConfigInstructionArgs, error) {
	if err := checkProgram(ixn); err != nil {
		return nil, nil, err
	}
	if err := checkInstructionData(ixn, AcademyInstructionUpdateConfig, -1); err != nil {
		return nil, nil, err
	}
	if err := checkAccounts(ixn, 2, 1); err != nil {
		return nil, nil, err
	}

	var offset = 1
	var args UpdateConfigInstructionArgs
	if !getOptionalKey(ixn.Data, &args.BackendSigner, &offset) {
		return nil, nil, ErrInvalidInstructionData
	}
	if !getOptionalUint32(ixn.Data, &args.MaxDailyXp, &offset) {
		return nil, nil, ErrInvalidInstructionData
	}
	if !getOptionalUint32(ixn.Data, &args.MaxAchievementXp, &offset) {
		return nil, nil, ErrInvalidInstructionData
	}
	if offset != len(ixn.Data) {
		return nil, nil, ErrInvalidInstructionData
	}

	accounts := &UpdateConfigInstructionAccounts{
		Config:    ixn.Accounts[0].PublicKey,
		Authority: ixn.Accounts[1].PublicKey,
	}
	return accounts, &args, nil
}
