package academy

import (
	"crypto/ed25519"

	"github.com/superteam-academy/academy-server/pkg/solana"
)

const (
	ClaimAchievementInstructionArgsSize = (1 + // achievement_index
		4) // xp_reward
)

type ClaimAchievementInstructionArgs struct {
	AchievementIndex uint8
	XpReward         uint32
}

type ClaimAchievementInstructionAccounts struct {
	BackendSigner  ed25519.PublicKey
	Config         ed25519.PublicKey
	Learner        ed25519.PublicKey
	LearnerProfile ed25519.PublicKey
	XpMint         ed25519.PublicKey
}

func NewClaimAchievementInstruction(
	accounts *ClaimAchievementInstructionAccounts,
	args *ClaimAchievementInstructionArgs,
) solana.Instruction {
	var offset int

	data := make([]byte, 1+ClaimAchievementInstructionArgsSize)

	putAcademyInstruction(data, AcademyInstructionClaimAchievement, &offset)
	putUint8(data, args.AchievementIndex, &offset)
	putUint32(data, args.XpReward, &offset)

	return solana.Instruction{
		Program: PROGRAM_ID,

		Data: data,

		Accounts: []solana.AccountMeta{
			{
				PublicKey: accounts.BackendSigner,
				IsSigner:  true,
			},
			{
				PublicKey:  accounts.Config,
				IsWritable: true,
			},
			{
				PublicKey: accounts.Learner,
			},
			{
				PublicKey:  accounts.LearnerProfile,
				IsWritable: true,
			},
			{
				PublicKey:  accounts.XpMint,
				IsWritable: true,
			},
		},
	}
}

func ParseClaimAchievementInstruction(ixn solana.Instruction) (*ClaimAchievementInstructionAccounts, *ClaimAchievementInstructionArgs, error) {
	if err := checkProgram(ixn); err != nil {
		return nil, nil, err
	}
	if err := checkInstructionData(ixn, AcademyInstructionClaimAchievement, 1+ClaimAchievementInstructionArgsSize); err != nil {
		return nil, nil, err
	}
	if err := checkAccounts(ixn, 5, 0); err != nil {
		return nil, nil, err
	}

	var offset = 1
	var args ClaimAchievementInstructionArgs
	getUint8(ixn.Data, &args.AchievementIndex, &offset)
	getUint32(ixn.Data, &args.XpReward, &offset)

	accounts := &ClaimAchievementInstructionAccounts{
		BackendSigner:  ixn.Accounts[0].PublicKey,
		Config:         ixn.Accounts[1].PublicKey,
		Learner:        ixn.Accounts[2].PublicKey,
		LearnerProfile: ixn.Accounts[3].PublicKey,
		XpMint:         ixn.Accounts[4].PublicKey,
	}
	return accounts, &args, nil
}
