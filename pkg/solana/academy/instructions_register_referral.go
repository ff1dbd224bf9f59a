package academy

import (
	"crypto/ed25519"

	"github.com/superteam-academy/academy-server/pkg/solana"
)

type RegisterReferralInstructionAccounts struct {
	Payer           ed25519.PublicKey
	Learner         ed25519.PublicKey
	ReferrerProfile ed25519.PublicKey
	Referrer        ed25519.PublicKey
	LearnerProfile  ed25519.PublicKey
}

func NewRegisterReferralInstruction(
	accounts *RegisterReferralInstructionAccounts,
) solana.Instruction {
	var offset int

	data := make([]byte, 1)

	putAcademyInstruction(data, AcademyInstructionRegisterReferral, &offset)

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
				PublicKey:  accounts.ReferrerProfile,
				IsWritable: true,
			},
			{
				PublicKey: accounts.Referrer,
			},
			{
				PublicKey:  accounts.LearnerProfile,
				IsWritable: true,
			},
		},
	}
}

func ParseRegisterReferralInstruction(ixn solana.Instruction) (*RegisterReferralInstructionAccounts, error) {
	if err := checkProgram(ixn); err != nil {
		return nil, err
	}
	if err := checkInstructionData(ixn, AcademyInstructionRegisterReferral, 1); err != nil {
		return nil, err
	}
	if err := checkAccounts(ixn, 5, 0, 1); err != nil {
		return nil, err
	}

	return &RegisterReferralInstructionAccounts{
		Payer:           ixn.Accounts[0].PublicKey,
		Learner:         ixn.Accounts[1].PublicKey,
		ReferrerProfile: ixn.Accounts[2].PublicKey,
		Referrer:        ixn.Accounts[3].PublicKey,
		LearnerProfile:  ixn.Accounts[4].PublicKey,
	}, nil
}
