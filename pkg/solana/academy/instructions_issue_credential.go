package academy

import (
	"crypto/ed25519"

	"github.com/superteam-academy/academy-server/pkg/solana"
)

const MaxMetadataUriLength = 200

type IssueCredentialInstructionArgs struct {
	MetadataUri string
}

type IssueCredentialInstructionAccounts struct {
	Payer         ed25519.PublicKey
	BackendSigner ed25519.PublicKey
	Config        ed25519.PublicKey
	Course        ed25519.PublicKey
	Learner       ed25519.PublicKey
	Enrollment    ed25519.PublicKey
	Credential    ed25519.PublicKey
}

func NewIssueCredentialInstruction(
	accounts *IssueCredentialInstructionAccounts,
	args *IssueCredentialInstructionArgs,
) solana.Instruction {
	var offset int

	data := make([]byte, 1+4+len(args.MetadataUri))

	putAcademyInstruction(data, AcademyInstructionIssueCredential, &offset)
	putString(data, args.MetadataUri, &offset)

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
				PublicKey: accounts.BackendSigner,
				IsSigner:  true,
			},
			{
				PublicKey: accounts.Config,
			},
			{
				PublicKey: accounts.Course,
			},
			{
				PublicKey: accounts.Learner,
			},
			{
				PublicKey:  accounts.Enrollment,
				IsWritable: true,
			},
			{
				PublicKey:  accounts.Credential,
				IsWritable: true,
			},
			{
				PublicKey: SYSTEM_PROGRAM_ID,
			},
		},
	}
}

func ParseIssueCredentialInstruction(ixn solana.Instruction) (*IssueCredentialInstructionAccounts, *IssueCredentialInstructionArgs, error) {
	if err := checkProgram(ixn); err != nil {
		return nil, nil, err
	}
	if err := checkInstructionData(ixn, AcademyInstructionIssueCredential, -1); err != nil {
		return nil, nil, err
	}
	if err := checkAccounts(ixn, 8, 0, 1); err != nil {
		return nil, nil, err
	}

	var offset = 1
	var args IssueCredentialInstructionArgs
	if !getString(ixn.Data, &args.MetadataUri, MaxMetadataUriLength, &offset) {
		return nil, nil, ErrInvalidInstructionData
	}
	if offset != len(ixn.Data) {
		return nil, nil, ErrInvalidInstructionData
	}

	accounts := &IssueCredentialInstructionAccounts{
		Payer:         ixn.Accounts[0].PublicKey,
		BackendSigner: ixn.Accounts[1].PublicKey,
		Config:        ixn.Accounts[2].PublicKey,
		Course:        ixn.Accounts[3].PublicKey,
		Learner:       ixn.Accounts[4].PublicKey,
		Enrollment:    ixn.Accounts[5].PublicKey,
		Credential:    ixn.Accounts[6].PublicKey,
	}
	return accounts, &args, nil
}
