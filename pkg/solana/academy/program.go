package academy

import (
	"crypto/ed25519"
	"errors"
)

var (
	ErrInvalidProgram         = errors.New("invalid program id")
	ErrInvalidAccountData     = errors.New("unexpected account data")
	ErrInvalidInstructionData = errors.New("unexpected instruction data")
	ErrInvalidAccountMetas    = errors.New("unexpected instruction account metas")
	ErrMissingSigner          = errors.New("required signer is missing")
)

var (
	PROGRAM_ADDRESS = mustBase58Decode("Fg6PaFpoGXkYsidMpWTK6W2BeZ7FEfcYkg476zPFsLnS")
	PROGRAM_ID      = ed25519.PublicKey(PROGRAM_ADDRESS)
)

var (
	SYSTEM_PROGRAM_ID = ed25519.PublicKey(mustBase58Decode("11111111111111111111111111111111"))

	SYSVAR_RENT_PUBKEY = ed25519.PublicKey(mustBase58Decode("SysvarRent111111111111111111111111111111111"))
)

type AccountType uint8

const (
	AccountTypeUnknown AccountType = iota
	AccountTypeConfig
	AccountTypeCourse
	AccountTypeLearnerProfile
	AccountTypeEnrollment
)
