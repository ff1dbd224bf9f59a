package academy

import (
	"bytes"

	"github.com/superteam-academy/academy-server/pkg/solana"
)

func checkProgram(ixn solana.Instruction) error {
	if !bytes.Equal(ixn.Program, PROGRAM_ID) {
		return ErrInvalidProgram
	}
	return nil
}

// checkAccounts validates the account meta list against the layout the
// corresponding builder produces: a minimum account count, and signatures
// present at the positions the program requires them.
func checkAccounts(ixn solana.Instruction, minAccounts int, signerIndices ...int) error {
	if len(ixn.Accounts) < minAccounts {
		return ErrInvalidAccountMetas
	}
	for _, index := range signerIndices {
		if !ixn.Accounts[index].IsSigner {
			return ErrMissingSigner
		}
	}
	return nil
}

func checkInstructionData(ixn solana.Instruction, expected AcademyInstruction, exactSize int) error {
	if len(ixn.Data) == 0 || AcademyInstruction(ixn.Data[0]) != expected {
		return ErrInvalidInstructionData
	}
	if exactSize >= 0 && len(ixn.Data) != exactSize {
		return ErrInvalidInstructionData
	}
	return nil
}
