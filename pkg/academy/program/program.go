package program

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"sync"
	"time"

	"github.com/mr-tron/base58"
	"github.com/sirupsen/logrus"

	"github.com/superteam-academy/academy-server/pkg/academy/data"
	"github.com/superteam-academy/academy-server/pkg/solana"
	"github.com/superteam-academy/academy-server/pkg/solana/academy"
)

// CloseEnrollmentCooldown is how long an unfinished enrollment must age
// before its learner can close it and reclaim rent.
const CloseEnrollmentCooldown = 24 * time.Hour

// Program applies academy instructions against durable state, enforcing
// the account rules of the on-chain program. Execution is serialized,
// standing in for the ledger's per-account write lock.
type Program struct {
	log  *logrus.Entry
	data data.Provider

	clock func() time.Time

	mu sync.Mutex
}

func New(provider data.Provider) *Program {
	return &Program{
		log:   logrus.StandardLogger().WithField("type", "academy/program"),
		data:  provider,
		clock: time.Now,
	}
}

// SetClock overrides the time source used for timestamps, daily XP
// rollover and streak arithmetic.
func (p *Program) SetClock(clock func() time.Time) {
	p.clock = clock
}

// Execute validates and applies a single instruction. The instruction is
// atomic: on any error no state is mutated.
func (p *Program) Execute(ctx context.Context, ixn solana.Instruction) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	instructionType, err := academy.GetAcademyInstruction(ixn.Data)
	if err != nil {
		return err
	}

	log := p.log.WithField("instruction", instructionType.String())

	err = p.data.ExecuteInTx(ctx, func(ctx context.Context) error {
		switch instructionType {
		case academy.AcademyInstructionInitialize:
			return p.initialize(ctx, ixn)
		case academy.AcademyInstructionUpdateConfig:
			return p.updateConfig(ctx, ixn)
		case academy.AcademyInstructionCreateSeason:
			return p.createSeason(ctx, ixn)
		case academy.AcademyInstructionCloseSeason:
			return p.closeSeason(ctx, ixn)
		case academy.AcademyInstructionCreateCourse:
			return p.createCourse(ctx, ixn)
		case academy.AcademyInstructionUpdateCourse:
			return p.updateCourse(ctx, ixn)
		case academy.AcademyInstructionInitLearner:
			return p.initLearner(ctx, ixn)
		case academy.AcademyInstructionRegisterReferral:
			return p.registerReferral(ctx, ixn)
		case academy.AcademyInstructionClaimAchievement:
			return p.claimAchievement(ctx, ixn)
		case academy.AcademyInstructionAwardStreakFreeze:
			return p.awardStreakFreeze(ctx, ixn)
		case academy.AcademyInstructionEnroll:
			return p.enroll(ctx, ixn)
		case academy.AcademyInstructionCompleteLesson:
			return p.completeLesson(ctx, ixn)
		case academy.AcademyInstructionFinalizeCourse:
			return p.finalizeCourse(ctx, ixn)
		case academy.AcademyInstructionClaimCompletionBonus:
			return p.claimCompletionBonus(ctx, ixn)
		case academy.AcademyInstructionIssueCredential:
			return p.issueCredential(ctx, ixn)
		case academy.AcademyInstructionCloseEnrollment:
			return p.closeEnrollment(ctx, ixn)
		default:
			return academy.ErrInvalidInstructionData
		}
	})
	if err != nil {
		log.WithError(err).Warn("instruction failed")
		return err
	}

	return nil
}

func publicKeyString(key ed25519.PublicKey) string {
	return base58.Encode(key)
}

// checkDerivedAddress rejects an instruction that supplies an account at
// anything other than its derived address.
func checkDerivedAddress(actual, derived ed25519.PublicKey) error {
	if !bytes.Equal(actual, derived) {
		return ErrAddressMismatch
	}
	return nil
}
