package program

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/superteam-academy/academy-server/pkg/pointer"
	"github.com/superteam-academy/academy-server/pkg/solana"
	"github.com/superteam-academy/academy-server/pkg/solana/academy"
)

// issueCredential mints a credential asset at the derived credential
// address for a finalized enrollment. One credential per enrollment,
// never reissued.
func (p *Program) issueCredential(ctx context.Context, ixn solana.Instruction) error {
	accounts, args, err := academy.ParseIssueCredentialInstruction(ixn)
	if err != nil {
		return err
	}

	cfg, err := p.getConfig(ctx, accounts.Config)
	if err != nil {
		return err
	}

	if err := checkBackendSigner(accounts.BackendSigner, cfg); err != nil {
		return err
	}

	courseRecord, err := p.getCourseByAccount(ctx, accounts.Course)
	if err != nil {
		return err
	}

	enrollmentRecord, err := p.getEnrollment(ctx, courseRecord.CourseId, accounts.Learner, accounts.Enrollment)
	if err != nil {
		return err
	}

	if enrollmentRecord.CompletedAt == nil {
		return ErrCourseNotFinalized
	}

	if enrollmentRecord.CredentialAsset != nil {
		return ErrCredentialAlreadyIssued
	}

	derived, _, err := academy.GetCredentialAddress(&academy.GetCredentialAddressArgs{
		CourseId: courseRecord.CourseId,
		Learner:  accounts.Learner,
	})
	if err != nil {
		return err
	}
	if err := checkDerivedAddress(accounts.Credential, derived); err != nil {
		return err
	}

	enrollmentRecord.CredentialAsset = pointer.String(publicKeyString(derived))
	enrollmentRecord.CredentialMetadataUri = pointer.String(args.MetadataUri)

	if err := p.data.SaveEnrollment(ctx, enrollmentRecord); err != nil {
		return err
	}

	p.log.WithFields(logrus.Fields{
		"course":  courseRecord.CourseId,
		"learner": enrollmentRecord.Learner,
	}).Info("credential issued")

	return nil
}
