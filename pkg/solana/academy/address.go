package academy

import (
	"crypto/ed25519"

	"github.com/superteam-academy/academy-server/pkg/solana"
)

var (
	ConfigPrefix     = []byte("config")
	CoursePrefix     = []byte("course")
	LearnerPrefix    = []byte("learner")
	EnrollmentPrefix = []byte("enrollment")
	CredentialPrefix = []byte("credential")
)

func GetConfigAddress() (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		ConfigPrefix,
	)
}

type GetCourseAddressArgs struct {
	CourseId string
}

func GetCourseAddress(args *GetCourseAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		CoursePrefix,
		[]byte(args.CourseId),
	)
}

type GetLearnerProfileAddressArgs struct {
	Learner ed25519.PublicKey
}

func GetLearnerProfileAddress(args *GetLearnerProfileAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		LearnerPrefix,
		args.Learner,
	)
}

type GetEnrollmentAddressArgs struct {
	CourseId string
	Learner  ed25519.PublicKey
}

func GetEnrollmentAddress(args *GetEnrollmentAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		EnrollmentPrefix,
		[]byte(args.CourseId),
		args.Learner,
	)
}

type GetCredentialAddressArgs struct {
	CourseId string
	Learner  ed25519.PublicKey
}

func GetCredentialAddress(args *GetCredentialAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		CredentialPrefix,
		[]byte(args.CourseId),
		args.Learner,
	)
}
