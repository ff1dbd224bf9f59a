package academy

type AcademyInstruction uint8

const (
	AcademyInstructionInitialize AcademyInstruction = iota
	AcademyInstructionUpdateConfig
	AcademyInstructionCreateSeason
	AcademyInstructionCloseSeason
	AcademyInstructionCreateCourse
	AcademyInstructionUpdateCourse
	AcademyInstructionInitLearner
	AcademyInstructionRegisterReferral
	AcademyInstructionClaimAchievement
	AcademyInstructionAwardStreakFreeze
	AcademyInstructionEnroll
	AcademyInstructionCompleteLesson
	AcademyInstructionFinalizeCourse
	AcademyInstructionClaimCompletionBonus
	AcademyInstructionIssueCredential
	AcademyInstructionCloseEnrollment
)

func putAcademyInstruction(dst []byte, v AcademyInstruction, offset *int) {
	dst[*offset] = uint8(v)
	*offset += 1
}

func getAcademyInstruction(src []byte, dst *AcademyInstruction, offset *int) {
	*dst = AcademyInstruction(src[*offset])
	*offset += 1
}

// GetAcademyInstruction returns the instruction type encoded in raw
// instruction data.
func GetAcademyInstruction(data []byte) (AcademyInstruction, error) {
	if len(data) == 0 {
		return 0, ErrInvalidInstructionData
	}
	if data[0] > uint8(AcademyInstructionCloseEnrollment) {
		return 0, ErrInvalidInstructionData
	}
	return AcademyInstruction(data[0]), nil
}

func (v AcademyInstruction) String() string {
	switch v {
	case AcademyInstructionInitialize:
		return "initialize"
	case AcademyInstructionUpdateConfig:
		return "update_config"
	case AcademyInstructionCreateSeason:
		return "create_season"
	case AcademyInstructionCloseSeason:
		return "close_season"
	case AcademyInstructionCreateCourse:
		return "create_course"
	case AcademyInstructionUpdateCourse:
		return "update_course"
	case AcademyInstructionInitLearner:
		return "init_learner"
	case AcademyInstructionRegisterReferral:
		return "register_referral"
	case AcademyInstructionClaimAchievement:
		return "claim_achievement"
	case AcademyInstructionAwardStreakFreeze:
		return "award_streak_freeze"
	case AcademyInstructionEnroll:
		return "enroll"
	case AcademyInstructionCompleteLesson:
		return "complete_lesson"
	case AcademyInstructionFinalizeCourse:
		return "finalize_course"
	case AcademyInstructionClaimCompletionBonus:
		return "claim_completion_bonus"
	case AcademyInstructionIssueCredential:
		return "issue_credential"
	case AcademyInstructionCloseEnrollment:
		return "close_enrollment"
	}
	return "unknown"
}
