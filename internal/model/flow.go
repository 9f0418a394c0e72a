package model

// Step is the coarse position of a respondent in the test flow
type Step string

const (
	StepNone              Step = ""
	StepIntro             Step = "intro"
	StepIdentitySelection Step = "identitySelection"
	StepPrivacyNotice     Step = "privacyNotice"
	StepQuestionnaire     Step = "questionnaire"
	StepResults           Step = "results"
)

// CorporateRole is the seniority captured for corporate identities
type CorporateRole string

const (
	RoleFounder          CorporateRole = "founder"
	RoleBoardMember      CorporateRole = "board_member"
	RoleCSuite           CorporateRole = "c_suite"
	RolePresident        CorporateRole = "president"
	RoleManagingDirector CorporateRole = "managing_director"
	RolePartner          CorporateRole = "partner"
	RoleVicePresident    CorporateRole = "vice_president"
	RoleDirector         CorporateRole = "director"
	RoleSeniorManager    CorporateRole = "senior_manager"
)

// Valid reports whether the role is one of the nine seniority levels
func (r CorporateRole) Valid() bool {
	switch r {
	case RoleFounder, RoleBoardMember, RoleCSuite, RolePresident,
		RoleManagingDirector, RolePartner, RoleVicePresident,
		RoleDirector, RoleSeniorManager:
		return true
	}
	return false
}

// Gender is resolved from the answer to the first question
type Gender string

const (
	GenderFemale  Gender = "female"
	GenderMale    Gender = "male"
	GenderUnknown Gender = "unknown"
)

// FlowState is the full per-respondent position in the test. It is
// assembled from the individually persisted fields, never stored as one
// blob, so a partial write cannot corrupt the rest.
type FlowState struct {
	Step          Step          `json:"step"`
	Identity      Identity      `json:"identity,omitempty"`
	CorporateRole CorporateRole `json:"corporateRole,omitempty"`
	SectionIndex  int           `json:"sectionIndex"`
	Answers       AnswerSet     `json:"answers"`
}

// InProgress reports whether the respondent moved past the intro
func (s *FlowState) InProgress() bool {
	return s.Step != StepNone && s.Step != StepIntro
}

// Completed reports whether the respondent reached results
func (s *FlowState) Completed() bool {
	return s.Step == StepResults
}
