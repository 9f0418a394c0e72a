package model

// Identity is the respondent-chosen perspective that selects a menu
type Identity string

const (
	IdentityMother    Identity = "mother"
	IdentityCorporate Identity = "corporate"
	IdentityBoth      Identity = "both"
	IdentityOther     Identity = "other"
)

// Valid reports whether the identity is one of the four choices
func (i Identity) Valid() bool {
	switch i {
	case IdentityMother, IdentityCorporate, IdentityBoth, IdentityOther:
		return true
	}
	return false
}

// RequiresCorporateRole reports whether a corporate role must be
// captured before the identity selection completes.
func (i Identity) RequiresCorporateRole() bool {
	return i == IdentityCorporate || i == IdentityBoth
}

// Section is one titled group of question IDs within a menu
type Section struct {
	Title       Text  `json:"title" bson:"title"`
	TitleLife   Text  `json:"titleLife,omitempty" bson:"titleLife,omitempty"`
	QuestionIDs []int `json:"questionIds" bson:"questionIds"`
}

// ResolvedTitle picks the life variant for respondents without
// corporate experience when one exists.
func (s *Section) ResolvedTitle(workedInCorporate bool) Text {
	if !workedInCorporate && !s.TitleLife.IsZero() {
		return s.TitleLife
	}
	return s.Title
}

// Menu is the ordered section list served for one identity
type Menu struct {
	Identity Identity  `json:"identity" bson:"_id"`
	Sections []Section `json:"sections" bson:"sections"`
}

// TotalQuestions counts the questions across all sections
func (m *Menu) TotalQuestions() int {
	n := 0
	for i := range m.Sections {
		n += len(m.Sections[i].QuestionIDs)
	}
	return n
}

// SectionComplete reports whether every question in the section has an
// answer in the given set.
func (m *Menu) SectionComplete(index int, answers AnswerSet) bool {
	if index < 0 || index >= len(m.Sections) {
		return false
	}
	for _, id := range m.Sections[index].QuestionIDs {
		if !answers.IsAnswered(id) {
			return false
		}
	}
	return true
}

// AnsweredCount counts the menu questions present in the answer set
func (m *Menu) AnsweredCount(answers AnswerSet) int {
	n := 0
	for i := range m.Sections {
		for _, id := range m.Sections[i].QuestionIDs {
			if answers.IsAnswered(id) {
				n++
			}
		}
	}
	return n
}
