package service

import (
	"strconv"

	"chonapi/internal/catalog"
	"chonapi/internal/model"
)

// ScoringService turns a respondent's answers into the six trait
// statistics. All methods are pure; persistence stays with the caller.
type ScoringService struct{}

func NewScoringService() *ScoringService {
	return &ScoringService{}
}

// ResolveGender reads the biological-sex answer (A female, B male).
// Anything else, including no answer, resolves to unknown.
func (s *ScoringService) ResolveGender(answers model.AnswerSet) model.Gender {
	ans, ok := answers[catalog.GenderQuestionID]
	if !ok {
		return model.GenderUnknown
	}
	switch ans.Value.Scalar() {
	case "A":
		return model.GenderFemale
	case "B":
		return model.GenderMale
	default:
		return model.GenderUnknown
	}
}

// ResolveTags returns the trait labels a question contributes to for
// the given gender. Unconditional tags win; otherwise the per-gender
// list applies, and unknown gender contributes nothing.
func (s *ScoringService) ResolveTags(q *model.Question, gender model.Gender) []model.TraitLabel {
	if len(q.Tags) > 0 {
		return q.Tags
	}
	switch gender {
	case model.GenderFemale:
		return q.TagsFemale
	case model.GenderMale:
		return q.TagsMale
	}
	return nil
}

// ParseScore converts a stored scale answer to its numeric score.
// Letters A through E map to 1 through 5; other values are parsed as
// integers. Non-positive and non-numeric values report ok=false and
// are skipped by aggregation.
func ParseScore(raw string) (int, bool) {
	if len(raw) == 1 && raw[0] >= 'A' && raw[0] <= 'E' {
		return int(raw[0]-'A') + 1, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// Aggregate computes the statistics for all six traits. Only scale
// answers contribute; each one adds its score to every canonical trait
// it is tagged with. Tags frozen on the answer at answer time take
// precedence over re-resolving, so a later change to the gender answer
// cannot silently reattribute old scores.
func (s *ScoringService) Aggregate(answers model.AnswerSet) map[model.TraitLabel]model.TraitStats {
	stats := make(map[model.TraitLabel]model.TraitStats, len(model.AllTraits))
	for _, t := range model.AllTraits {
		stats[t] = model.TraitStats{}
	}

	gender := s.ResolveGender(answers)

	for id, ans := range answers {
		q := catalog.QuestionByID(id)
		if q == nil || q.Kind != model.QuestionKindScale {
			continue
		}
		score, ok := ParseScore(ans.Value.Scalar())
		if !ok {
			continue
		}
		tags := ans.Tags
		if len(tags) == 0 {
			tags = s.ResolveTags(q, gender)
		}
		for _, tag := range tags {
			if !tag.IsCanonical() {
				continue
			}
			st := stats[tag]
			st.RawScore += score
			st.MaxPossibleScore += model.ScaleMaxScore
			st.ContributingQuestionCount++
			stats[tag] = st
		}
	}

	for t, st := range stats {
		st.Finalize()
		stats[t] = st
	}
	return stats
}
