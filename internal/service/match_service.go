package service

import (
	"math"
	"sort"

	"chonapi/internal/catalog"
	"chonapi/internal/model"
)

// MatchService ranks the archetypes against a trait profile.
type MatchService struct{}

func NewMatchService() *MatchService {
	return &MatchService{}
}

// scoreArchetype sums one point per trait whose percentage falls inside
// the archetype's ideal band, decaying linearly with the distance
// outside it otherwise.
func scoreArchetype(a *model.Archetype, stats map[model.TraitLabel]model.TraitStats) float64 {
	score := 0.0
	for _, trait := range model.AllTraits {
		band, ok := a.Ranges[trait]
		if !ok {
			continue
		}
		pct := stats[trait].Percentage
		if band.Contains(pct) {
			score++
			continue
		}
		score += math.Max(0, 1-band.DistanceTo(pct)/100)
	}
	return score
}

// Match ranks all archetypes by fit, best first. When several
// archetypes tie for the lead, the respondent's answer to the
// preference question picks among them; an absent or non-tied
// preference leaves the score order untouched.
func (s *MatchService) Match(stats map[model.TraitLabel]model.TraitStats, answers model.AnswerSet) model.MatchResult {
	archetypes := catalog.Archetypes()
	ranked := make([]model.ArchetypeScore, 0, len(archetypes))
	for i := range archetypes {
		ranked = append(ranked, model.ArchetypeScore{
			ArchetypeID: archetypes[i].ID,
			Score:       scoreArchetype(&archetypes[i], stats),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) > 1 && ranked[0].Score == ranked[1].Score {
		s.breakTie(ranked, answers)
	}

	result := model.MatchResult{Ranked: ranked}
	if len(ranked) > 0 {
		result.BestID = ranked[0].ArchetypeID
	}
	return result
}

// breakTie promotes the preferred archetype to the front when it is
// one of the tied leaders. Ties the preference cannot settle keep the
// stable score order.
func (s *MatchService) breakTie(ranked []model.ArchetypeScore, answers model.AnswerSet) {
	ans, ok := answers[catalog.PreferenceQuestionID]
	if !ok {
		return
	}
	preferred := catalog.PreferredArchetypeFor(ans.Value.Scalar())
	if preferred == "" {
		return
	}

	top := ranked[0].Score
	for i := range ranked {
		if ranked[i].Score != top {
			return
		}
		if ranked[i].ArchetypeID == preferred {
			entry := ranked[i]
			copy(ranked[1:i+1], ranked[:i])
			ranked[0] = entry
			return
		}
	}
}
