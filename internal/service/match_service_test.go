package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chonapi/internal/catalog"
	"chonapi/internal/model"
)

func pctStats(sa, ded, si, er, obj, ce float64) map[model.TraitLabel]model.TraitStats {
	return map[model.TraitLabel]model.TraitStats{
		model.TraitSelfAwareness:       {Percentage: sa},
		model.TraitDedication:          {Percentage: ded},
		model.TraitSocialIntelligence:  {Percentage: si},
		model.TraitEmotionalRegulation: {Percentage: er},
		model.TraitObjectivity:         {Percentage: obj},
		model.TraitCoreEndurance:       {Percentage: ce},
	}
}

func TestScoreArchetypeInBand(t *testing.T) {
	a := catalog.ArchetypeByID("athena")
	require.NotNil(t, a)

	// Every trait inside its band scores a full point
	stats := pctStats(90, 30, 70, 70, 80, 90)
	assert.InDelta(t, 6.0, scoreArchetype(a, stats), 0.001)
}

func TestScoreArchetypeDecay(t *testing.T) {
	a := catalog.ArchetypeByID("athena")
	require.NotNil(t, a)

	// Self-awareness 10 points below the band trades a point for 0.9
	stats := pctStats(70, 30, 70, 70, 80, 90)
	assert.InDelta(t, 5.9, scoreArchetype(a, stats), 0.001)

	// A flat-zero profile only keeps the bands that start at zero
	assert.InDelta(t, 2.5, scoreArchetype(a, pctStats(0, 0, 0, 0, 0, 0)), 0.001)
}

func TestMatchRanksBestFirst(t *testing.T) {
	svc := NewMatchService()

	result := svc.Match(pctStats(90, 30, 70, 70, 80, 90), model.AnswerSet{})
	require.Len(t, result.Ranked, 6)
	assert.Equal(t, "athena", result.BestID)
	assert.InDelta(t, 6.0, result.Ranked[0].Score, 0.001)
	for i := 1; i < len(result.Ranked); i++ {
		assert.LessOrEqual(t, result.Ranked[i].Score, result.Ranked[i-1].Score)
	}
}

func TestMatchDeterministic(t *testing.T) {
	svc := NewMatchService()
	stats := pctStats(55, 65, 75, 85, 45, 35)

	first := svc.Match(stats, model.AnswerSet{})
	second := svc.Match(stats, model.AnswerSet{})
	assert.Equal(t, first, second)
}

// This profile sits inside both the wukong and nuwa bands, so they tie
// for the lead with a full score.
func tiedStats() map[model.TraitLabel]model.TraitStats {
	return pctStats(50, 80, 80, 90, 70, 85)
}

func TestMatchTieWithoutPreferenceKeepsOrder(t *testing.T) {
	svc := NewMatchService()

	result := svc.Match(tiedStats(), model.AnswerSet{})
	require.Len(t, result.Ranked, 6)
	assert.InDelta(t, result.Ranked[0].Score, result.Ranked[1].Score, 0.001)
	assert.Equal(t, "wukong", result.BestID)
}

func TestMatchTiePreferencePromotesLeader(t *testing.T) {
	svc := NewMatchService()

	// Option E on the preference question maps to nuwa
	answers := model.AnswerSet{
		catalog.PreferenceQuestionID: {Value: model.SingleValue("E")},
	}
	result := svc.Match(tiedStats(), answers)
	assert.Equal(t, "nuwa", result.BestID)
	assert.Equal(t, "wukong", result.Ranked[1].ArchetypeID)
}

func TestMatchTiePreferenceOutsideTieIgnored(t *testing.T) {
	svc := NewMatchService()

	// Odin is not among the tied leaders, so the preference changes nothing
	answers := model.AnswerSet{
		catalog.PreferenceQuestionID: {Value: model.SingleValue("C")},
	}
	result := svc.Match(tiedStats(), answers)
	assert.Equal(t, "wukong", result.BestID)
}
