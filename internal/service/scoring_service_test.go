package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chonapi/internal/catalog"
	"chonapi/internal/model"
)

func TestParseScore(t *testing.T) {
	tests := []struct {
		raw   string
		score int
		ok    bool
	}{
		{"A", 1, true},
		{"C", 3, true},
		{"E", 5, true},
		{"3", 3, true},
		{"10", 10, true},
		{"F", 0, false},
		{"0", 0, false},
		{"-1", 0, false},
		{"x", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		score, ok := ParseScore(tt.raw)
		assert.Equal(t, tt.ok, ok, "raw %q", tt.raw)
		assert.Equal(t, tt.score, score, "raw %q", tt.raw)
	}
}

func TestResolveGender(t *testing.T) {
	svc := NewScoringService()

	assert.Equal(t, model.GenderUnknown, svc.ResolveGender(model.AnswerSet{}))
	assert.Equal(t, model.GenderFemale, svc.ResolveGender(model.AnswerSet{
		catalog.GenderQuestionID: {Value: model.SingleValue("A")},
	}))
	assert.Equal(t, model.GenderMale, svc.ResolveGender(model.AnswerSet{
		catalog.GenderQuestionID: {Value: model.SingleValue("B")},
	}))
	assert.Equal(t, model.GenderUnknown, svc.ResolveGender(model.AnswerSet{
		catalog.GenderQuestionID: {Value: model.SingleValue("C")},
	}))
}

func TestResolveTags(t *testing.T) {
	svc := NewScoringService()

	// Unconditional tags win regardless of gender
	fixed := catalog.QuestionByID(13)
	require.NotNil(t, fixed)
	assert.Equal(t, []model.TraitLabel{model.TraitObjectivity}, svc.ResolveTags(fixed, model.GenderUnknown))
	assert.Equal(t, []model.TraitLabel{model.TraitObjectivity}, svc.ResolveTags(fixed, model.GenderFemale))

	// Gender-conditional tags split, and unknown contributes nothing
	split := catalog.QuestionByID(21)
	require.NotNil(t, split)
	assert.Equal(t, []model.TraitLabel{model.TraitSelfAwareness}, svc.ResolveTags(split, model.GenderFemale))
	assert.Equal(t, []model.TraitLabel{model.TraitObjectivity}, svc.ResolveTags(split, model.GenderMale))
	assert.Nil(t, svc.ResolveTags(split, model.GenderUnknown))
}

func TestAggregate(t *testing.T) {
	svc := NewScoringService()

	// q13 and q27 both feed objective ability
	stats := svc.Aggregate(model.AnswerSet{
		13: {Value: model.SingleValue("C"), Tags: []model.TraitLabel{model.TraitObjectivity}},
		27: {Value: model.SingleValue("3"), Tags: []model.TraitLabel{model.TraitObjectivity}},
	})

	obj := stats[model.TraitObjectivity]
	assert.Equal(t, 6, obj.RawScore)
	assert.Equal(t, 10, obj.MaxPossibleScore)
	assert.Equal(t, 2, obj.ContributingQuestionCount)
	assert.InDelta(t, 60.0, obj.Percentage, 0.001)
	assert.InDelta(t, 3.0, obj.MeanScore, 0.001)

	for _, trait := range model.AllTraits {
		if trait == model.TraitObjectivity {
			continue
		}
		assert.Zero(t, stats[trait].RawScore, "trait %s", trait.Key())
		assert.Zero(t, stats[trait].Percentage, "trait %s", trait.Key())
	}
}

func TestAggregateFrozenTagsWin(t *testing.T) {
	svc := NewScoringService()

	// Tags stored on the answer take precedence over the catalog ones
	stats := svc.Aggregate(model.AnswerSet{
		13: {Value: model.SingleValue("E"), Tags: []model.TraitLabel{model.TraitDedication}},
	})
	assert.Equal(t, 5, stats[model.TraitDedication].RawScore)
	assert.Zero(t, stats[model.TraitObjectivity].RawScore)
}

func TestAggregateGenderConditional(t *testing.T) {
	svc := NewScoringService()

	female := svc.Aggregate(model.AnswerSet{
		catalog.GenderQuestionID: {Value: model.SingleValue("A")},
		21:                       {Value: model.SingleValue("5")},
	})
	assert.Equal(t, 5, female[model.TraitSelfAwareness].RawScore)
	assert.Zero(t, female[model.TraitObjectivity].RawScore)

	male := svc.Aggregate(model.AnswerSet{
		catalog.GenderQuestionID: {Value: model.SingleValue("B")},
		21:                       {Value: model.SingleValue("5")},
	})
	assert.Equal(t, 5, male[model.TraitObjectivity].RawScore)
	assert.Zero(t, male[model.TraitSelfAwareness].RawScore)

	// Without a gender answer the question scores nowhere
	unknown := svc.Aggregate(model.AnswerSet{
		21: {Value: model.SingleValue("5")},
	})
	for _, trait := range model.AllTraits {
		assert.Zero(t, unknown[trait].RawScore, "trait %s", trait.Key())
	}
}

func TestAggregateSkipsNonCanonicalTag(t *testing.T) {
	svc := NewScoringService()

	// q37 carries a tag outside the scored set
	stats := svc.Aggregate(model.AnswerSet{
		37: {Value: model.SingleValue("5")},
	})
	for _, trait := range model.AllTraits {
		assert.Zero(t, stats[trait].ContributingQuestionCount, "trait %s", trait.Key())
	}
}

func TestAggregateSkipsUnparsableAndNonScale(t *testing.T) {
	svc := NewScoringService()

	stats := svc.Aggregate(model.AnswerSet{
		// Single-choice answers never score
		catalog.GenderQuestionID: {Value: model.SingleValue("A")},
		// A damaged scale value is skipped, not treated as zero
		13: {Value: model.SingleValue("x"), Tags: []model.TraitLabel{model.TraitObjectivity}},
	})
	assert.Zero(t, stats[model.TraitObjectivity].ContributingQuestionCount)
}

func TestAggregatePercentageClamped(t *testing.T) {
	svc := NewScoringService()

	stats := svc.Aggregate(model.AnswerSet{
		13: {Value: model.SingleValue("10"), Tags: []model.TraitLabel{model.TraitObjectivity}},
	})
	obj := stats[model.TraitObjectivity]
	assert.Equal(t, 10, obj.RawScore)
	assert.Equal(t, model.ScaleMaxScore, obj.MaxPossibleScore)
	assert.InDelta(t, 100.0, obj.Percentage, 0.001)
}
