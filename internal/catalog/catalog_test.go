package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chonapi/internal/model"
)

func TestValidate(t *testing.T) {
	require.NoError(t, Validate())
}

func TestMenuTotals(t *testing.T) {
	tests := []struct {
		identity model.Identity
		total    int
		sections int
	}{
		{model.IdentityMother, 50, 4},
		{model.IdentityCorporate, 50, 4},
		{model.IdentityBoth, 68, 5},
		{model.IdentityOther, 42, 4},
	}
	for _, tt := range tests {
		menu := MenuFor(tt.identity)
		require.NotNil(t, menu, "menu %s", tt.identity)
		assert.Equal(t, tt.total, menu.TotalQuestions(), "menu %s", tt.identity)
		assert.Len(t, menu.Sections, tt.sections, "menu %s", tt.identity)
	}
}

func TestUnknownLookups(t *testing.T) {
	assert.Nil(t, QuestionByID(0))
	assert.Nil(t, QuestionByID(999))
	assert.Nil(t, MenuFor(model.Identity("alien")))
	assert.Nil(t, ArchetypeByID("zeus"))
}

func TestPreferenceQuestion(t *testing.T) {
	q := QuestionByID(PreferenceQuestionID)
	require.NotNil(t, q)
	require.Len(t, q.Options, 6)

	seen := map[string]bool{}
	for _, opt := range q.Options {
		id := PreferredArchetypeFor(opt.ID)
		require.NotEmpty(t, id, "option %s", opt.ID)
		require.NotNil(t, ArchetypeByID(id))
		assert.False(t, seen[id], "archetype %s preferred twice", id)
		seen[id] = true
	}
	assert.Empty(t, PreferredArchetypeFor("Z"))
}

func TestScaleQuestionsHaveLabels(t *testing.T) {
	for _, q := range Questions() {
		if q.Kind != model.QuestionKindScale {
			continue
		}
		assert.NotNil(t, q.ScaleLabels, "question %d", q.ID)
		assert.Empty(t, q.Options, "question %d", q.ID)
	}
}

func TestExclusiveOptions(t *testing.T) {
	q := QuestionByID(53)
	require.NotNil(t, q)
	assert.Equal(t, model.QuestionKindMultiChoice, q.Kind)
	assert.True(t, q.IsExclusiveOption("A"))
	assert.False(t, q.IsExclusiveOption("B"))
}

func TestArchetypeRangesCoverAllTraits(t *testing.T) {
	for _, a := range Archetypes() {
		for _, trait := range model.AllTraits {
			_, ok := a.Ranges[trait]
			assert.True(t, ok, "archetype %s missing %s", a.ID, trait.Key())
		}
	}
}

func TestLifeVariantResolution(t *testing.T) {
	q := QuestionByID(20)
	require.NotNil(t, q)
	assert.NotEqual(t, q.Text.EN, q.ResolvedText(false).EN)
	assert.Equal(t, q.Text.EN, q.ResolvedText(true).EN)

	// No life variant means the base text always wins
	base := QuestionByID(13)
	require.NotNil(t, base)
	assert.Equal(t, base.Text.EN, base.ResolvedText(false).EN)
}
