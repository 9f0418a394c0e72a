package model

import "math"

// TraitLabel identifies one of the six scored personality dimensions.
// The canonical values are the Chinese labels carried by the question
// catalog; Key maps them to stable identifiers for API payloads.
type TraitLabel string

const (
	TraitSelfAwareness       TraitLabel = "自我意识"
	TraitDedication          TraitLabel = "奉献精神"
	TraitSocialIntelligence  TraitLabel = "社交情商"
	TraitEmotionalRegulation TraitLabel = "情绪调节"
	TraitObjectivity         TraitLabel = "客观能力"
	TraitCoreEndurance       TraitLabel = "核心耐力"
)

// AllTraits lists the six canonical traits in display order
var AllTraits = []TraitLabel{
	TraitSelfAwareness,
	TraitDedication,
	TraitSocialIntelligence,
	TraitEmotionalRegulation,
	TraitObjectivity,
	TraitCoreEndurance,
}

var traitKeys = map[TraitLabel]string{
	TraitSelfAwareness:       "selfAwareness",
	TraitDedication:          "dedication",
	TraitSocialIntelligence:  "socialIntelligence",
	TraitEmotionalRegulation: "emotionalRegulation",
	TraitObjectivity:         "objectivity",
	TraitCoreEndurance:       "coreEndurance",
}

// Key returns the stable API identifier for the trait ("" if unknown)
func (t TraitLabel) Key() string {
	return traitKeys[t]
}

// IsCanonical reports whether the label is one of the six scored traits.
// Catalog data may carry labels outside this set; they score nothing.
func (t TraitLabel) IsCanonical() bool {
	_, ok := traitKeys[t]
	return ok
}

// ScaleMaxScore is the highest score a single scale answer can contribute
const ScaleMaxScore = 5

// TraitStats aggregates the scale answers attributed to one trait
type TraitStats struct {
	RawScore                  int     `json:"rawScore" bson:"rawScore"`
	MaxPossibleScore          int     `json:"maxPossibleScore" bson:"maxPossibleScore"`
	Percentage                float64 `json:"percentage" bson:"percentage"`
	MeanScore                 float64 `json:"meanScore" bson:"meanScore"`
	ContributingQuestionCount int     `json:"contributingQuestionCount" bson:"contributingQuestionCount"`
}

// Finalize computes the derived percentage and mean from the raw tallies.
// Both stay 0 when nothing contributed, guarding the divisions.
func (s *TraitStats) Finalize() {
	if s.MaxPossibleScore > 0 {
		pct := float64(s.RawScore) / float64(s.MaxPossibleScore) * 100
		s.Percentage = math.Min(100, round2(pct))
	}
	if s.ContributingQuestionCount > 0 {
		s.MeanScore = round2(float64(s.RawScore) / float64(s.ContributingQuestionCount))
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
