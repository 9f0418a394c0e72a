package model

// ValueKind tags the variant held by an AnswerValue
type ValueKind string

const (
	ValueSingle ValueKind = "single" // one option ID
	ValueMulti  ValueKind = "multi"  // set of option IDs
	ValueText   ValueKind = "text"   // free text
)

// AnswerValue is the tagged union of the three response shapes. The
// variant is fixed at the boundary where the question kind is known;
// consumers switch on Kind instead of probing field presence.
type AnswerValue struct {
	Kind    ValueKind `json:"kind" bson:"kind"`
	Option  string    `json:"option,omitempty" bson:"option,omitempty"`
	Options []string  `json:"options,omitempty" bson:"options,omitempty"`
	Text    string    `json:"text,omitempty" bson:"text,omitempty"`
}

// SingleValue builds a single-option value (also used for scale picks)
func SingleValue(optionID string) AnswerValue {
	return AnswerValue{Kind: ValueSingle, Option: optionID}
}

// MultiValue builds an option-set value
func MultiValue(optionIDs []string) AnswerValue {
	return AnswerValue{Kind: ValueMulti, Options: optionIDs}
}

// TextValue builds a free-text value
func TextValue(text string) AnswerValue {
	return AnswerValue{Kind: ValueText, Text: text}
}

// Scalar returns the single-option string, or "" for multi/text values.
// Scoring only ever reads scalars; option sets never score.
func (v AnswerValue) Scalar() string {
	if v.Kind == ValueSingle {
		return v.Option
	}
	return ""
}

// Contains reports whether a multi value holds the option ID
func (v AnswerValue) Contains(optionID string) bool {
	for _, id := range v.Options {
		if id == optionID {
			return true
		}
	}
	return false
}

// Answer is one stored response. Tags are frozen at answer time for
// scale questions, resolved against the respondent's gender.
type Answer struct {
	Value AnswerValue  `json:"value" bson:"value"`
	Tags  []TraitLabel `json:"tags,omitempty" bson:"tags,omitempty"`
}

// AnswerSet maps question ID to its stored answer. A question is
// answered iff an entry exists; emptied multi-selects are removed
// rather than kept as empty sets.
type AnswerSet map[int]Answer

// IsAnswered is the single answered-ness predicate shared by section
// gating, progress, and scoring skip logic.
func (a AnswerSet) IsAnswered(questionID int) bool {
	_, ok := a[questionID]
	return ok
}

// Clone returns a shallow copy of the set
func (a AnswerSet) Clone() AnswerSet {
	out := make(AnswerSet, len(a))
	for id, ans := range a {
		out[id] = ans
	}
	return out
}
