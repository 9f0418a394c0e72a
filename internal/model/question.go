package model

// QuestionKind defines the type of question
type QuestionKind string

const (
	QuestionKindSingleChoice QuestionKind = "SINGLE_CHOICE" // One option, replaced on re-answer
	QuestionKindMultiChoice  QuestionKind = "MULTI_CHOICE"  // Option set, toggled per option
	QuestionKindFreeText     QuestionKind = "FREE_TEXT"     // Arbitrary text
	QuestionKindScale        QuestionKind = "SCALE"         // 1-5 ordinal, the only kind that scores traits
)

// Language selects which side of a Text pair is rendered
type Language string

const (
	LanguageEN Language = "en"
	LanguageZH Language = "zh"
)

// Text is a bilingual text pair
type Text struct {
	EN string `json:"en" bson:"en"`
	ZH string `json:"zh" bson:"zh"`
}

// In returns the text for the given language, defaulting to English
func (t Text) In(lang Language) string {
	if lang == LanguageZH {
		return t.ZH
	}
	return t.EN
}

// IsZero reports whether both sides of the pair are empty
func (t Text) IsZero() bool {
	return t.EN == "" && t.ZH == ""
}

// Option is a selectable choice on a single- or multi-choice question
type Option struct {
	ID   string `json:"id" bson:"id"`
	Text Text   `json:"text" bson:"text"`
}

// ScaleLabels are the two extreme labels of a scale question
type ScaleLabels struct {
	Min Text `json:"min" bson:"min"`
	Max Text `json:"max" bson:"max"`
}

// Question is one immutable catalog entry. The same ID may appear in
// several menus; the life variant replaces the base text for respondents
// without corporate experience.
type Question struct {
	ID          int          `json:"id" bson:"_id"`
	Kind        QuestionKind `json:"kind" bson:"kind"`
	Text        Text         `json:"text" bson:"text"`
	TextLife    Text         `json:"textLife,omitempty" bson:"textLife,omitempty"`
	Options     []Option     `json:"options,omitempty" bson:"options,omitempty"`
	ScaleLabels *ScaleLabels `json:"scaleLabels,omitempty" bson:"scaleLabels,omitempty"`

	// Trait attribution for scale questions. Tags applies regardless of
	// gender; when empty, TagsMale/TagsFemale apply per resolved gender.
	Tags       []TraitLabel `json:"tags,omitempty" bson:"tags,omitempty"`
	TagsMale   []TraitLabel `json:"tagsMale,omitempty" bson:"tagsMale,omitempty"`
	TagsFemale []TraitLabel `json:"tagsFemale,omitempty" bson:"tagsFemale,omitempty"`

	// Exclusive lists option IDs that cannot coexist with other selections
	// on a multi-choice question ("none of the above" style options).
	Exclusive []string `json:"exclusive,omitempty" bson:"exclusive,omitempty"`
}

// OptionByID returns the option with the given ID, or nil
func (q *Question) OptionByID(id string) *Option {
	for i := range q.Options {
		if q.Options[i].ID == id {
			return &q.Options[i]
		}
	}
	return nil
}

// IsExclusiveOption reports whether the option ID is marked exclusive
func (q *Question) IsExclusiveOption(id string) bool {
	for _, e := range q.Exclusive {
		if e == id {
			return true
		}
	}
	return false
}

// ResolvedText picks the life variant when the respondent has no
// corporate background and a variant exists.
func (q *Question) ResolvedText(workedInCorporate bool) Text {
	if !workedInCorporate && !q.TextLife.IsZero() {
		return q.TextLife
	}
	return q.Text
}
