// Package catalog holds the static questionnaire content: the question
// bank, the four identity menus, and the archetype definitions. The data
// is compiled in and never mutated at runtime.
package catalog

import (
	"fmt"

	"chonapi/internal/model"
)

// GenderQuestionID is the question whose answer resolves the
// respondent's gender (A female, B male).
const GenderQuestionID = 1

// CorporateExperienceQuestionID asks whether the respondent has worked
// in a corporate setting (A yes).
const CorporateExperienceQuestionID = 4

var questionsByID map[int]*model.Question

var menusByIdentity map[model.Identity]*model.Menu

var archetypesByID map[string]*model.Archetype

func init() {
	questionsByID = make(map[int]*model.Question, len(questions))
	for i := range questions {
		questionsByID[questions[i].ID] = &questions[i]
	}
	menusByIdentity = make(map[model.Identity]*model.Menu, len(menus))
	for i := range menus {
		menusByIdentity[menus[i].Identity] = &menus[i]
	}
	archetypesByID = make(map[string]*model.Archetype, len(archetypes))
	for i := range archetypes {
		archetypesByID[archetypes[i].ID] = &archetypes[i]
	}
}

// QuestionByID returns the catalog question, or nil if unknown
func QuestionByID(id int) *model.Question {
	return questionsByID[id]
}

// MenuFor returns the menu for an identity, or nil if unknown
func MenuFor(identity model.Identity) *model.Menu {
	return menusByIdentity[identity]
}

// ArchetypeByID returns the archetype, or nil if unknown
func ArchetypeByID(id string) *model.Archetype {
	return archetypesByID[id]
}

// Archetypes returns all archetypes in definition order
func Archetypes() []model.Archetype {
	return archetypes
}

// Questions returns the full question bank in definition order
func Questions() []model.Question {
	return questions
}

// Menus returns all four menus in definition order
func Menus() []model.Menu {
	return menus
}

// PreferredArchetypeFor maps a preference-question option ID to the
// archetype it favors ("" when the option carries no preference).
func PreferredArchetypeFor(optionID string) string {
	return preferredArchetypes[optionID]
}

// Validate checks internal consistency: unique question IDs, unique
// option IDs per question, menu members present in the bank, and the
// preference map targeting real archetypes. Run at startup.
func Validate() error {
	seen := make(map[int]bool, len(questions))
	for i := range questions {
		q := &questions[i]
		if seen[q.ID] {
			return fmt.Errorf("duplicate question id %d", q.ID)
		}
		seen[q.ID] = true
		opts := make(map[string]bool, len(q.Options))
		for _, o := range q.Options {
			if opts[o.ID] {
				return fmt.Errorf("question %d: duplicate option %q", q.ID, o.ID)
			}
			opts[o.ID] = true
		}
		for _, e := range q.Exclusive {
			if !opts[e] {
				return fmt.Errorf("question %d: exclusive option %q not found", q.ID, e)
			}
		}
	}
	for i := range menus {
		m := &menus[i]
		for _, s := range m.Sections {
			for _, id := range s.QuestionIDs {
				if !seen[id] {
					return fmt.Errorf("menu %s: unknown question id %d", m.Identity, id)
				}
			}
		}
	}
	pref := QuestionByID(PreferenceQuestionID)
	if pref == nil {
		return fmt.Errorf("preference question %d not in bank", PreferenceQuestionID)
	}
	for opt, id := range preferredArchetypes {
		if pref.OptionByID(opt) == nil {
			return fmt.Errorf("preference map: option %q not on question %d", opt, PreferenceQuestionID)
		}
		if ArchetypeByID(id) == nil {
			return fmt.Errorf("preference map: unknown archetype %q", id)
		}
	}
	return nil
}
