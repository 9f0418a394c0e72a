package model

import "time"

// SubmissionResponse is one flattened answer inside a submission
type SubmissionResponse struct {
	QuestionID int         `json:"questionId" bson:"questionId"`
	Value      AnswerValue `json:"value" bson:"value"`
}

// Submission is the archived outcome of one completed test
type Submission struct {
	ID            string                    `json:"id" bson:"_id,omitempty"`
	RespondentID  string                    `json:"respondentId" bson:"respondentId"`
	Identity      Identity                  `json:"identity" bson:"identity"`
	CorporateRole CorporateRole             `json:"corporateRole,omitempty" bson:"corporateRole,omitempty"`
	Responses     []SubmissionResponse      `json:"responses" bson:"responses"`
	TraitStats    map[TraitLabel]TraitStats `json:"traitStats" bson:"traitStats"`
	BestMatchID   string                    `json:"bestMatchId" bson:"bestMatchId"`
	SubmittedAt   time.Time                 `json:"submittedAt" bson:"submittedAt"`
}
