package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"chonapi/internal/model"
)

type SubmissionRepo interface {
	Create(ctx context.Context, submission *model.Submission) error
	GetByRespondentID(ctx context.Context, respondentID string) (*model.Submission, error)
	ExistsByRespondentID(ctx context.Context, respondentID string) (bool, error)
}

type submissionRepo struct {
	collection *mongo.Collection
}

func NewSubmissionRepo(db *mongo.Database) SubmissionRepo {
	return &submissionRepo{
		collection: db.Collection("submissions"),
	}
}

func (r *submissionRepo) Create(ctx context.Context, submission *model.Submission) error {
	if submission.ID == "" {
		submission.ID = uuid.NewString()
	}
	if submission.SubmittedAt.IsZero() {
		submission.SubmittedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, submission)
	return err
}

func (r *submissionRepo) GetByRespondentID(ctx context.Context, respondentID string) (*model.Submission, error) {
	// Latest submission wins when a respondent retook the test
	opts := options.FindOne().SetSort(bson.M{"submittedAt": -1})

	var submission model.Submission
	err := r.collection.FindOne(ctx, bson.M{"respondentId": respondentID}, opts).Decode(&submission)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &submission, nil
}

func (r *submissionRepo) ExistsByRespondentID(ctx context.Context, respondentID string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"respondentId": respondentID})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
