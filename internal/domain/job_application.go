package domain

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrEmptyJobID          = errors.New("job id cannot be empty")
	ErrEmptyApplicantEmail = errors.New("applicant email cannot be empty")
)

// JobApplication links an applicant to a job. Applications are insert-only;
// they are never updated or deleted. The application payload (cover letter,
// resume link, and whatever else the client sends) rides in the inline map.
type JobApplication struct {
	ID             primitive.ObjectID     `bson:"_id,omitempty" json:"_id,omitempty"`
	JobID          primitive.ObjectID     `bson:"jobId" json:"jobId"`
	ApplicantEmail string                 `bson:"applicantEmail" json:"applicantEmail"`
	Extra          map[string]interface{} `bson:",inline" json:"-"`
}

// Validate checks the reference fields; the payload is free-form.
func (a *JobApplication) Validate() error {
	if a.JobID.IsZero() {
		return ErrEmptyJobID
	}
	if a.ApplicantEmail == "" {
		return ErrEmptyApplicantEmail
	}
	return nil
}
