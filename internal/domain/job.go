package domain

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrEmptyJobTitle      = errors.New("job title cannot be empty")
	ErrEmptyRecruiterMail = errors.New("recruiter email cannot be empty")
)

// Job is a job-board posting. RecruiterEmail identifies the owning user;
// only that user may modify or delete the posting. Applicants counts how
// many applications reference this job and is maintained as an atomic
// increment alongside application creation.
type Job struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title          string             `bson:"title" json:"title"`
	Company        string             `bson:"company,omitempty" json:"company,omitempty"`
	Category       string             `bson:"category,omitempty" json:"category,omitempty"`
	SalaryMin      float64            `bson:"salaryMin,omitempty" json:"salaryMin,omitempty"`
	SalaryMax      float64            `bson:"salaryMax,omitempty" json:"salaryMax,omitempty"`
	Description    string             `bson:"description,omitempty" json:"description,omitempty"`
	RecruiterEmail string             `bson:"recruiterEmail" json:"recruiterEmail"`
	Deadline       string             `bson:"deadline,omitempty" json:"deadline,omitempty"`
	Applicants     int                `bson:"applicants" json:"applicants"`
}

// Validate checks the fields required to route and authorize job mutations.
func (j *Job) Validate() error {
	if j.Title == "" {
		return ErrEmptyJobTitle
	}
	if j.RecruiterEmail == "" {
		return ErrEmptyRecruiterMail
	}
	return nil
}
