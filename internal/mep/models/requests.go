package models

import (
	"writeyourmep/internal/letter"
	"writeyourmep/internal/tracker"
	s "writeyourmep/pkg/string"
	"writeyourmep/pkg/validation"
)

// PreviewRequest asks for the default letter without sending anything.
type PreviewRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Country   string `json:"country" validate:"required"`
	MEPName   string `json:"mep_name" validate:"required"`
}

func (r *PreviewRequest) Normalize() {
	s.TrimStrings(&r.FirstName, &r.LastName, &r.Country, &r.MEPName)
}

func (r *PreviewRequest) Validate() error {
	return validation.Validate(r)
}

func (r *PreviewRequest) ToFields() letter.Fields {
	return letter.Fields{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Country:   r.Country,
		MEPName:   r.MEPName,
	}
}

// RecordSubmissionRequest is forwarded to the tracking webhook. Emails are
// only required to be present here; they are not format checked.
type RecordSubmissionRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	UserEmail string `json:"user_email"`
	Country   string `json:"country" validate:"required"`
	MEPName   string `json:"mep_name" validate:"required"`
	MEPEmail  string `json:"mep_email" validate:"required"`
}

func (r *RecordSubmissionRequest) Normalize() {
	s.TrimStrings(&r.FirstName, &r.LastName, &r.UserEmail, &r.Country, &r.MEPName, &r.MEPEmail)
}

func (r *RecordSubmissionRequest) Validate() error {
	return validation.Validate(r)
}

func (r *RecordSubmissionRequest) ToSubmission() tracker.Submission {
	return tracker.Submission{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		UserEmail: r.UserEmail,
		Country:   r.Country,
		MEPName:   r.MEPName,
		MEPEmail:  r.MEPEmail,
	}
}

// SendRequest builds a mailto link. Custom subject and content replace the
// default letter only when both are non-empty.
type SendRequest struct {
	FirstName     string `json:"first_name" validate:"required"`
	LastName      string `json:"last_name" validate:"required"`
	UserEmail     string `json:"user_email" validate:"omitempty,mailaddr"`
	Country       string `json:"country" validate:"required"`
	MEPName       string `json:"mep_name" validate:"required"`
	MEPEmail      string `json:"mep_email" validate:"required,mailaddr"`
	CustomSubject string `json:"custom_subject"`
	CustomContent string `json:"custom_content"`
}

func (r *SendRequest) Normalize() {
	s.TrimStrings(&r.FirstName, &r.LastName, &r.UserEmail, &r.Country, &r.MEPName, &r.MEPEmail,
		&r.CustomSubject, &r.CustomContent)
}

func (r *SendRequest) Validate() error {
	return validation.Validate(r)
}

func (r *SendRequest) ToCommand() SendCommand {
	return SendCommand{
		Fields: letter.Fields{
			FirstName: r.FirstName,
			LastName:  r.LastName,
			Country:   r.Country,
			MEPName:   r.MEPName,
		},
		MEPEmail:      r.MEPEmail,
		UserEmail:     r.UserEmail,
		CustomSubject: r.CustomSubject,
		CustomBody:    r.CustomContent,
	}
}
