// Package service composes the directory, letter generator and submission
// tracker into the operations behind the HTTP surface.
package service

import (
	"context"
	"log/slog"

	"writeyourmep/internal/directory"
	"writeyourmep/internal/letter"
	"writeyourmep/internal/mep/models"
	"writeyourmep/internal/tracker"
	dErrors "writeyourmep/pkg/domain-errors"
	"writeyourmep/pkg/email"
	"writeyourmep/pkg/requestcontext"
)

// Directory is the read side of the representatives snapshot.
type Directory interface {
	Countries() []string
	Representatives(country string) ([]directory.Representative, bool)
}

// Recorder forwards a submission to the tracking webhook.
type Recorder interface {
	Record(ctx context.Context, sub tracker.Submission) tracker.Result
}

type Service struct {
	directory Directory
	letters   *letter.Generator
	recorder  Recorder
	logger    *slog.Logger
}

func New(dir Directory, letters *letter.Generator, recorder Recorder, logger *slog.Logger) *Service {
	return &Service{
		directory: dir,
		letters:   letters,
		recorder:  recorder,
		logger:    logger,
	}
}

// Countries returns every country in the directory, sorted.
func (s *Service) Countries(_ context.Context) []string {
	return s.directory.Countries()
}

// Representatives lists a country's members in directory order, dropping any
// whose stored address does not recover to a valid one.
func (s *Service) Representatives(ctx context.Context, country string) ([]models.Representative, error) {
	records, ok := s.directory.Representatives(country)
	if !ok {
		return nil, dErrors.New(dErrors.CodeNotFound, "country not found")
	}

	reps := make([]models.Representative, 0, len(records))
	skipped := 0
	for _, rec := range records {
		addr, ok := rec.Email()
		if !ok {
			skipped++
			continue
		}
		reps = append(reps, models.Representative{
			Name:           rec.Name,
			Email:          addr,
			PoliticalGroup: rec.PoliticalGroup,
			NationalGroup:  rec.NationalGroup,
		})
	}

	if skipped > 0 {
		s.logger.DebugContext(ctx, "skipped representatives without a usable email",
			"country", country,
			"skipped", skipped,
			"request_id", requestcontext.RequestID(ctx),
		)
	}
	return reps, nil
}

// Preview renders the default letter.
func (s *Service) Preview(_ context.Context, fields letter.Fields) letter.Letter {
	return s.letters.Generate(fields)
}

// RecordSubmission reports whether the webhook accepted the submission.
func (s *Service) RecordSubmission(ctx context.Context, sub tracker.Submission) bool {
	return s.recorder.Record(ctx, sub).Recorded()
}

// ComposeMailto builds the mailto link for a letter. It never contacts the
// tracker.
func (s *Service) ComposeMailto(_ context.Context, cmd models.SendCommand) (*models.Mailto, error) {
	if cmd.UserEmail != "" && !email.Valid(cmd.UserEmail) {
		return nil, dErrors.New(dErrors.CodeValidation, "user_email must be a valid email")
	}
	if !email.Valid(cmd.MEPEmail) {
		return nil, dErrors.New(dErrors.CodeValidation, "mep_email must be a valid email")
	}

	l := s.letters.Compose(cmd.Fields, cmd.CustomSubject, cmd.CustomBody)
	return &models.Mailto{
		Link:     letter.MailtoLink(cmd.MEPEmail, l.Subject, l.Body),
		MEPName:  cmd.Fields.MEPName,
		MEPEmail: cmd.MEPEmail,
	}, nil
}
