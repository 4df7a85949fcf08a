package service

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"writeyourmep/internal/directory"
	"writeyourmep/internal/letter"
	"writeyourmep/internal/mep/models"
	"writeyourmep/internal/tracker"
	dErrors "writeyourmep/pkg/domain-errors"
	"writeyourmep/pkg/email"
	"writeyourmep/pkg/testutil"
)

var janeDoe = letter.Fields{FirstName: "Jane", LastName: "Doe", Country: "France", MEPName: "Jean Martin"}

type fakeRecorder struct {
	result tracker.Result
	calls  []tracker.Submission
}

func (f *fakeRecorder) Record(_ context.Context, sub tracker.Submission) tracker.Result {
	f.calls = append(f.calls, sub)
	return f.result
}

type ServiceSuite struct {
	suite.Suite
	ctx      context.Context
	recorder *fakeRecorder
	service  *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctx = context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store := directory.NewStore(s.ctx, directory.StaticLoader{Directory: testutil.SampleDirectory()}, logger)

	gen, err := letter.NewGenerator(letter.AIRisk)
	s.Require().NoError(err)

	s.recorder = &fakeRecorder{}
	s.service = New(store, gen, s.recorder, logger)
}

func (s *ServiceSuite) TestCountries() {
	s.Equal([]string{"France", "Germany", "Malta"}, s.service.Countries(s.ctx))
}

func (s *ServiceSuite) TestRepresentatives() {
	s.Run("only recoverable addresses are returned", func() {
		reps, err := s.service.Representatives(s.ctx, "France")
		s.Require().NoError(err)
		s.Equal([]models.Representative{{
			Name:           "Jean Martin",
			Email:          testutil.JeanMartinEmail,
			PoliticalGroup: "Renew Europe Group",
			NationalGroup:  "Renaissance",
		}}, reps)

		for _, rep := range reps {
			s.True(email.Valid(rep.Email))
		}
	})

	s.Run("known country without members is empty", func() {
		reps, err := s.service.Representatives(s.ctx, "Malta")
		s.Require().NoError(err)
		s.NotNil(reps)
		s.Empty(reps)
	})

	s.Run("unknown country is not found", func() {
		_, err := s.service.Representatives(s.ctx, "Atlantis")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("lookup is case sensitive", func() {
		_, err := s.service.Representatives(s.ctx, "france")
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func (s *ServiceSuite) TestPreview() {
	l := s.service.Preview(s.ctx, janeDoe)

	s.Equal("Concerns about AI risks", l.Subject)
	s.Contains(l.Body, "Jane Doe")
	s.Contains(l.Body, "France")
	s.Equal(l, s.service.Preview(s.ctx, janeDoe))
}

func (s *ServiceSuite) TestRecordSubmission() {
	sub := tracker.Submission{FirstName: "Jane", LastName: "Doe", Country: "France", MEPName: "Jean Martin", MEPEmail: "jean.martin@europarl.europa.eu"}

	s.recorder.result = tracker.Result{Outcome: tracker.OutcomeRecorded}
	s.True(s.service.RecordSubmission(s.ctx, sub))

	s.recorder.result = tracker.Result{Outcome: tracker.OutcomeTimeout}
	s.False(s.service.RecordSubmission(s.ctx, sub))

	s.recorder.result = tracker.Result{Outcome: tracker.OutcomeDisabled}
	s.False(s.service.RecordSubmission(s.ctx, sub))

	s.Len(s.recorder.calls, 3)
	s.Equal(sub, s.recorder.calls[0])
}

func (s *ServiceSuite) TestComposeMailto() {
	cmd := models.SendCommand{Fields: janeDoe, MEPEmail: "jean.martin@europarl.europa.eu"}

	s.Run("default letter", func() {
		mailto, err := s.service.ComposeMailto(s.ctx, cmd)
		s.Require().NoError(err)
		s.Equal("Jean Martin", mailto.MEPName)
		s.Equal("jean.martin@europarl.europa.eu", mailto.MEPEmail)
		s.True(strings.HasPrefix(mailto.Link, "mailto:jean.martin@europarl.europa.eu?subject=Concerns%20about%20AI%20risks&body=Dear%20Jean%20Martin%2C"))
		s.Empty(s.recorder.calls, "sending never contacts the tracker")
	})

	s.Run("custom letter overrides", func() {
		custom := cmd
		custom.CustomSubject = "Hello"
		custom.CustomBody = "My own words"
		mailto, err := s.service.ComposeMailto(s.ctx, custom)
		s.Require().NoError(err)
		s.Equal("mailto:jean.martin@europarl.europa.eu?subject=Hello&body=My%20own%20words", mailto.Link)
	})

	s.Run("partial custom letter falls back", func() {
		partial := cmd
		partial.CustomSubject = "Hello"
		mailto, err := s.service.ComposeMailto(s.ctx, partial)
		s.Require().NoError(err)

		body := mailto.Link[strings.Index(mailto.Link, "&body=")+len("&body="):]
		decoded, err := url.PathUnescape(body)
		s.Require().NoError(err)
		s.Contains(decoded, "Jane Doe\n\nFrance")
	})

	s.Run("idempotent", func() {
		first, err := s.service.ComposeMailto(s.ctx, cmd)
		s.Require().NoError(err)
		second, err := s.service.ComposeMailto(s.ctx, cmd)
		s.Require().NoError(err)
		s.Equal(first, second)
	})

	s.Run("invalid addresses", func() {
		bad := cmd
		bad.MEPEmail = "not-an-email"
		_, err := s.service.ComposeMailto(s.ctx, bad)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))

		bad = cmd
		bad.UserEmail = "jane@"
		_, err = s.service.ComposeMailto(s.ctx, bad)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func (s *ServiceSuite) TestConcurrentLookupsDuringReload() {
	store := directory.NewStore(s.ctx, directory.StaticLoader{Directory: testutil.SampleDirectory()},
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	gen, err := letter.NewGenerator(letter.AIRisk)
	s.Require().NoError(err)
	svc := New(store, gen, s.recorder, slog.New(slog.NewTextHandler(io.Discard, nil)))

	result := testutil.RunConcurrent(60, func(idx int) error {
		switch idx % 3 {
		case 0:
			return store.Reload(s.ctx)
		case 1:
			_, err := svc.Representatives(s.ctx, "France")
			return err
		default:
			_, err := svc.Representatives(s.ctx, "Atlantis")
			return err
		}
	})

	s.Equal(int32(40), result.Successes)
	s.Equal(int32(20), result.NotFounds)
	s.Zero(result.Errors)
}
