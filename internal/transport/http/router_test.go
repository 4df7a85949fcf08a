package httptransport

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/suite"

	"writeyourmep/internal/directory"
	"writeyourmep/internal/letter"
	"writeyourmep/internal/mep/handler"
	"writeyourmep/internal/mep/service"
	"writeyourmep/internal/platform/health"
	"writeyourmep/internal/tracker"
	"writeyourmep/pkg/email"
	request "writeyourmep/pkg/platform/middleware/request"
	"writeyourmep/pkg/testutil"
)

const janeDoePreview = `{"first_name":"Jane","last_name":"Doe","country":"France","mep_name":"Jean Martin"}`

type RouterSuite struct {
	suite.Suite
	logger     *slog.Logger
	directory  directory.Directory
	webhookURL string
	router     http.Handler
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupTest() {
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	s.directory = testutil.SampleDirectory()
	s.webhookURL = ""
	s.build()
}

func (s *RouterSuite) build() {
	ctx := context.Background()
	reg := prometheus.NewRegistry()

	store := directory.NewStore(ctx, directory.StaticLoader{Directory: s.directory}, s.logger)
	gen, err := letter.NewGenerator(letter.AIRisk)
	s.Require().NoError(err)
	tr := tracker.New(tracker.Config{URL: s.webhookURL, Timeout: 200 * time.Millisecond, Metrics: tracker.NewMetrics(reg)}, s.logger)

	healthHandler := health.New("test")
	healthHandler.RegisterCheck("directory", store.Check)

	s.router = NewRouter(RouterConfig{
		Logger:         s.logger,
		Metrics:        request.NewMetrics(reg),
		MetricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	}, handler.New(service.New(store, gen, tr, s.logger), s.logger), healthHandler)
}

func (s *RouterSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *RouterSuite) decode(rec *httptest.ResponseRecorder, v any) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), v))
}

func (s *RouterSuite) TestIndexListsSortedCountries() {
	rec := s.do(http.MethodGet, "/", "")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"countries":["France","Germany","Malta"]}`, rec.Body.String())
	s.NotEmpty(rec.Header().Get("X-Request-ID"))
}

func (s *RouterSuite) TestRepresentativesOnlyIncludeValidEmails() {
	rec := s.do(http.MethodGet, "/api/meps/France", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var reps []map[string]string
	s.decode(rec, &reps)
	s.Require().Len(reps, 1)
	s.Equal("Jean Martin", reps[0]["name"])
	for _, rep := range reps {
		s.True(email.Valid(rep["email"]))
	}
}

func (s *RouterSuite) TestUnknownCountryIs404() {
	rec := s.do(http.MethodGet, "/api/meps/Atlantis", "")
	s.Equal(http.StatusNotFound, rec.Code)

	var body map[string]string
	s.decode(rec, &body)
	s.Equal("not_found", body["error"])
	s.NotEmpty(body["error_description"])
}

func (s *RouterSuite) TestPreviewJaneDoe() {
	rec := s.do(http.MethodPost, "/preview", janeDoePreview)
	s.Require().Equal(http.StatusOK, rec.Code)

	var body map[string]string
	s.decode(rec, &body)
	s.Equal("Concerns about AI risks", body["subject"])
	s.Contains(body["content"], "Jane Doe")
	s.Contains(body["content"], "France")

	again := s.do(http.MethodPost, "/preview", janeDoePreview)
	s.Equal(rec.Body.String(), again.Body.String(), "preview is idempotent")
}

func (s *RouterSuite) TestSendRejectsInvalidMEPEmail() {
	rec := s.do(http.MethodPost, "/send",
		`{"first_name":"Jane","last_name":"Doe","country":"France","mep_name":"Jean Martin","mep_email":"not-an-email"}`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterSuite) TestSendSucceedsWithoutTracker() {
	body := `{"first_name":"Jane","last_name":"Doe","country":"France","mep_name":"Jean Martin","mep_email":"jean.martin@europarl.europa.eu"}`

	rec := s.do(http.MethodPost, "/send", body)
	s.Require().Equal(http.StatusOK, rec.Code)

	var resp struct {
		Success    bool   `json:"success"`
		MailtoLink string `json:"mailto_link"`
		MEPName    string `json:"mep_name"`
		MEPEmail   string `json:"mep_email"`
	}
	s.decode(rec, &resp)
	s.True(resp.Success)
	s.Equal("Jean Martin", resp.MEPName)
	s.Equal("jean.martin@europarl.europa.eu", resp.MEPEmail)
	s.True(strings.HasPrefix(resp.MailtoLink, "mailto:jean.martin@europarl.europa.eu?subject=Concerns%20about%20AI%20risks&body="))

	bodyParam := resp.MailtoLink[strings.Index(resp.MailtoLink, "&body=")+len("&body="):]
	decoded, err := url.PathUnescape(bodyParam)
	s.Require().NoError(err)
	s.Contains(decoded, "Jane Doe")

	again := s.do(http.MethodPost, "/send", body)
	s.Equal(rec.Body.String(), again.Body.String(), "send is idempotent")
}

func (s *RouterSuite) TestSendSucceedsWithUnreachableTracker() {
	srv := httptest.NewServer(http.NotFoundHandler())
	s.webhookURL = srv.URL
	srv.Close()
	s.build()

	rec := s.do(http.MethodPost, "/send",
		`{"first_name":"Jane","last_name":"Doe","country":"France","mep_name":"Jean Martin","mep_email":"jean.martin@europarl.europa.eu"}`)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *RouterSuite) TestRecordSubmission() {
	submission := `{"first_name":"Jane","last_name":"Doe","country":"France","mep_name":"Jean Martin","mep_email":"jean.martin@europarl.europa.eu"}`

	s.Run("tracking disabled", func() {
		rec := s.do(http.MethodPost, "/record_submission", submission)
		s.Equal(http.StatusInternalServerError, rec.Code)
		s.JSONEq(`{"success":false,"message":"Failed to record submission"}`, rec.Body.String())
	})

	s.Run("webhook accepts", func() {
		var received map[string]string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s.NoError(json.NewDecoder(r.Body).Decode(&received))
			_, _ = io.WriteString(w, `{"success":true}`)
		}))
		defer srv.Close()
		s.webhookURL = srv.URL
		s.build()

		rec := s.do(http.MethodPost, "/record_submission", submission)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"success":true,"message":"Submission recorded successfully"}`, rec.Body.String())
		s.Equal("France", received["country"])
		s.Equal("", received["user_email"])
	})
}

func (s *RouterSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/health", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var body map[string]any
	s.decode(rec, &body)
	s.Equal("healthy", body["status"])
	ts, ok := body["timestamp"].(string)
	s.Require().True(ok)
	_, err := time.Parse(time.RFC3339, ts)
	s.NoError(err)

	s.Equal(http.StatusOK, s.do(http.MethodGet, "/health/ready", "").Code)
}

func (s *RouterSuite) TestEmptyDirectoryBehavesSanely() {
	s.directory = directory.Directory{}
	s.build()

	s.JSONEq(`{"countries":[]}`, s.do(http.MethodGet, "/", "").Body.String())
	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/api/meps/France", "").Code)
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/health", "").Code)
	s.Equal(http.StatusServiceUnavailable, s.do(http.MethodGet, "/health/ready", "").Code)
	s.Equal(http.StatusOK, s.do(http.MethodPost, "/preview", janeDoePreview).Code)
}

func (s *RouterSuite) TestRejectsNonJSONContentType() {
	req := httptest.NewRequest(http.MethodPost, "/preview", strings.NewReader("first_name=Jane"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusUnsupportedMediaType, rec.Code)
}

func (s *RouterSuite) TestOversizedBodyIsRejected() {
	huge := `{"first_name":"` + strings.Repeat("a", 128*1024) + `"}`
	rec := s.do(http.MethodPost, "/preview", huge)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterSuite) TestMetricsEndpoint() {
	s.do(http.MethodGet, "/api/meps/France", "")

	rec := s.do(http.MethodGet, "/metrics", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `mep_endpoint_latency_seconds_count{endpoint="/api/meps/{country}",method="GET"} 1`)
}
