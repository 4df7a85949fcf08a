package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"writeyourmep/internal/letter"
	"writeyourmep/internal/mep/models"
	"writeyourmep/internal/tracker"
	"writeyourmep/pkg/platform/httputil"
	"writeyourmep/pkg/requestcontext"
)

const (
	msgSubmissionRecorded = "Submission recorded successfully"
	msgSubmissionFailed   = "Failed to record submission"
)

// Service defines the contact operations the handler depends on.
// Returns domain objects, not HTTP response DTOs.
type Service interface {
	Countries(ctx context.Context) []string
	Representatives(ctx context.Context, country string) ([]models.Representative, error)
	Preview(ctx context.Context, fields letter.Fields) letter.Letter
	RecordSubmission(ctx context.Context, sub tracker.Submission) bool
	ComposeMailto(ctx context.Context, cmd models.SendCommand) (*models.Mailto, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/", h.HandleCountries)
	r.Get("/api/meps/{country}", h.HandleRepresentatives)
	r.Post("/preview", h.HandlePreview)
	r.Post("/record_submission", h.HandleRecordSubmission)
	r.Post("/send", h.HandleSend)
}

// HandleCountries lists the countries available for lookup.
func (h *Handler) HandleCountries(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, &models.CountriesResponse{
		Countries: h.service.Countries(r.Context()),
	})
}

// HandleRepresentatives lists a country's representatives with usable
// addresses. The country path segment is matched exactly.
func (h *Handler) HandleRepresentatives(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	country := chi.URLParam(r, "country")

	reps, err := h.service.Representatives(ctx, country)
	if err != nil {
		h.logger.InfoContext(ctx, "representatives lookup failed", "error", err, "country", country, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, models.ToRepresentativeResponses(reps))
}

// HandlePreview renders the default letter without side effects.
func (h *Handler) HandlePreview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[models.PreviewRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	l := h.service.Preview(ctx, req.ToFields())
	httputil.WriteJSON(w, http.StatusOK, &models.PreviewResponse{
		Subject: l.Subject,
		Content: l.Body,
	})
}

// HandleRecordSubmission forwards a submission to the tracker. Tracker
// failure is reported as 500 with success=false.
func (h *Handler) HandleRecordSubmission(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[models.RecordSubmissionRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	if !h.service.RecordSubmission(ctx, req.ToSubmission()) {
		h.logger.WarnContext(ctx, "submission not recorded", "country", req.Country, "request_id", requestID)
		httputil.WriteJSON(w, http.StatusInternalServerError, &models.RecordSubmissionResponse{
			Success: false,
			Message: msgSubmissionFailed,
		})
		return
	}

	httputil.WriteJSON(w, http.StatusOK, &models.RecordSubmissionResponse{
		Success: true,
		Message: msgSubmissionRecorded,
	})
}

// HandleSend returns a mailto link for the user's own mail client.
func (h *Handler) HandleSend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[models.SendRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	mailto, err := h.service.ComposeMailto(ctx, req.ToCommand())
	if err != nil {
		h.logger.WarnContext(ctx, "compose mailto failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, &models.SendResponse{
		Success:    true,
		MailtoLink: mailto.Link,
		MEPName:    mailto.MEPName,
		MEPEmail:   mailto.MEPEmail,
	})
}
