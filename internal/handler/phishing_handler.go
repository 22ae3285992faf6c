package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "cyberguard/internal/errors"
	"cyberguard/internal/model"
	"cyberguard/internal/service"
)

const phishingSubmittedMessage = "URL submitted for review"

// PhishingHandler serves URL submission and scoring endpoints.
type PhishingHandler struct {
	submissions service.SubmissionService
	urls        service.URLService
}

// NewPhishingHandler creates a new phishing handler.
func NewPhishingHandler(submissions service.SubmissionService, urls service.URLService) *PhishingHandler {
	return &PhishingHandler{submissions: submissions, urls: urls}
}

// URLRequest carries a URL to submit or score.
type URLRequest struct {
	URL string `json:"url" validate:"required"`
}

// SubmitResponse is returned when a submission is queued.
type SubmitResponse struct {
	Success      bool                   `json:"success"`
	SubmissionID string                 `json:"submissionId"`
	Status       model.SubmissionStatus `json:"status"`
	Message      string                 `json:"message"`
}

// PhishingSubmissionsResponse lists phishing submissions.
type PhishingSubmissionsResponse struct {
	Submissions []model.PhishingSubmission `json:"submissions"`
}

// Submit godoc
// @Summary Submit a URL for phishing review
// @Tags phishing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body URLRequest true "URL"
// @Success 200 {object} SubmitResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /phishing/submissions [post]
func (h *PhishingHandler) Submit(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	var req URLRequest
	if err := bindAndValidate(c, &req, apperrors.ErrURLRequired); err != nil {
		return err
	}

	id, err := h.submissions.SubmitPhishing(c.Request().Context(), caller.UID, req.URL)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, SubmitResponse{
		Success:      true,
		SubmissionID: id,
		Status:       model.SubmissionStatusPending,
		Message:      phishingSubmittedMessage,
	})
}

// List godoc
// @Summary List the caller's phishing submissions
// @Tags phishing
// @Produce json
// @Security BearerAuth
// @Success 200 {object} PhishingSubmissionsResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /phishing/submissions [get]
func (h *PhishingHandler) List(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	submissions, err := h.submissions.ListUserPhishing(c.Request().Context(), caller.UID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, PhishingSubmissionsResponse{Submissions: submissions})
}

// Check godoc
// @Summary Score a URL and log the result
// @Tags phishing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body URLRequest true "URL"
// @Success 200 {object} scoring.URLRiskAssessment
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /phishing/check [post]
func (h *PhishingHandler) Check(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	var req URLRequest
	if err := bindAndValidate(c, &req, apperrors.ErrURLRequired); err != nil {
		return err
	}

	assessment, err := h.urls.CheckURL(c.Request().Context(), caller.UID, req.URL)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, assessment)
}

// Analyze godoc
// @Summary Explain the risk of a URL
// @Description Runs the detailed rule set. Results are not stored.
// @Tags phishing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body URLRequest true "URL"
// @Success 200 {object} scoring.DetailedAnalysis
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /phishing/analyze [post]
func (h *PhishingHandler) Analyze(c echo.Context) error {
	if _, err := callerFrom(c); err != nil {
		return err
	}

	var req URLRequest
	if err := bindAndValidate(c, &req, apperrors.ErrURLRequired); err != nil {
		return err
	}

	analysis, err := h.urls.AnalyzeURL(c.Request().Context(), req.URL)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, analysis)
}
