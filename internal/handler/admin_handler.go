package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "cyberguard/internal/errors"
	"cyberguard/internal/model"
	"cyberguard/internal/service"
)

const verdictUpdatedMessage = "Verdict updated successfully"

// AdminHandler serves the review queues. Routes are mounted behind the admin gate.
type AdminHandler struct {
	submissions service.SubmissionService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(submissions service.SubmissionService) *AdminHandler {
	return &AdminHandler{submissions: submissions}
}

// VerdictRequest closes a submission.
type VerdictRequest struct {
	SubmissionID string        `json:"submissionId" validate:"required"`
	Verdict      model.Verdict `json:"verdict" validate:"required"`
	AdminNote    string        `json:"adminNote"`
}

// VerdictResponse is returned after a verdict is recorded.
type VerdictResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ListPhishing godoc
// @Summary List every phishing submission
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} PhishingSubmissionsResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /admin/phishing/submissions [get]
func (h *AdminHandler) ListPhishing(c echo.Context) error {
	submissions, err := h.submissions.ListAllPhishing(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, PhishingSubmissionsResponse{Submissions: submissions})
}

// ListMalware godoc
// @Summary List every malware submission
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MalwareSubmissionsResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /admin/malware/submissions [get]
func (h *AdminHandler) ListMalware(c echo.Context) error {
	submissions, err := h.submissions.ListAllMalware(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, MalwareSubmissionsResponse{Submissions: submissions})
}

// UpdatePhishingVerdict godoc
// @Summary Record a phishing verdict
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body VerdictRequest true "Verdict (safe or phishing)"
// @Success 200 {object} VerdictResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /admin/phishing/verdict [post]
func (h *AdminHandler) UpdatePhishingVerdict(c echo.Context) error {
	return h.updateVerdict(c, h.submissions.UpdatePhishingVerdict)
}

// UpdateMalwareVerdict godoc
// @Summary Record a malware verdict
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body VerdictRequest true "Verdict (clean or malware)"
// @Success 200 {object} VerdictResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /admin/malware/verdict [post]
func (h *AdminHandler) UpdateMalwareVerdict(c echo.Context) error {
	return h.updateVerdict(c, h.submissions.UpdateMalwareVerdict)
}

type verdictFunc func(ctx context.Context, id string, verdict model.Verdict, note, adminID string) error

func (h *AdminHandler) updateVerdict(c echo.Context, update verdictFunc) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	var req VerdictRequest
	if err := bindAndValidate(c, &req, apperrors.ErrVerdictRequired); err != nil {
		return err
	}

	if err := update(c.Request().Context(), req.SubmissionID, req.Verdict, req.AdminNote, caller.UID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, VerdictResponse{Success: true, Message: verdictUpdatedMessage})
}
