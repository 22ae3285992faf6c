package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "cyberguard/internal/errors"
	"cyberguard/internal/model"
	"cyberguard/internal/service"
)

const malwareSubmittedMessage = "File submitted for malware check"

// MalwareHandler serves file submission endpoints.
type MalwareHandler struct {
	submissions service.SubmissionService
}

// NewMalwareHandler creates a new malware handler.
func NewMalwareHandler(submissions service.SubmissionService) *MalwareHandler {
	return &MalwareHandler{submissions: submissions}
}

// MalwareSubmitRequest identifies a file. At least one field is required.
type MalwareSubmitRequest struct {
	FileName string `json:"fileName" validate:"required_without=FileHash"`
	FileHash string `json:"fileHash" validate:"required_without=FileName"`
}

// MalwareSubmissionsResponse lists malware submissions.
type MalwareSubmissionsResponse struct {
	Submissions []model.MalwareSubmission `json:"submissions"`
}

// Submit godoc
// @Summary Submit a file reference for malware review
// @Tags malware
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body MalwareSubmitRequest true "File"
// @Success 200 {object} SubmitResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /malware/submissions [post]
func (h *MalwareHandler) Submit(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	var req MalwareSubmitRequest
	if err := bindAndValidate(c, &req, apperrors.ErrFileRequired); err != nil {
		return err
	}

	id, err := h.submissions.SubmitMalware(c.Request().Context(), caller.UID, model.FileRef{
		FileName: req.FileName,
		FileHash: req.FileHash,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, SubmitResponse{
		Success:      true,
		SubmissionID: id,
		Status:       model.SubmissionStatusPending,
		Message:      malwareSubmittedMessage,
	})
}

// List godoc
// @Summary List the caller's malware submissions
// @Tags malware
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MalwareSubmissionsResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /malware/submissions [get]
func (h *MalwareHandler) List(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	submissions, err := h.submissions.ListUserMalware(c.Request().Context(), caller.UID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, MalwareSubmissionsResponse{Submissions: submissions})
}
