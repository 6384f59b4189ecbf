package api

import (
	"errors"
	"net/http"

	"sneakdrop/internal/domain/submission"
	reqdto "sneakdrop/internal/handler/dto/request"
	resdto "sneakdrop/internal/handler/dto/response"
	"sneakdrop/internal/handler/httperr"
	"sneakdrop/internal/handler/middleware"
	"sneakdrop/internal/usecase/commands"
	"sneakdrop/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SubmissionHandler struct {
	submissionCommands commands.SubmissionCommands
	submissionQueries  queries.SubmissionQueries
}

func NewSubmissionHandler(submissionCommands commands.SubmissionCommands, submissionQueries queries.SubmissionQueries) *SubmissionHandler {
	return &SubmissionHandler{
		submissionCommands: submissionCommands,
		submissionQueries:  submissionQueries,
	}
}

// @Summary Suggest a sneaker
// @Description Submit a sneaker suggestion for the ballot
// @Tags submissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateSubmissionRequest true "Submission request"
// @Success 201 {object} resdto.CreateSubmissionResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/submissions [post]
func (h *SubmissionHandler) CreateSubmission(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user in context"), "Authentification requise")
		return
	}

	var req reqdto.CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidBody)
		return
	}

	result, err := h.submissionCommands.Create(c.Request.Context(), commands.CreateSubmissionRequest{
		Brand: req.Brand,
		Model: req.Model,
		Note:  req.Note,
	}, userID)
	if err != nil {
		if isSubmissionValidationErr(err) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidBody)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternalError)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateSubmissionResponse{ID: result.SubmissionID})
}

// @Summary List own submissions
// @Description The caller's sneaker suggestions
// @Tags submissions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.SubmissionResponse
// @Failure 401 {object} httperr.Response
// @Router /api/submissions [get]
func (h *SubmissionHandler) ListOwnSubmissions(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user in context"), "Authentification requise")
		return
	}
	role, _ := middleware.GetUserRole(c)

	views, err := h.submissionQueries.ListByUser(c.Request.Context(), userID, userID, role.String())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternalError)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSubmissionViews(views))
}

// @Summary List all submissions
// @Description Every submission across users (admin only)
// @Tags submissions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.SubmissionResponse
// @Failure 403 {object} httperr.Response
// @Router /api/admin/submissions [get]
func (h *SubmissionHandler) ListAllSubmissions(c *gin.Context) {
	role, _ := middleware.GetUserRole(c)

	views, err := h.submissionQueries.ListAll(c.Request.Context(), role.String())
	if err != nil {
		if errors.Is(err, queries.ErrAccessDenied) {
			httperr.AbortWithError(c, http.StatusForbidden, err, "Accès refusé")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternalError)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSubmissionViews(views))
}

// @Summary Review a submission
// @Description Approve or reject a submission (admin only)
// @Tags submissions
// @Accept json
// @Security BearerAuth
// @Param id path string true "Submission ID"
// @Param request body reqdto.UpdateSubmissionStatusRequest true "Status request"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/submissions/{id} [patch]
func (h *SubmissionHandler) UpdateSubmissionStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidBody)
		return
	}

	var req reqdto.UpdateSubmissionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidBody)
		return
	}

	err = h.submissionCommands.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrSubmissionNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Suggestion introuvable")
		case errors.Is(err, submission.ErrInvalidStatus):
			httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidBody)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternalError)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func isSubmissionValidationErr(err error) bool {
	return errors.Is(err, submission.ErrEmptyBrand) ||
		errors.Is(err, submission.ErrEmptyModel) ||
		errors.Is(err, submission.ErrNoteTooLong)
}
