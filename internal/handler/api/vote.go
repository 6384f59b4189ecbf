package api

import (
	"errors"
	"net/http"

	reqdto "sneakdrop/internal/handler/dto/request"
	resdto "sneakdrop/internal/handler/dto/response"
	"sneakdrop/internal/handler/httperr"
	"sneakdrop/internal/handler/middleware"
	"sneakdrop/internal/usecase/commands"
	"sneakdrop/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	msgVoteRecorded     = "Ton vote a bien été pris en compte !"
	msgVoteRemoved      = "Ton like a bien été retiré."
	msgAlreadyVoted     = "Tu as déjà liké ce produit ce mois-ci."
	msgVoteLimitReached = "Tu as atteint ta limite de likes pour ce mois-ci."
	msgNoVoteToRemove   = "Aucun like récent à retirer"
	msgProductNotFound  = "Produit introuvable"
	msgInvalidBody      = "Requête invalide"
	msgInternalError    = "Une erreur est survenue, réessaie plus tard"
)

type VoteHandler struct {
	voteCommands commands.VoteCommands
	voteQueries  queries.VoteQueries
}

func NewVoteHandler(voteCommands commands.VoteCommands, voteQueries queries.VoteQueries) *VoteHandler {
	return &VoteHandler{
		voteCommands: voteCommands,
		voteQueries:  voteQueries,
	}
}

// @Summary Cast a vote
// @Description Cast a vote for a product, subject to the rolling-window rules
// @Tags votes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.VoteRequest true "Vote request"
// @Success 200 {object} resdto.VoteMutationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/votes [post]
func (h *VoteHandler) CastVote(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user in context"), "Authentification requise")
		return
	}

	productID, ok := h.bindProductID(c)
	if !ok {
		return
	}

	result, err := h.voteCommands.Cast(c.Request.Context(), userID, productID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrProductNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, msgProductNotFound)
		case errors.Is(err, commands.ErrDuplicateVote):
			httperr.AbortWithError(c, http.StatusConflict, err, msgAlreadyVoted)
		case errors.Is(err, commands.ErrVoteLimit):
			httperr.AbortWithError(c, http.StatusConflict, err, msgVoteLimitReached)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternalError)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.VoteMutationResponse{
		Message: msgVoteRecorded,
		Votes:   result.Votes,
	})
}

// @Summary Vote status
// @Description All-time vote count for a product and whether the caller holds an active vote
// @Tags votes
// @Produce json
// @Param productId query string true "Product ID"
// @Success 200 {object} resdto.VoteStatusResponse
// @Failure 400 {object} httperr.Response
// @Router /api/votes [get]
func (h *VoteHandler) GetVoteStatus(c *gin.Context) {
	raw := c.Query("productId")
	if raw == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errors.New("missing productId"), msgInvalidBody)
		return
	}

	productID, err := uuid.Parse(raw)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidBody)
		return
	}

	// Anonymous callers get userVoted=false, never an auth error.
	var userID *uuid.UUID
	if id, ok := middleware.GetUserID(c); ok {
		userID = &id
	}

	status, err := h.voteQueries.Status(c.Request.Context(), productID, userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternalError)
		return
	}

	c.JSON(http.StatusOK, resdto.FromVoteStatus(status))
}

// @Summary Remove a vote
// @Description Remove the caller's most recent vote for a product
// @Tags votes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.VoteRequest true "Vote request"
// @Success 200 {object} resdto.VoteMutationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/votes [delete]
func (h *VoteHandler) RemoveVote(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user in context"), "Authentification requise")
		return
	}

	productID, ok := h.bindProductID(c)
	if !ok {
		return
	}

	result, err := h.voteCommands.Remove(c.Request.Context(), userID, productID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrVoteNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, msgNoVoteToRemove)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternalError)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.VoteMutationResponse{
		Message: msgVoteRemoved,
		Votes:   result.Votes,
	})
}

func (h *VoteHandler) bindProductID(c *gin.Context) (uuid.UUID, bool) {
	var req reqdto.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidBody)
		return uuid.Nil, false
	}

	productID, err := req.ParseProductID()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidBody)
		return uuid.Nil, false
	}
	return productID, true
}
