//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"sneakdrop/internal/domain/user"
	"sneakdrop/internal/handler/api"
	resdto "sneakdrop/internal/handler/dto/response"
	"sneakdrop/internal/usecase/commands"
	"sneakdrop/tests/common/builder"
	"sneakdrop/tests/common/httptest"
	"sneakdrop/tests/common/testutil"
	commandsmock "sneakdrop/tests/mock/commands"
	queriesmock "sneakdrop/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type VoteHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockVoteCommands
	mockQueries  *queriesmock.MockVoteQueries
	handler      *api.VoteHandler
	userID       uuid.UUID
}

func (s *VoteHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockVoteCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockVoteQueries(s.mockCtrl)
	s.handler = api.NewVoteHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	// Mock authentication middleware for testing
	requireAuth := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentification requise"})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleMember)
		c.Next()
	}
	optionalAuth := func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.userID)
			c.Set("user_role", user.RoleMember)
		}
		c.Next()
	}

	s.router.POST("/api/votes", requireAuth, s.handler.CastVote)
	s.router.GET("/api/votes", optionalAuth, s.handler.GetVoteStatus)
	s.router.DELETE("/api/votes", requireAuth, s.handler.RemoveVote)
}

func (s *VoteHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestVoteHandlerSuite(t *testing.T) {
	suite.Run(t, new(VoteHandlerTestSuite))
}

// ================================================================================
// TestCastVote
// ================================================================================

func (s *VoteHandlerTestSuite) TestCastVote() {
	url := "/api/votes"
	b := builder.NewVoteBuilder().WithUserID(s.userID)
	reqBody := b.BuildRequestDTO()
	result := b.BuildResult()

	s.Run("success: returns 200 with message and post-insert count", func() {
		s.mockCommands.EXPECT().Cast(gomock.Any(), s.userID, b.ProductID).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var resp resdto.VoteMutationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("Ton vote a bien été pris en compte !", resp.Message)
		s.Equal(result.Votes, resp.Votes)
	})

	s.Run("error: returns 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Authentification requise")
	})

	s.Run("error: returns 400 for missing productId", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("productId", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: returns 400 for non-uuid productId", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("productId", "not-a-uuid"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: returns 409 for duplicate vote", func() {
		s.mockCommands.EXPECT().Cast(gomock.Any(), s.userID, b.ProductID).
			Return(nil, commands.ErrDuplicateVote).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "déjà liké")
	})

	s.Run("error: returns 409 when the monthly limit is reached", func() {
		s.mockCommands.EXPECT().Cast(gomock.Any(), s.userID, b.ProductID).
			Return(nil, commands.ErrVoteLimit).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "limite")
	})

	s.Run("error: returns 404 for unknown product", func() {
		s.mockCommands.EXPECT().Cast(gomock.Any(), s.userID, b.ProductID).
			Return(nil, commands.ErrProductNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "introuvable")
	})
}

// ================================================================================
// TestGetVoteStatus
// ================================================================================

func (s *VoteHandlerTestSuite) TestGetVoteStatus() {
	b := builder.NewVoteBuilder().WithVotes(12)
	url := "/api/votes?productId=" + b.ProductID.String()

	s.Run("success: anonymous caller gets count with userVoted=false", func() {
		s.mockQueries.EXPECT().Status(gomock.Any(), b.ProductID, gomock.Nil()).
			Return(b.BuildStatus(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var resp resdto.VoteStatusResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(int64(12), resp.Votes)
		s.False(resp.UserVoted)
	})

	s.Run("success: authenticated caller gets windowed userVoted", func() {
		s.mockQueries.EXPECT().Status(gomock.Any(), b.ProductID, gomock.Not(gomock.Nil())).
			Return(b.AsUserVoted().BuildStatus(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var resp resdto.VoteStatusResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.True(resp.UserVoted)
	})

	s.Run("error: returns 400 without productId", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/votes", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

// ================================================================================
// TestRemoveVote
// ================================================================================

func (s *VoteHandlerTestSuite) TestRemoveVote() {
	url := "/api/votes"
	b := builder.NewVoteBuilder().WithUserID(s.userID).WithVotes(3)
	reqBody := b.BuildRequestDTO()

	s.Run("success: returns 200 with post-delete count", func() {
		s.mockCommands.EXPECT().Remove(gomock.Any(), s.userID, b.ProductID).
			Return(b.BuildResult(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, reqBody, "bearer-token")

		var resp resdto.VoteMutationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(int64(3), resp.Votes)
	})

	s.Run("error: returns 404 when no vote exists for the pair", func() {
		s.mockCommands.EXPECT().Remove(gomock.Any(), s.userID, b.ProductID).
			Return(nil, commands.ErrVoteNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Aucun like récent à retirer")
	})

	s.Run("error: returns 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	s.Run("error: returns 400 for malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}
