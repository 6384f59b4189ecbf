//go:build e2e

package vote_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"sneakdrop/internal/domain/user"
	"sneakdrop/internal/handler/dto/response"
	"sneakdrop/tests/common/authtest"
	"sneakdrop/tests/common/dbtest"
	"sneakdrop/tests/common/httptest"
	"sneakdrop/tests/e2e"
)

type VoteSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func TestVoteSuite(t *testing.T) {
	suite.Run(t, new(VoteSuite))
}

func (s *VoteSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.T(), s.Config.JWT)
}

func (s *VoteSuite) seedMember(email string) (uuid.UUID, string) {
	userID := dbtest.CreateTestUser(s.T(), s.DB, email, "member")
	token := s.jwtHelper.GenerateToken(s.T(), userID, user.RoleMember)
	return userID, token
}

func (s *VoteSuite) castVote(productID uuid.UUID, token string) *response.VoteMutationResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/votes",
		map[string]string{"productId": productID.String()}, token)

	var resp response.VoteMutationResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	return &resp
}

func (s *VoteSuite) TestCastVote() {
	s.Run("first vote on a product is recorded", func() {
		_, token := s.seedMember("voter@example.com")
		productID := dbtest.CreateTestProduct(s.T(), s.DB, "Air Max 95 OG Neon", "Nike", 100)

		resp := s.castVote(productID, token)

		s.Equal("Ton vote a bien été pris en compte !", resp.Message)
		s.Equal(int64(1), resp.Votes)
	})

	s.Run("votes from different users accumulate", func() {
		_, tokenA := s.seedMember("first@example.com")
		_, tokenB := s.seedMember("second@example.com")
		productID := dbtest.CreateTestProduct(s.T(), s.DB, "Dunk Low Panda", "Nike", 100)

		s.Equal(int64(1), s.castVote(productID, tokenA).Votes)
		s.Equal(int64(2), s.castVote(productID, tokenB).Votes)
	})

	s.Run("second vote on the same product is rejected", func() {
		_, token := s.seedMember("eager@example.com")
		productID := dbtest.CreateTestProduct(s.T(), s.DB, "Air Max 95 OG Neon", "Nike", 100)

		s.castVote(productID, token)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/votes",
			map[string]string{"productId": productID.String()}, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "déjà liké")
	})

	s.Run("vote limit caps distinct products per window", func() {
		_, token := s.seedMember("collector@example.com")
		first := dbtest.CreateTestProduct(s.T(), s.DB, "Samba OG", "Adidas", 100)
		second := dbtest.CreateTestProduct(s.T(), s.DB, "Gazelle Bold", "Adidas", 100)
		third := dbtest.CreateTestProduct(s.T(), s.DB, "Campus 00s", "Adidas", 100)

		s.castVote(first, token)
		s.castVote(second, token)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/votes",
			map[string]string{"productId": third.String()}, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "limite")
	})

	s.Run("unknown product returns 404", func() {
		_, token := s.seedMember("lost@example.com")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/votes",
			map[string]string{"productId": uuid.New().String()}, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "introuvable")
	})

	s.Run("unauthenticated request returns 401", func() {
		productID := dbtest.CreateTestProduct(s.T(), s.DB, "Air Max 95 OG Neon", "Nike", 100)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/votes",
			map[string]string{"productId": productID.String()}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Authentification requise")
	})

	s.Run("malformed product id returns 400", func() {
		_, token := s.seedMember("typo@example.com")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/votes",
			map[string]string{"productId": "not-a-uuid"}, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "invalide")
	})
}

func (s *VoteSuite) TestGetVoteStatus() {
	s.Run("anonymous caller sees the count without a personal flag", func() {
		_, token := s.seedMember("voter@example.com")
		productID := dbtest.CreateTestProduct(s.T(), s.DB, "Air Max 95 OG Neon", "Nike", 100)
		s.castVote(productID, token)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			"/api/votes?productId="+productID.String(), nil, "")

		var resp response.VoteStatusResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(int64(1), resp.Votes)
		s.False(resp.UserVoted)
	})

	s.Run("authenticated voter sees userVoted true", func() {
		_, token := s.seedMember("voter@example.com")
		productID := dbtest.CreateTestProduct(s.T(), s.DB, "Air Max 95 OG Neon", "Nike", 100)
		s.castVote(productID, token)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			"/api/votes?productId="+productID.String(), nil, token)

		var resp response.VoteStatusResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(int64(1), resp.Votes)
		s.True(resp.UserVoted)
	})

	s.Run("authenticated non-voter sees userVoted false", func() {
		_, voterToken := s.seedMember("voter@example.com")
		_, bystanderToken := s.seedMember("bystander@example.com")
		productID := dbtest.CreateTestProduct(s.T(), s.DB, "Air Max 95 OG Neon", "Nike", 100)
		s.castVote(productID, voterToken)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			"/api/votes?productId="+productID.String(), nil, bystanderToken)

		var resp response.VoteStatusResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(int64(1), resp.Votes)
		s.False(resp.UserVoted)
	})

	s.Run("missing productId returns 400", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/votes", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "invalide")
	})
}

func (s *VoteSuite) TestRemoveVote() {
	s.Run("removing a vote frees the slot and lowers the count", func() {
		_, token := s.seedMember("fickle@example.com")
		productID := dbtest.CreateTestProduct(s.T(), s.DB, "Air Max 95 OG Neon", "Nike", 100)
		s.castVote(productID, token)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, "/api/votes",
			map[string]string{"productId": productID.String()}, token)

		var resp response.VoteMutationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("Ton like a bien été retiré.", resp.Message)
		s.Equal(int64(0), resp.Votes)

		// The slot is free again.
		s.Equal(int64(1), s.castVote(productID, token).Votes)
	})

	s.Run("removing without a prior vote returns 404", func() {
		_, token := s.seedMember("fickle@example.com")
		productID := dbtest.CreateTestProduct(s.T(), s.DB, "Air Max 95 OG Neon", "Nike", 100)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, "/api/votes",
			map[string]string{"productId": productID.String()}, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Aucun like récent à retirer")
	})

	s.Run("unauthenticated request returns 401", func() {
		productID := dbtest.CreateTestProduct(s.T(), s.DB, "Air Max 95 OG Neon", "Nike", 100)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, "/api/votes",
			map[string]string{"productId": productID.String()}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Authentification requise")
	})
}
