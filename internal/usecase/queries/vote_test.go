//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"sneakdrop/internal/domain/vote"
	"sneakdrop/internal/pkg/clock"
	"sneakdrop/internal/pkg/config"
	"sneakdrop/internal/usecase/queries"
	queriesmock "sneakdrop/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type VoteQueriesTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockStore *queriesmock.MockVoteReadStore
	mockCache *queriesmock.MockCountCache
	clock     *clock.MockClock
	cfg       config.Config
	q         queries.VoteQueries
	productID uuid.UUID
}

func (s *VoteQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockStore = queriesmock.NewMockVoteReadStore(s.mockCtrl)
	s.mockCache = queriesmock.NewMockCountCache(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))
	s.cfg = config.NewTestConfig()
	s.q = queries.NewVoteQueries(s.mockStore, s.mockCache, s.clock, s.cfg)
	s.productID = uuid.New()
}

func (s *VoteQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestVoteQueriesSuite(t *testing.T) {
	suite.Run(t, new(VoteQueriesTestSuite))
}

func (s *VoteQueriesTestSuite) TestStatus_CacheHitSkipsStore() {
	s.mockCache.EXPECT().Get(gomock.Any(), s.productID).Return(int64(9), true).Times(1)

	status, err := s.q.Status(context.Background(), s.productID, nil)

	s.Require().NoError(err)
	s.Equal(int64(9), status.Votes)
	s.False(status.UserVoted)
}

func (s *VoteQueriesTestSuite) TestStatus_CacheMissFallsThroughAndPopulates() {
	s.mockCache.EXPECT().Get(gomock.Any(), s.productID).Return(int64(0), false).Times(1)
	s.mockStore.EXPECT().CountByProduct(gomock.Any(), s.productID).Return(int64(4), nil).Times(1)
	s.mockCache.EXPECT().Set(gomock.Any(), s.productID, int64(4)).Times(1)

	status, err := s.q.Status(context.Background(), s.productID, nil)

	s.Require().NoError(err)
	s.Equal(int64(4), status.Votes)
}

func (s *VoteQueriesTestSuite) TestStatus_AuthenticatedChecksWindowedVote() {
	userID := uuid.New()
	expectedSince := vote.WindowStart(s.clock.Now(), s.cfg.Vote.Window)

	s.mockCache.EXPECT().Get(gomock.Any(), s.productID).Return(int64(4), true).Times(1)
	s.mockStore.EXPECT().HasVoteSince(gomock.Any(), userID, s.productID, expectedSince).
		Return(true, nil).Times(1)

	status, err := s.q.Status(context.Background(), s.productID, &userID)

	s.Require().NoError(err)
	s.True(status.UserVoted)
}
