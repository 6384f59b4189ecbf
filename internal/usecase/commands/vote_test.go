//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"sneakdrop/internal/domain/vote"
	"sneakdrop/internal/infra/db"
	"sneakdrop/internal/pkg/clock"
	"sneakdrop/internal/pkg/config"
	"sneakdrop/internal/usecase/commands"
	"sneakdrop/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// fakeUoW keeps vote rows in memory and runs the transaction function
// directly, which is enough to exercise the command-side rule flow.
type fakeUoW struct {
	products map[uuid.UUID]*shared.ProductSnapshot
	votes    []vote.Record
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{products: make(map[uuid.UUID]*shared.ProductSnapshot)}
}

func (f *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &fakeTx{uow: f})
}

func (f *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, nil)
}

func (f *fakeUoW) CommandReads() shared.CommandReads {
	return &fakeReads{uow: f}
}

type fakeTx struct {
	uow *fakeUoW
}

func (t *fakeTx) Votes() shared.VoteRepository             { return &fakeVoteRepo{uow: t.uow} }
func (t *fakeTx) Products() shared.ProductRepository       { return nil }
func (t *fakeTx) Submissions() shared.SubmissionRepository { return nil }
func (t *fakeTx) Users() shared.UserRepository             { return nil }
func (t *fakeTx) Reads() shared.CommandReads               { return &fakeReads{uow: t.uow} }
func (t *fakeTx) DB() db.DBTX                              { return nil }

type fakeReads struct {
	uow *fakeUoW
}

func (r *fakeReads) ProductByID(_ context.Context, id uuid.UUID) (*shared.ProductSnapshot, error) {
	if p, ok := r.uow.products[id]; ok {
		return p, nil
	}
	return nil, commands.ErrProductNotFound
}

func (r *fakeReads) RecentVotesByUser(_ context.Context, userID uuid.UUID, since time.Time) ([]vote.Record, error) {
	var out []vote.Record
	for _, v := range r.uow.votes {
		if v.UserID == userID && !v.CreatedAt.Before(since) {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *fakeReads) LatestUserVote(_ context.Context, userID, productID uuid.UUID) (*vote.Record, error) {
	var latest *vote.Record
	for i := range r.uow.votes {
		v := r.uow.votes[i]
		if v.UserID == userID && v.ProductID == productID {
			if latest == nil || v.CreatedAt.After(latest.CreatedAt) {
				latest = &v
			}
		}
	}
	return latest, nil
}

func (r *fakeReads) CountVotes(_ context.Context, productID uuid.UUID) (int64, error) {
	var n int64
	for _, v := range r.uow.votes {
		if v.ProductID == productID {
			n++
		}
	}
	return n, nil
}

func (r *fakeReads) SubmissionByID(_ context.Context, _ uuid.UUID) (*shared.SubmissionSnapshot, error) {
	return nil, commands.ErrSubmissionNotFound
}

type fakeVoteRepo struct {
	uow *fakeUoW
}

func (r *fakeVoteRepo) LockPair(_ context.Context, _ db.DBTX, _, _ uuid.UUID) error {
	return nil
}

func (r *fakeVoteRepo) Insert(_ context.Context, _ db.DBTX, userID, productID uuid.UUID, createdAt time.Time) (uuid.UUID, error) {
	id := uuid.New()
	r.uow.votes = append(r.uow.votes, vote.Record{
		ID:        id,
		UserID:    userID,
		ProductID: productID,
		CreatedAt: createdAt,
	})
	return id, nil
}

func (r *fakeVoteRepo) Delete(_ context.Context, _ db.DBTX, voteID uuid.UUID) error {
	for i, v := range r.uow.votes {
		if v.ID == voteID {
			r.uow.votes = append(r.uow.votes[:i], r.uow.votes[i+1:]...)
			return nil
		}
	}
	return commands.ErrVoteNotFound
}

type VoteCommandsTestSuite struct {
	suite.Suite
	uow       *fakeUoW
	clock     *clock.MockClock
	cfg       config.Config
	uc        commands.VoteCommands
	userID    uuid.UUID
	productID uuid.UUID
}

func (s *VoteCommandsTestSuite) SetupTest() {
	s.uow = newFakeUoW()
	s.clock = clock.NewMockClock(time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))
	s.cfg = config.NewTestConfig()
	s.uc = commands.NewVoteUseCase(s.uow, s.clock, s.cfg, nil)

	s.userID = uuid.New()
	s.productID = uuid.New()
	s.addProduct(s.productID)
}

func (s *VoteCommandsTestSuite) addProduct(id uuid.UUID) {
	s.uow.products[id] = &shared.ProductSnapshot{ID: id, Name: "Test Sneaker", GoalLikes: 100}
}

func TestVoteCommandsSuite(t *testing.T) {
	suite.Run(t, new(VoteCommandsTestSuite))
}

func (s *VoteCommandsTestSuite) TestCast_FirstVote() {
	result, err := s.uc.Cast(context.Background(), s.userID, s.productID)

	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(1), result.Votes)
	assert.NotEqual(s.T(), uuid.Nil, result.VoteID)
}

func (s *VoteCommandsTestSuite) TestCast_DuplicateRejected() {
	_, err := s.uc.Cast(context.Background(), s.userID, s.productID)
	require.NoError(s.T(), err)

	_, err = s.uc.Cast(context.Background(), s.userID, s.productID)
	assert.ErrorIs(s.T(), err, commands.ErrDuplicateVote)
}

func (s *VoteCommandsTestSuite) TestCast_LimitRejected() {
	second := uuid.New()
	third := uuid.New()
	s.addProduct(second)
	s.addProduct(third)

	_, err := s.uc.Cast(context.Background(), s.userID, s.productID)
	require.NoError(s.T(), err)
	_, err = s.uc.Cast(context.Background(), s.userID, second)
	require.NoError(s.T(), err)

	_, err = s.uc.Cast(context.Background(), s.userID, third)
	assert.ErrorIs(s.T(), err, commands.ErrVoteLimit)
}

func (s *VoteCommandsTestSuite) TestCast_StaleVotesFreeTheLimit() {
	second := uuid.New()
	third := uuid.New()
	s.addProduct(second)
	s.addProduct(third)

	_, err := s.uc.Cast(context.Background(), s.userID, s.productID)
	require.NoError(s.T(), err)
	_, err = s.uc.Cast(context.Background(), s.userID, second)
	require.NoError(s.T(), err)

	// Both prior votes fall out of the window once it slides past them.
	s.clock.Add(s.cfg.Vote.Window + time.Hour)

	result, err := s.uc.Cast(context.Background(), s.userID, third)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(1), result.Votes)
}

func (s *VoteCommandsTestSuite) TestCast_DuplicatePrecedesLimit() {
	second := uuid.New()
	s.addProduct(second)

	_, err := s.uc.Cast(context.Background(), s.userID, s.productID)
	require.NoError(s.T(), err)
	_, err = s.uc.Cast(context.Background(), s.userID, second)
	require.NoError(s.T(), err)

	// At the limit AND already voted for this product: duplicate wins.
	_, err = s.uc.Cast(context.Background(), s.userID, s.productID)
	assert.ErrorIs(s.T(), err, commands.ErrDuplicateVote)
}

func (s *VoteCommandsTestSuite) TestCast_UnknownProduct() {
	_, err := s.uc.Cast(context.Background(), s.userID, uuid.New())
	assert.ErrorIs(s.T(), err, commands.ErrProductNotFound)
}

func (s *VoteCommandsTestSuite) TestRemove_DeletesNewestRow() {
	_, err := s.uc.Cast(context.Background(), s.userID, s.productID)
	require.NoError(s.T(), err)

	result, err := s.uc.Remove(context.Background(), s.userID, s.productID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(0), result.Votes)
}

func (s *VoteCommandsTestSuite) TestRemove_RemovesStaleVoteToo() {
	_, err := s.uc.Cast(context.Background(), s.userID, s.productID)
	require.NoError(s.T(), err)

	// Removal is not windowed: an old vote row is still removable.
	s.clock.Add(s.cfg.Vote.Window + time.Hour)

	_, err = s.uc.Remove(context.Background(), s.userID, s.productID)
	assert.NoError(s.T(), err)
}

func (s *VoteCommandsTestSuite) TestRemove_NothingToRemove() {
	_, err := s.uc.Remove(context.Background(), s.userID, s.productID)
	assert.ErrorIs(s.T(), err, commands.ErrVoteNotFound)
}
