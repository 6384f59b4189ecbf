//go:build unit

package submission_test

import (
	"strings"
	"testing"
	"time"

	"sneakdrop/internal/domain/submission"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubmission(t *testing.T) {
	now := time.Now()
	userID := uuid.New()

	cases := []struct {
		name  string
		brand string
		model string
		note  string
		errIs error
	}{
		{name: "valid", brand: "New Balance", model: "990v6", note: "grey colorway please"},
		{name: "valid without note", brand: "Asics", model: "Gel-Kayano 14"},
		{name: "empty brand", brand: "   ", model: "990v6", errIs: submission.ErrEmptyBrand},
		{name: "empty model", brand: "New Balance", model: "", errIs: submission.ErrEmptyModel},
		{name: "note too long", brand: "New Balance", model: "990v6", note: strings.Repeat("x", submission.MaxNoteLength+1), errIs: submission.ErrNoteTooLong},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := submission.NewSubmission(userID, tc.brand, tc.model, tc.note, now)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, userID, s.UserID())
			assert.Equal(t, submission.StatusPending, s.Status())
			assert.Equal(t, now, s.CreatedAt())
		})
	}
}

func TestNewSubmissionTrimsFields(t *testing.T) {
	s, err := submission.NewSubmission(uuid.New(), "  Nike ", " Air Max 1 ", "  big fan  ", time.Now())
	require.NoError(t, err)
	assert.Equal(t, "Nike", s.Brand())
	assert.Equal(t, "Air Max 1", s.Model())
	assert.Equal(t, "big fan", s.Note())
}

func TestNewStatus(t *testing.T) {
	for _, valid := range []string{"pending", "approved", "rejected"} {
		st, err := submission.NewStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, string(st))
	}

	_, err := submission.NewStatus("archived")
	assert.ErrorIs(t, err, submission.ErrInvalidStatus)
}
