package moderation

import (
	"coachchat/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestModerator(t *testing.T) *Moderator {
	t.Helper()
	moderator, err := NewModerator(
		[]string{"scam", "idiot"},
		map[string][]string{
			"eng": {"stupid"},
			"tur": {"aptal"},
		},
		'*',
	)
	require.NoError(t, err)
	return moderator
}

func TestModerator_Censor(t *testing.T) {
	moderator := newTestModerator(t)

	tests := []struct {
		description string
		input       string
		want        string
	}{
		{
			"Should leave clean text untouched",
			"See you at training tomorrow",
			"See you at training tomorrow",
		},
		{
			"Should mask a base-list word",
			"this plan is a scam",
			"this plan is a ****",
		},
		{
			"Should mask regardless of case",
			"IDIOT",
			"*****",
		},
		{
			"Should undo leet substitutions",
			"what a sc4m",
			"what a ****",
		},
		{
			"Should mask across separators",
			"s-c-a-m",
			"*******",
		},
		{
			"Should keep surrounding text intact",
			"no scam here",
			"no **** here",
		},
		{
			"Should handle empty input",
			"",
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			require.Equal(t, tt.want, moderator.Censor(tt.input))
		})
	}
}

func TestModerator_Applies_The_Detected_Language_List(t *testing.T) {
	req := require.New(t)
	moderator := newTestModerator(t)

	// Long enough for the detector to be confident about English. "stupid"
	// is only on the English list.
	censored := moderator.Censor("honestly that was a really stupid thing to say during our session yesterday")
	req.NotContains(censored, "stupid")
	req.Contains(censored, "******")
}

func TestModerator_Base_List_Applies_To_Any_Language(t *testing.T) {
	req := require.New(t)
	moderator := newTestModerator(t)

	// Whatever the detector thinks of this, the base list must hit.
	req.Equal("bu bir ****", moderator.Censor("bu bir scam"))
}

func TestNewModerator_Rejects_Empty_Word_List(t *testing.T) {
	req := require.New(t)

	_, err := NewModerator(nil, nil, '*')
	req.ErrorIs(err, errors.ErrEmptyWords)

	// Words that normalize to nothing are as good as no words.
	_, err = NewModerator([]string{"!!!", "  "}, nil, '*')
	req.ErrorIs(err, errors.ErrEmptyWords)
}
