package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feedbacks(a Attempt) []Feedback {
	out := make([]Feedback, len(a.Letters))
	for i, l := range a.Letters {
		out[i] = l.State
	}
	return out
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "ąčęėįšųūž", Normalize("ĄČĘĖĮŠŲŪŽ"))
	assert.Equal(t, "mėsa", Normalize("MĖSA"))
}

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		guess    string
		target   string
		expected []Feedback
	}{
		{
			name:     "exact match",
			guess:    "zodis",
			target:   "zodis",
			expected: []Feedback{FeedbackCorrect, FeedbackCorrect, FeedbackCorrect, FeedbackCorrect, FeedbackCorrect},
		},
		{
			name:     "repeated letters in guess",
			guess:    "apple",
			target:   "ample",
			expected: []Feedback{FeedbackCorrect, FeedbackAbsent, FeedbackCorrect, FeedbackCorrect, FeedbackCorrect},
		},
		{
			name:     "duplicate budget exhausted",
			guess:    "abaca",
			target:   "aaxxx",
			expected: []Feedback{FeedbackCorrect, FeedbackAbsent, FeedbackPresent, FeedbackAbsent, FeedbackAbsent},
		},
		{
			name:     "case insensitive",
			guess:    "ZODIS",
			target:   "zodis",
			expected: []Feedback{FeedbackCorrect, FeedbackCorrect, FeedbackCorrect, FeedbackCorrect, FeedbackCorrect},
		},
		{
			name:     "diacritics are distinct letters",
			guess:    "sūris",
			target:   "suris",
			expected: []Feedback{FeedbackCorrect, FeedbackAbsent, FeedbackCorrect, FeedbackCorrect, FeedbackCorrect},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ar := Score(tt.guess, tt.target)
			require.Len(t, ar.Letters, 5)
			assert.Equal(t, tt.expected, feedbacks(ar))
		})
	}
}

func TestIsWin(t *testing.T) {
	assert.True(t, IsWin(Score("zodis", "zodis")))
	assert.False(t, IsWin(Score("apple", "ample")))
	assert.False(t, IsWin(Attempt{}))
}

func TestScorePositionalMatchBeatsPresent(t *testing.T) {
	// The target's single 'a' sits at position 1. The guess's earlier 'a' at
	// position 0 must not steal it from the positional match.
	ar := Score("aaxxx", "xaxxx")
	assert.Equal(t, FeedbackAbsent, ar.Letters[0].State)
	assert.Equal(t, FeedbackCorrect, ar.Letters[1].State)
}
