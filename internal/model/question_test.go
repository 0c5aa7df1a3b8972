package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestion_HasValidAnswer(t *testing.T) {
	opts := []string{"A", "B", "C", "D"}
	cases := []struct {
		name    string
		correct int
		want    bool
	}{
		{"first", 0, true},
		{"last", 3, true},
		{"negative", -1, false},
		{"past end", 4, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := Question{Options: opts, CorrectAnswer: tc.correct}
			assert.Equal(t, tc.want, q.HasValidAnswer())
		})
	}

	empty := Question{}
	assert.False(t, empty.HasValidAnswer())
}
