package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestXPForNextLevel(t *testing.T) {
	for level := 1; level <= 60; level++ {
		assert.Equal(t, level*100, XPForNextLevel(level))
	}
}

func TestRankFromLevel(t *testing.T) {
	cases := []struct {
		level int
		rank  string
	}{
		{1, "Novice"},
		{4, "Novice"},
		{5, "Bronze"},
		{10, "Silver"},
		{15, "Gold"},
		{20, "Platinum"},
		{30, "Diamond"},
		{40, "Master"},
		{50, "Grandmaster"},
		{99, "Grandmaster"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.rank, RankFromLevel(tc.level), "level %d", tc.level)
	}
}
