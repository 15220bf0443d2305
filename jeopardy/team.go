/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package jeopardy

import (
	"fmt"
	"sort"
	"strings"
)

type Team struct {
	Name  string
	Score int
}

// NewTeam returns a zero-score team, truncating name to maxChars runes.
func NewTeam(name string, maxChars int) *Team {
	if r := []rune(name); maxChars > 0 && len(r) > maxChars {
		name = string(r[:maxChars])
	}

	return &Team{Name: name}
}

func (t *Team) Award(points int) {
	t.Score += points
}

func (t *Team) Deduct(points int) {
	t.Score -= points
}

// teamSummary joins every team's name and score into one display line.
func teamSummary(teams []*Team) string {
	parts := make([]string, 0, len(teams))
	for _, t := range teams {
		parts = append(parts, fmt.Sprintf("%s: %-5d", t.Name, t.Score))
	}

	return strings.Join(parts, "     ")
}

// Standings returns a copy of teams ordered by score, highest first.
// Teams with equal scores keep their original relative order.
func Standings(teams []*Team) []*Team {
	ranked := make([]*Team, len(teams))
	copy(ranked, teams)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked
}
