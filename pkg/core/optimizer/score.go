package optimizer

import (
	"math"

	"github.com/jakechorley/party-planner/pkg/core/model"
)

// SeatingScore scores a circular table order. For every seat both the next and the
// previous neighbour are checked, so each edge of the table is counted twice.
// A table with no conflicts scores 0; every conflict lowers the score.
func SeatingScore(c *Context, order []model.Person) float64 {
	n := len(order)
	if n < 2 {
		return 0
	}

	w := c.weights
	score := 0.0

	for i := range order {
		current := order[i]
		for _, neighbour := range [2]model.Person{order[(i+1)%n], order[(i-1+n)%n]} {
			if c.AreRelated(current.ID, neighbour.ID) {
				score -= w.SeatingRelated
			} else if c.GroupedBefore(current.ID, neighbour.ID) {
				score -= w.SeatingHistory
			}

			if current.Category == neighbour.Category {
				score -= w.SeatingSameCategory
			}
		}
	}

	return score
}

// TeamScore scores a partition as the sum of every team's penalties
func TeamScore(c *Context, teams [][]model.Person) float64 {
	score := 0.0
	for _, members := range teams {
		score += teamPenalty(c, members)
	}
	return score
}

// teamPenalty returns the (non-positive) score of a single team
func teamPenalty(c *Context, members []model.Person) float64 {
	w := c.weights
	score := 0.0

	// Fair play: average rank of ranked members against the middle rank
	if c.fairPlayActive() {
		rankSum, ranked := 0, 0
		for _, member := range members {
			if rank := c.Rank(member.ID); rank > 0 {
				rankSum += rank
				ranked++
			}
		}
		if ranked > 0 {
			avgRank := float64(rankSum) / float64(ranked)
			idealRank := float64(len(c.rankings)+1) / 2
			score -= w.TeamFairPlay * math.Abs(avgRank-idealRank)
		}
	}

	// Pairwise conflicts
	for i := range members {
		for j := i + 1; j < len(members); j++ {
			a, b := members[i].ID, members[j].ID
			if c.AreRelated(a, b) {
				score -= w.TeamRelated
			} else if c.GroupedBefore(a, b) {
				score -= w.TeamHistory
			}
		}
	}

	// Category balance
	counts := make(map[model.Category]int, len(model.Categories))
	for _, member := range members {
		counts[member.Category]++
	}
	ideal := float64(len(members)) / float64(len(model.Categories))
	imbalance := 0.0
	for _, category := range model.Categories {
		imbalance += math.Abs(float64(counts[category]) - ideal)
	}
	score -= w.TeamCategoryImbalance * imbalance

	return score
}

// ScoreSeating scores a generated or edited seating
func ScoreSeating(c *Context, seating model.Seating) float64 {
	return SeatingScore(c, seating.People())
}

// ScoreTeams scores a generated or edited partition
func ScoreTeams(c *Context, teams model.Teams) float64 {
	groups := make([][]model.Person, len(teams))
	for i, team := range teams {
		groups[i] = make([]model.Person, len(team.Members))
		for j, member := range team.Members {
			groups[i][j] = member.Person
		}
	}
	return TeamScore(c, groups)
}
