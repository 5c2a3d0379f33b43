package optimizer

import (
	"context"
	"fmt"

	"github.com/jakechorley/party-planner/pkg/core/model"
)

// GenerateTeams produces ranked team partitions using random-restart hill climbing.
// Each attempt seeds labels round-robin and shuffles them, so team sizes differ by at
// most one; swaps between teams preserve sizes.
func GenerateTeams(ctx context.Context, c *Context, teamCount int, params SearchParams) ([]model.TeamOption, error) {
	params = params.withDefaults()
	n := len(c.People())
	attempts := params.MaxOptions * params.AttemptsPerOption
	candidates := make([]model.TeamOption, 0, attempts)

	for attempt := 0; attempt < attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		assignment := randomAssignment(n, teamCount, params)
		climbTeams(c, assignment, teamCount)

		teams := buildTeams(c, assignment, teamCount)
		candidates = append(candidates, model.TeamOption{
			Score:       ScoreTeams(c, teams),
			Arrangement: teams,
		})
	}

	return RankOptions(candidates, TeamsKey, params.MaxOptions), nil
}

// randomAssignment gives person i a team index: round-robin, then Fisher–Yates shuffled
func randomAssignment(n, teamCount int, params SearchParams) []int {
	assignment := make([]int, n)
	for i := range assignment {
		assignment[i] = i % teamCount
	}
	params.Rand.Shuffle(n, func(i, j int) { assignment[i], assignment[j] = assignment[j], assignment[i] })
	return assignment
}

// climbTeams applies the first improving swap of two people on different teams until
// none remains, modifying assignment in place. Returns the final score.
func climbTeams(c *Context, assignment []int, teamCount int) float64 {
	current := TeamScore(c, groupPeople(c, assignment, teamCount))

	for improved := true; improved; {
		improved = false
	scan:
		for i := 0; i < len(assignment)-1; i++ {
			for j := i + 1; j < len(assignment); j++ {
				if assignment[i] == assignment[j] {
					continue
				}
				assignment[i], assignment[j] = assignment[j], assignment[i]
				if candidate := TeamScore(c, groupPeople(c, assignment, teamCount)); candidate > current {
					current = candidate
					improved = true
					break scan
				}
				assignment[i], assignment[j] = assignment[j], assignment[i]
			}
		}
	}

	return current
}

// groupPeople turns an assignment vector into per-team member lists
func groupPeople(c *Context, assignment []int, teamCount int) [][]model.Person {
	people := c.People()
	groups := make([][]model.Person, teamCount)
	for i, team := range assignment {
		groups[team] = append(groups[team], people[i])
	}
	return groups
}

func buildTeams(c *Context, assignment []int, teamCount int) model.Teams {
	people := c.People()
	teams := make(model.Teams, teamCount)
	for i := range teams {
		teams[i] = Team(i)
	}
	for i, team := range assignment {
		teams[team].Members = append(teams[team].Members, model.TeamMember{
			Person: people[i],
			Rank:   c.Rank(people[i].ID),
		})
	}
	return teams
}

// Team returns an empty team labelled for index i
func Team(i int) model.Team {
	return model.Team{
		ID:      fmt.Sprintf("team-%d", i),
		Name:    fmt.Sprintf("Team %d", i+1),
		Members: []model.TeamMember{},
	}
}
