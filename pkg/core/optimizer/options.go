package optimizer

import (
	"slices"
	"strings"

	"github.com/jakechorley/party-planner/pkg/core/model"
)

// DefaultMaxOptions is the number of options returned when the caller does not ask for a count
const DefaultMaxOptions = 6

// SeatingKey is the literal sequence of person ids. Rotations and reflections of the
// same table produce different keys.
func SeatingKey(seating model.Seating) string {
	ids := make([]string, len(seating))
	for i, pos := range seating {
		ids[i] = pos.Person.ID
	}
	return strings.Join(ids, ",")
}

// TeamsKey ignores team order and member order, so equal groupings share a key
func TeamsKey(teams model.Teams) string {
	groups := make([]string, len(teams))
	for i, team := range teams {
		ids := make([]string, len(team.Members))
		for j, member := range team.Members {
			ids[j] = member.Person.ID
		}
		slices.Sort(ids)
		groups[i] = strings.Join(ids, ",")
	}
	slices.Sort(groups)
	return strings.Join(groups, "|")
}

// RankOptions keeps the first occurrence of each canonical key, sorts survivors by
// score descending (ties keep generation order) and truncates to maxOptions.
func RankOptions[T any](candidates []model.ScoredOption[T], key func(T) string, maxOptions int) []model.ScoredOption[T] {
	if maxOptions <= 0 {
		maxOptions = DefaultMaxOptions
	}

	seen := make(map[string]bool, len(candidates))
	unique := make([]model.ScoredOption[T], 0, len(candidates))
	for _, candidate := range candidates {
		k := key(candidate.Arrangement)
		if seen[k] {
			continue
		}
		seen[k] = true
		unique = append(unique, candidate)
	}

	slices.SortStableFunc(unique, func(a, b model.ScoredOption[T]) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})

	if len(unique) > maxOptions {
		unique = unique[:maxOptions]
	}
	return unique
}
