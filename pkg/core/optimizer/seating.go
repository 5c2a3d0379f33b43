package optimizer

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"github.com/jakechorley/party-planner/pkg/core/model"
)

// DefaultAttemptsPerOption is the number of random restarts per requested option
const DefaultAttemptsPerOption = 3

// cancellationCheckInterval is how many enumerated tables pass between context checks
const cancellationCheckInterval = 4096

// SearchParams controls candidate generation
type SearchParams struct {
	// MaxOptions is the number of options returned (DefaultMaxOptions when <= 0)
	MaxOptions int

	// AttemptsPerOption multiplies MaxOptions to give the number of random restarts
	AttemptsPerOption int

	// ExhaustiveLimit is the largest table enumerated exhaustively, capped at ExhaustiveSeatingLimit
	ExhaustiveLimit int

	// Rand is the random source for shuffles. A time-seeded source is used when nil.
	Rand *rand.Rand
}

func (p SearchParams) withDefaults() SearchParams {
	if p.MaxOptions <= 0 {
		p.MaxOptions = DefaultMaxOptions
	}
	if p.AttemptsPerOption <= 0 {
		p.AttemptsPerOption = DefaultAttemptsPerOption
	}
	if p.ExhaustiveLimit <= 0 || p.ExhaustiveLimit > ExhaustiveSeatingLimit {
		p.ExhaustiveLimit = ExhaustiveSeatingLimit
	}
	if p.Rand == nil {
		p.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return p
}

// Attempts returns the number of random restarts for the heuristic path
func (p SearchParams) Attempts() int {
	p = p.withDefaults()
	return p.MaxOptions * p.AttemptsPerOption
}

// GenerateSeating produces ranked seating options for the context's people.
// Small tables are enumerated exhaustively; larger ones use random-restart hill climbing.
func GenerateSeating(ctx context.Context, c *Context, params SearchParams) ([]model.SeatingOption, error) {
	params = params.withDefaults()
	people := c.People()

	var (
		candidates []model.ScoredOption[[]int]
		err        error
	)
	if len(people) <= params.ExhaustiveLimit {
		candidates, err = enumerateSeatings(ctx, c)
	} else {
		candidates, err = searchSeatings(ctx, c, params)
	}
	if err != nil {
		return nil, err
	}

	key := func(order []int) string {
		ids := make([]string, len(order))
		for i, idx := range order {
			ids[i] = people[idx].ID
		}
		return strings.Join(ids, ",")
	}
	ranked := RankOptions(candidates, key, params.MaxOptions)

	options := make([]model.SeatingOption, len(ranked))
	for i, option := range ranked {
		options[i] = model.SeatingOption{
			Score:       option.Score,
			Arrangement: buildSeating(people, option.Arrangement),
		}
	}
	return options, nil
}

// enumerateSeatings scores every ordering of the people
func enumerateSeatings(ctx context.Context, c *Context) ([]model.ScoredOption[[]int], error) {
	people := c.People()
	candidates := make([]model.ScoredOption[[]int], 0, factorial(len(people)))
	order := make([]model.Person, len(people))

	var err error
	visited := 0
	forEachPermutation(len(people), func(perm []int) bool {
		visited++
		if visited%cancellationCheckInterval == 0 {
			if err = ctx.Err(); err != nil {
				return false
			}
		}

		for i, idx := range perm {
			order[i] = people[idx]
		}
		candidates = append(candidates, model.ScoredOption[[]int]{
			Score:       SeatingScore(c, order),
			Arrangement: append([]int(nil), perm...),
		})
		return true
	})
	if err != nil {
		return nil, err
	}

	return candidates, nil
}

// searchSeatings runs independent shuffle-then-hill-climb attempts
func searchSeatings(ctx context.Context, c *Context, params SearchParams) ([]model.ScoredOption[[]int], error) {
	n := len(c.People())
	attempts := params.MaxOptions * params.AttemptsPerOption
	candidates := make([]model.ScoredOption[[]int], 0, attempts)

	for attempt := 0; attempt < attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		order := make([]int, n)
		for i := range order {
			order[i] = i
		}
		params.Rand.Shuffle(n, func(i, j int) { order[i], order[j] = order[j], order[i] })

		score := climbSeating(c, order)
		candidates = append(candidates, model.ScoredOption[[]int]{Score: score, Arrangement: order})
	}

	return candidates, nil
}

// climbSeating applies the first improving swap of neighbouring positions until none
// remains, modifying order in place. Returns the final score.
func climbSeating(c *Context, order []int) float64 {
	people := c.People()
	seats := make([]model.Person, len(order))
	score := func() float64 {
		for i, idx := range order {
			seats[i] = people[idx]
		}
		return SeatingScore(c, seats)
	}

	current := score()
	for improved := true; improved; {
		improved = false
		for i := 0; i < len(order)-1; i++ {
			order[i], order[i+1] = order[i+1], order[i]
			if candidate := score(); candidate > current {
				current = candidate
				improved = true
				break
			}
			order[i], order[i+1] = order[i+1], order[i]
		}
	}

	return current
}

func buildSeating(people []model.Person, order []int) model.Seating {
	seating := make(model.Seating, len(order))
	for i, idx := range order {
		seating[i] = model.SeatingPosition{
			Position: i,
			Person:   people[idx],
		}
	}
	return seating
}
