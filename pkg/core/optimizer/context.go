package optimizer

import (
	"github.com/jakechorley/party-planner/pkg/core/history"
	"github.com/jakechorley/party-planner/pkg/core/model"
)

// RelationshipIndex maps a person to the people they are flagged as related to
type RelationshipIndex map[string]map[string]struct{}

// BuildRelationshipIndex builds the index from the relationships carried on each person
func BuildRelationshipIndex(people []model.Person) RelationshipIndex {
	index := make(RelationshipIndex, len(people))
	for _, person := range people {
		if len(person.Relationships) == 0 {
			continue
		}
		set := make(map[string]struct{}, len(person.Relationships))
		for _, related := range person.Relationships {
			if related != "" && related != person.ID {
				set[related] = struct{}{}
			}
		}
		index[person.ID] = set
	}
	return index
}

// AreRelated checks both directions since stored relationships need not be symmetric
func (r RelationshipIndex) AreRelated(a, b string) bool {
	if _, ok := r[a][b]; ok {
		return true
	}
	_, ok := r[b][a]
	return ok
}

// ContextConfig contains everything needed to build a scoring context
type ContextConfig struct {
	People []model.Person

	// History of prior groupings. Nil means no history.
	History *history.History

	// Relationships overrides the index built from People when set
	Relationships RelationshipIndex

	// FairPlay enables the rank balance term for teams
	FairPlay bool

	// RankingOrder lists person ids best first; only used when FairPlay is set
	RankingOrder []string

	// Weights overrides DefaultWeights when set
	Weights *Weights
}

// Context is the read-only input shared by every scoring call and generation attempt
type Context struct {
	people        []model.Person
	relationships RelationshipIndex
	history       *history.History
	rankings      map[string]int
	fairPlay      bool
	weights       Weights
}

// BuildContext constructs a scoring context. It performs no I/O.
func BuildContext(cfg ContextConfig) *Context {
	c := &Context{
		people:        cfg.People,
		relationships: cfg.Relationships,
		history:       cfg.History,
		fairPlay:      cfg.FairPlay,
		rankings:      map[string]int{},
		weights:       DefaultWeights(),
	}

	if c.relationships == nil {
		c.relationships = BuildRelationshipIndex(cfg.People)
	}
	if c.history == nil {
		c.history = history.New()
	}
	if cfg.Weights != nil {
		c.weights = *cfg.Weights
	}

	if cfg.FairPlay {
		rank := 1
		for _, id := range cfg.RankingOrder {
			if _, seen := c.rankings[id]; seen || id == "" {
				continue
			}
			c.rankings[id] = rank
			rank++
		}
	}

	return c
}

// People returns the people being arranged
func (c *Context) People() []model.Person {
	return c.people
}

// AreRelated reports a kinship/partner flag between a and b
func (c *Context) AreRelated(a, b string) bool {
	return c.relationships.AreRelated(a, b)
}

// GroupedBefore reports whether a and b were grouped in a prior event
func (c *Context) GroupedBefore(a, b string) bool {
	return c.history.GroupedBefore(a, b)
}

// Rank returns the fair-play rank of a person, 0 when unranked
func (c *Context) Rank(id string) int {
	return c.rankings[id]
}

// fairPlayActive reports whether the rank balance term applies
func (c *Context) fairPlayActive() bool {
	return c.fairPlay && len(c.rankings) > 0
}
