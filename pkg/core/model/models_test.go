package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeatingClone_IsDeep(t *testing.T) {
	original := Seating{
		{Position: 0, Person: Person{ID: "a", Relationships: []string{"b"}}},
		{Position: 1, Person: Person{ID: "b"}},
	}

	clone := original.Clone()
	clone[0].AdjustedByUser = true
	clone[0].Person.Relationships[0] = "z"

	assert.False(t, original[0].AdjustedByUser)
	assert.Equal(t, "b", original[0].Person.Relationships[0])
}

func TestTeamsClone_IsDeep(t *testing.T) {
	original := Teams{
		{ID: "team-0", Name: "Team 1", Members: []TeamMember{{Person: Person{ID: "a"}}}},
		{ID: "team-1", Name: "Team 2", Members: []TeamMember{{Person: Person{ID: "b"}}}},
	}

	clone := original.Clone()
	clone[0].Members = append(clone[0].Members, clone[1].Members[0])
	clone[1].Members = clone[1].Members[:0]

	assert.Len(t, original[0].Members, 1)
	assert.Len(t, original[1].Members, 1)
	assert.Equal(t, 2, original.Size())
	assert.Equal(t, original.Size(), clone.Size())
}

func TestCategory_IsValid(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, c.IsValid())
	}
	assert.False(t, Category("other").IsValid())
}
