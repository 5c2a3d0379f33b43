package sheetsclient

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArrangementRows_Seating(t *testing.T) {
	arrangement := &PublishedArrangement{
		PartyName: "Reunion",
		ItemName:  "Dinner",
		Seats: []PublishedSeat{
			{Position: 0, Guest: "Alice", Generated: true},
			{Position: 1, Guest: "Bob", Generated: false},
		},
	}

	assert.Equal(t, [][]interface{}{
		{"Seat", "Guest", "Placed by"},
		{1, "Alice", "optimizer"},
		{2, "Bob", "host"},
	}, arrangementRows(arrangement))
}

func TestArrangementRows_Teams(t *testing.T) {
	arrangement := &PublishedArrangement{
		Teams: []PublishedTeam{
			{Name: "Team 1", Members: []string{"Alice", "Bob", "Carol"}},
			{Name: "Team 2", Members: []string{"Dan", "Erin"}},
		},
	}

	assert.Equal(t, [][]interface{}{
		{"Team 1", "Team 2"},
		{"Alice", "Dan"},
		{"Bob", "Erin"},
		{"Carol", ""},
	}, arrangementRows(arrangement))
}

func TestTabTitle(t *testing.T) {
	a := &PublishedArrangement{PartyName: "Reunion", ItemName: "Dinner 12/07"}
	assert.Equal(t, "Reunion - Dinner 12-07", a.TabTitle())

	long := &PublishedArrangement{PartyName: strings.Repeat("x", 120), ItemName: "Lunch"}
	assert.Len(t, long.TabTitle(), maxTabTitleLength)
}
