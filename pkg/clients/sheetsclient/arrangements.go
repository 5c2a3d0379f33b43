package sheetsclient

import (
	"fmt"
	"strings"
)

// maxTabTitleLength is the longest sheet title the Sheets API accepts
const maxTabTitleLength = 100

// PublishedSeat is one seat of a published meal
type PublishedSeat struct {
	Position  int // 0-based
	Guest     string
	Generated bool
}

// PublishedTeam is one team of a published event
type PublishedTeam struct {
	Name    string
	Members []string
}

// PublishedArrangement is a stored seating or team roster ready for publishing.
// Exactly one of Seats and Teams is set.
type PublishedArrangement struct {
	PartyName string
	ItemName  string
	Seats     []PublishedSeat
	Teams     []PublishedTeam
}

// TabTitle returns the tab the arrangement is written to, e.g. "Summer Reunion - Dinner"
func (a *PublishedArrangement) TabTitle() string {
	title := fmt.Sprintf("%s - %s", a.PartyName, a.ItemName)
	// Sheet titles may not contain these characters
	title = strings.NewReplacer("[", "(", "]", ")", "*", "", "?", "", "/", "-", "\\", "-", ":", "-").Replace(title)
	if len(title) > maxTabTitleLength {
		title = title[:maxTabTitleLength]
	}
	return title
}

// PublishArrangement writes an arrangement to its own tab, creating the tab when missing.
// An existing tab is cleared first so a re-published arrangement leaves no stale rows.
func (c *Client) PublishArrangement(spreadsheetID string, arrangement *PublishedArrangement) error {
	tabTitle := arrangement.TabTitle()

	exists, err := c.hasSheet(spreadsheetID, tabTitle)
	if err != nil {
		return err
	}

	if exists {
		if err := c.ClearValues(spreadsheetID, fmt.Sprintf("'%s'!A1:ZZ", tabTitle)); err != nil {
			return fmt.Errorf("failed to clear existing tab: %w", err)
		}
	} else {
		if _, err := c.CreateSheet(spreadsheetID, tabTitle); err != nil {
			return fmt.Errorf("failed to create tab: %w", err)
		}
	}

	if err := c.UpdateValues(spreadsheetID, fmt.Sprintf("'%s'!A1", tabTitle), arrangementRows(arrangement)); err != nil {
		return fmt.Errorf("failed to write arrangement: %w", err)
	}

	return nil
}

// arrangementRows lays out a seating as one row per seat, or teams as one column per team
func arrangementRows(a *PublishedArrangement) [][]interface{} {
	if len(a.Teams) > 0 {
		return teamRows(a.Teams)
	}
	return seatingRows(a.Seats)
}

func seatingRows(seats []PublishedSeat) [][]interface{} {
	rows := make([][]interface{}, 0, len(seats)+1)
	rows = append(rows, []interface{}{"Seat", "Guest", "Placed by"})
	for _, seat := range seats {
		placedBy := "optimizer"
		if !seat.Generated {
			placedBy = "host"
		}
		rows = append(rows, []interface{}{seat.Position + 1, seat.Guest, placedBy})
	}
	return rows
}

func teamRows(teams []PublishedTeam) [][]interface{} {
	largest := 0
	header := make([]interface{}, len(teams))
	for i, team := range teams {
		header[i] = team.Name
		largest = max(largest, len(team.Members))
	}

	rows := make([][]interface{}, 0, largest+1)
	rows = append(rows, header)
	for i := 0; i < largest; i++ {
		row := make([]interface{}, len(teams))
		for j, team := range teams {
			if i < len(team.Members) {
				row[j] = team.Members[i]
			} else {
				row[j] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows
}
