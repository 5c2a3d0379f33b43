package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/jakechorley/party-planner/pkg/core/model"
	"github.com/jakechorley/party-planner/pkg/core/services"
)

const (
	colorReset = "\033[0m"
	colorDim   = "\033[2m"
)

func renderSeatingPlan(w io.Writer, plan *services.SeatingPlan) {
	fmt.Fprintf(w, "\n%s: %d guests, %s possible tables\n\n", plan.Item.Name, len(plan.People), plan.ArrangementCount)
	for i, option := range plan.Options {
		names := make([]string, len(option.Arrangement))
		for j, seat := range option.Arrangement {
			names[j] = seat.Person.Name
		}
		fmt.Fprintf(w, "Option %d (score %.1f)\n  %s\n\n", i+1, option.Score, strings.Join(names, " → "))
	}
}

func renderTeamPlan(w io.Writer, plan *services.TeamPlan) {
	fmt.Fprintf(w, "\n%s: %d guests, %s\n\n", plan.Item.Name, len(plan.People), plan.Configuration.Description)
	for i, option := range plan.Options {
		fmt.Fprintf(w, "Option %d (score %.1f)\n", i+1, option.Score)
		for _, team := range option.Arrangement {
			fmt.Fprintf(w, "  %s: %s\n", team.Name, strings.Join(memberNames(team), ", "))
		}
		fmt.Fprintln(w)
	}
}

// renderSeating lists seats from 1; seats moved by hand are marked with *
func renderSeating(w io.Writer, seating model.Seating) {
	for _, seat := range seating {
		marker := " "
		if seat.AdjustedByUser {
			marker = "*"
		}
		fmt.Fprintf(w, "  %s%2d. %s %s(%s)%s\n", marker, seat.Position+1, seat.Person.Name, colorDim, seat.Person.Category, colorReset)
	}
}

// renderTeams lists teams and members from 1; members moved by hand are marked with *
func renderTeams(w io.Writer, teams model.Teams) {
	for i, team := range teams {
		fmt.Fprintf(w, "  %d. %s (%d)\n", i+1, team.Name, len(team.Members))
		for j, member := range team.Members {
			marker := " "
			if member.AdjustedByUser {
				marker = "*"
			}
			rank := ""
			if member.Rank > 0 {
				rank = fmt.Sprintf(" #%d", member.Rank)
			}
			fmt.Fprintf(w, "    %s%2d. %s%s %s(%s)%s\n", marker, j+1, member.Person.Name, rank, colorDim, member.Person.Category, colorReset)
		}
	}
}

func renderStoredArrangement(w io.Writer, stored *services.StoredArrangement) {
	fmt.Fprintf(w, "\n%s (%s)\n\n", stored.Item.Name, stored.Item.Type)
	if stored.Empty() {
		fmt.Fprintln(w, "No arrangement saved yet.")
		return
	}

	for _, seat := range stored.Seats {
		fmt.Fprintf(w, "  %2d. %s%s\n", seat.Position+1, seat.GuestName, placedBy(seat.IsGenerated))
	}
	for _, team := range stored.Teams {
		fmt.Fprintf(w, "  Team %d\n", team.Number)
		for _, member := range team.Members {
			fmt.Fprintf(w, "    - %s%s\n", member.GuestName, placedBy(member.IsGenerated))
		}
	}
}

func renderHistory(w io.Writer, entries []services.HistoryEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "\nNo meals or events have been arranged yet.")
		return
	}

	width := 20
	for _, entry := range entries {
		width = max(width, len(entry.Name))
	}

	fmt.Fprintf(w, "\n%-*s  %s\n", width, "Guest", "Grouped with")
	fmt.Fprintln(w, strings.Repeat("-", width+2+len("Grouped with")))
	for _, entry := range entries {
		fmt.Fprintf(w, "%-*s  %s\n", width, entry.Name, strings.Join(entry.GroupedWith, ", "))
	}
}

func renderParty(w io.Writer, overview *services.PartyOverview) {
	party := overview.Party
	fmt.Fprintf(w, "\n%s (%s to %s)\n", party.Name, party.StartDate.Format("Mon 02 Jan 2006"), party.EndDate.Format("Mon 02 Jan 2006"))

	fmt.Fprintf(w, "\nGuests (%d):\n", len(overview.Guests))
	for _, guest := range overview.Guests {
		fmt.Fprintf(w, "  - %s %s(%s, %s)%s\n", guest.Name, colorDim, guest.Category, guest.ID, colorReset)
	}

	fmt.Fprintf(w, "\nMeals and events (%d):\n", len(overview.Items))
	for _, item := range overview.Items {
		when := ""
		if item.ScheduledAt != nil {
			when = " " + item.ScheduledAt.Format("Mon 02 Jan 15:04")
		}
		fmt.Fprintf(w, "  - [%s] %s%s %s(%s)%s\n", item.Type, item.Name, when, colorDim, item.ID, colorReset)
	}
	fmt.Fprintln(w)
}

func placedBy(generated bool) string {
	if generated {
		return ""
	}
	return " (placed by host)"
}

func memberNames(team model.Team) []string {
	names := make([]string, len(team.Members))
	for i, member := range team.Members {
		names[i] = member.Person.Name
	}
	return names
}
