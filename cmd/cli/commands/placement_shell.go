package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/jakechorley/party-planner/pkg/core/session"
	"github.com/jakechorley/party-planner/pkg/db"
)

// shellCommand is one placement shell verb. Arguments are 1-based numbers.
type shellCommand struct {
	usage string
	short string
	args  int
	run   func(args []int) error
}

// runPlacementShell reads placement commands until exit, quit or end of input
func runPlacementShell(input *bufio.Scanner, out io.Writer, commands map[string]shellCommand, show func()) error {
	show()
	fmt.Fprintln(out, "Type 'help' for placement commands, 'exit' to leave")

	for {
		fmt.Fprint(out, "placement> ")
		if !input.Scan() {
			break
		}

		parts := strings.Fields(input.Text())
		if len(parts) == 0 {
			continue
		}
		name, rawArgs := parts[0], parts[1:]

		switch name {
		case "exit", "quit":
			return nil
		case "help":
			printShellHelp(out, commands)
			continue
		}

		command, ok := commands[name]
		if !ok {
			fmt.Fprintf(out, "❌ Unknown command: %s (type 'help' for placement commands)\n", name)
			continue
		}
		if len(rawArgs) != command.args {
			fmt.Fprintf(out, "❌ Usage: %s\n", command.usage)
			continue
		}

		args := make([]int, len(rawArgs))
		valid := true
		for i, raw := range rawArgs {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 {
				fmt.Fprintf(out, "❌ %q is not a positive number\n", raw)
				valid = false
				break
			}
			args[i] = n
		}
		if !valid {
			continue
		}

		if err := command.run(args); err != nil {
			fmt.Fprintf(out, "❌ Error: %v\n", err)
		}
	}

	if err := input.Err(); err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}
	return nil
}

func printShellHelp(out io.Writer, commands map[string]shellCommand) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(out, "\nPlacement commands:")
	for _, name := range names {
		fmt.Fprintf(out, "  %-26s %s\n", commands[name].usage, commands[name].short)
	}
	fmt.Fprintf(out, "  %-26s %s\n\n", "exit, quit", "Leave the placement session")
}

// optionCommands builds the verbs shared by seating and team sessions
func optionCommands[T session.Arrangement[T]](s *session.Session[T], out io.Writer, show func(), commit func() error) map[string]shellCommand {
	return map[string]shellCommand{
		"show": {usage: "show", short: "Show the arrangement being edited", run: func([]int) error {
			show()
			return nil
		}},
		"next": {usage: "next", short: "Load the next option", run: func([]int) error {
			if !s.Next() {
				fmt.Fprintln(out, "Already on the last option")
				return nil
			}
			show()
			return nil
		}},
		"prev": {usage: "prev", short: "Load the previous option", run: func([]int) error {
			if !s.Prev() {
				fmt.Fprintln(out, "Already on the first option")
				return nil
			}
			show()
			return nil
		}},
		"select": {usage: "select <option>", short: "Load an option by number", args: 1, run: func(args []int) error {
			if err := s.SelectOption(args[0] - 1); err != nil {
				return err
			}
			show()
			return nil
		}},
		"reset": {usage: "reset", short: "Go back to the best option, dropping manual changes", run: func([]int) error {
			s.Reset()
			show()
			return nil
		}},
		"commit": {usage: "commit", short: "Save the arrangement being edited", run: func([]int) error {
			if err := commit(); err != nil {
				return err
			}
			fmt.Fprintln(out, "✓ Arrangement saved")
			return nil
		}},
	}
}

func seatingShellCommands(ctx context.Context, s *session.SeatingSession, store db.SeatingStore, itemID string, out io.Writer) (map[string]shellCommand, func()) {
	show := func() {
		fmt.Fprintf(out, "\nOption %d of %d (generated score %.1f)\n", s.CurrentIndex()+1, len(s.Options()), s.Score())
		renderSeating(out, s.Working())
		fmt.Fprintln(out)
	}

	commands := optionCommands(s.Session, out, show, func() error {
		return s.Commit(ctx, store, itemID)
	})
	commands["move"] = shellCommand{usage: "move <from> <to>", short: "Move the guest in seat <from> to seat <to>", args: 2, run: func(args []int) error {
		if err := s.MoveWithinSeating(args[0]-1, args[1]-1); err != nil {
			return err
		}
		show()
		return nil
	}}
	commands["swap"] = shellCommand{usage: "swap <a> <b>", short: "Swap the guests in two seats", args: 2, run: func(args []int) error {
		if err := s.SwapSeats(args[0]-1, args[1]-1); err != nil {
			return err
		}
		show()
		return nil
	}}
	return commands, show
}

func teamShellCommands(ctx context.Context, s *session.TeamSession, store db.TeamStore, itemID string, out io.Writer) (map[string]shellCommand, func()) {
	show := func() {
		fmt.Fprintf(out, "\nOption %d of %d (generated score %.1f)\n", s.CurrentIndex()+1, len(s.Options()), s.Score())
		renderTeams(out, s.Working())
		fmt.Fprintln(out)
	}

	commands := optionCommands(s.Session, out, show, func() error {
		return s.Commit(ctx, store, itemID)
	})
	commands["moveTeam"] = shellCommand{
		usage: "moveTeam <ft> <fi> <tt> <ti>",
		short: "Move member <fi> of team <ft> to position <ti> of team <tt>",
		args:  4,
		run: func(args []int) error {
			if err := s.MoveBetweenTeams(args[0]-1, args[1]-1, args[2]-1, args[3]-1); err != nil {
				return err
			}
			show()
			return nil
		},
	}
	return commands, show
}
