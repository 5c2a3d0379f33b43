package optimizer

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is returned when an optimize call cannot produce a sensible arrangement
var ErrInvalidConfiguration = errors.New("invalid configuration")

// ExhaustiveSeatingLimit is the largest table enumerated exhaustively (8! = 40320 orders).
// Raising it requires switching larger tables to the heuristic path.
const ExhaustiveSeatingLimit = 8

// TeamSizes returns the floor and ceiling team sizes for splitting total people into teamCount teams
func TeamSizes(total, teamCount int) (minSize, maxSize int) {
	if teamCount <= 0 {
		return 0, 0
	}
	minSize = total / teamCount
	maxSize = minSize
	if total%teamCount > 0 {
		maxSize++
	}
	return minSize, maxSize
}

// ValidatePeople checks the person list shared by both optimizers
func ValidatePeople(peopleCount int) error {
	if peopleCount == 0 {
		return fmt.Errorf("%w: no people to arrange", ErrInvalidConfiguration)
	}
	return nil
}

// ValidateTeamConfig checks a team split before generation. Zero size bounds are
// treated as unset; set bounds must admit the floor/remainder distribution.
func ValidateTeamConfig(peopleCount, teamCount, minSize, maxSize int) error {
	if err := ValidatePeople(peopleCount); err != nil {
		return err
	}
	if teamCount < 2 {
		return fmt.Errorf("%w: team count must be at least 2, got %d", ErrInvalidConfiguration, teamCount)
	}
	if teamCount >= peopleCount {
		return fmt.Errorf("%w: team count %d must be less than the number of people (%d)",
			ErrInvalidConfiguration, teamCount, peopleCount)
	}
	if minSize < 0 || maxSize < 0 {
		return fmt.Errorf("%w: team size bounds must not be negative", ErrInvalidConfiguration)
	}
	if minSize > 0 && maxSize > 0 && minSize > maxSize {
		return fmt.Errorf("%w: minimum team size %d exceeds maximum %d", ErrInvalidConfiguration, minSize, maxSize)
	}

	floor, ceiling := TeamSizes(peopleCount, teamCount)
	if minSize > 0 && floor < minSize {
		return fmt.Errorf("%w: %d people in %d teams leaves teams of %d, below the minimum of %d",
			ErrInvalidConfiguration, peopleCount, teamCount, floor, minSize)
	}
	if maxSize > 0 && ceiling > maxSize {
		return fmt.Errorf("%w: %d people in %d teams needs teams of %d, above the maximum of %d",
			ErrInvalidConfiguration, peopleCount, teamCount, ceiling, maxSize)
	}

	return nil
}
