package optimizer

// Penalty weights. The magnitudes encode priority: fair-play balance (when enabled)
// dominates, then kinship separation, then repeat-grouping avoidance, then
// demographic balance.
const (
	// Seating penalties, applied per neighbour check (each table edge is checked from both ends)
	WeightSeatingRelated      = 35.0
	WeightSeatingHistory      = 15.0
	WeightSeatingSameCategory = 20.0

	// Team penalties
	WeightTeamFairPlay          = 50.0 // per unit of average rank deviation from the middle rank
	WeightTeamRelated           = 30.0 // per related pair on the same team
	WeightTeamHistory           = 15.0 // per previously grouped pair on the same team
	WeightTeamCategoryImbalance = 5.0  // per unit of category count deviation
)

// Weights holds the penalty weights used by the scorer
type Weights struct {
	SeatingRelated      float64
	SeatingHistory      float64
	SeatingSameCategory float64

	TeamFairPlay          float64
	TeamRelated           float64
	TeamHistory           float64
	TeamCategoryImbalance float64
}

// DefaultWeights returns the built-in penalty weights
func DefaultWeights() Weights {
	return Weights{
		SeatingRelated:        WeightSeatingRelated,
		SeatingHistory:        WeightSeatingHistory,
		SeatingSameCategory:   WeightSeatingSameCategory,
		TeamFairPlay:          WeightTeamFairPlay,
		TeamRelated:           WeightTeamRelated,
		TeamHistory:           WeightTeamHistory,
		TeamCategoryImbalance: WeightTeamCategoryImbalance,
	}
}
