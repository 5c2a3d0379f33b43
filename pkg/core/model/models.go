package model

// Category is the demographic attribute used for balancing tables and teams
type Category string

const (
	CategoryMan       Category = "man"
	CategoryWoman     Category = "woman"
	CategoryNonbinary Category = "nonbinary"
)

// Categories lists every category in a fixed order
var Categories = []Category{CategoryMan, CategoryWoman, CategoryNonbinary}

func (c Category) IsValid() bool {
	return c == CategoryMan || c == CategoryWoman || c == CategoryNonbinary
}

// ItemType distinguishes the two kinds of grouping event in a party
type ItemType string

const (
	ItemTypeMeal  ItemType = "meal"
	ItemTypeEvent ItemType = "event"
)

func (t ItemType) IsValid() bool {
	return t == ItemTypeMeal || t == ItemTypeEvent
}

// Person is a guest taking part in one optimization run
type Person struct {
	ID       string
	Name     string
	Category Category
	// Relationships holds the ids of people flagged as kin or partner.
	// Upstream data does not guarantee symmetry.
	Relationships []string
}

// SeatingPosition is one seat of a circular table
type SeatingPosition struct {
	Position       int
	Person         Person
	AdjustedByUser bool
}

// Seating is a circular table order: position i neighbours i-1 and i+1 (mod len)
type Seating []SeatingPosition

// Clone returns a deep copy of the seating
func (s Seating) Clone() Seating {
	if s == nil {
		return nil
	}
	out := make(Seating, len(s))
	for i, pos := range s {
		out[i] = pos
		out[i].Person = pos.Person.clone()
	}
	return out
}

// ClearAdjusted marks every seat as generated
func (s Seating) ClearAdjusted() {
	for i := range s {
		s[i].AdjustedByUser = false
	}
}

// People returns the seated people in table order
func (s Seating) People() []Person {
	people := make([]Person, len(s))
	for i, pos := range s {
		people[i] = pos.Person
	}
	return people
}

// TeamMember is a person placed on a team
type TeamMember struct {
	Person Person
	// Rank is the fair-play rank (1 = best), 0 when unranked
	Rank           int
	AdjustedByUser bool
}

// Team is one named group of a partition
type Team struct {
	ID      string
	Name    string
	Members []TeamMember
}

// Teams is a partition of people into teams. Member order is display-only.
type Teams []Team

// Clone returns a deep copy of the teams
func (t Teams) Clone() Teams {
	if t == nil {
		return nil
	}
	out := make(Teams, len(t))
	for i, team := range t {
		out[i] = Team{ID: team.ID, Name: team.Name}
		if team.Members != nil {
			out[i].Members = make([]TeamMember, len(team.Members))
			for j, member := range team.Members {
				out[i].Members[j] = member
				out[i].Members[j].Person = member.Person.clone()
			}
		}
	}
	return out
}

// ClearAdjusted marks every member as generated
func (t Teams) ClearAdjusted() {
	for i := range t {
		for j := range t[i].Members {
			t[i].Members[j].AdjustedByUser = false
		}
	}
}

// Size returns the number of people across all teams
func (t Teams) Size() int {
	size := 0
	for _, team := range t {
		size += len(team.Members)
	}
	return size
}

// ScoredOption pairs a generated arrangement with its score (higher is better, 0 is perfect)
type ScoredOption[T any] struct {
	Score       float64
	Arrangement T
}

type SeatingOption = ScoredOption[Seating]

type TeamOption = ScoredOption[Teams]

// TeamConfig describes how an event splits its guests into teams
type TeamConfig struct {
	TeamCount int
	MinSize   int
	MaxSize   int
	FairPlay  bool
	// Rankings is the user-supplied ordering of person ids, best first
	Rankings []string
}

// PriorEvent is the persisted outcome of an earlier meal or event in the party
type PriorEvent struct {
	ItemID string
	Type   ItemType
	// Seats holds person ids ordered by position (meals)
	Seats []string
	// Teams maps team number to member ids (events)
	Teams map[int][]string
}

// SeatAssignment is a stored seat
type SeatAssignment struct {
	PersonID  string
	Position  int
	Generated bool
}

// TeamAssignment is a stored team membership
type TeamAssignment struct {
	PersonID   string
	TeamNumber int
	Generated  bool
}

func (p Person) clone() Person {
	if p.Relationships != nil {
		p.Relationships = append([]string(nil), p.Relationships...)
	}
	return p
}
