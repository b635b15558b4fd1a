package domain

// Difficulty labels target puzzle generation. The label selects which solving
// oracle the reducer must satisfy: a weaker oracle rejects removals sooner and
// leaves a clue-dense, easier puzzle.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	}
	return "medium"
}

// StrategyTier limits hinting/deduction complexity used.
type StrategyTier int

const (
	StrategySingles       StrategyTier = iota // naked singles / sole candidates
	StrategyHiddenSingles                     // hidden singles in a group
	StrategyFull                              // exhaustive search
)
