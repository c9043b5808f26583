package battle

// OpponentClass identifies the class of a hostile spawn.
// Using a dedicated type instead of plain string makes code safer and self-documenting.
type OpponentClass string

const (
	ClassSiphon    OpponentClass = "siphon"
	ClassAssailant OpponentClass = "assailant"
	ClassAnchor    OpponentClass = "anchor"
	ClassScrambler OpponentClass = "scrambler"
)

// OpponentClasses lists every spawnable class. Spawns pick uniformly.
var OpponentClasses = []OpponentClass{ClassSiphon, ClassAssailant, ClassAnchor, ClassScrambler}

// BuffClass identifies the class of a buff the player can hold.
type BuffClass string

const (
	BuffHarvester BuffClass = "harvester"
	BuffDefender  BuffClass = "defender"
	BuffTraveler  BuffClass = "traveler"
	BuffScholar   BuffClass = "scholar"
)

// oppositionTable maps each opposing class to the single buff class
// that counters it. Loaded once, never mutated.
var oppositionTable = map[OpponentClass]BuffClass{
	ClassSiphon:    BuffHarvester,
	ClassAssailant: BuffDefender,
	ClassAnchor:    BuffTraveler,
	ClassScrambler: BuffScholar,
}

// CounterClass returns the buff class that counters the given opposing
// class, and whether the class is known.
func CounterClass(c OpponentClass) (BuffClass, bool) {
	b, ok := oppositionTable[c]
	return b, ok
}

// PlayerBuffs carries the player's currently active class buffs. The
// two slots are independently sourced; Stacked is true only when both
// slots hold the same class at the same time.
type PlayerBuffs struct {
	Primary   BuffClass `json:"primary"`
	Secondary BuffClass `json:"secondary"`
	Stacked   bool      `json:"stacked"`
}

// Advantage is the result of checking the player's buffs against an
// opponent's class.
type Advantage struct {
	HasAdvantage bool
	// StackedBonus upgrades the 2x advantage reward to the 3x tier.
	// (Historically called the "double reward" even though it selects
	// the triple multiplier; the tier semantics are unchanged here.)
	StackedBonus bool
	Source       BuffClass
}

// ResolveAdvantage reports whether the player counters the opponent's
// class. An unknown opponent class yields no advantage rather than an
// error.
func ResolveAdvantage(opponent OpponentClass, buffs PlayerBuffs) Advantage {
	counter, ok := oppositionTable[opponent]
	if !ok {
		return Advantage{}
	}
	var adv Advantage
	switch {
	case buffs.Primary == counter:
		adv.HasAdvantage = true
		adv.Source = buffs.Primary
	case buffs.Secondary == counter:
		adv.HasAdvantage = true
		adv.Source = buffs.Secondary
	}
	if buffs.Primary == counter && buffs.Secondary == counter && buffs.Stacked {
		adv.StackedBonus = true
	}
	return adv
}
