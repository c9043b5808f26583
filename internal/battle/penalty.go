package battle

import "math"

// Penalty is a tagged variant describing exactly one resource drained
// on defeat. Concrete types carry their own payload and are dispatched
// by type switch rather than string comparison.
type Penalty interface {
	Kind() ResourceKind
	Amount() float64
}

// SnowballDrain is the Siphon penalty: a percentage of the primary
// currency.
type SnowballDrain struct {
	Drained float64 `json:"drained"`
}

func (p SnowballDrain) Kind() ResourceKind { return ResourceSnowballs }
func (p SnowballDrain) Amount() float64    { return p.Drained }

// AssistantLoss is the Assailant penalty: one owned assistant chosen
// uniformly at random. Count is 0 when the player owned none.
type AssistantLoss struct {
	AssistantID string `json:"assistant_id"`
	Count       int    `json:"count"`
}

func (p AssistantLoss) Kind() ResourceKind { return ResourceAssistant }
func (p AssistantLoss) Amount() float64    { return float64(p.Count) }

// IcicleDrain is the Anchor penalty: a fixed icicle amount.
type IcicleDrain struct {
	Drained float64 `json:"drained"`
}

func (p IcicleDrain) Kind() ResourceKind { return ResourceIcicles }
func (p IcicleDrain) Amount() float64    { return p.Drained }

// SnowflakeDrain is the Scrambler penalty: a fixed snowflake amount.
type SnowflakeDrain struct {
	Drained float64 `json:"drained"`
}

func (p SnowflakeDrain) Kind() ResourceKind { return ResourceSnowflakes }
func (p SnowflakeDrain) Amount() float64    { return p.Drained }

// applyPenalty drains exactly one resource per the opponent's class.
// Resulting balances are clamped to zero and draining something the
// player does not own is a no-op with amount 0, never an error. The
// applier mutates raw balances only; derived aggregates (such as the
// production rate after an assistant loss) are recomputed by the host.
func (e *Engine) applyPenalty(class OpponentClass) Penalty {
	switch class {
	case ClassSiphon:
		bal := e.host.ResourceBalance(ResourceSnowballs)
		drain := math.Floor(bal * e.cfg.SiphonDrainFraction)
		if drain > bal {
			drain = bal
		}
		if drain <= 0 {
			return SnowballDrain{}
		}
		e.host.MutateResource(ResourceSnowballs, -drain)
		return SnowballDrain{Drained: drain}
	case ClassAssailant:
		ids := e.host.AssistantIDs()
		if len(ids) == 0 {
			return AssistantLoss{}
		}
		id := ids[e.rng.Intn(len(ids))]
		if !e.host.RemoveAssistant(id) {
			return AssistantLoss{}
		}
		return AssistantLoss{AssistantID: id, Count: 1}
	case ClassAnchor:
		return IcicleDrain{Drained: e.drainFlat(ResourceIcicles, e.cfg.AnchorIcicleDrain)}
	case ClassScrambler:
		return SnowflakeDrain{Drained: e.drainFlat(ResourceSnowflakes, e.cfg.ScramblerSnowflakeDrain)}
	}
	return nil
}

// drainFlat removes up to amount from the balance, clamping at zero.
func (e *Engine) drainFlat(kind ResourceKind, amount float64) float64 {
	bal := e.host.ResourceBalance(kind)
	drain := amount
	if drain > bal {
		drain = bal
	}
	if drain <= 0 {
		return 0
	}
	e.host.MutateResource(kind, -drain)
	return drain
}
