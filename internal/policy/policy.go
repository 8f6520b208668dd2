// Package policy declares the row rules for the games table.
//
// The PostgreSQL driver enforces the same rules through row-level security
// (see repository/storage/migrations). Stores without native row security
// evaluate this declaration before committing a write.
package policy

import "github.com/rocketscienceinc/counter-backend/internal/entity"

type Command string

const (
	Select Command = "SELECT"
	Insert Command = "INSERT"
	Update Command = "UPDATE"
)

type Predicate func(actor string, row *entity.Game) bool

// Rule mirrors a permissive CREATE POLICY: Using filters existing rows,
// Check validates the row being written.
type Rule struct {
	Name    string
	Command Command
	Using   Predicate
	Check   Predicate
}

var Games = []Rule{
	{
		Name:    "games_select_member_or_open",
		Command: Select,
		Using: func(actor string, row *entity.Game) bool {
			return row.HasPlayer(actor) || row.IsJoinable()
		},
	},
	{
		Name:    "games_insert_creator",
		Command: Insert,
		Check: func(actor string, row *entity.Game) bool {
			return len(row.Players) == 1 &&
				row.Players[0] == actor &&
				row.CurrentPlayer == actor &&
				row.CurrentNumber == 0 &&
				!row.GameOver
		},
	},
	{
		Name:    "games_update_mover",
		Command: Update,
		Using: func(actor string, row *entity.Game) bool {
			return row.CurrentPlayer == actor
		},
		Check: func(actor string, row *entity.Game) bool {
			return row.HasPlayer(actor) && row.HasPlayer(row.CurrentPlayer)
		},
	},
	{
		Name:    "games_update_joiner",
		Command: Update,
		Using: func(actor string, row *entity.Game) bool {
			return row.IsJoinableBy(actor)
		},
		Check: func(actor string, row *entity.Game) bool {
			return row.HasPlayer(actor) && len(row.Players) <= entity.MaxPlayers
		},
	},
}

// Set evaluates a list of rules the way PostgreSQL combines permissive policies.
type Set []Rule

func (that Set) CanSelect(actor string, row *entity.Game) bool {
	return that.anyUsing(Select, actor, row)
}

func (that Set) CanInsert(actor string, row *entity.Game) bool {
	return that.anyCheck(Insert, actor, row)
}

// CanUpdate - the old row must pass some USING clause and the new row some CHECK clause.
func (that Set) CanUpdate(actor string, before, after *entity.Game) bool {
	return that.anyUsing(Update, actor, before) && that.anyCheck(Update, actor, after)
}

func (that Set) anyUsing(cmd Command, actor string, row *entity.Game) bool {
	for _, rule := range that {
		if rule.Command == cmd && rule.Using != nil && rule.Using(actor, row) {
			return true
		}
	}
	return false
}

func (that Set) anyCheck(cmd Command, actor string, row *entity.Game) bool {
	for _, rule := range that {
		if rule.Command == cmd && rule.Check != nil && rule.Check(actor, row) {
			return true
		}
	}
	return false
}

// Default is the rule set every store applies.
var Default = Set(Games)
