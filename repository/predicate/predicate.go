package predicate

import (
	"strings"
)

// Predicate is a conjunction of SQL conditions with their positional args.
// Conditions are only ever produced from column names held in the field maps,
// caller values always travel as args.
type Predicate struct {
	conds []string
	args  []any
}

func New() *Predicate {
	return &Predicate{}
}

// And appends a condition.
func (p *Predicate) And(cond string, args ...any) *Predicate {
	p.conds = append(p.conds, cond)
	p.args = append(p.args, args...)
	return p
}

// Scope appends the ownership constraint. It must be the last condition added.
func (p *Predicate) Scope(column string, ownerID uint64) *Predicate {
	return p.And(column+" = ?", ownerID)
}

// Where renders " WHERE a AND b" or an empty string.
func (p *Predicate) Where() (string, []any) {
	if p == nil || len(p.conds) == 0 {
		return "", nil
	}
	args := make([]any, len(p.args))
	copy(args, p.args)
	return " WHERE " + strings.Join(p.conds, " AND "), args
}

func (p *Predicate) Conditions() []string {
	if p == nil {
		return nil
	}
	return p.conds
}

func (p *Predicate) Args() []any {
	if p == nil {
		return nil
	}
	return p.args
}

// Order is a resolved sort: a physical column and a direction.
type Order struct {
	Column string
	Desc   bool
}

// SQL renders " ORDER BY col DIR, tiebreak ASC". tiebreak keeps paging stable
// when col has duplicates.
func (o Order) SQL(tiebreak ...string) string {
	dir := "ASC"
	if o.Desc {
		dir = "DESC"
	}
	var sb strings.Builder
	sb.WriteString(" ORDER BY ")
	sb.WriteString(o.Column)
	sb.WriteString(" ")
	sb.WriteString(dir)
	for _, t := range tiebreak {
		if t == o.Column {
			continue
		}
		sb.WriteString(", ")
		sb.WriteString(t)
		sb.WriteString(" ASC")
	}
	return sb.String()
}
