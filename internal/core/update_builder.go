// BlogHub | 2026
// update_builder.go

package core

import (
	"fmt"
	"strings"
)

// UpdateBuilder accumulates SET fragments for a partial UPDATE from
// whatever optional fields the caller actually supplied. Column names
// come from a fixed whitelist held by the caller; values only ever
// travel as bound parameters.
type UpdateBuilder struct {
	table   string
	columns []string
	args    []any
}

func NewUpdateBuilder(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

// Set registers a column assignment. The column must be a literal from
// the repository's whitelist, never request input.
func (b *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	b.columns = append(b.columns, column)
	b.args = append(b.args, value)
	return b
}

func (b *UpdateBuilder) Empty() bool {
	return len(b.columns) == 0
}

// Build renders `UPDATE <table> SET c1 = $1, ... WHERE <cond>` with
// the WHERE arguments appended after the SET arguments. The condition
// string uses placeholders starting at $len(set)+1.
func (b *UpdateBuilder) Build(where string, whereArgs ...any) (string, []any, error) {
	if b.Empty() {
		return "", nil, fmt.Errorf("build update: %w", ErrNoFields)
	}

	assignments := make([]string, 0, len(b.columns))
	for i, col := range b.columns {
		assignments = append(assignments, fmt.Sprintf("%s = $%d", col, i+1))
	}

	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE %s",
		b.table,
		strings.Join(assignments, ", "),
		where,
	)

	args := make([]any, 0, len(b.args)+len(whereArgs))
	args = append(args, b.args...)
	args = append(args, whereArgs...)

	return query, args, nil
}

// WherePlaceholder returns the positional placeholder for the nth
// WHERE argument (1-based), given the assignments registered so far.
func (b *UpdateBuilder) WherePlaceholder(n int) string {
	return fmt.Sprintf("$%d", len(b.columns)+n)
}
