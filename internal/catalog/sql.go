package catalog

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// identPattern is the accepted syntax for caller-supplied column names.
// Anything else is rejected before it reaches the database layer.
var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// validColumnName reports whether name is a syntactically valid column
// identifier.
func validColumnName(name string) bool {
	return identPattern.MatchString(name)
}

// quoteIdentifier returns a safely quoted PostgreSQL identifier.
// Doubles any embedded quotes to prevent identifier injection.
func quoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// sortedColumns returns the payload's column names in a stable order.
// Go map iteration is randomized; sorting keeps generated SQL
// deterministic for logging and tests.
func sortedColumns(fields map[string]any) ([]string, error) {
	cols := make([]string, 0, len(fields))
	for col := range fields {
		if !validColumnName(col) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidColumn, col)
		}
		cols = append(cols, col)
	}
	sort.Strings(cols)
	return cols, nil
}

// buildInsert builds a parameterized INSERT over exactly the supplied
// columns, returning the inserted row.
func buildInsert(table string, fields map[string]any) (string, []any, error) {
	cols, err := sortedColumns(fields)
	if err != nil {
		return "", nil, err
	}

	quoted := make([]string, len(cols))
	placeholders := make([]string, len(cols))
	args := make([]any, len(cols))
	for i, col := range cols {
		quoted[i] = quoteIdentifier(col)
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = fields[col]
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING *",
		quoteIdentifier(table),
		strings.Join(quoted, ", "),
		strings.Join(placeholders, ", "),
	)
	return query, args, nil
}

// buildUpdate builds a parameterized partial UPDATE over exactly the
// supplied columns. The row identifier is bound as the final parameter.
func buildUpdate(table string, id int64, fields map[string]any) (string, []any, error) {
	cols, err := sortedColumns(fields)
	if err != nil {
		return "", nil, err
	}

	assignments := make([]string, len(cols))
	args := make([]any, 0, len(cols)+1)
	for i, col := range cols {
		assignments[i] = fmt.Sprintf("%s = $%d", quoteIdentifier(col), i+1)
		args = append(args, fields[col])
	}
	args = append(args, id)

	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = $%d RETURNING *",
		quoteIdentifier(table),
		strings.Join(assignments, ", "),
		len(cols)+1,
	)
	return query, args, nil
}

// buildDelete builds a parameterized DELETE by row identifier.
func buildDelete(table string, id int64) (string, []any) {
	query := fmt.Sprintf(
		"DELETE FROM %s WHERE id = $1 RETURNING *",
		quoteIdentifier(table),
	)
	return query, []any{id}
}
