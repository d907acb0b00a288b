package sqlbuilder

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tabulaorm/tabula/errors"
	"github.com/tabulaorm/tabula/errors/class"
	"github.com/tabulaorm/tabula/query"
)

// buildInsert assembles the insert statement. Column order is deterministic.
func buildInsert(table string, data map[string]interface{}) (string, []interface{}, error) {
	if len(data) == 0 {
		return "", nil, errors.Newf(class.QueryValueEmpty, "insert into '%s' with no values", table)
	}

	columns := sortedKeys(data)
	holders := make([]string, len(columns))
	var args []interface{}
	for i, column := range columns {
		if query.IsCurrentTimestamp(data[column]) {
			holders[i] = "CURRENT_TIMESTAMP"
			continue
		}
		holders[i] = "?"
		args = append(args, data[column])
	}

	stmt := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(columns, ", "), strings.Join(holders, ", "))
	return stmt, args, nil
}

// buildSelect assembles the select statement out of the pending state.
func buildSelect(table string, columns []query.ColumnSpec, s *state) (string, []interface{}, error) {
	selected := make([]string, 0, len(columns)+len(s.joinCols))
	for _, c := range columns {
		selected = append(selected, columnSQL(c))
	}
	selected = append(selected, s.joinCols...)
	if len(selected) == 0 {
		selected = []string{"*"}
	}

	var sb strings.Builder
	var args []interface{}

	fmt.Fprintf(&sb, "SELECT %s FROM %s", strings.Join(selected, ", "), table)

	joinStmt, joinArgs := renderJoins(s.joins)
	sb.WriteString(joinStmt)
	args = append(args, joinArgs...)

	whereStmt, whereArgs := renderWheres(s.wheres)
	if whereStmt != "" {
		sb.WriteString(" WHERE " + whereStmt)
		args = append(args, whereArgs...)
	}

	if len(s.groupBys) > 0 {
		sb.WriteString(" GROUP BY " + strings.Join(s.groupBys, ", "))
	}

	orderStmt, err := renderOrders(s.orders)
	if err != nil {
		return "", nil, err
	}
	sb.WriteString(orderStmt)

	if s.limit != nil {
		fmt.Fprintf(&sb, " LIMIT %d", *s.limit)
	}
	if s.offset != nil {
		fmt.Fprintf(&sb, " OFFSET %d", *s.offset)
	}

	return sb.String(), args, nil
}

// buildUpdate assembles the update statement out of the pending state.
func buildUpdate(table string, columns map[string]interface{}, s *state) (string, []interface{}, error) {
	if len(columns) == 0 {
		return "", nil, errors.Newf(class.QueryValueEmpty, "update of '%s' with no values", table)
	}

	sets := make([]string, 0, len(columns))
	var args []interface{}
	for _, column := range sortedKeys(columns) {
		if query.IsCurrentTimestamp(columns[column]) {
			sets = append(sets, column+" = CURRENT_TIMESTAMP")
			continue
		}
		sets = append(sets, column+" = ?")
		args = append(args, columns[column])
	}

	stmt := fmt.Sprintf("UPDATE %s SET %s", table, strings.Join(sets, ", "))

	whereStmt, whereArgs := renderWheres(s.wheres)
	if whereStmt != "" {
		stmt += " WHERE " + whereStmt
		args = append(args, whereArgs...)
	}
	return stmt, args, nil
}

// buildDelete assembles the delete statement out of the pending state.
func buildDelete(table string, s *state) (string, []interface{}, error) {
	stmt := "DELETE FROM " + table
	var args []interface{}

	whereStmt, whereArgs := renderWheres(s.wheres)
	if whereStmt != "" {
		stmt += " WHERE " + whereStmt
		args = append(args, whereArgs...)
	}
	return stmt, args, nil
}

func columnSQL(c query.ColumnSpec) string {
	if c.Func == "" {
		return c.Column
	}
	expr := fmt.Sprintf("%s(%s)", c.Func, c.Column)
	if c.Alias != "" {
		expr += " AS " + c.Alias
	}
	return expr
}

func renderWheres(preds []predicate) (string, []interface{}) {
	var sb strings.Builder
	var args []interface{}

	for i, p := range preds {
		if i > 0 {
			if p.or {
				sb.WriteString(" OR ")
			} else {
				sb.WriteString(" AND ")
			}
		}

		switch {
		case p.nested != nil:
			nestedStmt, nestedArgs := renderWheres(p.nested)
			sb.WriteString("(" + nestedStmt + ")")
			args = append(args, nestedArgs...)
		case p.group:
			sb.WriteString("(" + p.expr + ")")
			args = append(args, p.values...)
		default:
			sb.WriteString(p.expr)
			args = append(args, p.values...)
		}
	}
	return sb.String(), args
}

func renderJoins(joins []join) (string, []interface{}) {
	var sb strings.Builder
	var args []interface{}

	for _, j := range joins {
		fmt.Fprintf(&sb, " %s JOIN %s", j.kind, j.table)
		if len(j.conds) == 0 {
			continue
		}
		condStmt, condArgs := renderWheres(j.conds)
		sb.WriteString(" ON " + condStmt)
		args = append(args, condArgs...)
	}
	return sb.String(), args
}

func renderOrders(orders []query.SortField) (string, error) {
	if len(orders) == 0 {
		return "", nil
	}

	entries := make([]string, len(orders))
	for i, o := range orders {
		var expr string
		switch {
		case o.Func != "" && o.Column != "":
			expr = fmt.Sprintf("%s(%s)", o.Func, o.Column)
		case o.Func != "":
			expr = o.Func
		case o.Column != "":
			expr = o.Column
		default:
			return "", errors.New(class.QuerySortNoField, "order by entry defines neither a column nor a function")
		}
		entries[i] = expr + " " + o.Order.String()
	}
	return " ORDER BY " + strings.Join(entries, ", "), nil
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
