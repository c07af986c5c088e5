package repository

import "strings"

// patchSQL assembles an UPDATE statement for a partial patch.  sets holds
// "col = ?" fragments in the order their arguments appear in args.  The
// statement always refreshes updated_at so that even an empty patch
// touches the row, matching the merge-then-touch contract of the update
// operations.  The row id must be appended to args by the caller after
// the set arguments.
func patchSQL(table string, sets []string) string {
	return patchSQLBy(table, sets, "id")
}

// patchSQLBy is patchSQL with a caller-chosen key column, for tables
// addressed by something other than their primary key (group_wallets by
// group_id).
func patchSQLBy(table string, sets []string, keyCol string) string {
	all := make([]string, 0, len(sets)+1)
	all = append(all, sets...)
	all = append(all, "updated_at = NOW()")
	return "UPDATE " + table + " SET " + strings.Join(all, ", ") + " WHERE " + keyCol + " = ?"
}
