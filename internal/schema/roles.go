// Package schema classifies dataset columns by semantic role. The role is
// derived purely from the column name at the moment a stage asks for it; it
// never depends on the values currently held by the column.
package schema

import "strings"

// Role is the inferred semantic classification of a column.
type Role int

const (
	// RoleText marks identifier/descriptive columns; the default.
	RoleText Role = iota
	// RolePrice marks columns whose name contains "price".
	RolePrice
	// RoleQuantity marks columns whose name contains "quantity" or "qty".
	RoleQuantity
)

// String returns the lowercase role name.
func (r Role) String() string {
	switch r {
	case RolePrice:
		return "price"
	case RoleQuantity:
		return "quantity"
	default:
		return "text"
	}
}

// Numeric reports whether the role carries numeric values.
func (r Role) Numeric() bool { return r == RolePrice || r == RoleQuantity }

// RoleOf classifies a column name. Matching is a case-insensitive substring
// test; "price" wins over "quantity"/"qty" when a name matches both.
func RoleOf(name string) Role {
	n := strings.ToLower(name)
	switch {
	case strings.Contains(n, "price"):
		return RolePrice
	case strings.Contains(n, "quantity"), strings.Contains(n, "qty"):
		return RoleQuantity
	default:
		return RoleText
	}
}

// NumericColumns returns, preserving input order, the columns whose role is
// Price or Quantity.
func NumericColumns(columns []string) []string {
	var out []string
	for _, c := range columns {
		if RoleOf(c).Numeric() {
			out = append(out, c)
		}
	}
	return out
}
