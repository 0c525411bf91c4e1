// Package classifier maps account names onto financial statement categories.
package classifier

import (
	"fmt"
	"strings"
)

// Category is one of the five statement categories. The zero value is Unclassified.
type Category string

const (
	Unclassified Category = ""
	Asset        Category = "asset"
	Liability    Category = "liability"
	Equity       Category = "equity"
	Revenue      Category = "revenue"
	Expense      Category = "expense"
)

// ParseCategory parses a configured category name. Matching is case-insensitive.
func ParseCategory(s string) (Category, error) {
	switch c := Category(strings.ToLower(strings.TrimSpace(s))); c {
	case Asset, Liability, Equity, Revenue, Expense:
		return c, nil
	default:
		return Unclassified, fmt.Errorf("classifier: unknown category %q", s)
	}
}

// DebitNormal reports whether balances in the category grow on the debit side.
func (c Category) DebitNormal() bool {
	return c == Asset || c == Expense
}

// Role tags an account with the line it feeds in ratio calculations.
type Role string

const (
	RoleNone             Role = ""
	RoleCash             Role = "cash"
	RoleReceivable       Role = "receivable"
	RoleInventory        Role = "inventory"
	RoleCurrentLiability Role = "current_liability"
	RoleCostOfSales      Role = "cost_of_sales"
	RoleInterest         Role = "interest"
)

// ParseRole parses a configured role. An empty string yields RoleNone.
func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleNone, RoleCash, RoleReceivable, RoleInventory, RoleCurrentLiability, RoleCostOfSales, RoleInterest:
		return r, nil
	default:
		return RoleNone, fmt.Errorf("classifier: unknown role %q", s)
	}
}

// Classification is the result of classifying one account.
type Classification struct {
	Category Category `json:"category"`
	Role     Role     `json:"role,omitempty"`
}

// Classified reports whether a rule matched.
func (c Classification) Classified() bool {
	return c.Category != Unclassified
}

// Classifier assigns a Classification to an account name.
// Implementations return the zero Classification when no rule applies.
type Classifier interface {
	Classify(account string) Classification
}
