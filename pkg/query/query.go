package query

// Operator is a filter comparison operator supported by the storage backend.
type Operator string

const (
	OpEq    Operator = "eq"
	OpNeq   Operator = "neq"
	OpGt    Operator = "gt"
	OpGte   Operator = "gte"
	OpLt    Operator = "lt"
	OpLte   Operator = "lte"
	OpLike  Operator = "like"
	OpILike Operator = "ilike"
	OpIn    Operator = "in"
	OpIs    Operator = "is"
)

// Filter restricts a query to rows whose column matches value under the operator.
type Filter struct {
	Column   string      `json:"column"`
	Operator Operator    `json:"operator"`
	Value    interface{} `json:"value"`
}

// Sort orders results by a column. Sorts are applied in the order listed.
type Sort struct {
	Column    string `json:"column"`
	Ascending bool   `json:"ascending"`
}

// Pagination selects a zero-based page of Limit rows.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Range returns the inclusive row range [from, to] the page covers.
func (p Pagination) Range() (from, to int) {
	from = p.Page * p.Limit
	to = from + p.Limit - 1
	return from, to
}

// Offset returns the row offset for the page.
func (p Pagination) Offset() int {
	return p.Page * p.Limit
}

// Options carries the full query intent for a list operation.
type Options struct {
	Filters    []Filter    `json:"filters,omitempty"`
	Sorts      []Sort      `json:"sorts,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Select     string      `json:"select,omitempty"`
}

// Eq is shorthand for an equality filter.
func Eq(column string, value interface{}) Filter {
	return Filter{Column: column, Operator: OpEq, Value: value}
}

// In is shorthand for a set-membership filter.
func In(column string, values interface{}) Filter {
	return Filter{Column: column, Operator: OpIn, Value: values}
}
