package search

// Operator is a comparison applied to a single property
type Operator string

const (
	OpEquals              Operator = "EQUALS"
	OpNotEquals           Operator = "NOT_EQUALS"
	OpGreaterThan         Operator = "GREATER_THAN"
	OpLessThan            Operator = "LESS_THAN"
	OpGreaterThanOrEquals Operator = "GREATER_THAN_OR_EQUALS"
	OpLessThanOrEquals    Operator = "LESS_THAN_OR_EQUALS"
	OpLike                Operator = "LIKE"
	OpNotLike             Operator = "NOT_LIKE"
	OpIn                  Operator = "IN"
	OpNotIn               Operator = "NOT_IN"
	OpIsNull              Operator = "IS_NULL"
	OpIsNotNull           Operator = "IS_NOT_NULL"
	OpBetween             Operator = "BETWEEN"
)

// FieldType tells the translator how to cast the criterion value
type FieldType string

const (
	TypeString   FieldType = "STRING"
	TypeNumber   FieldType = "NUMBER"
	TypeBoolean  FieldType = "BOOLEAN"
	TypeDate     FieldType = "DATE"
	TypeDateTime FieldType = "DATETIME"
	TypeEnum     FieldType = "ENUM"
)

// Criterion is one comparison condition. Values are always transported as
// strings; IN/NOT_IN/BETWEEN pack multiple values comma-separated.
type Criterion struct {
	Property string    `json:"property"`
	Operator Operator  `json:"operator"`
	Value    string    `json:"value"`
	Type     FieldType `json:"type"`
}

// Request is a flat list of criteria combined with AND. There is no OR
// grouping and no nesting. IncludeDeleted widens the result set to
// soft-deleted rows; it does not change how criteria are applied.
type Request struct {
	Criteria       []Criterion `json:"criteria"`
	IncludeDeleted bool        `json:"includeDeleted"`
}
