package search

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

var propertyPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

var naming = schema.NamingStrategy{}

// Translator turns a search Request into a GORM scope. Invalid or
// unparsable criteria are skipped with a warning, never fatal: a search
// with only broken criteria degrades to listing.
type Translator struct {
	logger *zap.Logger
}

// NewTranslator creates a Translator
func NewTranslator(logger *zap.Logger) *Translator {
	return &Translator{logger: logger}
}

type predicate struct {
	query string
	args  []any
}

// Scope builds the composed predicate for req.
//
// Earlier revisions dropped every criterion unless includeDeleted was set;
// criteria now always apply and includeDeleted only controls the
// is_deleted guard.
func (t *Translator) Scope(req *Request) func(*gorm.DB) *gorm.DB {
	var preds []predicate
	includeDeleted := false

	if req != nil {
		includeDeleted = req.IncludeDeleted
		for _, c := range req.Criteria {
			if c.Property == "" || c.Operator == "" {
				continue
			}
			if !propertyPattern.MatchString(c.Property) {
				t.logger.Warn("skipping criterion with unsafe property name",
					zap.String("property", c.Property))
				continue
			}
			if p, ok := t.translate(c); ok {
				preds = append(preds, p)
			}
		}
	}

	return func(db *gorm.DB) *gorm.DB {
		if !includeDeleted {
			db = db.Where("is_deleted = ?", false)
		}
		for _, p := range preds {
			db = db.Where(p.query, p.args...)
		}
		return db
	}
}

func (t *Translator) translate(c Criterion) (predicate, bool) {
	column := naming.ColumnName("", c.Property)

	switch c.Operator {
	case OpIsNull:
		return predicate{query: column + " IS NULL"}, true
	case OpIsNotNull:
		return predicate{query: column + " IS NOT NULL"}, true
	}

	// Every remaining operator needs a value
	if c.Value == "" {
		return predicate{}, false
	}

	switch c.Operator {
	case OpIn, OpNotIn:
		values, err := convertList(strings.Split(c.Value, ","), c.Type)
		if err != nil {
			t.logger.Warn("skipping criterion with unparsable list value",
				zap.String("property", c.Property), zap.String("value", c.Value), zap.Error(err))
			return predicate{}, false
		}
		if c.Operator == OpIn {
			return predicate{query: column + " IN ?", args: []any{values}}, true
		}
		return predicate{query: column + " NOT IN ?", args: []any{values}}, true

	case OpBetween:
		parts := strings.Split(c.Value, ",")
		if len(parts) != 2 {
			t.logger.Warn("skipping BETWEEN criterion without exactly two bounds",
				zap.String("property", c.Property), zap.String("value", c.Value))
			return predicate{}, false
		}
		bounds, err := convertList(parts, c.Type)
		if err != nil {
			t.logger.Warn("skipping BETWEEN criterion with unparsable bound",
				zap.String("property", c.Property), zap.String("value", c.Value), zap.Error(err))
			return predicate{}, false
		}
		return predicate{query: column + " BETWEEN ? AND ?", args: bounds}, true
	}

	value, err := convertValue(c.Value, c.Type)
	if err != nil {
		t.logger.Warn("skipping criterion with unparsable value",
			zap.String("property", c.Property), zap.String("value", c.Value), zap.Error(err))
		return predicate{}, false
	}

	switch c.Operator {
	case OpEquals:
		return predicate{query: column + " = ?", args: []any{value}}, true
	case OpNotEquals:
		return predicate{query: column + " <> ?", args: []any{value}}, true
	case OpGreaterThan:
		return predicate{query: column + " > ?", args: []any{value}}, true
	case OpLessThan:
		return predicate{query: column + " < ?", args: []any{value}}, true
	case OpGreaterThanOrEquals:
		return predicate{query: column + " >= ?", args: []any{value}}, true
	case OpLessThanOrEquals:
		return predicate{query: column + " <= ?", args: []any{value}}, true
	case OpLike:
		return predicate{query: column + " LIKE ?", args: []any{"%" + c.Value + "%"}}, true
	case OpNotLike:
		return predicate{query: column + " NOT LIKE ?", args: []any{"%" + c.Value + "%"}}, true
	}

	t.logger.Warn("skipping criterion with unknown operator",
		zap.String("property", c.Property), zap.String("operator", string(c.Operator)))
	return predicate{}, false
}

func convertValue(value string, fieldType FieldType) (any, error) {
	value = strings.TrimSpace(value)
	switch fieldType {
	case TypeNumber:
		return strconv.ParseFloat(value, 64)
	case TypeBoolean:
		return strconv.ParseBool(value)
	case TypeDate:
		return time.Parse("2006-01-02", value)
	case TypeDateTime:
		return time.Parse(time.RFC3339, value)
	default:
		// STRING and ENUM pass through untouched
		return value, nil
	}
}

func convertList(parts []string, fieldType FieldType) ([]any, error) {
	values := make([]any, 0, len(parts))
	for _, p := range parts {
		v, err := convertValue(p, fieldType)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}
