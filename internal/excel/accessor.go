package excel

// FieldAccessor is a pair of typed closures over one entity field. The
// accessor table replaces runtime reflection: config files still address
// fields by name, but every get/set goes through compiled code.
//
// Set receives the value already converted to the column's semantic type
// (string, float64, bool or time.Time) and coerces it into the concrete
// field; multi-valued columns receive the raw comma-separated string.
type FieldAccessor[T any] struct {
	Get func(entity *T) any
	Set func(entity *T, value any) error
}

// FieldMap indexes a type's accessors by the field names used in mapping
// configs
type FieldMap[T any] map[string]FieldAccessor[T]
