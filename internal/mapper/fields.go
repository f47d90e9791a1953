package mapper

import (
	"fmt"
	"time"
)

// Coercion helpers shared by the accessor tables. The import engine hands
// Set the value already converted to the column's semantic type, so a
// mismatch here means the mapping config and the accessor table disagree.

func asString(value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("expected text, got %T", value)
	}
	return s, nil
}

func asFloat(value any) (float64, error) {
	f, ok := value.(float64)
	if !ok {
		return 0, fmt.Errorf("expected number, got %T", value)
	}
	return f, nil
}

func asBool(value any) (bool, error) {
	b, ok := value.(bool)
	if !ok {
		return false, fmt.Errorf("expected boolean, got %T", value)
	}
	return b, nil
}

func asTime(value any) (time.Time, error) {
	t, ok := value.(time.Time)
	if !ok {
		return time.Time{}, fmt.Errorf("expected date, got %T", value)
	}
	return t, nil
}
