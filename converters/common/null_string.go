package common

import (
	"github.com/Station-Manager/errors"
	"github.com/aarondl/null/v8"
)

// EmptyAsNullString converts a character column to a null.String, treating empty text as null.
func EmptyAsNullString(src any) (any, error) {
	const op errors.Op = "converters.common.EmptyAsNullString"
	switch v := src.(type) {
	case nil:
		return null.String{}, nil
	case null.String:
		if v.Valid && v.String == "" {
			return null.String{}, nil
		}
		return v, nil
	case string:
		if v == "" {
			return null.String{}, nil
		}
		return null.StringFrom(v), nil
	case []byte:
		if len(v) == 0 {
			return null.String{}, nil
		}
		return null.StringFrom(string(v)), nil
	}
	return null.String{}, errors.New(op).Errorf("Given parameter not a string, got %T", src)
}

// NullStringValue converts a nullable character column to a plain string; null becomes "".
func NullStringValue(src any) (any, error) {
	const op errors.Op = "converters.common.NullStringValue"
	switch v := src.(type) {
	case nil:
		return "", nil
	case null.String:
		if !v.Valid {
			return "", nil
		}
		return v.String, nil
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	}
	return "", errors.New(op).Errorf("Given parameter not a string or null.String, got %T", src)
}
