package common

import (
	"time"

	"github.com/Station-Manager/errors"
	"github.com/aarondl/null/v8"
)

// ZeroAsNullTime converts a timestamp column to a null.Time, treating the zero time as null.
func ZeroAsNullTime(src any) (any, error) {
	const op errors.Op = "converters.common.ZeroAsNullTime"
	switch v := src.(type) {
	case nil:
		return null.Time{}, nil
	case time.Time:
		if v.IsZero() {
			return null.Time{}, nil
		}
		return null.TimeFrom(v), nil
	case null.Time:
		if v.Valid && v.Time.IsZero() {
			return null.Time{}, nil
		}
		return v, nil
	}
	return null.Time{}, errors.New(op).Errorf("Given parameter not a time.Time, got %T", src)
}
