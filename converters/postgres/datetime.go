package postgres

import (
	"strings"
	"time"

	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/mapper/converters"
)

// timeLayouts are the text forms lib/pq returns for TIME and TIMETZ columns.
var timeLayouts = []string{"15:04:05.999999", "15:04:05.999999-07", "15:04:05.999999-07:00"}

// DateText converts a DATE column to YYYY-MM-DD text for string members. lib/pq and pgx
// return DATE as time.Time; a null column becomes "".
func DateText(src any) (any, error) {
	const op errors.Op = "converters.postgres.DateText"
	if src == nil {
		return "", nil
	}
	srcVal, err := converters.CheckTime(op, src)
	if err != nil {
		return nil, errors.New(op).Err(err)
	}
	if srcVal.IsZero() {
		return nil, errors.New(op).Msg(converters.ErrMsgBadDateFormat)
	}
	return srcVal.Format(time.DateOnly), nil
}

// TimeText converts a TIME, TIMETZ or TIMESTAMP column to HH:MM text for string members.
// TIMESTAMP arrives as time.Time, TIME as "15:04:05[.ffffff]" text.
func TimeText(src any) (any, error) {
	const op errors.Op = "converters.postgres.TimeText"
	if src == nil {
		return "", nil
	}
	if t, ok := src.(time.Time); ok {
		return t.Format("15:04"), nil
	}
	srcVal, err := converters.CheckString(op, src)
	if err != nil {
		return nil, errors.New(op).Err(err)
	}
	srcVal = strings.TrimSpace(srcVal)
	for _, layout := range timeLayouts {
		if t, perr := time.Parse(layout, srcVal); perr == nil {
			return t.Format("15:04"), nil
		}
	}
	return nil, errors.New(op).Msg(converters.ErrMsgBadTimeFormat)
}
