package sqlite

import (
	"time"

	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/mapper/converters"
)

// timestampLayouts are the TEXT forms SQLite's date and time functions produce.
var timestampLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
	"20060102",
}

// ParseTimestamp converts a SQLite timestamp to a time.Time in UTC. SQLite has no
// timestamp type: values arrive as TEXT in one of the date function layouts, or as
// INTEGER unix seconds.
func ParseTimestamp(src any) (any, error) {
	const op errors.Op = "converters.sqlite.ParseTimestamp"
	switch v := src.(type) {
	case time.Time:
		return v.UTC(), nil
	case int64:
		return time.Unix(v, 0).UTC(), nil
	}
	srcVal, err := converters.CheckString(op, src)
	if err != nil {
		return nil, errors.New(op).Err(err)
	}
	for _, layout := range timestampLayouts {
		if t, perr := time.Parse(layout, srcVal); perr == nil {
			return t.UTC(), nil
		}
	}
	return nil, errors.New(op).Errorf("Unrecognised SQLite timestamp %q", srcVal)
}

// FormatDate converts a SQLite date to compact YYYYMMDD text.
func FormatDate(src any) (any, error) {
	const op errors.Op = "converters.sqlite.FormatDate"
	t, err := ParseTimestamp(src)
	if err != nil {
		return nil, errors.New(op).Err(err).Msg(converters.ErrMsgBadDateFormat)
	}
	return t.(time.Time).Format("20060102"), nil
}
