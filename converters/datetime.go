package converters

import (
	"time"

	"github.com/Station-Manager/errors"
)

// ParseDate converts a date column holding YYYYMMDD or YYYY-MM-DD text to a time.Time.
func ParseDate(src any) (any, error) {
	const op errors.Op = "converters.ParseDate"
	srcVal, err := CheckString(op, src)
	if err != nil {
		return nil, errors.New(op).Err(err)
	}

	var retVal time.Time
	switch len(srcVal) {
	case 8:
		retVal, err = time.Parse("20060102", srcVal)
	case 10:
		if srcVal[4] != '-' || srcVal[7] != '-' {
			return nil, errors.New(op).Msg(ErrMsgBadDateFormat)
		}
		retVal, err = time.Parse("2006-01-02", srcVal)
	default:
		return nil, errors.New(op).Msg(ErrMsgBadDateFormat)
	}

	if err != nil {
		return nil, errors.New(op).Err(err).Msg(ErrMsgBadDateFormat)
	}
	return retVal, nil
}

// ParseTimeOfDay converts a time column holding HHMM or HH:MM text to a time.Time on the zero date.
func ParseTimeOfDay(src any) (any, error) {
	const op errors.Op = "converters.ParseTimeOfDay"
	srcVal, err := CheckString(op, src)
	if err != nil {
		return nil, errors.New(op).Err(err)
	}

	var retVal time.Time
	switch {
	case len(srcVal) == 5 && srcVal[2] == ':':
		retVal, err = time.Parse("15:04", srcVal)
	case len(srcVal) == 4:
		retVal, err = time.Parse("1504", srcVal)
	default:
		return nil, errors.New(op).Msg(ErrMsgBadTimeFormat)
	}

	if err != nil {
		return nil, errors.New(op).Err(err).Msg(ErrMsgBadTimeFormat)
	}
	return retVal, nil
}
