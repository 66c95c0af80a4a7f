package converters

const (
	ErrMsgParamEmpty    = "Parameter cannot be empty."
	ErrMsgBadTimeFormat = "Bad time format, expected HH:MM or HHMM"
	ErrMsgBadDateFormat = "Bad date format, expected YYYYMMDD or YYYY-MM-DD"
	ErrMsgBadNumber     = "Bad number format"
	ErrMsgBadJSON       = "Value is not valid JSON"
)
