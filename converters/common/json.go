package common

import (
	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/mapper/converters"
	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/types"
	"github.com/goccy/go-json"
)

// JSONInto returns a converter decoding a JSON document column into a T.
// A null column decodes to the zero T.
func JSONInto[T any]() func(src any) (any, error) {
	return func(src any) (any, error) {
		const op errors.Op = "converters.common.JSONInto"
		var out T
		if src == nil {
			return out, nil
		}
		data, err := jsonBytes(op, src)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, errors.New(op).Err(err).Msg(converters.ErrMsgBadJSON)
		}
		return out, nil
	}
}

// RawJSON converts a JSON document column into a validated types.JSON.
func RawJSON(src any) (any, error) {
	const op errors.Op = "converters.common.RawJSON"
	if src == nil {
		return types.JSON(nil), nil
	}
	data, err := jsonBytes(op, src)
	if err != nil {
		return nil, err
	}
	return types.JSON(data), nil
}

// RawNullJSON converts a JSON document column into a validated null.JSON; null stays invalid.
func RawNullJSON(src any) (any, error) {
	const op errors.Op = "converters.common.RawNullJSON"
	if src == nil {
		return null.JSON{}, nil
	}
	data, err := jsonBytes(op, src)
	if err != nil {
		return nil, err
	}
	return null.JSONFrom(data), nil
}

func jsonBytes(op errors.Op, src any) ([]byte, error) {
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = append([]byte(nil), v...)
	case string:
		data = []byte(v)
	case types.JSON:
		data = append([]byte(nil), v...)
	case null.JSON:
		data = append([]byte(nil), v.JSON...)
	default:
		return nil, errors.New(op).Errorf("Given parameter not JSON text, got %T", src)
	}
	if !json.Valid(data) {
		return nil, errors.New(op).Msg(converters.ErrMsgBadJSON)
	}
	return data, nil
}
