package mapper

import (
	"fmt"
	"reflect"
	"strings"
)

// Enum is implemented by enumeration types whose members can be matched by name.
// EnumMembers lists the member names indexed by ordinal: for an integer type the
// matched index is stored, for a string type the canonical name is stored.
//
//	type CarType int
//
//	const (
//		NASCAR CarType = iota
//		StationWagon
//	)
//
//	func (CarType) EnumMembers() []string { return []string{"NASCAR", "StationWagon"} }
type Enum interface {
	EnumMembers() []string
}

var enumType = reflect.TypeFor[Enum]()

// parseEnum matches the text of raw against the members of target, ignoring case.
func parseEnum(raw any, target reflect.Type) (reflect.Value, error) {
	text, err := textOf(raw)
	if err != nil {
		return reflect.Value{}, err
	}
	members := reflect.Zero(target).Interface().(Enum).EnumMembers()
	for i, name := range members {
		if !strings.EqualFold(name, text) {
			continue
		}
		out := reflect.New(target).Elem()
		switch {
		case isSigned(target.Kind()):
			out.SetInt(int64(i))
		case isUnsigned(target.Kind()):
			out.SetUint(uint64(i))
		case target.Kind() == reflect.String:
			out.SetString(name)
		default:
			return reflect.Value{}, fmt.Errorf("enum %s must have an integer or string kind", target)
		}
		return out, nil
	}
	return reflect.Value{}, fmt.Errorf("%q is not a member of %s", text, target)
}

func textOf(raw any) (string, error) {
	switch v := raw.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case fmt.Stringer:
		return v.String(), nil
	}
	return "", fmt.Errorf("enum names must be text, got %T", raw)
}
