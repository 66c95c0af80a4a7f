package mapper

import (
	"fmt"
	"reflect"
	"strings"
)

// resolveMember runs selector against a zero T and checks that the returned
// pointer addresses a field of type F inside it. It returns the dotted field path.
func resolveMember[T, F any](selector func(*T) *F) (member string, err error) {
	st := reflect.TypeFor[T]()
	ft := reflect.TypeFor[F]()
	if st.Kind() != reflect.Struct {
		return "", fmt.Errorf("%w: %s is not a struct", ErrInvalidMappingExpression, st)
	}
	if selector == nil {
		return "", fmt.Errorf("%w: nil selector for %s", ErrInvalidMappingExpression, st)
	}

	probe := new(T)
	defer func() {
		if r := recover(); r != nil {
			member = ""
			err = fmt.Errorf("%w: selector on %s panicked: %v", ErrInvalidMappingExpression, st, r)
		}
	}()
	p := selector(probe)
	if p == nil {
		return "", fmt.Errorf("%w: selector on %s returned nil", ErrInvalidMappingExpression, st)
	}

	base := reflect.ValueOf(probe).Pointer()
	addr := reflect.ValueOf(p).Pointer()
	if addr < base || addr-base >= st.Size() {
		return "", fmt.Errorf("%w: selector does not address a member of %s", ErrInvalidMappingExpression, st)
	}
	path, ok := fieldAt(st, addr-base, ft)
	if !ok {
		return "", fmt.Errorf("%w: no %s member of %s at the selected address", ErrInvalidMappingExpression, ft, st)
	}
	return strings.Join(path, "."), nil
}

// fieldAt finds the field of type ft at byte offset off, descending into nested structs.
func fieldAt(st reflect.Type, off uintptr, ft reflect.Type) ([]string, bool) {
	for i := 0; i < st.NumField(); i++ {
		f := st.Field(i)
		if off < f.Offset || off >= f.Offset+f.Type.Size() {
			if !(off == f.Offset && f.Type.Size() == 0) {
				continue
			}
		}
		if off == f.Offset && f.Type == ft {
			return []string{f.Name}, true
		}
		if f.Type.Kind() == reflect.Struct {
			if sub, ok := fieldAt(f.Type, off-f.Offset, ft); ok {
				return append([]string{f.Name}, sub...), true
			}
		}
	}
	return nil, false
}
