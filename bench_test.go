package mapper

import (
	"reflect"
	"testing"

	"github.com/aarondl/null/v8"
)

func benchRows(n int) [][]any {
	rows := make([][]any, n)
	for i := range rows {
		rows[i] = []any{"id", []byte("StationWagon"), int64(i), 2.75, "4"}
	}
	return rows
}

func BenchmarkMaterialize_Car(b *testing.B) {
	def := NewCarMapping()
	rows := benchRows(1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, err := range Materialize(b.Context(), def, NewStaticCursor(carColumns, rows...)) {
			if err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkMaterialize_WithConverter(b *testing.B) {
	type rec struct {
		Name null.String
	}
	m := MustBuild(func(m *Mapping[rec]) {
		Property(m, func(r *rec) *null.String { return &r.Name }).
			MapConverter(ValueConverter(func(src any) (any, error) {
				if s, ok := src.(string); ok {
					return null.StringFrom(s), nil
				}
				return null.String{}, nil
			})).
			MapField("NAME")
	})
	rows := make([][]any, 1000)
	for i := range rows {
		rows[i] = []any{"name"}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := All(b.Context(), m, NewStaticCursor([]string{"NAME"}, rows...)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCoerce_Enum(b *testing.B) {
	target := reflect.TypeFor[CarType]()
	for i := 0; i < b.N; i++ {
		if _, err := coerce("Berlina", target); err != nil {
			b.Fatal(err)
		}
	}
}
