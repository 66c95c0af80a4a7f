package mapper

import (
	"testing"
	"time"

	"github.com/Station-Manager/mapper/converters"
	"github.com/Station-Manager/mapper/converters/common"
	"github.com/Station-Manager/mapper/converters/postgres"
	"github.com/Station-Manager/mapper/converters/sqlite"
	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type logEntry struct {
	QsoDate  string
	TimeOn   string
	FreqHz   int64
	Power    types.Decimal
	Uploaded bool
	Logged   time.Time
	Comment  null.String
	Extra    map[string]any
}

func logEntryMapping() *Mapping[logEntry] {
	return MustBuild(func(m *Mapping[logEntry]) {
		Property(m, func(e *logEntry) *string { return &e.QsoDate }).
			MapConverter(ValueConverter(postgres.DateText)).MapField("qso_date")
		Property(m, func(e *logEntry) *string { return &e.TimeOn }).
			MapConverter(ValueConverter(postgres.TimeText)).MapField("time_on")
		Property(m, func(e *logEntry) *int64 { return &e.FreqHz }).
			MapConverter(ValueConverter(converters.ScaleToInt64(1e6))).MapField("freq")
		Property(m, func(e *logEntry) *types.Decimal { return &e.Power }).
			MapConverter(ValueConverter(postgres.Numeric)).MapField("tx_pwr")
		Property(m, func(e *logEntry) *bool { return &e.Uploaded }).
			MapConverter(ValueConverter(sqlite.IntegerBool)).MapField("uploaded")
		Property(m, func(e *logEntry) *time.Time { return &e.Logged }).
			MapConverter(ValueConverter(sqlite.ParseTimestamp)).MapField("logged_at")
		Property(m, func(e *logEntry) *null.String { return &e.Comment }).
			MapConverter(ValueConverter(common.EmptyAsNullString)).MapField("comment")
		Property(m, func(e *logEntry) *map[string]any { return &e.Extra }).
			MapConverter(ValueConverter(common.JSONInto[map[string]any]())).MapField("extra")
	})
}

var logColumns = []string{"qso_date", "time_on", "freq", "tx_pwr", "uploaded", "logged_at", "comment", "extra"}

func TestConverters_ThroughBindings(t *testing.T) {
	cur := NewStaticCursor(logColumns, []any{
		time.Date(2025, 11, 7, 0, 0, 0, 0, time.UTC),
		[]byte("12:05:00"),
		[]byte("14.320"),
		[]byte("100.50"),
		int64(1),
		"2025-11-07 12:06:00",
		"",
		[]byte(`{"grid":"KH74"}`),
	})

	e, err := First(t.Context(), logEntryMapping(), cur)
	require.NoError(t, err)
	assert.Equal(t, "2025-11-07", e.QsoDate)
	assert.Equal(t, "12:05", e.TimeOn)
	assert.Equal(t, int64(14320000), e.FreqHz)
	require.NotNil(t, e.Power.Big)
	assert.Equal(t, "100.50", e.Power.String())
	assert.True(t, e.Uploaded)
	assert.True(t, time.Date(2025, 11, 7, 12, 6, 0, 0, time.UTC).Equal(e.Logged))
	assert.False(t, e.Comment.Valid)
	assert.Equal(t, map[string]any{"grid": "KH74"}, e.Extra)
}

func TestConverters_NullDateBecomesEmptyText(t *testing.T) {
	m := MustBuild(func(m *Mapping[logEntry]) {
		Property(m, func(e *logEntry) *string { return &e.QsoDate }).
			MapConverter(ValueConverter(postgres.DateText)).MapField("qso_date")
		Property(m, func(e *logEntry) *string { return &e.TimeOn }).
			MapConverter(ValueConverter(postgres.TimeText)).MapField("time_on")
	})

	e, err := First(t.Context(), m, NewStaticCursor([]string{"QSO_DATE", "TIME_ON"}, []any{nil, nil}))
	require.NoError(t, err)
	assert.Empty(t, e.QsoDate)
	assert.Empty(t, e.TimeOn)
}

func TestConverters_ErrorCarriesField(t *testing.T) {
	cur := NewStaticCursor(logColumns, []any{"2025-11-07", "12:05:00", "14.320", "1", int64(1), "2025-11-07", "", "{}"})

	_, err := First(t.Context(), logEntryMapping(), cur)
	require.Error(t, err)

	var ce *ConverterError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "qso_date", ce.Column)
	assert.Equal(t, "QsoDate", ce.Member)
}
