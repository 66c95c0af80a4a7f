package mapper

type CarType int

const (
	NASCAR CarType = iota
	StationWagon
	Berlina
	Van
)

func (CarType) EnumMembers() []string { return []string{"NASCAR", "StationWagon", "Berlina", "Van"} }

type Car struct {
	ID         string
	CarType    CarType
	HorsePower int64
	WheelBase  float64
	AxisNum    int
}

// CarMapping is a reusable, statically declared definition.
type CarMapping struct{ *Mapping[Car] }

func NewCarMapping() CarMapping {
	m := New[Car]()
	Property(m, func(c *Car) *string { return &c.ID }).MapField("ID")
	Property(m, func(c *Car) *CarType { return &c.CarType }).MapField("CAR_TYPE")
	Property(m, func(c *Car) *int64 { return &c.HorsePower }).MapField("HORSE_POWER")
	Property(m, func(c *Car) *float64 { return &c.WheelBase }).MapField("WHEEL_BASE")
	Property(m, func(c *Car) *int { return &c.AxisNum }).MapField("AXIS_NUM")
	return CarMapping{m}
}

var _ Definition[Car] = CarMapping{}

var carColumns = []string{"ID", "CAR_TYPE", "HORSE_POWER", "WHEEL_BASE", "AXIS_NUM"}

// NullableCar mirrors Car with nullable members.
type NullableCar struct {
	ID         *string
	CarType    *CarType
	HorsePower *int64
	WheelBase  *float64
	AxisNum    *int
}

func nullableCarMapping() *Mapping[NullableCar] {
	return MustBuild(func(m *Mapping[NullableCar]) {
		Property(m, func(c *NullableCar) **string { return &c.ID }).MapField("ID")
		Property(m, func(c *NullableCar) **CarType { return &c.CarType }).MapField("CAR_TYPE")
		Property(m, func(c *NullableCar) **int64 { return &c.HorsePower }).MapField("HORSE_POWER")
		Property(m, func(c *NullableCar) **float64 { return &c.WheelBase }).MapField("WHEEL_BASE")
		Property(m, func(c *NullableCar) **int { return &c.AxisNum }).MapField("AXIS_NUM")
	})
}
