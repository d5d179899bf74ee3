package schedule

// Unit is one of the five time fields in a cron expression.
type Unit uint8

const (
	Minute Unit = iota
	Hour
	DayOfMonth
	Month
	DayOfWeek
)

const (
	minMinute = 0
	maxMinute = 59

	minHour = 0
	maxHour = 23

	minDay = 1
	maxDay = 31

	minMonth = 1
	maxMonth = 12

	// weekdays are numbered from 1 (Sunday) to 7 (Saturday) in cron fields
	minWeekday = 1
	maxWeekday = 7
)

type unitBounds struct {
	name     string
	minimum  int
	maximum  int
	capacity int
}

//nolint:gochecknoglobals // immutable unit table
var units = [...]unitBounds{
	Minute:     {name: "minute", minimum: minMinute, maximum: maxMinute, capacity: 60},
	Hour:       {name: "hour", minimum: minHour, maximum: maxHour, capacity: 24},
	DayOfMonth: {name: "day_of_month", minimum: minDay, maximum: maxDay, capacity: 31},
	Month:      {name: "month", minimum: minMonth, maximum: maxMonth, capacity: 12},
	DayOfWeek:  {name: "day_of_week", minimum: minWeekday, maximum: maxWeekday, capacity: 7},
}

// Units returns all five time fields, in the order they appear in a cron expression.
func Units() []Unit {
	return []Unit{Minute, Hour, DayOfMonth, Month, DayOfWeek}
}

// String implements the fmt.Stringer interface.
func (u Unit) String() string {
	if int(u) >= len(units) {
		return "unknown"
	}

	return units[u].name
}

// Min returns the lowest value allowed in the time field, or zero for an unknown Unit.
func (u Unit) Min() int { return u.bounds().minimum }

// Max returns the highest value allowed in the time field, or zero for an unknown Unit.
func (u Unit) Max() int { return u.bounds().maximum }

// Cardinality returns the maximum number of distinct values in the time field, or zero for an unknown Unit.
func (u Unit) Cardinality() int { return u.bounds().capacity }

func (u Unit) bounds() unitBounds {
	if int(u) >= len(units) {
		return unitBounds{}
	}

	return units[u]
}
