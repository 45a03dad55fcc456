// FILE: reqtap/src/internal/civil/civil.go
package civil

// Proleptic Gregorian calendar conversion from Unix epoch seconds,
// independent of the platform calendar. Out-of-range inputs clamp to the
// supported window [1970-01-01, 9999-12-31] instead of failing; the logger
// must always produce a timestamp.

const (
	MinYear = 1970
	MaxYear = 9999

	secondsPerDay = 86400

	// Day index of 9999-12-31 counted from 1970-01-01 (day 0).
	maxEpochDay = 2932896

	// ISOLen is the rendered length of an ISO-8601 timestamp,
	// YYYY-MM-DDTHH:MM:SSZ.
	ISOLen = 20
)

var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// Time is a civil-calendar instant, always UTC.
type Time struct {
	Year   int
	Month  int // 1..12
	Day    int // 1..31, valid for (Year, Month)
	Hour   int
	Minute int
	Second int
}

// IsLeapYear reports whether y is a Gregorian leap year.
func IsLeapYear(y int) bool {
	return (y%4 == 0 && y%100 != 0) || y%400 == 0
}

func daysInYear(y int) int {
	if IsLeapYear(y) {
		return 366
	}
	return 365
}

func daysInMonth(y, m int) int {
	if m == 2 && IsLeapYear(y) {
		return 29
	}
	return monthDays[m-1]
}

// FromUnix converts epoch seconds to civil time.
//
// Dates before the epoch clamp to 1970-01-01 and dates past year 9999 clamp
// to 9999-12-31. Time of day is computed independently of the date walk with
// floor-division semantics, so pre-epoch inputs still yield values in range.
func FromUnix(sec int64) Time {
	var t Time

	days := floorDiv(sec, secondsPerDay)
	switch {
	case days < 0:
		t.Year, t.Month, t.Day = MinYear, 1, 1
	case days > maxEpochDay:
		t.Year, t.Month, t.Day = MaxYear, 12, 31
	default:
		y := MinYear
		d := int(days)
		for d >= daysInYear(y) {
			d -= daysInYear(y)
			y++
		}
		m := 1
		for d >= daysInMonth(y, m) {
			d -= daysInMonth(y, m)
			m++
		}
		t.Year, t.Month, t.Day = y, m, d+1
	}

	t.Hour = int(floorMod(floorDiv(sec, 3600), 24))
	t.Minute = int(floorMod(floorDiv(sec, 60), 60))
	t.Second = int(floorMod(sec, 60))
	return t
}

// EpochDay returns the day index of t counted from 1970-01-01, using the
// same month and leap-year arithmetic as FromUnix.
func (t Time) EpochDay() int64 {
	var d int64
	for y := MinYear; y < t.Year; y++ {
		d += int64(daysInYear(y))
	}
	for m := 1; m < t.Month; m++ {
		d += int64(daysInMonth(t.Year, m))
	}
	return d + int64(t.Day-1)
}

// AppendISO8601 appends t as exactly ISOLen bytes, YYYY-MM-DDTHH:MM:SSZ.
// Years are pre-clamped to four digits so rendering cannot fail.
func AppendISO8601(dst []byte, t Time) []byte {
	dst = appendPadded(dst, t.Year, 4)
	dst = append(dst, '-')
	dst = appendPadded(dst, t.Month, 2)
	dst = append(dst, '-')
	dst = appendPadded(dst, t.Day, 2)
	dst = append(dst, 'T')
	dst = appendPadded(dst, t.Hour, 2)
	dst = append(dst, ':')
	dst = appendPadded(dst, t.Minute, 2)
	dst = append(dst, ':')
	dst = appendPadded(dst, t.Second, 2)
	return append(dst, 'Z')
}

// String renders t in ISO-8601 form.
func (t Time) String() string {
	return string(AppendISO8601(make([]byte, 0, ISOLen), t))
}

func appendPadded(dst []byte, v, width int) []byte {
	var tmp [4]byte
	for i := width - 1; i >= 0; i-- {
		tmp[i] = byte('0' + v%10)
		v /= 10
	}
	return append(dst, tmp[:width]...)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	m := a % b
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}
