// Package date provides a day-granularity Date type used to key price records.
package date

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

// Date represents a date with day-level granularity.
//
// The zero Date is not a valid day, it is used as "no date".
type Date struct {
	y int
	m time.Month
	d int
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.Compare(x) < 0 }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.Compare(x) > 0 }

// Compare returns -1, 0 or +1 when d is before, equal or after x.
func (d Date) Compare(x Date) int {
	switch {
	case d.y != x.y:
		return cmpInt(d.y, x.y)
	case d.m != x.m:
		return cmpInt(int(d.m), int(x.m))
	default:
		return cmpInt(d.d, x.d)
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d == Date{} }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return New(d.y, d.m, d.d+i) }

// String format the date in its standard format.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.time().Format(DateFormat)
}

// Parse parses a Date from a string. It is lenient and accepts formats like "2025-7-1".
func Parse(str string) (Date, error) {
	on, err := time.Parse(readDateFormat, strings.TrimSpace(str))
	// We use a slightly more permisive format for read, to support 2025-7-1 instead of 2025-07-01
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, readDateFormat, err)
	}
	return New(on.Date()), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// excelEpoch is day zero of spreadsheet serial dates (1900 date system).
var excelEpoch = New(1899, time.December, 30)

// minSerial is the smallest serial day accepted (1927-05-18). Smaller
// numbers are more likely quantities than days.
const minSerial = 10000

// ParseLoose parses the many ways a day is written in price sheets:
//
//	2024-01-08, 2024-1-8, 2024/01/08, 2024.01.08, 20240108, 2024年1月8日,
//	1/8/2024 (month first), 2024-01-08 00:00:00, 2024-01-08T00:00:00Z,
//	2024 (January 1st), and spreadsheet serial day numbers like 45299.
func ParseLoose(str string) (Date, error) {
	s := strings.TrimSpace(str)
	if s == "" {
		return Date{}, fmt.Errorf("invalid date: empty value")
	}

	if len(s) == 8 && isDigits(s) {
		// compact yyyymmdd
		on, err := time.Parse("20060102", s)
		if err != nil {
			return Date{}, fmt.Errorf("invalid date %q: %w", str, err)
		}
		return New(on.Date()), nil
	}

	if len(s) == 4 && isDigits(s) {
		// a year alone is its first day
		year, _ := strconv.Atoi(s)
		return New(year, time.January, 1), nil
	}

	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsNaN(serial) || serial < minSerial || serial > 2958465 { // 9999-12-31
			return Date{}, fmt.Errorf("invalid date %q: serial day out of range", str)
		}
		return excelEpoch.Add(int(math.Floor(serial))), nil
	}

	// drop any time of day
	if i := strings.IndexAny(s, " T"); i > 0 {
		s = s[:i]
	}
	s = strings.NewReplacer("/", "-", ".", "-", "年", "-", "月", "-", "日", "").Replace(s)

	parts := strings.Split(s, "-")
	if len(parts) == 3 && len(parts[0]) <= 2 && len(parts[2]) == 4 {
		// month first, the way spreadsheets in en-US locale write it.
		s = parts[2] + "-" + parts[0] + "-" + parts[1]
	}
	d, err := Parse(s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", str, err)
	}
	return d, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// UnmarshalJSON implements the json specific way to unmarshall a date from a json string.
func (j *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	if str == "" {
		*j = Date{}
		return nil
	}
	d, err := Parse(str)
	if err != nil {
		return err
	}
	*j = d
	return nil
}

func (j Date) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
