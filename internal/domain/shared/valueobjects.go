package shared

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ═══════════════════════════════════════════════════════════════════════════
// Identity Value Objects
// ═══════════════════════════════════════════════════════════════════════════

// Name represents a student's full name.
type Name string

// Names start with an alphanumeric character and may contain spaces.
// A leading space is rejected so that a blank string can never validate.
var nameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9 ]*$`)

// IsValid checks if the name is valid.
func (n Name) IsValid() bool {
	return nameRegex.MatchString(string(n))
}

// String returns the string representation.
func (n Name) String() string {
	return string(n)
}

// EqualsFold reports whether two names match case-insensitively.
// This is the "same person" notion of identity.
func (n Name) EqualsFold(other Name) bool {
	return strings.EqualFold(string(n), string(other))
}

// NewName creates a new Name with validation.
func NewName(value string) (Name, error) {
	n := Name(strings.TrimSpace(value))
	if !n.IsValid() {
		return "", ErrInvalidName
	}
	return n, nil
}

// Phone represents a student's phone number.
type Phone string

// Phone numbers are plain digit strings, at least 3 digits long.
var phoneRegex = regexp.MustCompile(`^\d{3,}$`)

// IsValid checks if the phone number is valid.
func (p Phone) IsValid() bool {
	return phoneRegex.MatchString(string(p))
}

// String returns the string representation.
func (p Phone) String() string {
	return string(p)
}

// NewPhone creates a new Phone with validation.
func NewPhone(value string) (Phone, error) {
	p := Phone(strings.TrimSpace(value))
	if !p.IsValid() {
		return "", ErrInvalidPhone
	}
	return p, nil
}

// Email represents a student's email address.
type Email string

// local-part@domain, where the local part is alphanumeric with +_.- allowed
// and the domain is dot-separated labels ending in a label of length >= 2.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9+_.-]+@([a-zA-Z0-9][a-zA-Z0-9-]*\.)*[a-zA-Z0-9][a-zA-Z0-9-]{1,}$`)

// IsValid checks if the email is valid.
func (e Email) IsValid() bool {
	return emailRegex.MatchString(string(e))
}

// String returns the string representation.
func (e Email) String() string {
	return string(e)
}

// NewEmail creates a new Email with validation.
func NewEmail(value string) (Email, error) {
	e := Email(strings.TrimSpace(value))
	if !e.IsValid() {
		return "", ErrInvalidEmail
	}
	return e, nil
}

// Address represents a student's home address. Any non-blank value is accepted.
type Address string

// IsValid checks if the address is valid.
func (a Address) IsValid() bool {
	s := string(a)
	return s != "" && !strings.HasPrefix(s, " ")
}

// String returns the string representation.
func (a Address) String() string {
	return string(a)
}

// NewAddress creates a new Address with validation.
func NewAddress(value string) (Address, error) {
	a := Address(strings.TrimSpace(value))
	if !a.IsValid() {
		return "", ErrInvalidAddress
	}
	return a, nil
}

// Tag represents a label attached to a student, e.g. "exam" or "grade10".
type Tag string

var tagRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// IsValid checks if the tag is valid.
func (t Tag) IsValid() bool {
	return tagRegex.MatchString(string(t))
}

// String returns the string representation.
func (t Tag) String() string {
	return string(t)
}

// NewTag creates a new Tag with validation.
func NewTag(value string) (Tag, error) {
	t := Tag(strings.TrimSpace(value))
	if !t.IsValid() {
		return "", ErrInvalidTag
	}
	return t, nil
}

// ═══════════════════════════════════════════════════════════════════════════
// Amount Value Object (money, 2 implied fraction digits)
// ═══════════════════════════════════════════════════════════════════════════

// Amount represents a money amount in cents. Storing cents keeps the
// two-decimal arithmetic exact; the textual form always prints two decimals.
type Amount int64

const (
	// MinAmount is the smallest representable amount (zero).
	MinAmount Amount = 0
	// MaxAmount is one million, in cents.
	MaxAmount Amount = 100_000_000
)

// Textual amounts are an integer part of up to seven digits with an optional
// fraction of one or two digits.
var amountRegex = regexp.MustCompile(`^\s*(\d{1,7})(\.(\d{1,2}))?\s*$`)

// IsValidAmount reports whether the string is a well-formed amount within
// [0, 1,000,000.00].
func IsValidAmount(value string) bool {
	_, err := NewAmount(value)
	return err == nil
}

// IsValid checks if the amount is within the allowed range.
func (a Amount) IsValid() bool {
	return a >= MinAmount && a <= MaxAmount
}

// IsZero reports whether the amount is exactly zero.
func (a Amount) IsZero() bool {
	return a == 0
}

// Cents returns the underlying value in cents.
func (a Amount) Cents() int64 {
	return int64(a)
}

// Float64 returns the amount as a float, for display math only.
func (a Amount) Float64() float64 {
	return float64(a) / 100
}

// Add adds another amount, capped at MaxAmount.
func (a Amount) Add(other Amount) Amount {
	result := a + other
	if result > MaxAmount {
		return MaxAmount
	}
	return result
}

// Sub subtracts another amount, floored at zero.
func (a Amount) Sub(other Amount) Amount {
	result := a - other
	if result < MinAmount {
		return MinAmount
	}
	return result
}

// String returns the amount formatted with two decimals, e.g. "150.00".
func (a Amount) String() string {
	return fmt.Sprintf("%d.%02d", a/100, a%100)
}

// NewAmount parses an Amount from its textual form with validation.
func NewAmount(value string) (Amount, error) {
	m := amountRegex.FindStringSubmatch(value)
	if m == nil {
		return 0, ErrInvalidAmount
	}
	cents := Amount(0)
	for _, r := range m[1] {
		cents = cents*10 + Amount(r-'0')
	}
	cents *= 100
	frac := m[3]
	if len(frac) >= 1 {
		cents += Amount(frac[0]-'0') * 10
	}
	if len(frac) == 2 {
		cents += Amount(frac[1] - '0')
	}
	if cents > MaxAmount {
		return 0, ErrInvalidAmount
	}
	return cents, nil
}

// NewAmountFromCents creates an Amount directly from cents with validation.
func NewAmountFromCents(cents int64) (Amount, error) {
	a := Amount(cents)
	if !a.IsValid() {
		return 0, ErrInvalidAmount
	}
	return a, nil
}

// ═══════════════════════════════════════════════════════════════════════════
// Lesson Value Objects
// ═══════════════════════════════════════════════════════════════════════════

// LessonName represents the name of a lesson, e.g. "Math".
type LessonName string

// IsValid checks if the lesson name is valid.
func (l LessonName) IsValid() bool {
	return nameRegex.MatchString(string(l))
}

// String returns the string representation.
func (l LessonName) String() string {
	return string(l)
}

// NewLessonName creates a new LessonName with validation.
func NewLessonName(value string) (LessonName, error) {
	l := LessonName(strings.TrimSpace(value))
	if !l.IsValid() {
		return "", ErrInvalidLessonName
	}
	return l, nil
}

// WeekDay represents a recurring weekly lesson slot's day, stored lowercase.
// It models a weekly slot, not a calendar date.
type WeekDay string

var weekDays = map[WeekDay]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// IsValid checks if the weekday is one of the seven day names.
func (w WeekDay) IsValid() bool {
	_, ok := weekDays[w]
	return ok
}

// String returns the lowercase day name.
func (w WeekDay) String() string {
	return string(w)
}

// Weekday returns the time.Weekday the value maps to.
func (w WeekDay) Weekday() time.Weekday {
	return weekDays[w]
}

// NewWeekDay creates a new WeekDay with validation. Input is case-insensitive.
func NewWeekDay(value string) (WeekDay, error) {
	w := WeekDay(strings.ToLower(strings.TrimSpace(value)))
	if !w.IsValid() {
		return "", ErrInvalidWeekDay
	}
	return w, nil
}

// ClockTime represents a 24-hour wall clock time "HH:MM".
type ClockTime string

var clockTimeRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// IsValid checks if the time is a valid 24-hour HH:MM string.
func (c ClockTime) IsValid() bool {
	return clockTimeRegex.MatchString(string(c))
}

// String returns the string representation.
func (c ClockTime) String() string {
	return string(c)
}

// Hour returns the hour component.
func (c ClockTime) Hour() int {
	return int(c[0]-'0')*10 + int(c[1]-'0')
}

// Minute returns the minute component.
func (c ClockTime) Minute() int {
	return int(c[3]-'0')*10 + int(c[4]-'0')
}

// MinuteOfDay returns minutes since midnight, used for chronological sorting.
func (c ClockTime) MinuteOfDay() int {
	return c.Hour()*60 + c.Minute()
}

// NewClockTime creates a new ClockTime with validation.
func NewClockTime(value string) (ClockTime, error) {
	c := ClockTime(strings.TrimSpace(value))
	if !c.IsValid() {
		return "", ErrInvalidClockTime
	}
	return c, nil
}

// Location represents where a lesson takes place, e.g. "RoomA".
type Location string

// IsValid checks if the location is valid.
func (l Location) IsValid() bool {
	return tagRegex.MatchString(string(l))
}

// String returns the string representation.
func (l Location) String() string {
	return string(l)
}

// NewLocation creates a new Location with validation.
func NewLocation(value string) (Location, error) {
	l := Location(strings.TrimSpace(value))
	if !l.IsValid() {
		return "", ErrInvalidLocation
	}
	return l, nil
}
