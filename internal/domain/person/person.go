// Package person contains the central Person entity: a student's identity,
// contact data, tags, and their optional lesson slot and finance ledger.
//
// Person values are immutable. Every edit goes through a With* method that
// returns a new value; the model then swaps the old value for the new one.
package person

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tutortrack/tutortrack/internal/domain/finance"
	"github.com/tutortrack/tutortrack/internal/domain/lesson"
	"github.com/tutortrack/tutortrack/internal/domain/shared"
)

// Person is one student record. Absence of a lesson or ledger is modeled by
// the accessor's ok-boolean, never by a caller-visible nil.
type Person struct {
	name    shared.Name
	phone   shared.Phone
	email   shared.Email
	address shared.Address
	tags    []shared.Tag

	lesson  *lesson.Lesson
	finance *finance.Finance
}

// New creates a Person without lesson or finance information. Tags are
// deduplicated and kept sorted so tag order never affects equality.
func New(name shared.Name, phone shared.Phone, email shared.Email,
	address shared.Address, tags []shared.Tag) Person {
	return Person{
		name:    name,
		phone:   phone,
		email:   email,
		address: address,
		tags:    normalizeTags(tags),
	}
}

// Restore rebuilds a Person from persisted state.
func Restore(name shared.Name, phone shared.Phone, email shared.Email,
	address shared.Address, tags []shared.Tag, l *lesson.Lesson, f *finance.Finance) Person {
	p := New(name, phone, email, address, tags)
	if l != nil {
		ll := *l
		p.lesson = &ll
	}
	if f != nil {
		ff := *f
		p.finance = &ff
	}
	return p
}

func normalizeTags(tags []shared.Tag) []shared.Tag {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[shared.Tag]struct{}, len(tags))
	out := make([]shared.Tag, 0, len(tags))
	for _, t := range tags {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Name returns the student's name.
func (p Person) Name() shared.Name { return p.name }

// Phone returns the student's phone number.
func (p Person) Phone() shared.Phone { return p.phone }

// Email returns the student's email address.
func (p Person) Email() shared.Email { return p.email }

// Address returns the student's home address.
func (p Person) Address() shared.Address { return p.address }

// Tags returns a copy of the tag set in sorted order.
func (p Person) Tags() []shared.Tag {
	if len(p.tags) == 0 {
		return nil
	}
	return append([]shared.Tag(nil), p.tags...)
}

// Lesson returns the assigned lesson slot, if any.
func (p Person) Lesson() (lesson.Lesson, bool) {
	if p.lesson == nil {
		return lesson.Lesson{}, false
	}
	return *p.lesson, true
}

// HasLesson reports whether a lesson slot is assigned.
func (p Person) HasLesson() bool { return p.lesson != nil }

// Finance returns the finance ledger, if any.
func (p Person) Finance() (finance.Finance, bool) {
	if p.finance == nil {
		return finance.Finance{}, false
	}
	return *p.finance, true
}

// HasFinance reports whether a finance ledger exists.
func (p Person) HasFinance() bool { return p.finance != nil }

// FinanceOrEmpty returns the ledger, or an empty one when none exists yet.
func (p Person) FinanceOrEmpty() finance.Finance {
	if p.finance == nil {
		return finance.New()
	}
	return *p.finance
}

// WithLesson returns a new Person with the lesson slot replaced wholesale.
// An empty ledger is created alongside the first lesson so that attendance
// and billing always travel together.
func (p Person) WithLesson(l lesson.Lesson) Person {
	next := p
	next.lesson = &l
	if next.finance == nil {
		f := finance.New()
		next.finance = &f
	}
	return next
}

// WithFinance returns a new Person with the finance ledger replaced.
func (p Person) WithFinance(f finance.Finance) Person {
	next := p
	next.finance = &f
	return next
}

// MarkAttendance returns a new Person with the lesson's attendance counters
// updated. Fails when no lesson is assigned.
func (p Person) MarkAttendance(status lesson.AttendanceStatus) (Person, error) {
	if p.lesson == nil {
		return Person{}, shared.ErrNoLessonAssigned
	}
	marked := p.lesson.Mark(status)
	next := p
	next.lesson = &marked
	return next, nil
}

// IsSame reports whether both records refer to the same student. Names are
// compared case-insensitively; this is the weaker duplicate-detection notion
// of equality.
func (p Person) IsSame(other Person) bool {
	return p.name.EqualsFold(other.name)
}

// Equal reports full value equality across every field, the stronger notion
// used for list diffing.
func (p Person) Equal(other Person) bool {
	if p.name != other.name || p.phone != other.phone ||
		p.email != other.email || p.address != other.address {
		return false
	}
	if len(p.tags) != len(other.tags) {
		return false
	}
	for i := range p.tags {
		if p.tags[i] != other.tags[i] {
			return false
		}
	}
	if (p.lesson == nil) != (other.lesson == nil) {
		return false
	}
	if p.lesson != nil && !p.lesson.Equal(*other.lesson) {
		return false
	}
	if (p.finance == nil) != (other.finance == nil) {
		return false
	}
	if p.finance != nil && !p.finance.Equal(*other.finance) {
		return false
	}
	return true
}

// String formats the record for display in list output.
func (p Person) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s | Phone: %s | Email: %s | Address: %s", p.name, p.phone, p.email, p.address)
	if len(p.tags) > 0 {
		parts := make([]string, len(p.tags))
		for i, t := range p.tags {
			parts[i] = t.String()
		}
		fmt.Fprintf(&b, " | Tags: [%s]", strings.Join(parts, ", "))
	}
	if p.lesson != nil {
		fmt.Fprintf(&b, " | %s", p.lesson)
	}
	if p.finance != nil {
		fmt.Fprintf(&b, " | %s (%s)", p.finance, p.finance.Status())
	}
	return b.String()
}

// NameContainsKeywords builds a predicate matching any person whose name
// contains at least one of the keywords as a whole word, case-insensitively.
func NameContainsKeywords(keywords []string) func(Person) bool {
	lowered := make([]string, len(keywords))
	for i, k := range keywords {
		lowered[i] = strings.ToLower(k)
	}
	return func(p Person) bool {
		words := strings.Fields(strings.ToLower(p.name.String()))
		for _, k := range lowered {
			for _, w := range words {
				if w == k {
					return true
				}
			}
		}
		return false
	}
}
