// Package model owns the canonical in-memory student collection and the
// currently-active filtered view that index-based commands resolve against.
package model

import (
	"github.com/tutortrack/tutortrack/internal/domain/person"
	"github.com/tutortrack/tutortrack/internal/domain/shared"
)

// Predicate selects persons into the filtered view.
type Predicate func(person.Person) bool

// ShowAll is the predicate that admits every person.
var ShowAll Predicate = func(person.Person) bool { return true }

// Model is a single-writer store. Only the command-execution path mutates it;
// the filtered view is recomputed from the canonical slice after every
// mutation, so it is always a subsequence of the store in the same order.
type Model struct {
	persons   []person.Person
	filtered  []person.Person
	predicate Predicate
}

// New creates an empty model showing all persons.
func New() *Model {
	return NewWithPersons(nil)
}

// NewWithPersons creates a model seeded with the given persons, e.g. from a
// loaded snapshot.
func NewWithPersons(persons []person.Person) *Model {
	m := &Model{
		persons:   append([]person.Person(nil), persons...),
		predicate: ShowAll,
	}
	m.refilter()
	return m
}

func (m *Model) refilter() {
	m.filtered = m.filtered[:0]
	for _, p := range m.persons {
		if m.predicate(p) {
			m.filtered = append(m.filtered, p)
		}
	}
}

// Persons returns a copy of the full canonical list.
func (m *Model) Persons() []person.Person {
	return append([]person.Person(nil), m.persons...)
}

// FilteredPersons returns a copy of the current filtered view.
func (m *Model) FilteredPersons() []person.Person {
	return append([]person.Person(nil), m.filtered...)
}

// Size returns the number of persons in the canonical store.
func (m *Model) Size() int {
	return len(m.persons)
}

// HasPerson reports whether a same-person duplicate already exists.
func (m *Model) HasPerson(p person.Person) bool {
	for _, existing := range m.persons {
		if existing.IsSame(p) {
			return true
		}
	}
	return false
}

// FindByName returns the person with the given name, compared
// case-insensitively.
func (m *Model) FindByName(name shared.Name) (person.Person, bool) {
	for _, p := range m.persons {
		if p.Name().EqualsFold(name) {
			return p, true
		}
	}
	return person.Person{}, false
}

// AddPerson appends a new person to the store. Fails on a same-person
// duplicate.
func (m *Model) AddPerson(p person.Person) error {
	if m.HasPerson(p) {
		return shared.ErrDuplicatePerson
	}
	m.persons = append(m.persons, p)
	m.refilter()
	return nil
}

// DeletePerson removes the person equal to target from the store. Removing an
// absent person is a no-op.
func (m *Model) DeletePerson(target person.Person) {
	for i, p := range m.persons {
		if p.Equal(target) {
			m.persons = append(m.persons[:i], m.persons[i+1:]...)
			m.refilter()
			return
		}
	}
}

// SetPerson replaces target with edited, in place, keeping list order.
// Commands locate the target before computing the replacement, so an absent
// target is silently ignored.
func (m *Model) SetPerson(target, edited person.Person) {
	for i, p := range m.persons {
		if p.Equal(target) {
			m.persons[i] = edited
			m.refilter()
			return
		}
	}
}

// UpdateFilteredView recomputes the filtered view from the canonical store
// using the given predicate.
func (m *Model) UpdateFilteredView(pred Predicate) {
	if pred == nil {
		pred = ShowAll
	}
	m.predicate = pred
	m.refilter()
}
