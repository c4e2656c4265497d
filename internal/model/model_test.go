package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutortrack/tutortrack/internal/domain/finance"
	"github.com/tutortrack/tutortrack/internal/domain/person"
	"github.com/tutortrack/tutortrack/internal/domain/shared"
)

func newPerson(t *testing.T, name string) person.Person {
	t.Helper()
	n, err := shared.NewName(name)
	require.NoError(t, err)
	phone, err := shared.NewPhone("98765432")
	require.NoError(t, err)
	email, err := shared.NewEmail("s@example.com")
	require.NoError(t, err)
	address, err := shared.NewAddress("311 Clementi Ave 2")
	require.NoError(t, err)
	return person.New(n, phone, email, address, nil)
}

func TestAddPersonRejectsDuplicate(t *testing.T) {
	m := New()
	require.NoError(t, m.AddPerson(newPerson(t, "John Doe")))

	err := m.AddPerson(newPerson(t, "JOHN DOE"))
	assert.ErrorIs(t, err, shared.ErrDuplicatePerson)
	assert.Equal(t, 1, m.Size())
}

func TestFilteredViewFollowsMutations(t *testing.T) {
	m := New()
	require.NoError(t, m.AddPerson(newPerson(t, "Alice Tan")))
	require.NoError(t, m.AddPerson(newPerson(t, "Bob Lee")))

	m.UpdateFilteredView(person.NameContainsKeywords([]string{"Alice"}))
	require.Len(t, m.FilteredPersons(), 1)

	// Editing the filtered person keeps it visible under the same predicate.
	target := m.FilteredPersons()[0]
	owed, err := shared.NewAmount("50.00")
	require.NoError(t, err)
	edited := target.WithFinance(finance.NewWithOwed(owed))
	m.SetPerson(target, edited)

	filtered := m.FilteredPersons()
	require.Len(t, filtered, 1)
	assert.True(t, filtered[0].Equal(edited))

	// Adding a non-matching person leaves the view unchanged.
	require.NoError(t, m.AddPerson(newPerson(t, "Carol Ng")))
	assert.Len(t, m.FilteredPersons(), 1)
	assert.Equal(t, 3, m.Size())

	m.UpdateFilteredView(ShowAll)
	assert.Len(t, m.FilteredPersons(), 3)
}

func TestFilteredViewPreservesStoreOrder(t *testing.T) {
	m := New()
	for _, name := range []string{"Alice Tan", "Bob Lee", "Alice Wong"} {
		require.NoError(t, m.AddPerson(newPerson(t, name)))
	}
	m.UpdateFilteredView(person.NameContainsKeywords([]string{"Alice"}))

	filtered := m.FilteredPersons()
	require.Len(t, filtered, 2)
	assert.Equal(t, shared.Name("Alice Tan"), filtered[0].Name())
	assert.Equal(t, shared.Name("Alice Wong"), filtered[1].Name())
}

func TestDeletePerson(t *testing.T) {
	m := New()
	alice := newPerson(t, "Alice Tan")
	require.NoError(t, m.AddPerson(alice))
	require.NoError(t, m.AddPerson(newPerson(t, "Bob Lee")))

	m.DeletePerson(alice)
	assert.Equal(t, 1, m.Size())
	assert.Len(t, m.FilteredPersons(), 1)

	// Deleting an absent person is a no-op.
	m.DeletePerson(alice)
	assert.Equal(t, 1, m.Size())
}

func TestFindByName(t *testing.T) {
	m := New()
	require.NoError(t, m.AddPerson(newPerson(t, "Alice Tan")))

	name, err := shared.NewName("alice tan")
	require.NoError(t, err)
	got, ok := m.FindByName(name)
	require.True(t, ok)
	assert.Equal(t, shared.Name("Alice Tan"), got.Name())

	missing, err := shared.NewName("Bob Lee")
	require.NoError(t, err)
	_, ok = m.FindByName(missing)
	assert.False(t, ok)
}

func TestPersonsReturnsCopy(t *testing.T) {
	m := New()
	require.NoError(t, m.AddPerson(newPerson(t, "Alice Tan")))

	got := m.Persons()
	got[0] = newPerson(t, "Mallory Mix")
	assert.Equal(t, shared.Name("Alice Tan"), m.Persons()[0].Name())
}
