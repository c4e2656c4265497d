package shared

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAmount(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantCents int64
		wantErr   bool
	}{
		{name: "integer", input: "150", wantCents: 15000},
		{name: "one decimal", input: "150.5", wantCents: 15050},
		{name: "two decimals", input: "150.00", wantCents: 15000},
		{name: "zero", input: "0", wantCents: 0},
		{name: "zero with decimals", input: "0.00", wantCents: 0},
		{name: "surrounding whitespace", input: "  42.50  ", wantCents: 4250},
		{name: "upper bound", input: "1000000.00", wantCents: 100_000_000},
		{name: "upper bound integer", input: "1000000", wantCents: 100_000_000},
		{name: "above upper bound", input: "1000000.01", wantErr: true},
		{name: "three decimals", input: "1.234", wantErr: true},
		{name: "eight integer digits", input: "12345678", wantErr: true},
		{name: "negative", input: "-5", wantErr: true},
		{name: "trailing dot", input: "5.", wantErr: true},
		{name: "not a number", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "internal space", input: "1 0", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewAmount(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCents, got.Cents())
		})
	}
}

func TestAmountArithmetic(t *testing.T) {
	a, err := NewAmount("100.00")
	require.NoError(t, err)
	b, err := NewAmount("40.50")
	require.NoError(t, err)

	assert.Equal(t, int64(14050), a.Add(b).Cents())
	assert.Equal(t, int64(5950), a.Sub(b).Cents())

	// Subtraction floors at zero instead of going negative.
	assert.Equal(t, MinAmount, b.Sub(a))
	assert.True(t, b.Sub(a).IsZero())

	// Addition caps at the ceiling.
	assert.Equal(t, MaxAmount, MaxAmount.Add(b))
}

func TestAmountString(t *testing.T) {
	for input, want := range map[string]string{
		"150":        "150.00",
		"150.5":      "150.50",
		"0.07":       "0.07",
		"0":          "0.00",
		"1000000.00": "1000000.00",
	} {
		a, err := NewAmount(input)
		require.NoError(t, err)
		assert.Equal(t, want, a.String())
	}
}

func TestNewName(t *testing.T) {
	got, err := NewName("  John Doe  ")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", got.String())

	for _, bad := range []string{"", "   ", "John-Doe", "Иван"} {
		_, err := NewName(bad)
		assert.ErrorIs(t, err, ErrInvalidName, "input %q", bad)
	}
}

func TestNameEqualsFold(t *testing.T) {
	a := Name("John Doe")
	assert.True(t, a.EqualsFold("john doe"))
	assert.True(t, a.EqualsFold("JOHN DOE"))
	assert.False(t, a.EqualsFold("John"))
}

func TestNewWeekDay(t *testing.T) {
	got, err := NewWeekDay("MONDAY")
	require.NoError(t, err)
	assert.Equal(t, "monday", got.String())
	assert.Equal(t, time.Monday, got.Weekday())

	got, err = NewWeekDay(" Sunday ")
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, got.Weekday())

	_, err = NewWeekDay("mon")
	assert.ErrorIs(t, err, ErrInvalidWeekDay)
	_, err = NewWeekDay("")
	assert.ErrorIs(t, err, ErrInvalidWeekDay)
}

func TestNewClockTime(t *testing.T) {
	got, err := NewClockTime("14:30")
	require.NoError(t, err)
	assert.Equal(t, 14, got.Hour())
	assert.Equal(t, 30, got.Minute())
	assert.Equal(t, 14*60+30, got.MinuteOfDay())

	for _, good := range []string{"00:00", "09:59", "23:59"} {
		_, err := NewClockTime(good)
		assert.NoError(t, err, "input %q", good)
	}
	for _, bad := range []string{"24:00", "9:30", "12:60", "12.30", ""} {
		_, err := NewClockTime(bad)
		assert.ErrorIs(t, err, ErrInvalidClockTime, "input %q", bad)
	}
}

func TestNewPhone(t *testing.T) {
	_, err := NewPhone("98765432")
	assert.NoError(t, err)
	for _, bad := range []string{"12", "phone", "9876 5432", ""} {
		_, err := NewPhone(bad)
		assert.ErrorIs(t, err, ErrInvalidPhone, "input %q", bad)
	}
}

func TestNewEmail(t *testing.T) {
	for _, good := range []string{"johnd@example.com", "a+b@x.io", "user.name@sub.domain.org"} {
		_, err := NewEmail(good)
		assert.NoError(t, err, "input %q", good)
	}
	for _, bad := range []string{"plain", "@example.com", "user@", ""} {
		_, err := NewEmail(bad)
		assert.ErrorIs(t, err, ErrInvalidEmail, "input %q", bad)
	}
}

func TestNewTag(t *testing.T) {
	got, err := NewTag("grade10")
	require.NoError(t, err)
	assert.Equal(t, "grade10", got.String())

	for _, bad := range []string{"", "two words", "hy-phen"} {
		_, err := NewTag(bad)
		assert.ErrorIs(t, err, ErrInvalidTag, "input %q", bad)
	}
}
