package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dateTransition(date string) Transition {
	return Transition{Date: date}
}

func TestNewListSortsStably(t *testing.T) {
	ts := []Transition{
		{Date: "2020:002:00:00:00.000"},
		{Date: "2020:001:00:00:00.000"},
		{Date: "2020:001:00:00:00.000", Entries: []Entry{{Key: "second"}}},
	}
	l := NewList(ts)
	require.Equal(t, 3, l.Len())
	assert.Equal(t, "2020:001:00:00:00.000", l.At(0).Date)
	assert.Nil(t, l.At(0).Entries)
	assert.Equal(t, "2020:001:00:00:00.000", l.At(1).Date)
	assert.Equal(t, "second", l.At(1).Entries[0].Key)
	assert.Equal(t, "2020:002:00:00:00.000", l.At(2).Date)
}

func TestInsertAppendsAtEnd(t *testing.T) {
	l := NewList([]Transition{dateTransition("2020:001:00:00:00.000")})
	err := l.Insert(0, dateTransition("2020:005:00:00:00.000"))
	require.NoError(t, err)
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, "2020:005:00:00:00.000", l.At(1).Date)
}

func TestInsertInMiddle(t *testing.T) {
	l := NewList([]Transition{
		dateTransition("2020:001:00:00:00.000"),
		dateTransition("2020:010:00:00:00.000"),
	})
	err := l.Insert(0, dateTransition("2020:005:00:00:00.000"))
	require.NoError(t, err)
	require.Equal(t, 3, l.Len())
	assert.Equal(t, "2020:001:00:00:00.000", l.At(0).Date)
	assert.Equal(t, "2020:005:00:00:00.000", l.At(1).Date)
	assert.Equal(t, "2020:010:00:00:00.000", l.At(2).Date)
}

func TestInsertBeyondLinearScanWindow(t *testing.T) {
	ts := []Transition{dateTransition("2020:001:00:00:00.000")}
	for i := 0; i < smallBufferScan+10; i++ {
		ts = append(ts, dateTransition("2020:100:00:00:00.000"))
	}
	ts = append(ts, dateTransition("2020:200:00:00:00.000"))
	l := NewList(ts)

	err := l.Insert(0, dateTransition("2020:150:00:00:00.000"))
	require.NoError(t, err)
	assert.Equal(t, "2020:150:00:00:00.000", l.At(l.Len()-2).Date)
	assert.Equal(t, "2020:200:00:00:00.000", l.At(l.Len()-1).Date)
}

func TestInsertBeforeCursorIsOrderingViolation(t *testing.T) {
	l := NewList([]Transition{
		dateTransition("2020:010:00:00:00.000"),
		dateTransition("2020:020:00:00:00.000"),
	})
	err := l.Insert(1, dateTransition("2020:005:00:00:00.000"))
	var ov *OrderingViolation
	require.ErrorAs(t, err, &ov)
	assert.Equal(t, "2020:020:00:00:00.000", ov.At)
	assert.Equal(t, "2020:005:00:00:00.000", ov.New)
}
