package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnknownIsNotKnown(t *testing.T) {
	assert.False(t, Unknown.IsKnown())
	assert.Nil(t, Unknown.Interface())
	assert.Equal(t, "", Unknown.String())
}

func TestKnownWrapsValue(t *testing.T) {
	v := Known("ENAB")
	assert.True(t, v.IsKnown())
	assert.Equal(t, "ENAB", v.Interface())
	assert.Equal(t, "ENAB", v.String())
}

func TestFloat64Conversion(t *testing.T) {
	f, ok := Known(3.5).Float64()
	assert.True(t, ok)
	assert.Equal(t, 3.5, f)

	f, ok = Known(3).Float64()
	assert.True(t, ok)
	assert.Equal(t, 3.0, f)

	_, ok = Known("not-numeric").Float64()
	assert.False(t, ok)

	_, ok = Unknown.Float64()
	assert.False(t, ok)
}

func TestStringFallsBackToFormat(t *testing.T) {
	assert.Equal(t, "42", Known(42).String())
}

func TestEqual(t *testing.T) {
	assert.True(t, Unknown.Equal(Unknown))
	assert.True(t, Known(1.0).Equal(Known(1.0)))
	assert.False(t, Known(1.0).Equal(Known(2.0)))
	assert.False(t, Known(1.0).Equal(Unknown))
}
