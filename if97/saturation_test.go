package if97

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// IF97 表35
func Test_Psat(t *testing.T) {
	cases := []struct{ T, p float64 }{
		{300, 0.353658941e-2},
		{500, 0.263889776e1},
		{600, 0.123443146e2},
	}
	for _, c := range cases {
		p, err := Psat(c.T)
		assert.NoError(t, err)
		assert.InEpsilon(t, c.p, p, 1e-8, "T=%g", c.T)
	}
}

// IF97 表36
func Test_Tsat(t *testing.T) {
	cases := []struct{ p, T float64 }{
		{0.1, 0.372755919e3},
		{1, 0.453035632e3},
		{10, 0.584149488e3},
	}
	for _, c := range cases {
		T, err := Tsat(c.p)
		assert.NoError(t, err)
		assert.InDelta(t, c.T, T, 1e-5, "p=%g", c.p)
	}
}

func Test_Psat_Tsat_RoundTrip(t *testing.T) {
	T, err := Tsat(0.1)
	assert.NoError(t, err)
	p, err := Psat(T)
	assert.NoError(t, err)
	assert.InDelta(t, 0.1, p, 1e-6)

	for _, T := range []float64{273.16, 300, 400, 500, 600, 640} {
		p, err := Psat(T)
		assert.NoError(t, err)
		T2, err := Tsat(p)
		assert.NoError(t, err)
		assert.InDelta(t, T, T2, 1e-6)
	}
}

func Test_Psat_OutOfRange(t *testing.T) {
	for _, T := range []float64{273.0, 650.0, 1000.0} {
		_, err := Psat(T)
		assert.ErrorIs(t, err, ErrDomain)

		var de *DomainError
		assert.True(t, errors.As(err, &de))
		assert.Equal(t, ReasonOutOfRange, de.Reason)
		assert.Equal(t, "Psat", de.Op)
	}
}

func Test_Tsat_OutOfRange(t *testing.T) {
	for _, p := range []float64{0.0001, 22.1, 50} {
		_, err := Tsat(p)
		assert.ErrorIs(t, err, ErrDomain)
	}
}
