package if97

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Props(t *testing.T) {
	st, err := Props(3, 300)
	assert.NoError(t, err)
	assert.Equal(t, Region1, st.Region)
	assert.InEpsilon(t, 0.100215168e-2, st.V, 1e-8)
	assert.InEpsilon(t, 0.115331273e3, st.H, 1e-8)
	assert.InEpsilon(t, 0.392294792, st.S, 1e-8)
	assert.Greater(t, st.Eta, 0.0)

	st, err = Props(0.5, 1500)
	assert.NoError(t, err)
	assert.Equal(t, Region5, st.Region)
}

// 判定の失敗は既定の領域に落とさずそのまま返す
func Test_Props_Error(t *testing.T) {
	_, err := Props(25, 650)
	var de *DomainError
	assert.True(t, errors.As(err, &de))
	assert.Equal(t, "RegionPT", de.Op)
	assert.Equal(t, Region3, de.Region)
}

func Test_PropsPH(t *testing.T) {
	st, err := PropsPH(3, 3000)
	assert.NoError(t, err)
	assert.Equal(t, Region2, st.Region)
	assert.InDelta(t, 0.575373370e3, st.T, 1e-5)
	assert.InDelta(t, 3000, st.H, 0.1)

	_, err = PropsPH(1, 1500)
	var de *DomainError
	assert.True(t, errors.As(err, &de))
	assert.Equal(t, Region4, de.Region)
}

func Test_PropsPS(t *testing.T) {
	st, err := PropsPS(3, 0.5)
	assert.NoError(t, err)
	assert.Equal(t, Region1, st.Region)
	assert.InDelta(t, 0.5, st.S, 1e-3)
}

var nearSatP = []float64{0.001, 0.01, 0.1, 1, 3, 5, 10, 16}

// 飽和線のすぐ外側の点でも、判定された領域の物性値を返す
func Test_PropsPH_NearSaturation(t *testing.T) {
	for _, p := range nearSatP {
		Ts := tsat(p)
		for _, h := range []float64{h1(p, Ts) - 0.01, h2(p, Ts) + 0.01} {
			want, err := RegionPH(p, h)
			assert.NoError(t, err)

			st, err := PropsPH(p, h)
			assert.NoError(t, err)
			assert.Equal(t, want, st.Region, "p=%g h=%g", p, h)
			assert.InDelta(t, h, st.H, 1.0, "p=%g h=%g", p, h)
			assert.InDelta(t, Ts, st.T, 0.1, "p=%g h=%g", p, h)
		}
	}
}

func Test_PropsPS_NearSaturation(t *testing.T) {
	for _, p := range nearSatP {
		Ts := tsat(p)
		for _, s := range []float64{s1(p, Ts) - 1e-5, s2(p, Ts) + 1e-5} {
			want, err := RegionPS(p, s)
			assert.NoError(t, err)

			st, err := PropsPS(p, s)
			assert.NoError(t, err)
			assert.Equal(t, want, st.Region, "p=%g s=%g", p, s)
			assert.InDelta(t, s, st.S, 2e-3, "p=%g s=%g", p, s)
			assert.InDelta(t, Ts, st.T, 0.1, "p=%g s=%g", p, s)
		}
	}
}
