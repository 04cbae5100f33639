package if97

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type refPoint struct {
	p, T    float64
	v, h, s float64
}

func checkRefPoints(t *testing.T, r Region, pts []refPoint) {
	for _, c := range pts {
		v, err := VPT(c.p, c.T, r)
		assert.NoError(t, err)
		assert.InEpsilon(t, c.v, v, 1e-8, "v p=%g T=%g", c.p, c.T)

		h, err := HPT(c.p, c.T, r)
		assert.NoError(t, err)
		assert.InEpsilon(t, c.h, h, 1e-8, "h p=%g T=%g", c.p, c.T)

		s, err := SPT(c.p, c.T, r)
		assert.NoError(t, err)
		assert.InEpsilon(t, c.s, s, 1e-8, "s p=%g T=%g", c.p, c.T)
	}
}

// IF97 表5
func Test_Region1(t *testing.T) {
	checkRefPoints(t, Region1, []refPoint{
		{3, 300, 0.100215168e-2, 0.115331273e3, 0.392294792},
		{80, 300, 0.971180894e-3, 0.184142828e3, 0.368563852},
		{3, 500, 0.120241800e-2, 0.975542239e3, 0.258041912e1},
	})
}

// IF97 表15
func Test_Region2(t *testing.T) {
	checkRefPoints(t, Region2, []refPoint{
		{0.0035, 300, 0.394913866e2, 0.254991145e4, 0.852238967e1},
		{0.0035, 700, 0.923015898e2, 0.333568375e4, 0.101749996e2},
		{30, 700, 0.542946619e-2, 0.263149474e4, 0.517540298e1},
	})
}

// IF97 表42
func Test_Region5(t *testing.T) {
	checkRefPoints(t, Region5, []refPoint{
		{0.5, 1500, 0.138455090e1, 0.521976855e4, 0.965408875e1},
		{30, 1500, 0.230761299e-1, 0.516723514e4, 0.772970133e1},
		{30, 2000, 0.311385219e-1, 0.657122604e4, 0.853640523e1},
	})
}

// 理想気体部と残留部は別々に微分する
func Test_Region2_IdealResidualSplit(t *testing.T) {
	pi, tau := 0.0035, 540.0/300
	const d = 1e-6

	num := (gamma2Ideal(pi+d, tau) - gamma2Ideal(pi-d, tau)) / (2 * d)
	assert.InEpsilon(t, num, gamma2IdealPi(pi), 1e-6)

	num = (gamma2Ideal(pi, tau+d) - gamma2Ideal(pi, tau-d)) / (2 * d)
	assert.InEpsilon(t, num, gamma2IdealTau(tau), 1e-6)

	pi, tau = 0.1, 540.0/500
	num = (gamma2Res(pi+d, tau) - gamma2Res(pi-d, tau)) / (2 * d)
	assert.InEpsilon(t, num, gamma2ResPi(pi, tau), 1e-5)

	num = (gamma2Res(pi, tau+d) - gamma2Res(pi, tau-d)) / (2 * d)
	assert.InEpsilon(t, num, gamma2ResTau(pi, tau), 1e-5)
}

func Test_Region1_Derivatives(t *testing.T) {
	pi, tau := 3/p1Star, t1Star/300
	const d = 1e-6

	num := (gamma1(pi+d, tau) - gamma1(pi-d, tau)) / (2 * d)
	assert.InEpsilon(t, num, gamma1Pi(pi, tau), 1e-6)

	num = (gamma1(pi, tau+d) - gamma1(pi, tau-d)) / (2 * d)
	assert.InEpsilon(t, num, gamma1Tau(pi, tau), 1e-6)
}

func Test_For(t *testing.T) {
	for _, r := range []Region{Region1, Region2, Region5} {
		e, err := For(r)
		assert.NoError(t, err)
		assert.Equal(t, r, e.Region())
	}

	for _, r := range []Region{Region3, Region4} {
		_, err := For(r)
		var de *DomainError
		assert.True(t, errors.As(err, &de))
		assert.Equal(t, ReasonUnsupportedRegion, de.Reason)
		assert.Equal(t, r, de.Region)
	}

	_, err := HPT(3, 300, Region(7))
	var de *DomainError
	assert.True(t, errors.As(err, &de))
	assert.Equal(t, ReasonUnknownRegion, de.Reason)
	assert.ErrorIs(t, err, ErrDomain)
}

// 領域1では一定圧力のもとで比エンタルピーは温度に対して単調増加
func Test_Region1_EnthalpyMonotonic(t *testing.T) {
	for _, p := range []float64{0.1, 3, 20, 80} {
		prev, err := HPT(p, 273.15, Region1)
		assert.NoError(t, err)
		for T := 274.15; T < 623; T += 1 {
			r, err := RegionPT(p, T)
			if err != nil || r != Region1 {
				break
			}
			h, _ := HPT(p, T, Region1)
			assert.Greater(t, h, prev, "p=%g T=%g", p, T)
			prev = h
		}
	}
}

// 飽和線に両側から近づいたとき、それぞれの側で物性値が連続であること
func Test_SaturationBoundaryContinuity(t *testing.T) {
	for _, p := range []float64{0.01, 0.1, 1, 10} {
		Ts, err := Tsat(p)
		assert.NoError(t, err)

		for _, e := range []Evaluator{region1{}, region2{}} {
			atSat := e.Enthalpy(p, Ts)
			for _, eps := range []float64{1e-3, 1e-5} {
				var T float64
				if e.Region() == Region1 {
					T = Ts - eps
				} else {
					T = Ts + eps
				}
				assert.InDelta(t, atSat, e.Enthalpy(p, T), 10*eps, "p=%g %s", p, e.Region())
				assert.InEpsilon(t, e.Volume(p, Ts), e.Volume(p, T), 1e-4)
			}
		}

		// 飽和液と飽和蒸気の差は蒸発潜熱
		hL := region1{}.Enthalpy(p, Ts)
		hV := region2{}.Enthalpy(p, Ts)
		assert.Greater(t, hV, hL)
	}
}

// 飽和線上で領域1と領域2のギブス自由エネルギーが一致すること
func Test_Region1_Region2_Consistency(t *testing.T) {
	Ts, _ := Tsat(1)
	sL, _ := SPT(1, Ts, Region1)
	sV, _ := SPT(1, Ts, Region2)
	hL, _ := HPT(1, Ts, Region1)
	hV, _ := HPT(1, Ts, Region2)

	// クラウジウス・クラペイロン: (h'' - h') = T (s'' - s')
	assert.InEpsilon(t, hV-hL, Ts*(sV-sL), 1e-4)
}
