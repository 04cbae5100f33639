package if97

import "math"

//--------------------------------------
// 粘性係数 IAPWS 2008 (工業用: 臨界増大項 μ2 = 1)
//--------------------------------------

const (
	etaTStar   = Tc   // [K]
	etaRhoStar = RhoC // [kg/m3]
	etaStar    = 1e-6 // [Pa・s]
)

var hEta0 = [...]float64{1.67752, 2.20462, 0.6366564, -0.241605}

// hEta1[i][j] は (1/θ - 1)^i (δ - 1)^j の係数
var hEta1 = [6][7]float64{
	{5.20094e-1, 2.22531e-1, -2.81378e-1, 1.61913e-1, -3.25372e-2, 0, 0},
	{8.50895e-2, 9.99115e-1, -9.06851e-1, 2.57399e-1, 0, 0, 0},
	{-1.08374, 1.88797, -7.72479e-1, 0, 0, 0, 0},
	{-2.89555e-1, 1.26613, -4.89837e-1, 0, 6.98452e-2, 0, -4.35673e-3},
	{0, 0, -2.57040e-1, 0, 0, 8.72102e-3, 0},
	{0, 1.20573e-1, 0, 0, 0, 0, -5.93264e-4},
}

// 希薄気体の項 μ0(θ)。θ = T/T*
func ViscosityIdeal(theta float64) float64 {
	var sum float64
	for i, h := range hEta0 {
		sum += h / math.Pow(theta, float64(i))
	}
	return 100 * math.Sqrt(theta) / sum
}

// 残留項 μ1(δ,θ)。δ = ρ/ρ*
func ViscositySecond(delta, theta float64) float64 {
	a := 1/theta - 1
	b := delta - 1
	var sum float64
	ai := 1.0
	for i := range hEta1 {
		bj := 1.0
		for j := range hEta1[i] {
			sum += hEta1[i][j] * ai * bj
			bj *= b
		}
		ai *= a
	}
	return math.Exp(delta * sum)
}

// 比体積 v [m3/kg] と温度 T [K] から粘性係数 [Pa・s] を求めます。
func EtaVT(v, T float64) (float64, error) {
	if !(v > 0) {
		return 0, outOfRange("EtaVT", "v=%g m3/kg must be positive", v)
	}
	if !(T > 0) {
		return 0, outOfRange("EtaVT", "T=%g K must be positive", T)
	}
	delta := 1 / (v * etaRhoStar)
	theta := T / etaTStar
	return etaStar * ViscosityIdeal(theta) * ViscositySecond(delta, theta), nil
}
