package if97

import "math"

//--------------------------------------
// 領域5 (高温蒸気 1073.15 K - 2273.15 K)
//--------------------------------------

// 基準状態
const (
	p5Star = 1.0    // [MPa]
	t5Star = 1000.0 // [K]
)

// 理想気体部の係数 IF97 表37
var (
	j5o = [...]float64{0, 1, -3, -2, -1, 2}
	n5o = [...]float64{
		-0.13179983674201e2, 0.68540841634434e1, -0.24805148933466e-1,
		0.36901534980333, -0.31161318213925e1, -0.32961626538917,
	}
)

// 残留部の係数 IF97 表38 (2007年改訂版)
var (
	i5r = [...]float64{1, 1, 1, 2, 2, 3}
	j5r = [...]float64{1, 2, 3, 3, 9, 7}
	n5r = [...]float64{
		0.15736404855259e-2, 0.90153761673944e-3, -0.50270077677648e-2,
		0.22440037409485e-5, -0.41163275453471e-5, 0.37919454822955e-7,
	}
)

func gamma5Ideal(pi, tau float64) float64 {
	g := math.Log(pi)
	for i := range n5o {
		g += n5o[i] * math.Pow(tau, j5o[i])
	}
	return g
}

func gamma5IdealTau(tau float64) float64 {
	var g float64
	for i := range n5o {
		g += n5o[i] * j5o[i] * math.Pow(tau, j5o[i]-1)
	}
	return g
}

func gamma5Res(pi, tau float64) float64 {
	var g float64
	for i := range n5r {
		g += n5r[i] * math.Pow(pi, i5r[i]) * math.Pow(tau, j5r[i])
	}
	return g
}

func gamma5ResPi(pi, tau float64) float64 {
	var g float64
	for i := range n5r {
		g += n5r[i] * i5r[i] * math.Pow(pi, i5r[i]-1) * math.Pow(tau, j5r[i])
	}
	return g
}

func gamma5ResTau(pi, tau float64) float64 {
	var g float64
	for i := range n5r {
		g += n5r[i] * math.Pow(pi, i5r[i]) * j5r[i] * math.Pow(tau, j5r[i]-1)
	}
	return g
}

// region5 は領域5の順方向の物性値計算です。
type region5 struct{}

func (region5) Region() Region { return Region5 }

func (region5) Volume(p, T float64) float64 {
	pi := p / p5Star
	tau := t5Star / T
	return pi * (1/pi + gamma5ResPi(pi, tau)) * R * T / p / 1000
}

func (region5) Enthalpy(p, T float64) float64 {
	pi := p / p5Star
	tau := t5Star / T
	return tau * (gamma5IdealTau(tau) + gamma5ResTau(pi, tau)) * R * T
}

func (region5) Entropy(p, T float64) float64 {
	pi := p / p5Star
	tau := t5Star / T
	gt := gamma5IdealTau(tau) + gamma5ResTau(pi, tau)
	g := gamma5Ideal(pi, tau) + gamma5Res(pi, tau)
	return (tau*gt - g) * R
}
