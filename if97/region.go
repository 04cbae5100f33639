package if97

import "fmt"

// Region は IF97 の領域番号です。
type Region int

const (
	Region1 Region = iota + 1 // 圧縮水
	Region2                   // 過熱蒸気
	Region3                   // 臨界点近傍 (物性値は計算しない)
	Region4                   // 飽和線 (湿り蒸気)
	Region5                   // 高温蒸気
)

func (r Region) String() string {
	if Region1 <= r && r <= Region5 {
		return fmt.Sprintf("region %d", int(r))
	}
	return fmt.Sprintf("Region(%d)", int(r))
}

//--------------------------------------
// 領域判定
//
// 境界上の点は番号の小さい領域に属するものとします。
// (飽和線上は領域1、B23曲線上は領域2、1073.15 K は領域2)
//--------------------------------------

// 圧力 p [MPa] と温度 T [K] から領域を判定します。
// 領域3の点は ReasonUnsupportedRegion の DomainError になります。
func RegionPT(p, T float64) (Region, error) {
	const op = "RegionPT"
	if !(0 < p && p <= pMax) {
		return 0, outOfRange(op, "p=%g MPa outside (0, %g]", p, pMax)
	}
	if !(tMin <= T && T <= tMax) {
		return 0, outOfRange(op, "T=%g K outside [%g, %g]", T, tMin, tMax)
	}

	if T > t25 {
		if p <= p5Max {
			return Region5, nil
		}
		return 0, outOfRange(op, "p=%g MPa above %g MPa at T=%g K", p, p5Max, T)
	}

	if T <= t13 {
		if p >= psat(T) {
			return Region1, nil
		}
		return Region2, nil
	}

	if p <= B23P(T) {
		return Region2, nil
	}
	return 0, unsupported(op, Region3)
}

// 領域の縁での比エンタルピー・比エントロピー
func h1(p, T float64) float64 { return region1{}.Enthalpy(p, T) }
func h2(p, T float64) float64 { return region2{}.Enthalpy(p, T) }
func h5(p, T float64) float64 { return region5{}.Enthalpy(p, T) }
func s1(p, T float64) float64 { return region1{}.Entropy(p, T) }
func s2(p, T float64) float64 { return region2{}.Entropy(p, T) }
func s5(p, T float64) float64 { return region5{}.Entropy(p, T) }

// 圧力 p [MPa] と比エンタルピー h [kJ/kg] から領域を判定します。
// 後退方程式を選ぶために使います。領域1-5 のいずれかを返します。
func RegionPH(p, h float64) (Region, error) {
	return classify("RegionPH", p, h, h1, h2, h5, P3satH)
}

// 圧力 p [MPa] と比エントロピー s [kJ/(kg・K)] から領域を判定します。
func RegionPS(p, s float64) (Region, error) {
	return classify("RegionPS", p, s, s1, s2, s5, P3satS)
}

// classify は RegionPH と RegionPS の共通部分です。
// x は h または s、f1,f2,f5 は各領域の順方向の式、p3sat は領域3の飽和線です。
func classify(op string, p, x float64, f1, f2, f5 func(p, T float64) float64, p3sat func(x float64) float64) (Region, error) {
	if !(0 < p && p <= pMax) {
		return 0, outOfRange(op, "p=%g MPa outside (0, %g]", p, pMax)
	}

	// 三重点の圧力未満では蒸気のみ
	if p < pTripleLine {
		if x < f2(p, tMin) {
			return 0, outOfRange(op, "%g below the vapour envelope at p=%g MPa", x, p)
		}
		return classifyVapour(op, p, x, f2, f5)
	}

	if x < f1(p, tMin) {
		return 0, outOfRange(op, "%g below the 273.15 K isotherm at p=%g MPa", x, p)
	}

	if p <= p13 {
		Ts := tsat(p)
		if x <= f1(p, Ts) {
			return Region1, nil
		}
		if x < f2(p, Ts) {
			return Region4, nil
		}
		return classifyVapour(op, p, x, f2, f5)
	}

	if x <= f1(p, t13) {
		return Region1, nil
	}
	if x >= f2(p, B23T(p)) {
		return classifyVapour(op, p, x, f2, f5)
	}
	// p13 < p <= Pc では x が p3sat の下限をわずかに下回ることがある。
	// その外挿値は p13 付近で p を下回るので、結果は領域3になる。
	if p <= Pc && p < p3sat(x) {
		return Region4, nil
	}
	return Region3, nil
}

// 領域2の下端を超えている点を領域2と領域5に振り分けます。
func classifyVapour(op string, p, x float64, f2, f5 func(p, T float64) float64) (Region, error) {
	if x <= f2(p, t25) {
		return Region2, nil
	}
	if p <= p5Max && x <= f5(p, tMax) {
		return Region5, nil
	}
	return 0, outOfRange(op, "%g above the high temperature limit at p=%g MPa", x, p)
}
