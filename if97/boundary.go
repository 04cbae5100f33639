package if97

import "math"

//--------------------------------------
// 領域判定用の補助境界曲線
//--------------------------------------

// B23 曲線 (領域2と3の境界) IF97 式(5),(6)
var nB23 = [...]float64{
	0.34805185628969e3,
	-0.11671859879975e1,
	0.10192970039326e-2,
	0.57254459862746e3,
	0.13918839778870e2,
}

// 温度 T [K] における領域2/3境界の圧力 [MPa]
// 623.15 K <= T <= 863.15 K で有効
func B23P(T float64) float64 {
	return nB23[0] + nB23[1]*T + nB23[2]*T*T
}

// 圧力 p [MPa] における領域2/3境界の温度 [K]
// 16.5292 MPa <= p <= 100 MPa で有効。範囲外の値は定義されません。
// (p < 13.9188 MPa では NaN)
func B23T(p float64) float64 {
	return nB23[3] + math.Sqrt((p-nB23[4])/nB23[2])
}

// B2bc 曲線 (副領域2bと2cの境界) IF97 式(20),(21)
var nB2bc = [...]float64{
	0.90584278514723e3,
	-0.67955786399241,
	0.12809002730136e-3,
	0.26526571908428e4,
	0.45257578905948e1,
}

// 比エンタルピー h [kJ/kg] における2b/2c境界の圧力 [MPa]
func P2bc(h float64) float64 {
	return nB2bc[0] + nB2bc[1]*h + nB2bc[2]*h*h
}

// 圧力 p [MPa] における2b/2c境界の比エンタルピー [kJ/kg]
func H2bc(p float64) float64 {
	return nB2bc[3] + math.Sqrt((p-nB2bc[4])/nB2bc[2])
}

// 領域3の飽和線 psat,3(h) IAPWS SR4-04 式(10)
var (
	iB34h = [...]float64{0, 1, 1, 1, 1, 5, 7, 8, 14, 20, 22, 24, 28, 36}
	jB34h = [...]float64{0, 1, 3, 4, 36, 3, 0, 24, 16, 16, 3, 18, 8, 24}
	nB34h = [...]float64{
		0.600073641753024, -0.936203654849857e1, 0.246590798594147e2,
		-0.107014222858224e3, -0.915821315805768e14, -0.862332011700662e4,
		-0.235837344740032e2, 0.252304969384128e18, -0.389718771997719e19,
		-0.333775713645296e23, 0.356499469636328e11, -0.148547544720641e27,
		0.330611514838798e19, 0.813641294467829e38,
	}
)

// 比エンタルピー h [kJ/kg] から領域3境界上の飽和圧力 [MPa] を求めます。
// 1670.858218 kJ/kg <= h <= 2563.592004 kJ/kg で有効。範囲外は外挿値で、検査はしません。
func P3satH(h float64) float64 {
	eta := h / 2600
	a := eta - 1.02
	b := eta - 0.608
	var sum float64
	for i := range nB34h {
		sum += nB34h[i] * math.Pow(a, iB34h[i]) * math.Pow(b, jB34h[i])
	}
	return sum * 22
}

// 領域3の飽和線 psat,3(s) IAPWS SR4-04 式(11)
var (
	iB34s = [...]float64{0, 1, 1, 4, 12, 12, 16, 24, 28, 32}
	jB34s = [...]float64{0, 1, 32, 7, 4, 14, 36, 10, 0, 18}
	nB34s = [...]float64{
		0.639767553612785, -0.129727445396014e2, -0.224595125848403e16,
		0.177466741801846e7, 0.717079349571538e10, -0.378829107169011e18,
		-0.955586736431328e34, 0.187269814676188e24, 0.119254746466473e12,
		0.110649277244882e37,
	}
)

// 比エントロピー s [kJ/(kg・K)] から領域3境界上の飽和圧力 [MPa] を求めます。
// 3.778281340 <= s <= 5.210887825 で有効。範囲外は外挿値で、検査はしません。
func P3satS(s float64) float64 {
	sigma := s / 5.2
	a := sigma - 1.03
	b := sigma - 0.699
	var sum float64
	for i := range nB34s {
		sum += nB34s[i] * math.Pow(a, iB34s[i]) * math.Pow(b, jB34s[i])
	}
	return sum * 22
}
