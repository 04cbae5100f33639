package if97

import "math"

//--------------------------------------
// 飽和曲線 (領域4の境界)
//--------------------------------------

var nSat = [...]float64{
	0.11670521452767e4,
	-0.72421316703206e6,
	-0.17073846940092e2,
	0.12020824702470e5,
	-0.32325550322333e7,
	0.14915108613530e2,
	-0.48232657361591e4,
	0.40511340542057e6,
	-0.23855557567849,
	0.65017534844798e3,
}

// 温度 T [K] から飽和圧力 [MPa] を求めます。IF97 式(30)
// 273.15 K <= T <= 647.096 K の範囲外では DomainError を返します。
func Psat(T float64) (float64, error) {
	if !(tMin <= T && T <= Tc) {
		return 0, outOfRange("Psat", "T=%g K outside [%g, %g]", T, tMin, Tc)
	}
	return psat(T), nil
}

func psat(T float64) float64 {
	n := &nSat
	theta := T + n[8]/(T-n[9])
	A := theta*theta + n[0]*theta + n[1]
	B := n[2]*theta*theta + n[3]*theta + n[4]
	C := n[5]*theta*theta + n[6]*theta + n[7]
	x := 2 * C / (-B + math.Sqrt(B*B-4*A*C))
	return x * x * x * x
}

// 圧力 p [MPa] から飽和温度 [K] を求めます。IF97 式(31)
// 611.213 Pa <= p <= 22.064 MPa の範囲外では DomainError を返します。
func Tsat(p float64) (float64, error) {
	if !(pTripleLine <= p && p <= Pc) {
		return 0, outOfRange("Tsat", "p=%g MPa outside [%g, %g]", p, pTripleLine, Pc)
	}
	return tsat(p), nil
}

func tsat(p float64) float64 {
	n := &nSat
	beta := math.Pow(p, 0.25)
	E := beta*beta + n[2]*beta + n[5]
	F := n[0]*beta*beta + n[3]*beta + n[6]
	G := n[1]*beta*beta + n[4]*beta + n[7]
	D := 2 * G / (-F - math.Sqrt(F*F-4*E*G))
	return (n[9] + D - math.Sqrt((n[9]+D)*(n[9]+D)-4*(n[8]+n[9]*D))) / 2
}
