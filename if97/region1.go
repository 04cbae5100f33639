package if97

import "math"

//--------------------------------------
// 領域1 (圧縮水)
//--------------------------------------

// 基準状態
const (
	p1Star = 16.53  // [MPa]
	t1Star = 1386.0 // [K]
)

// ギブス自由エネルギーの係数 IF97 表2
var (
	i1 = [...]float64{
		0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 2, 2, 2,
		2, 2, 3, 3, 3, 4, 4, 4, 5, 8, 8, 21, 23, 29, 30, 31, 32,
	}
	j1 = [...]float64{
		-2, -1, 0, 1, 2, 3, 4, 5, -9, -7, -1, 0, 1, 3, -3, 0, 1,
		3, 17, -4, 0, 6, -5, -2, 10, -8, -11, -6, -29, -31, -38, -39, -40, -41,
	}
	n1 = [...]float64{
		0.14632971213167, -0.84548187169114, -0.37563603672040e1, 0.33855169168385e1,
		-0.95791963387872, 0.15772038513228, -0.16616417199501e-1, 0.81214629983568e-3,
		0.28319080123804e-3, -0.60706301565874e-3, -0.18990068218419e-1, -0.32529748770505e-1,
		-0.21841717175414e-1, -0.52838357969930e-4, -0.47184321073267e-3, -0.30001780793026e-3,
		0.47661393906987e-4, -0.44141845330846e-5, -0.72694996297594e-15, -0.31679644845054e-4,
		-0.28270797985312e-5, -0.85205128120103e-9, -0.22425281908000e-5, -0.65171222895601e-6,
		-0.14341729937924e-12, -0.40516996860117e-6, -0.12734301741641e-8, -0.17424871230634e-9,
		-0.68762131295531e-18, 0.14478307828521e-19, 0.26335781662795e-22, -0.11947622640071e-22,
		0.18228094581404e-23, -0.93537087292458e-25,
	}
)

// 無次元ギブス自由エネルギー γ(π,τ) IF97 式(7)
func gamma1(pi, tau float64) float64 {
	a := 7.1 - pi
	b := tau - 1.222
	var g float64
	for i := range n1 {
		g += n1[i] * math.Pow(a, i1[i]) * math.Pow(b, j1[i])
	}
	return g
}

// γ の π による偏微分 γπ
func gamma1Pi(pi, tau float64) float64 {
	a := 7.1 - pi
	b := tau - 1.222
	var g float64
	for i := range n1 {
		g -= n1[i] * i1[i] * math.Pow(a, i1[i]-1) * math.Pow(b, j1[i])
	}
	return g
}

// γ の τ による偏微分 γτ
func gamma1Tau(pi, tau float64) float64 {
	a := 7.1 - pi
	b := tau - 1.222
	var g float64
	for i := range n1 {
		g += n1[i] * math.Pow(a, i1[i]) * j1[i] * math.Pow(b, j1[i]-1)
	}
	return g
}

// region1 は領域1の順方向の物性値計算です。
type region1 struct{}

func (region1) Region() Region { return Region1 }

func (region1) Volume(p, T float64) float64 {
	pi := p / p1Star
	tau := t1Star / T
	return pi * gamma1Pi(pi, tau) * R * T / p / 1000
}

func (region1) Enthalpy(p, T float64) float64 {
	pi := p / p1Star
	tau := t1Star / T
	return tau * gamma1Tau(pi, tau) * R * T
}

func (region1) Entropy(p, T float64) float64 {
	pi := p / p1Star
	tau := t1Star / T
	return (tau*gamma1Tau(pi, tau) - gamma1(pi, tau)) * R
}

// 後退方程式 T(p,h) の係数 IF97 表6
var (
	i1ph = [...]float64{0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 2, 2, 3, 3, 4, 5, 6}
	j1ph = [...]float64{0, 1, 2, 6, 22, 32, 0, 1, 2, 3, 4, 10, 32, 10, 32, 10, 32, 32, 32, 32}
	n1ph = [...]float64{
		-0.23872489924521e3, 0.40421188637945e3, 0.11349746881718e3, -0.58457616048039e1,
		-0.15285482413140e-3, -0.10866707695377e-5, -0.13391744872602e2, 0.43211039183559e2,
		-0.54010067170506e2, 0.30535892203916e2, -0.65964749423638e1, 0.93965400878363e-2,
		0.11573647505340e-6, -0.25858641282073e-4, -0.40644363084799e-8, 0.66456186191635e-7,
		0.80670734103027e-10, -0.93477771213947e-12, 0.58265442020601e-14, -0.15020185953503e-16,
	}
)

// 領域1の T(p,h) IF97 式(11)
func t1PH(p, h float64) float64 {
	eta := h/2500 + 1
	var T float64
	for i := range n1ph {
		T += n1ph[i] * math.Pow(p, i1ph[i]) * math.Pow(eta, j1ph[i])
	}
	return T
}

// 後退方程式 T(p,s) の係数 IF97 表8
var (
	i1ps = [...]float64{0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 2, 3, 3, 4}
	j1ps = [...]float64{0, 1, 2, 3, 11, 31, 0, 1, 2, 3, 12, 31, 0, 1, 2, 9, 31, 10, 32, 32}
	n1ps = [...]float64{
		0.17478268058307e3, 0.34806930892873e2, 0.65292584978455e1, 0.33039981775489,
		-0.19281382923196e-6, -0.24909197244573e-22, -0.26107636489332, 0.22592965981586,
		-0.64256463395226e-1, 0.78876289270526e-2, 0.35672110607366e-9, 0.17332496994895e-23,
		0.56608900654837e-3, -0.32635483139717e-3, 0.44778286690632e-4, -0.51322156908507e-9,
		-0.42522657042207e-25, 0.26400441360689e-12, 0.78124600459723e-28, -0.30732199903668e-30,
	}
)

// 領域1の T(p,s) IF97 式(13)
func t1PS(p, s float64) float64 {
	sigma := s + 2
	var T float64
	for i := range n1ps {
		T += n1ps[i] * math.Pow(p, i1ps[i]) * math.Pow(sigma, j1ps[i])
	}
	return T
}
