package if97

import "math"

//--------------------------------------
// 領域2 (過熱蒸気)
//--------------------------------------

// 基準状態
const (
	p2Star = 1.0   // [MPa]
	t2Star = 540.0 // [K]
)

// 理想気体部の係数 IF97 表10
var (
	j2o = [...]float64{0, 1, -5, -4, -3, -2, -1, 2, 3}
	n2o = [...]float64{
		-0.96927686500217e1, 0.10086655968018e2, -0.56087911283020e-2,
		0.71452738081455e-1, -0.40710498223928, 0.14240819171444e1,
		-0.43839511319450e1, -0.28408632460772, 0.21268463753307e-1,
	}
)

// 残留部の係数 IF97 表11
var (
	i2r = [...]float64{
		1, 1, 1, 1, 1, 2, 2, 2, 2, 2, 3, 3, 3, 3, 3, 4, 4, 4, 5, 6, 6, 6,
		7, 7, 7, 8, 8, 9, 10, 10, 10, 16, 16, 18, 20, 20, 20, 21, 22, 23, 24, 24, 24,
	}
	j2r = [...]float64{
		0, 1, 2, 3, 6, 1, 2, 4, 7, 36, 0, 1, 3, 6, 35, 1, 2, 3, 7, 3, 16, 35,
		0, 11, 25, 8, 36, 13, 4, 10, 14, 29, 50, 57, 20, 35, 48, 21, 53, 39, 26, 40, 58,
	}
	n2r = [...]float64{
		-0.17731742473213e-2, -0.17834862292358e-1, -0.45996013696365e-1, -0.57581259083432e-1,
		-0.50325278727930e-1, -0.33032641670203e-4, -0.18948987516315e-3, -0.39392777243355e-2,
		-0.43797295650573e-1, -0.26674547914087e-4, 0.20481737692309e-7, 0.43870667284435e-6,
		-0.32277677238570e-4, -0.15033924542148e-2, -0.40668253562649e-1, -0.78847309559367e-9,
		0.12790717852285e-7, 0.48225372718507e-6, 0.22922076337661e-5, -0.16714766451061e-10,
		-0.21171472321355e-2, -0.23895741934104e2, -0.59059564324270e-17, -0.12621808899101e-5,
		-0.38946842435739e-1, 0.11256211360459e-10, -0.82311340897998e1, 0.19809712802088e-7,
		0.10406965210174e-18, -0.10234747095929e-12, -0.10018179379511e-8, -0.80882908646985e-10,
		0.10693031879409, -0.33662250574171, 0.89185845355421e-24, 0.30629316876232e-12,
		-0.42002467698208e-5, -0.59056029685639e-25, 0.37826947613457e-5, -0.12768608934681e-14,
		0.73087610595061e-28, 0.55414715350778e-16, -0.94369707241210e-6,
	}
)

// 理想気体部 γo(π,τ) IF97 式(16)
func gamma2Ideal(pi, tau float64) float64 {
	g := math.Log(pi)
	for i := range n2o {
		g += n2o[i] * math.Pow(tau, j2o[i])
	}
	return g
}

// γo の π による偏微分
func gamma2IdealPi(pi float64) float64 {
	return 1 / pi
}

// γo の τ による偏微分
func gamma2IdealTau(tau float64) float64 {
	var g float64
	for i := range n2o {
		g += n2o[i] * j2o[i] * math.Pow(tau, j2o[i]-1)
	}
	return g
}

// 残留部 γr(π,τ) IF97 式(17)
func gamma2Res(pi, tau float64) float64 {
	b := tau - 0.5
	var g float64
	for i := range n2r {
		g += n2r[i] * math.Pow(pi, i2r[i]) * math.Pow(b, j2r[i])
	}
	return g
}

// γr の π による偏微分
func gamma2ResPi(pi, tau float64) float64 {
	b := tau - 0.5
	var g float64
	for i := range n2r {
		g += n2r[i] * i2r[i] * math.Pow(pi, i2r[i]-1) * math.Pow(b, j2r[i])
	}
	return g
}

// γr の τ による偏微分
func gamma2ResTau(pi, tau float64) float64 {
	b := tau - 0.5
	var g float64
	for i := range n2r {
		g += n2r[i] * math.Pow(pi, i2r[i]) * j2r[i] * math.Pow(b, j2r[i]-1)
	}
	return g
}

// region2 は領域2の順方向の物性値計算です。
// 理想気体部と残留部は基準状態が異なるため、それぞれ微分してから足し合わせます。
type region2 struct{}

func (region2) Region() Region { return Region2 }

func (region2) Volume(p, T float64) float64 {
	pi := p / p2Star
	tau := t2Star / T
	return pi * (gamma2IdealPi(pi) + gamma2ResPi(pi, tau)) * R * T / p / 1000
}

func (region2) Enthalpy(p, T float64) float64 {
	pi := p / p2Star
	tau := t2Star / T
	return tau * (gamma2IdealTau(tau) + gamma2ResTau(pi, tau)) * R * T
}

func (region2) Entropy(p, T float64) float64 {
	pi := p / p2Star
	tau := t2Star / T
	gt := gamma2IdealTau(tau) + gamma2ResTau(pi, tau)
	g := gamma2Ideal(pi, tau) + gamma2Res(pi, tau)
	return (tau*gt - g) * R
}

//--------------------------------------
// 後退方程式 T(p,h) IF97 表20-22
//--------------------------------------

var (
	i2aph = [...]float64{
		0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 2, 2,
		2, 2, 2, 2, 2, 2, 3, 3, 4, 4, 4, 5, 5, 5, 6, 6, 7,
	}
	j2aph = [...]float64{
		0, 1, 2, 3, 7, 20, 0, 1, 2, 3, 7, 9, 11, 18, 44, 0, 2,
		7, 36, 38, 40, 42, 44, 24, 44, 12, 32, 44, 32, 36, 42, 34, 44, 28,
	}
	n2aph = [...]float64{
		0.10898952318288e4, 0.84951654495535e3, -0.10781748091826e3, 0.33153654801263e2,
		-0.74232016790248e1, 0.11765048724356e2, 0.18445749355790e1, -0.41792700549624e1,
		0.62478196935812e1, -0.17344563108114e2, -0.20058176862096e3, 0.27196065473796e3,
		-0.45511318285818e3, 0.30919688604755e4, 0.25226640357872e6, -0.61707422868339e-2,
		-0.31078046629583, 0.11670873077107e2, 0.12812798404046e9, -0.98554909623276e9,
		0.28224546973002e10, -0.35948971410703e10, 0.17227349913197e10, -0.13551334240775e5,
		0.12848734664650e8, 0.13865724283226e1, 0.23598832556514e6, -0.13105236545054e8,
		0.73999835474766e4, -0.55196697030060e6, 0.37154085996233e7, 0.19127729239660e5,
		-0.41535164835634e6, -0.62459855192507e2,
	}
)

// 副領域2a の T(p,h) IF97 式(22)
func t2aPH(p, h float64) float64 {
	eta := h/2000 - 2.1
	var T float64
	for i := range n2aph {
		T += n2aph[i] * math.Pow(p, i2aph[i]) * math.Pow(eta, j2aph[i])
	}
	return T
}

var (
	i2bph = [...]float64{
		0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 2, 2, 2,
		2, 3, 3, 3, 3, 4, 4, 4, 4, 4, 4, 5, 5, 5, 6, 7, 7, 9, 9,
	}
	j2bph = [...]float64{
		0, 1, 2, 12, 18, 24, 28, 40, 0, 2, 6, 12, 18, 24, 28, 40, 2, 8, 18,
		40, 1, 2, 12, 24, 2, 12, 18, 24, 28, 40, 18, 24, 40, 28, 2, 28, 1, 40,
	}
	n2bph = [...]float64{
		0.14895041079516e4, 0.74307798314034e3, -0.97708318797837e2, 0.24742464705674e1,
		-0.63281320016026, 0.11385952129658e1, -0.47811863648625, 0.85208123431544e-2,
		0.93747147377932, 0.33593118604916e1, 0.33809355601454e1, 0.16844539671904,
		0.73875745236695, -0.47128737436186, 0.15020273139707, -0.21764114219750e-2,
		-0.21810755324761e-1, -0.10829784403677, -0.46333324635812e-1, 0.71280351959551e-4,
		0.11032831789999e-3, 0.18955248387902e-3, 0.30891541160537e-2, 0.13555504554949e-2,
		0.28640237477456e-6, -0.10779857357512e-4, -0.76462712454814e-4, 0.14052392818316e-4,
		-0.31083814331434e-4, -0.10302738212103e-5, 0.28217281635040e-6, 0.12704902271945e-5,
		0.73803353468292e-7, -0.11030139238909e-7, -0.81456365207833e-13, -0.25180545682962e-10,
		-0.17565233969407e-17, 0.86934156344163e-14,
	}
)

// 副領域2b の T(p,h) IF97 式(23)
func t2bPH(p, h float64) float64 {
	pi := p - 2
	eta := h/2000 - 2.6
	var T float64
	for i := range n2bph {
		T += n2bph[i] * math.Pow(pi, i2bph[i]) * math.Pow(eta, j2bph[i])
	}
	return T
}

var (
	i2cph = [...]float64{
		-7, -7, -6, -6, -5, -5, -2, -2, -1, -1, 0, 0, 1, 1, 2, 6, 6, 6, 6, 6, 6, 6, 6,
	}
	j2cph = [...]float64{
		0, 4, 0, 2, 0, 2, 0, 1, 0, 2, 0, 1, 4, 8, 4, 0, 1, 4, 10, 12, 16, 20, 22,
	}
	n2cph = [...]float64{
		-0.32368398555242e13, 0.73263350902181e13, 0.35825089945447e12, -0.58340131851590e12,
		-0.10783068217470e11, 0.20825544563171e11, 0.61074783564516e6, 0.85977722535580e6,
		-0.25745723604170e5, 0.31081088422714e5, 0.12082315865936e4, 0.48219755109255e3,
		0.37966001272486e1, -0.10842984880077e2, -0.45364172676660e-1, 0.14559115658698e-12,
		0.11261597407230e-11, -0.17804982240686e-10, 0.12324579690832e-6, -0.11606921130984e-5,
		0.27846367088554e-4, -0.59270038474176e-3, 0.12918582991878e-2,
	}
)

// 副領域2c の T(p,h) IF97 式(24)
func t2cPH(p, h float64) float64 {
	pi := p + 25
	eta := h/2000 - 1.8
	var T float64
	for i := range n2cph {
		T += n2cph[i] * math.Pow(pi, i2cph[i]) * math.Pow(eta, j2cph[i])
	}
	return T
}

// 領域2の T(p,h)。副領域は p と B2bc 曲線で選びます。
func t2PH(p, h float64) float64 {
	if p <= p2ab {
		return t2aPH(p, h)
	}
	if h >= H2bc(p) {
		return t2bPH(p, h)
	}
	return t2cPH(p, h)
}

//--------------------------------------
// 後退方程式 T(p,s) IF97 表25-27
//--------------------------------------

var (
	i2aps = [...]float64{
		-1.5, -1.5, -1.5, -1.5, -1.5, -1.5, -1.25, -1.25, -1.25, -1.0, -1.0, -1.0,
		-1.0, -1.0, -1.0, -0.75, -0.75, -0.5, -0.5, -0.5, -0.5, -0.25, -0.25, -0.25,
		-0.25, 0.25, 0.25, 0.25, 0.25, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5,
		0.75, 0.75, 0.75, 0.75, 1.0, 1.0, 1.25, 1.25, 1.5, 1.5,
	}
	j2aps = [...]float64{
		-24, -23, -19, -13, -11, -10, -19, -15, -6, -26, -21, -17,
		-16, -9, -8, -15, -14, -26, -13, -9, -7, -27, -25, -11,
		-6, 1, 4, 8, 11, 0, 1, 5, 6, 10, 14, 16,
		0, 4, 9, 17, 7, 18, 3, 15, 5, 18,
	}
	n2aps = [...]float64{
		-0.39235983861984e6, 0.51526573827270e6, 0.40482443161048e5, -0.32193790923902e3,
		0.96961424218694e2, -0.22867846371773e2, -0.44942914124357e6, -0.50118336020166e4,
		0.35684463560015, 0.44235335848190e5, -0.13673388811708e5, 0.42163260207864e6,
		0.22516925837475e5, 0.47442144865646e3, -0.14931130797647e3, -0.19781126320452e6,
		-0.23554399470760e5, -0.19070616302076e5, 0.55375669883164e5, 0.38293691437363e4,
		-0.60391860580567e3, 0.19363102620331e4, 0.42660643698610e4, -0.59780638872718e4,
		-0.70401463926862e3, 0.33836784107553e3, 0.20862786635187e2, 0.33834172656196e-1,
		-0.43124428414893e-4, 0.16653791356412e3, -0.13986292055898e3, -0.78849547999872,
		0.72132411753872e-1, -0.59754839398283e-2, -0.12141358953904e-4, 0.23227096733871e-6,
		-0.10538463566194e2, 0.20718925496502e1, -0.72193155260427e-1, 0.20749887081120e-6,
		-0.18340657911379e-1, 0.29036272348696e-6, 0.21037527893619, 0.25681239729999e-3,
		-0.12799002933781e-1, -0.82198102652018e-5,
	}
)

// 副領域2a の T(p,s) IF97 式(25)
func t2aPS(p, s float64) float64 {
	sigma := s/2 - 2
	var T float64
	for i := range n2aps {
		T += n2aps[i] * math.Pow(p, i2aps[i]) * math.Pow(sigma, j2aps[i])
	}
	return T
}

var (
	i2bps = [...]float64{
		-6, -6, -5, -5, -4, -4, -4, -3, -3, -3, -3, -2, -2, -2, -2,
		-1, -1, -1, -1, -1, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1,
		2, 2, 2, 3, 3, 3, 4, 4, 5, 5, 5,
	}
	j2bps = [...]float64{
		0, 11, 0, 11, 0, 1, 11, 0, 1, 11, 12, 0, 1, 6, 10,
		0, 1, 5, 8, 9, 0, 1, 2, 4, 5, 6, 9, 0, 1, 2, 3, 7, 8,
		0, 1, 5, 0, 1, 3, 0, 1, 0, 1, 2,
	}
	n2bps = [...]float64{
		0.31687665083497e6, 0.20864175881858e2, -0.39859399803599e6, -0.21816058518877e2,
		0.22369785194242e6, -0.27841703445817e4, 0.99207436071480e1, -0.75197512299157e5,
		0.29708605951158e4, -0.34406878548526e1, 0.38815564249115, 0.17511295085750e5,
		-0.14237112854449e4, 0.10943803364167e1, 0.89971619308495, -0.33759740098958e4,
		0.47162885818355e3, -0.19188241993679e1, 0.41078580492196, -0.33465378172097,
		0.13870034777505e4, -0.40663326195838e3, 0.41727347159610e2, 0.21932549434532e1,
		-0.10320050009077e1, 0.35882943516703, 0.52511453726066e-2, 0.12838916450705e2,
		-0.28642437219381e1, 0.56912683664855, -0.99962954584931e-1, -0.32632037778459e-2,
		0.23320922576723e-3, -0.15334809857450, 0.29072288239902e-1, 0.37534702741167e-3,
		0.17296691702411e-2, -0.38556050844504e-3, -0.35017712292608e-4, -0.14566393631492e-4,
		0.56420857267269e-5, 0.41286150074605e-7, -0.20684671118824e-7, 0.16409393674725e-8,
	}
)

// 副領域2b の T(p,s) IF97 式(26)
func t2bPS(p, s float64) float64 {
	sigma := 10 - s/0.7853
	var T float64
	for i := range n2bps {
		T += n2bps[i] * math.Pow(p, i2bps[i]) * math.Pow(sigma, j2bps[i])
	}
	return T
}

var (
	i2cps = [...]float64{
		-2, -2, -1, 0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 3,
		3, 3, 4, 4, 4, 5, 5, 5, 6, 6, 7, 7, 7, 7, 7,
	}
	j2cps = [...]float64{
		0, 1, 0, 0, 1, 2, 3, 0, 1, 3, 4, 0, 1, 2, 0,
		1, 5, 0, 1, 4, 0, 1, 2, 0, 1, 0, 1, 3, 4, 5,
	}
	n2cps = [...]float64{
		0.90968501005365e3, 0.24045667088420e4, -0.59162326387130e3, 0.54145404128074e3,
		-0.27098308411192e3, 0.97976525097926e3, -0.46966772959435e3, 0.14399274604723e2,
		-0.19104204230429e2, 0.53299167111971e1, -0.21252975375934e2, -0.31147334413760,
		0.60334840894623, -0.42764839702509e-1, 0.58185597255259e-2, -0.14597008284753e-1,
		0.56631175631027e-2, -0.76155864584577e-4, 0.22440342919332e-3, -0.12561095013413e-4,
		0.63323132660934e-6, -0.20541989675375e-5, 0.36405370390082e-7, -0.29759897789215e-8,
		0.10136618529763e-7, 0.59925719692351e-11, -0.20677870105164e-10, -0.20874278181886e-10,
		0.10162166825089e-9, -0.16429828281347e-9,
	}
)

// 副領域2c の T(p,s) IF97 式(27)
func t2cPS(p, s float64) float64 {
	sigma := 2 - s/2.9251
	var T float64
	for i := range n2cps {
		T += n2cps[i] * math.Pow(p, i2cps[i]) * math.Pow(sigma, j2cps[i])
	}
	return T
}

// 領域2の T(p,s)。副領域は p と s = 5.85 kJ/(kg・K) で選びます。
func t2PS(p, s float64) float64 {
	if p <= p2ab {
		return t2aPS(p, s)
	}
	if s >= s2bc {
		return t2bPS(p, s)
	}
	return t2cPS(p, s)
}
