package if97

// State は状態点における物性値です。
type State struct {
	P      float64 // 圧力 [MPa]
	T      float64 // 温度 [K]
	Region Region
	V      float64 // 比体積 [m3/kg]
	H      float64 // 比エンタルピー [kJ/kg]
	S      float64 // 比エントロピー [kJ/(kg・K)]
	Eta    float64 // 粘性係数 [Pa・s]
}

// Props は (p,T) の領域を判定してから物性値を計算します。
// 判定に失敗した場合はその DomainError をそのまま返します。
func Props(p, T float64) (State, error) {
	r, err := RegionPT(p, T)
	if err != nil {
		return State{}, err
	}
	return stateAt("Props", p, T, r)
}

// stateAt は領域 r の式で (p,T) の物性値を計算します。
// r は呼び出し側で判定済みの領域で、ここでは判定し直しません。
func stateAt(op string, p, T float64, r Region) (State, error) {
	e, err := evaluator(op, r)
	if err != nil {
		return State{}, err
	}
	v := e.Volume(p, T)
	eta, err := EtaVT(v, T)
	if err != nil {
		return State{}, err
	}
	return State{
		P:      p,
		T:      T,
		Region: r,
		V:      v,
		H:      e.Enthalpy(p, T),
		S:      e.Entropy(p, T),
		Eta:    eta,
	}, nil
}

// PropsPH は (p,h) から温度を求め、その状態点の物性値を返します。
// 物性値は RegionPH が判定した領域の式で計算します。後退方程式の誤差で
// T が飽和温度の反対側に出ても、相が入れ替わることはありません。
// 湿り蒸気の点は (p,T) から状態が定まらないため DomainError になります。
func PropsPH(p, h float64) (State, error) {
	r, err := RegionPH(p, h)
	if err != nil {
		return State{}, err
	}
	var T float64
	switch r {
	case Region1:
		T = t1PH(p, h)
	case Region2:
		T = t2PH(p, h)
	default:
		return State{}, unsupported("PropsPH", r)
	}
	return stateAt("PropsPH", p, T, r)
}

// PropsPS は (p,s) から温度を求め、その状態点の物性値を返します。
func PropsPS(p, s float64) (State, error) {
	r, err := RegionPS(p, s)
	if err != nil {
		return State{}, err
	}
	var T float64
	switch r {
	case Region1:
		T = t1PS(p, s)
	case Region2:
		T = t2PS(p, s)
	default:
		return State{}, unsupported("PropsPS", r)
	}
	return stateAt("PropsPS", p, T, r)
}
