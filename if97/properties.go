package if97

//--------------------------------------
// 順方向の物性値計算 v(p,T), h(p,T), s(p,T)
//--------------------------------------

// Evaluator は領域ごとの順方向の物性値計算です。
// p [MPa], T [K] を受け取ります。
type Evaluator interface {
	Region() Region
	Volume(p, T float64) float64   // 比体積 [m3/kg]
	Enthalpy(p, T float64) float64 // 比エンタルピー [kJ/kg]
	Entropy(p, T float64) float64  // 比エントロピー [kJ/(kg・K)]
}

// For は領域 r の Evaluator を返します。
// 領域3と4は順方向の式を持たないため DomainError になります。
func For(r Region) (Evaluator, error) {
	return evaluator("For", r)
}

func evaluator(op string, r Region) (Evaluator, error) {
	switch r {
	case Region1:
		return region1{}, nil
	case Region2:
		return region2{}, nil
	case Region5:
		return region5{}, nil
	case Region3, Region4:
		return nil, unsupported(op, r)
	}
	return nil, unknownRegion(op, r)
}

// 比体積 [m3/kg]
// region は RegionPT の結果をそのまま渡してください。(p,T) との整合は検査しません。
func VPT(p, T float64, region Region) (float64, error) {
	e, err := evaluator("VPT", region)
	if err != nil {
		return 0, err
	}
	return e.Volume(p, T), nil
}

// 比エントロピー [kJ/(kg・K)]
func SPT(p, T float64, region Region) (float64, error) {
	e, err := evaluator("SPT", region)
	if err != nil {
		return 0, err
	}
	return e.Entropy(p, T), nil
}

// 比エンタルピー [kJ/kg]
func HPT(p, T float64, region Region) (float64, error) {
	e, err := evaluator("HPT", region)
	if err != nil {
		return 0, err
	}
	return e.Enthalpy(p, T), nil
}
