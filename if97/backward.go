package if97

//--------------------------------------
// 後退方程式 T(p,h), T(p,s)
//
// いずれも反復計算を行わない陽な式です。
//--------------------------------------

// 圧力 p [MPa] と比エンタルピー h [kJ/kg] から温度 [K] を求めます。
// 湿り蒸気 (領域4) の場合は飽和温度を返します。
// 領域3と領域5は後退方程式を持たないため DomainError になります。
func TPH(p, h float64) (float64, error) {
	r, err := RegionPH(p, h)
	if err != nil {
		return 0, err
	}
	switch r {
	case Region1:
		return t1PH(p, h), nil
	case Region2:
		return t2PH(p, h), nil
	case Region4:
		return tsat(p), nil
	}
	return 0, unsupported("TPH", r)
}

// 圧力 p [MPa] と比エントロピー s [kJ/(kg・K)] から温度 [K] を求めます。
func TPS(p, s float64) (float64, error) {
	r, err := RegionPS(p, s)
	if err != nil {
		return 0, err
	}
	switch r {
	case Region1:
		return t1PS(p, s), nil
	case Region2:
		return t2PS(p, s), nil
	case Region4:
		return tsat(p), nil
	}
	return 0, unsupported("TPS", r)
}
