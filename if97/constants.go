package if97

// IAPWS-IF97 の定数と各領域の境界値

// 水の比ガス定数 [kJ/(kg・K)]
const R = 0.461526

// 臨界点
const (
	Tc   = 647.096 // 臨界温度 [K]
	Pc   = 22.064  // 臨界圧力 [MPa]
	RhoC = 322.0   // 臨界密度 [kg/m3]
)

// 適用範囲の外枠
const (
	tMin  = 273.15  // 最低温度 [K]
	tMax  = 2273.15 // 最高温度 (領域5) [K]
	pMax  = 100.0   // 最高圧力 [MPa]
	p5Max = 50.0    // 領域5の最高圧力 [MPa]
)

// 領域の境界
const (
	t13 = 623.15  // 領域1/3の境界温度 [K]
	t25 = 1073.15 // 領域2/5の境界温度 [K]

	// 623.15 K における飽和圧力 [MPa]
	p13 = 16.5291643

	// 273.15 K における飽和圧力 [MPa]
	pTripleLine = 0.000611213

	// 領域2a/2bの境界圧力 [MPa]
	p2ab = 4.0

	// 領域2b/2cの境界エントロピー [kJ/(kg・K)]
	s2bc = 5.85
)
