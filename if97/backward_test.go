package if97

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// IF97 表7, 表24
func Test_TPH(t *testing.T) {
	cases := []struct{ p, h, T float64 }{
		// 領域1
		{3, 500, 0.391798509e3},
		{80, 500, 0.378108626e3},
		{80, 1500, 0.611041229e3},
		// 領域2a
		{0.001, 3000, 0.534433241e3},
		{3, 3000, 0.575373370e3},
		{3, 4000, 0.101077577e4},
		// 領域2b
		{5, 3500, 0.801299102e3},
		{5, 4000, 0.101531583e4},
		{25, 3500, 0.875279054e3},
		// 領域2c
		{40, 2700, 0.743056411e3},
		{60, 2700, 0.791137067e3},
		{60, 3200, 0.882756860e3},
	}
	for _, c := range cases {
		T, err := TPH(c.p, c.h)
		assert.NoError(t, err)
		assert.InDelta(t, c.T, T, 1e-5, "p=%g h=%g", c.p, c.h)
	}
}

// IF97 表9, 表29
func Test_TPS(t *testing.T) {
	cases := []struct{ p, s, T float64 }{
		// 領域1
		{3, 0.5, 0.307842258e3},
		{80, 0.5, 0.309979785e3},
		{80, 3, 0.565899909e3},
		// 領域2a
		{0.1, 7.5, 0.399517097e3},
		{0.1, 8, 0.514127081e3},
		{2.5, 8, 0.103984917e4},
		// 領域2b
		{8, 6, 0.600484040e3},
		{8, 7.5, 0.106495556e4},
		{90, 6, 0.103801126e4},
		// 領域2c
		{20, 5.75, 0.697992849e3},
		{80, 5.25, 0.854011484e3},
		{80, 5.75, 0.949017998e3},
	}
	for _, c := range cases {
		T, err := TPS(c.p, c.s)
		assert.NoError(t, err)
		assert.InDelta(t, c.T, T, 1e-5, "p=%g s=%g", c.p, c.s)
	}
}

// 湿り蒸気は飽和温度
func Test_TPH_TwoPhase(t *testing.T) {
	T, err := TPH(1, 1500)
	assert.NoError(t, err)
	Ts, _ := Tsat(1)
	assert.Equal(t, Ts, T)

	T, err = TPS(1, 4)
	assert.NoError(t, err)
	assert.Equal(t, Ts, T)
}

func Test_TPH_Unsupported(t *testing.T) {
	// 領域3
	_, err := TPH(25, 2000)
	var de *DomainError
	assert.True(t, errors.As(err, &de))
	assert.Equal(t, ReasonUnsupportedRegion, de.Reason)
	assert.Equal(t, Region3, de.Region)

	// 領域5
	_, err = TPH(0.5, 5219.76855)
	assert.True(t, errors.As(err, &de))
	assert.Equal(t, Region5, de.Region)

	_, err = TPS(22, 4.2)
	assert.True(t, errors.As(err, &de))
	assert.Equal(t, Region3, de.Region)

	// 適用範囲外は分類の段階で失敗する
	_, err = TPH(200, 1000)
	assert.True(t, errors.As(err, &de))
	assert.Equal(t, ReasonOutOfRange, de.Reason)
	assert.Equal(t, "RegionPH", de.Op)
}

var roundTripP = []float64{0.01, 0.1, 1, 3, 5, 10, 16, 20, 40, 80}
var roundTripT = []float64{280, 300, 350, 400, 450, 500, 550, 600, 650, 700, 800, 900, 1000, 1070}

// 後退方程式の誤差は IF97 の許容値 (領域1: 25 mK, 領域2: 10-25 mK) 以内
const roundTripTol = 0.025

func Test_TPH_RoundTrip(t *testing.T) {
	for _, p := range roundTripP {
		for _, T := range roundTripT {
			r, err := RegionPT(p, T)
			if err != nil || r == Region5 {
				continue
			}
			h, err := HPT(p, T, r)
			assert.NoError(t, err)
			T2, err := TPH(p, h)
			assert.NoError(t, err)
			assert.InDelta(t, T, T2, roundTripTol, "p=%g T=%g %s", p, T, r)
		}
	}
}

func Test_TPS_RoundTrip(t *testing.T) {
	for _, p := range roundTripP {
		for _, T := range roundTripT {
			r, err := RegionPT(p, T)
			if err != nil || r == Region5 {
				continue
			}
			s, err := SPT(p, T, r)
			assert.NoError(t, err)
			T2, err := TPS(p, s)
			assert.NoError(t, err)
			assert.InDelta(t, T, T2, roundTripTol, "p=%g T=%g %s", p, T, r)
		}
	}
}
