package main

import (
	"errors"
	"fmt"

	"github.com/hhkbp2/go-logging"
	"github.com/udawtr/if97-go/if97"
)

// 計算対象の状態点。p と T, h, s のいずれか1つを指定します。
type Point struct {
	P float64  `yaml:"p"` // 圧力 [MPa]
	T *float64 `yaml:"T"` // 温度 [K]
	H *float64 `yaml:"h"` // 比エンタルピー [kJ/kg]
	S *float64 `yaml:"s"` // 比エントロピー [kJ/(kg・K)]
}

// 状態量の組 pair ("pT", "ph", "ps") と値から Point を作ります。
func NewPoint(pair string, p, x float64) Point {
	pt := Point{P: p}
	switch pair {
	case "ph":
		pt.H = &x
	case "ps":
		pt.S = &x
	default:
		pt.T = &x
	}
	return pt
}

// 出力の1行
type Row struct {
	P      float64 `yaml:"p"`
	T      float64 `yaml:"T"`
	Region int     `yaml:"region"`
	V      float64 `yaml:"v"`
	H      float64 `yaml:"h"`
	S      float64 `yaml:"s"`
	Eta    float64 `yaml:"eta"`
	Err    string  `yaml:"error,omitempty"`
}

func rowOf(st if97.State) Row {
	return Row{
		P:      st.P,
		T:      st.T,
		Region: int(st.Region),
		V:      st.V,
		H:      st.H,
		S:      st.S,
		Eta:    st.Eta,
	}
}

var errPointInput = errors.New("exactly one of T, h, s must be given")

func (pt Point) validate() error {
	n := 0
	for _, v := range []*float64{pt.T, pt.H, pt.S} {
		if v != nil {
			n++
		}
	}
	if n != 1 {
		return errPointInput
	}
	return nil
}

func (pt Point) String() string {
	switch {
	case pt.T != nil:
		return fmt.Sprintf("p=%g T=%g", pt.P, *pt.T)
	case pt.H != nil:
		return fmt.Sprintf("p=%g h=%g", pt.P, *pt.H)
	case pt.S != nil:
		return fmt.Sprintf("p=%g s=%g", pt.P, *pt.S)
	}
	return fmt.Sprintf("p=%g", pt.P)
}

// 状態点の物性値を計算します。
// 失敗した点はエラーメッセージを持つ行になります。
func Evaluate(pt Point) Row {
	logger := logging.GetLogger("if97")

	var st if97.State
	err := pt.validate()
	if err == nil {
		switch {
		case pt.T != nil:
			st, err = if97.Props(pt.P, *pt.T)
		case pt.H != nil:
			st, err = if97.PropsPH(pt.P, *pt.H)
		case pt.S != nil:
			st, err = if97.PropsPS(pt.P, *pt.S)
		}
	}
	if err != nil {
		logger.Warnf("%s: %v", pt, err)
		row := Row{P: pt.P, Err: err.Error()}
		if pt.T != nil {
			row.T = *pt.T
		}
		if pt.H != nil {
			row.H = *pt.H
		}
		if pt.S != nil {
			row.S = *pt.S
		}
		return row
	}

	logger.Debugf("%s: %s", pt, st.Region)
	return rowOf(st)
}

// 複数の状態点を順に計算します。
func EvaluateAll(points []Point) []Row {
	rows := make([]Row, len(points))
	for i, pt := range points {
		rows[i] = Evaluate(pt)
	}
	return rows
}
