package main

import (
	"gonum.org/v1/gonum/floats"
)

// 圧力 p [MPa] 一定で tMin から tMax [K] まで n 点の物性値を計算します。
func Sweep(p, tMin, tMax float64, n int) []Row {
	temps := floats.Span(make([]float64, n), tMin, tMax)
	points := make([]Point, n)
	for i := range temps {
		points[i] = Point{P: p, T: &temps[i]}
	}
	return EvaluateAll(points)
}
