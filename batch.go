package main

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// batch の入力ファイル
//
//	points:
//	  - {p: 3, T: 300}
//	  - {p: 3, h: 3000}
//	  - {p: 80, s: 0.5}
type batchFile struct {
	Points []Point `yaml:"points"`
}

// YAML から状態点の一覧を読み込みます。
func LoadPoints(data []byte) ([]Point, error) {
	var f batchFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("batch file: %w", err)
	}
	for i, pt := range f.Points {
		if err := pt.validate(); err != nil {
			return nil, fmt.Errorf("batch file: point %d (%s): %w", i, pt, err)
		}
	}
	return f.Points, nil
}
