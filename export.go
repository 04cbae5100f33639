package main

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"gopkg.in/yaml.v3"
)

// CSV形式
func ToCSV(buf *bytes.Buffer, rows []Row) error {
	w := csv.NewWriter(buf)
	w.Write([]string{"p", "T", "region", "v", "h", "s", "eta", "error"})

	formatFloat := func(v float64) string {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	// エラー行は入力した状態量だけを書く
	inputFloat := func(v float64) string {
		if v == 0 {
			return ""
		}
		return formatFloat(v)
	}
	for _, r := range rows {
		if r.Err != "" {
			w.Write([]string{formatFloat(r.P), inputFloat(r.T), "", "", inputFloat(r.H), inputFloat(r.S), "", r.Err})
			continue
		}
		w.Write([]string{
			formatFloat(r.P),
			formatFloat(r.T),
			strconv.Itoa(r.Region),
			formatFloat(r.V),
			formatFloat(r.H),
			formatFloat(r.S),
			formatFloat(r.Eta),
			"",
		})
	}
	w.Flush()
	return w.Error()
}

// YAML形式
func ToYAML(buf *bytes.Buffer, rows []Row) error {
	enc := yaml.NewEncoder(buf)
	enc.SetIndent(2)
	if err := enc.Encode(map[string][]Row{"states": rows}); err != nil {
		return err
	}
	return enc.Close()
}
