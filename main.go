// if97
package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/akamensky/argparse"
	"github.com/hhkbp2/go-logging"
)

func main() {
	// コマンドライン引数の処理
	parser := argparse.NewParser("if97", "Computes properties of water and steam with IAPWS-IF97")

	p := parser.FloatPositional(&argparse.Options{
		Default: 0.101325,
		Help:    "圧力 [MPa]"})

	x := parser.FloatPositional(&argparse.Options{
		Default: 298.15,
		Help:    "2つ目の状態量 (温度 [K], 比エンタルピー [kJ/kg] または 比エントロピー [kJ/(kg・K)])"})

	pair := parser.Selector("", "pair", []string{"pT", "ph", "ps"}, &argparse.Options{
		Default: "pT",
		Help:    "状態量の組 pT(デフォルト), ph, ps"})

	mode := parser.Selector("", "mode", []string{"point", "sweep", "batch"}, &argparse.Options{
		Default: "point",
		Help:    "計算モード 1点=point(デフォルト), 温度掃引=sweep, ファイル一括=batch"})

	tMin := parser.Float("", "t_min", &argparse.Options{
		Default: 280.0,
		Help:    "sweep の開始温度 [K]"})

	tMax := parser.Float("", "t_max", &argparse.Options{
		Default: 1000.0,
		Help:    "sweep の終了温度 [K]"})

	n := parser.Int("n", "num", &argparse.Options{
		Default: 50,
		Help:    "sweep の分割数"})

	input := parser.String("i", "input", &argparse.Options{
		Default: "",
		Help:    "batch の入力ファイル (YAML)"})

	filename := parser.String("o", "output", &argparse.Options{
		Default: "",
		Help:    "保存ファイルパス"})

	format := parser.Selector("f", "file", []string{"CSV", "YAML"}, &argparse.Options{
		Default: "CSV",
		Help:    "出力形式 CSV or YAML"})

	log := parser.Selector("", "log", []string{"DEBUG", "INFO", "WARN", "ERROR", "CRITICAL"}, &argparse.Options{
		Default: "ERROR",
		Help:    "ログレベルの設定"})

	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(2)
	}

	// ログレベル設定
	logger := logging.GetLogger("if97")
	if *log == "DEBUG" {
		logger.SetLevel(logging.LevelDebug)
	} else if *log == "INFO" {
		logger.SetLevel(logging.LevelInfo)
	} else if *log == "WARN" {
		logger.SetLevel(logging.LevelWarn)
	} else if *log == "ERROR" {
		logger.SetLevel(logging.LevelError)
	} else if *log == "CRITICAL" {
		logger.SetLevel(logging.LevelCritical)
	}

	// 計算
	var rows []Row
	switch *mode {
	case "point":
		rows = []Row{Evaluate(NewPoint(*pair, *p, *x))}
	case "sweep":
		if *n < 2 || *tMax <= *tMin {
			fmt.Fprintln(os.Stderr, "Error: sweep needs num >= 2 and t_max > t_min")
			os.Exit(1)
		}
		rows = Sweep(*p, *tMin, *tMax, *n)
	case "batch":
		if *input == "" {
			fmt.Fprintln(os.Stderr, "Error: batch mode needs --input")
			os.Exit(1)
		}
		data, err := os.ReadFile(*input)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		points, err := LoadPoints(data)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		logger.Infof("%d 点を読み込みました: %s", len(points), *input)
		rows = EvaluateAll(points)
	}

	// 保存
	var buf *bytes.Buffer = bytes.NewBuffer([]byte{})
	if *format == "CSV" {
		err = ToCSV(buf, rows)
	} else if *format == "YAML" {
		err = ToYAML(buf, rows)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	if *filename == "" {
		fmt.Print(buf.String())
	} else {
		logger.Infof("保存: %s", *filename)
		err := os.WriteFile(*filename, buf.Bytes(), 0644)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
	}

	logger.Infof("計算が終了しました")
}
