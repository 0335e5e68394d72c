// Command spice evaluates a fixed set of sample expressions and prints
// their values. It exists to exercise the library; there is no parser, so
// the samples are built in code.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/kr/pretty"
	"github.com/magical/spice"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type sample struct {
	expr    spice.Expr
	wantErr bool
}

func lit(n int64) *spice.IntLit { return &spice.IntLit{Value: n} }

func arith(op spice.BinArithOp, a, b int64) *spice.BinArith {
	return &spice.BinArith{Op: op, Left: lit(a), Right: lit(b)}
}

var samples = []sample{
	{expr: &spice.Arith{X: arith(spice.OpAdd, 1, 1)}},
	{expr: &spice.Arith{X: arith(spice.OpIntDiv, 4, 2)}},
	{expr: &spice.Bool{X: &spice.ArithCmp{Op: spice.CmpLt, Left: lit(2), Right: lit(4)}}},
	{expr: &spice.Bool{X: &spice.BinBool{Op: spice.LogicAnd, Left: &spice.BoolLit{Value: true}, Right: &spice.BoolLit{Value: false}}}},
	{expr: &spice.Bool{X: &spice.Not{X: &spice.BoolLit{Value: true}}}},
	{expr: &spice.Bool{X: &spice.BoolLit{Value: true}}},
	{expr: &spice.Arith{X: &spice.BinArith{
		Op:    spice.OpMul,
		Left:  arith(spice.OpSub, 7, 2),
		Right: arith(spice.OpIntDiv, -9, 2),
	}}},
	{expr: &spice.Arith{X: arith(spice.OpIntDiv, 1, 0)}, wantErr: true},
	{expr: &spice.Arith{X: arith(spice.OpAdd, 1<<62, 1<<62)}, wantErr: true},
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := spice.DefaultConfig()
	var (
		dump     bool
		logLevel string
	)
	flag.IntVarP(&cfg.Workers, "workers", "w", cfg.Workers, "number of trees evaluated at once")
	flag.IntVar(&cfg.MaxDepth, "max-depth", cfg.MaxDepth, "reject trees deeper than this (0 = no limit)")
	flag.BoolVarP(&dump, "dump", "d", false, "pretty-print each tree before evaluating it")
	flag.StringVar(&logLevel, "log-level", "INFO", "log level (DEBUG, INFO, WARN, ERROR)")
	flag.Parse()

	logger := setupLogger(logLevel)
	defer logger.Sync()
	cfg.Logger = logger

	exprs := make([]spice.Expr, len(samples))
	for i, s := range samples {
		exprs[i] = s.expr
		if dump {
			pretty.Println(s.expr)
		}
	}

	results, err := spice.EvalAll(context.Background(), cfg, exprs)
	if err != nil {
		return err
	}

	failed := 0
	for i, r := range results {
		text := spice.Format(samples[i].expr)
		if r.Err != nil {
			fmt.Printf("%s : error: %v\n", text, r.Err)
		} else {
			fmt.Printf("%s = %v\n", text, r.Value)
		}
		if (r.Err != nil) != samples[i].wantErr {
			logger.Error("unexpected result", zap.String("expr", text), zap.Error(r.Err))
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d samples gave unexpected results", failed, len(samples))
	}
	return nil
}

func setupLogger(level string) *zap.Logger {
	al := zap.NewAtomicLevel()
	switch strings.ToUpper(level) {
	case "DEBUG":
		al.SetLevel(zap.DebugLevel)
	case "WARN":
		al.SetLevel(zap.WarnLevel)
	case "ERROR":
		al.SetLevel(zap.ErrorLevel)
	default:
		al.SetLevel(zap.InfoLevel)
	}
	ec := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(os.Stderr), al)
	return zap.New(core)
}
