package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/iWorld-y/bazi_coach/app/bazi/pkg/config"
	"github.com/iWorld-y/bazi_coach/app/bazi/pkg/engine"
	"github.com/iWorld-y/bazi_coach/app/bazi/pkg/logger"
	"github.com/iWorld-y/bazi_coach/app/bazi/pkg/lunar"
	"github.com/iWorld-y/bazi_coach/app/bazi/pkg/report"
	"github.com/iWorld-y/bazi_coach/app/bazi/pkg/shichen"
)

var (
	flagconf  string
	year      int
	month     int
	day       int
	slotName  string
	hour      int
	genReport bool
)

func init() {
	names := make([]string, 0, 12)
	for _, s := range shichen.Slots() {
		names = append(names, s.Name)
	}

	flag.StringVar(&flagconf, "conf", "configs/config.yaml", "config path, eg: -conf config.yaml")
	flag.IntVar(&year, "year", 0, "出生年（公历）")
	flag.IntVar(&month, "month", 0, "出生月（公历）")
	flag.IntVar(&day, "day", 0, "出生日（公历）")
	flag.StringVar(&slotName, "shichen", "", "出生时辰: "+strings.Join(names, " "))
	flag.IntVar(&hour, "hour", -1, "出生钟点 0-23，指定后优先于 -shichen")
	flag.BoolVar(&genReport, "report", false, "调用大模型生成命理报告")
}

func main() {
	flag.Parse()

	// 1. 加载配置，配置文件缺失时使用默认值
	cfg, err := config.LoadConfig(flagconf)
	if errors.Is(err, fs.ErrNotExist) && !genReport {
		cfg, err = config.Default(), nil
	}
	if err != nil {
		log.Fatalf("无法加载配置文件: %v", err)
	}

	// 2. 初始化日志
	if err := logger.InitLogger(cfg.Log.Level, cfg.Log.File); err != nil {
		log.Fatalf("无法初始化日志: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logger.Log.Errorf("排盘失败: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	req := engine.Request{
		Year:     year,
		Month:    month,
		Day:      day,
		TimeSlot: slotName,
		Report:   genReport,
	}
	switch {
	case hour >= 0:
		// 给出钟点时直接排盘，0 点与 23 点的时柱不同
		req.Hour = &hour
	case slotName == "":
		return fmt.Errorf("either -shichen or -hour is required")
	}

	var gen report.Generator
	if genReport {
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("配置错误: %w", err)
		}
		g, err := report.NewLLMGenerator(ctx, cfg)
		if err != nil {
			return err
		}
		gen = g
	}

	eng := engine.NewEngine(lunar.NewConverter(), gen)
	res, err := eng.Run(ctx, req)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
