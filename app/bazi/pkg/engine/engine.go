package engine

import (
	"context"
	"fmt"

	"github.com/iWorld-y/bazi_coach/app/bazi/pkg/chart"
	"github.com/iWorld-y/bazi_coach/app/bazi/pkg/logger"
	"github.com/iWorld-y/bazi_coach/app/bazi/pkg/report"
	"github.com/iWorld-y/bazi_coach/app/bazi/pkg/shichen"
)

// SolarToBaziConverter 公历转八字
type SolarToBaziConverter interface {
	Convert(year, month, day, hour int) (*chart.Chart, error)
}

// Engine 排盘引擎：时辰 → 八字 → 十神 → 报告
type Engine struct {
	converter SolarToBaziConverter
	generator report.Generator
}

// NewEngine 创建引擎实例，generator 可为 nil，此时只排盘不生成报告
func NewEngine(converter SolarToBaziConverter, generator report.Generator) *Engine {
	return &Engine{converter: converter, generator: generator}
}

// Request 出生信息
type Request struct {
	Year     int
	Month    int
	Day      int
	TimeSlot string // 时辰名称，如 "午时"
	Hour     *int   // 出生钟点 0-23，设置后优先于 TimeSlot
	Report   bool   // 是否生成文字报告
}

// hour 返回交给转换器的钟点：给出钟点时原样使用，只给时辰时取代表钟点
func (r Request) hour() (int, error) {
	if r.Hour == nil {
		return shichen.ResolveHour(r.TimeSlot)
	}
	if _, err := shichen.SlotOfHour(*r.Hour); err != nil {
		return 0, err
	}
	return *r.Hour, nil
}

// Result 排盘结果
type Result struct {
	Chart  *chart.Annotated `json:"chart"`
	Report *report.Report   `json:"report,omitempty"`
}

// Run 执行一次排盘，任何非法输入都会中止并返回具体错误
func (e *Engine) Run(ctx context.Context, req Request) (*Result, error) {
	hour, err := req.hour()
	if err != nil {
		return nil, err
	}

	c, err := e.converter.Convert(req.Year, req.Month, req.Day, hour)
	if err != nil {
		return nil, fmt.Errorf("计算八字出错: %w", err)
	}

	annotated, err := chart.Annotate(c)
	if err != nil {
		return nil, fmt.Errorf("计算十神出错: %w", err)
	}
	logger.Log.WithField("hour", hour).Infof("排盘完成: %s", c)

	result := &Result{Chart: annotated}
	if !req.Report {
		return result, nil
	}
	if e.generator == nil {
		return nil, fmt.Errorf("report generator not configured")
	}

	r, err := e.generator.Generate(ctx, annotated)
	if err != nil {
		return nil, fmt.Errorf("生成报告出错: %w", err)
	}
	result.Report = r
	return result, nil
}
