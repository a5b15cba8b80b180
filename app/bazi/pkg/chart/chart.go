// Package chart 四柱八字命盘及十神标注
package chart

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-kratos/kratos/v2/errors"

	"github.com/iWorld-y/bazi_coach/app/bazi/pkg/wuxing"
)

// ErrInvalidChart 命盘为空或柱数不对
var ErrInvalidChart = errors.BadRequest("INVALID_CHART", "invalid bazi chart")

// Position 柱位
type Position uint8

const (
	Year  Position = iota // 年柱
	Month                 // 月柱
	Day                   // 日柱
	Hour                  // 时柱
)

// Positions 年、月、日、时，顺序固定
var Positions = [...]Position{Year, Month, Day, Hour}

var positionNames = [...]string{Year: "year", Month: "month", Day: "day", Hour: "hour"}

func (p Position) String() string {
	if int(p) >= len(positionNames) {
		return "?"
	}
	return positionNames[p]
}

// MarshalText 用作 JSON map 的键
func (p Position) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Pillar 一柱：天干 + 地支
type Pillar struct {
	Stem   wuxing.Stem   `json:"stem"`
	Branch wuxing.Branch `json:"branch"`
}

func (p Pillar) String() string {
	return p.Stem.String() + p.Branch.String()
}

func (p Pillar) check() error {
	if err := p.Stem.Check(); err != nil {
		return err
	}
	return p.Branch.Check()
}

// Chart 命盘，创建后不可修改
type Chart struct {
	pillars   [4]Pillar
	solarDate string
	lunarDate string
}

// New 由四柱创建命盘，任意一柱非法都会返回错误
func New(pillars [4]Pillar, solarDate, lunarDate string) (*Chart, error) {
	for i, p := range pillars {
		if err := p.check(); err != nil {
			return nil, fmt.Errorf("%s pillar: %w", Position(i), err)
		}
	}
	return &Chart{pillars: pillars, solarDate: solarDate, lunarDate: lunarDate}, nil
}

// Parse 由年月日时的干支文字创建命盘
func Parse(stems, branches [4]string, solarDate, lunarDate string) (*Chart, error) {
	var pillars [4]Pillar
	for i := range pillars {
		s, err := wuxing.ParseStem(stems[i])
		if err != nil {
			return nil, fmt.Errorf("%s pillar: %w", Position(i), err)
		}
		b, err := wuxing.ParseBranch(branches[i])
		if err != nil {
			return nil, fmt.Errorf("%s pillar: %w", Position(i), err)
		}
		pillars[i] = Pillar{Stem: s, Branch: b}
	}
	return &Chart{pillars: pillars, solarDate: solarDate, lunarDate: lunarDate}, nil
}

// Pillar 返回指定柱位，柱位越界时返回零值（天干地支均非法）
func (c *Chart) Pillar(p Position) Pillar {
	if int(p) >= len(c.pillars) {
		return Pillar{}
	}
	return c.pillars[p]
}

// Pillars 返回四柱的副本
func (c *Chart) Pillars() [4]Pillar {
	return c.pillars
}

// DayMaster 日主，即日柱天干
func (c *Chart) DayMaster() wuxing.Stem {
	return c.pillars[Day].Stem
}

func (c *Chart) SolarDate() string { return c.solarDate }

func (c *Chart) LunarDate() string { return c.lunarDate }

// String 返回 "年柱 月柱 日柱 时柱"，如 "己卯 丙子 戊午 戊午"
func (c *Chart) String() string {
	parts := make([]string, len(c.pillars))
	for i, p := range c.pillars {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}

type chartJSON struct {
	Bazi      string              `json:"bazi"`
	Pillars   map[Position]Pillar `json:"pillars"`
	DayMaster wuxing.Stem         `json:"day_master"`
	SolarDate string              `json:"solar_date"`
	LunarDate string              `json:"lunar_date"`
}

func (c *Chart) MarshalJSON() ([]byte, error) {
	out := chartJSON{
		Bazi:      c.String(),
		Pillars:   make(map[Position]Pillar, len(c.pillars)),
		DayMaster: c.DayMaster(),
		SolarDate: c.solarDate,
		LunarDate: c.lunarDate,
	}
	for _, p := range Positions {
		out.Pillars[p] = c.pillars[p]
	}
	return json.Marshal(out)
}
