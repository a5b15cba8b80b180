package chart

import (
	"encoding/json"
	"fmt"

	"github.com/iWorld-y/bazi_coach/app/bazi/pkg/shishen"
)

// annotatedPositions 参与十神标注的柱位，日柱为基准不标注
var annotatedPositions = [...]Position{Year, Month, Hour}

// Annotated 标注了十神的命盘，创建后不可修改
type Annotated struct {
	chart *Chart
	gods  [len(annotatedPositions)]shishen.TenGod
}

// Annotate 以日主为基准计算年、月、时三柱天干的十神
func Annotate(c *Chart) (*Annotated, error) {
	if c == nil {
		return nil, ErrInvalidChart
	}
	dm := c.DayMaster()

	a := &Annotated{chart: c}
	for i, p := range annotatedPositions {
		g, err := shishen.Classify(dm, c.pillars[p].Stem)
		if err != nil {
			return nil, fmt.Errorf("%s god: %w", p, err)
		}
		a.gods[i] = g
	}
	return a, nil
}

// Chart 返回被标注的命盘
func (a *Annotated) Chart() *Chart { return a.chart }

func (a *Annotated) Year() shishen.TenGod  { return a.gods[0] }
func (a *Annotated) Month() shishen.TenGod { return a.gods[1] }
func (a *Annotated) Hour() shishen.TenGod  { return a.gods[2] }

// Gods 按柱位返回三个十神，每次返回新的 map
func (a *Annotated) Gods() map[Position]shishen.TenGod {
	out := make(map[Position]shishen.TenGod, len(annotatedPositions))
	for i, p := range annotatedPositions {
		out[p] = a.gods[i]
	}
	return out
}

type annotatedJSON struct {
	Chart    *Chart         `json:"chart"`
	YearGod  shishen.TenGod `json:"year_god"`
	MonthGod shishen.TenGod `json:"month_god"`
	HourGod  shishen.TenGod `json:"hour_god"`
}

func (a *Annotated) MarshalJSON() ([]byte, error) {
	return json.Marshal(annotatedJSON{
		Chart:    a.chart,
		YearGod:  a.Year(),
		MonthGod: a.Month(),
		HourGod:  a.Hour(),
	})
}
