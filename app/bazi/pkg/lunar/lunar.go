// Package lunar 调用 lunar-go 完成公历到四柱八字的换算
package lunar

import (
	"fmt"

	"github.com/6tail/lunar-go/SolarUtil"
	"github.com/6tail/lunar-go/calendar"
	"github.com/go-kratos/kratos/v2/errors"

	"github.com/iWorld-y/bazi_coach/app/bazi/pkg/chart"
)

// ErrInvalidDate 公历日期或钟点非法
var ErrInvalidDate = errors.BadRequest("INVALID_DATE", "invalid solar date")

// Converter 基于寿星天文历的公历转八字实现，无状态，可并发使用
type Converter struct{}

// NewConverter 创建转换器
func NewConverter() *Converter {
	return &Converter{}
}

// Convert 将公历年月日时换算为命盘
func (c *Converter) Convert(year, month, day, hour int) (ch *chart.Chart, err error) {
	if err = validate(year, month, day, hour); err != nil {
		return nil, err
	}

	// lunar-go 对非法日期直接 panic
	defer func() {
		if r := recover(); r != nil {
			ch, err = nil, invalidDate("lunar library rejected %04d-%02d-%02d: %v", year, month, day, r)
		}
	}()

	solar := calendar.NewSolar(year, month, day, hour, 0, 0)
	l := solar.GetLunar()
	ec := l.GetEightChar()

	stems := [4]string{ec.GetYearGan(), ec.GetMonthGan(), ec.GetDayGan(), ec.GetTimeGan()}
	branches := [4]string{ec.GetYearZhi(), ec.GetMonthZhi(), ec.GetDayZhi(), ec.GetTimeZhi()}
	solarDate := fmt.Sprintf("%d年%d月%d日 %d时", year, month, day, hour)

	ch, err = chart.Parse(stems, branches, solarDate, l.String())
	if err != nil {
		return nil, fmt.Errorf("lunar library returned an unexpected pillar: %w", err)
	}
	return ch, nil
}

func invalidDate(format string, a ...any) error {
	return errors.BadRequest(ErrInvalidDate.Reason, fmt.Sprintf(format, a...))
}

// validate 按 lunar-go 的历法规则校验：1582 年 10 月以前为儒略历，
// 1582-10-05 至 1582-10-14 不存在
func validate(year, month, day, hour int) error {
	if year < 1 || year > 9999 {
		return invalidDate("year %d out of range", year)
	}
	if month < 1 || month > 12 {
		return invalidDate("month %d out of range", month)
	}
	if hour < 0 || hour > 23 {
		return invalidDate("hour %d out of range", hour)
	}
	if day < 1 || day > SolarUtil.GetDaysOfMonth(year, month) {
		return invalidDate("%04d-%02d-%02d is not a calendar date", year, month, day)
	}
	if year == 1582 && month == 10 && day >= 5 && day <= 14 {
		return invalidDate("%04d-%02d-%02d was skipped by the Gregorian reform", year, month, day)
	}
	return nil
}
