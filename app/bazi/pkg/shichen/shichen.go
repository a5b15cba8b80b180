// Package shichen 十二时辰与钟点的换算
package shichen

import (
	"fmt"

	"github.com/go-kratos/kratos/v2/errors"
)

var (
	// ErrInvalidTimeSlot 未知的时辰名称
	ErrInvalidTimeSlot = errors.BadRequest("INVALID_TIME_SLOT", "invalid time slot")
	// ErrInvalidHour 钟点不在 0-23 之间
	ErrInvalidHour = errors.BadRequest("INVALID_HOUR", "invalid hour")
)

// Slot 一个时辰
type Slot struct {
	Name  string // 如 "子时"
	Start int    // 起始钟点
	End   int    // 结束钟点（含）
	Hour  int    // 排盘时使用的代表钟点
}

// 子时跨越 23:00-00:59，统一取 23 点
var slots = [...]Slot{
	{Name: "子时", Start: 23, End: 0, Hour: 23},
	{Name: "丑时", Start: 1, End: 2, Hour: 1},
	{Name: "寅时", Start: 3, End: 4, Hour: 3},
	{Name: "卯时", Start: 5, End: 6, Hour: 5},
	{Name: "辰时", Start: 7, End: 8, Hour: 7},
	{Name: "巳时", Start: 9, End: 10, Hour: 9},
	{Name: "午时", Start: 11, End: 12, Hour: 11},
	{Name: "未时", Start: 13, End: 14, Hour: 13},
	{Name: "申时", Start: 15, End: 16, Hour: 15},
	{Name: "酉时", Start: 17, End: 18, Hour: 17},
	{Name: "戌时", Start: 19, End: 20, Hour: 19},
	{Name: "亥时", Start: 21, End: 22, Hour: 21},
}

// Slots 按子丑寅卯…亥的顺序返回十二时辰
func Slots() []Slot {
	out := make([]Slot, len(slots))
	copy(out, slots[:])
	return out
}

// Lookup 按名称查找时辰
func Lookup(name string) (Slot, error) {
	for _, s := range slots {
		if s.Name == name {
			return s, nil
		}
	}
	return Slot{}, errors.BadRequest(ErrInvalidTimeSlot.Reason, fmt.Sprintf("invalid time slot %q", name))
}

// ResolveHour 返回时辰对应的代表钟点
func ResolveHour(name string) (int, error) {
	s, err := Lookup(name)
	if err != nil {
		return 0, err
	}
	return s.Hour, nil
}

// SlotOfHour 返回钟点所在的时辰，23 点与 0 点均属子时
func SlotOfHour(hour int) (Slot, error) {
	if hour < 0 || hour > 23 {
		return Slot{}, errors.BadRequest(ErrInvalidHour.Reason, fmt.Sprintf("invalid hour %d", hour))
	}
	return slots[(hour+1)/2%12], nil
}
