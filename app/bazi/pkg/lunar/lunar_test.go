package lunar

import (
	"testing"

	"github.com/go-kratos/kratos/v2/errors"

	"github.com/iWorld-y/bazi_coach/app/bazi/pkg/chart"
)

func TestConvert(t *testing.T) {
	c, err := NewConverter().Convert(2000, 1, 1, 12)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	// 2000-01-01 午时：己卯年 丙子月 戊午日 戊午时
	if got := c.String(); got != "己卯 丙子 戊午 戊午" {
		t.Errorf("Convert() bazi = %q, want 己卯 丙子 戊午 戊午", got)
	}
	if got := c.SolarDate(); got != "2000年1月1日 12时" {
		t.Errorf("SolarDate() = %q", got)
	}
	if c.LunarDate() == "" {
		t.Error("LunarDate() is empty")
	}
}

func TestConvertFeedsAnnotate(t *testing.T) {
	c, err := NewConverter().Convert(1990, 6, 15, 9)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	a, err := chart.Annotate(c)
	if err != nil {
		t.Fatalf("Annotate() error = %v", err)
	}
	if len(a.Gods()) != 3 {
		t.Errorf("Annotate() produced %d labels, want 3", len(a.Gods()))
	}
}

func TestConvertInvalidDate(t *testing.T) {
	tests := []struct {
		year, month, day, hour int
	}{
		{2023, 2, 29, 0},
		{2024, 13, 1, 0},
		{2024, 4, 31, 0},
		{2024, 1, 1, 24},
		{2024, 1, 1, -1},
		{0, 1, 1, 0},
		{1582, 10, 5, 12},
		{1582, 10, 10, 12},
		{1582, 10, 14, 12},
		{1900, 2, 29, 0},
	}
	for _, tt := range tests {
		_, err := NewConverter().Convert(tt.year, tt.month, tt.day, tt.hour)
		if !errors.Is(err, ErrInvalidDate) {
			t.Errorf("Convert(%d, %d, %d, %d) error = %v, want ErrInvalidDate", tt.year, tt.month, tt.day, tt.hour, err)
		}
	}
}

// 1582 年 10 月以前按儒略历，1000 年为闰年
func TestConvertJulianDates(t *testing.T) {
	tests := []struct {
		year, month, day, hour int
	}{
		{1000, 2, 29, 12},
		{1500, 2, 29, 0},
		{1582, 10, 4, 12},
		{1582, 10, 15, 12},
	}
	for _, tt := range tests {
		c, err := NewConverter().Convert(tt.year, tt.month, tt.day, tt.hour)
		if err != nil {
			t.Errorf("Convert(%d, %d, %d, %d) error = %v", tt.year, tt.month, tt.day, tt.hour, err)
			continue
		}
		if _, err := chart.Annotate(c); err != nil {
			t.Errorf("Annotate(%d-%d-%d) error = %v", tt.year, tt.month, tt.day, err)
		}
	}
}

// 0 点与前一日 23 点同属子时，但时干取自不同的日干
func TestConvertMidnight(t *testing.T) {
	early, err := NewConverter().Convert(2000, 1, 2, 0)
	if err != nil {
		t.Fatalf("Convert(2000-01-02 00) error = %v", err)
	}
	if got := early.Pillar(chart.Hour).String(); got != "甲子" {
		t.Errorf("00:00 hour pillar = %s, want 甲子", got)
	}

	late, err := NewConverter().Convert(2000, 1, 2, 23)
	if err != nil {
		t.Fatalf("Convert(2000-01-02 23) error = %v", err)
	}
	if got := late.Pillar(chart.Hour).String(); got != "丙子" {
		t.Errorf("23:00 hour pillar = %s, want 丙子", got)
	}
}
