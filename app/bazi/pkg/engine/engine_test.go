package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/iWorld-y/bazi_coach/app/bazi/pkg/chart"
	"github.com/iWorld-y/bazi_coach/app/bazi/pkg/report"
	"github.com/iWorld-y/bazi_coach/app/bazi/pkg/shichen"
	"github.com/iWorld-y/bazi_coach/app/bazi/pkg/shishen"
	"github.com/iWorld-y/bazi_coach/app/bazi/pkg/wuxing"
)

// mockConverter 记录调用参数并返回固定干支
type mockConverter struct {
	stems    [4]string
	branches [4]string
	err      error

	calls []int
}

func (m *mockConverter) Convert(year, month, day, hour int) (*chart.Chart, error) {
	m.calls = append(m.calls, hour)
	if m.err != nil {
		return nil, m.err
	}
	return chart.Parse(m.stems, m.branches, "", "")
}

type mockGenerator struct {
	got *chart.Annotated
	err error
}

func (m *mockGenerator) Generate(ctx context.Context, a *chart.Annotated) (*report.Report, error) {
	m.got = a
	if m.err != nil {
		return nil, m.err
	}
	return &report.Report{Overview: "概览"}, nil
}

func newConverter() *mockConverter {
	return &mockConverter{
		stems:    [4]string{"丙", "庚", "甲", "辛"},
		branches: [4]string{"寅", "午", "子", "未"},
	}
}

func TestEngine_Run(t *testing.T) {
	conv := newConverter()
	e := NewEngine(conv, nil)

	res, err := e.Run(context.Background(), Request{Year: 1986, Month: 6, Day: 15, TimeSlot: "子时"})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(conv.calls) != 1 || conv.calls[0] != 23 {
		t.Errorf("converter hours = %v, want [23]", conv.calls)
	}
	if res.Chart.Year() != shishen.ShiShen || res.Chart.Month() != shishen.QiSha || res.Chart.Hour() != shishen.ZhengGuan {
		t.Errorf("gods = %s %s %s", res.Chart.Year(), res.Chart.Month(), res.Chart.Hour())
	}
	if res.Report != nil {
		t.Errorf("Report = %+v, want nil", res.Report)
	}
}

func TestEngine_RunInvalidSlot(t *testing.T) {
	conv := newConverter()
	e := NewEngine(conv, nil)

	_, err := e.Run(context.Background(), Request{Year: 1986, Month: 6, Day: 15, TimeSlot: "unknown"})
	if !errors.Is(err, shichen.ErrInvalidTimeSlot) {
		t.Errorf("Run() error = %v, want ErrInvalidTimeSlot", err)
	}
	if len(conv.calls) != 0 {
		t.Errorf("converter called %d times after invalid slot", len(conv.calls))
	}
}

func TestEngine_RunInvalidStem(t *testing.T) {
	conv := newConverter()
	conv.stems[2] = "?"
	gen := &mockGenerator{}
	e := NewEngine(conv, gen)

	_, err := e.Run(context.Background(), Request{Year: 1986, Month: 6, Day: 15, TimeSlot: "午时", Report: true})
	if !errors.Is(err, wuxing.ErrInvalidStem) {
		t.Errorf("Run() error = %v, want ErrInvalidStem", err)
	}
	if gen.got != nil {
		t.Error("generator called for an invalid chart")
	}
}

func TestEngine_RunWithReport(t *testing.T) {
	gen := &mockGenerator{}
	e := NewEngine(newConverter(), gen)

	res, err := e.Run(context.Background(), Request{Year: 1986, Month: 6, Day: 15, TimeSlot: "午时", Report: true})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.Report == nil || res.Report.Overview != "概览" {
		t.Errorf("Report = %+v", res.Report)
	}
	if gen.got != res.Chart {
		t.Error("generator did not receive the annotated chart")
	}
}

func TestEngine_RunReportErrors(t *testing.T) {
	boom := errors.New("boom")
	e := NewEngine(newConverter(), &mockGenerator{err: boom})
	if _, err := e.Run(context.Background(), Request{Year: 1986, Month: 6, Day: 15, TimeSlot: "午时", Report: true}); !errors.Is(err, boom) {
		t.Errorf("Run() error = %v, want boom", err)
	}

	e = NewEngine(newConverter(), nil)
	if _, err := e.Run(context.Background(), Request{Year: 1986, Month: 6, Day: 15, TimeSlot: "午时", Report: true}); err == nil {
		t.Error("Run() without generator: want error")
	}
}

func TestEngine_RunConverterError(t *testing.T) {
	conv := newConverter()
	conv.err = errors.New("lunar failed")
	e := NewEngine(conv, nil)

	if _, err := e.Run(context.Background(), Request{Year: 1986, Month: 6, Day: 15, TimeSlot: "午时"}); !errors.Is(err, conv.err) {
		t.Errorf("Run() error = %v, want converter error", err)
	}
}

func intPtr(v int) *int { return &v }

// 给出钟点时原样交给转换器，0 点不能被折算成当天 23 点
func TestEngine_RunCivilHour(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want int
	}{
		{"midnight", Request{Year: 2000, Month: 1, Day: 2, Hour: intPtr(0)}, 0},
		{"hour overrides slot", Request{Year: 2000, Month: 1, Day: 2, TimeSlot: "子时", Hour: intPtr(12)}, 12},
		{"late zi", Request{Year: 2000, Month: 1, Day: 2, Hour: intPtr(23)}, 23},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conv := newConverter()
			if _, err := NewEngine(conv, nil).Run(context.Background(), tt.req); err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if len(conv.calls) != 1 || conv.calls[0] != tt.want {
				t.Errorf("converter hours = %v, want [%d]", conv.calls, tt.want)
			}
		})
	}
}

func TestEngine_RunInvalidHour(t *testing.T) {
	conv := newConverter()
	_, err := NewEngine(conv, nil).Run(context.Background(), Request{Year: 2000, Month: 1, Day: 2, Hour: intPtr(24)})
	if !errors.Is(err, shichen.ErrInvalidHour) {
		t.Errorf("Run() error = %v, want ErrInvalidHour", err)
	}
	if len(conv.calls) != 0 {
		t.Errorf("converter called %d times after invalid hour", len(conv.calls))
	}
}
