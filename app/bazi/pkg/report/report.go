// Package report 将标注后的命盘交给大模型生成文字报告
package report

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"golang.org/x/time/rate"

	"github.com/iWorld-y/bazi_coach/app/bazi/pkg/chart"
	"github.com/iWorld-y/bazi_coach/app/bazi/pkg/config"
	"github.com/iWorld-y/bazi_coach/app/bazi/pkg/logger"
)

// Report 命理报告，三个模块
type Report struct {
	Overview    string `json:"overview"`
	TenGods     string `json:"ten_gods"`
	ActionGuide string `json:"action_guide"`
}

func (r *Report) set(section Section, text string) {
	switch section {
	case SectionOverview:
		r.Overview = text
	case SectionTenGods:
		r.TenGods = text
	case SectionActionGuide:
		r.ActionGuide = text
	}
}

// Generator 报告生成能力
type Generator interface {
	Generate(ctx context.Context, a *chart.Annotated) (*Report, error)
}

// LLMGenerator 基于 OpenAI 协议大模型的报告生成器
type LLMGenerator struct {
	chatModel  model.BaseChatModel
	limiter    *rate.Limiter
	timeout    time.Duration
	maxRetries int
	baseDelay  time.Duration
}

var _ Generator = (*LLMGenerator)(nil)

// NewLLMGenerator 按配置初始化大模型与限流器
func NewLLMGenerator(ctx context.Context, cfg *config.Config) (*LLMGenerator, error) {
	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		BaseURL: cfg.LLM.BaseURL,
		APIKey:  cfg.LLM.APIKey,
		Model:   cfg.LLM.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM 初始化失败: %w", err)
	}
	return New(chatModel, cfg), nil
}

// New 使用给定的大模型创建生成器
func New(chatModel model.BaseChatModel, cfg *config.Config) *LLMGenerator {
	limit := rate.Limit(float64(cfg.Concurrency.RPM) / 60.0)
	burst := cfg.Concurrency.QPS
	if burst < 1 {
		burst = 1
	}
	logger.Log.Debugf("限流器已配置: Limit=%.2f req/s, Burst=%d", limit, burst)

	return &LLMGenerator{
		chatModel:  chatModel,
		limiter:    rate.NewLimiter(limit, burst),
		timeout:    time.Duration(cfg.LLM.Timeout) * time.Second,
		maxRetries: cfg.Retry.MaxRetries,
		baseDelay:  time.Duration(cfg.Retry.BaseDelayMS) * time.Millisecond,
	}
}

// Generate 依次生成各模块，单个模块失败时以提示文字代替
func (g *LLMGenerator) Generate(ctx context.Context, a *chart.Annotated) (*Report, error) {
	if a == nil || a.Chart() == nil {
		return nil, chart.ErrInvalidChart
	}

	r := &Report{}
	for _, section := range Sections {
		logger.Log.Infof("使用大模型生成%s报告", section)
		text, err := g.generateSection(ctx, buildPrompt(section, a))
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			logger.Log.Errorf("生成%s报告出错: %v", section, err)
			text = fallbackText(section)
		}
		r.set(section, text)
	}
	return r, nil
}

func (g *LLMGenerator) generateSection(ctx context.Context, prompt string) (string, error) {
	messages := []*schema.Message{
		schema.SystemMessage(systemPrompt),
		schema.UserMessage(prompt),
	}

	var lastErr error
	for i := 0; i <= g.maxRetries; i++ {
		if i > 0 {
			delay := g.baseDelay * time.Duration(1<<(i-1))
			logger.Log.Warnf("第 %d 次重试，等待 %s: %v", i, delay, lastErr)
			if err := sleep(ctx, delay); err != nil {
				return "", err
			}
		}
		if err := g.limiter.Wait(ctx); err != nil {
			return "", err
		}

		text, err := g.call(ctx, messages)
		if err == nil {
			return text, nil
		}
		if ctx.Err() != nil || !retryable(err) {
			return "", err
		}
		lastErr = err
	}
	return "", fmt.Errorf("failed after %d retries: %w", g.maxRetries, lastErr)
}

var errEmptyResponse = errors.New("empty response from model")

func (g *LLMGenerator) call(ctx context.Context, messages []*schema.Message) (string, error) {
	callCtx := ctx
	if g.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	resp, err := g.chatModel.Generate(callCtx, messages)
	if err != nil {
		return "", err
	}
	content := strings.TrimSpace(resp.Content)
	if content == "" {
		return "", errEmptyResponse
	}
	return content, nil
}

// retryable 限流、超时和空响应可以重试
func retryable(err error) bool {
	if errors.Is(err, errEmptyResponse) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "too many requests") ||
		strings.Contains(msg, "timeout")
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
