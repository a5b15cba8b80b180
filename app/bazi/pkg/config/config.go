package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// APIKeyEnv 设置后覆盖配置文件中的 llm.api_key
const APIKeyEnv = "DEEPSEEK_API_KEY"

// Config 项目配置结构体
type Config struct {
	LLM         LLMConfig         `yaml:"llm"`
	Log         LogConfig         `yaml:"log"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Retry       RetryConfig       `yaml:"retry"`
}

// LLMConfig LLM 相关配置，DeepSeek 兼容 OpenAI 协议
type LLMConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	Timeout int    `yaml:"timeout"` // 单次请求超时，秒
}

// LogConfig 日志相关配置
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// ConcurrencyConfig 并发控制配置
type ConcurrencyConfig struct {
	QPS int `yaml:"qps"`
	RPM int `yaml:"rpm"`
}

// RetryConfig 调用 LLM 的重试配置
type RetryConfig struct {
	MaxRetries  int `yaml:"max_retries"`
	BaseDelayMS int `yaml:"base_delay_ms"`
}

// Default 返回默认配置，与原 Flask 版本的取值一致
func Default() *Config {
	return &Config{
		LLM: LLMConfig{
			BaseURL: "https://api.deepseek.com/v1",
			Model:   "deepseek-chat",
			Timeout: 120,
		},
		Log: LogConfig{
			Level: "info",
		},
		Concurrency: ConcurrencyConfig{
			QPS: 1,
			RPM: 60,
		},
		Retry: RetryConfig{
			MaxRetries:  3,
			BaseDelayMS: 2000,
		},
	}
}

// LoadConfig 从指定路径加载配置，未填写的字段取默认值
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.applyEnv()

	return cfg, nil
}

func (c *Config) applyEnv() {
	if key := os.Getenv(APIKeyEnv); key != "" {
		c.LLM.APIKey = key
	}
}

// Validate 校验生成报告所需的配置
func (c *Config) Validate() error {
	if c.LLM.BaseURL == "" {
		return fmt.Errorf("llm.base_url is missing")
	}
	if c.LLM.APIKey == "" {
		return fmt.Errorf("llm.api_key is missing (or set %s)", APIKeyEnv)
	}
	if c.LLM.Model == "" {
		return fmt.Errorf("llm.model is missing")
	}
	if c.Concurrency.RPM <= 0 || c.Concurrency.QPS <= 0 {
		return fmt.Errorf("concurrency.qps and concurrency.rpm must be positive")
	}
	if c.Retry.MaxRetries < 0 {
		return fmt.Errorf("retry.max_retries must not be negative")
	}
	return nil
}
