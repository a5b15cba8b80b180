// Package logger 提供全局 logrus 实例及排盘程序使用的单行日志格式
package logger

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log 全局日志实例，未初始化时输出到标准错误
var Log = logrus.New()

const timeLayout = "2006-01-02 15:04:05"

// CustomFormatter 单行格式：[时间] [级别] [文件:行] 消息 k=v...
type CustomFormatter struct{}

func (f *CustomFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "[%s] [%s] [%s] %s",
		entry.Time.Format(timeLayout), levelTag(entry.Level), callerOf(entry), entry.Message)
	writeFields(&buf, entry.Data)
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// levelTag 级别统一为四个字母，如 WARN、ERRO
func levelTag(l logrus.Level) string {
	tag := strings.ToUpper(l.String())
	if len(tag) > 4 {
		return tag[:4]
	}
	return tag
}

func callerOf(entry *logrus.Entry) string {
	if !entry.HasCaller() {
		return ""
	}
	return fmt.Sprintf("%s:%d", filepath.Base(entry.Caller.File), entry.Caller.Line)
}

func writeFields(buf *bytes.Buffer, data logrus.Fields) {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(buf, " %s=%v", k, data[k])
	}
}

// InitLogger 重建 Log。日志写标准错误，filePath 非空时另追加写入该文件；
// 级别无法解析时按 info 处理
func InitLogger(levelStr string, filePath string) error {
	l := logrus.New()
	l.SetReportCaller(true)
	l.SetFormatter(&CustomFormatter{})

	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	out := io.Writer(os.Stderr)
	if filePath != "" {
		f, err := openLogFile(filePath)
		if err != nil {
			return err
		}
		out = io.MultiWriter(os.Stderr, f)
	}
	l.SetOutput(out)

	Log = l
	return nil
}

func openLogFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log directory %s: %w", dir, err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}
