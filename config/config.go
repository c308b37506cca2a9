// Package config 引擎默认参数
//
// 参考阻抗、设计频率、轨迹采样点数等以值类型传入各个构造函数，
// 不使用包级可变状态。支持 YAML 文件读写。
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// 默认参数常量定义
const (
	DefaultZ0        = 50.0 // 参考阻抗(Ω)
	DefaultFrequency = 1e9  // 设计频率(Hz)
	DefaultArcSteps  = 50   // 每段轨迹采样点数
	DefaultTargetQ   = 2.0  // Π/T 型默认Q值
	DefaultLogLevel  = "info"
)

// ErrInvalidConfig 配置值非法
var ErrInvalidConfig = errors.New("invalid config")

// Config 引擎配置
type Config struct {
	Z0        float64 `yaml:"z0"`        // 参考阻抗(Ω)
	Frequency float64 `yaml:"frequency"` // 设计频率(Hz)
	ArcSteps  int     `yaml:"arc_steps"` // 轨迹采样点数
	TargetQ   float64 `yaml:"target_q"`  // Π/T 型Q值
	LogLevel  string  `yaml:"log_level"` // debug/info/warn/error
}

// Default 默认配置
func Default() Config {
	return Config{
		Z0:        DefaultZ0,
		Frequency: DefaultFrequency,
		ArcSteps:  DefaultArcSteps,
		TargetQ:   DefaultTargetQ,
		LogLevel:  DefaultLogLevel,
	}
}

// Load 读取 YAML 配置，缺省字段取默认值
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save 写入 YAML 配置
func (c Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func (c *Config) applyDefaults() {
	if c.Z0 == 0 {
		c.Z0 = DefaultZ0
	}
	if c.Frequency == 0 {
		c.Frequency = DefaultFrequency
	}
	if c.ArcSteps == 0 {
		c.ArcSteps = DefaultArcSteps
	}
	if c.TargetQ == 0 {
		c.TargetQ = DefaultTargetQ
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

// Validate 检查配置取值
func (c Config) Validate() error {
	switch {
	case !positive(c.Z0):
		return fmt.Errorf("%w: z0 must be positive, got %v", ErrInvalidConfig, c.Z0)
	case !positive(c.Frequency):
		return fmt.Errorf("%w: frequency must be positive, got %v", ErrInvalidConfig, c.Frequency)
	case c.ArcSteps < 2:
		return fmt.Errorf("%w: arc_steps must be at least 2, got %d", ErrInvalidConfig, c.ArcSteps)
	case !positive(c.TargetQ):
		return fmt.Errorf("%w: target_q must be positive, got %v", ErrInvalidConfig, c.TargetQ)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level 日志级别
func (c Config) Level() slog.Level {
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// ParseLevel 解析日志级别名称
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(strings.TrimSpace(name)))); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: log_level %q", ErrInvalidConfig, name)
	}
	return level, nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
