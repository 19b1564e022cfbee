/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2026-10-16 10:15:00
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-10-17 16:17:57
 * @FilePath: \go-notify\config_validator.go
 * @Description: 配置验证和自动修复机制
 *
 * Copyright (c) 2026 by kamalyes, All Rights Reserved.
 */
package notify

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kamalyes/go-logger"
	"github.com/kamalyes/go-notify/channel"
	"github.com/kamalyes/go-toolbox/pkg/errorx"
)

// ValidationLevel 验证级别
type ValidationLevel int

const (
	ValidationLevelInfo     ValidationLevel = 1 // 信息级别
	ValidationLevelWarning  ValidationLevel = 2 // 警告级别
	ValidationLevelError    ValidationLevel = 3 // 错误级别
	ValidationLevelCritical ValidationLevel = 4 // 严重级别
)

// ValidationResult 验证结果
type ValidationResult struct {
	Level       ValidationLevel     `json:"level"`
	Field       string              `json:"field"`
	Message     string              `json:"message"`
	Suggestion  string              `json:"suggestion"`
	AutoFixable bool                `json:"auto_fixable"`
	FixAction   func(*Config) error `json:"-"`
}

// ConfigValidator 配置验证器
type ConfigValidator struct {
	rules []ValidationRule
}

// ValidationRule 验证规则接口
type ValidationRule interface {
	// Validate 验证配置
	Validate(config *Config) []ValidationResult

	// GetName 获取规则名称
	GetName() string

	// GetDescription 获取规则描述
	GetDescription() string
}

// NewConfigValidator 创建配置验证器
func NewConfigValidator() *ConfigValidator {
	validator := &ConfigValidator{
		rules: make([]ValidationRule, 0),
	}

	// 添加默认验证规则
	validator.addDefaultRules()

	return validator
}

// addDefaultRules 添加默认验证规则
func (cv *ConfigValidator) addDefaultRules() {
	cv.rules = append(cv.rules,
		&EndpointConfigRule{},
		&ReconnectConfigRule{},
		&LimitsConfigRule{},
		&LoggingConfigRule{},
	)
}

// AddRule 添加验证规则
func (cv *ConfigValidator) AddRule(rule ValidationRule) {
	cv.rules = append(cv.rules, rule)
}

// Validate 验证配置
func (cv *ConfigValidator) Validate(config *Config) []ValidationResult {
	var results []ValidationResult

	for _, rule := range cv.rules {
		ruleResults := rule.Validate(config)
		results = append(results, ruleResults...)
	}

	return results
}

// Check 验证配置，返回第一个错误级别以上的问题
func (cv *ConfigValidator) Check(config *Config) error {
	if config == nil {
		return errorx.NewError(ErrTypeConfigInvalid, "config is nil")
	}
	for _, result := range cv.Validate(config) {
		if result.Level >= ValidationLevelError {
			return errorx.NewError(ErrTypeConfigInvalid, fmt.Sprintf("%s: %s", result.Field, result.Message))
		}
	}
	return nil
}

// AutoFix 自动修复配置
func (cv *ConfigValidator) AutoFix(config *Config) ([]ValidationResult, error) {
	results := cv.Validate(config)
	fixed := make([]ValidationResult, 0)

	for _, result := range results {
		if result.AutoFixable && result.FixAction != nil {
			if err := result.FixAction(config); err != nil {
				return fixed, errorx.NewError(ErrTypeConfigAutoFixFailed, fmt.Sprintf("failed to fix %s: %v", result.Field, err))
			}
			fixed = append(fixed, ValidationResult{
				Level:      ValidationLevelInfo,
				Field:      result.Field,
				Message:    fmt.Sprintf("已自动修复: %s", result.Message),
				Suggestion: result.Suggestion,
			})
		}
	}

	return fixed, nil
}

// ValidateAndReport 验证并生成报告
func (cv *ConfigValidator) ValidateAndReport(config *Config) string {
	results := cv.Validate(config)

	var report strings.Builder
	report.WriteString("配置验证报告\n")
	report.WriteString("================\n\n")

	counts := make(map[ValidationLevel]int)
	for _, result := range results {
		counts[result.Level]++
		switch result.Level {
		case ValidationLevelCritical:
			report.WriteString(fmt.Sprintf("🚨 [严重] %s: %s\n", result.Field, result.Message))
		case ValidationLevelError:
			report.WriteString(fmt.Sprintf("❌ [错误] %s: %s\n", result.Field, result.Message))
		case ValidationLevelWarning:
			report.WriteString(fmt.Sprintf("⚠️ [警告] %s: %s\n", result.Field, result.Message))
		case ValidationLevelInfo:
			report.WriteString(fmt.Sprintf("ℹ️ [信息] %s: %s\n", result.Field, result.Message))
		}

		if result.Suggestion != "" {
			report.WriteString(fmt.Sprintf("   建议: %s\n", result.Suggestion))
		}
		if result.AutoFixable {
			report.WriteString("   💡 可自动修复\n")
		}
		report.WriteString("\n")
	}

	report.WriteString(fmt.Sprintf("汇总: 严重=%d, 错误=%d, 警告=%d, 信息=%d\n",
		counts[ValidationLevelCritical], counts[ValidationLevelError],
		counts[ValidationLevelWarning], counts[ValidationLevelInfo]))

	return report.String()
}

// ========== 具体验证规则实现 ==========

// EndpointConfigRule 基础地址验证规则
type EndpointConfigRule struct{}

func (r *EndpointConfigRule) GetName() string {
	return "EndpointConfig"
}

func (r *EndpointConfigRule) GetDescription() string {
	return "验证应用基础地址"
}

func (r *EndpointConfigRule) Validate(config *Config) []ValidationResult {
	var results []ValidationResult

	if config.BaseURL == "" {
		return append(results, ValidationResult{
			Level:      ValidationLevelCritical,
			Field:      "BaseURL",
			Message:    "基础地址未设置",
			Suggestion: "设置应用基础地址，例如 https://api.example.com",
		})
	}

	u, err := url.Parse(config.BaseURL)
	if err != nil || u.Host == "" {
		return append(results, ValidationResult{
			Level:      ValidationLevelCritical,
			Field:      "BaseURL",
			Message:    fmt.Sprintf("基础地址无法解析: %s", config.BaseURL),
			Suggestion: "使用 scheme://host[:port][/path] 格式",
		})
	}

	switch u.Scheme {
	case "https", "wss":
	case "http", "ws":
		results = append(results, ValidationResult{
			Level:      ValidationLevelWarning,
			Field:      "BaseURL",
			Message:    fmt.Sprintf("使用明文传输: %s", u.Scheme),
			Suggestion: "生产环境建议使用 https，凭证会出现在通道地址的查询参数中",
		})
	default:
		results = append(results, ValidationResult{
			Level:      ValidationLevelCritical,
			Field:      "BaseURL",
			Message:    fmt.Sprintf("不支持的协议: %s", u.Scheme),
			Suggestion: "仅支持 http / https / ws / wss",
		})
	}

	if u.RawQuery != "" {
		results = append(results, ValidationResult{
			Level:       ValidationLevelWarning,
			Field:       "BaseURL",
			Message:     "基础地址包含查询参数",
			Suggestion:  "查询参数会与凭证参数合并，建议去除",
			AutoFixable: true,
			FixAction: func(c *Config) error {
				fixedURL, err := url.Parse(c.BaseURL)
				if err != nil {
					return err
				}
				fixedURL.RawQuery = ""
				c.BaseURL = fixedURL.String()
				return nil
			},
		})
	}

	return results
}

// ReconnectConfigRule 重连策略验证规则
type ReconnectConfigRule struct{}

func (r *ReconnectConfigRule) GetName() string {
	return "ReconnectConfig"
}

func (r *ReconnectConfigRule) GetDescription() string {
	return "验证重连退避参数"
}

func (r *ReconnectConfigRule) Validate(config *Config) []ValidationResult {
	var results []ValidationResult
	def := channel.DefaultReconnectPolicy()

	if config.BaseDelay < 0 {
		results = append(results, ValidationResult{
			Level:       ValidationLevelError,
			Field:       "BaseDelay",
			Message:     "首次重连延迟不能为负数",
			Suggestion:  fmt.Sprintf("推荐设置为 %s", def.BaseDelay),
			AutoFixable: true,
			FixAction: func(c *Config) error {
				c.BaseDelay = def.BaseDelay
				return nil
			},
		})
	}

	if config.MaxDelay < 0 || (config.MaxDelay > 0 && config.MaxDelay < config.BaseDelay) {
		results = append(results, ValidationResult{
			Level:       ValidationLevelError,
			Field:       "MaxDelay",
			Message:     "最大重连延迟应不小于首次重连延迟",
			Suggestion:  fmt.Sprintf("推荐设置为 %s", def.MaxDelay),
			AutoFixable: true,
			FixAction: func(c *Config) error {
				c.MaxDelay = def.MaxDelay
				return nil
			},
		})
	} else if config.MaxDelay > 5*time.Minute {
		results = append(results, ValidationResult{
			Level:      ValidationLevelWarning,
			Field:      "MaxDelay",
			Message:    fmt.Sprintf("最大重连延迟过长: %s", config.MaxDelay),
			Suggestion: "过长的延迟会让离线状态持续较久",
		})
	}

	if config.Factor != 0 && config.Factor < 1 {
		results = append(results, ValidationResult{
			Level:       ValidationLevelError,
			Field:       "Factor",
			Message:     fmt.Sprintf("退避因子必须不小于1: %v", config.Factor),
			Suggestion:  "推荐设置为2",
			AutoFixable: true,
			FixAction: func(c *Config) error {
				c.Factor = def.Factor
				return nil
			},
		})
	}

	if config.MaxAttempts < 0 {
		results = append(results, ValidationResult{
			Level:       ValidationLevelError,
			Field:       "MaxAttempts",
			Message:     "最大重连次数不能为负数",
			Suggestion:  fmt.Sprintf("推荐设置为%d", def.MaxAttempts),
			AutoFixable: true,
			FixAction: func(c *Config) error {
				c.MaxAttempts = def.MaxAttempts
				return nil
			},
		})
	}

	if !config.AutoReconnect {
		results = append(results, ValidationResult{
			Level:      ValidationLevelInfo,
			Field:      "AutoReconnect",
			Message:    "自动重连已关闭",
			Suggestion: "异常断开后需要手动调用 Reconnect",
		})
	}

	return results
}

// LimitsConfigRule 容量与超时验证规则
type LimitsConfigRule struct{}

func (r *LimitsConfigRule) GetName() string {
	return "LimitsConfig"
}

func (r *LimitsConfigRule) GetDescription() string {
	return "验证去重容量、帧长度与握手超时"
}

func (r *LimitsConfigRule) Validate(config *Config) []ValidationResult {
	var results []ValidationResult

	if config.DedupCapacity <= 0 {
		results = append(results, ValidationResult{
			Level:       ValidationLevelError,
			Field:       "DedupCapacity",
			Message:     "去重集合容量必须大于0",
			Suggestion:  fmt.Sprintf("推荐设置为%d", channel.DefaultDedupCapacity),
			AutoFixable: true,
			FixAction: func(c *Config) error {
				c.DedupCapacity = channel.DefaultDedupCapacity
				return nil
			},
		})
	}

	if config.ReadLimit <= 0 {
		results = append(results, ValidationResult{
			Level:       ValidationLevelError,
			Field:       "ReadLimit",
			Message:     "单帧最大长度必须大于0",
			Suggestion:  "推荐设置为1MB",
			AutoFixable: true,
			FixAction: func(c *Config) error {
				c.ReadLimit = channel.DefaultReadLimit
				return nil
			},
		})
	}

	if config.HandshakeTimeout <= 0 {
		results = append(results, ValidationResult{
			Level:       ValidationLevelError,
			Field:       "HandshakeTimeout",
			Message:     "握手超时必须大于0",
			Suggestion:  "推荐设置为10秒",
			AutoFixable: true,
			FixAction: func(c *Config) error {
				c.HandshakeTimeout = channel.DefaultHandshakeTimeout
				return nil
			},
		})
	}

	return results
}

// LoggingConfigRule 日志配置验证规则
type LoggingConfigRule struct{}

func (r *LoggingConfigRule) GetName() string {
	return "LoggingConfig"
}

func (r *LoggingConfigRule) GetDescription() string {
	return "验证日志输出配置"
}

func (r *LoggingConfigRule) Validate(config *Config) []ValidationResult {
	var results []ValidationResult

	logging := config.Logging
	if logging == nil || !logging.Enabled {
		return results
	}

	toFile := logging.Output == logger.OutputFile || logging.Output == logger.OutputRotate
	if toFile && logging.FilePath == "" {
		results = append(results, ValidationResult{
			Level:       ValidationLevelError,
			Field:       "Logging.FilePath",
			Message:     "文件输出未设置路径",
			Suggestion:  "设置 FilePath 或改用 console 输出",
			AutoFixable: true,
			FixAction: func(c *Config) error {
				c.Logging.Output = logger.OutputConsole
				return nil
			},
		})
	}

	if logging.MaxSize < 0 || logging.MaxBackups < 0 {
		results = append(results, ValidationResult{
			Level:      ValidationLevelWarning,
			Field:      "Logging.Rotate",
			Message:    "日志轮转参数为负数，将不启用轮转",
			Suggestion: "MaxSize 与 MaxBackups 均大于0时启用轮转",
		})
	}

	return results
}

