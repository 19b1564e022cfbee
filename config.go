/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2026-10-16 09:50:55
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-10-17 16:07:17
 * @FilePath: \go-notify\config.go
 * @Description: Config 结构体
 *
 * Copyright (c) 2026 by kamalyes, All Rights Reserved.
 */
package notify

import (
	"time"

	"github.com/kamalyes/go-config/pkg/logging"
	wscconfig "github.com/kamalyes/go-config/pkg/wsc"
	"github.com/kamalyes/go-notify/channel"
	"github.com/kamalyes/go-toolbox/pkg/mathx"
)

// LoggingConfig 日志配置，直接复用 go-config 的 logging.Logging
// 生效字段：Enabled、Level、Prefix、TimeFormat、ShowCaller、Output、FilePath、MaxSize、MaxBackups
type LoggingConfig = logging.Logging

// Config 结构体表示通知通道客户端的配置
type Config struct {
	BaseURL               string         // 应用基础地址（http/https/ws/wss）
	BaseDelay             time.Duration  // 首次重连延迟
	MaxDelay              time.Duration  // 最大重连延迟
	Factor                float64        // 退避因子
	MaxAttempts           int            // 最大重连次数
	DedupCapacity         int            // 去重集合容量
	ReadLimit             int64          // 单帧最大长度
	HandshakeTimeout      time.Duration  // 握手超时
	AutoReconnect         bool           // 异常断开后自动重连
	ResetAttemptsOnManual bool           // 手动重连是否清零尝试次数
	Logging               *LoggingConfig // 日志配置
}

// NewDefaultConfig 创建默认配置
func NewDefaultConfig() *Config {
	policy := channel.DefaultReconnectPolicy()
	return &Config{
		BaseDelay:        policy.BaseDelay,
		MaxDelay:         policy.MaxDelay,
		Factor:           policy.Factor,
		MaxAttempts:      policy.MaxAttempts,
		DedupCapacity:    channel.DefaultDedupCapacity,
		ReadLimit:        channel.DefaultReadLimit,
		HandshakeTimeout: channel.DefaultHandshakeTimeout,
		AutoReconnect:    true,
	}
}

// WithBaseURL 设置基础地址并返回当前配置对象
func (c *Config) WithBaseURL(baseURL string) *Config {
	c.BaseURL = baseURL
	return c
}

// WithBaseDelay 设置首次重连延迟并返回当前配置对象
func (c *Config) WithBaseDelay(d time.Duration) *Config {
	c.BaseDelay = d
	return c
}

// WithMaxDelay 设置最大重连延迟并返回当前配置对象
func (c *Config) WithMaxDelay(d time.Duration) *Config {
	c.MaxDelay = d
	return c
}

// WithFactor 设置退避因子并返回当前配置对象
func (c *Config) WithFactor(factor float64) *Config {
	c.Factor = factor
	return c
}

// WithMaxAttempts 设置最大重连次数并返回当前配置对象
func (c *Config) WithMaxAttempts(n int) *Config {
	c.MaxAttempts = n
	return c
}

// WithDedupCapacity 设置去重集合容量并返回当前配置对象
func (c *Config) WithDedupCapacity(capacity int) *Config {
	c.DedupCapacity = capacity
	return c
}

// WithReadLimit 设置单帧最大长度并返回当前配置对象
func (c *Config) WithReadLimit(limit int64) *Config {
	c.ReadLimit = limit
	return c
}

// WithHandshakeTimeout 设置握手超时并返回当前配置对象
func (c *Config) WithHandshakeTimeout(d time.Duration) *Config {
	c.HandshakeTimeout = d
	return c
}

// WithAutoReconnect 设置是否自动重连并返回当前配置对象
func (c *Config) WithAutoReconnect(enabled bool) *Config {
	c.AutoReconnect = enabled
	return c
}

// WithResetAttemptsOnManual 设置手动重连是否清零并返回当前配置对象
func (c *Config) WithResetAttemptsOnManual(reset bool) *Config {
	c.ResetAttemptsOnManual = reset
	return c
}

// WithLogging 设置日志配置并返回当前配置对象
func (c *Config) WithLogging(logging *LoggingConfig) *Config {
	c.Logging = logging
	return c
}

// Policy 由配置生成重连策略，零值字段取默认值
func (c *Config) Policy() channel.ReconnectPolicy {
	def := channel.DefaultReconnectPolicy()
	return channel.ReconnectPolicy{
		BaseDelay:   mathx.IfNotZero(c.BaseDelay, def.BaseDelay),
		MaxDelay:    mathx.IfNotZero(c.MaxDelay, def.MaxDelay),
		Factor:      mathx.IfNotZero(c.Factor, def.Factor),
		MaxAttempts: mathx.IfNotZero(c.MaxAttempts, def.MaxAttempts),
	}
}

// NewConfigFromWSC 从 go-config 的 WSC 配置构造客户端配置
// 映射 MinRecTime/MaxRecTime/RecFactor/AutoReconnect/MaxMessageSize/Logging 以及 RetryPolicy.MaxRetries，
// 零值字段保留默认值，其余服务端字段不参与
func NewConfigFromWSC(baseURL string, w *wscconfig.WSC) *Config {
	c := NewDefaultConfig().WithBaseURL(baseURL)
	if w == nil {
		return c
	}

	c.BaseDelay = mathx.IfNotZero(w.MinRecTime, c.BaseDelay)
	c.MaxDelay = mathx.IfNotZero(w.MaxRecTime, c.MaxDelay)
	c.Factor = mathx.IfNotZero(w.RecFactor, c.Factor)
	c.ReadLimit = mathx.IfNotZero(w.MaxMessageSize, c.ReadLimit)
	c.AutoReconnect = w.AutoReconnect
	c.Logging = w.Logging
	if w.RetryPolicy != nil {
		c.MaxAttempts = mathx.IfNotZero(w.RetryPolicy.MaxRetries, c.MaxAttempts)
	}
	return c
}

// Validate 校验配置，存在错误级别以上的问题时返回 ErrTypeConfigInvalid
func (c *Config) Validate() error {
	return NewConfigValidator().Check(c)
}

// Options 转换为管理器选项
func (c *Config) Options() []channel.Option {
	return []channel.Option{
		channel.WithBaseURL(c.BaseURL),
		channel.WithPolicy(c.Policy()),
		channel.WithDedupCapacity(c.DedupCapacity),
		channel.WithReadLimit(c.ReadLimit),
		channel.WithHandshakeTimeout(c.HandshakeTimeout),
		channel.WithAutoReconnect(c.AutoReconnect),
		channel.WithResetAttemptsOnManual(c.ResetAttemptsOnManual),
	}
}
