/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2026-10-13 15:00:00
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-10-16 17:48:26
 * @FilePath: \go-notify\channel\options.go
 * @Description: 连接管理器选项
 *
 * Copyright (c) 2026 by kamalyes, All Rights Reserved.
 */

package channel

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/kamalyes/go-logger"
)

const (
	DefaultReadLimit        int64 = 1 << 20          // 单帧最大长度
	DefaultHandshakeTimeout       = 10 * time.Second // 握手超时
)

// Dialer 通道拨号器，*websocket.Dialer 直接满足该接口
type Dialer interface {
	DialContext(ctx context.Context, urlStr string, requestHeader http.Header) (*websocket.Conn, *http.Response, error)
}

// stopper 可取消的定时任务
type stopper interface {
	Stop() bool
}

// afterFunc 定时调度函数，测试中可替换
type afterFunc func(d time.Duration, f func()) stopper

func defaultAfterFunc(d time.Duration, f func()) stopper {
	return time.AfterFunc(d, f)
}

// options 管理器配置
type options struct {
	baseURL               string
	policy                ReconnectPolicy
	dialer                Dialer
	logger                logger.ILogger
	dedupCapacity         int
	readLimit             int64
	handshakeTimeout      time.Duration
	autoReconnect         bool
	resetAttemptsOnManual bool
	header                http.Header
	afterFunc             afterFunc
}

func defaultOptions() options {
	return options{
		policy:           DefaultReconnectPolicy(),
		dialer:           websocket.DefaultDialer,
		logger:           logger.NewEmptyLogger(),
		dedupCapacity:    DefaultDedupCapacity,
		readLimit:        DefaultReadLimit,
		handshakeTimeout: DefaultHandshakeTimeout,
		autoReconnect:    true,
		afterFunc:        defaultAfterFunc,
	}
}

// Option 管理器选项
type Option func(*options)

// WithBaseURL 应用基础地址（http/https），通道地址由其派生
func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		o.baseURL = baseURL
	}
}

// WithPolicy 重连策略
func WithPolicy(p ReconnectPolicy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// WithDialer 自定义拨号器
func WithDialer(d Dialer) Option {
	return func(o *options) {
		if d != nil {
			o.dialer = d
		}
	}
}

// WithLogger 日志器
func WithLogger(l logger.ILogger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithDedupCapacity 去重集合容量
func WithDedupCapacity(capacity int) Option {
	return func(o *options) {
		if capacity > 0 {
			o.dedupCapacity = capacity
		}
	}
}

// WithReadLimit 单帧最大长度
func WithReadLimit(limit int64) Option {
	return func(o *options) {
		if limit > 0 {
			o.readLimit = limit
		}
	}
}

// WithHandshakeTimeout 握手超时
func WithHandshakeTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.handshakeTimeout = d
		}
	}
}

// WithAutoReconnect 异常断开后是否自动重连
func WithAutoReconnect(enabled bool) Option {
	return func(o *options) {
		o.autoReconnect = enabled
	}
}

// WithResetAttemptsOnManual 手动重连时清零尝试次数（默认与自动重连一样累加）
func WithResetAttemptsOnManual(reset bool) Option {
	return func(o *options) {
		o.resetAttemptsOnManual = reset
	}
}

// WithRequestHeader 握手附加请求头
func WithRequestHeader(header http.Header) Option {
	return func(o *options) {
		o.header = header.Clone()
	}
}

// withAfterFunc 替换定时调度（测试用）
func withAfterFunc(f afterFunc) Option {
	return func(o *options) {
		if f != nil {
			o.afterFunc = f
		}
	}
}
