/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2026-10-13 09:00:00
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-10-13 09:40:18
 * @FilePath: \go-notify\channel\policy.go
 * @Description: 重连策略 - 指数退避 + 最大尝试次数
 *
 * Copyright (c) 2026 by kamalyes, All Rights Reserved.
 */

package channel

import (
	"time"

	"github.com/jpillora/backoff"
	"github.com/kamalyes/go-toolbox/pkg/mathx"
)

const (
	DefaultBaseDelay   = 1 * time.Second  // 首次重连延迟
	DefaultMaxDelay    = 30 * time.Second // 重连延迟上限
	DefaultFactor      = 2.0              // 退避因子
	DefaultMaxAttempts = 10               // 最大重连次数
)

// ReconnectPolicy 重连策略，纯函数，不持有尝试次数
type ReconnectPolicy struct {
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Factor      float64
	MaxAttempts int
}

// DefaultReconnectPolicy 默认策略: min(1s × 2^n, 30s)，最多 10 次
func DefaultReconnectPolicy() ReconnectPolicy {
	return ReconnectPolicy{
		BaseDelay:   DefaultBaseDelay,
		MaxDelay:    DefaultMaxDelay,
		Factor:      DefaultFactor,
		MaxAttempts: DefaultMaxAttempts,
	}
}

// normalize 零值字段回落到默认值
func (p ReconnectPolicy) normalize() ReconnectPolicy {
	return ReconnectPolicy{
		BaseDelay:   mathx.IF(p.BaseDelay > 0, p.BaseDelay, DefaultBaseDelay),
		MaxDelay:    mathx.IF(p.MaxDelay > 0, p.MaxDelay, DefaultMaxDelay),
		Factor:      mathx.IF(p.Factor > 0, p.Factor, DefaultFactor),
		MaxAttempts: mathx.IF(p.MaxAttempts > 0, p.MaxAttempts, DefaultMaxAttempts),
	}
}

// Delay 第 attempt 次重连前的等待时长（attempt 从 0 开始）
func (p ReconnectPolicy) Delay(attempt int) time.Duration {
	np := p.normalize()
	b := &backoff.Backoff{
		Min:    np.BaseDelay,
		Max:    np.MaxDelay,
		Factor: np.Factor,
		Jitter: false,
	}
	return b.ForAttempt(float64(max(attempt, 0)))
}

// GiveUp 尝试次数达到上限后放弃自动重连
func (p ReconnectPolicy) GiveUp(attempt int) bool {
	return attempt >= p.normalize().MaxAttempts
}
