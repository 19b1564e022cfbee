/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2026-10-13 11:20:00
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-10-16 10:01:33
 * @FilePath: \go-notify\channel\registry.go
 * @Description: 订阅者注册表 - 同步扇出，单个监听器失败不影响其他监听器
 *
 * Copyright (c) 2026 by kamalyes, All Rights Reserved.
 */

package channel

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/kamalyes/go-logger"
	"github.com/kamalyes/go-notify/models"
	"github.com/kamalyes/go-toolbox/pkg/syncx"
)

// Listener 通知监听器，返回错误或 panic 都只记录日志
type Listener func(n models.Notification) error

// subscription 一次订阅登记
type subscription struct {
	id       uint64
	listener Listener
}

// SubscriberRegistry 订阅者注册表
// 同一个函数重复订阅会得到多个独立登记，每个登记都会收到广播
type SubscriberRegistry struct {
	mu       sync.RWMutex
	subs     []subscription // 按订阅顺序保存，保证广播顺序稳定
	seq      atomic.Uint64
	failures atomic.Int64
	logger   logger.ILogger
}

// NewSubscriberRegistry 创建订阅者注册表
func NewSubscriberRegistry(log logger.ILogger) *SubscriberRegistry {
	if log == nil {
		log = logger.NewEmptyLogger()
	}
	return &SubscriberRegistry{logger: log}
}

// Subscribe 订阅通知，返回取消订阅函数（可重复调用）
func (r *SubscriberRegistry) Subscribe(l Listener) (unsubscribe func()) {
	if l == nil {
		return func() {}
	}

	id := r.seq.Add(1)
	syncx.WithLock(&r.mu, func() {
		r.subs = append(r.subs, subscription{id: id, listener: l})
	})

	var once sync.Once
	return func() {
		once.Do(func() {
			r.remove(id)
		})
	}
}

// remove 移除指定登记
func (r *SubscriberRegistry) remove(id uint64) {
	syncx.WithLock(&r.mu, func() {
		for i, sub := range r.subs {
			if sub.id == id {
				r.subs = append(r.subs[:i:i], r.subs[i+1:]...)
				return
			}
		}
	})
}

// Len 当前订阅数
func (r *SubscriberRegistry) Len() int {
	return syncx.WithRLockReturnValue(&r.mu, func() int {
		return len(r.subs)
	})
}

// Failures 累计失败的监听器调用次数
func (r *SubscriberRegistry) Failures() int64 {
	return r.failures.Load()
}

// Broadcast 同步调用当前所有监听器，返回成功次数
// 广播期间新增/移除的订阅不影响本次快照
func (r *SubscriberRegistry) Broadcast(n models.Notification) int {
	snapshot := syncx.WithRLockReturnValue(&r.mu, func() []subscription {
		out := make([]subscription, len(r.subs))
		copy(out, r.subs)
		return out
	})

	delivered := 0
	for _, sub := range snapshot {
		if err := r.invoke(sub, n); err != nil {
			r.failures.Add(1)
			r.logger.ErrorKV("通知监听器执行失败",
				"subscription_id", sub.id,
				"notification_type", n.Type().String(),
				"error", err,
			)
			continue
		}
		delivered++
	}
	return delivered
}

// invoke 调用单个监听器，panic 转为错误
func (r *SubscriberRegistry) invoke(sub subscription, n models.Notification) (err error) {
	defer syncx.RecoverWithHandler(func(rec interface{}) {
		err = fmt.Errorf("listener panic: %v", rec)
	})
	return sub.listener(n)
}
