/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2026-10-14 10:10:00
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-10-16 15:27:40
 * @FilePath: \go-notify\channel\callbacks.go
 * @Description: 状态变更 / 放弃重连回调 - 在状态锁外按发生顺序投递
 *
 * Copyright (c) 2026 by kamalyes, All Rights Reserved.
 */

package channel

import (
	"sync"
	"sync/atomic"

	"github.com/kamalyes/go-notify/models"
	"github.com/kamalyes/go-toolbox/pkg/syncx"
)

// StatusChangeFunc 状态变更回调
type StatusChangeFunc func(from, to models.ConnectionStatus)

// GiveUpFunc 放弃自动重连回调，attempts 为已尝试次数
type GiveUpFunc func(attempts int)

// callbackList 带取消功能的回调列表
type callbackList[F any] struct {
	mu    sync.RWMutex
	seq   atomic.Uint64
	items []callbackItem[F]
}

type callbackItem[F any] struct {
	id uint64
	fn F
}

func (c *callbackList[F]) add(fn F) func() {
	id := c.seq.Add(1)
	syncx.WithLock(&c.mu, func() {
		c.items = append(c.items, callbackItem[F]{id: id, fn: fn})
	})

	var once sync.Once
	return func() {
		once.Do(func() {
			syncx.WithLock(&c.mu, func() {
				for i, item := range c.items {
					if item.id == id {
						c.items = append(c.items[:i:i], c.items[i+1:]...)
						return
					}
				}
			})
		})
	}
}

func (c *callbackList[F]) snapshot() []F {
	return syncx.WithRLockReturnValue(&c.mu, func() []F {
		out := make([]F, 0, len(c.items))
		for _, item := range c.items {
			out = append(out, item.fn)
		}
		return out
	})
}

// eventKind 待投递事件类型
type eventKind int

const (
	eventStatusChange eventKind = iota
	eventGiveUp
)

// managerEvent 待投递事件
type managerEvent struct {
	kind     eventKind
	from     models.ConnectionStatus
	to       models.ConnectionStatus
	attempts int
}

// OnStatusChange 注册状态变更回调，返回取消函数
func (m *Manager) OnStatusChange(f StatusChangeFunc) (unsubscribe func()) {
	if f == nil {
		return func() {}
	}
	return m.statusCallbacks.add(f)
}

// OnGiveUp 注册放弃重连回调（用于展示持久的离线提示），返回取消函数
func (m *Manager) OnGiveUp(f GiveUpFunc) (unsubscribe func()) {
	if f == nil {
		return func() {}
	}
	return m.giveUpCallbacks.add(f)
}

// enqueueLocked 记录待投递事件，调用方需持有 m.mu
func (m *Manager) enqueueLocked(ev managerEvent) {
	m.pending = append(m.pending, ev)
}

// flushEvents 在 m.mu 之外按顺序投递事件
// 回调中再次调用管理器方法时 TryLock 失败直接返回，由外层循环继续投递
func (m *Manager) flushEvents() {
	for {
		if !m.deliverMu.TryLock() {
			return
		}
		events := syncx.WithLockReturnValue(&m.mu, func() []managerEvent {
			out := m.pending
			m.pending = nil
			return out
		})
		for _, ev := range events {
			m.deliver(ev)
		}
		m.deliverMu.Unlock()

		more := syncx.WithLockReturnValue(&m.mu, func() bool {
			return len(m.pending) > 0
		})
		if !more {
			return
		}
	}
}

// deliver 投递单个事件，回调 panic 只记录日志
func (m *Manager) deliver(ev managerEvent) {
	switch ev.kind {
	case eventStatusChange:
		for _, f := range m.statusCallbacks.snapshot() {
			func() {
				defer syncx.RecoverWithHandler(func(r interface{}) {
					m.logger.ErrorKV("状态变更回调 panic", "from", ev.from.String(), "to", ev.to.String(), "panic", r)
				})
				f(ev.from, ev.to)
			}()
		}
	case eventGiveUp:
		for _, f := range m.giveUpCallbacks.snapshot() {
			func() {
				defer syncx.RecoverWithHandler(func(r interface{}) {
					m.logger.ErrorKV("放弃重连回调 panic", "attempts", ev.attempts, "panic", r)
				})
				f(ev.attempts)
			}()
		}
	}
}
