/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2026-10-13 16:00:00
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-10-17 10:12:05
 * @FilePath: \go-notify\channel\manager.go
 * @Description: 通知通道连接管理器 - 负责单一逻辑通道的打开、接收、关闭与重连
 *
 * Copyright (c) 2026 by kamalyes, All Rights Reserved.
 */

package channel

import (
	"context"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/kamalyes/go-logger"
	"github.com/kamalyes/go-notify/models"
	"github.com/kamalyes/go-notify/protocol"
	"github.com/kamalyes/go-toolbox/pkg/syncx"
)

// Manager 通知通道连接管理器
// 一个会话（凭证 + 组织）对应一个实例，会话结束时调用 Close 销毁
type Manager struct {
	opts         options
	logger       logger.ILogger
	stateMachine *syncx.StateMachine[models.ConnectionStatus]

	dedup    *ProcessedIDSet
	registry *SubscriberRegistry
	unread   *UnreadCounter
	stats    statsCollector

	statusCallbacks callbackList[StatusChangeFunc]
	giveUpCallbacks callbackList[GiveUpFunc]
	deliverMu       sync.Mutex

	// 以下字段受 mu 保护
	mu             sync.RWMutex
	token          string
	organizationID string
	generation     uint64             // 每次连接尝试/销毁递增，过期回调据此丢弃
	conn           *websocket.Conn    // 当前通道
	cancelDial     context.CancelFunc // 进行中的拨号
	timer          stopper            // 待执行的重连
	attempts       int                // 重连尝试次数，连接成功后清零
	exhausted      bool               // 已达上限，放弃自动重连
	closed         bool               // 管理器已销毁
	pending        []managerEvent
	releasing      []releasedConn // 主动关闭后待发送 close 帧的旧通道
}

// NewManager 创建连接管理器，凭证与组织ID齐备前不会发起连接
func NewManager(opts ...Option) *Manager {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	sm := syncx.NewStateMachine(models.ConnectionStatusDisconnected)
	sm.AllowTransitions(models.ConnectionStatusDisconnected, models.ConnectionStatusReconnecting)
	sm.AllowTransitions(models.ConnectionStatusReconnecting, models.ConnectionStatusConnected, models.ConnectionStatusDisconnected)
	sm.AllowTransitions(models.ConnectionStatusConnected, models.ConnectionStatusDisconnected)

	return &Manager{
		opts:         o,
		logger:       o.logger,
		stateMachine: sm,
		dedup:        NewProcessedIDSet(o.dedupCapacity),
		registry:     NewSubscriberRegistry(o.logger),
		unread:       &UnreadCounter{},
	}
}

// Subscribe 订阅通知，返回取消订阅函数
func (m *Manager) Subscribe(l Listener) (unsubscribe func()) {
	return m.registry.Subscribe(l)
}

// Status 当前连接状态
func (m *Manager) Status() models.ConnectionStatus {
	return syncx.WithRLockReturnValue(&m.mu, func() models.ConnectionStatus {
		return m.stateMachine.CurrentState()
	})
}

// IsConnected 是否已连接
func (m *Manager) IsConnected() bool {
	return m.Status() == models.ConnectionStatusConnected
}

// ReconnectAttempts 当前重连尝试次数（只读诊断）
func (m *Manager) ReconnectAttempts() int {
	return syncx.WithRLockReturnValue(&m.mu, func() int {
		return m.attempts
	})
}

// IsExhausted 是否已放弃自动重连
func (m *Manager) IsExhausted() bool {
	return syncx.WithRLockReturnValue(&m.mu, func() bool {
		return m.exhausted
	})
}

// IsClosed 管理器是否已销毁
func (m *Manager) IsClosed() bool {
	return syncx.WithRLockReturnValue(&m.mu, func() bool {
		return m.closed
	})
}

// Unread 未读计数器
func (m *Manager) Unread() *UnreadCounter {
	return m.unread
}

// Deduplicator 已处理ID集合
func (m *Manager) Deduplicator() *ProcessedIDSet {
	return m.dedup
}

// Stats 通道统计快照
func (m *Manager) Stats() ChannelStats {
	return m.stats.snapshot(m.registry.Failures())
}

// hasCredentialsLocked 凭证与组织ID是否齐备
func (m *Manager) hasCredentialsLocked() bool {
	return m.token != "" && m.organizationID != ""
}

// setStatusLocked 状态迁移并记录待投递事件，调用方需持有 m.mu
func (m *Manager) setStatusLocked(to models.ConnectionStatus) {
	from := m.stateMachine.CurrentState()
	if from == to {
		return
	}
	if err := m.stateMachine.TransitionTo(to); err != nil {
		m.logger.WarnKV("非法的状态迁移", "from", from.String(), "to", to.String(), "error", err)
		return
	}
	m.enqueueLocked(managerEvent{kind: eventStatusChange, from: from, to: to})
}

// redactError 错误信息中的凭证替换为占位符
func redactError(err error, token string) string {
	if err == nil {
		return ""
	}
	return protocol.RedactText(err.Error(), token)
}
