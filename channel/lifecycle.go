/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2026-10-13 17:20:00
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-10-17 11:36:52
 * @FilePath: \go-notify\channel\lifecycle.go
 * @Description: 连接生命周期 - 凭证变更、拨号、断开、退避重连、手动重连与销毁
 *
 * Copyright (c) 2026 by kamalyes, All Rights Reserved.
 */

package channel

import (
	"context"
	"time"

	"github.com/gorilla/websocket"
	"github.com/kamalyes/go-notify/models"
	"github.com/kamalyes/go-notify/protocol"
)

// closeWriteWait 主动关闭时发送 close 帧的超时
const closeWriteWait = time.Second

// SetCredentials 设置凭证与组织ID
// 两者齐备且有变化时：先关闭旧通道，清零尝试次数，再建立新通道
// 任一为空时：主动关闭通道，不再重连
func (m *Manager) SetCredentials(token, organizationID string) {
	m.mu.Lock()
	m.setCredentialsLocked(token, organizationID)
	m.unlockAndRelease()
}

// SetToken 仅更新凭证
func (m *Manager) SetToken(token string) {
	m.mu.Lock()
	m.setCredentialsLocked(token, m.organizationID)
	m.unlockAndRelease()
}

// SetOrganization 仅更新组织ID
func (m *Manager) SetOrganization(organizationID string) {
	m.mu.Lock()
	m.setCredentialsLocked(m.token, organizationID)
	m.unlockAndRelease()
}

func (m *Manager) setCredentialsLocked(token, organizationID string) {
	if m.closed {
		return
	}
	if token == m.token && organizationID == m.organizationID {
		return
	}

	m.token = token
	m.organizationID = organizationID

	if !m.hasCredentialsLocked() {
		m.logger.InfoKV("🔒 凭证或组织ID缺失，关闭通知通道", "organization_id", organizationID)
		m.teardownLocked(models.CloseReasonCredentialRevoked)
		m.attempts = 0
		m.exhausted = false
		return
	}

	m.teardownLocked(models.CloseReasonSuperseded)
	m.attempts = 0
	m.exhausted = false
	m.openLocked()
}

// Reconnect 手动重连
// 与自动重连一样累加尝试次数（除非配置了 WithResetAttemptsOnManual），并立即发起连接
func (m *Manager) Reconnect() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		m.logger.Warn("管理器已销毁，忽略手动重连")
		return
	}
	if !m.hasCredentialsLocked() {
		m.mu.Unlock()
		m.logger.Warn("凭证或组织ID缺失，忽略手动重连")
		return
	}

	m.teardownLocked(models.CloseReasonManualReconnect)
	if m.opts.resetAttemptsOnManual {
		m.attempts = 0
	} else {
		m.attempts++
	}
	m.exhausted = false
	m.logger.InfoKV("🔄 手动重连", "attempt", m.attempts)
	m.openLocked()
	m.unlockAndRelease()
}

// Close 销毁管理器：关闭通道、取消待执行的重连，之后所有写操作均为空操作
func (m *Manager) Close() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.teardownLocked(models.CloseReasonTeardown)
	m.closed = true
	m.unlockAndRelease()
	m.logger.Info("🛑 通知通道管理器已销毁")
}

// openLocked 发起一次连接尝试，调用方需持有 m.mu
func (m *Manager) openLocked() {
	endpoint, err := protocol.BuildEndpoint(m.opts.baseURL, m.organizationID, m.token)
	if err != nil {
		m.logger.ErrorKV("无法组装通道地址", "base_url", m.opts.baseURL, "error", redactError(err, m.token))
		return
	}

	m.generation++
	gen := m.generation
	ctx, cancel := context.WithTimeout(context.Background(), m.opts.handshakeTimeout)
	m.cancelDial = cancel
	m.setStatusLocked(models.ConnectionStatusReconnecting)

	m.logger.InfoKV("🔌 正在建立通知通道",
		"endpoint", protocol.RedactURL(endpoint),
		"generation", gen,
		"attempt", m.attempts,
	)

	go m.dial(ctx, cancel, gen, endpoint, m.token)
}

// dial 拨号，结果按 generation 校验后生效
func (m *Manager) dial(ctx context.Context, cancel context.CancelFunc, gen uint64, endpoint, token string) {
	conn, _, err := m.opts.dialer.DialContext(ctx, endpoint, m.opts.header)
	cancel()

	if err != nil {
		m.stats.dialFailures.Add(1)
		m.logger.WarnKV("通知通道拨号失败",
			"endpoint", protocol.RedactURL(endpoint),
			"generation", gen,
			"error", redactError(err, token),
		)
		m.handleDisconnect(gen, models.CloseReasonTransportError)
		return
	}

	m.mu.Lock()
	if gen != m.generation || m.closed {
		// 已被新的尝试取代
		m.mu.Unlock()
		_ = conn.Close()
		m.logger.DebugKV("丢弃过期的连接", "generation", gen)
		return
	}
	conn.SetReadLimit(m.opts.readLimit)
	m.conn = conn
	m.cancelDial = nil
	m.attempts = 0
	m.exhausted = false
	m.setStatusLocked(models.ConnectionStatusConnected)
	m.stats.markConnected()
	m.mu.Unlock()
	m.flushEvents()

	m.logger.InfoKV("✅ 通知通道已连接", "endpoint", protocol.RedactURL(endpoint), "generation", gen)
	go m.readLoop(gen, conn)
}

// handleDisconnect 处理非主动断开：状态置为 disconnected 并按策略安排重连
func (m *Manager) handleDisconnect(gen uint64, reason models.CloseReason) {
	m.mu.Lock()
	if gen != m.generation || m.closed {
		m.mu.Unlock()
		return
	}

	if m.conn != nil {
		_ = m.conn.Close()
		m.conn = nil
	}
	m.cancelDial = nil
	m.setStatusLocked(models.ConnectionStatusDisconnected)
	m.stats.markDisconnected()

	if reason.IsIntentional() {
		m.logger.InfoKV("通知通道已正常关闭，不再重连", "reason", reason.String())
	} else {
		m.scheduleReconnectLocked(reason)
	}
	m.mu.Unlock()
	m.flushEvents()
}

// scheduleReconnectLocked 按退避策略安排下一次重连，调用方需持有 m.mu
func (m *Manager) scheduleReconnectLocked(reason models.CloseReason) {
	if !m.opts.autoReconnect {
		m.logger.InfoKV("自动重连已关闭", "reason", reason.String())
		return
	}
	if !m.hasCredentialsLocked() {
		return
	}
	if m.opts.policy.GiveUp(m.attempts) {
		m.exhausted = true
		m.enqueueLocked(managerEvent{kind: eventGiveUp, attempts: m.attempts})
		m.logger.ErrorKV("❌ 重连次数已达上限，停止自动重连",
			"attempts", m.attempts,
			"reason", reason.String(),
		)
		return
	}

	delay := m.opts.policy.Delay(m.attempts)
	m.attempts++
	gen := m.generation
	m.timer = m.opts.afterFunc(delay, func() {
		m.fireReconnect(gen)
	})

	m.logger.InfoKV("⏳ 已安排重连",
		"delay", delay.String(),
		"attempt", m.attempts,
		"reason", reason.String(),
	)
}

// fireReconnect 定时器触发，generation 不一致说明已被取代或销毁
func (m *Manager) fireReconnect(gen uint64) {
	m.mu.Lock()
	if gen != m.generation || m.closed || m.timer == nil {
		m.mu.Unlock()
		m.logger.DebugKV("忽略过期的重连定时器", "generation", gen)
		return
	}
	m.timer = nil
	m.openLocked()
	m.mu.Unlock()
	m.flushEvents()
}

// teardownLocked 主动关闭：作废所有在途回调、取消定时器与拨号、摘下通道
// 旧通道的 close 帧由 unlockAndRelease 在释放锁后发送
func (m *Manager) teardownLocked(reason models.CloseReason) {
	m.generation++

	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	if m.cancelDial != nil {
		m.cancelDial()
		m.cancelDial = nil
	}
	if m.conn != nil {
		m.releasing = append(m.releasing, releasedConn{conn: m.conn, reason: reason})
		m.conn = nil
		m.stats.markDisconnected()
		m.logger.InfoKV("通知通道已主动关闭", "reason", reason.String())
	}
	m.setStatusLocked(models.ConnectionStatusDisconnected)
}

// releasedConn 已从管理器摘下、尚未发送 close 帧的通道
type releasedConn struct {
	conn   *websocket.Conn
	reason models.CloseReason
}

// unlockAndRelease 释放 m.mu 后再向旧通道发送 close 帧，最后投递事件
// close 帧写入最长阻塞 closeWriteWait，不能占用 m.mu
func (m *Manager) unlockAndRelease() {
	released := m.releasing
	m.releasing = nil
	m.mu.Unlock()

	for _, rc := range released {
		_ = rc.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, rc.reason.String()),
			time.Now().Add(closeWriteWait))
		_ = rc.conn.Close()
	}
	m.flushEvents()
}
