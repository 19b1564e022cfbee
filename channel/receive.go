/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2026-10-14 09:30:00
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-10-17 11:02:18
 * @FilePath: \go-notify\channel\receive.go
 * @Description: 接收路径 - 读循环、解析、去重、分发
 *
 * Copyright (c) 2026 by kamalyes, All Rights Reserved.
 */

package channel

import (
	"errors"

	"github.com/gorilla/websocket"
	"github.com/kamalyes/go-notify/models"
	"github.com/kamalyes/go-notify/protocol"
	"github.com/kamalyes/go-toolbox/pkg/syncx"
)

// readLoop 单连接读循环，帧按到达顺序分发
func (m *Manager) readLoop(gen uint64, conn *websocket.Conn) {
	defer syncx.RecoverWithHandler(func(r interface{}) {
		m.logger.ErrorKV("读循环 panic", "generation", gen, "panic", r)
		m.handleDisconnect(gen, models.CloseReasonTransportError)
	})

	for {
		messageType, data, err := conn.ReadMessage()
		if err != nil {
			if !m.isCurrent(gen) {
				return
			}
			reason := classifyReadError(err)
			m.logger.WarnKV("通知通道读取结束",
				"generation", gen,
				"reason", reason.String(),
				"error", err.Error(),
			)
			m.handleDisconnect(gen, reason)
			return
		}

		if !m.isCurrent(gen) {
			return
		}
		if messageType != websocket.TextMessage {
			m.logger.DebugKV("忽略非文本帧", "message_type", messageType, "size", len(data))
			continue
		}
		m.dispatch(gen, data)
	}
}

// isCurrent generation 是否仍为当前连接
func (m *Manager) isCurrent(gen uint64) bool {
	return syncx.WithRLockReturnValue(&m.mu, func() bool {
		return gen == m.generation && !m.closed
	})
}

// dispatch 处理单个文本帧：解析 -> 去重 -> 广播
// 解析失败只记录日志，不影响连接状态
// 去重与广播前各校验一次 generation，已被替换的连接上读到的帧既不占用去重窗口也不下发；
// 校验与广播之间不加锁（订阅者可重入管理器），窗口仅剩一次函数调用
func (m *Manager) dispatch(gen uint64, data []byte) {
	m.stats.framesReceived.Add(1)

	n, err := protocol.Decode(data)
	if err != nil {
		m.stats.parseErrors.Add(1)
		m.logger.WarnKV("⚠️ 丢弃无法解析的通知帧", "size", len(data), "error", err.Error())
		return
	}

	if !m.isCurrent(gen) {
		m.logger.DebugKV("丢弃已失效连接上的通知", "generation", gen, "type", n.Type().String())
		return
	}

	if id, checked := IdentityOf(n); checked {
		if !m.dedup.MarkIfAbsent(id) {
			m.stats.duplicatesDropped.Add(1)
			m.logger.DebugKV("丢弃重复通知", "type", n.Type().String())
			return
		}
	}

	if !m.isCurrent(gen) {
		return
	}

	m.stats.delivered.Add(1)
	m.registry.Broadcast(n)
}

// classifyReadError 读错误归类：1000 为服务端正常关闭，其余关闭码视为异常关闭
func classifyReadError(err error) models.CloseReason {
	var closeErr *websocket.CloseError
	if errors.As(err, &closeErr) {
		if closeErr.Code == websocket.CloseNormalClosure {
			return models.CloseReasonNormal
		}
		return models.CloseReasonAbnormal
	}
	return models.CloseReasonTransportError
}
