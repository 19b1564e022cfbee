/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2026-10-16 11:00:00
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-10-16 11:12:40
 * @FilePath: \go-notify\exports_models.go
 * @Description: Models 模块类型导出
 *
 * Copyright (c) 2026 by kamalyes, All Rights Reserved.
 */

package notify

import "github.com/kamalyes/go-notify/models"

// ============================================
// 连接状态
// ============================================

// ConnectionStatus 通道连接状态
type ConnectionStatus = models.ConnectionStatus

const (
	ConnectionStatusDisconnected = models.ConnectionStatusDisconnected
	ConnectionStatusReconnecting = models.ConnectionStatusReconnecting
	ConnectionStatusConnected    = models.ConnectionStatusConnected
)

// CloseReason 通道关闭原因
type CloseReason = models.CloseReason

// ============================================
// 通知
// ============================================

// NotificationType 通知类型
type NotificationType = models.NotificationType

const (
	NotificationTypeConnectionEstablished = models.NotificationTypeConnectionEstablished
	NotificationTypeNewMessage            = models.NotificationTypeNewMessage
	NotificationTypeChatUpdate            = models.NotificationTypeChatUpdate
)

// ChatUpdateType 会话更新类型
type ChatUpdateType = models.ChatUpdateType

const (
	ChatUpdateTypeAssigned      = models.ChatUpdateTypeAssigned
	ChatUpdateTypeEscalated     = models.ChatUpdateTypeEscalated
	ChatUpdateTypeStatusChanged = models.ChatUpdateTypeStatusChanged
	ChatUpdateTypeResolved      = models.ChatUpdateTypeResolved
)

// Notification 推送通知
type Notification = models.Notification

// ConnectionEstablished 连接建立通知
type ConnectionEstablished = models.ConnectionEstablished

// NewMessage 新消息通知
type NewMessage = models.NewMessage

// ChatUpdate 会话更新通知
type ChatUpdate = models.ChatUpdate
