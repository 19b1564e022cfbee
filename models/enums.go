/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2026-10-12 10:20:00
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-10-14 18:42:10
 * @FilePath: \go-notify\models\enums.go
 * @Description: 通知通道相关枚举定义
 *
 * Copyright (c) 2026 by kamalyes, All Rights Reserved.
 */

package models

// ConnectionStatus 通道连接状态
type ConnectionStatus string

const (
	ConnectionStatusDisconnected ConnectionStatus = "disconnected" // 已断开（初始状态 / 放弃重连后的终态）
	ConnectionStatusReconnecting ConnectionStatus = "reconnecting" // 连接尝试中
	ConnectionStatusConnected    ConnectionStatus = "connected"    // 已连接
)

// String 实现Stringer接口
func (s ConnectionStatus) String() string {
	return string(s)
}

// IsValid 检查连接状态是否有效
func (s ConnectionStatus) IsValid() bool {
	return ConnectionStatusValidator.IsValid(s)
}

// NotificationType 推送通知类型（信封中的 type 字段）
type NotificationType string

const (
	NotificationTypeConnectionEstablished NotificationType = "connection_established" // 连接建立
	NotificationTypeNewMessage            NotificationType = "new_message"            // 新消息
	NotificationTypeChatUpdate            NotificationType = "chat_update"            // 会话变更
)

// String 实现Stringer接口
func (t NotificationType) String() string {
	return string(t)
}

// IsValid 检查通知类型是否有效
func (t NotificationType) IsValid() bool {
	return NotificationTypeValidator.IsValid(t)
}

// ChatUpdateType 会话变更类型
type ChatUpdateType string

const (
	ChatUpdateTypeAssigned      ChatUpdateType = "assigned"       // 已分配
	ChatUpdateTypeEscalated     ChatUpdateType = "escalated"      // 已升级
	ChatUpdateTypeStatusChanged ChatUpdateType = "status_changed" // 状态变更
	ChatUpdateTypeResolved      ChatUpdateType = "resolved"       // 已解决
)

// String 实现Stringer接口
func (t ChatUpdateType) String() string {
	return string(t)
}

// IsValid 检查会话变更类型是否有效，空值表示未指定，视为有效
func (t ChatUpdateType) IsValid() bool {
	return t == "" || ChatUpdateTypeValidator.IsValid(t)
}

// CloseReason 通道关闭原因
type CloseReason string

const (
	CloseReasonTransportError    CloseReason = "transport_error"    // 传输层错误（拨号失败/读错误）
	CloseReasonAbnormal          CloseReason = "abnormal_closure"   // 服务端异常关闭
	CloseReasonNormal            CloseReason = "normal_closure"     // 服务端正常关闭（1000）
	CloseReasonCredentialRevoked CloseReason = "credential_revoked" // 凭证被撤销
	CloseReasonSuperseded        CloseReason = "superseded"         // 被新的连接尝试取代
	CloseReasonManualReconnect   CloseReason = "manual_reconnect"   // 手动重连
	CloseReasonTeardown          CloseReason = "teardown"           // 管理器销毁
)

// String 实现Stringer接口
func (r CloseReason) String() string {
	return string(r)
}

// IsIntentional 是否为主动关闭，主动关闭不触发自动重连
func (r CloseReason) IsIntentional() bool {
	switch r {
	case CloseReasonNormal, CloseReasonCredentialRevoked, CloseReasonSuperseded,
		CloseReasonManualReconnect, CloseReasonTeardown:
		return true
	default:
		return false
	}
}
