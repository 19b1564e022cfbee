/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2026-10-12 10:35:00
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-10-15 09:12:44
 * @FilePath: \go-notify\models\notification.go
 * @Description: 推送通知模型 - 连接建立 / 新消息 / 会话变更三种变体
 *
 * Copyright (c) 2026 by kamalyes, All Rights Reserved.
 */

package models

// Notification 推送通知（标签联合），具体变体见下方结构体
type Notification interface {
	// Type 返回通知类型
	Type() NotificationType
	// GetTimestamp 返回信封中的 ISO-8601 时间戳（原样保留）
	GetTimestamp() string
}

// ConnectionEstablished 连接建立通知，仅作提示用途，永不去重
type ConnectionEstablished struct {
	Timestamp       string `json:"-"`
	Message         string `json:"message"`
	ConnectionCount int    `json:"connection_count"`
}

// Type 实现 Notification
func (n *ConnectionEstablished) Type() NotificationType {
	return NotificationTypeConnectionEstablished
}

// GetTimestamp 实现 Notification
func (n *ConnectionEstablished) GetTimestamp() string {
	return n.Timestamp
}

// NewMessage 新消息通知
type NewMessage struct {
	Timestamp       string  `json:"-"`
	ChatID          string  `json:"chat_id"`
	MessageID       string  `json:"message_id"`
	CustomerID      string  `json:"customer_id"`
	CustomerName    string  `json:"customer_name"`
	MessageContent  string  `json:"message_content"`
	Channel         string  `json:"channel"`
	HandledBy       string  `json:"handled_by"`
	IsNewChat       bool    `json:"is_new_chat"`
	WasReopened     bool    `json:"was_reopened"`
	AssignedAgentID *string `json:"assigned_agent_id,omitempty"`
}

// Type 实现 Notification
func (n *NewMessage) Type() NotificationType {
	return NotificationTypeNewMessage
}

// GetTimestamp 实现 Notification
func (n *NewMessage) GetTimestamp() string {
	return n.Timestamp
}

// ChatUpdate 会话变更通知（分配、升级、状态变更、解决）
// 事件本身没有唯一ID，去重时使用 chat_id + timestamp 合成键
type ChatUpdate struct {
	Timestamp       string         `json:"-"`
	UpdateType      ChatUpdateType `json:"update_type,omitempty"`
	ChatID          string         `json:"chat_id"`
	FromAgent       *string        `json:"from_agent,omitempty"`
	ToAgent         *string        `json:"to_agent,omitempty"`
	Reason          *string        `json:"reason,omitempty"`
	Status          *string        `json:"status,omitempty"`
	AssignedAgentID *string        `json:"assigned_agent_id,omitempty"`
	Extra           map[string]any `json:"-"` // 未识别的附加字段
}

// Type 实现 Notification
func (n *ChatUpdate) Type() NotificationType {
	return NotificationTypeChatUpdate
}

// GetTimestamp 实现 Notification
func (n *ChatUpdate) GetTimestamp() string {
	return n.Timestamp
}

// StringPtr 返回字符串指针，便于构造可选字段
func StringPtr(s string) *string {
	return &s
}
