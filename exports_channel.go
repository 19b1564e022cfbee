/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2026-10-16 11:20:00
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-10-17 10:02:11
 * @FilePath: \go-notify\exports_channel.go
 * @Description: Channel 模块类型导出
 *
 * Copyright (c) 2026 by kamalyes, All Rights Reserved.
 */

package notify

import "github.com/kamalyes/go-notify/channel"

// ============================================
// Manager - 连接管理器
// ============================================

// Manager 连接管理器
type Manager = channel.Manager

// Option 管理器选项
type Option = channel.Option

// Listener 通知监听器
type Listener = channel.Listener

// StatusChangeFunc 状态变更回调
type StatusChangeFunc = channel.StatusChangeFunc

// GiveUpFunc 放弃重连回调
type GiveUpFunc = channel.GiveUpFunc

// ChannelStats 通道统计快照
type ChannelStats = channel.ChannelStats

// NewManager 创建连接管理器
var NewManager = channel.NewManager

// 管理器选项
var (
	WithBaseURL               = channel.WithBaseURL
	WithPolicy                = channel.WithPolicy
	WithDialer                = channel.WithDialer
	WithLogger                = channel.WithLogger
	WithDedupCapacity         = channel.WithDedupCapacity
	WithReadLimit             = channel.WithReadLimit
	WithHandshakeTimeout      = channel.WithHandshakeTimeout
	WithAutoReconnect         = channel.WithAutoReconnect
	WithResetAttemptsOnManual = channel.WithResetAttemptsOnManual
	WithRequestHeader         = channel.WithRequestHeader
)

// ============================================
// 组件
// ============================================

// ReconnectPolicy 重连策略
type ReconnectPolicy = channel.ReconnectPolicy

// DefaultReconnectPolicy 默认重连策略（1s / 30s / x2 / 10次）
var DefaultReconnectPolicy = channel.DefaultReconnectPolicy

// ProcessedIDSet 已处理ID集合
type ProcessedIDSet = channel.ProcessedIDSet

// NewProcessedIDSet 创建已处理ID集合
var NewProcessedIDSet = channel.NewProcessedIDSet

// IdentityOf 计算通知的去重标识
var IdentityOf = channel.IdentityOf

// SubscriberRegistry 订阅者注册表
type SubscriberRegistry = channel.SubscriberRegistry

// NewSubscriberRegistry 创建订阅者注册表
var NewSubscriberRegistry = channel.NewSubscriberRegistry

// UnreadCounter 未读计数器
type UnreadCounter = channel.UnreadCounter
