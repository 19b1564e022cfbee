/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2026-10-15 14:00:00
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-10-16 09:58:55
 * @FilePath: \go-notify\events\aliases.go
 * @Description: 中继错误与类型别名
 *
 * Copyright (c) 2026 by kamalyes, All Rights Reserved.
 */

package events

import (
	"github.com/kamalyes/go-notify/channel"
	"github.com/kamalyes/go-notify/models"
)

// 错误类型别名（从 models 包导入）
type ErrorType = models.ErrorType

const (
	ErrTypePubSubNotSet = models.ErrTypePubSubNotSet
)

// 错误变量别名（从 models 包导入）
var (
	ErrPubSubNotSet = models.ErrPubSubNotSet
)

// NotificationHandler 中继通知处理器
type NotificationHandler = func(models.Notification) error

// Listener 管理器监听器
type Listener = channel.Listener

// DefaultChannelPrefix 默认频道前缀，频道名为 <prefix>.<type>
const DefaultChannelPrefix = "notify"
