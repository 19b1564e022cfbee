/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2026-10-16 11:30:00
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-10-16 13:05:15
 * @FilePath: \go-notify\exports_events.go
 * @Description: 导出通知中继
 *
 * Copyright (c) 2026 by kamalyes, All Rights Reserved.
 */

package notify

import (
	"github.com/kamalyes/go-notify/events"
)

// Relay 通知中继
type Relay = events.Relay

// NewRelay 创建通知中继
var NewRelay = events.NewRelay

// PublishNotification 转发单条通知
var PublishNotification = events.PublishNotification

// SubscribeNotifications 订阅中继通知
var SubscribeNotifications = events.SubscribeNotifications
