/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2026-10-12 10:20:00
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-10-12 10:20:00
 * @FilePath: \go-notify\models\validator.go
 * @Description: 枚举验证器集中管理
 *
 * Copyright (c) 2026 by kamalyes, All Rights Reserved.
 */
package models

import (
	"github.com/kamalyes/go-toolbox/pkg/types"
)

// 全局枚举验证器实例
var (
	// ConnectionStatusValidator 连接状态验证器
	ConnectionStatusValidator = types.NewEnumValidator(
		ConnectionStatusDisconnected,
		ConnectionStatusReconnecting,
		ConnectionStatusConnected,
	)

	// NotificationTypeValidator 通知类型验证器
	NotificationTypeValidator = types.NewEnumValidator(
		NotificationTypeConnectionEstablished,
		NotificationTypeNewMessage,
		NotificationTypeChatUpdate,
	)

	// ChatUpdateTypeValidator 会话变更类型验证器
	ChatUpdateTypeValidator = types.NewEnumValidator(
		ChatUpdateTypeAssigned,
		ChatUpdateTypeEscalated,
		ChatUpdateTypeStatusChanged,
		ChatUpdateTypeResolved,
	)
)
