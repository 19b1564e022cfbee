/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2026-10-15 14:00:00
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-10-16 10:10:15
 * @FilePath: \go-notify\events\publisher.go
 * @Description: 通知中继发布器接口
 *
 * Copyright (c) 2026 by kamalyes, All Rights Reserved.
 */

package events

import (
	"context"

	"github.com/kamalyes/go-cachex"
	"github.com/kamalyes/go-logger"
)

// Publisher 通知中继发布器接口
type Publisher interface {
	// GetPubSub 获取 PubSub 实例
	GetPubSub() *cachex.PubSub

	// GetLogger 获取日志器
	GetLogger() logger.ILogger

	// GetContext 获取上下文
	GetContext() context.Context

	// GetChannelPrefix 获取频道前缀
	GetChannelPrefix() string
}
