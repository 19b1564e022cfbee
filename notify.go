/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2026-10-16 09:50:55
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-10-17 16:40:20
 * @FilePath: \go-notify\notify.go
 * @Description: 通知通道客户端入口
 *
 * Copyright (c) 2026 by kamalyes, All Rights Reserved.
 */
package notify

import (
	"github.com/kamalyes/go-cachex"
	"github.com/kamalyes/go-notify/channel"
	"github.com/kamalyes/go-notify/events"
)

// New 按配置创建连接管理器
// cfg 为 nil 时使用默认配置；opts 在配置之后生效，可覆盖配置项
// 配置问题只记录日志，不阻止创建
func New(cfg *Config, opts ...channel.Option) *channel.Manager {
	if cfg == nil {
		cfg = NewDefaultConfig()
	}

	log := initLogger(cfg.Logging)
	for _, result := range NewConfigValidator().Validate(cfg) {
		if result.Level < ValidationLevelWarning {
			continue
		}
		log.WarnKV("⚠️ 配置检查", "field", result.Field, "message", result.Message, "suggestion", result.Suggestion)
	}

	all := append(cfg.Options(), channel.WithLogger(log))
	all = append(all, opts...)
	return channel.NewManager(all...)
}

// NewWithRelay 创建连接管理器并挂载通知中继
// 返回的 detach 用于解除中继，管理器销毁时无需单独调用
func NewWithRelay(cfg *Config, pubsub *cachex.PubSub, opts ...channel.Option) (*channel.Manager, *events.Relay, func()) {
	if cfg == nil {
		cfg = NewDefaultConfig()
	}
	m := New(cfg, opts...)
	relay := events.NewRelay(pubsub, initLogger(cfg.Logging))
	detach := relay.Attach(m.Subscribe)
	return m, relay, detach
}
