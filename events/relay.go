/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2026-10-15 15:00:00
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-10-17 09:41:30
 * @FilePath: \go-notify\events\relay.go
 * @Description: 通知中继 - 将已接受的通知转发到同一会话的其他进程
 *
 * Copyright (c) 2026 by kamalyes, All Rights Reserved.
 */

package events

import (
	"context"
	"sync/atomic"

	"github.com/kamalyes/go-cachex"
	"github.com/kamalyes/go-logger"
	"github.com/kamalyes/go-notify/models"
)

// Relay 通知中继，作为监听器挂到管理器上
// 仅尽力转发，不保证送达，也不保留历史
type Relay struct {
	pubsub    *cachex.PubSub
	logger    logger.ILogger
	ctx       context.Context
	prefix    string
	published atomic.Int64
	failed    atomic.Int64
}

// RelayOption 中继选项
type RelayOption func(*Relay)

// WithRelayContext 发布使用的上下文，取消后发布失败只记录调试日志
func WithRelayContext(ctx context.Context) RelayOption {
	return func(r *Relay) {
		if ctx != nil {
			r.ctx = ctx
		}
	}
}

// WithChannelPrefix 频道前缀
func WithChannelPrefix(prefix string) RelayOption {
	return func(r *Relay) {
		r.prefix = prefix
	}
}

// NewRelay 创建通知中继，pubsub 为 nil 时发布为空操作
func NewRelay(pubsub *cachex.PubSub, log logger.ILogger, opts ...RelayOption) *Relay {
	if log == nil {
		log = logger.NewEmptyLogger()
	}
	r := &Relay{
		pubsub: pubsub,
		logger: log,
		ctx:    context.Background(),
		prefix: DefaultChannelPrefix,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// GetPubSub 实现 Publisher
func (r *Relay) GetPubSub() *cachex.PubSub { return r.pubsub }

// GetLogger 实现 Publisher
func (r *Relay) GetLogger() logger.ILogger { return r.logger }

// GetContext 实现 Publisher
func (r *Relay) GetContext() context.Context { return r.ctx }

// GetChannelPrefix 实现 Publisher
func (r *Relay) GetChannelPrefix() string { return r.prefix }

// Publish 转发单条通知
func (r *Relay) Publish(n models.Notification) error {
	if err := PublishNotification(r, n); err != nil {
		r.failed.Add(1)
		return err
	}
	if r.pubsub != nil {
		r.published.Add(1)
	}
	return nil
}

// Listener 返回可注册到管理器的监听器
func (r *Relay) Listener() Listener {
	return r.Publish
}

// Attach 订阅管理器的通知并转发，返回解除函数
// subscribe 通常为 (*channel.Manager).Subscribe
func (r *Relay) Attach(subscribe func(Listener) func()) (detach func()) {
	r.logger.InfoKV("🔗 通知中继已挂载", "prefix", r.prefix, "enabled", r.pubsub != nil)
	return subscribe(r.Listener())
}

// Subscribe 订阅其他进程转发的通知
func (r *Relay) Subscribe(types []models.NotificationType, handler NotificationHandler) (func() error, error) {
	return SubscribeNotificationsWith(r, types, handler)
}

// Published 成功转发次数
func (r *Relay) Published() int64 { return r.published.Load() }

// Failed 转发失败次数
func (r *Relay) Failed() int64 { return r.failed.Load() }
