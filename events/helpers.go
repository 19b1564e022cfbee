/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2026-10-15 14:00:00
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-10-16 10:05:15
 * @FilePath: \go-notify\events\helpers.go
 * @Description: 发布订阅辅助函数
 *
 * Copyright (c) 2026 by kamalyes, All Rights Reserved.
 */

package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/kamalyes/go-notify/models"
	"github.com/kamalyes/go-notify/protocol"
	"github.com/kamalyes/go-toolbox/pkg/convert"
	"github.com/kamalyes/go-toolbox/pkg/errorx"
)

// DefaultPublishTimeout 单次发布超时
const DefaultPublishTimeout = 5 * time.Second

// publishHelper 通用的发布辅助函数
// 参数：
//   - p: Publisher 发布器
//   - channel: 频道名
//   - payload: 已编码的信封
//   - timeout: 发布超时
//   - logFields: 日志字段键值对
func publishHelper(p Publisher, channel string, payload []byte, timeout time.Duration, logFields map[string]interface{}) error {
	pubsub := p.GetPubSub()
	if pubsub == nil {
		p.GetLogger().DebugKV("PubSub未设置,跳过通知转发", "channel", channel)
		return nil
	}

	ctx, cancel := context.WithTimeout(p.GetContext(), timeout)
	defer cancel()

	if err := pubsub.Publish(ctx, channel, json.RawMessage(payload)); err != nil {
		// 区分上下文取消和其他错误
		if ctx.Err() == context.Canceled || p.GetContext().Err() != nil {
			baseFields := map[string]interface{}{"channel": channel}
			p.GetLogger().DebugKV("转发通知被取消（中继可能正在关闭）", convert.MergeMapToKVPairs(baseFields, logFields)...)
		} else {
			baseFields := map[string]interface{}{"channel": channel, "error": err}
			p.GetLogger().WarnKV("转发通知失败", convert.MergeMapToKVPairs(baseFields, logFields)...)
		}
		return errorx.WrapError("publish notification failed", err)
	}

	baseFields := map[string]interface{}{"channel": channel, "size": len(payload)}
	p.GetLogger().DebugKV("📢 转发通知", convert.MergeMapToKVPairs(baseFields, logFields)...)
	return nil
}

// subscribeHelper 通用的订阅辅助函数，收到的消息按信封解码后交给 handler
// 返回：
//   - unsubscribe: 取消订阅函数
//   - error: 订阅失败时返回错误
func subscribeHelper(p Publisher, channels []string, handler func(models.Notification) error) (func() error, error) {
	pubsub := p.GetPubSub()
	if pubsub == nil {
		return nil, ErrPubSubNotSet
	}

	p.GetLogger().InfoKV("📡 订阅通知中继", "channels", channels)

	subscriber, err := pubsub.Subscribe(
		channels,
		func(ctx context.Context, channel string, message string) error {
			n, err := protocol.Decode([]byte(message))
			if err != nil {
				p.GetLogger().WarnKV("中继通知解码失败",
					"channel", channel,
					"error", err,
					"size", len(message),
				)
				return err
			}
			return handler(n)
		},
	)
	if err != nil {
		return nil, err
	}

	return func() error {
		return subscriber.Unsubscribe()
	}, nil
}
