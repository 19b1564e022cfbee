/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2026-10-15 14:20:00
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-10-16 10:20:15
 * @FilePath: \go-notify\events\common.go
 * @Description: 通知中继通用发布订阅方法
 *
 * Copyright (c) 2026 by kamalyes, All Rights Reserved.
 */

package events

import (
	"github.com/kamalyes/go-cachex"
	"github.com/kamalyes/go-logger"
	"github.com/kamalyes/go-notify/models"
	"github.com/kamalyes/go-notify/protocol"
	"github.com/kamalyes/go-toolbox/pkg/errorx"
)

// ChannelName 通知类型对应的频道名
func ChannelName(prefix string, t models.NotificationType) string {
	if prefix == "" {
		return t.String()
	}
	return prefix + "." + t.String()
}

// PublishNotification 转发单条通知
// PubSub 未设置时为空操作
func PublishNotification(p Publisher, n models.Notification) error {
	if n == nil {
		return nil
	}
	payload, err := protocol.Encode(n)
	if err != nil {
		p.GetLogger().WarnKV("通知编码失败", "type", n.Type().String(), "error", err)
		return errorx.WrapError("encode notification failed", err)
	}
	return publishHelper(p, ChannelName(p.GetChannelPrefix(), n.Type()), payload, DefaultPublishTimeout,
		map[string]interface{}{"type": n.Type().String()})
}

// SubscribeNotificationsWith 通过 Publisher 订阅指定类型的中继通知
// types 为空时订阅全部已知类型
func SubscribeNotificationsWith(p Publisher, types []models.NotificationType, handler NotificationHandler) (func() error, error) {
	if len(types) == 0 {
		types = []models.NotificationType{
			models.NotificationTypeConnectionEstablished,
			models.NotificationTypeNewMessage,
			models.NotificationTypeChatUpdate,
		}
	}
	channels := make([]string, 0, len(types))
	for _, t := range types {
		channels = append(channels, ChannelName(p.GetChannelPrefix(), t))
	}
	return subscribeHelper(p, channels, handler)
}

// SubscribeNotifications 订阅中继通知（接收端）
//
// 使用示例：
//
//	unsubscribe, err := SubscribeNotifications(pubsub, log, []models.NotificationType{models.NotificationTypeNewMessage},
//	    func(n models.Notification) error {
//	        msg := n.(*models.NewMessage)
//	        处理消息...
//	        return nil
//	    })
//	if err != nil { return err }
//	defer unsubscribe()
func SubscribeNotifications(pubsub *cachex.PubSub, log logger.ILogger, types []models.NotificationType, handler NotificationHandler) (func() error, error) {
	return SubscribeNotificationsWith(NewRelay(pubsub, log), types, handler)
}
