/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2026-10-12 14:10:00
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-10-16 11:05:37
 * @FilePath: \go-notify\protocol\envelope.go
 * @Description: 推送信封编解码 - 入站帧 JSON 文本 <-> models.Notification
 *
 * Copyright (c) 2026 by kamalyes, All Rights Reserved.
 */

package protocol

import (
	"bytes"
	"encoding/json"

	"github.com/kamalyes/go-notify/models"
	"github.com/kamalyes/go-toolbox/pkg/errorx"
)

// Envelope 入站帧信封
type Envelope struct {
	Type            models.NotificationType `json:"type"`
	Timestamp       string                  `json:"timestamp"`
	Message         *string                 `json:"message,omitempty"`          // 仅 connection_established
	ConnectionCount *int                    `json:"connection_count,omitempty"` // 仅 connection_established
	Data            json.RawMessage         `json:"data,omitempty"`
}

// chatUpdateKnownFields ChatUpdate 中已建模的字段，其余字段进入 Extra
var chatUpdateKnownFields = map[string]struct{}{
	"update_type":       {},
	"chat_id":           {},
	"from_agent":        {},
	"to_agent":          {},
	"reason":            {},
	"status":            {},
	"assigned_agent_id": {},
}

// Decode 解析一帧文本为通知
// 无效 JSON、缺失 data、缺失去重标识字段、未知 update_type 返回 ErrTypeInvalidFrame，
// 未知 type 返回 ErrTypeUnknownNotification
func Decode(frame []byte) (models.Notification, error) {
	var env Envelope
	if err := json.Unmarshal(frame, &env); err != nil {
		return nil, errorx.NewError(models.ErrTypeInvalidFrame, err.Error())
	}

	switch env.Type {
	case models.NotificationTypeConnectionEstablished:
		n := &models.ConnectionEstablished{Timestamp: env.Timestamp}
		if env.Message != nil {
			n.Message = *env.Message
		}
		if env.ConnectionCount != nil {
			n.ConnectionCount = *env.ConnectionCount
		}
		return n, nil

	case models.NotificationTypeNewMessage:
		if !isObject(env.Data) {
			return nil, errorx.NewError(models.ErrTypeInvalidFrame, "new_message without data object")
		}
		n := &models.NewMessage{}
		if err := json.Unmarshal(env.Data, n); err != nil {
			return nil, errorx.NewError(models.ErrTypeInvalidFrame, err.Error())
		}
		if n.MessageID == "" {
			return nil, errorx.NewError(models.ErrTypeInvalidFrame, "new_message without message_id")
		}
		n.Timestamp = env.Timestamp
		return n, nil

	case models.NotificationTypeChatUpdate:
		if !isObject(env.Data) {
			return nil, errorx.NewError(models.ErrTypeInvalidFrame, "chat_update without data object")
		}
		n := &models.ChatUpdate{}
		if err := json.Unmarshal(env.Data, n); err != nil {
			return nil, errorx.NewError(models.ErrTypeInvalidFrame, err.Error())
		}
		// chat_id 与 timestamp 共同构成去重标识
		if n.ChatID == "" || env.Timestamp == "" {
			return nil, errorx.NewError(models.ErrTypeInvalidFrame, "chat_update without chat_id or timestamp")
		}
		if !n.UpdateType.IsValid() {
			return nil, errorx.NewError(models.ErrTypeInvalidFrame, "unknown update_type "+string(n.UpdateType))
		}
		extra, err := extraFields(env.Data)
		if err != nil {
			return nil, errorx.NewError(models.ErrTypeInvalidFrame, err.Error())
		}
		n.Extra = extra
		n.Timestamp = env.Timestamp
		return n, nil

	default:
		return nil, errorx.NewError(models.ErrTypeUnknownNotification, string(env.Type))
	}
}

// Encode 将通知编码为信封文本，供演示服务端与中继使用
func Encode(n models.Notification) ([]byte, error) {
	env := Envelope{
		Type:      n.Type(),
		Timestamp: n.GetTimestamp(),
	}

	switch v := n.(type) {
	case *models.ConnectionEstablished:
		env.Message = &v.Message
		env.ConnectionCount = &v.ConnectionCount

	case *models.NewMessage:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, errorx.WrapError("failed to marshal new_message data", err)
		}
		env.Data = data

	case *models.ChatUpdate:
		data, err := encodeChatUpdate(v)
		if err != nil {
			return nil, err
		}
		env.Data = data

	default:
		return nil, errorx.NewError(models.ErrTypeUnknownNotification, string(n.Type()))
	}

	return json.Marshal(env)
}

// encodeChatUpdate 先写入 Extra，再由已建模字段覆盖同名键
func encodeChatUpdate(v *models.ChatUpdate) ([]byte, error) {
	known, err := json.Marshal(v)
	if err != nil {
		return nil, errorx.WrapError("failed to marshal chat_update data", err)
	}
	if len(v.Extra) == 0 {
		return known, nil
	}

	var knownMap map[string]any
	if err := json.Unmarshal(known, &knownMap); err != nil {
		return nil, errorx.WrapError("failed to merge chat_update data", err)
	}
	merged := make(map[string]any, len(v.Extra)+len(knownMap))
	for k, val := range v.Extra {
		merged[k] = val
	}
	for k, val := range knownMap {
		merged[k] = val
	}
	return json.Marshal(merged)
}

// extraFields 提取 ChatUpdate 未建模的字段
func extraFields(data json.RawMessage) (map[string]any, error) {
	var all map[string]any
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	for k := range chatUpdateKnownFields {
		delete(all, k)
	}
	if len(all) == 0 {
		return nil, nil
	}
	return all, nil
}

// isObject 判断 RawMessage 是否为 JSON 对象
func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}
