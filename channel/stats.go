/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2026-10-14 09:30:00
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-10-14 09:30:00
 * @FilePath: \go-notify\channel\stats.go
 * @Description: 通道统计指标
 *
 * Copyright (c) 2026 by kamalyes, All Rights Reserved.
 */

package channel

import (
	"sync/atomic"
	"time"
)

// ChannelStats 通道统计快照
type ChannelStats struct {
	FramesReceived         int64     `json:"frames_received"`
	ParseErrors            int64     `json:"parse_errors"`
	DuplicatesDropped      int64     `json:"duplicates_dropped"`
	NotificationsDelivered int64     `json:"notifications_delivered"`
	ListenerFailures       int64     `json:"listener_failures"`
	ConnectionsOpened      int64     `json:"connections_opened"`
	DialFailures           int64     `json:"dial_failures"`
	LastConnectedAt        time.Time `json:"last_connected_at,omitempty"`
	LastDisconnectedAt     time.Time `json:"last_disconnected_at,omitempty"`
}

// statsCollector 原子计数器
type statsCollector struct {
	framesReceived     atomic.Int64
	parseErrors        atomic.Int64
	duplicatesDropped  atomic.Int64
	delivered          atomic.Int64
	connectionsOpened  atomic.Int64
	dialFailures       atomic.Int64
	lastConnectedAt    atomic.Int64 // UnixNano
	lastDisconnectedAt atomic.Int64 // UnixNano
}

func (s *statsCollector) markConnected() {
	s.connectionsOpened.Add(1)
	s.lastConnectedAt.Store(time.Now().UnixNano())
}

func (s *statsCollector) markDisconnected() {
	s.lastDisconnectedAt.Store(time.Now().UnixNano())
}

// snapshot 生成快照，listenerFailures 由注册表提供
func (s *statsCollector) snapshot(listenerFailures int64) ChannelStats {
	return ChannelStats{
		FramesReceived:         s.framesReceived.Load(),
		ParseErrors:            s.parseErrors.Load(),
		DuplicatesDropped:      s.duplicatesDropped.Load(),
		NotificationsDelivered: s.delivered.Load(),
		ListenerFailures:       listenerFailures,
		ConnectionsOpened:      s.connectionsOpened.Load(),
		DialFailures:           s.dialFailures.Load(),
		LastConnectedAt:        unixNanoToTime(s.lastConnectedAt.Load()),
		LastDisconnectedAt:     unixNanoToTime(s.lastDisconnectedAt.Load()),
	}
}

func unixNanoToTime(v int64) time.Time {
	if v == 0 {
		return time.Time{}
	}
	return time.Unix(0, v)
}
