/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2026-10-18 10:12:40
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-10-18 10:12:40
 * @FilePath: \go-notify\metrics.go
 * @Description: Prometheus 指标导出
 *
 * Copyright (c) 2026 by kamalyes, All Rights Reserved.
 */
package notify

import (
	"github.com/kamalyes/go-notify/channel"
	"github.com/kamalyes/go-toolbox/pkg/mathx"
	"github.com/prometheus/client_golang/prometheus"
)

// DefaultMetricsNamespace 默认指标命名空间
const DefaultMetricsNamespace = "notify"

// StatsCollector 把 Manager 的统计快照导出为 Prometheus 指标
// 每次 Collect 都读取最新快照，不持有额外状态
type StatsCollector struct {
	manager *channel.Manager

	framesReceived    *prometheus.Desc
	parseErrors       *prometheus.Desc
	duplicatesDropped *prometheus.Desc
	delivered         *prometheus.Desc
	listenerFailures  *prometheus.Desc
	connectionsOpened *prometheus.Desc
	dialFailures      *prometheus.Desc
	connected         *prometheus.Desc
	reconnectAttempts *prometheus.Desc
	exhausted         *prometheus.Desc
	unread            *prometheus.Desc
}

// NewStatsCollector 创建指标收集器，namespace 为空时使用 DefaultMetricsNamespace
func NewStatsCollector(m *channel.Manager, namespace string, constLabels prometheus.Labels) *StatsCollector {
	namespace = mathx.IF(namespace == "", DefaultMetricsNamespace, namespace)
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "channel", name), help, nil, constLabels)
	}

	return &StatsCollector{
		manager:           m,
		framesReceived:    desc("frames_received_total", "Total text frames received from the push server"),
		parseErrors:       desc("parse_errors_total", "Total frames that failed to decode"),
		duplicatesDropped: desc("duplicates_dropped_total", "Total notifications dropped as duplicates"),
		delivered:         desc("notifications_delivered_total", "Total notifications delivered to subscribers"),
		listenerFailures:  desc("listener_failures_total", "Total subscriber callbacks that panicked or returned an error"),
		connectionsOpened: desc("connections_opened_total", "Total successful connections"),
		dialFailures:      desc("dial_failures_total", "Total failed connection attempts"),
		connected:         desc("connected", "Whether the channel is currently connected"),
		reconnectAttempts: desc("reconnect_attempts", "Consecutive reconnect attempts since the last successful connection"),
		exhausted:         desc("reconnect_exhausted", "Whether automatic reconnection has given up"),
		unread:            desc("unread", "Current unread notification count"),
	}
}

// Describe 实现 prometheus.Collector
func (c *StatsCollector) Describe(ch chan<- *prometheus.Desc) {
	for _, d := range c.descs() {
		ch <- d
	}
}

// Collect 实现 prometheus.Collector
func (c *StatsCollector) Collect(ch chan<- prometheus.Metric) {
	stats := c.manager.Stats()

	counter := func(d *prometheus.Desc, v int64) {
		ch <- prometheus.MustNewConstMetric(d, prometheus.CounterValue, float64(v))
	}
	gauge := func(d *prometheus.Desc, v float64) {
		ch <- prometheus.MustNewConstMetric(d, prometheus.GaugeValue, v)
	}

	counter(c.framesReceived, stats.FramesReceived)
	counter(c.parseErrors, stats.ParseErrors)
	counter(c.duplicatesDropped, stats.DuplicatesDropped)
	counter(c.delivered, stats.NotificationsDelivered)
	counter(c.listenerFailures, stats.ListenerFailures)
	counter(c.connectionsOpened, stats.ConnectionsOpened)
	counter(c.dialFailures, stats.DialFailures)

	gauge(c.connected, boolToFloat(c.manager.IsConnected()))
	gauge(c.reconnectAttempts, float64(c.manager.ReconnectAttempts()))
	gauge(c.exhausted, boolToFloat(c.manager.IsExhausted()))
	gauge(c.unread, float64(c.manager.Unread().Count()))
}

func (c *StatsCollector) descs() []*prometheus.Desc {
	return []*prometheus.Desc{
		c.framesReceived, c.parseErrors, c.duplicatesDropped, c.delivered,
		c.listenerFailures, c.connectionsOpened, c.dialFailures,
		c.connected, c.reconnectAttempts, c.exhausted, c.unread,
	}
}

// RegisterMetrics 创建收集器并注册到 reg
func RegisterMetrics(reg prometheus.Registerer, m *channel.Manager, namespace string) (*StatsCollector, error) {
	c := NewStatsCollector(m, namespace, nil)
	if err := reg.Register(c); err != nil {
		return nil, err
	}
	return c, nil
}

func boolToFloat(b bool) float64 {
	return mathx.IF(b, 1.0, 0.0)
}
