/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2026-10-15 10:00:00
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-10-17 15:40:11
 * @FilePath: \go-notify\channel\manager_test.go
 * @Description: 连接管理器测试
 *
 * Copyright (c) 2026 by kamalyes, All Rights Reserved.
 */

package channel

import (
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/kamalyes/go-notify/models"
	"github.com/kamalyes/go-notify/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	frameM1 = `{"type":"new_message","timestamp":"2026-10-15T10:00:00Z","data":{"chat_id":"c1","message_id":"m1","customer_name":"Alice","message_content":"hi"}}`
	frameM2 = `{"type":"new_message","timestamp":"2026-10-15T10:00:01Z","data":{"chat_id":"c1","message_id":"m2","customer_name":"Alice","message_content":"again"}}`
)

// messageCollector 收集 NewMessage 的 message_id
type messageCollector struct {
	mu  sync.Mutex
	ids []string
}

func (c *messageCollector) listener(n models.Notification) error {
	if msg, ok := n.(*models.NewMessage); ok {
		c.mu.Lock()
		c.ids = append(c.ids, msg.MessageID)
		c.mu.Unlock()
	}
	return nil
}

func (c *messageCollector) list() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.ids...)
}

func newTestManager(t *testing.T, opts ...Option) *Manager {
	t.Helper()
	m := NewManager(opts...)
	t.Cleanup(m.Close)
	return m
}

// TestManagerEndToEnd 连接 -> 收到消息 -> 重复消息丢弃 -> 异常断开 -> 约 1s 后重连
func TestManagerEndToEnd(t *testing.T) {
	server := newPushServer(t)
	m := newTestManager(t, WithBaseURL(server.URL))
	rec := recordStatus(m)

	collector := &messageCollector{}
	m.Subscribe(collector.listener)

	assert.Equal(t, models.ConnectionStatusDisconnected, m.Status())
	m.SetCredentials("tok-1", "org-1")

	waitFor(t, func() bool { return rec.count() == 2 }, 3*time.Second, "应该连接成功")
	server.waitConns(t, 1)
	assert.Equal(t, []models.ConnectionStatus{
		models.ConnectionStatusReconnecting,
		models.ConnectionStatusConnected,
	}, rec.list())
	assert.Equal(t, "/ws/org-1?token=tok-1", server.query(0))

	server.push(t, frameM1)
	waitFor(t, func() bool { return len(collector.list()) == 1 }, 2*time.Second, "应该收到 m1")

	// 重复帧后紧跟一条新帧，新帧到达说明重复帧已处理完
	server.push(t, frameM1)
	server.push(t, frameM2)
	waitFor(t, func() bool { return len(collector.list()) == 2 }, 2*time.Second, "应该收到 m2")
	assert.Equal(t, []string{"m1", "m2"}, collector.list())
	assert.Equal(t, int64(1), m.Stats().DuplicatesDropped)

	server.dropLatest()
	waitFor(t, func() bool { return rec.count() >= 3 }, 2*time.Second, "应该断开")
	assert.Equal(t, models.ConnectionStatusDisconnected, rec.list()[2])

	waitFor(t, func() bool { return rec.count() >= 4 }, 3*time.Second, "应该开始重连")
	assert.Equal(t, models.ConnectionStatusReconnecting, rec.list()[3])
	elapsed := rec.time(3).Sub(rec.time(2))
	assert.GreaterOrEqual(t, elapsed, 900*time.Millisecond)
	assert.Less(t, elapsed, 2*time.Second)

	waitFor(t, m.IsConnected, 3*time.Second, "应该重新连接")
	server.waitConns(t, 2)
	assert.Equal(t, 0, m.ReconnectAttempts(), "连接成功后尝试次数清零")
}

// TestManagerWaitsForCredentials 凭证不齐备时不发起连接
func TestManagerWaitsForCredentials(t *testing.T) {
	dialer := &failingDialer{}
	m := newTestManager(t, WithBaseURL("http://127.0.0.1"), WithDialer(dialer))

	m.SetToken("tok")
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(0), dialer.calls.Load())
	assert.Equal(t, models.ConnectionStatusDisconnected, m.Status())

	m.SetOrganization("org")
	waitFor(t, func() bool { return dialer.calls.Load() == 1 }, time.Second, "凭证齐备后应该拨号")
}

// TestManagerGiveUpAfterMaxAttempts 连续失败达到上限后放弃并通知
func TestManagerGiveUpAfterMaxAttempts(t *testing.T) {
	dialer := &failingDialer{}
	policy := ReconnectPolicy{BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond, Factor: 2, MaxAttempts: 10}
	m := newTestManager(t, WithBaseURL("http://127.0.0.1"), WithDialer(dialer), WithPolicy(policy))

	var giveUps atomic.Int32
	var lastAttempts atomic.Int32
	m.OnGiveUp(func(attempts int) {
		giveUps.Add(1)
		lastAttempts.Store(int32(attempts))
	})

	m.SetCredentials("tok", "org")
	waitFor(t, func() bool { return giveUps.Load() == 1 }, 3*time.Second, "应该放弃重连")

	assert.True(t, m.IsExhausted())
	assert.Equal(t, int32(10), lastAttempts.Load())
	assert.Equal(t, int32(11), dialer.calls.Load(), "首次连接 + 10 次重试")
	assert.Equal(t, models.ConnectionStatusDisconnected, m.Status())
	assert.Equal(t, int64(11), m.Stats().DialFailures)

	// 放弃后不再有自动尝试
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(11), dialer.calls.Load())
}

// TestManagerBackoffDelays 重连延迟序列遵循默认策略
func TestManagerBackoffDelays(t *testing.T) {
	dialer := &failingDialer{}
	sched := &manualScheduler{}
	m := newTestManager(t, WithBaseURL("http://127.0.0.1"), WithDialer(dialer), withAfterFunc(sched.afterFunc))

	m.SetCredentials("tok", "org")
	for i := 0; i < 10; i++ {
		waitFor(t, func() bool { return sched.count() == i+1 }, time.Second, "应该安排重连")
		sched.fire(i)
	}
	waitFor(t, m.IsExhausted, time.Second, "应该放弃重连")

	assert.Equal(t, []time.Duration{
		time.Second, 2 * time.Second, 4 * time.Second, 8 * time.Second, 16 * time.Second,
		30 * time.Second, 30 * time.Second, 30 * time.Second, 30 * time.Second, 30 * time.Second,
	}, sched.delayList())
	assert.Equal(t, 10, sched.count())
}

// TestManagerStaleTimerIgnored 凭证变更后旧定时器触发不产生拨号
func TestManagerStaleTimerIgnored(t *testing.T) {
	dialer := &failingDialer{}
	sched := &manualScheduler{}
	m := newTestManager(t, WithBaseURL("http://127.0.0.1"), WithDialer(dialer), withAfterFunc(sched.afterFunc))

	m.SetCredentials("tok-a", "org")
	waitFor(t, func() bool { return sched.count() == 1 }, time.Second, "应该安排第一次重连")

	m.SetCredentials("tok-b", "org")
	assert.True(t, sched.timer(0).stopped.Load(), "旧定时器应该被取消")
	waitFor(t, func() bool { return sched.count() == 2 }, time.Second, "新凭证失败后应该安排重连")
	assert.Equal(t, int32(2), dialer.calls.Load())
	assert.Equal(t, 1, m.ReconnectAttempts(), "凭证变更后从 0 重新计数")

	sched.fire(0)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(2), dialer.calls.Load(), "过期定时器应该被忽略")

	sched.fire(1)
	waitFor(t, func() bool { return dialer.calls.Load() == 3 }, time.Second, "当前定时器应该触发拨号")
}

// TestManagerCloseCancelsPendingReconnect 销毁后待执行的重连不再生效
func TestManagerCloseCancelsPendingReconnect(t *testing.T) {
	dialer := &failingDialer{}
	sched := &manualScheduler{}
	m := NewManager(WithBaseURL("http://127.0.0.1"), WithDialer(dialer), withAfterFunc(sched.afterFunc))

	m.SetCredentials("tok", "org")
	waitFor(t, func() bool { return sched.count() == 1 }, time.Second, "应该安排重连")

	m.Close()
	assert.True(t, m.IsClosed())
	assert.True(t, sched.timer(0).stopped.Load())

	sched.fire(0)
	m.Reconnect()
	m.SetCredentials("tok-2", "org-2")
	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, int32(1), dialer.calls.Load())
	assert.Equal(t, models.ConnectionStatusDisconnected, m.Status())
	m.Close()
}

// TestManagerCredentialChangeClosesBeforeReopen 凭证变更先关闭旧通道再建立新通道
func TestManagerCredentialChangeClosesBeforeReopen(t *testing.T) {
	server := newPushServer(t)
	m := newTestManager(t, WithBaseURL(server.URL))
	rec := recordStatus(m)

	m.SetCredentials("tok-a", "org-1")
	waitFor(t, m.IsConnected, 3*time.Second, "应该连接成功")
	server.waitConns(t, 1)

	m.SetCredentials("tok-b", "org-1")
	server.waitConns(t, 2)
	waitFor(t, func() bool { return rec.count() == 5 }, 3*time.Second, "应该重新连接")
	waitFor(t, func() bool { return server.isClosed(0) }, 2*time.Second, "旧连接应该被关闭")

	assert.Equal(t, "/ws/org-1?token=tok-b", server.query(1))
	assert.Equal(t, []models.ConnectionStatus{
		models.ConnectionStatusReconnecting,
		models.ConnectionStatusConnected,
		models.ConnectionStatusDisconnected,
		models.ConnectionStatusReconnecting,
		models.ConnectionStatusConnected,
	}, rec.list())

	// 相同凭证不触发重连
	m.SetCredentials("tok-b", "org-1")
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 2, server.connCount())
}

// TestManagerCredentialRevoked 清空凭证时主动关闭且不重连
func TestManagerCredentialRevoked(t *testing.T) {
	server := newPushServer(t)
	m := newTestManager(t, WithBaseURL(server.URL))

	m.SetCredentials("tok", "org")
	waitFor(t, m.IsConnected, 3*time.Second, "应该连接成功")
	server.waitConns(t, 1)

	m.SetToken("")
	assert.Equal(t, models.ConnectionStatusDisconnected, m.Status())
	waitFor(t, func() bool { return server.isClosed(0) }, 2*time.Second, "连接应该被关闭")

	time.Sleep(1200 * time.Millisecond)
	assert.Equal(t, 1, server.connCount(), "主动关闭不应重连")
	assert.Equal(t, models.ConnectionStatusDisconnected, m.Status())
}

// TestManagerServerNormalClose 服务端正常关闭不触发自动重连
func TestManagerServerNormalClose(t *testing.T) {
	server := newPushServer(t)
	m := newTestManager(t, WithBaseURL(server.URL))

	m.SetCredentials("tok", "org")
	waitFor(t, m.IsConnected, 3*time.Second, "应该连接成功")
	server.waitConns(t, 1)

	server.closeLatest(websocket.CloseNormalClosure)
	waitFor(t, func() bool { return m.Status() == models.ConnectionStatusDisconnected }, 2*time.Second, "应该断开")

	time.Sleep(1200 * time.Millisecond)
	assert.Equal(t, 1, server.connCount())
	assert.Equal(t, 0, m.ReconnectAttempts())
}

// TestManagerServerAbnormalCloseCode 非 1000 关闭码按异常关闭重连
func TestManagerServerAbnormalCloseCode(t *testing.T) {
	server := newPushServer(t)
	policy := ReconnectPolicy{BaseDelay: 10 * time.Millisecond, MaxDelay: 50 * time.Millisecond, Factor: 2, MaxAttempts: 10}
	m := newTestManager(t, WithBaseURL(server.URL), WithPolicy(policy))

	m.SetCredentials("tok", "org")
	waitFor(t, m.IsConnected, 3*time.Second, "应该连接成功")
	server.waitConns(t, 1)

	server.closeLatest(websocket.CloseGoingAway)
	server.waitConns(t, 2)
	waitFor(t, m.IsConnected, 3*time.Second, "应该重新连接")
}

// TestManagerAutoReconnectDisabled 关闭自动重连后异常断开停留在 disconnected
func TestManagerAutoReconnectDisabled(t *testing.T) {
	dialer := &failingDialer{}
	sched := &manualScheduler{}
	m := newTestManager(t, WithBaseURL("http://127.0.0.1"), WithDialer(dialer),
		withAfterFunc(sched.afterFunc), WithAutoReconnect(false))

	m.SetCredentials("tok", "org")
	waitFor(t, func() bool { return m.Stats().DialFailures == 1 }, time.Second, "应该拨号失败")
	time.Sleep(20 * time.Millisecond)

	assert.Equal(t, 0, sched.count())
	assert.Equal(t, models.ConnectionStatusDisconnected, m.Status())
	assert.False(t, m.IsExhausted())
}

// TestManagerManualReconnectCountsAttempts 手动重连与自动重连一样计数
func TestManagerManualReconnectCountsAttempts(t *testing.T) {
	dialer := &failingDialer{}
	sched := &manualScheduler{}
	m := newTestManager(t, WithBaseURL("http://127.0.0.1"), WithDialer(dialer), withAfterFunc(sched.afterFunc))

	m.SetCredentials("tok", "org")
	waitFor(t, func() bool { return sched.count() == 1 }, time.Second, "应该安排重连")
	assert.Equal(t, 1, m.ReconnectAttempts())

	m.Reconnect()
	assert.True(t, sched.timer(0).stopped.Load(), "手动重连应该取消待执行的定时器")
	waitFor(t, func() bool { return sched.count() == 2 }, time.Second, "手动重连失败后应该安排重连")

	// 手动 +1，失败后安排下一次再 +1
	assert.Equal(t, 3, m.ReconnectAttempts())
	assert.Equal(t, []time.Duration{time.Second, 4 * time.Second}, sched.delayList())
}

// TestManagerManualReconnectReset WithResetAttemptsOnManual 清零尝试次数
func TestManagerManualReconnectReset(t *testing.T) {
	dialer := &failingDialer{}
	sched := &manualScheduler{}
	m := newTestManager(t, WithBaseURL("http://127.0.0.1"), WithDialer(dialer),
		withAfterFunc(sched.afterFunc), WithResetAttemptsOnManual(true))

	m.SetCredentials("tok", "org")
	waitFor(t, func() bool { return sched.count() == 1 }, time.Second, "应该安排重连")

	m.Reconnect()
	waitFor(t, func() bool { return sched.count() == 2 }, time.Second, "应该安排重连")
	assert.Equal(t, 1, m.ReconnectAttempts())
}

// TestManagerManualReconnectAfterExhausted 放弃后手动重连仍受上限约束
func TestManagerManualReconnectAfterExhausted(t *testing.T) {
	dialer := &failingDialer{}
	sched := &manualScheduler{}
	policy := ReconnectPolicy{BaseDelay: time.Second, MaxDelay: 30 * time.Second, Factor: 2, MaxAttempts: 2}
	m := newTestManager(t, WithBaseURL("http://127.0.0.1"), WithDialer(dialer),
		withAfterFunc(sched.afterFunc), WithPolicy(policy))

	var giveUps atomic.Int32
	m.OnGiveUp(func(int) { giveUps.Add(1) })

	m.SetCredentials("tok", "org")
	waitFor(t, func() bool { return sched.count() == 1 }, time.Second, "应该安排第一次重连")
	sched.fire(0)
	waitFor(t, func() bool { return sched.count() == 2 }, time.Second, "应该安排第二次重连")
	sched.fire(1)
	waitFor(t, func() bool { return giveUps.Load() == 1 }, time.Second, "应该放弃重连")
	assert.True(t, m.IsExhausted())

	m.Reconnect()
	waitFor(t, func() bool { return dialer.calls.Load() == 4 }, time.Second, "手动重连应该立即拨号")
	waitFor(t, func() bool { return giveUps.Load() == 2 }, time.Second, "超过上限后再次放弃")
	assert.True(t, m.IsExhausted())
	assert.Equal(t, 3, m.ReconnectAttempts())
	assert.Equal(t, 2, sched.count())
}

// TestManagerManualReconnectWithoutCredentials 凭证缺失时手动重连为空操作
func TestManagerManualReconnectWithoutCredentials(t *testing.T) {
	dialer := &failingDialer{}
	m := newTestManager(t, WithBaseURL("http://127.0.0.1"), WithDialer(dialer))

	m.Reconnect()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(0), dialer.calls.Load())
	assert.Equal(t, 0, m.ReconnectAttempts())
}

// TestManagerParseErrorKeepsConnection 无法解析的帧被丢弃且不影响连接
func TestManagerParseErrorKeepsConnection(t *testing.T) {
	server := newPushServer(t)
	m := newTestManager(t, WithBaseURL(server.URL))

	collector := &messageCollector{}
	m.Subscribe(collector.listener)

	m.SetCredentials("tok", "org")
	waitFor(t, m.IsConnected, 3*time.Second, "应该连接成功")
	server.waitConns(t, 1)

	server.push(t, "not json")
	server.push(t, `{"type":"unknown_kind","timestamp":"x","data":{}}`)
	server.push(t, `{"type":"new_message","timestamp":"x"}`)
	server.push(t, frameM1)
	waitFor(t, func() bool { return len(collector.list()) == 1 }, 2*time.Second, "应该收到 m1")

	stats := m.Stats()
	assert.Equal(t, int64(4), stats.FramesReceived)
	assert.Equal(t, int64(3), stats.ParseErrors)
	assert.Equal(t, int64(1), stats.NotificationsDelivered)
	assert.True(t, m.IsConnected())
	assert.Equal(t, 1, server.connCount())
}

// TestManagerFramesWithoutIdentityRejected 缺少去重标识的帧按解析失败处理，不占用去重集合
func TestManagerFramesWithoutIdentityRejected(t *testing.T) {
	server := newPushServer(t)
	m := newTestManager(t, WithBaseURL(server.URL))

	collector := &messageCollector{}
	m.Subscribe(collector.listener)

	m.SetCredentials("tok", "org")
	waitFor(t, m.IsConnected, 3*time.Second, "应该连接成功")
	server.waitConns(t, 1)

	server.push(t, `{"type":"new_message","timestamp":"t1","data":{"chat_id":"c1","message_content":"first"}}`)
	server.push(t, `{"type":"new_message","timestamp":"t2","data":{"chat_id":"c2","message_content":"second"}}`)
	server.push(t, `{"type":"chat_update","timestamp":"t3","data":{"update_type":"assigned"}}`)
	server.push(t, frameM1)
	waitFor(t, func() bool { return len(collector.list()) == 1 }, 2*time.Second, "应该只收到 m1")

	stats := m.Stats()
	assert.Equal(t, int64(3), stats.ParseErrors)
	assert.Equal(t, int64(0), stats.DuplicatesDropped)
	assert.Equal(t, int64(1), stats.NotificationsDelivered)
	assert.Equal(t, 1, m.Deduplicator().Len())
	assert.False(t, m.Deduplicator().IsProcessed(""))
}

// TestDispatchStaleGeneration 已被替换的连接上读到的帧不下发，也不占用去重窗口
func TestDispatchStaleGeneration(t *testing.T) {
	m := newTestManager(t)
	collector := &messageCollector{}
	m.Subscribe(collector.listener)

	m.mu.Lock()
	stale := m.generation
	m.teardownLocked(models.CloseReasonSuperseded)
	current := m.generation
	m.mu.Unlock()

	m.dispatch(stale, []byte(frameM1))
	assert.Empty(t, collector.list())
	assert.Equal(t, 0, m.dedup.Len())
	assert.Equal(t, int64(0), m.Stats().NotificationsDelivered)

	m.dispatch(current, []byte(frameM1))
	assert.Equal(t, []string{"m1"}, collector.list())
	assert.Equal(t, int64(1), m.Stats().NotificationsDelivered)
	assert.Equal(t, int64(2), m.Stats().FramesReceived)
}

// TestManagerConnectionEstablishedNotDeduplicated 连接确认通知每次都广播
func TestManagerConnectionEstablishedNotDeduplicated(t *testing.T) {
	server := newPushServer(t)
	m := newTestManager(t, WithBaseURL(server.URL))

	var count atomic.Int32
	m.Subscribe(func(n models.Notification) error {
		if n.Type() == models.NotificationTypeConnectionEstablished {
			count.Add(1)
		}
		return nil
	})

	m.SetCredentials("tok", "org")
	waitFor(t, m.IsConnected, 3*time.Second, "应该连接成功")
	server.waitConns(t, 1)

	frame := `{"type":"connection_established","timestamp":"2026-10-15T10:00:00Z","message":"welcome","connection_count":1}`
	server.push(t, frame)
	server.push(t, frame)
	waitFor(t, func() bool { return count.Load() == 2 }, 2*time.Second, "两次都应该广播")
	assert.Equal(t, 0, m.Deduplicator().Len())
}

// TestManagerListenerFailureIsolated 监听器失败不影响其他监听器与连接
func TestManagerListenerFailureIsolated(t *testing.T) {
	server := newPushServer(t)
	m := newTestManager(t, WithBaseURL(server.URL))

	collector := &messageCollector{}
	m.Subscribe(func(n models.Notification) error { panic("render crash") })
	m.Subscribe(func(n models.Notification) error { return errors.New("toast failed") })
	m.Subscribe(collector.listener)

	m.SetCredentials("tok", "org")
	waitFor(t, m.IsConnected, 3*time.Second, "应该连接成功")
	server.waitConns(t, 1)

	server.push(t, frameM1)
	waitFor(t, func() bool { return len(collector.list()) == 1 }, 2*time.Second, "应该收到 m1")
	assert.Equal(t, int64(2), m.Stats().ListenerFailures)
	assert.True(t, m.IsConnected())
}

// TestManagerStatusCallbackReentrant 状态回调中可以回调管理器
func TestManagerStatusCallbackReentrant(t *testing.T) {
	dialer := &failingDialer{}
	sched := &manualScheduler{}
	m := newTestManager(t, WithBaseURL("http://127.0.0.1"), WithDialer(dialer), withAfterFunc(sched.afterFunc))

	var seen sync.Map
	m.OnStatusChange(func(from, to models.ConnectionStatus) {
		seen.Store(to, m.Status())
	})

	m.SetCredentials("tok", "org")
	waitFor(t, func() bool {
		_, ok := seen.Load(models.ConnectionStatusDisconnected)
		return ok
	}, time.Second, "应该收到断开回调")

	v, ok := seen.Load(models.ConnectionStatusReconnecting)
	require.True(t, ok)
	assert.NotEmpty(t, v)
}

// TestManagerInvalidBaseURL 非法基础地址不发起连接也不重试
func TestManagerInvalidBaseURL(t *testing.T) {
	dialer := &failingDialer{}
	sched := &manualScheduler{}
	m := newTestManager(t, WithBaseURL("ftp://example.com"), WithDialer(dialer), withAfterFunc(sched.afterFunc))

	m.SetCredentials("tok", "org")
	time.Sleep(20 * time.Millisecond)

	assert.Equal(t, int32(0), dialer.calls.Load())
	assert.Equal(t, 0, sched.count())
	assert.Equal(t, models.ConnectionStatusDisconnected, m.Status())
}

// TestRedactError 错误信息中不出现凭证
func TestRedactError(t *testing.T) {
	err := errors.New(`dial "wss://h/ws/org?token=secret-token": refused`)
	msg := redactError(err, "secret-token")

	assert.NotContains(t, msg, "secret-token")
	assert.True(t, strings.Contains(msg, "token=***"))
	assert.Equal(t, "", redactError(nil, "secret-token"))
	assert.Equal(t, "plain", redactError(errors.New("plain"), ""))
}

// TestRedactErrorEncodedToken 拨号错误里的 URL 携带编码后的凭证
func TestRedactErrorEncodedToken(t *testing.T) {
	token := "ab+cd/ef=="
	endpoint, err := protocol.BuildEndpoint("https://h", "org", token)
	require.NoError(t, err)
	require.Contains(t, endpoint, "token=ab%2Bcd%2Fef%3D%3D")

	msg := redactError(errors.New("dial "+endpoint+": connection refused"), token)
	assert.NotContains(t, msg, token)
	assert.NotContains(t, msg, "ab%2Bcd%2Fef%3D%3D")
	assert.Contains(t, msg, "token=***")
}

func TestClassifyReadError(t *testing.T) {
	assert.Equal(t, models.CloseReasonNormal,
		classifyReadError(&websocket.CloseError{Code: websocket.CloseNormalClosure}))
	assert.Equal(t, models.CloseReasonAbnormal,
		classifyReadError(&websocket.CloseError{Code: websocket.CloseAbnormalClosure}))
	assert.Equal(t, models.CloseReasonTransportError, classifyReadError(errors.New("read: connection reset")))
	require.True(t, models.CloseReasonNormal.IsIntentional())
	require.False(t, models.CloseReasonAbnormal.IsIntentional())
}
