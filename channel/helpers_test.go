/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2026-10-15 11:20:31
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-10-15 11:20:31
 * @FilePath: \go-notify\channel\helpers_test.go
 * @Description: 测试辅助：推送服务端、状态记录、可控定时器
 *
 * Copyright (c) 2026 by kamalyes, All Rights Reserved.
 */

package channel

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/kamalyes/go-notify/models"
	"github.com/stretchr/testify/require"
)

// waitFor 轮询等待条件满足
func waitFor(t *testing.T, condition func() bool, timeout time.Duration, message string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("等待条件超时: %s", message)
}

// pushServer 测试用推送服务端
type pushServer struct {
	*httptest.Server
	upgrader websocket.Upgrader

	mu      sync.Mutex
	conns   []*websocket.Conn
	queries []string
	closed  []bool
}

func newPushServer(t *testing.T) *pushServer {
	t.Helper()
	ps := &pushServer{
		upgrader: websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
	}
	ps.Server = httptest.NewServer(http.HandlerFunc(ps.handle))
	t.Cleanup(ps.Close)
	return ps
}

func (ps *pushServer) handle(w http.ResponseWriter, r *http.Request) {
	conn, err := ps.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	ps.mu.Lock()
	idx := len(ps.conns)
	ps.conns = append(ps.conns, conn)
	ps.queries = append(ps.queries, r.URL.Path+"?"+r.URL.RawQuery)
	ps.closed = append(ps.closed, false)
	ps.mu.Unlock()

	// 读到错误即视为客户端关闭
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			ps.mu.Lock()
			ps.closed[idx] = true
			ps.mu.Unlock()
			return
		}
	}
}

func (ps *pushServer) connCount() int {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	return len(ps.conns)
}

// waitConns 等待服务端登记 n 个连接
func (ps *pushServer) waitConns(t *testing.T, n int) {
	t.Helper()
	waitFor(t, func() bool { return ps.connCount() >= n }, 3*time.Second, "服务端应该收到连接")
}

func (ps *pushServer) query(i int) string {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	return ps.queries[i]
}

func (ps *pushServer) isClosed(i int) bool {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	return ps.closed[i]
}

func (ps *pushServer) latest() *websocket.Conn {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	return ps.conns[len(ps.conns)-1]
}

// push 向最新连接发送文本帧
func (ps *pushServer) push(t *testing.T, frame string) {
	t.Helper()
	require.NoError(t, ps.latest().WriteMessage(websocket.TextMessage, []byte(frame)))
}

// dropLatest 直接断开 TCP，客户端读到异常关闭
func (ps *pushServer) dropLatest() {
	_ = ps.latest().UnderlyingConn().Close()
}

// closeLatest 发送指定关闭码后断开
func (ps *pushServer) closeLatest(code int) {
	conn := ps.latest()
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(code, "bye"), time.Now().Add(time.Second))
	_ = conn.Close()
}

// statusRecorder 记录状态迁移
type statusRecorder struct {
	mu          sync.Mutex
	transitions []models.ConnectionStatus
	at          []time.Time
}

func recordStatus(m *Manager) *statusRecorder {
	rec := &statusRecorder{}
	m.OnStatusChange(func(from, to models.ConnectionStatus) {
		rec.mu.Lock()
		defer rec.mu.Unlock()
		rec.transitions = append(rec.transitions, to)
		rec.at = append(rec.at, time.Now())
	})
	return rec
}

func (r *statusRecorder) list() []models.ConnectionStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.ConnectionStatus(nil), r.transitions...)
}

func (r *statusRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.transitions)
}

func (r *statusRecorder) time(i int) time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.at[i]
}

// failingDialer 始终拨号失败
type failingDialer struct {
	calls atomic.Int32
	err   error
}

func (d *failingDialer) DialContext(ctx context.Context, urlStr string, header http.Header) (*websocket.Conn, *http.Response, error) {
	d.calls.Add(1)
	if d.err != nil {
		return nil, nil, d.err
	}
	return nil, nil, errors.New("connection refused")
}

// manualScheduler 捕获重连定时任务，由测试手动触发
type manualScheduler struct {
	mu     sync.Mutex
	delays []time.Duration
	funcs  []func()
	timers []*manualTimer
}

type manualTimer struct {
	stopped atomic.Bool
}

func (t *manualTimer) Stop() bool {
	return !t.stopped.Swap(true)
}

func (s *manualScheduler) afterFunc(d time.Duration, f func()) stopper {
	s.mu.Lock()
	defer s.mu.Unlock()
	timer := &manualTimer{}
	s.delays = append(s.delays, d)
	s.funcs = append(s.funcs, f)
	s.timers = append(s.timers, timer)
	return timer
}

func (s *manualScheduler) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.funcs)
}

// fire 同步触发第 i 个定时任务
func (s *manualScheduler) fire(i int) {
	s.mu.Lock()
	f := s.funcs[i]
	s.mu.Unlock()
	f()
}

func (s *manualScheduler) timer(i int) *manualTimer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timers[i]
}

func (s *manualScheduler) delayList() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]time.Duration(nil), s.delays...)
}
