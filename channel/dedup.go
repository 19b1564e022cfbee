/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2026-10-13 10:05:00
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-10-15 14:22:51
 * @FilePath: \go-notify\channel\dedup.go
 * @Description: 去重器 - 有界 FIFO 已处理ID集合
 *
 * Copyright (c) 2026 by kamalyes, All Rights Reserved.
 */

package channel

import (
	"sync"

	"github.com/kamalyes/go-notify/models"
	"github.com/kamalyes/go-toolbox/pkg/queue"
	"github.com/kamalyes/go-toolbox/pkg/syncx"
)

// DefaultDedupCapacity 已处理ID集合默认容量
const DefaultDedupCapacity = 1000

// chatUpdateKeyPrefix ChatUpdate 合成键前缀
const chatUpdateKeyPrefix = "chat_update"

// ProcessedIDSet 有界的已处理ID集合
// 容量满时按插入顺序淘汰最早的一条（FIFO），查询不会刷新位置
type ProcessedIDSet struct {
	mu       sync.RWMutex
	capacity int
	index    map[string]struct{}
	order    *queue.Deque // 按插入顺序保存ID，队首最早
}

// NewProcessedIDSet 创建已处理ID集合
func NewProcessedIDSet(capacity int) *ProcessedIDSet {
	if capacity <= 0 {
		capacity = DefaultDedupCapacity
	}
	order := queue.NewDeque()
	order.Grow(capacity)
	return &ProcessedIDSet{
		capacity: capacity,
		index:    make(map[string]struct{}, capacity),
		order:    order,
	}
}

// IsProcessed 检查ID是否已处理
func (s *ProcessedIDSet) IsProcessed(id string) bool {
	return syncx.WithRLockReturnValue(&s.mu, func() bool {
		_, ok := s.index[id]
		return ok
	})
}

// MarkProcessed 标记ID为已处理，已存在时不改变其淘汰顺序
func (s *ProcessedIDSet) MarkProcessed(id string) {
	syncx.WithLock(&s.mu, func() {
		s.insertLocked(id)
	})
}

// MarkIfAbsent 原子地检查并标记，返回 true 表示首次出现
func (s *ProcessedIDSet) MarkIfAbsent(id string) bool {
	return syncx.WithLockReturnValue(&s.mu, func() bool {
		return s.insertLocked(id)
	})
}

// Len 当前集合大小
func (s *ProcessedIDSet) Len() int {
	return syncx.WithRLockReturnValue(&s.mu, func() int {
		return len(s.index)
	})
}

// Capacity 集合容量
func (s *ProcessedIDSet) Capacity() int {
	return s.capacity
}

// insertLocked 插入ID，调用方需持有写锁
func (s *ProcessedIDSet) insertLocked(id string) bool {
	if _, ok := s.index[id]; ok {
		return false
	}

	if s.order.Len() >= s.capacity {
		// 淘汰最早插入的元素
		delete(s.index, s.order.PopFront().(string))
	}
	s.order.PushBack(id)
	s.index[id] = struct{}{}
	return true
}

// IdentityOf 计算通知的去重标识
// checked=false 表示该通知不参与去重（connection_established）
func IdentityOf(n models.Notification) (id string, checked bool) {
	switch v := n.(type) {
	case *models.NewMessage:
		return v.MessageID, true
	case *models.ChatUpdate:
		return chatUpdateKeyPrefix + v.ChatID + v.Timestamp, true
	default:
		return "", false
	}
}
