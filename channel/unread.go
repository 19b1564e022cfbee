/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2026-10-13 13:45:00
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-10-13 13:45:00
 * @FilePath: \go-notify\channel\unread.go
 * @Description: 未读计数器 - 饱和于 0 的整数
 *
 * Copyright (c) 2026 by kamalyes, All Rights Reserved.
 */

package channel

import "sync/atomic"

// UnreadCounter 未读计数，由外部监听器显式调用增减
type UnreadCounter struct {
	count atomic.Int64
}

// Increment 计数 +1
func (c *UnreadCounter) Increment() {
	c.count.Add(1)
}

// Decrement 计数 -1，最小为 0
func (c *UnreadCounter) Decrement() {
	for {
		cur := c.count.Load()
		if cur <= 0 {
			return
		}
		if c.count.CompareAndSwap(cur, cur-1) {
			return
		}
	}
}

// Reset 清零
func (c *UnreadCounter) Reset() {
	c.count.Store(0)
}

// Count 当前计数
func (c *UnreadCounter) Count() int64 {
	return c.count.Load()
}
