/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2026-10-16 11:00:00
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-10-16 11:00:00
 * @FilePath: \go-notify\exports_protocol.go
 * @Description: Protocol 模块类型导出
 *
 * Copyright (c) 2026 by kamalyes, All Rights Reserved.
 */

package notify

import "github.com/kamalyes/go-notify/protocol"

// ============================================
// Envelope - 推送信封
// ============================================

// Envelope 推送信封
type Envelope = protocol.Envelope

// Decode 解析单个文本帧
var Decode = protocol.Decode

// Encode 编码通知为信封
var Encode = protocol.Encode

// ============================================
// Endpoint - 通道地址
// ============================================

// BuildEndpoint 由基础地址、组织ID与凭证派生通道地址
var BuildEndpoint = protocol.BuildEndpoint

// RedactURL 隐藏地址中的凭证，用于日志
var RedactURL = protocol.RedactURL
