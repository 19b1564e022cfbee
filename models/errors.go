/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2026-10-12 11:02:00
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-10-15 16:30:21
 * @FilePath: \go-notify\models\errors.go
 * @Description: 通知通道错误定义 - 基于errorx.BaseError模式
 *
 * Copyright (c) 2026 by kamalyes, All Rights Reserved.
 */
package models

import (
	"errors"

	"github.com/kamalyes/go-toolbox/pkg/errorx"
)

// 错误类型定义，基于errorx.ErrorType
type ErrorType = errorx.ErrorType

// 通知通道错误码常量定义
// 使用 82xxx 区间
const (
	// 帧解析错误 (82000-82099) - 本地恢复，丢弃该帧
	ErrTypeInvalidFrame        ErrorType = 82001 // 无效的帧
	ErrTypeUnknownNotification ErrorType = 82002 // 未知的通知类型

	// 连接相关错误 (82100-82199)
	ErrTypeInvalidEndpoint    ErrorType = 82101 // 无效的端点地址
	ErrTypeMissingCredentials ErrorType = 82102 // 缺少凭证或组织ID
	ErrTypeManagerClosed      ErrorType = 82103 // 管理器已关闭

	// 中继相关错误 (82200-82299)
	ErrTypePubSubNotSet ErrorType = 82201 // PubSub 未设置

	// 配置相关错误 (82300-82399)
	ErrTypeConfigInvalid       ErrorType = 82301 // 配置无效
	ErrTypeConfigAutoFixFailed ErrorType = 82302 // 配置自动修复失败
)

func init() {
	errorx.RegisterError(ErrTypeInvalidFrame, "invalid frame: %s")
	errorx.RegisterError(ErrTypeUnknownNotification, "unknown notification type: %s")

	errorx.RegisterError(ErrTypeInvalidEndpoint, "invalid endpoint: %s")
	errorx.RegisterError(ErrTypeMissingCredentials, "missing credential or organization id")
	errorx.RegisterError(ErrTypeManagerClosed, "connection manager is closed")

	errorx.RegisterError(ErrTypePubSubNotSet, "pubsub is not set")

	errorx.RegisterError(ErrTypeConfigInvalid, "invalid config: %s")
	errorx.RegisterError(ErrTypeConfigAutoFixFailed, "config auto fix failed: %s")
}

// 错误变量定义
var (
	ErrMissingCredentials = errorx.NewError(ErrTypeMissingCredentials)
	ErrManagerClosed      = errorx.NewError(ErrTypeManagerClosed)
	ErrPubSubNotSet       = errorx.NewError(ErrTypePubSubNotSet)
)

// IsFrameError 判断是否为帧解析类错误（可恢复，仅丢弃该帧）
func IsFrameError(err error) bool {
	if err == nil {
		return false
	}
	errType, ok := TypeOf(err)
	return ok && (errType == ErrTypeInvalidFrame || errType == ErrTypeUnknownNotification)
}

// IsConfigError 判断是否为配置类错误
func IsConfigError(err error) bool {
	if err == nil {
		return false
	}
	errType, ok := TypeOf(err)
	return ok && (errType == ErrTypeConfigInvalid || errType == ErrTypeConfigAutoFixFailed)
}

// TypeOf 取出错误链中 errorx.BaseError 的错误类型，ok 为 false 表示不是 errorx 错误
func TypeOf(err error) (errType ErrorType, ok bool) {
	var baseErr errorx.BaseError
	if errors.As(err, &baseErr) {
		return baseErr.GetType(), true
	}
	return 0, false
}
