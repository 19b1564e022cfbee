/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2026-10-16 09:50:55
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-10-17 16:26:28
 * @FilePath: \go-notify\errors.go
 * @Description: 通知通道错误定义 - 基于errorx.BaseError模式，定义见 models 包
 *
 * Copyright (c) 2026 by kamalyes, All Rights Reserved.
 */
package notify

import (
	"github.com/kamalyes/go-notify/models"
)

// 错误类型定义，基于errorx.ErrorType
type ErrorType = models.ErrorType

// 错误码常量（从 models 包导入）
const (
	ErrTypeInvalidFrame        = models.ErrTypeInvalidFrame
	ErrTypeUnknownNotification = models.ErrTypeUnknownNotification
	ErrTypeInvalidEndpoint     = models.ErrTypeInvalidEndpoint
	ErrTypeMissingCredentials  = models.ErrTypeMissingCredentials
	ErrTypeManagerClosed       = models.ErrTypeManagerClosed
	ErrTypePubSubNotSet        = models.ErrTypePubSubNotSet
	ErrTypeConfigInvalid       = models.ErrTypeConfigInvalid
	ErrTypeConfigAutoFixFailed = models.ErrTypeConfigAutoFixFailed
)

// 错误变量（从 models 包导入）
var (
	ErrMissingCredentials = models.ErrMissingCredentials
	ErrManagerClosed      = models.ErrManagerClosed
	ErrPubSubNotSet       = models.ErrPubSubNotSet
)

// IsFrameError 判断是否为帧解析类错误（可恢复，仅丢弃该帧）
func IsFrameError(err error) bool {
	return models.IsFrameError(err)
}

// IsConfigError 判断是否为配置类错误
func IsConfigError(err error) bool {
	return models.IsConfigError(err)
}

// IsRetryableError 判断错误是否可以通过重连恢复
// 凭证缺失、地址无效、配置错误等需要调用方介入，不可重试
func IsRetryableError(err error) bool {
	if err == nil {
		return false
	}
	if errType, ok := models.TypeOf(err); ok {
		return IsRetryableErrorType(errType)
	}
	// 非 errorx 错误（网络、握手失败）按可重试处理
	return true
}

// IsRetryableErrorType 判断错误类型是否可以重试
func IsRetryableErrorType(errType ErrorType) bool {
	switch errType {
	case ErrTypeMissingCredentials, ErrTypeInvalidEndpoint, ErrTypeManagerClosed,
		ErrTypeConfigInvalid, ErrTypeConfigAutoFixFailed, ErrTypePubSubNotSet:
		return false
	default:
		return true
	}
}
