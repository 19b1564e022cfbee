/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2026-10-12 15:40:00
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-10-13 20:18:09
 * @FilePath: \go-notify\protocol\endpoint.go
 * @Description: 通道端点地址组装与凭证脱敏
 *
 * Copyright (c) 2026 by kamalyes, All Rights Reserved.
 */

package protocol

import (
	"net/url"
	"strings"

	"github.com/kamalyes/go-notify/models"
	"github.com/kamalyes/go-toolbox/pkg/errorx"
)

const (
	// TokenQueryKey 凭证所在的查询参数
	TokenQueryKey = "token"
	// RedactedValue 脱敏占位
	RedactedValue = "***"
	// PathSegment 端点路径前缀
	PathSegment = "ws"
)

// schemeMapping 应用基础地址协议 -> WebSocket 协议
var schemeMapping = map[string]string{
	"https": "wss",
	"http":  "ws",
	"wss":   "wss",
	"ws":    "ws",
}

// BuildEndpoint 组装 {scheme}://{host}/ws/{organizationId}?token={bearerToken}
func BuildEndpoint(baseURL, organizationID, token string) (string, error) {
	if organizationID == "" || token == "" {
		return "", models.ErrMissingCredentials
	}

	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return "", errorx.NewError(models.ErrTypeInvalidEndpoint, err.Error())
	}
	scheme, ok := schemeMapping[strings.ToLower(u.Scheme)]
	if !ok || u.Host == "" {
		return "", errorx.NewError(models.ErrTypeInvalidEndpoint, baseURL)
	}

	escapedBase := strings.TrimRight(u.EscapedPath(), "/")
	u.Scheme = scheme
	u.Path = strings.TrimRight(u.Path, "/") + "/" + PathSegment + "/" + organizationID
	u.RawPath = escapedBase + "/" + PathSegment + "/" + url.PathEscape(organizationID)
	u.Fragment = ""

	q := url.Values{}
	q.Set(TokenQueryKey, token)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// RedactURL 将端点中的凭证替换为占位符，日志中只允许输出该结果
func RedactURL(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil {
		return RedactedValue
	}
	if u.RawQuery == "" {
		return u.String()
	}
	parts := strings.Split(u.RawQuery, "&")
	for i, part := range parts {
		key, _, _ := strings.Cut(part, "=")
		if unescaped, err := url.QueryUnescape(key); err == nil && unescaped == TokenQueryKey {
			parts[i] = TokenQueryKey + "=" + RedactedValue
		}
	}
	u.RawQuery = strings.Join(parts, "&")
	return u.String()
}

// RedactText 抹掉任意文本（通常是错误信息）中的凭证
// 同时覆盖原文、查询编码与路径编码三种形式，拨号错误里的 URL 携带的是编码后的凭证
func RedactText(text, token string) string {
	if token == "" || text == "" {
		return text
	}
	for _, form := range []string{token, url.QueryEscape(token), url.PathEscape(token)} {
		text = strings.ReplaceAll(text, form, RedactedValue)
	}
	return text
}
