/*
 * @Description: 托管平台 HTTP 客户端（身份服务 + 数据 API + 远程过程）
 * @Author: 安知鱼
 * @Date: 2026-02-12 09:18:42
 * @LastEditTime: 2026-03-06 15:47:20
 * @LastEditors: 安知鱼
 */
package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/anzhiyu-c/qingyu-board/pkg/config"
)

// Client 是对托管平台的薄封装。
// 每个请求都带匿名密钥；需要行级授权的请求再附上用户的会话 Token。
// 超时沿用 http.Client 的默认行为，本层不做重试。
type Client struct {
	baseURL string
	anonKey string
	httpc   *http.Client
}

// NewClient 从配置构造平台客户端
func NewClient(cfg *config.Config) (*Client, error) {
	baseURL := strings.TrimRight(cfg.GetString(config.KeyPlatformURL), "/")
	anonKey := cfg.GetString(config.KeyPlatformAnonKey)
	if baseURL == "" || anonKey == "" {
		return nil, fmt.Errorf("平台接入配置不完整：Platform.URL 和 Platform.AnonKey 均为必填")
	}
	return &Client{
		baseURL: baseURL,
		anonKey: anonKey,
		httpc:   &http.Client{},
	}, nil
}

// newRequest 构造平台请求，统一附加密钥头
func (c *Client) newRequest(ctx context.Context, method, path string, accessToken string, body interface{}) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("序列化请求体失败: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("apikey", c.anonKey)
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	} else {
		req.Header.Set("Authorization", "Bearer "+c.anonKey)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// do 执行请求并把响应体读进内存，非 2xx 时返回携带状态码的错误
func (c *Client) do(req *http.Request) (int, []byte, error) {
	resp, err := c.httpc.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("读取平台响应失败: %w", err)
	}
	return resp.StatusCode, data, nil
}
