/*
 * @Description: 平台数据 API（PostgREST 风格接口）的通用访问助手
 * @Author: 安知鱼
 * @Date: 2026-02-12 11:10:27
 * @LastEditTime: 2026-03-07 11:42:18
 * @LastEditors: 安知鱼
 */
package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/anzhiyu-c/qingyu-board/pkg/constant"
)

// selectRows 按条件查询集合，结果解码进 dest（切片指针）
func (c *Client) selectRows(ctx context.Context, table string, query url.Values, dest interface{}) error {
	req, err := c.newRequest(ctx, http.MethodGet, "/rest/v1/"+table+"?"+query.Encode(), "", nil)
	if err != nil {
		return err
	}

	status, body, err := c.do(req)
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		return fmt.Errorf("查询 %s 失败 (HTTP %d): %s", table, status, string(body))
	}
	return json.Unmarshal(body, dest)
}

// selectSingle 查询集合并要求恰好命中一行；0行或多行都视为未找到。
// 通过 Accept 头的单对象修饰符让平台侧做行数断言。
func (c *Client) selectSingle(ctx context.Context, table string, query url.Values, dest interface{}) error {
	req, err := c.newRequest(ctx, http.MethodGet, "/rest/v1/"+table+"?"+query.Encode(), "", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/vnd.pgrst.object+json")

	status, body, err := c.do(req)
	if err != nil {
		return err
	}
	if status == http.StatusNotAcceptable {
		return constant.ErrNotFound
	}
	if status < 200 || status >= 300 {
		return fmt.Errorf("查询 %s 失败 (HTTP %d): %s", table, status, string(body))
	}
	return json.Unmarshal(body, dest)
}

// insert 写入一行。dest 不为 nil 时要求平台返回写入后的完整行。
func (c *Client) insert(ctx context.Context, accessToken, table string, record interface{}, dest interface{}) error {
	req, err := c.newRequest(ctx, http.MethodPost, "/rest/v1/"+table, accessToken, record)
	if err != nil {
		return err
	}
	if dest != nil {
		req.Header.Set("Prefer", "return=representation")
		req.Header.Set("Accept", "application/vnd.pgrst.object+json")
	} else {
		req.Header.Set("Prefer", "return=minimal")
	}

	status, body, err := c.do(req)
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		return fmt.Errorf("写入 %s 失败 (HTTP %d): %s", table, status, string(body))
	}
	if dest != nil {
		return json.Unmarshal(body, dest)
	}
	return nil
}

// update 按条件更新集合。dest 不为 nil 时返回更新后的单行。
func (c *Client) update(ctx context.Context, accessToken, table string, query url.Values, fields interface{}, dest interface{}) error {
	req, err := c.newRequest(ctx, http.MethodPatch, "/rest/v1/"+table+"?"+query.Encode(), accessToken, fields)
	if err != nil {
		return err
	}
	if dest != nil {
		req.Header.Set("Prefer", "return=representation")
		req.Header.Set("Accept", "application/vnd.pgrst.object+json")
	} else {
		req.Header.Set("Prefer", "return=minimal")
	}

	status, body, err := c.do(req)
	if err != nil {
		return err
	}
	if status == http.StatusNotAcceptable {
		return constant.ErrNotFound
	}
	if status < 200 || status >= 300 {
		return fmt.Errorf("更新 %s 失败 (HTTP %d): %s", table, status, string(body))
	}
	if dest != nil {
		return json.Unmarshal(body, dest)
	}
	return nil
}

// rpc 调用平台的远程过程。过程在平台侧原子执行，本层不做重试。
func (c *Client) rpc(ctx context.Context, accessToken, fn string, args interface{}, dest interface{}) error {
	req, err := c.newRequest(ctx, http.MethodPost, "/rest/v1/rpc/"+fn, accessToken, args)
	if err != nil {
		return err
	}

	status, body, err := c.do(req)
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		return fmt.Errorf("调用远程过程 %s 失败 (HTTP %d): %s", fn, status, string(body))
	}
	if dest != nil {
		return json.Unmarshal(body, dest)
	}
	return nil
}
