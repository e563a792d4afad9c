/*
 * @Description: 缓存键定义
 * @Author: 安知鱼
 * @Date: 2026-03-09 10:12:40
 * @LastEditTime: 2026-03-09 10:12:40
 * @LastEditors: 安知鱼
 */
package constant

// CacheKeyFeedLatest 是首页信息流的缓存键。
// 发帖、编辑帖子和发表评论都会使它失效。
const CacheKeyFeedLatest = "qingyu:feed:latest"
