/*
 * @Description: 统一配置管理 (手动加载，文件+环境变量双来源)
 * @Author: 安知鱼
 * @Date: 2026-02-10 11:10:02
 * @LastEditTime: 2026-03-05 14:31:26
 * @LastEditors: 安知鱼
 */
package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-ini/ini"
	"github.com/spf13/viper"
)

// 定义所有已知的配置键
var allKeys = []string{
	KeyServerPort, KeyServerDebug,
	KeyPlatformURL, KeyPlatformAnonKey, KeyPlatformJWTSecret,
	KeyRedisAddr, KeyRedisPassword, KeyRedisDB,
	KeySessionCookie, KeySessionSecure,
}

const (
	KeyServerPort  = "System.Port"
	KeyServerDebug = "System.Debug"

	// 托管平台（认证 + 数据 API + 远程过程）的接入配置
	KeyPlatformURL       = "Platform.URL"
	KeyPlatformAnonKey   = "Platform.AnonKey"
	KeyPlatformJWTSecret = "Platform.JWTSecret"

	KeyRedisAddr     = "Redis.Addr"
	KeyRedisPassword = "Redis.Password"
	KeyRedisDB       = "Redis.DB"

	KeySessionCookie = "Session.Cookie"
	KeySessionSecure = "Session.Secure"
)

type Config struct {
	vp *viper.Viper
}

// NewConfig 手动加载配置：先读 data/conf.ini 作为默认值，再用环境变量逐键覆盖
func NewConfig() (*Config, error) {
	vp := viper.New()
	filePath := "data/conf.ini"

	iniCfg, err := ini.Load(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("提示: 未找到 %s，将创建默认配置文件。", filePath)
			if err := createDefaultConfigFile(filePath); err != nil {
				log.Printf("警告: 创建默认配置文件失败: %v，将仅依赖环境变量或内部默认值。", err)
			} else {
				log.Printf("✅ 已创建默认配置文件: %s", filePath)
				iniCfg, err = ini.Load(filePath)
				if err != nil {
					log.Printf("警告: 重新加载配置文件失败: %v", err)
				}
			}
		} else {
			return nil, fmt.Errorf("错误: 解析配置文件 '%s' 失败: %w", filePath, err)
		}
	}

	// 文件加载成功时，将其中的值全部设置进 Viper
	if iniCfg != nil {
		for _, section := range iniCfg.Sections() {
			for _, key := range section.Keys() {
				viperKey := fmt.Sprintf("%s.%s", section.Name(), key.Name())
				if section.Name() == "DEFAULT" {
					viperKey = key.Name()
				}
				vp.Set(viperKey, key.Value())
			}
		}
		log.Println("从 data/conf.ini 文件加载了默认配置。")
	}

	// 环境变量覆盖，例如 QINGYU_PLATFORM_URL
	envReplacer := strings.NewReplacer(".", "_")
	envPrefix := "QINGYU"

	for _, key := range allKeys {
		envVarName := fmt.Sprintf("%s_%s", envPrefix, envReplacer.Replace(strings.ToUpper(key)))
		if value, found := os.LookupEnv(envVarName); found {
			vp.Set(key, value)
			log.Printf("发现环境变量: %s, 已覆盖配置 '%s'。", envVarName, key)
		}
	}

	log.Println("✅ 配置加载器初始化完成。")
	return &Config{vp: vp}, nil
}

func (c *Config) GetString(key string) string {
	return c.vp.GetString(key)
}

func (c *Config) GetInt(key string) int {
	return c.vp.GetInt(key)
}

func (c *Config) GetBool(key string) bool {
	return c.vp.GetBool(key)
}

// createDefaultConfigFile 创建默认的配置文件
func createDefaultConfigFile(filePath string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("创建目录失败: %w", err)
	}

	defaultConfig := `[System]
Port = 8093
Debug = false

# 托管平台接入配置（必填）
# URL 为平台项目地址，AnonKey 为匿名访问密钥
# JWTSecret 用于本地校验平台签发的会话 Token
[Platform]
URL =
AnonKey =
JWTSecret =

# Redis 配置（可选）
# 如果不配置或留空 Addr，系统将自动使用内存缓存
[Redis]
Addr =
Password =
DB = 0

[Session]
Cookie = qy_session
Secure = false
`

	if err := os.WriteFile(filePath, []byte(defaultConfig), 0644); err != nil {
		return fmt.Errorf("写入配置文件失败: %w", err)
	}

	return nil
}
