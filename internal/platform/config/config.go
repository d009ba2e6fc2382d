package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Cfg 是一个全局变量，用于存储所有应用程序的配置
var Cfg *Config

// Config 结构体定义了应用程序的所有配置项
// 它与 config.yaml 文件的结构完全对应
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Gemini   GeminiConfig   `mapstructure:"gemini"`
	Clash    ClashConfig    `mapstructure:"clash"`
	Ingest   IngestConfig   `mapstructure:"ingest"`
}

// ServerConfig 定义了服务器相关的配置
type ServerConfig struct {
	Address string     `mapstructure:"address"`
	Cors    CorsConfig `mapstructure:"cors"`
}

// CorsConfig 定义了CORS相关的配置
type CorsConfig struct {
	AllowedOrigins []string `mapstructure:"allowedOrigins"`
}

// DatabaseConfig 定义了数据库和缓存相关的配置
type DatabaseConfig struct {
	Redis  RedisConfig  `mapstructure:"redis"`
	Sqlite SqliteConfig `mapstructure:"sqlite"`
}

// RedisConfig 定义了Redis的配置
type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// SqliteConfig 定义了sqlite数据文件的配置
type SqliteConfig struct {
	Path string `mapstructure:"path"`
}

// GeminiConfig 定义了Gemini API相关的配置。
// APIKey为空时，AI分析端点返回不可用错误，嵌入退化为零向量。
type GeminiConfig struct {
	APIKey         string `mapstructure:"apiKey"`
	Model          string `mapstructure:"model"`
	EmbeddingModel string `mapstructure:"embeddingModel"`
}

// ClashConfig 定义了Clash Royale官方API的配置。
// APIToken为空时，玩家战绩分析端点返回不可用错误。
type ClashConfig struct {
	APIToken string `mapstructure:"apiToken"`
	// BaseURL 默认指向RoyaleAPI代理，无需固定IP即可访问官方API
	BaseURL string `mapstructure:"baseURL"`
}

// IngestConfig 定义了内容摄取管线的配置
type IngestConfig struct {
	// AdminSecret 是管理端点HMAC令牌的共享密钥
	AdminSecret string `mapstructure:"adminSecret"`
	// MaxChunkSize 是单个文本分块的最大字符数
	MaxChunkSize int `mapstructure:"maxChunkSize"`
	// QueueSize 是后台摄取任务队列的容量
	QueueSize int `mapstructure:"queueSize"`
}

// LoadConfig 函数负责查找、加载和解析配置文件
// 它会在指定的路径中查找名为 config.yaml 的文件
func LoadConfig() (*Config, error) {
	v := viper.New()

	// 1. 设置配置文件名和类型
	v.SetConfigName("config") // 文件名 (不带扩展名)
	v.SetConfigType("yaml")   // 文件类型

	// 2. 添加配置文件搜索路径
	// 可以添加多个路径，Viper会按顺序查找
	v.AddConfigPath("./config") // `config/config.yaml`
	v.AddConfigPath(".")        // `./config.yaml` (如果在根目录)

	// 3. 设置环境变量支持
	// 允许通过环境变量覆盖配置，例如 GEMINI_APIKEY=...
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 4. 设置默认值
	v.SetDefault("server.address", ":8080")
	v.SetDefault("database.sqlite.path", "coach.db")
	v.SetDefault("gemini.model", "gemini-2.0-flash")
	v.SetDefault("gemini.embeddingModel", "gemini-embedding-001")
	v.SetDefault("clash.baseURL", "https://proxy.royaleapi.dev/v1")
	v.SetDefault("ingest.maxChunkSize", 500)
	v.SetDefault("ingest.queueSize", 16)

	// 5. 读取配置文件
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	// 6. 将配置反序列化到结构体中
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// 7. 将加载的配置赋值给全局变量
	Cfg = &cfg

	return Cfg, nil
}
