package clash

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SlpAus/royale-coach-backend/internal/platform/config"
)

// ErrNotConfigured 表示没有配置API令牌，玩家战绩端点应向调用方报告不可用。
var ErrNotConfigured = errors.New("Clash Royale API令牌未配置")

// APIError 携带上游API返回的HTTP状态，供调用方区分限流、未找到等上游故障。
type APIError struct {
	Status     int
	StatusText string
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

var (
	apiToken string
	baseURL  string
	// 官方API的限流按令牌计，单实例共享一个短超时客户端足够
	httpClient = &http.Client{Timeout: 10 * time.Second}
)

// InitClient 根据配置初始化Clash Royale API客户端。
// 默认经RoyaleAPI代理访问官方API，代理侧已做IP白名单，调用方无需固定IP。
// 令牌缺失不是启动错误：评分核心不依赖官方API，战绩端点自行降级。
func InitClient(cfg config.ClashConfig) {
	apiToken = cfg.APIToken
	baseURL = cfg.BaseURL
	if apiToken == "" {
		fmt.Println("未配置Clash Royale API令牌，玩家战绩分析端点将不可用。")
		return
	}
	fmt.Println("Clash Royale API客户端初始化成功。")
}

// FormatPlayerTag 统一玩家标签格式: 去掉#前缀、转大写、再补回#。
func FormatPlayerTag(tag string) string {
	return "#" + strings.ToUpper(strings.TrimPrefix(tag, "#"))
}

// EncodePlayerTag 把玩家标签编码为URL路径段(#会被转义为%23)。
func EncodePlayerTag(tag string) string {
	return url.PathEscape(FormatPlayerTag(tag))
}

// makeAPIRequest 执行一次带令牌的GET请求并把响应解码到out。
func makeAPIRequest(ctx context.Context, endpoint string, out interface{}) error {
	if apiToken == "" {
		return ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+endpoint, nil)
	if err != nil {
		return fmt.Errorf("构造Clash API请求失败: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+apiToken)
	req.Header.Set("Accept", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return &APIError{Message: fmt.Sprintf("Network error: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		fmt.Printf("Clash API错误 [%d]: %s %s\n", resp.StatusCode, endpoint, body)
		return &APIError{
			Status:     resp.StatusCode,
			StatusText: resp.Status,
			Message:    fmt.Sprintf("API request failed: %s", resp.Status),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("解析Clash API响应失败: %w", err)
	}
	return nil
}

// Player 是玩家档案中战绩分析关心的字段子集。
type Player struct {
	Tag            string `json:"tag"`
	Name           string `json:"name"`
	ExpLevel       int    `json:"expLevel"`
	Trophies       int    `json:"trophies"`
	BestTrophies   int    `json:"bestTrophies"`
	Wins           int    `json:"wins"`
	Losses         int    `json:"losses"`
	BattleCount    int    `json:"battleCount"`
	ThreeCrownWins int    `json:"threeCrownWins"`
	Arena          struct {
		Name string `json:"name"`
	} `json:"arena"`
}

// GetPlayer 拉取玩家档案。
func GetPlayer(ctx context.Context, playerTag string) (*Player, error) {
	var player Player
	if err := makeAPIRequest(ctx, "/players/"+EncodePlayerTag(playerTag), &player); err != nil {
		return nil, err
	}
	return &player, nil
}

// GetBattleLog 拉取玩家最近的对战日志(上游固定返回最近25场，时间倒序)。
// 对战记录的结构属于调用方的领域，由out参数接收，本包不定义对战模型。
func GetBattleLog(ctx context.Context, playerTag string, out interface{}) error {
	return makeAPIRequest(ctx, "/players/"+EncodePlayerTag(playerTag)+"/battlelog", out)
}
