package token

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
)

// secretKey 是一个全局变量，用于存储HMAC签名密钥。
var secretKey []byte

// TokenPayload 定义了需要被签名的数据结构。
// 管理端在请求头中携带序列化后的payload和对应签名。
type TokenPayload struct {
	Scope    string `json:"s"`
	IssuedAt int64  `json:"t"`
}

// InitSecretKey 用配置的共享密钥初始化签名密钥。
// 未配置时生成一个进程内随机密钥，此时只有同进程签发的令牌有效。
func InitSecretKey(configuredSecret string) {
	if configuredSecret != "" {
		secretKey = []byte(configuredSecret)
		fmt.Println("HMAC密钥已从配置加载。")
		return
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		panic("无法生成安全的密钥: " + err.Error())
	}
	secretKey = key
	fmt.Println("未配置管理密钥，已生成进程内随机HMAC密钥。")
}

// GenerateSignature 为一个给定的TokenPayload生成HMAC签名。
// 它返回的是签名的Base64编码字符串。
func GenerateSignature(payload TokenPayload) (string, error) {
	// 1. 将payload序列化为JSON字符串
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return "", errors.New("无法序列化Token payload")
	}

	// 2. 使用HMAC-SHA256和密钥对payload进行签名
	mac := hmac.New(sha256.New, secretKey)
	mac.Write(payloadBytes)
	signature := mac.Sum(nil)

	// 3. 对签名进行Base64编码，并返回
	return base64.RawURLEncoding.EncodeToString(signature), nil
}

// ValidateSignature 验证一个给定的payload和签名是否匹配。
func ValidateSignature(payload TokenPayload, signatureB64 string) bool {
	// 1. 将传入的payload重新序列化，以确保与签名时的数据格式完全一致
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return false
	}

	// 2. 重新计算预期的签名
	mac := hmac.New(sha256.New, secretKey)
	mac.Write(payloadBytes)
	expectedSignature := mac.Sum(nil)

	// 3. 解码传入的签名
	actualSignature, err := base64.RawURLEncoding.DecodeString(signatureB64)
	if err != nil {
		return false
	}

	// 4. 使用 hmac.Equal 进行时间恒定的比较，防止时序攻击
	return hmac.Equal(expectedSignature, actualSignature)
}
