package ingest

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/SlpAus/royale-coach-backend/pkg/token"
	"github.com/gin-gonic/gin"
)

// adminScope 是管理令牌的作用域标识。
const adminScope = "ingest-admin"

// adminTokenMaxAge 是管理令牌的有效期。
const adminTokenMaxAge = 24 * time.Hour

// AdminAuthMiddleware 校验管理端点的HMAC令牌。
// 令牌格式为 "<签发时间戳(Unix秒)>.<签名>"，通过 X-Admin-Token 请求头传递。
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("X-Admin-Token")
		parts := strings.SplitN(raw, ".", 2)
		if len(parts) != 2 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
			return
		}

		issuedAt, err := strconv.ParseInt(parts[0], 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
			return
		}
		age := time.Since(time.Unix(issuedAt, 0))
		if age < 0 || age > adminTokenMaxAge {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
			return
		}

		payload := token.TokenPayload{Scope: adminScope, IssuedAt: issuedAt}
		if !token.ValidateSignature(payload, parts[1]) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
			return
		}
		c.Next()
	}
}
