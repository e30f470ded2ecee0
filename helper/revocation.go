package helper

import (
	"context"
	"log"
	"time"
)

const revokedKeyPrefix = "revoked_jti:"

// RevokeToken ghi JTI vào redis với TTL bằng thời gian sống còn lại của
// token. Dùng store ngoài thay vì set in-memory để không mất khi restart và
// chạy được nhiều instance.
func RevokeToken(jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return RedisClient().Set(context.Background(), revokedKeyPrefix+jti, "1", ttl).Err()
}

// IsTokenRevoked kiểm tra mỗi request đã xác thực. Redis lỗi thì coi như
// chưa thu hồi nhưng có log lại.
func IsTokenRevoked(jti string) bool {
	if jti == "" {
		return false
	}
	n, err := RedisClient().Exists(context.Background(), revokedKeyPrefix+jti).Result()
	if err != nil {
		log.Printf("Revocation check failed for jti=%s: %v", jti, err)
		return false
	}
	return n > 0
}
