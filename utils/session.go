// File: utils/session.go
package utils

import (
	"context"
	"time"
)

const adminSessionPrefix = "admin:session:"

// StoreAdminSession records an issued admin token in the auth cache so it
// can be revoked before its JWT expiry.
func StoreAdminSession(ctx context.Context, token string, ttl time.Duration) error {
	return GetAuthCacheClient().Set(ctx, adminSessionPrefix+token, "1", ttl).Err()
}

// AdminSessionActive reports whether the token is a live, unrevoked session.
func AdminSessionActive(ctx context.Context, token string) bool {
	n, err := GetAuthCacheClient().Exists(ctx, adminSessionPrefix+token).Result()
	return err == nil && n > 0
}

// RevokeAdminSession invalidates a session token immediately.
func RevokeAdminSession(ctx context.Context, token string) error {
	return GetAuthCacheClient().Del(ctx, adminSessionPrefix+token).Err()
}
