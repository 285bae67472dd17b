package model

import (
	"time"
)

// TokenBlacklist holds the HMAC of a logged-out access token until the token
// would have expired anyway.
type TokenBlacklist struct {
	TokenBlacklistID        uint      `gorm:"column:token_blacklist_id;primaryKey"`
	TokenBlacklistHash      string    `gorm:"column:token_blacklist_hash;type:varchar(64);not null;uniqueIndex"`
	TokenBlacklistExpiredAt time.Time `gorm:"column:token_blacklist_expired_at;not null;index"`
	TokenBlacklistCreatedAt time.Time `gorm:"column:token_blacklist_created_at;autoCreateTime"`
}

func (TokenBlacklist) TableName() string {
	return "token_blacklist"
}
