package auth

import "time"

// InvalidatedToken records a logged-out token by its jti. Expired entries
// are harmless; the token they block is already unusable.
type InvalidatedToken struct {
	ID         string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	ExpiryTime time.Time `json:"expiryTime"`
}

// TableName specifies the table name for InvalidatedToken
func (InvalidatedToken) TableName() string {
	return "invalidated_tokens"
}
