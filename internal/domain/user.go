package domain

import (
	"time"
)

// Gender enumerates the accepted gender values
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

// User represents an administrative account of the furniture company
type User struct {
	BaseModel
	Name        string     `gorm:"type:varchar(255)" json:"name"`
	Gender      Gender     `gorm:"type:varchar(10)" json:"gender"`
	Age         *int       `json:"age,omitempty"`
	Username    string     `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	Password    string     `gorm:"type:varchar(255)" json:"-"`
	Email       string     `gorm:"type:varchar(255)" json:"email"`
	PhoneNumber string     `gorm:"type:varchar(30)" json:"phoneNumber"`
	Dob         *time.Time `gorm:"type:date" json:"dob,omitempty"`
	Roles       []Role     `gorm:"many2many:user_roles" json:"roles,omitempty"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
