package domain

// Chart is a dashboard chart definition: what to draw and where the title
// and grid sit on the canvas
type Chart struct {
	BaseModel
	Name           string `gorm:"type:varchar(255)" json:"name"`
	Description    string `gorm:"type:varchar(255)" json:"description"`
	TitleHighlight string `gorm:"type:varchar(255)" json:"titleHighlight"`
	TitleIcon      string `gorm:"type:varchar(255)" json:"titleIcon"`
	TitleText      string `gorm:"type:varchar(255)" json:"titleText"`
	TitleSubText   string `gorm:"type:varchar(255)" json:"titleSubText"`
	TitleLeft      *int   `json:"titleLeft,omitempty"`
	TitleTop       *int   `json:"titleTop,omitempty"`
	GridTop        *int   `json:"gridTop,omitempty"`
	GridLeft       *int   `json:"gridLeft,omitempty"`
	GridBottom     *int   `json:"gridBottom,omitempty"`
	GridRight      *int   `json:"gridRight,omitempty"`
	IsShowTitle    *bool  `json:"isShowTitle,omitempty"`
}

// TableName specifies the table name for Chart
func (Chart) TableName() string {
	return "charts"
}
