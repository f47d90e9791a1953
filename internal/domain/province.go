package domain

// Province is a reference row of Vietnamese province codes used by the
// address screens
type Province struct {
	BaseModel
	ProvinceCode       string `gorm:"type:varchar(10)" json:"provinceCode"`
	ProvinceKey        string `gorm:"type:varchar(50)" json:"provinceKey"`
	ProvinceName       string `gorm:"type:varchar(50)" json:"provinceName"`
	ProvinceCodeNumber string `gorm:"type:varchar(255)" json:"provinceCodeNumber"`
	AreaCode           string `gorm:"type:varchar(10)" json:"areaCode"`
}

// TableName specifies the table name for Province
func (Province) TableName() string {
	return "d_province_name_vi"
}
