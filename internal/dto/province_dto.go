package dto

import "time"

// ProvinceRequest is the payload for creating or updating a province row
type ProvinceRequest struct {
	ProvinceCode       string  `json:"provinceCode" binding:"required"`
	ProvinceKey        string  `json:"provinceKey,omitempty"`
	ProvinceName       string  `json:"provinceName" binding:"required"`
	ProvinceCodeNumber string  `json:"provinceCodeNumber,omitempty"`
	AreaCode           string  `json:"areaCode,omitempty"`
	Code               *string `json:"code,omitempty"`
}

// ProvinceResponse is the province representation returned to clients
type ProvinceResponse struct {
	ID                 uint      `json:"id"`
	UUID               string    `json:"uuid"`
	Code               *string   `json:"code,omitempty"`
	ProvinceCode       string    `json:"provinceCode"`
	ProvinceKey        string    `json:"provinceKey,omitempty"`
	ProvinceName       string    `json:"provinceName"`
	ProvinceCodeNumber string    `json:"provinceCodeNumber,omitempty"`
	AreaCode           string    `json:"areaCode,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
	Version            int64     `json:"version"`
}
