package dto

import "time"

// ChartRequest is the payload for creating or updating a chart definition
type ChartRequest struct {
	Name           string  `json:"name" binding:"required"`
	Description    string  `json:"description,omitempty"`
	Code           *string `json:"code,omitempty"`
	TitleHighlight string  `json:"titleHighlight,omitempty"`
	TitleIcon      string  `json:"titleIcon,omitempty"`
	TitleText      string  `json:"titleText,omitempty"`
	TitleSubText   string  `json:"titleSubText,omitempty"`
	TitleLeft      *int    `json:"titleLeft,omitempty"`
	TitleTop       *int    `json:"titleTop,omitempty"`
	GridTop        *int    `json:"gridTop,omitempty"`
	GridLeft       *int    `json:"gridLeft,omitempty"`
	GridBottom     *int    `json:"gridBottom,omitempty"`
	GridRight      *int    `json:"gridRight,omitempty"`
	IsShowTitle    *bool   `json:"isShowTitle,omitempty"`
}

// ChartResponse is the chart representation returned to clients
type ChartResponse struct {
	ID             uint      `json:"id"`
	UUID           string    `json:"uuid"`
	Code           *string   `json:"code,omitempty"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	TitleHighlight string    `json:"titleHighlight,omitempty"`
	TitleIcon      string    `json:"titleIcon,omitempty"`
	TitleText      string    `json:"titleText,omitempty"`
	TitleSubText   string    `json:"titleSubText,omitempty"`
	TitleLeft      *int      `json:"titleLeft,omitempty"`
	TitleTop       *int      `json:"titleTop,omitempty"`
	GridTop        *int      `json:"gridTop,omitempty"`
	GridLeft       *int      `json:"gridLeft,omitempty"`
	GridBottom     *int      `json:"gridBottom,omitempty"`
	GridRight      *int      `json:"gridRight,omitempty"`
	IsShowTitle    *bool     `json:"isShowTitle,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	Version        int64     `json:"version"`
}
