package model

import "time"

// 商品（スマートフォン）。削除は is_active の切り替えのみ（物理削除しない）
type Product struct {
	ID       int64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string   `gorm:"type:varchar(255);not null;index" json:"name"`
	Brand    string   `gorm:"type:varchar(100);not null;index" json:"brand"`
	Price    float64  `gorm:"not null" json:"price"`
	OldPrice *float64 `json:"old_price"`
	Image    string   `gorm:"type:text" json:"image"`
	Quantity int64    `gorm:"not null;default:0" json:"quantity"`
	IsActive bool     `gorm:"not null;default:true" json:"is_active"`

	//スペック（自由テキスト）
	RAM       string `gorm:"type:varchar(50);column:ram" json:"ram"`
	Storage   string `gorm:"type:varchar(50)" json:"storage"`
	Condition string `gorm:"type:varchar(100)" json:"condition"`
	Chip      string `gorm:"type:varchar(100)" json:"chip"`
	Screen    string `gorm:"type:varchar(100)" json:"screen"`
	Battery   string `gorm:"type:varchar(100)" json:"battery"`

	Desc *string `gorm:"type:text" json:"desc"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
