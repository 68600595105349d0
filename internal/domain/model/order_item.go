package model

// 注文明細。注文時点の商品名・価格のスナップショット。
// 後から商品を編集しても過去の注文は変わらない。
type OrderItem struct {
	ID        int64   `gorm:"primaryKey;autoIncrement" json:"-"`
	OrderID   int64   `gorm:"not null;index" json:"-"`
	ProductID int64   `gorm:"not null;index" json:"id"`
	Name      string  `gorm:"type:varchar(255);not null" json:"name"`
	Price     float64 `gorm:"not null" json:"price"`
	Qty       int64   `gorm:"not null" json:"qty"`
}
