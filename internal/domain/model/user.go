package model

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Username string `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`

	//bcryptハッシュ。平文は保存しない。JSONにも出さない
	Password string `gorm:"not null" json:"-"`

	Role Role `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
}
