package domain

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/EstebanCesp/Tarea1-Programacion-Software/internal/schema"
)

// User is the persisted user row. CreatedAt and UpdatedAt are owned by the
// storage layer (set on insert and on update); application code never
// assigns them. Validation lives in schema.User — rows are built from
// records that already passed it.
type User struct {
	ID     int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name   string  `gorm:"size:100;not null" json:"name"`
	Email  string  `gorm:"uniqueIndex;size:150;not null" json:"email"`
	Phone  *string `gorm:"size:20" json:"phone"`
	Active bool    `gorm:"default:true" json:"active"`
	Admin  bool    `gorm:"default:false" json:"admin"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }

// UserFromSchema builds a row from a validated record.
func UserFromSchema(u *schema.User) *User {
	return &User{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Phone:  u.Phone,
		Active: u.Active,
	}
}

// Schema returns the validated-record view of the row.
func (u *User) Schema() *schema.User {
	return &schema.User{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Phone:  u.Phone,
		Active: u.Active,
	}
}

// ApplyUpdate copies the present fields of a validated partial update onto
// the row. Absent fields stay untouched.
func (u *User) ApplyUpdate(up *schema.UserUpdate) {
	if up.Name != nil {
		u.Name = *up.Name
	}
	if up.Email != nil {
		u.Email = *up.Email
	}
	if up.Phone != nil {
		u.Phone = up.Phone
	}
	if up.Active != nil {
		u.Active = *up.Active
	}
}

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id int64) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, offset, limit int) ([]User, int64, error)
	Update(ctx context.Context, u *User) error
	UpdatePartial(ctx context.Context, id int64, up *schema.UserUpdate) (*User, error)
	SoftDelete(ctx context.Context, id int64) error
}
