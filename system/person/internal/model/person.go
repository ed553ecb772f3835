package model

import (
	"time"

	"bloodbank/pkg/core/model/common"
)

// Person 献血者，同时可作为血库的所有人
type Person struct {
	common.Model
	FirstName string    `gorm:"size:45;not null;comment:名" json:"firstName" comment:"名"`
	LastName  string    `gorm:"size:45;not null;comment:姓" json:"lastName" comment:"姓"`
	Phone     string    `gorm:"size:45;not null;index;comment:电话" json:"phone" comment:"电话"`
	Address   string    `gorm:"size:45;comment:地址" json:"address" comment:"地址"`
	Birth     time.Time `gorm:"not null;comment:出生日期" json:"birth" comment:"出生日期"`
}

// TableName 设置表名
func (Person) TableName() string {
	return "person"
}
