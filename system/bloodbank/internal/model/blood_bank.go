package model

import (
	"time"

	"bloodbank/pkg/core/model/common"
)

// BloodBank 血库
// 名称在未删除的记录中唯一，由应用层在保存前检查
type BloodBank struct {
	common.Model
	Name           string    `gorm:"size:45;not null;index;comment:名称" json:"name" comment:"名称"`
	EmployeeCount  int       `gorm:"not null;comment:员工数" json:"employeeCount" comment:"员工数"`
	Established    time.Time `gorm:"not null;comment:成立日期" json:"established" comment:"成立日期"`
	PrivatelyOwned bool      `gorm:"not null;default:false;comment:是否私营" json:"privatelyOwned" comment:"是否私营"`
	// OwnerID 所有人，指向人员组件
	OwnerID *int64 `gorm:"index;comment:所有人ID" json:"ownerId" comment:"所有人ID"`
}

// TableName 设置表名
func (BloodBank) TableName() string {
	return "blood_bank"
}
