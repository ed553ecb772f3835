package model

import (
	"time"

	"bloodbank/pkg/core/model/common"
)

// BloodGroup 血型
type BloodGroup string

const (
	BloodGroupA  BloodGroup = "A"
	BloodGroupB  BloodGroup = "B"
	BloodGroupAB BloodGroup = "AB"
	BloodGroupO  BloodGroup = "O"
)

// RhesusFactor Rh 因子
type RhesusFactor string

const (
	RhesusPositive RhesusFactor = "Positive"
	RhesusNegative RhesusFactor = "Negative"
)

// BloodDonation 一次献血
type BloodDonation struct {
	common.Model
	// BankID 所属血库，指向血库组件
	BankID       *int64       `gorm:"index;comment:血库ID" json:"bankId" comment:"血库ID"`
	Milliliters  int          `gorm:"not null;comment:献血量(毫升)" json:"milliliters" comment:"献血量"`
	BloodGroup   BloodGroup   `gorm:"size:2;not null;comment:血型" json:"bloodGroup" comment:"血型"`
	RhesusFactor RhesusFactor `gorm:"size:8;not null;comment:Rh因子" json:"rhesusFactor" comment:"Rh因子"`
	Created      time.Time    `gorm:"not null;comment:献血时间" json:"created" comment:"献血时间"`
}

// TableName 设置表名
func (BloodDonation) TableName() string {
	return "blood_donation"
}
