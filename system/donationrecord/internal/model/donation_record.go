package model

import (
	"time"

	"bloodbank/pkg/core/model/common"
)

// DonationRecord 献血登记：谁在哪家医院献了哪一次血
type DonationRecord struct {
	common.Model
	// PersonID 献血人，指向人员组件
	PersonID *int64 `gorm:"index;comment:献血人ID" json:"personId" comment:"献血人ID"`
	// DonationID 献血，指向献血组件
	DonationID    *int64    `gorm:"index;comment:献血ID" json:"donationId" comment:"献血ID"`
	Administrator string    `gorm:"size:45;not null;comment:经办人" json:"administrator" comment:"经办人"`
	Hospital      string    `gorm:"size:45;not null;comment:医院" json:"hospital" comment:"医院"`
	Tested        bool      `gorm:"not null;default:false;comment:是否已检测" json:"tested" comment:"是否已检测"`
	Created       time.Time `gorm:"not null;comment:登记时间" json:"created" comment:"登记时间"`
}

// TableName 设置表名
func (DonationRecord) TableName() string {
	return "donation_record"
}
