package dto

import "time"

// 表单与查询参数的键
const (
	ID            = "id"
	PersonID      = "person_id"
	DonationID    = "donation_id"
	Administrator = "administrator"
	Hospital      = "hospital"
	Tested        = "tested"
	Created       = "created"
)

// DonationRecordForm 表单提交的原始字符串
type DonationRecordForm struct {
	Administrator string `form:"administrator" comment:"经办人" validate:"notblank,max=45"`
	Hospital      string `form:"hospital" comment:"医院" validate:"notblank,max=45"`
	Tested        string `form:"tested" comment:"是否已检测" validate:"max=45"`
	Created       string `form:"created" comment:"登记时间" validate:"max=45"`
}

// DonationRecordDTO 献血登记信息
type DonationRecordDTO struct {
	ID            int64     `json:"id" comment:"ID"`
	PersonID      *int64    `json:"personId" comment:"献血人ID"`
	DonationID    *int64    `json:"donationId" comment:"献血ID"`
	Administrator string    `json:"administrator" comment:"经办人"`
	Hospital      string    `json:"hospital" comment:"医院"`
	Tested        bool      `json:"tested" comment:"是否已检测"`
	Created       time.Time `json:"created" comment:"登记时间"`
}
