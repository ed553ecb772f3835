package dto

import "time"

// 表单与查询参数的键
const (
	ID           = "id"
	BankID       = "bank_id"
	Milliliters  = "milliliters"
	BloodGroup   = "blood_group"
	RhesusFactor = "rhesus_factor"
	Created      = "created"
)

// BloodDonationForm 表单提交的原始字符串
type BloodDonationForm struct {
	Milliliters  string `form:"milliliters" comment:"献血量" validate:"notblank,max=45"`
	BloodGroup   string `form:"blood_group" comment:"血型" validate:"notblank,oneof=A B AB O"`
	RhesusFactor string `form:"rhesus_factor" comment:"Rh因子" validate:"notblank,oneof=Positive Negative"`
	Created      string `form:"created" comment:"献血时间" validate:"max=45"`
}

// BloodDonationDTO 献血信息
type BloodDonationDTO struct {
	ID           int64     `json:"id" comment:"ID"`
	BankID       *int64    `json:"bankId" comment:"血库ID"`
	Milliliters  int       `json:"milliliters" comment:"献血量"`
	BloodGroup   string    `json:"bloodGroup" comment:"血型"`
	RhesusFactor string    `json:"rhesusFactor" comment:"Rh因子"`
	Created      time.Time `json:"created" comment:"献血时间"`
}
