package dto

import "time"

// 表单与查询参数的键
const (
	ID        = "id"
	FirstName = "first_name"
	LastName  = "last_name"
	Phone     = "phone"
	Address   = "address"
	Birth     = "birth"
)

// PersonForm 表单提交的原始字符串，转换前先做校验
type PersonForm struct {
	FirstName string `form:"first_name" comment:"名" validate:"notblank,max=45"`
	LastName  string `form:"last_name" comment:"姓" validate:"notblank,max=45"`
	Phone     string `form:"phone" comment:"电话" validate:"notblank,max=45"`
	Address   string `form:"address" comment:"地址" validate:"max=45"`
	Birth     string `form:"birth" comment:"出生日期"`
}

// PersonDTO 人员信息
type PersonDTO struct {
	ID        int64     `json:"id" comment:"ID"`
	FirstName string    `json:"firstName" comment:"名"`
	LastName  string    `json:"lastName" comment:"姓"`
	Phone     string    `json:"phone" comment:"电话"`
	Address   string    `json:"address" comment:"地址"`
	Birth     time.Time `json:"birth" comment:"出生日期"`
}
