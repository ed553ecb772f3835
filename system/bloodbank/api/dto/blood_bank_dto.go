package dto

import "time"

// 表单与查询参数的键
const (
	ID             = "id"
	OwnerID        = "owner_id"
	PrivatelyOwned = "privately_owned"
	Established    = "established"
	Name           = "name"
	EmployeeCount  = "employee_count"
)

// BloodBankForm 表单提交的原始字符串
type BloodBankForm struct {
	Name           string `form:"name" comment:"名称" validate:"notblank,max=45"`
	EmployeeCount  string `form:"employee_count" comment:"员工数" validate:"notblank,max=45"`
	Established    string `form:"established" comment:"成立日期" validate:"max=45"`
	PrivatelyOwned string `form:"privately_owned" comment:"是否私营" validate:"max=45"`
}

// BloodBankDTO 血库信息
type BloodBankDTO struct {
	ID             int64     `json:"id" comment:"ID"`
	Name           string    `json:"name" comment:"名称"`
	EmployeeCount  int       `json:"employeeCount" comment:"员工数"`
	Established    time.Time `json:"established" comment:"成立日期"`
	PrivatelyOwned bool      `json:"privatelyOwned" comment:"是否私营"`
	OwnerID        *int64    `json:"ownerId" comment:"所有人ID"`
}
