package app

import (
	"context"

	errorc "bloodbank/pkg/core/err"
	"bloodbank/pkg/core/logger"
	"bloodbank/pkg/core/model/common"
	"bloodbank/pkg/core/mvc"
	"bloodbank/system/person/api/dto"
	"bloodbank/system/person/internal/dao"
	"bloodbank/system/person/internal/model"
	"bloodbank/system/person/internal/service"

	"gorm.io/gorm"
)

// App 人员组件应用层
type App struct {
	PersonService *service.PersonService
	log           *logger.Log
	err           *errorc.ErrorBuilder
}

// NewApp 创建人员组件应用层实例
func NewApp(db *gorm.DB) *App {
	log := logger.GetLogger().WithEntryName("PersonApp")

	personDao := dao.NewPersonDao(db, log)
	personSvc := service.NewPersonService(personDao, log)

	return &App{
		PersonService: personSvc,
		log:           log,
		err:           errorc.NewErrorBuilder("PersonApp"),
	}
}

// Submit 校验参数后保存人员，参数带 id 时更新已有记录
func (a *App) Submit(ctx context.Context, params mvc.Params) (*model.Person, error) {
	person, err := a.PersonService.CreateEntity(params)
	if err != nil {
		return nil, err
	}
	if err := a.PersonService.Update(ctx, person); err != nil {
		return nil, err
	}
	return person, nil
}

// Query 按第一个出现的过滤条件查询，没有条件时返回全部
func (a *App) Query(ctx context.Context, params mvc.Params) ([]*model.Person, error) {
	svc := a.PersonService
	switch {
	case params.Get("search") != "":
		return svc.Search(ctx, params.Get("search"))
	case params.Get("firstName") != "":
		return svc.GetPersonsWithFirstName(ctx, params.Get("firstName"))
	case params.Get("lastName") != "":
		return svc.GetPersonsWithLastName(ctx, params.Get("lastName"))
	case params.Get("phone") != "":
		return svc.GetPersonsWithPhone(ctx, params.Get("phone"))
	case params.Get("birth") != "":
		birth, err := common.ParseTime(params.Get("birth"))
		if err != nil {
			return nil, a.err.New("birth 日期格式不正确", err).Valid()
		}
		return svc.GetPersonsWithBirth(ctx, birth)
	default:
		return svc.GetAll(ctx)
	}
}

// Rows 表格数据
func (a *App) Rows(persons []*model.Person) [][]interface{} {
	rows := make([][]interface{}, 0, len(persons))
	for _, p := range persons {
		rows = append(rows, a.PersonService.ExtractDataAsList(p))
	}
	return rows
}

// ToDTO 转换为对外 DTO
func ToDTO(p *model.Person) *dto.PersonDTO {
	if p == nil {
		return nil
	}
	return &dto.PersonDTO{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Phone:     p.Phone,
		Address:   p.Address,
		Birth:     p.Birth,
	}
}
