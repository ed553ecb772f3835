package dao

import (
	"context"
	"time"

	errorc "bloodbank/pkg/core/err"
	"bloodbank/pkg/core/logger"
	"bloodbank/pkg/core/mvc"
	"bloodbank/system/person/internal/model"

	"gorm.io/gorm"
)

// 命名查询
const (
	QueryFindByFirstName  = "Person.findByFirstName"
	QueryFindByLastName   = "Person.findByLastName"
	QueryFindByPhone      = "Person.findByPhone"
	QueryFindByBirth      = "Person.findByBirth"
	QueryFindByContaining = "Person.findContaining"
)

var personQueries = []mvc.NamedQuery{
	{Name: QueryFindByFirstName, Where: "first_name = @firstName"},
	{Name: QueryFindByLastName, Where: "last_name = @lastName"},
	{Name: QueryFindByPhone, Where: "phone = @phone"},
	{Name: QueryFindByBirth, Where: "birth >= @from AND birth < @to"},
	{Name: QueryFindByContaining, Where: "(first_name LIKE @pattern " + mvc.LikeEscape +
		" OR last_name LIKE @pattern " + mvc.LikeEscape +
		" OR phone LIKE @pattern " + mvc.LikeEscape +
		" OR address LIKE @pattern " + mvc.LikeEscape + ")"},
}

// PersonDao 人员数据访问层
type PersonDao struct {
	mvc.IBaseDao[model.Person]
	log *logger.Log
	err *errorc.ErrorBuilder
}

// NewPersonDao 创建人员 DAO 实例
func NewPersonDao(db *gorm.DB, log *logger.Log) *PersonDao {
	return &PersonDao{
		IBaseDao: mvc.NewGormDao[model.Person](db, personQueries...),
		log:      log.WithEntryName("PersonDao"),
		err:      errorc.NewErrorBuilder("PersonDao"),
	}
}

func (d *PersonDao) FindByFirstName(ctx context.Context, firstName string) ([]*model.Person, error) {
	return d.FindResults(ctx, QueryFindByFirstName, map[string]interface{}{"firstName": firstName})
}

func (d *PersonDao) FindByLastName(ctx context.Context, lastName string) ([]*model.Person, error) {
	return d.FindResults(ctx, QueryFindByLastName, map[string]interface{}{"lastName": lastName})
}

func (d *PersonDao) FindByPhone(ctx context.Context, phone string) ([]*model.Person, error) {
	return d.FindResults(ctx, QueryFindByPhone, map[string]interface{}{"phone": phone})
}

// FindByBirth 查询某一天出生的人员
func (d *PersonDao) FindByBirth(ctx context.Context, birth time.Time) ([]*model.Person, error) {
	from, to := mvc.DayRange(birth)
	return d.FindResults(ctx, QueryFindByBirth, map[string]interface{}{"from": from, "to": to})
}

// FindContaining 姓名、电话或地址包含关键字
func (d *PersonDao) FindContaining(ctx context.Context, keyword string) ([]*model.Person, error) {
	return d.FindResults(ctx, QueryFindByContaining, map[string]interface{}{"pattern": mvc.LikePattern(keyword)})
}
