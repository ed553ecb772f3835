package dao

import (
	"context"
	"time"

	errorc "bloodbank/pkg/core/err"
	"bloodbank/pkg/core/logger"
	"bloodbank/pkg/core/mvc"
	"bloodbank/system/bloodbank/internal/model"

	"gorm.io/gorm"
)

// 命名查询
const (
	QueryFindAll                    = "BloodBank.findAll"
	QueryFindByBankId               = "BloodBank.findByBankId"
	QueryFindByName                 = "BloodBank.findByName"
	QueryFindByPrivatelyOwned       = "BloodBank.findByPrivatelyOwned"
	QueryFindByEstablished          = "BloodBank.findByEstablished"
	QueryFindByEmployeeCount        = "BloodBank.findByEmployeeCount"
	QueryFindByEmployeeCountAtLeast = "BloodBank.findByEmployeeCountAtLeast"
	QueryFindByOwner                = "BloodBank.findByOwner"
	QueryFindContaining             = "BloodBank.findContaining"
)

var bloodBankQueries = []mvc.NamedQuery{
	{Name: QueryFindAll},
	{Name: QueryFindByBankId, Where: "id = @bankId"},
	{Name: QueryFindByName, Where: "name = @name"},
	{Name: QueryFindByPrivatelyOwned, Where: "privately_owned = @privatelyOwned"},
	{Name: QueryFindByEstablished, Where: "established >= @from AND established < @to"},
	{Name: QueryFindByEmployeeCount, Where: "employee_count = @employeeCount"},
	{Name: QueryFindByEmployeeCountAtLeast, Where: "employee_count >= @employeeCount", Order: "employee_count, id"},
	{Name: QueryFindByOwner, Where: "owner_id = @ownerId"},
	{Name: QueryFindContaining, Where: "name LIKE @search " + mvc.LikeEscape},
}

// BloodBankDao 血库数据访问层
type BloodBankDao struct {
	mvc.IBaseDao[model.BloodBank]
	log *logger.Log
	err *errorc.ErrorBuilder
}

// NewBloodBankDao 创建血库 DAO 实例
func NewBloodBankDao(db *gorm.DB, log *logger.Log) *BloodBankDao {
	return &BloodBankDao{
		IBaseDao: mvc.NewGormDao[model.BloodBank](db, bloodBankQueries...),
		log:      log.WithEntryName("BloodBankDao"),
		err:      errorc.NewErrorBuilder("BloodBankDao"),
	}
}

func (d *BloodBankDao) FindAll(ctx context.Context) ([]*model.BloodBank, error) {
	return d.FindResults(ctx, QueryFindAll, nil)
}

func (d *BloodBankDao) FindById(ctx context.Context, bankId interface{}) (*model.BloodBank, error) {
	return d.FindResult(ctx, QueryFindByBankId, map[string]interface{}{"bankId": bankId})
}

// FindByName 名称唯一，最多一条
func (d *BloodBankDao) FindByName(ctx context.Context, name string) (*model.BloodBank, error) {
	return d.FindResult(ctx, QueryFindByName, map[string]interface{}{"name": name})
}

func (d *BloodBankDao) FindByPrivatelyOwned(ctx context.Context, privatelyOwned bool) ([]*model.BloodBank, error) {
	return d.FindResults(ctx, QueryFindByPrivatelyOwned, map[string]interface{}{"privatelyOwned": privatelyOwned})
}

// FindByEstablished 查询某一天成立的血库
func (d *BloodBankDao) FindByEstablished(ctx context.Context, established time.Time) ([]*model.BloodBank, error) {
	from, to := mvc.DayRange(established)
	return d.FindResults(ctx, QueryFindByEstablished, map[string]interface{}{"from": from, "to": to})
}

func (d *BloodBankDao) FindByEmployeeCount(ctx context.Context, employeeCount int) ([]*model.BloodBank, error) {
	return d.FindResults(ctx, QueryFindByEmployeeCount, map[string]interface{}{"employeeCount": employeeCount})
}

// FindByEmployeeCountAtLeast 员工数不少于 employeeCount，按员工数升序
func (d *BloodBankDao) FindByEmployeeCountAtLeast(ctx context.Context, employeeCount int) ([]*model.BloodBank, error) {
	return d.FindResults(ctx, QueryFindByEmployeeCountAtLeast, map[string]interface{}{"employeeCount": employeeCount})
}

func (d *BloodBankDao) FindByOwner(ctx context.Context, ownerId int64) (*model.BloodBank, error) {
	return d.FindResult(ctx, QueryFindByOwner, map[string]interface{}{"ownerId": ownerId})
}

// FindContaining 名称包含关键字
func (d *BloodBankDao) FindContaining(ctx context.Context, search string) ([]*model.BloodBank, error) {
	return d.FindResults(ctx, QueryFindContaining, map[string]interface{}{"search": mvc.LikePattern(search)})
}
