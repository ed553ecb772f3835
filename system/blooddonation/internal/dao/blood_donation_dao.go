package dao

import (
	"context"
	"time"

	errorc "bloodbank/pkg/core/err"
	"bloodbank/pkg/core/logger"
	"bloodbank/pkg/core/mvc"
	"bloodbank/system/blooddonation/internal/model"

	"gorm.io/gorm"
)

// 命名查询
const (
	QueryFindByBank         = "BloodDonation.findByBank"
	QueryFindByMilliliters  = "BloodDonation.findByMilliliters"
	QueryFindByBloodGroup   = "BloodDonation.findByBloodGroup"
	QueryFindByRhesusFactor = "BloodDonation.findByRhesusFactor"
	QueryFindByCreated      = "BloodDonation.findByCreated"
)

var bloodDonationQueries = []mvc.NamedQuery{
	{Name: QueryFindByBank, Where: "bank_id = @bankId"},
	{Name: QueryFindByMilliliters, Where: "milliliters = @milliliters"},
	{Name: QueryFindByBloodGroup, Where: "blood_group = @bloodGroup"},
	{Name: QueryFindByRhesusFactor, Where: "rhesus_factor = @rhesusFactor"},
	{Name: QueryFindByCreated, Where: "created >= @from AND created < @to", Order: "created, id"},
}

// BloodDonationDao 献血数据访问层
type BloodDonationDao struct {
	mvc.IBaseDao[model.BloodDonation]
	log *logger.Log
	err *errorc.ErrorBuilder
}

// NewBloodDonationDao 创建献血 DAO 实例
func NewBloodDonationDao(db *gorm.DB, log *logger.Log) *BloodDonationDao {
	return &BloodDonationDao{
		IBaseDao: mvc.NewGormDao[model.BloodDonation](db, bloodDonationQueries...),
		log:      log.WithEntryName("BloodDonationDao"),
		err:      errorc.NewErrorBuilder("BloodDonationDao"),
	}
}

func (d *BloodDonationDao) FindByBank(ctx context.Context, bankId int64) ([]*model.BloodDonation, error) {
	return d.FindResults(ctx, QueryFindByBank, map[string]interface{}{"bankId": bankId})
}

func (d *BloodDonationDao) FindByMilliliters(ctx context.Context, milliliters int) ([]*model.BloodDonation, error) {
	return d.FindResults(ctx, QueryFindByMilliliters, map[string]interface{}{"milliliters": milliliters})
}

func (d *BloodDonationDao) FindByBloodGroup(ctx context.Context, group model.BloodGroup) ([]*model.BloodDonation, error) {
	return d.FindResults(ctx, QueryFindByBloodGroup, map[string]interface{}{"bloodGroup": string(group)})
}

func (d *BloodDonationDao) FindByRhesusFactor(ctx context.Context, factor model.RhesusFactor) ([]*model.BloodDonation, error) {
	return d.FindResults(ctx, QueryFindByRhesusFactor, map[string]interface{}{"rhesusFactor": string(factor)})
}

// FindByCreated 查询某一天的献血
func (d *BloodDonationDao) FindByCreated(ctx context.Context, created time.Time) ([]*model.BloodDonation, error) {
	from, to := mvc.DayRange(created)
	return d.FindResults(ctx, QueryFindByCreated, map[string]interface{}{"from": from, "to": to})
}
