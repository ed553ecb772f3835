package dao

import (
	"context"
	"time"

	errorc "bloodbank/pkg/core/err"
	"bloodbank/pkg/core/logger"
	"bloodbank/pkg/core/mvc"
	"bloodbank/system/donationrecord/internal/model"

	"gorm.io/gorm"
)

// 命名查询
const (
	QueryFindByPerson        = "DonationRecord.findByPerson"
	QueryFindByDonation      = "DonationRecord.findByDonation"
	QueryFindByTested        = "DonationRecord.findByTested"
	QueryFindByAdministrator = "DonationRecord.findByAdministrator"
	QueryFindByHospital      = "DonationRecord.findByHospital"
	QueryFindByCreated       = "DonationRecord.findByCreated"
)

var donationRecordQueries = []mvc.NamedQuery{
	{Name: QueryFindByPerson, Where: "person_id = @personId"},
	{Name: QueryFindByDonation, Where: "donation_id = @donationId"},
	{Name: QueryFindByTested, Where: "tested = @tested"},
	{Name: QueryFindByAdministrator, Where: "administrator = @administrator"},
	{Name: QueryFindByHospital, Where: "hospital = @hospital"},
	{Name: QueryFindByCreated, Where: "created >= @from AND created < @to", Order: "created, id"},
}

// DonationRecordDao 献血登记数据访问层
type DonationRecordDao struct {
	mvc.IBaseDao[model.DonationRecord]
	log *logger.Log
	err *errorc.ErrorBuilder
}

// NewDonationRecordDao 创建献血登记 DAO 实例
func NewDonationRecordDao(db *gorm.DB, log *logger.Log) *DonationRecordDao {
	return &DonationRecordDao{
		IBaseDao: mvc.NewGormDao[model.DonationRecord](db, donationRecordQueries...),
		log:      log.WithEntryName("DonationRecordDao"),
		err:      errorc.NewErrorBuilder("DonationRecordDao"),
	}
}

func (d *DonationRecordDao) FindByPerson(ctx context.Context, personId int64) ([]*model.DonationRecord, error) {
	return d.FindResults(ctx, QueryFindByPerson, map[string]interface{}{"personId": personId})
}

// FindByDonation 一次献血最多对应一条登记
func (d *DonationRecordDao) FindByDonation(ctx context.Context, donationId int64) (*model.DonationRecord, error) {
	return d.FindResult(ctx, QueryFindByDonation, map[string]interface{}{"donationId": donationId})
}

func (d *DonationRecordDao) FindByTested(ctx context.Context, tested bool) ([]*model.DonationRecord, error) {
	return d.FindResults(ctx, QueryFindByTested, map[string]interface{}{"tested": tested})
}

func (d *DonationRecordDao) FindByAdministrator(ctx context.Context, administrator string) ([]*model.DonationRecord, error) {
	return d.FindResults(ctx, QueryFindByAdministrator, map[string]interface{}{"administrator": administrator})
}

func (d *DonationRecordDao) FindByHospital(ctx context.Context, hospital string) ([]*model.DonationRecord, error) {
	return d.FindResults(ctx, QueryFindByHospital, map[string]interface{}{"hospital": hospital})
}

// FindByCreated 查询某一天的登记
func (d *DonationRecordDao) FindByCreated(ctx context.Context, created time.Time) ([]*model.DonationRecord, error) {
	from, to := mvc.DayRange(created)
	return d.FindResults(ctx, QueryFindByCreated, map[string]interface{}{"from": from, "to": to})
}
