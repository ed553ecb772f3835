package app

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	errorc "bloodbank/pkg/core/err"
	"bloodbank/pkg/core/logger"
	"bloodbank/pkg/core/model/common"
	"bloodbank/pkg/core/mvc"
	donationclient "bloodbank/system/blooddonation/api/client"
	"bloodbank/system/donationrecord/api/dto"
	"bloodbank/system/donationrecord/internal/dao"
	"bloodbank/system/donationrecord/internal/model"
	"bloodbank/system/donationrecord/internal/service"
	personclient "bloodbank/system/person/api/client"

	"gorm.io/gorm"
)

// App 献血登记组件应用层
type App struct {
	DonationRecordService *service.DonationRecordService
	persons               *personclient.PersonClient
	donations             *donationclient.BloodDonationClient
	log                   *logger.Log
	err                   *errorc.ErrorBuilder

	// submitMu 串行化献血查重与写入
	submitMu sync.Mutex
}

// NewApp 创建献血登记组件应用层实例
func NewApp(db *gorm.DB, persons *personclient.PersonClient, donations *donationclient.BloodDonationClient) *App {
	log := logger.GetLogger().WithEntryName("DonationRecordApp")

	recordDao := dao.NewDonationRecordDao(db, log)
	recordSvc := service.NewDonationRecordService(recordDao, log)

	return &App{
		DonationRecordService: recordSvc,
		persons:               persons,
		donations:             donations,
		log:                   log,
		err:                   errorc.NewErrorBuilder("DonationRecordApp"),
	}
}

// Submit 校验参数、关联献血人和献血后保存登记，参数带 id 时更新已有记录
func (a *App) Submit(ctx context.Context, params mvc.Params) (*model.DonationRecord, error) {
	record, err := a.DonationRecordService.CreateEntity(params)
	if err != nil {
		return nil, err
	}

	personID, err := mvc.ParseOptionalID(a.err, dto.PersonID, params.Get(dto.PersonID))
	if err != nil {
		return nil, err
	}
	if personID != nil {
		if _, err := a.persons.RequirePerson(ctx, dto.PersonID, *personID); err != nil {
			return nil, err
		}
		record.PersonID = personID
	}

	donationID, err := mvc.ParseOptionalID(a.err, dto.DonationID, params.Get(dto.DonationID))
	if err != nil {
		return nil, err
	}

	a.submitMu.Lock()
	defer a.submitMu.Unlock()

	if donationID != nil {
		if _, err := a.donations.RequireBloodDonation(ctx, dto.DonationID, *donationID); err != nil {
			return nil, err
		}
		// 一次献血只能登记一次
		existing, err := a.DonationRecordService.GetDonationRecordWithDonation(ctx, *donationID)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != record.ID {
			return nil, a.err.New(fmt.Sprintf("%s=%d 已有登记记录", dto.DonationID, *donationID), nil).Valid()
		}
		record.DonationID = donationID
	}

	if err := a.DonationRecordService.Update(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// Query 按第一个出现的过滤条件查询，没有条件时返回全部
func (a *App) Query(ctx context.Context, params mvc.Params) ([]*model.DonationRecord, error) {
	svc := a.DonationRecordService
	switch {
	case params.Get("personId") != "":
		personID, err := strconv.ParseInt(params.Get("personId"), 10, 64)
		if err != nil {
			return nil, a.err.New("personId必须是整数", err).Valid()
		}
		return svc.GetDonationRecordsWithPerson(ctx, personID)
	case params.Get("donationId") != "":
		donationID, err := strconv.ParseInt(params.Get("donationId"), 10, 64)
		if err != nil {
			return nil, a.err.New("donationId必须是整数", err).Valid()
		}
		record, err := svc.GetDonationRecordWithDonation(ctx, donationID)
		if err != nil {
			return nil, err
		}
		if record == nil {
			return []*model.DonationRecord{}, nil
		}
		return []*model.DonationRecord{record}, nil
	case params.Get("tested") != "":
		return svc.GetDonationRecordsWithTested(ctx, mvc.ParseBool(params.Get("tested")))
	case params.Get("administrator") != "":
		return svc.GetDonationRecordsWithAdministrator(ctx, params.Get("administrator"))
	case params.Get("hospital") != "":
		return svc.GetDonationRecordsWithHospital(ctx, params.Get("hospital"))
	case params.Get("created") != "":
		created, err := common.ParseTime(params.Get("created"))
		if err != nil {
			return nil, a.err.New("created 日期格式不正确", err).Valid()
		}
		return svc.GetDonationRecordsWithCreated(ctx, created)
	default:
		return svc.GetAll(ctx)
	}
}

// Rows 表格数据
func (a *App) Rows(records []*model.DonationRecord) [][]interface{} {
	rows := make([][]interface{}, 0, len(records))
	for _, r := range records {
		rows = append(rows, a.DonationRecordService.ExtractDataAsList(r))
	}
	return rows
}

// ToDTO 转换为对外 DTO
func ToDTO(r *model.DonationRecord) *dto.DonationRecordDTO {
	if r == nil {
		return nil
	}
	return &dto.DonationRecordDTO{
		ID:            r.ID,
		PersonID:      r.PersonID,
		DonationID:    r.DonationID,
		Administrator: r.Administrator,
		Hospital:      r.Hospital,
		Tested:        r.Tested,
		Created:       r.Created,
	}
}
