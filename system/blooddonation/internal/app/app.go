package app

import (
	"context"
	"strconv"

	errorc "bloodbank/pkg/core/err"
	"bloodbank/pkg/core/logger"
	"bloodbank/pkg/core/model/common"
	"bloodbank/pkg/core/mvc"
	bankclient "bloodbank/system/bloodbank/api/client"
	"bloodbank/system/blooddonation/api/dto"
	"bloodbank/system/blooddonation/internal/dao"
	"bloodbank/system/blooddonation/internal/model"
	"bloodbank/system/blooddonation/internal/service"

	"gorm.io/gorm"
)

// App 献血组件应用层
type App struct {
	BloodDonationService *service.BloodDonationService
	banks                *bankclient.BloodBankClient
	log                  *logger.Log
	err                  *errorc.ErrorBuilder
}

// NewApp 创建献血组件应用层实例
func NewApp(db *gorm.DB, banks *bankclient.BloodBankClient) *App {
	log := logger.GetLogger().WithEntryName("BloodDonationApp")

	donationDao := dao.NewBloodDonationDao(db, log)
	donationSvc := service.NewBloodDonationService(donationDao, log)

	return &App{
		BloodDonationService: donationSvc,
		banks:                banks,
		log:                  log,
		err:                  errorc.NewErrorBuilder("BloodDonationApp"),
	}
}

// Submit 校验参数、关联血库后保存献血，参数带 id 时更新已有记录
func (a *App) Submit(ctx context.Context, params mvc.Params) (*model.BloodDonation, error) {
	donation, err := a.BloodDonationService.CreateEntity(params)
	if err != nil {
		return nil, err
	}

	bankID, err := mvc.ParseOptionalID(a.err, dto.BankID, params.Get(dto.BankID))
	if err != nil {
		return nil, err
	}
	if bankID != nil {
		if _, err := a.banks.RequireBloodBank(ctx, dto.BankID, *bankID); err != nil {
			return nil, err
		}
		donation.BankID = bankID
	}

	if err := a.BloodDonationService.Update(ctx, donation); err != nil {
		return nil, err
	}
	return donation, nil
}

// Query 按第一个出现的过滤条件查询，没有条件时返回全部
func (a *App) Query(ctx context.Context, params mvc.Params) ([]*model.BloodDonation, error) {
	svc := a.BloodDonationService
	switch {
	case params.Get("bankId") != "":
		bankID, err := strconv.ParseInt(params.Get("bankId"), 10, 64)
		if err != nil {
			return nil, a.err.New("bankId必须是整数", err).Valid()
		}
		return svc.GetBloodDonationsWithBank(ctx, bankID)
	case params.Get("milliliters") != "":
		ml, err := mvc.ParseInt(a.err, "milliliters", params.Get("milliliters"))
		if err != nil {
			return nil, err
		}
		return svc.GetBloodDonationsWithMilliliters(ctx, ml)
	case params.Get("bloodGroup") != "":
		return svc.GetBloodDonationsWithBloodGroup(ctx, model.BloodGroup(params.Get("bloodGroup")))
	case params.Get("rhesusFactor") != "":
		return svc.GetBloodDonationsWithRhd(ctx, model.RhesusFactor(params.Get("rhesusFactor")))
	case params.Get("created") != "":
		created, err := common.ParseTime(params.Get("created"))
		if err != nil {
			return nil, a.err.New("created 日期格式不正确", err).Valid()
		}
		return svc.GetBloodDonationsWithCreated(ctx, created)
	default:
		return svc.GetAll(ctx)
	}
}

// Rows 表格数据
func (a *App) Rows(donations []*model.BloodDonation) [][]interface{} {
	rows := make([][]interface{}, 0, len(donations))
	for _, d := range donations {
		rows = append(rows, a.BloodDonationService.ExtractDataAsList(d))
	}
	return rows
}

// ToDTO 转换为对外 DTO
func ToDTO(d *model.BloodDonation) *dto.BloodDonationDTO {
	if d == nil {
		return nil
	}
	return &dto.BloodDonationDTO{
		ID:           d.ID,
		BankID:       d.BankID,
		Milliliters:  d.Milliliters,
		BloodGroup:   string(d.BloodGroup),
		RhesusFactor: string(d.RhesusFactor),
		Created:      d.Created,
	}
}
