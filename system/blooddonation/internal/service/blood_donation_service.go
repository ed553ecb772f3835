package service

import (
	"context"
	"time"

	errorc "bloodbank/pkg/core/err"
	"bloodbank/pkg/core/logger"
	"bloodbank/pkg/core/mvc"
	"bloodbank/system/blooddonation/api/dto"
	"bloodbank/system/blooddonation/internal/dao"
	"bloodbank/system/blooddonation/internal/model"
)

// BloodDonationService 献血业务逻辑层
type BloodDonationService struct {
	*mvc.BaseService[model.BloodDonation]
	Dao *dao.BloodDonationDao
	log *logger.Log
	err *errorc.ErrorBuilder
}

var _ mvc.IEntityService[model.BloodDonation] = (*BloodDonationService)(nil)

// NewBloodDonationService 创建献血服务实例
func NewBloodDonationService(daoInstance *dao.BloodDonationDao, log *logger.Log) *BloodDonationService {
	return &BloodDonationService{
		BaseService: mvc.NewBaseService[model.BloodDonation](daoInstance, "BloodDonationService"),
		Dao:         daoInstance,
		log:         log.WithEntryName("BloodDonationService"),
		err:         errorc.NewErrorBuilder("BloodDonationService"),
	}
}

func (s *BloodDonationService) GetBloodDonationsWithBank(ctx context.Context, bankId int64) ([]*model.BloodDonation, error) {
	return mvc.Get(s.err, func() ([]*model.BloodDonation, error) { return s.Dao.FindByBank(ctx, bankId) })
}

func (s *BloodDonationService) GetBloodDonationsWithMilliliters(ctx context.Context, milliliters int) ([]*model.BloodDonation, error) {
	return mvc.Get(s.err, func() ([]*model.BloodDonation, error) { return s.Dao.FindByMilliliters(ctx, milliliters) })
}

func (s *BloodDonationService) GetBloodDonationsWithBloodGroup(ctx context.Context, group model.BloodGroup) ([]*model.BloodDonation, error) {
	return mvc.Get(s.err, func() ([]*model.BloodDonation, error) { return s.Dao.FindByBloodGroup(ctx, group) })
}

func (s *BloodDonationService) GetBloodDonationsWithRhd(ctx context.Context, factor model.RhesusFactor) ([]*model.BloodDonation, error) {
	return mvc.Get(s.err, func() ([]*model.BloodDonation, error) { return s.Dao.FindByRhesusFactor(ctx, factor) })
}

func (s *BloodDonationService) GetBloodDonationsWithCreated(ctx context.Context, created time.Time) ([]*model.BloodDonation, error) {
	return mvc.Get(s.err, func() ([]*model.BloodDonation, error) { return s.Dao.FindByCreated(ctx, created) })
}

// CreateEntity 从请求参数构建献血记录，血库由调用方关联
func (s *BloodDonationService) CreateEntity(params mvc.Params) (*model.BloodDonation, error) {
	if params == nil {
		return nil, s.err.New("参数不能为空", nil).Valid()
	}

	id, err := mvc.ParseID(s.err, params, dto.ID)
	if err != nil {
		return nil, err
	}

	var form dto.BloodDonationForm
	if err := params.Decode(&form); err != nil {
		return nil, s.err.New("解析请求参数失败", err).Valid()
	}
	if err := mvc.ValidateForm(s.err, &form); err != nil {
		return nil, err
	}

	milliliters, err := mvc.ParseInt(s.err, dto.Milliliters, form.Milliliters)
	if err != nil {
		return nil, err
	}

	donation := &model.BloodDonation{
		Milliliters:  milliliters,
		BloodGroup:   model.BloodGroup(form.BloodGroup),
		RhesusFactor: model.RhesusFactor(form.RhesusFactor),
		Created:      mvc.ParseDate(form.Created),
	}
	donation.ID = id
	return donation, nil
}

func (s *BloodDonationService) GetColumnNames() []string {
	return []string{"ID", "BankID", "Milliliters", "BloodGroup", "RhesusFactor", "Created"}
}

func (s *BloodDonationService) GetColumnCodes() []string {
	return []string{dto.ID, dto.BankID, dto.Milliliters, dto.BloodGroup, dto.RhesusFactor, dto.Created}
}

func (s *BloodDonationService) ExtractDataAsList(e *model.BloodDonation) []interface{} {
	var bankID int64
	if e.BankID != nil {
		bankID = *e.BankID
	}
	return []interface{}{e.ID, bankID, e.Milliliters, string(e.BloodGroup), string(e.RhesusFactor), e.Created}
}
