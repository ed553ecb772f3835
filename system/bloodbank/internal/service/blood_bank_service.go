package service

import (
	"context"
	"time"

	errorc "bloodbank/pkg/core/err"
	"bloodbank/pkg/core/logger"
	"bloodbank/pkg/core/mvc"
	"bloodbank/system/bloodbank/api/dto"
	"bloodbank/system/bloodbank/internal/dao"
	"bloodbank/system/bloodbank/internal/model"
)

// BloodBankService 血库业务逻辑层
type BloodBankService struct {
	*mvc.BaseService[model.BloodBank]
	Dao *dao.BloodBankDao
	log *logger.Log
	err *errorc.ErrorBuilder
}

var _ mvc.IEntityService[model.BloodBank] = (*BloodBankService)(nil)

// NewBloodBankService 创建血库服务实例
func NewBloodBankService(daoInstance *dao.BloodBankDao, log *logger.Log) *BloodBankService {
	return &BloodBankService{
		BaseService: mvc.NewBaseService[model.BloodBank](daoInstance, "BloodBankService"),
		Dao:         daoInstance,
		log:         log.WithEntryName("BloodBankService"),
		err:         errorc.NewErrorBuilder("BloodBankService"),
	}
}

func (s *BloodBankService) GetBloodBankWithName(ctx context.Context, name string) (*model.BloodBank, error) {
	return mvc.Get(s.err, func() (*model.BloodBank, error) { return s.Dao.FindByName(ctx, name) })
}

func (s *BloodBankService) GetBloodBankWithPrivatelyOwned(ctx context.Context, privatelyOwned bool) ([]*model.BloodBank, error) {
	return mvc.Get(s.err, func() ([]*model.BloodBank, error) { return s.Dao.FindByPrivatelyOwned(ctx, privatelyOwned) })
}

func (s *BloodBankService) GetBloodBankWithEstablished(ctx context.Context, established time.Time) ([]*model.BloodBank, error) {
	return mvc.Get(s.err, func() ([]*model.BloodBank, error) { return s.Dao.FindByEstablished(ctx, established) })
}

func (s *BloodBankService) GetBloodBankWithOwner(ctx context.Context, ownerId int64) (*model.BloodBank, error) {
	return mvc.Get(s.err, func() (*model.BloodBank, error) { return s.Dao.FindByOwner(ctx, ownerId) })
}

func (s *BloodBankService) GetBloodBanksWithEmployeeCount(ctx context.Context, count int) ([]*model.BloodBank, error) {
	return mvc.Get(s.err, func() ([]*model.BloodBank, error) { return s.Dao.FindByEmployeeCount(ctx, count) })
}

func (s *BloodBankService) GetBloodBanksWithEmployeeCountAtLeast(ctx context.Context, count int) ([]*model.BloodBank, error) {
	return mvc.Get(s.err, func() ([]*model.BloodBank, error) { return s.Dao.FindByEmployeeCountAtLeast(ctx, count) })
}

func (s *BloodBankService) Search(ctx context.Context, search string) ([]*model.BloodBank, error) {
	return mvc.Get(s.err, func() ([]*model.BloodBank, error) { return s.Dao.FindContaining(ctx, search) })
}

// CreateEntity 从请求参数构建血库，所有人由调用方关联
//
// 员工数必须是整数；是否私营只有 "true"（忽略大小写）为真；
// 成立日期为空或无法解析时取当前时间。
func (s *BloodBankService) CreateEntity(params mvc.Params) (*model.BloodBank, error) {
	if params == nil {
		return nil, s.err.New("参数不能为空", nil).Valid()
	}

	id, err := mvc.ParseID(s.err, params, dto.ID)
	if err != nil {
		return nil, err
	}

	var form dto.BloodBankForm
	if err := params.Decode(&form); err != nil {
		return nil, s.err.New("解析请求参数失败", err).Valid()
	}
	if err := mvc.ValidateForm(s.err, &form); err != nil {
		return nil, err
	}

	employeeCount, err := mvc.ParseInt(s.err, dto.EmployeeCount, form.EmployeeCount)
	if err != nil {
		return nil, err
	}

	bank := &model.BloodBank{
		Name:           form.Name,
		EmployeeCount:  employeeCount,
		Established:    mvc.ParseDate(form.Established),
		PrivatelyOwned: mvc.ParseBool(form.PrivatelyOwned),
	}
	bank.ID = id
	return bank, nil
}

func (s *BloodBankService) GetColumnNames() []string {
	return []string{"ID", "EmployeeCount", "Name", "Established", "PrivatelyOwned", "OwnerID"}
}

func (s *BloodBankService) GetColumnCodes() []string {
	return []string{dto.ID, dto.EmployeeCount, dto.Name, dto.Established, dto.PrivatelyOwned, dto.OwnerID}
}

// ExtractDataAsList 没有所有人时 owner_id 列为 0
func (s *BloodBankService) ExtractDataAsList(e *model.BloodBank) []interface{} {
	var ownerID int64
	if e.OwnerID != nil {
		ownerID = *e.OwnerID
	}
	return []interface{}{e.ID, e.EmployeeCount, e.Name, e.Established, e.PrivatelyOwned, ownerID}
}
