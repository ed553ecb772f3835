package app

import (
	"context"
	"strconv"
	"sync"

	errorc "bloodbank/pkg/core/err"
	"bloodbank/pkg/core/logger"
	"bloodbank/pkg/core/model/common"
	"bloodbank/pkg/core/mvc"
	"bloodbank/system/bloodbank/api/dto"
	"bloodbank/system/bloodbank/internal/dao"
	"bloodbank/system/bloodbank/internal/model"
	"bloodbank/system/bloodbank/internal/service"
	personclient "bloodbank/system/person/api/client"

	"gorm.io/gorm"
)

// App 血库组件应用层
type App struct {
	BloodBankService *service.BloodBankService
	persons          *personclient.PersonClient
	log              *logger.Log
	err              *errorc.ErrorBuilder

	// submitMu 串行化名称查重与写入
	submitMu sync.Mutex
}

// NewApp 创建血库组件应用层实例
func NewApp(db *gorm.DB, persons *personclient.PersonClient) *App {
	log := logger.GetLogger().WithEntryName("BloodBankApp")

	bankDao := dao.NewBloodBankDao(db, log)
	bankSvc := service.NewBloodBankService(bankDao, log)

	return &App{
		BloodBankService: bankSvc,
		persons:          persons,
		log:              log,
		err:              errorc.NewErrorBuilder("BloodBankApp"),
	}
}

// Submit 校验参数、关联所有人后保存血库，参数带 id 时更新已有记录
func (a *App) Submit(ctx context.Context, params mvc.Params) (*model.BloodBank, error) {
	bank, err := a.BloodBankService.CreateEntity(params)
	if err != nil {
		return nil, err
	}

	ownerID, err := mvc.ParseOptionalID(a.err, dto.OwnerID, params.Get(dto.OwnerID))
	if err != nil {
		return nil, err
	}
	if ownerID != nil {
		if _, err := a.persons.RequirePerson(ctx, dto.OwnerID, *ownerID); err != nil {
			return nil, err
		}
		bank.OwnerID = ownerID
	}

	a.submitMu.Lock()
	defer a.submitMu.Unlock()

	existing, err := a.BloodBankService.GetBloodBankWithName(ctx, bank.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != bank.ID {
		return nil, a.err.New("血库名称已存在: "+bank.Name, nil).Valid()
	}

	if err := a.BloodBankService.Update(ctx, bank); err != nil {
		return nil, err
	}
	return bank, nil
}

// Query 按第一个出现的过滤条件查询，没有条件时返回全部
func (a *App) Query(ctx context.Context, params mvc.Params) ([]*model.BloodBank, error) {
	svc := a.BloodBankService
	switch {
	case params.Get("search") != "":
		return svc.Search(ctx, params.Get("search"))
	case params.Get("name") != "":
		bank, err := svc.GetBloodBankWithName(ctx, params.Get("name"))
		return single(bank, err)
	case params.Get("privatelyOwned") != "":
		return svc.GetBloodBankWithPrivatelyOwned(ctx, mvc.ParseBool(params.Get("privatelyOwned")))
	case params.Get("established") != "":
		established, err := common.ParseTime(params.Get("established"))
		if err != nil {
			return nil, a.err.New("established 日期格式不正确", err).Valid()
		}
		return svc.GetBloodBankWithEstablished(ctx, established)
	case params.Get("employeeCount") != "":
		count, err := mvc.ParseInt(a.err, "employeeCount", params.Get("employeeCount"))
		if err != nil {
			return nil, err
		}
		return svc.GetBloodBanksWithEmployeeCount(ctx, count)
	case params.Get("minEmployeeCount") != "":
		count, err := mvc.ParseInt(a.err, "minEmployeeCount", params.Get("minEmployeeCount"))
		if err != nil {
			return nil, err
		}
		return svc.GetBloodBanksWithEmployeeCountAtLeast(ctx, count)
	case params.Get("ownerId") != "":
		ownerID, err := strconv.ParseInt(params.Get("ownerId"), 10, 64)
		if err != nil {
			return nil, a.err.New("ownerId必须是整数", err).Valid()
		}
		bank, err := svc.GetBloodBankWithOwner(ctx, ownerID)
		return single(bank, err)
	default:
		return svc.GetAll(ctx)
	}
}

func single(bank *model.BloodBank, err error) ([]*model.BloodBank, error) {
	if err != nil {
		return nil, err
	}
	if bank == nil {
		return []*model.BloodBank{}, nil
	}
	return []*model.BloodBank{bank}, nil
}

// Rows 表格数据
func (a *App) Rows(banks []*model.BloodBank) [][]interface{} {
	rows := make([][]interface{}, 0, len(banks))
	for _, b := range banks {
		rows = append(rows, a.BloodBankService.ExtractDataAsList(b))
	}
	return rows
}

// ToDTO 转换为对外 DTO
func ToDTO(b *model.BloodBank) *dto.BloodBankDTO {
	if b == nil {
		return nil
	}
	return &dto.BloodBankDTO{
		ID:             b.ID,
		Name:           b.Name,
		EmployeeCount:  b.EmployeeCount,
		Established:    b.Established,
		PrivatelyOwned: b.PrivatelyOwned,
		OwnerID:        b.OwnerID,
	}
}
