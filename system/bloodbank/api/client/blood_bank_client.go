package client

import (
	"context"
	"fmt"

	errorc "bloodbank/pkg/core/err"
	"bloodbank/system/bloodbank/api/dto"
	"bloodbank/system/bloodbank/internal/app"
)

// BloodBankClient 血库组件对外客户端（供其他组件调用）
type BloodBankClient struct {
	app *app.App
	err *errorc.ErrorBuilder
}

// NewBloodBankClient 创建血库客户端实例
func NewBloodBankClient(app *app.App) *BloodBankClient {
	return &BloodBankClient{
		app: app,
		err: errorc.NewErrorBuilder("BloodBankClient"),
	}
}

// GetBloodBankByID 根据 ID 查询血库，不存在时返回 nil
func (c *BloodBankClient) GetBloodBankByID(ctx context.Context, id int64) (*dto.BloodBankDTO, error) {
	bank, err := c.app.BloodBankService.GetWithId(ctx, id)
	if err != nil {
		return nil, err
	}
	return app.ToDTO(bank), nil
}

// RequireBloodBank 关联的血库必须存在，否则返回校验错误
func (c *BloodBankClient) RequireBloodBank(ctx context.Context, field string, id int64) (*dto.BloodBankDTO, error) {
	bank, err := c.GetBloodBankByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bank == nil {
		return nil, c.err.New(fmt.Sprintf("%s=%d 对应的血库不存在", field, id), nil).Valid()
	}
	return bank, nil
}
