package client

import (
	"context"
	"fmt"

	errorc "bloodbank/pkg/core/err"
	"bloodbank/system/blooddonation/api/dto"
	"bloodbank/system/blooddonation/internal/app"
)

// BloodDonationClient 献血组件对外客户端（供其他组件调用）
type BloodDonationClient struct {
	app *app.App
	err *errorc.ErrorBuilder
}

// NewBloodDonationClient 创建献血客户端实例
func NewBloodDonationClient(app *app.App) *BloodDonationClient {
	return &BloodDonationClient{
		app: app,
		err: errorc.NewErrorBuilder("BloodDonationClient"),
	}
}

// GetBloodDonationByID 根据 ID 查询献血，不存在时返回 nil
func (c *BloodDonationClient) GetBloodDonationByID(ctx context.Context, id int64) (*dto.BloodDonationDTO, error) {
	donation, err := c.app.BloodDonationService.GetWithId(ctx, id)
	if err != nil {
		return nil, err
	}
	return app.ToDTO(donation), nil
}

// RequireBloodDonation 关联的献血必须存在，否则返回校验错误
func (c *BloodDonationClient) RequireBloodDonation(ctx context.Context, field string, id int64) (*dto.BloodDonationDTO, error) {
	donation, err := c.GetBloodDonationByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if donation == nil {
		return nil, c.err.New(fmt.Sprintf("%s=%d 对应的献血不存在", field, id), nil).Valid()
	}
	return donation, nil
}
