package client

import (
	"context"
	"fmt"

	errorc "bloodbank/pkg/core/err"
	"bloodbank/system/person/api/dto"
	"bloodbank/system/person/internal/app"
)

// PersonClient 人员组件对外客户端（供其他组件调用）
type PersonClient struct {
	app *app.App
	err *errorc.ErrorBuilder
}

// NewPersonClient 创建人员客户端实例
func NewPersonClient(app *app.App) *PersonClient {
	return &PersonClient{
		app: app,
		err: errorc.NewErrorBuilder("PersonClient"),
	}
}

// GetPersonByID 根据 ID 查询人员，不存在时返回 nil
func (c *PersonClient) GetPersonByID(ctx context.Context, id int64) (*dto.PersonDTO, error) {
	person, err := c.app.PersonService.GetWithId(ctx, id)
	if err != nil {
		return nil, err
	}
	return app.ToDTO(person), nil
}

// RequirePerson 关联的人员必须存在，否则返回校验错误
func (c *PersonClient) RequirePerson(ctx context.Context, field string, id int64) (*dto.PersonDTO, error) {
	person, err := c.GetPersonByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, c.err.New(fmt.Sprintf("%s=%d 对应的人员不存在", field, id), nil).Valid()
	}
	return person, nil
}
