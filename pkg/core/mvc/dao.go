package mvc

import (
	"context"
)

// NamedQuery 预先声明的命名查询，Where 中用 @key 引用参数映射里的值
type NamedQuery struct {
	Name  string
	Where string
	Order string
}

// IBaseDao 定义通用的数据访问接口
type IBaseDao[T any] interface {
	// Create 创建记录
	Create(ctx context.Context, entity *T) error
	// Save 主键为空时创建，否则按主键更新全部字段
	Save(ctx context.Context, entity *T) error
	// DeleteById 根据ID删除记录
	DeleteById(ctx context.Context, id interface{}) error
	// FindAll 查询全部记录，按主键排序
	FindAll(ctx context.Context) ([]*T, error)
	// FindById 根据ID查询记录，不存在时返回 nil
	FindById(ctx context.Context, id interface{}) (*T, error)
	// FindResult 执行命名查询返回单条记录，不存在时返回 nil
	FindResult(ctx context.Context, name string, params map[string]interface{}) (*T, error)
	// FindResults 执行命名查询返回有序列表
	FindResults(ctx context.Context, name string, params map[string]interface{}) ([]*T, error)
}
