package mvc

import (
	"context"

	errorc "bloodbank/pkg/core/err"
)

// IBaseService 基础业务接口
type IBaseService[T any] interface {
	// GetAll 查询全部实体
	GetAll(ctx context.Context) ([]*T, error)
	// GetWithId 根据ID查询，不存在时返回 nil
	GetWithId(ctx context.Context, id int64) (*T, error)
	// Add 新增实体
	Add(ctx context.Context, entity *T) error
	// Update 主键为空时新增，否则更新
	Update(ctx context.Context, entity *T) error
	// Delete 根据ID删除
	Delete(ctx context.Context, id int64) error
}

// IEntityService 由具体业务实现：从请求参数构建实体，以及表格展示用的列信息
type IEntityService[T any] interface {
	IBaseService[T]
	// CreateEntity 校验参数并构建新的实体，关联实体由调用方填充
	CreateEntity(params Params) (*T, error)
	// GetColumnNames 表格列的展示名
	GetColumnNames() []string
	// GetColumnCodes 表格列对应的参数键，与 GetColumnNames 按位置一一对应
	GetColumnCodes() []string
	// ExtractDataAsList 把实体展开为一行表格数据
	ExtractDataAsList(entity *T) []interface{}
}

// BaseService 基础服务实现
type BaseService[T any] struct {
	Dao IBaseDao[T]
	err *errorc.ErrorBuilder
}

// NewBaseService 创建基础服务实例
func NewBaseService[T any](dao IBaseDao[T], entryName string) *BaseService[T] {
	return &BaseService[T]{
		Dao: dao,
		err: errorc.NewErrorBuilder(entryName),
	}
}

// Get 执行一次数据访问，把数据层错误包装为业务层错误
func Get[R any](b *errorc.ErrorBuilder, supplier func() (R, error)) (R, error) {
	r, err := supplier()
	if err != nil {
		var zero R
		return zero, b.New("数据访问失败", err)
	}
	return r, nil
}

// Run 与 Get 相同，用于没有返回值的数据访问
func Run(b *errorc.ErrorBuilder, action func() error) error {
	if err := action(); err != nil {
		return b.New("数据访问失败", err)
	}
	return nil
}

// Err 返回该服务的错误构造器，供具体服务复用 Get/Run
func (s *BaseService[T]) Err() *errorc.ErrorBuilder {
	return s.err
}

func (s *BaseService[T]) GetAll(ctx context.Context) ([]*T, error) {
	return Get(s.err, func() ([]*T, error) { return s.Dao.FindAll(ctx) })
}

func (s *BaseService[T]) GetWithId(ctx context.Context, id int64) (*T, error) {
	return Get(s.err, func() (*T, error) { return s.Dao.FindById(ctx, id) })
}

func (s *BaseService[T]) Add(ctx context.Context, entity *T) error {
	return Run(s.err, func() error { return s.Dao.Create(ctx, entity) })
}

func (s *BaseService[T]) Update(ctx context.Context, entity *T) error {
	return Run(s.err, func() error { return s.Dao.Save(ctx, entity) })
}

func (s *BaseService[T]) Delete(ctx context.Context, id int64) error {
	return Run(s.err, func() error { return s.Dao.DeleteById(ctx, id) })
}
