package mvc

import (
	"context"
	"fmt"

	errorc "bloodbank/pkg/core/err"

	"gorm.io/gorm"
)

type identifiable interface {
	GetID() int64
}

// GormDaoImpl GORM数据访问实现
type GormDaoImpl[T any] struct {
	db      *gorm.DB
	queries map[string]NamedQuery
}

// NewGormDao 创建GORM数据访问实例，并登记该实体的命名查询
func NewGormDao[T any](db *gorm.DB, queries ...NamedQuery) IBaseDao[T] {
	registry := make(map[string]NamedQuery, len(queries))
	for _, q := range queries {
		registry[q.Name] = q
	}
	return &GormDaoImpl[T]{
		db:      db,
		queries: registry,
	}
}

func (d *GormDaoImpl[T]) Create(ctx context.Context, entity *T) error {
	err := d.db.WithContext(ctx).Create(entity).Error
	if err != nil {
		return errorc.New("数据库操作失败", err).DB()
	}
	return nil
}

func (d *GormDaoImpl[T]) Save(ctx context.Context, entity *T) error {
	if e, ok := any(entity).(identifiable); ok && e.GetID() == 0 {
		return d.Create(ctx, entity)
	}

	// created_at 只在创建时写入
	result := d.db.WithContext(ctx).Model(entity).Select("*").Omit("created_at").Updates(entity)
	if result.Error != nil {
		return errorc.New("更新记录失败", result.Error).DB()
	}
	if result.RowsAffected == 0 {
		return errorc.New("要更新的记录不存在", nil).WithCode(errorc.ErrorCodeNotFound)
	}
	return nil
}

func (d *GormDaoImpl[T]) DeleteById(ctx context.Context, id interface{}) error {
	result := d.db.WithContext(ctx).Delete(new(T), id)
	if result.Error != nil {
		return errorc.New("删除记录失败", result.Error).DB()
	}
	if result.RowsAffected == 0 {
		return errorc.New("要删除的记录不存在", nil).WithCode(errorc.ErrorCodeNotFound)
	}
	return nil
}

func (d *GormDaoImpl[T]) FindAll(ctx context.Context) ([]*T, error) {
	var entities []*T
	err := d.db.WithContext(ctx).Order("id").Find(&entities).Error
	if err != nil {
		return nil, errorc.New("查询记录失败", err).DB()
	}
	return entities, nil
}

func (d *GormDaoImpl[T]) FindById(ctx context.Context, id interface{}) (*T, error) {
	var entities []*T
	err := d.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&entities).Error
	if err != nil {
		return nil, errorc.New("查询记录失败", err).DB()
	}
	if len(entities) == 0 {
		return nil, nil
	}
	return entities[0], nil
}

func (d *GormDaoImpl[T]) FindResult(ctx context.Context, name string, params map[string]interface{}) (*T, error) {
	db, err := d.namedQuery(ctx, name, params)
	if err != nil {
		return nil, err
	}

	var entities []*T
	if err := db.Limit(1).Find(&entities).Error; err != nil {
		return nil, errorc.New(fmt.Sprintf("执行命名查询 %s 失败", name), err).DB()
	}
	if len(entities) == 0 {
		return nil, nil
	}
	return entities[0], nil
}

func (d *GormDaoImpl[T]) FindResults(ctx context.Context, name string, params map[string]interface{}) ([]*T, error) {
	db, err := d.namedQuery(ctx, name, params)
	if err != nil {
		return nil, err
	}

	entities := make([]*T, 0)
	if err := db.Find(&entities).Error; err != nil {
		return nil, errorc.New(fmt.Sprintf("执行命名查询 %s 失败", name), err).DB()
	}
	return entities, nil
}

// namedQuery 按名称取出预定义查询并绑定参数
func (d *GormDaoImpl[T]) namedQuery(ctx context.Context, name string, params map[string]interface{}) (*gorm.DB, error) {
	q, ok := d.queries[name]
	if !ok {
		return nil, errorc.New(fmt.Sprintf("未定义的命名查询: %s", name), nil).DB()
	}

	db := d.db.WithContext(ctx).Model(new(T))
	if q.Where != "" {
		if params == nil {
			params = map[string]interface{}{}
		}
		db = db.Where(q.Where, params)
	}
	order := q.Order
	if order == "" {
		order = "id"
	}
	return db.Order(order), nil
}
