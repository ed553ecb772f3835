package service

import (
	"context"
	"time"

	errorc "bloodbank/pkg/core/err"
	"bloodbank/pkg/core/logger"
	"bloodbank/pkg/core/mvc"
	"bloodbank/system/person/api/dto"
	"bloodbank/system/person/internal/dao"
	"bloodbank/system/person/internal/model"
)

// PersonService 人员业务逻辑层
type PersonService struct {
	*mvc.BaseService[model.Person]
	Dao *dao.PersonDao
	log *logger.Log
	err *errorc.ErrorBuilder
}

var _ mvc.IEntityService[model.Person] = (*PersonService)(nil)

// NewPersonService 创建人员服务实例
func NewPersonService(daoInstance *dao.PersonDao, log *logger.Log) *PersonService {
	return &PersonService{
		BaseService: mvc.NewBaseService[model.Person](daoInstance, "PersonService"),
		Dao:         daoInstance,
		log:         log.WithEntryName("PersonService"),
		err:         errorc.NewErrorBuilder("PersonService"),
	}
}

func (s *PersonService) GetPersonsWithFirstName(ctx context.Context, firstName string) ([]*model.Person, error) {
	return mvc.Get(s.err, func() ([]*model.Person, error) { return s.Dao.FindByFirstName(ctx, firstName) })
}

func (s *PersonService) GetPersonsWithLastName(ctx context.Context, lastName string) ([]*model.Person, error) {
	return mvc.Get(s.err, func() ([]*model.Person, error) { return s.Dao.FindByLastName(ctx, lastName) })
}

func (s *PersonService) GetPersonsWithPhone(ctx context.Context, phone string) ([]*model.Person, error) {
	return mvc.Get(s.err, func() ([]*model.Person, error) { return s.Dao.FindByPhone(ctx, phone) })
}

func (s *PersonService) GetPersonsWithBirth(ctx context.Context, birth time.Time) ([]*model.Person, error) {
	return mvc.Get(s.err, func() ([]*model.Person, error) { return s.Dao.FindByBirth(ctx, birth) })
}

func (s *PersonService) Search(ctx context.Context, keyword string) ([]*model.Person, error) {
	return mvc.Get(s.err, func() ([]*model.Person, error) { return s.Dao.FindContaining(ctx, keyword) })
}

// CreateEntity 从请求参数构建人员，出生日期为空或无法解析时取当前时间
func (s *PersonService) CreateEntity(params mvc.Params) (*model.Person, error) {
	if params == nil {
		return nil, s.err.New("参数不能为空", nil).Valid()
	}

	id, err := mvc.ParseID(s.err, params, dto.ID)
	if err != nil {
		return nil, err
	}

	var form dto.PersonForm
	if err := params.Decode(&form); err != nil {
		return nil, s.err.New("解析请求参数失败", err).Valid()
	}
	if err := mvc.ValidateForm(s.err, &form); err != nil {
		return nil, err
	}

	person := &model.Person{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Phone:     form.Phone,
		Address:   form.Address,
		Birth:     mvc.ParseDate(form.Birth),
	}
	person.ID = id
	return person, nil
}

func (s *PersonService) GetColumnNames() []string {
	return []string{"ID", "FirstName", "LastName", "Phone", "Address", "Birth"}
}

func (s *PersonService) GetColumnCodes() []string {
	return []string{dto.ID, dto.FirstName, dto.LastName, dto.Phone, dto.Address, dto.Birth}
}

func (s *PersonService) ExtractDataAsList(e *model.Person) []interface{} {
	return []interface{}{e.ID, e.FirstName, e.LastName, e.Phone, e.Address, e.Birth}
}
