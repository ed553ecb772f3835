package service

import (
	"context"
	"time"

	errorc "bloodbank/pkg/core/err"
	"bloodbank/pkg/core/logger"
	"bloodbank/pkg/core/mvc"
	"bloodbank/system/donationrecord/api/dto"
	"bloodbank/system/donationrecord/internal/dao"
	"bloodbank/system/donationrecord/internal/model"
)

// DonationRecordService 献血登记业务逻辑层
type DonationRecordService struct {
	*mvc.BaseService[model.DonationRecord]
	Dao *dao.DonationRecordDao
	log *logger.Log
	err *errorc.ErrorBuilder
}

var _ mvc.IEntityService[model.DonationRecord] = (*DonationRecordService)(nil)

// NewDonationRecordService 创建献血登记服务实例
func NewDonationRecordService(daoInstance *dao.DonationRecordDao, log *logger.Log) *DonationRecordService {
	return &DonationRecordService{
		BaseService: mvc.NewBaseService[model.DonationRecord](daoInstance, "DonationRecordService"),
		Dao:         daoInstance,
		log:         log.WithEntryName("DonationRecordService"),
		err:         errorc.NewErrorBuilder("DonationRecordService"),
	}
}

func (s *DonationRecordService) GetDonationRecordsWithPerson(ctx context.Context, personId int64) ([]*model.DonationRecord, error) {
	return mvc.Get(s.err, func() ([]*model.DonationRecord, error) { return s.Dao.FindByPerson(ctx, personId) })
}

func (s *DonationRecordService) GetDonationRecordWithDonation(ctx context.Context, donationId int64) (*model.DonationRecord, error) {
	return mvc.Get(s.err, func() (*model.DonationRecord, error) { return s.Dao.FindByDonation(ctx, donationId) })
}

func (s *DonationRecordService) GetDonationRecordsWithTested(ctx context.Context, tested bool) ([]*model.DonationRecord, error) {
	return mvc.Get(s.err, func() ([]*model.DonationRecord, error) { return s.Dao.FindByTested(ctx, tested) })
}

func (s *DonationRecordService) GetDonationRecordsWithAdministrator(ctx context.Context, administrator string) ([]*model.DonationRecord, error) {
	return mvc.Get(s.err, func() ([]*model.DonationRecord, error) { return s.Dao.FindByAdministrator(ctx, administrator) })
}

func (s *DonationRecordService) GetDonationRecordsWithHospital(ctx context.Context, hospital string) ([]*model.DonationRecord, error) {
	return mvc.Get(s.err, func() ([]*model.DonationRecord, error) { return s.Dao.FindByHospital(ctx, hospital) })
}

func (s *DonationRecordService) GetDonationRecordsWithCreated(ctx context.Context, created time.Time) ([]*model.DonationRecord, error) {
	return mvc.Get(s.err, func() ([]*model.DonationRecord, error) { return s.Dao.FindByCreated(ctx, created) })
}

// CreateEntity 从请求参数构建献血登记
//
// 返回的登记不带献血人和献血，调用方按 person_id/donation_id 查到后再关联。
func (s *DonationRecordService) CreateEntity(params mvc.Params) (*model.DonationRecord, error) {
	if params == nil {
		return nil, s.err.New("参数不能为空", nil).Valid()
	}

	id, err := mvc.ParseID(s.err, params, dto.ID)
	if err != nil {
		return nil, err
	}

	var form dto.DonationRecordForm
	if err := params.Decode(&form); err != nil {
		return nil, s.err.New("解析请求参数失败", err).Valid()
	}
	if err := mvc.ValidateForm(s.err, &form); err != nil {
		return nil, err
	}

	record := &model.DonationRecord{
		Administrator: form.Administrator,
		Hospital:      form.Hospital,
		Tested:        mvc.ParseBool(form.Tested),
		Created:       mvc.ParseDate(form.Created),
	}
	record.ID = id
	return record, nil
}

func (s *DonationRecordService) GetColumnNames() []string {
	return []string{"ID", "PersonID", "DonationID", "Administrator", "Hospital", "Tested", "Created"}
}

func (s *DonationRecordService) GetColumnCodes() []string {
	return []string{dto.ID, dto.PersonID, dto.DonationID, dto.Administrator, dto.Hospital, dto.Tested, dto.Created}
}

// ExtractDataAsList 未关联的献血人或献血显示为 0
func (s *DonationRecordService) ExtractDataAsList(e *model.DonationRecord) []interface{} {
	var personID, donationID int64
	if e.PersonID != nil {
		personID = *e.PersonID
	}
	if e.DonationID != nil {
		donationID = *e.DonationID
	}
	return []interface{}{e.ID, personID, donationID, e.Administrator, e.Hospital, e.Tested, e.Created}
}
