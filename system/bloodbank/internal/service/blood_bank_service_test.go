package service

import (
	"context"
	"strings"
	"testing"
	"time"

	errorc "bloodbank/pkg/core/err"
	"bloodbank/pkg/core/logger"
	"bloodbank/pkg/core/mvc"
	"bloodbank/pkg/db/dbtest"
	"bloodbank/system/bloodbank/internal/dao"
	"bloodbank/system/bloodbank/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *BloodBankService {
	db := dbtest.Open(t, &model.BloodBank{})
	log := logger.GetLogger()
	return NewBloodBankService(dao.NewBloodBankDao(db, log), log)
}

func validParams() mvc.Params {
	return mvc.Params{
		"name":            {"Central"},
		"employee_count":  {"12"},
		"established":     {"2001-06-15"},
		"privately_owned": {"True"},
	}
}

func TestCreateEntity(t *testing.T) {
	s := newTestService(t)

	bank, err := s.CreateEntity(validParams())
	require.NoError(t, err)
	assert.Equal(t, int64(0), bank.ID)
	assert.Equal(t, "Central", bank.Name)
	assert.Equal(t, 12, bank.EmployeeCount)
	assert.Equal(t, time.Date(2001, 6, 15, 0, 0, 0, 0, time.Local), bank.Established)
	assert.True(t, bank.PrivatelyOwned)
	assert.Nil(t, bank.OwnerID)
}

func TestCreateEntityWithID(t *testing.T) {
	s := newTestService(t)

	params := validParams()
	params.Set("id", "7")
	bank, err := s.CreateEntity(params)
	require.NoError(t, err)
	assert.Equal(t, int64(7), bank.ID)
}

func TestCreateEntityInvalid(t *testing.T) {
	s := newTestService(t)

	tests := []struct {
		name   string
		params mvc.Params
		modify func(p mvc.Params)
		msg    string
	}{
		{name: "参数为空", msg: "参数不能为空"},
		{name: "缺少名称", modify: func(p mvc.Params) { delete(p, "name") }, msg: "名称不能为空"},
		{name: "名称为空白", modify: func(p mvc.Params) { p.Set("name", "  ") }, msg: "名称不能为空"},
		{name: "名称超长", modify: func(p mvc.Params) { p.Set("name", strings.Repeat("a", 46)) }, msg: "名称长度不能超过45个字符"},
		{name: "员工数不是整数", modify: func(p mvc.Params) { p.Set("employee_count", "abc") }, msg: "employee_count必须是整数"},
		{name: "缺少员工数", modify: func(p mvc.Params) { delete(p, "employee_count") }, msg: "员工数不能为空"},
		{name: "ID不是整数", modify: func(p mvc.Params) { p.Set("id", "one") }, msg: "id必须是整数"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var params mvc.Params
			if tt.modify != nil {
				params = validParams()
				tt.modify(params)
			}
			_, err := s.CreateEntity(params)
			require.Error(t, err)
			assert.True(t, errorc.IsValidation(err))
			assert.Contains(t, errorc.ParseError(err).Message(), tt.msg)
		})
	}
}

func TestCreateEntityLenientConversions(t *testing.T) {
	s := newTestService(t)

	tests := []struct {
		name           string
		established    string
		privatelyOwned string
		wantNow        bool
		wantOwned      bool
	}{
		{name: "成立日期为空", established: "", privatelyOwned: "true", wantNow: true, wantOwned: true},
		{name: "成立日期无法解析", established: "yesterday", privatelyOwned: "TRUE", wantNow: true, wantOwned: true},
		{name: "是否私营无法解析", established: "2001-06-15", privatelyOwned: "notabool", wantOwned: false},
		{name: "是否私营为 False", established: "2001-06-15", privatelyOwned: "False", wantOwned: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := validParams()
			params.Set("established", tt.established)
			params.Set("privately_owned", tt.privatelyOwned)

			bank, err := s.CreateEntity(params)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOwned, bank.PrivatelyOwned)
			if tt.wantNow {
				assert.WithinDuration(t, time.Now(), bank.Established, 5*time.Second)
			}
		})
	}
}

func TestCreateEntityOptionalFieldsAbsent(t *testing.T) {
	s := newTestService(t)

	bank, err := s.CreateEntity(mvc.Params{"name": {"Minimal"}, "employee_count": {"0"}})
	require.NoError(t, err)
	assert.False(t, bank.PrivatelyOwned)
	assert.WithinDuration(t, time.Now(), bank.Established, 5*time.Second)
}

func TestCreateEntityRepeatedKeyUsesFirstValue(t *testing.T) {
	s := newTestService(t)

	params := validParams()
	params["name"] = []string{"First", "Second"}
	bank, err := s.CreateEntity(params)
	require.NoError(t, err)
	assert.Equal(t, "First", bank.Name)
}

func TestColumnsAndExtract(t *testing.T) {
	s := newTestService(t)

	names, codes := s.GetColumnNames(), s.GetColumnCodes()
	require.Equal(t, len(names), len(codes))
	assert.Equal(t, []string{"id", "employee_count", "name", "established", "privately_owned", "owner_id"}, codes)

	bank, err := s.CreateEntity(validParams())
	require.NoError(t, err)

	row := s.ExtractDataAsList(bank)
	require.Len(t, row, len(codes))
	assert.Equal(t, []interface{}{int64(0), 12, "Central", bank.Established, true, int64(0)}, row)

	owner := int64(3)
	bank.OwnerID = &owner
	assert.Equal(t, int64(3), s.ExtractDataAsList(bank)[5])
}

func TestQueries(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	owner := int64(5)
	fixtures := []struct {
		name           string
		employees      string
		established    string
		privatelyOwned string
		owner          *int64
	}{
		{"Central", "12", "2001-06-15", "true", &owner},
		{"North Clinic", "4", "2010-01-01", "false", nil},
		{"South Central", "30", "2001-06-15 13:45:00", "false", nil},
	}
	for _, f := range fixtures {
		bank, err := s.CreateEntity(mvc.Params{
			"name":            {f.name},
			"employee_count":  {f.employees},
			"established":     {f.established},
			"privately_owned": {f.privatelyOwned},
		})
		require.NoError(t, err)
		bank.OwnerID = f.owner
		require.NoError(t, s.Update(ctx, bank))
		require.NotZero(t, bank.ID)
	}

	all, err := s.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Central", all[0].Name)

	byID, err := s.GetWithId(ctx, all[1].ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "North Clinic", byID.Name)

	byName, err := s.GetBloodBankWithName(ctx, "South Central")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, 30, byName.EmployeeCount)

	noName, err := s.GetBloodBankWithName(ctx, "Nowhere")
	require.NoError(t, err)
	assert.Nil(t, noName)

	private, err := s.GetBloodBankWithPrivatelyOwned(ctx, true)
	require.NoError(t, err)
	require.Len(t, private, 1)
	assert.Equal(t, "Central", private[0].Name)

	established, err := s.GetBloodBankWithEstablished(ctx, time.Date(2001, 6, 15, 0, 0, 0, 0, time.Local))
	require.NoError(t, err)
	assert.Len(t, established, 2)

	exact, err := s.GetBloodBanksWithEmployeeCount(ctx, 4)
	require.NoError(t, err)
	require.Len(t, exact, 1)
	assert.Equal(t, "North Clinic", exact[0].Name)

	atLeast, err := s.GetBloodBanksWithEmployeeCountAtLeast(ctx, 10)
	require.NoError(t, err)
	require.Len(t, atLeast, 2)
	assert.Equal(t, 12, atLeast[0].EmployeeCount)
	assert.Equal(t, 30, atLeast[1].EmployeeCount)

	byOwner, err := s.GetBloodBankWithOwner(ctx, owner)
	require.NoError(t, err)
	require.NotNil(t, byOwner)
	assert.Equal(t, "Central", byOwner.Name)

	containing, err := s.Search(ctx, "Central")
	require.NoError(t, err)
	assert.Len(t, containing, 2)

	none, err := s.GetBloodBanksWithEmployeeCount(ctx, 999)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestUpdateKeepsCreatedAt(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	bank, err := s.CreateEntity(validParams())
	require.NoError(t, err)
	require.NoError(t, s.Add(ctx, bank))

	stored, err := s.GetWithId(ctx, bank.ID)
	require.NoError(t, err)

	params := validParams()
	params.Set("id", "1")
	params.Set("employee_count", "99")
	changed, err := s.CreateEntity(params)
	require.NoError(t, err)
	require.NoError(t, s.Update(ctx, changed))

	reloaded, err := s.GetWithId(ctx, bank.ID)
	require.NoError(t, err)
	assert.Equal(t, 99, reloaded.EmployeeCount)
	assert.True(t, stored.CreatedAt.Equal(reloaded.CreatedAt))
}

func TestUpdateMissingIsNotFound(t *testing.T) {
	s := newTestService(t)

	params := validParams()
	params.Set("id", "404")
	bank, err := s.CreateEntity(params)
	require.NoError(t, err)

	err = s.Update(context.Background(), bank)
	require.Error(t, err)
	assert.True(t, errorc.IsNotFound(err))
}

func TestSearchTreatsWildcardsLiterally(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	for _, name := range []string{"Central", "North", "Lab_7", "100% Donors"} {
		params := validParams()
		params.Set("name", name)
		bank, err := s.CreateEntity(params)
		require.NoError(t, err)
		require.NoError(t, s.Add(ctx, bank))
	}

	tests := []struct {
		keyword string
		want    []string
	}{
		{keyword: "_", want: []string{"Lab_7"}},
		{keyword: "%", want: []string{"100% Donors"}},
		{keyword: "b_7", want: []string{"Lab_7"}},
		{keyword: "!", want: nil},
		{keyword: "rt", want: []string{"North"}},
	}
	for _, tt := range tests {
		t.Run(tt.keyword, func(t *testing.T) {
			found, err := s.Search(ctx, tt.keyword)
			require.NoError(t, err)
			var names []string
			for _, b := range found {
				names = append(names, b.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}
