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
	"bloodbank/system/person/internal/dao"
	"bloodbank/system/person/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *PersonService {
	db := dbtest.Open(t, &model.Person{})
	log := logger.GetLogger()
	return NewPersonService(dao.NewPersonDao(db, log), log)
}

func validParams() mvc.Params {
	return mvc.Params{
		"first_name": {"Ada"},
		"last_name":  {"Lovelace"},
		"phone":      {"613-555-0100"},
		"address":    {"12 Analytical St"},
		"birth":      {"1990-12-10"},
	}
}

func TestCreateEntity(t *testing.T) {
	s := newTestService(t)

	person, err := s.CreateEntity(validParams())
	require.NoError(t, err)
	assert.Equal(t, int64(0), person.ID)
	assert.Equal(t, "Ada", person.FirstName)
	assert.Equal(t, "Lovelace", person.LastName)
	assert.Equal(t, "613-555-0100", person.Phone)
	assert.Equal(t, "12 Analytical St", person.Address)
	assert.Equal(t, time.Date(1990, 12, 10, 0, 0, 0, 0, time.Local), person.Birth)
}

func TestCreateEntityInvalid(t *testing.T) {
	s := newTestService(t)

	tests := []struct {
		name   string
		modify func(p mvc.Params)
	}{
		{name: "参数为空", modify: nil},
		{name: "缺少名", modify: func(p mvc.Params) { delete(p, "first_name") }},
		{name: "姓为空白", modify: func(p mvc.Params) { p.Set("last_name", "   ") }},
		{name: "电话超长", modify: func(p mvc.Params) { p.Set("phone", strings.Repeat("9", 46)) }},
		{name: "ID不是整数", modify: func(p mvc.Params) { p.Set("id", "x1") }},
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
		})
	}
}

func TestCreateEntityReportsAllFields(t *testing.T) {
	s := newTestService(t)

	_, err := s.CreateEntity(mvc.Params{"address": {"somewhere"}})
	require.Error(t, err)
	msg := errorc.ParseError(err).Message()
	assert.Contains(t, msg, "名")
	assert.Contains(t, msg, "姓")
	assert.Contains(t, msg, "电话")
}

func TestCreateEntityLenientBirth(t *testing.T) {
	s := newTestService(t)

	params := validParams()
	params.Set("birth", "not a date")
	person, err := s.CreateEntity(params)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), person.Birth, 5*time.Second)
}

func TestColumnsAndExtract(t *testing.T) {
	s := newTestService(t)

	names, codes := s.GetColumnNames(), s.GetColumnCodes()
	require.Equal(t, len(names), len(codes))
	assert.Equal(t, "ID", names[0])
	assert.Equal(t, "id", codes[0])

	person, err := s.CreateEntity(validParams())
	require.NoError(t, err)
	row := s.ExtractDataAsList(person)
	require.Len(t, row, len(codes))
	assert.Equal(t, "Ada", row[1])
	assert.Equal(t, person.Birth, row[5])
}

func TestQueries(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	ada, err := s.CreateEntity(validParams())
	require.NoError(t, err)
	require.NoError(t, s.Add(ctx, ada))

	params := validParams()
	params.Set("first_name", "Grace")
	params.Set("last_name", "Hopper")
	params.Set("birth", "1985-03-04")
	grace, err := s.CreateEntity(params)
	require.NoError(t, err)
	require.NoError(t, s.Add(ctx, grace))

	byFirst, err := s.GetPersonsWithFirstName(ctx, "Grace")
	require.NoError(t, err)
	require.Len(t, byFirst, 1)
	assert.Equal(t, grace.ID, byFirst[0].ID)

	byLast, err := s.GetPersonsWithLastName(ctx, "Nobody")
	require.NoError(t, err)
	assert.Empty(t, byLast)

	byPhone, err := s.GetPersonsWithPhone(ctx, "613-555-0100")
	require.NoError(t, err)
	assert.Len(t, byPhone, 2)

	byBirth, err := s.GetPersonsWithBirth(ctx, time.Date(1990, 12, 10, 15, 0, 0, 0, time.Local))
	require.NoError(t, err)
	require.Len(t, byBirth, 1)
	assert.Equal(t, ada.ID, byBirth[0].ID)

	found, err := s.Search(ctx, "opp")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Hopper", found[0].LastName)

	// 通配符按字面量匹配
	wildcard, err := s.Search(ctx, "_")
	require.NoError(t, err)
	assert.Empty(t, wildcard)

	missing, err := s.GetWithId(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
