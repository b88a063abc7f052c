package entity_test

import (
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/limbo/studyos/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateAddDays(t *testing.T) {
	testCases := []struct {
		Desc     string
		Start    entity.Date
		Days     int
		Expected string
	}{
		{Desc: "same month", Start: entity.NewDate(2025, time.March, 3), Days: 4, Expected: "2025-03-07"},
		{Desc: "month rollover", Start: entity.NewDate(2025, time.January, 31), Days: 1, Expected: "2025-02-01"},
		{Desc: "non leap february", Start: entity.NewDate(2025, time.February, 28), Days: 1, Expected: "2025-03-01"},
		{Desc: "leap february", Start: entity.NewDate(2024, time.February, 28), Days: 1, Expected: "2024-02-29"},
		{Desc: "year rollover", Start: entity.NewDate(2024, time.December, 31), Days: 1, Expected: "2025-01-01"},
		{Desc: "backwards", Start: entity.NewDate(2025, time.March, 1), Days: -1, Expected: "2025-02-28"},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Expected, tc.Start.AddDays(tc.Days).String())
		})
	}
}

func TestDateDaysSince(t *testing.T) {
	a := entity.NewDate(2024, time.January, 20)
	b := entity.NewDate(2024, time.March, 1)
	assert.Equal(t, 41, b.DaysSince(a))
	assert.Equal(t, -41, a.DaysSince(b))
	assert.Equal(t, 0, a.DaysSince(a))
}

func TestDateOfKeepsLocalDay(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	moment := time.Date(2025, time.May, 2, 1, 30, 0, 0, loc)
	assert.Equal(t, "2025-05-02", entity.DateOf(moment).String())
	assert.True(t, entity.NewDate(2025, time.May, 2).Contains(moment))
}

func TestDateJSON(t *testing.T) {
	type wrapper struct {
		Day  entity.Date  `json:"day"`
		Opt  *entity.Date `json:"opt"`
		Zero entity.Date  `json:"zero"`
	}
	day := entity.NewDate(2025, time.October, 9)
	data, err := sonic.Marshal(wrapper{Day: day})
	require.NoError(t, err)
	assert.JSONEq(t, `{"day":"2025-10-09","opt":null,"zero":null}`, string(data))

	var decoded wrapper
	require.NoError(t, sonic.Unmarshal([]byte(`{"day":"2025-10-09","opt":"2025-01-02","zero":null}`), &decoded))
	assert.True(t, decoded.Day.Equal(day))
	require.NotNil(t, decoded.Opt)
	assert.Equal(t, "2025-01-02", decoded.Opt.String())
	assert.True(t, decoded.Zero.IsZero())

	assert.Error(t, sonic.Unmarshal([]byte(`{"day":"09/10/2025"}`), &decoded))
	assert.Error(t, sonic.Unmarshal([]byte(`{"day":20251009}`), &decoded))
}
