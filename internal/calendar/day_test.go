package calendar

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	d, err := Parse("2023-04-01")
	require.NoError(t, err)
	assert.Equal(t, Day{Year: 2023, Month: 4, Day: 1}, d)
}

func TestParse_Invalid(t *testing.T) {
	for _, s := range []string{"", "2023-4-1", "04/01/2023", "2023-02-30", "2023-13-01"} {
		_, err := Parse(s)
		assert.Error(t, err, "Parse(%q)", s)
	}
}

func TestDayString(t *testing.T) {
	assert.Equal(t, "2023-04-01", Day{2023, 4, 1}.String())
	assert.Equal(t, "0999-12-31", Day{999, 12, 31}.String())
	assert.Equal(t, "2023-02-30", Day{2023, 2, 30}.String())
}

func TestFromTime_UsesOwnLocation(t *testing.T) {
	ts := time.Date(2023, 3, 31, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, Day{2023, 3, 31}, FromTime(ts))
	assert.Equal(t, Day{2023, 4, 1}, FromTime(ts.In(eastOfUTC)))
}

func TestDayTime(t *testing.T) {
	got := Day{2023, 4, 1}.Time(westOfUTC)
	assert.Equal(t, "2023-04-01T00:00:00.000-03:00", got.Format(millisLayout))
	assert.True(t, got.Equal(ApplyDayIn(nil, Day{2023, 4, 1}, westOfUTC)))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		day     Day
		wantErr bool
	}{
		{Day{2023, 4, 1}, false},
		{Day{2024, 2, 29}, false},
		{Day{2023, 2, 29}, true},
		{Day{2023, 4, 31}, true},
		{Day{2023, 0, 1}, true},
		{Day{2023, 13, 1}, true},
		{Day{2023, 1, 0}, true},
		{Day{2023, 12, 31}, false},
	}
	for _, tt := range tests {
		err := tt.day.Validate()
		if tt.wantErr {
			require.Error(t, err, "Validate(%s)", tt.day)
			assert.ErrorIs(t, err, ErrInvalidDay)
		} else {
			assert.NoError(t, err, "Validate(%s)", tt.day)
		}
	}
}

func TestDaysIn(t *testing.T) {
	assert.Equal(t, 31, DaysIn(2023, 1))
	assert.Equal(t, 28, DaysIn(2023, 2))
	assert.Equal(t, 29, DaysIn(2024, 2))
	assert.Equal(t, 28, DaysIn(1900, 2))
	assert.Equal(t, 29, DaysIn(2000, 2))
	assert.Equal(t, 30, DaysIn(2023, 4))
	assert.Equal(t, 31, DaysIn(2023, 12))
}

func TestUnmarshalJSON_PickerPayload(t *testing.T) {
	payload := `{"dateString":"2023-04-01","day":1,"month":4,"timestamp":1734134400000,"year":2023}`
	var d Day
	require.NoError(t, json.Unmarshal([]byte(payload), &d))
	assert.Equal(t, Day{2023, 4, 1}, d)
}

func TestUnmarshalJSON_DateStringWins(t *testing.T) {
	var d Day
	require.NoError(t, json.Unmarshal([]byte(`{"dateString":"2023-04-01","day":9,"month":9,"year":1999}`), &d))
	assert.Equal(t, Day{2023, 4, 1}, d)
}

func TestUnmarshalJSON_NumericFields(t *testing.T) {
	var d Day
	require.NoError(t, json.Unmarshal([]byte(`{"day":31,"month":2,"year":2023}`), &d))
	// Not validated here; rollover is left to the caller.
	assert.Equal(t, Day{2023, 2, 31}, d)
}

func TestUnmarshalJSON_Errors(t *testing.T) {
	tests := []string{
		`{}`,
		`{"dateString":"April 1"}`,
		`[1,2,3]`,
	}
	for _, payload := range tests {
		var d Day
		assert.Error(t, json.Unmarshal([]byte(payload), &d), "payload %s", payload)
	}
}

func TestUnmarshalJSON_EmptyIsInvalidDay(t *testing.T) {
	var d Day
	err := json.Unmarshal([]byte(`{}`), &d)
	assert.ErrorIs(t, err, ErrInvalidDay)
}

func TestMarshalJSON(t *testing.T) {
	data, err := json.Marshal(Day{2023, 4, 1})
	require.NoError(t, err)
	assert.JSONEq(t, `{"dateString":"2023-04-01","year":2023,"month":4,"day":1,"timestamp":1680307200000}`, string(data))

	var back Day
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, Day{2023, 4, 1}, back)
}

func TestMarshalJSON_RoundTripOutOfRange(t *testing.T) {
	days := []Day{
		{2023, 2, 30},
		{2023, 13, 1},
		{2023, 4, 0},
		{12000, 1, 1},
		{2024, 2, 29},
		{0, 1, 1},
	}
	for _, d := range days {
		data, err := json.Marshal(d)
		require.NoError(t, err, "Marshal(%s)", d)

		var back Day
		require.NoError(t, json.Unmarshal(data, &back), "Unmarshal(%s)", data)
		assert.Equal(t, d, back)
	}
}

func TestMarshalJSON_OmitsDateStringWhenUnparseable(t *testing.T) {
	data, err := json.Marshal(Day{2023, 2, 30})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "dateString")
	assert.Contains(t, string(data), `"day":30`)
}
