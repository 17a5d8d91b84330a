package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/birthdays/pkg/dates"
	"github.com/mesh-intelligence/birthdays/pkg/types"
)

var today = dates.MustParse("2024-05-02")

var fixtures = []types.Birthday{
	{ID: 1, Name: "Far Away", Date: dates.MustParse("1980-12-24")},
	{ID: 2, Name: "Ben Dover", Date: dates.MustParse("1990-05-03")},
	{ID: 3, Name: "Birthday Girl", Date: dates.MustParse("2000-05-02")},
	{ID: 4, Name: "Not Born Yet", Date: dates.MustParse("2030-01-01")},
}

func TestRowsSortedByDaysUntil(t *testing.T) {
	rows := Rows(fixtures, today)
	require.Len(t, rows, 4)

	var ids []int64
	for _, r := range rows {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []int64{3, 2, 1, 4}, ids)

	assert.Equal(t, 0, rows[0].DaysUntil)
	require.NotNil(t, rows[0].Age)
	assert.Equal(t, 24, *rows[0].Age)
	assert.Equal(t, 1, rows[1].DaysUntil)
	assert.Nil(t, rows[3].Age)
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Birthdays(&buf, FormatTable, fixtures, today))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Regexp(t, `^ID\s+Name\s+Birthday\s+Age\s+Next birthday$`, lines[0])
	assert.Regexp(t, `^3\s+Birthday Girl\s+02 May\s+24 \(2000\)\s+today 🎂$`, lines[1])
	assert.Regexp(t, `^2\s+Ben Dover\s+03 May\s+33 \(1990\)\s+1 day$`, lines[2])
	assert.Regexp(t, `^1\s+Far Away\s+24 December\s+43 \(1980\)\s+236 days$`, lines[3])
	assert.Regexp(t, `^4\s+Not Born Yet\s+01 January\s+-\s+244 days$`, lines[4])
}

func TestTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Birthdays(&buf, FormatTable, nil, today))
	assert.Equal(t, NoBirthdayFound+"\n", buf.String())
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Birthdays(&buf, FormatJSON, fixtures[1:2], today))
	assert.JSONEq(t, `[{
		"id": 2,
		"name": "Ben Dover",
		"date": "1990-05-03",
		"age": 33,
		"next_birthday": "2024-05-03",
		"days_until": 1
	}]`, buf.String())

	buf.Reset()
	require.NoError(t, Birthdays(&buf, FormatJSON, nil, today))
	assert.JSONEq(t, `[]`, buf.String())
}

func TestYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Birthdays(&buf, FormatYAML, fixtures[1:2], today))

	var got []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Ben Dover", got[0]["name"])
	assert.Equal(t, "1990-05-03", got[0]["date"])
	assert.Equal(t, "2024-05-03", got[0]["next_birthday"])
	assert.Equal(t, 33, got[0]["age"])
}

func TestMessages(t *testing.T) {
	b := types.Birthday{ID: 9, Name: "Ben Dover", Date: dates.MustParse("1990-05-03")}

	var buf bytes.Buffer
	require.NoError(t, Forgotten(&buf, FormatTable, b))
	assert.Equal(t, "Birthday of 'Ben Dover' has been forgotten 🗑️\n", buf.String())

	buf.Reset()
	require.NoError(t, Added(&buf, FormatTable, b))
	assert.Equal(t, "Added birthday of 'Ben Dover' (id 9)\n", buf.String())

	buf.Reset()
	require.NoError(t, NotFound(&buf, FormatTable))
	assert.Equal(t, NoBirthdayFound+"\n", buf.String())

	buf.Reset()
	require.NoError(t, Imported(&buf, FormatJSON, 2, 1))
	var res map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &res))
	assert.Equal(t, "imported", res["status"])
	assert.Equal(t, float64(2), res["count"])
	assert.Equal(t, float64(1), res["skipped"])

	buf.Reset()
	require.NoError(t, Imported(&buf, FormatTable, 3, 0))
	assert.Equal(t, "Imported 3 birthdays\n", buf.String())

	buf.Reset()
	require.NoError(t, Initialized(&buf, FormatTable, "/c", "/d/birthdays.db"))
	assert.Equal(t, "Config: /c\nDatabase: /d/birthdays.db\n", buf.String())

	buf.Reset()
	require.NoError(t, Forgotten(&buf, FormatYAML, b))
	assert.Contains(t, buf.String(), "status: forgotten")
	assert.Contains(t, buf.String(), "date: \"1990-05-03\"")
}

func TestValidFormat(t *testing.T) {
	assert.True(t, ValidFormat(FormatTable))
	assert.True(t, ValidFormat(FormatJSON))
	assert.True(t, ValidFormat(FormatYAML))
	assert.False(t, ValidFormat("csv"))
}
