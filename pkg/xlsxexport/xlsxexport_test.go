package xlsxexport

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWrite(t *testing.T) {
	var buf bytes.Buffer

	err := Write(&buf, Table{
		Sheet:        "예약목록",
		Headers:      []string{"예약번호", "총액"},
		Rows:         [][]interface{}{{"S2508010001", 560000}, {"S2508010002", 300000}},
		ColumnWidths: []float64{16, 0},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("예약목록")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"예약번호", "총액"}, rows[0])
	assert.Equal(t, []string{"S2508010001", "560000"}, rows[1])
}

func TestWrite_EmptyTableHasHeaderOnly(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Write(&buf, Table{Headers: []string{"예약번호"}}))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"예약번호"}}, rows)
}
