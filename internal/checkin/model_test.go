package checkin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCourseDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "iso date", in: "2025-11-08", want: "2025/11/08"},
		{name: "already normalized", in: "2025/11/08", want: "2025/11/08"},
		{name: "slashed without padding", in: "2025/1/2", want: "2025/01/02"},
		{name: "spreadsheet default m-d-yy", in: "11-8-25", want: "2025/11/08"},
		{name: "rfc3339 timestamp", in: "2025-11-08T00:00:00Z", want: "2025/11/08"},
		{name: "unparseable passes through", in: "第三週週末", want: "第三週週末"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatCourseDate(tt.in))
		})
	}
}

func TestFromRowToleratesShortRows(t *testing.T) {
	// sheet reads drop trailing empty cells
	a := fromRow([]string{"A1", "0912345678", "王小明", "Intro", "2025-11-08", "Workshop"})
	assert.Equal(t, "A1", a.ID)
	assert.Equal(t, "", a.Status)
	assert.Equal(t, "", a.CheckInTime)
}
