package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCoversInclusiveBounds(t *testing.T) {
	l := Leave{
		StartDate: day(2025, time.September, 10),
		EndDate:   day(2025, time.September, 12),
	}

	assert.False(t, l.Covers(day(2025, time.September, 9)))
	assert.True(t, l.Covers(day(2025, time.September, 10)))
	assert.True(t, l.Covers(day(2025, time.September, 11)))
	assert.True(t, l.Covers(day(2025, time.September, 12)))
	assert.False(t, l.Covers(day(2025, time.September, 13)))
}

func TestCoversSingleDay(t *testing.T) {
	l := Leave{
		StartDate: day(2025, time.September, 10),
		EndDate:   day(2025, time.September, 10),
	}

	assert.True(t, l.Covers(day(2025, time.September, 10)))
	assert.False(t, l.Covers(day(2025, time.September, 11)))
}

func TestCoversIgnoresTimeOfDay(t *testing.T) {
	l := Leave{
		StartDate: day(2025, time.September, 10),
		EndDate:   day(2025, time.September, 10),
	}

	assert.True(t, l.Covers(time.Date(2025, time.September, 10, 23, 45, 0, 0, time.UTC)))
}

func TestCreateLeaveRequestValidate(t *testing.T) {
	valid := CreateLeaveRequest{
		EmployeeID: "emp-1",
		LeaveType:  "Casual",
		StartDate:  "2025-09-10",
		EndDate:    "2025-09-12",
		Reason:     "Family function",
	}
	assert.NoError(t, valid.Validate())

	reversed := valid
	reversed.StartDate = "2025-09-12"
	reversed.EndDate = "2025-09-10"
	assert.Error(t, reversed.Validate())

	badDate := valid
	badDate.StartDate = "10-09-2025"
	assert.Error(t, badDate.Validate())

	missing := valid
	missing.EmployeeID = ""
	assert.Error(t, missing.Validate())
}
