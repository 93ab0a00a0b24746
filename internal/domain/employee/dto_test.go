package employee

import (
	"testing"

	"github.com/blubridge/hrms-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func validCreateRequest() CreateEmployeeRequest {
	return CreateEmployeeRequest{
		Name:        "Chaithanya",
		Email:       "chaithanya.blubridge@evoplus.in",
		Department:  "Research Unit",
		Team:        "Data",
		Designation: "Software Engineer",
	}
}

func TestCreateEmployeeRequestValidate(t *testing.T) {
	req := validCreateRequest()
	assert.NoError(t, req.Validate())

	req = validCreateRequest()
	req.Email = "not-an-email"
	assert.Error(t, req.Validate())

	req = validCreateRequest()
	req.Team = ""
	assert.Error(t, req.Validate())

	req = validCreateRequest()
	req.JoinDate = strPtr("15-01-2024")
	assert.Error(t, req.Validate())

	req = validCreateRequest()
	req.JoinDate = strPtr("2024-01-15")
	assert.NoError(t, req.Validate())

	req = validCreateRequest()
	req.MonthlySalary = strPtr("-100")
	assert.Error(t, req.Validate())
}

func TestCreateEmployeeRequestValidationFields(t *testing.T) {
	req := CreateEmployeeRequest{}
	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)

	fields := errs.ToMap()
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "department")
	assert.Contains(t, fields, "team")
}

func TestUpdateShiftRequestValidate(t *testing.T) {
	req := UpdateShiftRequest{ShiftType: "Morning"}
	assert.NoError(t, req.Validate())

	req = UpdateShiftRequest{ShiftType: ""}
	assert.Error(t, req.Validate())

	req = UpdateShiftRequest{ShiftType: "Custom"}
	assert.Error(t, req.Validate(), "custom without times")

	req = UpdateShiftRequest{
		ShiftType:        "Custom",
		CustomLoginTime:  strPtr("09:00"),
		CustomLogoutTime: strPtr("18:00"),
	}
	assert.NoError(t, req.Validate())

	req = UpdateShiftRequest{
		ShiftType:        "Custom",
		CustomLoginTime:  strPtr("9am"),
		CustomLogoutTime: strPtr("18:00"),
	}
	assert.Error(t, req.Validate())
}

func TestUpdateSalaryRequestValidate(t *testing.T) {
	req := UpdateSalaryRequest{MonthlySalary: "60000.00"}
	assert.NoError(t, req.Validate())

	req = UpdateSalaryRequest{MonthlySalary: ""}
	assert.Error(t, req.Validate())

	req = UpdateSalaryRequest{MonthlySalary: "-1"}
	assert.Error(t, req.Validate())

	req = UpdateSalaryRequest{MonthlySalary: "sixty thousand"}
	assert.Error(t, req.Validate())
}
