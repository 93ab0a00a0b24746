package shift

import "fmt"

// Status is the classification of an attendance record. Values are stored
// verbatim, including the legacy ones no longer produced by classification.
type Status string

const (
	StatusNotLogged Status = "Not Logged"
	StatusLogin     Status = "Login"
	StatusPresent   Status = "Present"
	StatusLossOfPay Status = "Loss of Pay"
	StatusCompleted Status = "Completed"
	StatusLateLogin Status = "Late Login"
	StatusEarlyOut  Status = "Early Out"
	StatusLeave     Status = "Leave"
	StatusNA        Status = "NA"
)

// CheckInResult is the provisional classification made at clock-in. It becomes
// final only through ClassifyCheckOut.
type CheckInResult struct {
	Status Status
	IsLOP  bool
	Reason string
}

// CheckOutResult is the final classification of a completed working day.
type CheckOutResult struct {
	Status        Status
	IsLOP         bool
	Reason        string
	WorkedMinutes int
}

// ClassifyCheckIn classifies a clock-in against the resolved shift. Fixed
// shifts are strict: one minute past the expected login is Loss of Pay.
// Flexible shifts (no expected login) are judged only at clock-out.
func ClassifyCheckIn(res *Resolved, checkInMin int) CheckInResult {
	if res == nil || res.ExpectedLogin == nil {
		return CheckInResult{Status: StatusLogin}
	}
	expectedMin, err := MinutesOfDay(*res.ExpectedLogin)
	if err != nil {
		return CheckInResult{Status: StatusLogin}
	}
	if checkInMin > expectedMin {
		late := checkInMin - expectedMin
		return CheckInResult{
			Status: StatusLossOfPay,
			IsLOP:  true,
			Reason: fmt.Sprintf("Late login by %d minute(s) (expected %s, actual %s)",
				late, Display12h(*res.ExpectedLogin), Display12h(ClockString(checkInMin))),
		}
	}
	return CheckInResult{Status: StatusLogin}
}

// ClassifyCheckOut finalizes the day's classification. The LOP flag set at
// clock-in never clears; the early-logout check is skipped for an already-LOP
// day and the clock-in reason wins when both are present.
func ClassifyCheckOut(res *Resolved, in CheckInResult, checkInMin, checkOutMin int) CheckOutResult {
	worked := SpanMinutes(checkInMin, checkOutMin)
	out := CheckOutResult{
		IsLOP:         in.IsLOP,
		Reason:        in.Reason,
		WorkedMinutes: worked,
	}

	if res == nil {
		// No shift information at all: legacy records complete as-is.
		out.Status = StatusCompleted
		return out
	}

	if res.ExpectedLogin == nil || res.ExpectedLogout == nil {
		// Flexible: judged on worked hours alone.
		if res.RequiredHours != nil && float64(worked) < *res.RequiredHours*60 {
			out.IsLOP = true
			out.Reason = insufficientHours(worked, *res.RequiredHours)
			out.Status = StatusLossOfPay
			return out
		}
		out.Status = StatusPresent
		return out
	}

	if !out.IsLOP {
		expectedOut, err := MinutesOfDay(*res.ExpectedLogout)
		switch {
		case err == nil && checkOutMin < expectedOut:
			early := SpanMinutes(checkOutMin, expectedOut)
			out.IsLOP = true
			out.Reason = fmt.Sprintf("Early logout by %d minute(s) (expected %s, actual %s)",
				early, Display12h(*res.ExpectedLogout), Display12h(ClockString(checkOutMin)))
		case res.RequiredHours != nil && float64(worked) < *res.RequiredHours*60:
			out.IsLOP = true
			out.Reason = insufficientHours(worked, *res.RequiredHours)
		}
	}

	if out.IsLOP {
		out.Status = StatusLossOfPay
	} else {
		out.Status = StatusPresent
	}
	return out
}

func insufficientHours(workedMin int, required float64) string {
	return fmt.Sprintf("Insufficient hours: %.2fh < %gh required", float64(workedMin)/60, required)
}
