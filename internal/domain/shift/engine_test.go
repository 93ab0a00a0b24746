package shift

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustResolve(t *testing.T, cfg Config) *Resolved {
	t.Helper()
	res, err := DefaultCatalog().Resolve(cfg)
	require.NoError(t, err)
	return res
}

func mustMinutes(t *testing.T, s string) int {
	t.Helper()
	m, err := MinutesOfDay(s)
	require.NoError(t, err)
	return m
}

func TestClassifyCheckInGeneralShift(t *testing.T) {
	res := mustResolve(t, Config{Type: TypeGeneral})

	t.Run("on time", func(t *testing.T) {
		got := ClassifyCheckIn(res, mustMinutes(t, "10:00"))
		assert.Equal(t, StatusLogin, got.Status)
		assert.False(t, got.IsLOP)
		assert.Empty(t, got.Reason)
	})

	t.Run("one minute late", func(t *testing.T) {
		got := ClassifyCheckIn(res, mustMinutes(t, "10:01"))
		assert.Equal(t, StatusLossOfPay, got.Status)
		assert.True(t, got.IsLOP)
		assert.Contains(t, got.Reason, "1 minute(s)")
		assert.Contains(t, got.Reason, "10:00 AM")
	})

	t.Run("early is fine", func(t *testing.T) {
		got := ClassifyCheckIn(res, mustMinutes(t, "09:30"))
		assert.Equal(t, StatusLogin, got.Status)
		assert.False(t, got.IsLOP)
	})
}

func TestClassifyCheckInFlexibleDefersJudgement(t *testing.T) {
	res := mustResolve(t, Config{Type: TypeFlexible})

	got := ClassifyCheckIn(res, mustMinutes(t, "13:45"))
	assert.Equal(t, StatusLogin, got.Status)
	assert.False(t, got.IsLOP)
}

func TestClassifyCheckOutEarlyLogout(t *testing.T) {
	res := mustResolve(t, Config{Type: TypeGeneral})
	in := ClassifyCheckIn(res, mustMinutes(t, "08:00"))
	require.False(t, in.IsLOP)

	// 08:00 to 20:00 is 12h, more than the 11h required, but still an hour
	// before the expected logout.
	got := ClassifyCheckOut(res, in, mustMinutes(t, "08:00"), mustMinutes(t, "20:00"))
	assert.Equal(t, StatusLossOfPay, got.Status)
	assert.True(t, got.IsLOP)
	assert.Contains(t, got.Reason, "Early logout by 60 minute(s)")
	assert.Equal(t, 720, got.WorkedMinutes)
}

func TestClassifyCheckOutPresent(t *testing.T) {
	res := mustResolve(t, Config{Type: TypeGeneral})
	in := ClassifyCheckIn(res, mustMinutes(t, "10:00"))

	got := ClassifyCheckOut(res, in, mustMinutes(t, "10:00"), mustMinutes(t, "21:00"))
	assert.Equal(t, StatusPresent, got.Status)
	assert.False(t, got.IsLOP)
	assert.Empty(t, got.Reason)
	assert.Equal(t, 660, got.WorkedMinutes)
}

func TestClassifyCheckOutKeepsCheckInLOP(t *testing.T) {
	res := mustResolve(t, Config{Type: TypeGeneral})
	in := ClassifyCheckIn(res, mustMinutes(t, "10:30"))
	require.True(t, in.IsLOP)

	// Working past logout does not redeem the late login, and the reason
	// stays the one recorded at clock-in.
	got := ClassifyCheckOut(res, in, mustMinutes(t, "10:30"), mustMinutes(t, "22:00"))
	assert.Equal(t, StatusLossOfPay, got.Status)
	assert.True(t, got.IsLOP)
	assert.Contains(t, got.Reason, "Late login by 30 minute(s)")
}

func TestClassifyCheckOutFlexibleInsufficientHours(t *testing.T) {
	res := mustResolve(t, Config{Type: TypeFlexible})
	in := ClassifyCheckIn(res, mustMinutes(t, "09:00"))

	got := ClassifyCheckOut(res, in, mustMinutes(t, "09:00"), mustMinutes(t, "16:30"))
	assert.Equal(t, StatusLossOfPay, got.Status)
	assert.True(t, got.IsLOP)
	assert.Contains(t, got.Reason, "7.50h < 8h required")
}

func TestClassifyCheckOutFlexibleEnoughHours(t *testing.T) {
	res := mustResolve(t, Config{Type: TypeFlexible})
	in := ClassifyCheckIn(res, mustMinutes(t, "11:00"))

	got := ClassifyCheckOut(res, in, mustMinutes(t, "11:00"), mustMinutes(t, "19:00"))
	assert.Equal(t, StatusPresent, got.Status)
	assert.False(t, got.IsLOP)
}

func TestClassifyCheckOutNightShiftWraparound(t *testing.T) {
	res := mustResolve(t, Config{Type: TypeNight})
	in := ClassifyCheckIn(res, mustMinutes(t, "22:00"))
	require.False(t, in.IsLOP)

	got := ClassifyCheckOut(res, in, mustMinutes(t, "22:00"), mustMinutes(t, "06:00"))
	assert.Equal(t, StatusPresent, got.Status)
	assert.Equal(t, 480, got.WorkedMinutes)
}

func TestClassifyCheckOutCustomShift(t *testing.T) {
	login := "09:00"
	logout := "18:00"
	res := mustResolve(t, Config{Type: TypeCustom, CustomLoginTime: &login, CustomLogoutTime: &logout})
	in := ClassifyCheckIn(res, mustMinutes(t, "09:00"))

	got := ClassifyCheckOut(res, in, mustMinutes(t, "09:00"), mustMinutes(t, "18:00"))
	assert.Equal(t, StatusPresent, got.Status)
	assert.Equal(t, 540, got.WorkedMinutes)
}

func TestClassifyCheckOutNoShiftCompletes(t *testing.T) {
	in := CheckInResult{Status: StatusLogin}

	got := ClassifyCheckOut(nil, in, mustMinutes(t, "10:00"), mustMinutes(t, "18:00"))
	assert.Equal(t, StatusCompleted, got.Status)
	assert.False(t, got.IsLOP)
	assert.Equal(t, 480, got.WorkedMinutes)
}
