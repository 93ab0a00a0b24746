package shift

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogDefinitions(t *testing.T) {
	catalog := DefaultCatalog()

	general, ok := catalog.Get(TypeGeneral)
	require.True(t, ok)
	assert.Equal(t, "10:00", *general.LoginTime)
	assert.Equal(t, "21:00", *general.LogoutTime)
	assert.Equal(t, 11.0, *general.TotalHours)

	night, ok := catalog.Get(TypeNight)
	require.True(t, ok)
	assert.Equal(t, "22:00", *night.LoginTime)
	assert.Equal(t, "06:00", *night.LogoutTime)

	flexible, ok := catalog.Get(TypeFlexible)
	require.True(t, ok)
	assert.Nil(t, flexible.LoginTime)
	assert.Nil(t, flexible.LogoutTime)
	assert.Equal(t, 8.0, *flexible.TotalHours)

	assert.Len(t, catalog.Definitions(), 6)
}

func TestResolveNamedShift(t *testing.T) {
	catalog := DefaultCatalog()

	res, err := catalog.Resolve(Config{Type: TypeMorning})
	require.NoError(t, err)
	assert.Equal(t, TypeMorning, res.Type)
	assert.Equal(t, "06:00", *res.ExpectedLogin)
	assert.Equal(t, "14:00", *res.ExpectedLogout)
	assert.Equal(t, 8.0, *res.RequiredHours)
}

func TestResolveUnknownFallsBackToDefault(t *testing.T) {
	catalog := DefaultCatalog()

	res, err := catalog.Resolve(Config{Type: "Graveyard"})
	require.NoError(t, err)
	assert.Equal(t, TypeGeneral, res.Type)
	assert.Equal(t, "10:00", *res.ExpectedLogin)
}

func TestResolveCustom(t *testing.T) {
	catalog := DefaultCatalog()
	login := "09:00"
	logout := "18:00"
	hours := 9.0

	t.Run("with precomputed hours", func(t *testing.T) {
		res, err := catalog.Resolve(Config{
			Type:             TypeCustom,
			CustomLoginTime:  &login,
			CustomLogoutTime: &logout,
			CustomTotalHours: &hours,
		})
		require.NoError(t, err)
		assert.Equal(t, TypeCustom, res.Type)
		assert.Equal(t, "09:00", *res.ExpectedLogin)
		assert.Equal(t, 9.0, *res.RequiredHours)
	})

	t.Run("hours derived from span when absent", func(t *testing.T) {
		res, err := catalog.Resolve(Config{
			Type:             TypeCustom,
			CustomLoginTime:  &login,
			CustomLogoutTime: &logout,
		})
		require.NoError(t, err)
		assert.Equal(t, 9.0, *res.RequiredHours)
	})

	t.Run("missing logout time", func(t *testing.T) {
		_, err := catalog.Resolve(Config{Type: TypeCustom, CustomLoginTime: &login})
		assert.ErrorIs(t, err, ErrMissingCustomTimes)
	})

	t.Run("missing both times", func(t *testing.T) {
		_, err := catalog.Resolve(Config{Type: TypeCustom})
		assert.ErrorIs(t, err, ErrMissingCustomTimes)
	})

	t.Run("unparsable time", func(t *testing.T) {
		bad := "nine"
		_, err := catalog.Resolve(Config{
			Type:             TypeCustom,
			CustomLoginTime:  &bad,
			CustomLogoutTime: &logout,
		})
		require.Error(t, err)
	})
}
