package shift

import "fmt"

const (
	TypeGeneral  = "General"
	TypeMorning  = "Morning"
	TypeEvening  = "Evening"
	TypeNight    = "Night"
	TypeFlexible = "Flexible"
	TypeCustom   = "Custom"
)

// Definition describes one named shift in the catalog. Flexible shifts carry
// no login/logout times and are judged on total hours alone.
type Definition struct {
	Type        string   `json:"type"`
	LoginTime   *string  `json:"login_time"`
	LogoutTime  *string  `json:"logout_time"`
	TotalHours  *float64 `json:"total_hours"`
	Description string   `json:"description"`
}

// Config is an employee's shift assignment. Custom assignments carry their own
// times; every other type is looked up in the catalog.
type Config struct {
	Type             string
	CustomLoginTime  *string
	CustomLogoutTime *string
	CustomTotalHours *float64
}

// Resolved is the shift actually applied to a working day, after catalog
// lookup and custom-time substitution.
type Resolved struct {
	Type           string
	ExpectedLogin  *string
	ExpectedLogout *string
	RequiredHours  *float64
}

// Catalog holds the immutable set of shift definitions. It is built once at
// startup and injected wherever classification happens.
type Catalog struct {
	defs        map[string]Definition
	order       []string
	defaultType string
}

func NewCatalog(defs []Definition, defaultType string) *Catalog {
	c := &Catalog{
		defs:        make(map[string]Definition, len(defs)),
		defaultType: defaultType,
	}
	for _, d := range defs {
		c.defs[d.Type] = d
		c.order = append(c.order, d.Type)
	}
	return c
}

func ptrString(s string) *string  { return &s }
func ptrFloat(f float64) *float64 { return &f }

// DefaultCatalog returns the standard company shift catalog.
func DefaultCatalog() *Catalog {
	return NewCatalog([]Definition{
		{Type: TypeGeneral, LoginTime: ptrString("10:00"), LogoutTime: ptrString("21:00"), TotalHours: ptrFloat(11), Description: "General shift 10:00 AM - 9:00 PM"},
		{Type: TypeMorning, LoginTime: ptrString("06:00"), LogoutTime: ptrString("14:00"), TotalHours: ptrFloat(8), Description: "Morning shift 6:00 AM - 2:00 PM"},
		{Type: TypeEvening, LoginTime: ptrString("14:00"), LogoutTime: ptrString("22:00"), TotalHours: ptrFloat(8), Description: "Evening shift 2:00 PM - 10:00 PM"},
		{Type: TypeNight, LoginTime: ptrString("22:00"), LogoutTime: ptrString("06:00"), TotalHours: ptrFloat(8), Description: "Night shift 10:00 PM - 6:00 AM"},
		{Type: TypeFlexible, TotalHours: ptrFloat(8), Description: "Flexible hours, 8h required"},
		{Type: TypeCustom, Description: "Custom per-employee times"},
	}, TypeGeneral)
}

// Get looks up a definition by type name.
func (c *Catalog) Get(name string) (Definition, bool) {
	d, ok := c.defs[name]
	return d, ok
}

// Definitions returns the catalog in declaration order.
func (c *Catalog) Definitions() []Definition {
	out := make([]Definition, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.defs[name])
	}
	return out
}

// Resolve turns an employee's shift assignment into the shift applied to a
// working day. Custom assignments must carry both times; their required hours
// are taken from the precomputed value, or derived from the span when absent.
// Unknown type names fall back to the catalog default.
func (c *Catalog) Resolve(cfg Config) (*Resolved, error) {
	if cfg.Type == TypeCustom {
		if cfg.CustomLoginTime == nil || cfg.CustomLogoutTime == nil {
			return nil, ErrMissingCustomTimes
		}
		loginMin, err := MinutesOfDay(*cfg.CustomLoginTime)
		if err != nil {
			return nil, fmt.Errorf("custom login time: %w", err)
		}
		logoutMin, err := MinutesOfDay(*cfg.CustomLogoutTime)
		if err != nil {
			return nil, fmt.Errorf("custom logout time: %w", err)
		}
		hours := cfg.CustomTotalHours
		if hours == nil {
			hours = ptrFloat(float64(SpanMinutes(loginMin, logoutMin)) / 60)
		}
		return &Resolved{
			Type:           TypeCustom,
			ExpectedLogin:  cfg.CustomLoginTime,
			ExpectedLogout: cfg.CustomLogoutTime,
			RequiredHours:  hours,
		}, nil
	}

	def, ok := c.defs[cfg.Type]
	if !ok {
		def = c.defs[c.defaultType]
	}
	return &Resolved{
		Type:           def.Type,
		ExpectedLogin:  def.LoginTime,
		ExpectedLogout: def.LogoutTime,
		RequiredHours:  def.TotalHours,
	}, nil
}
