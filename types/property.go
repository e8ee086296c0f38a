package types

// TableRole is the logical purpose a table serves within a property.
type TableRole string

const (
	TableRoleBookings TableRole = "bookings"
	TableRoleGuests   TableRole = "guests"
	TableRoleContacts TableRole = "contacts"
)

func (tableRole TableRole) IsValidTableRole() bool {
	switch tableRole {
	case TableRoleBookings,
		TableRoleGuests,
		TableRoleContacts:
		return true
	default:
		return false
	}
}

// DateFields names the booking table columns holding the stay boundaries.
type DateFields struct {
	Checkin  string
	Checkout string
}

// GuestFields names the guest table columns searched and used for correlation.
// FullName is optional; properties without a concatenated-name column leave it
// empty.
type GuestFields struct {
	FirstName string
	LastName  string
	FullName  string
	Email     string
}

// BookingGuestFields names the booking table columns carrying guest identity.
type BookingGuestFields struct {
	Name  string
	Email string
}

// TableConfig describes one remote table of a property. Fields is the
// allow-list: any field not listed is stripped from every response. View,
// when set, names the remote view every query runs against.
type TableConfig struct {
	Name         string
	View         string
	Fields       []string
	Dates        *DateFields
	Guest        *GuestFields
	BookingGuest *BookingGuestFields
}

// Property maps one configured property to its Airtable base and tables.
// Properties are built once at startup and never mutated.
type Property struct {
	ID          string
	DisplayName string
	BaseID      string
	Tables      map[TableRole]*TableConfig
}

// Table returns the configuration for a role, or nil when the property does
// not define it.
func (property *Property) Table(role TableRole) *TableConfig {
	if property.Tables == nil {
		return nil
	}
	return property.Tables[role]
}

// PropertySummary is the discovery projection of a property. It exposes role
// names only, never the per-table allow-lists.
type PropertySummary struct {
	ID          string      `json:"id"`
	DisplayName string      `json:"displayName"`
	BaseID      string      `json:"baseId"`
	TableRoles  []TableRole `json:"tableRoles"`
}
