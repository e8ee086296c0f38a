package types

// Record is one row as returned by the remote store: an opaque ID plus the
// field map, reduced downstream to the table's allow-list.
type Record struct {
	ID     string         `json:"id"`
	Fields map[string]any `json:"fields"`
}

// DateRange is an inclusive [Start, End] range of plain YYYY-MM-DD dates.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type BookingsResult struct {
	Bookings []Record  `json:"bookings"`
	Range    DateRange `json:"range"`
}

type DigestResult struct {
	Today    []Record `json:"today"`
	Tomorrow []Record `json:"tomorrow"`
}

type BookingSearchResult struct {
	Bookings []Record `json:"bookings"`
}

type ContactsResult struct {
	Contacts []Record `json:"contacts"`
}

// GuestWithBookings is one cross-property lookup entry: a guest record tagged
// with its property plus the bookings the correlator attached to it.
type GuestWithBookings struct {
	PropertyID   string         `json:"propertyId"`
	PropertyName string         `json:"propertyName"`
	ID           string         `json:"id"`
	Fields       map[string]any `json:"fields"`
	Bookings     []Record       `json:"bookings"`
}

type GuestContactResult struct {
	Guests []GuestWithBookings `json:"guests"`
}

type PropertiesResult struct {
	Properties []PropertySummary `json:"properties"`
}

type PropertyResult struct {
	Property PropertySummary `json:"property"`
}
