// Package correlator joins guest records to booking records by fuzzy,
// case-insensitive substring matching on name and email. The two tables share
// no foreign key, so the join is containment-based and a booking may attach
// to any number of guests.
package correlator

import (
	"strings"

	"github.com/stayops/airtable-booking-gateway/types"
)

// GuestMatch is one guest with the bookings attached to it. Bookings keep the
// order of the input booking sequence; it may be empty.
type GuestMatch struct {
	Guest    types.Record
	Bookings []types.Record
}

// Correlate attaches a booking to a guest when the booking's guest-email
// contains the guest's derived email, the booking's guest-name contains the
// guest's derived name, or either contains the raw query string. Derived keys
// are lower-cased and trimmed; empty keys are skipped so a guest with no
// email cannot match every booking. Guests keep their input order.
func Correlate(guests []types.Record, bookings []types.Record, guestFields *types.GuestFields, bookingFields *types.BookingGuestFields, query string) []GuestMatch {
	loweredQuery := strings.ToLower(strings.TrimSpace(query))

	matches := make([]GuestMatch, 0, len(guests))
	for _, guest := range guests {
		email := normalize(fieldString(guest, guestFields.Email))
		firstName := fieldString(guest, guestFields.FirstName)
		lastName := fieldString(guest, guestFields.LastName)
		name := normalize(firstName + " " + lastName)

		matched := make([]types.Record, 0)
		for _, booking := range bookings {
			bookingName := strings.ToLower(fieldString(booking, bookingFields.Name))
			bookingEmail := strings.ToLower(fieldString(booking, bookingFields.Email))

			switch {
			case email != "" && strings.Contains(bookingEmail, email):
			case name != "" && strings.Contains(bookingName, name):
			case loweredQuery != "" && strings.Contains(bookingName, loweredQuery):
			case loweredQuery != "" && strings.Contains(bookingEmail, loweredQuery):
			default:
				continue
			}
			matched = append(matched, booking)
		}

		matches = append(matches, GuestMatch{
			Guest:    guest,
			Bookings: matched,
		})
	}
	return matches
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func fieldString(record types.Record, fieldName string) string {
	if fieldName == "" {
		return ""
	}
	if value, ok := record.Fields[fieldName].(string); ok {
		return value
	}
	return ""
}
