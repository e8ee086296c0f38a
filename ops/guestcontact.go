package ops

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/stayops/airtable-booking-gateway/airtable"
	"github.com/stayops/airtable-booking-gateway/correlator"
	"github.com/stayops/airtable-booking-gateway/types"
)

// GetGuestContact searches guests across every property that configures both
// a guest and a booking table, and attaches correlated bookings to each
// matched guest. Property branches run concurrently; any branch failure fails
// the whole operation.
func (operationsClient *OperationsClient) GetGuestContact(ctx context.Context, query string, maxRecords int) (*types.GuestContactResult, error) {
	trimmedQuery, err := validateQuery(query)
	if err != nil {
		return nil, err
	}

	properties := operationsClient.Registry.All()
	if len(properties) == 0 {
		return nil, &types.ConfigurationError{Message: "no properties configured"}
	}

	eligible := make([]*types.Property, 0, len(properties))
	for _, property := range properties {
		guestTable := property.Table(types.TableRoleGuests)
		bookingTable := property.Table(types.TableRoleBookings)
		if guestTable == nil || bookingTable == nil {
			continue
		}
		if guestTable.Guest == nil || bookingTable.BookingGuest == nil {
			operationsClient.Logger.Debugf("Skipping property %s: guest/booking search fields not configured", property.ID)
			continue
		}
		eligible = append(eligible, property)
	}

	// Indexed by property so the concatenated result keeps registry order
	// regardless of which branch finishes first.
	entriesByProperty := make([][]types.GuestWithBookings, len(eligible))
	group, groupCtx := errgroup.WithContext(ctx)
	for index, property := range eligible {
		index, property := index, property
		group.Go(func() error {
			entries, err := operationsClient.lookupPropertyGuests(groupCtx, property, trimmedQuery, maxRecords)
			if err != nil {
				return err
			}
			entriesByProperty[index] = entries
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	guests := make([]types.GuestWithBookings, 0)
	for _, entries := range entriesByProperty {
		guests = append(guests, entries...)
	}
	return &types.GuestContactResult{Guests: guests}, nil
}

// lookupPropertyGuests runs one property's branch: the guest and booking
// fetches in parallel, then the correlation join.
func (operationsClient *OperationsClient) lookupPropertyGuests(ctx context.Context, property *types.Property, query string, maxRecords int) ([]types.GuestWithBookings, error) {
	guestTable := property.Table(types.TableRoleGuests)
	bookingTable := property.Table(types.TableRoleBookings)

	var guestRecords, bookingRecords []types.Record
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		records, err := operationsClient.Fetcher.Fetch(groupCtx, property.BaseID, guestTable.Name, airtable.FetchOptions{
			View:            guestTable.View,
			MaxRecords:      maxRecords,
			FilterByFormula: guestSearchFormula(guestTable.Guest, query),
			Fields:          guestTable.Fields,
		})
		if err != nil {
			return err
		}
		guestRecords = project(records, guestTable)
		return nil
	})
	group.Go(func() error {
		records, err := operationsClient.Fetcher.Fetch(groupCtx, property.BaseID, bookingTable.Name, airtable.FetchOptions{
			View:            bookingTable.View,
			MaxRecords:      maxRecords,
			FilterByFormula: bookingGuestFormula(bookingTable.BookingGuest, query),
			Fields:          bookingTable.Fields,
		})
		if err != nil {
			return err
		}
		bookingRecords = project(records, bookingTable)
		return nil
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	matches := correlator.Correlate(guestRecords, bookingRecords, guestTable.Guest, bookingTable.BookingGuest, query)
	entries := make([]types.GuestWithBookings, 0, len(matches))
	for _, match := range matches {
		entries = append(entries, types.GuestWithBookings{
			PropertyID:   property.ID,
			PropertyName: property.DisplayName,
			ID:           match.Guest.ID,
			Fields:       match.Guest.Fields,
			Bookings:     match.Bookings,
		})
	}
	return entries, nil
}
