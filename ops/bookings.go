package ops

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/stayops/airtable-booking-gateway/airtable"
	"github.com/stayops/airtable-booking-gateway/formula"
	"github.com/stayops/airtable-booking-gateway/types"
)

// ListBookingsByRange returns the property's bookings whose stay intersects
// the inclusive [start, end] range. Omitted dates default to today (UTC) and
// today + DefaultRangeDays.
func (operationsClient *OperationsClient) ListBookingsByRange(ctx context.Context, propertyID string, start string, end string, maxRecords int) (*types.BookingsResult, error) {
	property, table, err := operationsClient.resolveTable(propertyID, types.TableRoleBookings)
	if err != nil {
		return nil, err
	}
	if table.Dates == nil {
		return nil, &types.ValidationError{Message: "bookings table has no check-in/check-out fields configured"}
	}

	startDate := operationsClient.today()
	if start != "" {
		if startDate, err = parseDate(start); err != nil {
			return nil, err
		}
	}
	endDate := startDate.AddDate(0, 0, operationsClient.DefaultRangeDays)
	if end != "" {
		if endDate, err = parseDate(end); err != nil {
			return nil, err
		}
	}
	if endDate.Before(startDate) {
		return nil, &types.ValidationError{Message: "end date is before start date"}
	}

	rangeFormula := formula.Overlaps(table.Dates.Checkin, table.Dates.Checkout, startDate, endDate).Formula()
	operationsClient.Logger.Debugf("Listing bookings for %s between %s and %s", propertyID, startDate.Format(formula.DateLayout), endDate.Format(formula.DateLayout))

	records, err := operationsClient.Fetcher.Fetch(ctx, property.BaseID, table.Name, airtable.FetchOptions{
		View:            table.View,
		MaxRecords:      maxRecords,
		FilterByFormula: rangeFormula,
		Fields:          table.Fields,
	})
	if err != nil {
		return nil, err
	}

	return &types.BookingsResult{
		Bookings: project(records, table),
		Range: types.DateRange{
			Start: startDate.Format(formula.DateLayout),
			End:   endDate.Format(formula.DateLayout),
		},
	}, nil
}

// TodaysCheckinsCheckouts fetches the bookings checking in or out today and
// tomorrow. The two fetches run concurrently; either failure fails the whole
// operation.
func (operationsClient *OperationsClient) TodaysCheckinsCheckouts(ctx context.Context, propertyID string) (*types.DigestResult, error) {
	property, table, err := operationsClient.resolveTable(propertyID, types.TableRoleBookings)
	if err != nil {
		return nil, err
	}
	if table.Dates == nil {
		return nil, &types.ValidationError{Message: "bookings table has no check-in/check-out fields configured"}
	}

	today := operationsClient.today()
	tomorrow := today.AddDate(0, 0, 1)

	var todayRecords, tomorrowRecords []types.Record
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var fetchErr error
		todayRecords, fetchErr = operationsClient.fetchSameDay(groupCtx, property, table, today)
		return fetchErr
	})
	group.Go(func() error {
		var fetchErr error
		tomorrowRecords, fetchErr = operationsClient.fetchSameDay(groupCtx, property, table, tomorrow)
		return fetchErr
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return &types.DigestResult{
		Today:    todayRecords,
		Tomorrow: tomorrowRecords,
	}, nil
}

func (operationsClient *OperationsClient) fetchSameDay(ctx context.Context, property *types.Property, table *types.TableConfig, day time.Time) ([]types.Record, error) {
	sameDayFormula := formula.Or(
		formula.SameDay(table.Dates.Checkin, day),
		formula.SameDay(table.Dates.Checkout, day),
	).Formula()
	records, err := operationsClient.Fetcher.Fetch(ctx, property.BaseID, table.Name, airtable.FetchOptions{
		View:            table.View,
		FilterByFormula: sameDayFormula,
		Fields:          table.Fields,
	})
	if err != nil {
		return nil, err
	}
	return project(records, table), nil
}

// FindBookingByGuest searches the property's bookings by substring match on
// the guest-name and guest-email columns.
func (operationsClient *OperationsClient) FindBookingByGuest(ctx context.Context, propertyID string, query string, maxRecords int) (*types.BookingSearchResult, error) {
	trimmedQuery, err := validateQuery(query)
	if err != nil {
		return nil, err
	}
	property, table, err := operationsClient.resolveTable(propertyID, types.TableRoleBookings)
	if err != nil {
		return nil, err
	}
	if table.BookingGuest == nil {
		return nil, &types.ValidationError{Message: "bookings table has no guest name/email fields configured"}
	}

	records, err := operationsClient.Fetcher.Fetch(ctx, property.BaseID, table.Name, airtable.FetchOptions{
		View:            table.View,
		MaxRecords:      maxRecords,
		FilterByFormula: bookingGuestFormula(table.BookingGuest, trimmedQuery),
		Fields:          table.Fields,
	})
	if err != nil {
		return nil, err
	}

	return &types.BookingSearchResult{Bookings: project(records, table)}, nil
}
