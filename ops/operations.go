// Package ops implements the gateway's composed read operations. Each
// operation orchestrates the property registry, the formula builder, the
// table fetcher and the field projector; none of them writes to the remote
// store, retries, or caches.
package ops

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/stayops/airtable-booking-gateway/airtable"
	"github.com/stayops/airtable-booking-gateway/formula"
	"github.com/stayops/airtable-booking-gateway/projection"
	"github.com/stayops/airtable-booking-gateway/registry"
	"github.com/stayops/airtable-booking-gateway/types"
)

// DefaultRangeDays is the width of the booking range when the caller omits
// the end date.
const DefaultRangeDays = 31

// MinQueryLength is the shortest accepted guest search query. Shorter
// queries are rejected before any remote call.
const MinQueryLength = 2

type OperationsClient struct {
	Registry         registry.IRegistryClient
	Fetcher          airtable.IFetchClient
	DefaultRangeDays int
	Now              func() time.Time
	Logger           *logrus.Logger
}

func NewOperationsClient(registryClient registry.IRegistryClient, fetchClient airtable.IFetchClient, defaultRangeDays int, logger *logrus.Logger) *OperationsClient {
	if defaultRangeDays <= 0 {
		defaultRangeDays = DefaultRangeDays
	}
	return &OperationsClient{
		Registry:         registryClient,
		Fetcher:          fetchClient,
		DefaultRangeDays: defaultRangeDays,
		Now:              time.Now,
		Logger:           logger,
	}
}

// ListProperties returns the discovery projection of every configured
// property. No remote calls are made.
func (operationsClient *OperationsClient) ListProperties() *types.PropertiesResult {
	return &types.PropertiesResult{Properties: operationsClient.Registry.List()}
}

// GetProperty returns the discovery projection of a single property.
func (operationsClient *OperationsClient) GetProperty(propertyID string) (*types.PropertyResult, error) {
	property, err := operationsClient.Registry.Resolve(propertyID)
	if err != nil {
		return nil, err
	}
	return &types.PropertyResult{Property: registry.Summarize(property)}, nil
}

// today returns the process's current UTC date truncated to midnight.
func (operationsClient *OperationsClient) today() time.Time {
	now := operationsClient.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// resolveTable resolves a property and one of its table roles, failing with
// NotFoundError before any remote call when either is missing.
func (operationsClient *OperationsClient) resolveTable(propertyID string, role types.TableRole) (*types.Property, *types.TableConfig, error) {
	property, err := operationsClient.Registry.Resolve(propertyID)
	if err != nil {
		return nil, nil, err
	}
	table := property.Table(role)
	if table == nil {
		return nil, nil, &types.NotFoundError{Kind: "table role", ID: fmt.Sprintf("%s/%s", propertyID, role)}
	}
	return property, table, nil
}

func parseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(formula.DateLayout, value)
	if err != nil {
		return time.Time{}, &types.ValidationError{Message: fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", value)}
	}
	return parsed, nil
}

func validateQuery(query string) (string, error) {
	trimmed := strings.TrimSpace(query)
	if len(trimmed) < MinQueryLength {
		return "", &types.ValidationError{Message: fmt.Sprintf("query must be at least %d characters", MinQueryLength)}
	}
	return trimmed, nil
}

// guestSearchFormula builds the OR-substring predicate over the guest table's
// searchable columns. Unconfigured columns are skipped.
func guestSearchFormula(guestFields *types.GuestFields, query string) string {
	predicates := []formula.Expr{}
	for _, field := range []string{guestFields.FirstName, guestFields.LastName, guestFields.FullName, guestFields.Email} {
		if field != "" {
			predicates = append(predicates, formula.Contains(field, query))
		}
	}
	return formula.Or(predicates...).Formula()
}

// bookingGuestFormula builds the OR-substring predicate over the booking
// table's guest-name and guest-email columns.
func bookingGuestFormula(bookingGuestFields *types.BookingGuestFields, query string) string {
	predicates := []formula.Expr{}
	for _, field := range []string{bookingGuestFields.Name, bookingGuestFields.Email} {
		if field != "" {
			predicates = append(predicates, formula.Contains(field, query))
		}
	}
	return formula.Or(predicates...).Formula()
}

func project(records []types.Record, table *types.TableConfig) []types.Record {
	return projection.Project(records, table.Fields)
}
