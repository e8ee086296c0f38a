package ops

import (
	"context"

	"github.com/stayops/airtable-booking-gateway/airtable"
	"github.com/stayops/airtable-booking-gateway/types"
)

// ListContacts returns the property's contact records, unfiltered.
func (operationsClient *OperationsClient) ListContacts(ctx context.Context, propertyID string, maxRecords int) (*types.ContactsResult, error) {
	property, table, err := operationsClient.resolveTable(propertyID, types.TableRoleContacts)
	if err != nil {
		return nil, err
	}

	records, err := operationsClient.Fetcher.Fetch(ctx, property.BaseID, table.Name, airtable.FetchOptions{
		View:       table.View,
		MaxRecords: maxRecords,
		Fields:     table.Fields,
	})
	if err != nil {
		return nil, err
	}

	return &types.ContactsResult{Contacts: project(records, table)}, nil
}
