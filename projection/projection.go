// Package projection enforces the per-table field allow-list on records
// returned by the remote store.
package projection

import "github.com/stayops/airtable-booking-gateway/types"

// Project rebuilds each record's field map keeping only the keys present in
// both the record and the allow-list. Values pass through verbatim; fields
// absent from the input stay absent. Pure and total.
func Project(records []types.Record, allowedFields []string) []types.Record {
	projected := make([]types.Record, 0, len(records))
	for _, record := range records {
		fields := make(map[string]any)
		for _, allowedField := range allowedFields {
			if value, ok := record.Fields[allowedField]; ok {
				fields[allowedField] = value
			}
		}
		projected = append(projected, types.Record{
			ID:     record.ID,
			Fields: fields,
		})
	}
	return projected
}
