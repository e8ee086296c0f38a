/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/stayops/airtable-booking-gateway/types"
)

// propertiesFromConfig parses the properties section of the config file into
// the typed registry model. Viper lower-cases map keys, so all lookups here
// use lower-case names regardless of the casing in the YAML.
func propertiesFromConfig() ([]*types.Property, error) {
	rawProperties, ok := viper.Get("properties").([]any)
	if !ok {
		return nil, fmt.Errorf("properties must be a list")
	}

	properties := []*types.Property{}
	for _, rawProperty := range rawProperties {
		propertyMap, ok := rawProperty.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("each property must be a mapping")
		}

		property := &types.Property{
			ID:          stringValue(propertyMap, "id"),
			DisplayName: stringValue(propertyMap, "displayname"),
			BaseID:      stringValue(propertyMap, "baseid"),
			Tables:      map[types.TableRole]*types.TableConfig{},
		}
		if property.ID == "" || property.BaseID == "" {
			return nil, fmt.Errorf("property is missing id or baseId")
		}

		rawTables, ok := propertyMap["tables"].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("property %s has no tables configured", property.ID)
		}
		for rawRole, rawTable := range rawTables {
			role := types.TableRole(rawRole)
			if !role.IsValidTableRole() {
				return nil, fmt.Errorf("property %s has unknown table role %q", property.ID, rawRole)
			}
			tableMap, ok := rawTable.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("table %s of property %s must be a mapping", rawRole, property.ID)
			}
			table, err := tableFromConfig(property.ID, role, tableMap)
			if err != nil {
				return nil, err
			}
			property.Tables[role] = table
		}

		properties = append(properties, property)
	}
	return properties, nil
}

func tableFromConfig(propertyID string, role types.TableRole, tableMap map[string]any) (*types.TableConfig, error) {
	table := &types.TableConfig{
		Name:   stringValue(tableMap, "name"),
		View:   stringValue(tableMap, "view"),
		Fields: stringSliceValue(tableMap, "fields"),
	}
	if table.Name == "" {
		return nil, fmt.Errorf("table %s of property %s has no remote name", role, propertyID)
	}
	if len(table.Fields) == 0 {
		return nil, fmt.Errorf("table %s of property %s has no field allow-list", role, propertyID)
	}

	switch role {
	case types.TableRoleBookings:
		checkin := stringValue(tableMap, "checkinfield")
		checkout := stringValue(tableMap, "checkoutfield")
		if checkin != "" && checkout != "" {
			table.Dates = &types.DateFields{Checkin: checkin, Checkout: checkout}
		}
		guestName := stringValue(tableMap, "guestnamefield")
		guestEmail := stringValue(tableMap, "guestemailfield")
		if guestName != "" || guestEmail != "" {
			table.BookingGuest = &types.BookingGuestFields{Name: guestName, Email: guestEmail}
		}
	case types.TableRoleGuests:
		guest := &types.GuestFields{
			FirstName: stringValue(tableMap, "firstnamefield"),
			LastName:  stringValue(tableMap, "lastnamefield"),
			FullName:  stringValue(tableMap, "fullnamefield"),
			Email:     stringValue(tableMap, "emailfield"),
		}
		if *guest != (types.GuestFields{}) {
			table.Guest = guest
		}
	}

	return table, nil
}

func stringValue(configMap map[string]any, key string) string {
	if value, ok := configMap[key].(string); ok {
		return value
	}
	return ""
}

func stringSliceValue(configMap map[string]any, key string) []string {
	rawValues, ok := configMap[key].([]any)
	if !ok {
		return nil
	}
	values := []string{}
	for _, rawValue := range rawValues {
		if value, ok := rawValue.(string); ok {
			values = append(values, value)
		}
	}
	return values
}
