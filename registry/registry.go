package registry

import (
	"github.com/sirupsen/logrus"

	"github.com/stayops/airtable-booking-gateway/types"
)

type IRegistryClient interface {
	Resolve(propertyID string) (*types.Property, error)
	List() []types.PropertySummary
	All() []*types.Property
}

// RegistryClient holds the static property configuration loaded at process
// start. It is read-only for the process lifetime.
type RegistryClient struct {
	Properties []*types.Property
	Logger     *logrus.Logger
}

func NewRegistryClient(properties []*types.Property, logger *logrus.Logger) *RegistryClient {
	return &RegistryClient{
		Properties: properties,
		Logger:     logger,
	}
}

// Resolve returns the property with the exact given ID. There is no partial
// or fuzzy matching.
func (registryClient *RegistryClient) Resolve(propertyID string) (*types.Property, error) {
	for _, property := range registryClient.Properties {
		if property.ID == propertyID {
			return property, nil
		}
	}
	registryClient.Logger.Debugf("Property not found in registry: %s", propertyID)
	return nil, &types.NotFoundError{Kind: "property", ID: propertyID}
}

// List projects the configured properties for discovery. Only role names are
// exposed, never the per-table field allow-lists.
func (registryClient *RegistryClient) List() []types.PropertySummary {
	summaries := make([]types.PropertySummary, 0, len(registryClient.Properties))
	for _, property := range registryClient.Properties {
		summaries = append(summaries, Summarize(property))
	}
	return summaries
}

// Summarize builds the discovery projection of one property. Role order is
// fixed so the output is stable regardless of map iteration.
func Summarize(property *types.Property) types.PropertySummary {
	roles := make([]types.TableRole, 0, len(property.Tables))
	for _, role := range []types.TableRole{types.TableRoleBookings, types.TableRoleGuests, types.TableRoleContacts} {
		if property.Table(role) != nil {
			roles = append(roles, role)
		}
	}
	return types.PropertySummary{
		ID:          property.ID,
		DisplayName: property.DisplayName,
		BaseID:      property.BaseID,
		TableRoles:  roles,
	}
}

// All returns the properties in configuration order.
func (registryClient *RegistryClient) All() []*types.Property {
	return registryClient.Properties
}
