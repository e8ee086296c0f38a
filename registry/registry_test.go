package registry

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/stayops/airtable-booking-gateway/types"
)

func testProperties() []*types.Property {
	return []*types.Property{
		{
			ID:          "seaside",
			DisplayName: "Seaside Hotel",
			BaseID:      "appSeaside",
			Tables: map[types.TableRole]*types.TableConfig{
				types.TableRoleBookings: {Name: "Bookings", Fields: []string{"Guest Name", "Check-in"}},
				types.TableRoleGuests:   {Name: "Guests", Fields: []string{"First Name", "Email"}},
			},
		},
		{
			ID:          "alpine",
			DisplayName: "Alpine Lodge",
			BaseID:      "appAlpine",
			Tables: map[types.TableRole]*types.TableConfig{
				types.TableRoleContacts: {Name: "Contacts", Fields: []string{"Name"}},
			},
		},
	}
}

func TestRegistryClient_Resolve_ExactMatch(t *testing.T) {
	registryClient := NewRegistryClient(testProperties(), logrus.New())

	property, err := registryClient.Resolve("seaside")

	assert.NoError(t, err)
	assert.Equal(t, "Seaside Hotel", property.DisplayName)
}

func TestRegistryClient_Resolve_Unknown(t *testing.T) {
	registryClient := NewRegistryClient(testProperties(), logrus.New())

	property, err := registryClient.Resolve("sea")

	assert.Nil(t, property)
	var notFound *types.NotFoundError
	assert.ErrorAs(t, err, &notFound)
	assert.Equal(t, "sea", notFound.ID)
}

func TestRegistryClient_Resolve_NoPartialMatch(t *testing.T) {
	registryClient := NewRegistryClient(testProperties(), logrus.New())

	_, err := registryClient.Resolve("Seaside")
	assert.Error(t, err)
}

func TestRegistryClient_List_ExposesRolesNotFields(t *testing.T) {
	registryClient := NewRegistryClient(testProperties(), logrus.New())

	summaries := registryClient.List()

	assert.Len(t, summaries, 2)
	assert.Equal(t, "seaside", summaries[0].ID)
	assert.Equal(t, []types.TableRole{types.TableRoleBookings, types.TableRoleGuests}, summaries[0].TableRoles)
	assert.Equal(t, []types.TableRole{types.TableRoleContacts}, summaries[1].TableRoles)
}

func TestRegistryClient_All_KeepsConfigurationOrder(t *testing.T) {
	registryClient := NewRegistryClient(testProperties(), logrus.New())

	all := registryClient.All()

	assert.Len(t, all, 2)
	assert.Equal(t, "seaside", all[0].ID)
	assert.Equal(t, "alpine", all[1].ID)
}
