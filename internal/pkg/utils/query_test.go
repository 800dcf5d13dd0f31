package utils

import (
	"net/url"
	"provider-leads-service/internal/app/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildProviderQuery(t *testing.T) {
	t.Run("Only Non Empty Fields", func(t *testing.T) {
		filter := models.ProviderFilter{
			TaxonomyDescription: "Cardiology",
			State:               "NY",
		}

		query := BuildProviderQuery(filter)

		values, err := url.ParseQuery(query)
		require.NoError(t, err)
		assert.Len(t, values, 2)
		assert.Equal(t, "Cardiology", values.Get("taxonomy_description"))
		assert.Equal(t, "NY", values.Get("state"))
	})

	t.Run("Empty Filter", func(t *testing.T) {
		assert.Equal(t, "", BuildProviderQuery(models.ProviderFilter{}))
	})

	t.Run("Values Are URL Encoded", func(t *testing.T) {
		filter := models.ProviderFilter{
			TaxonomyDescription: "Internal Medicine",
			OrganizationName:    "Smith & Sons",
		}

		query := BuildProviderQuery(filter)

		assert.Equal(t, "organization_name=Smith+%26+Sons&taxonomy_description=Internal+Medicine", query)
	})

	t.Run("All Fields", func(t *testing.T) {
		filter := models.ProviderFilter{
			TaxonomyDescription: "Neurology",
			State:               "CA",
			EnumerationType:     "NPI-1",
			AddressPurpose:      "LOCATION",
			FirstName:           "Jane",
			LastName:            "Doe",
			OrganizationName:    "Clinic",
			City:                "Fresno",
			PostalCode:          "93701",
		}

		values, err := url.ParseQuery(BuildProviderQuery(filter))
		require.NoError(t, err)
		assert.Len(t, values, 9)
		assert.Equal(t, "NPI-1", values.Get("enumeration_type"))
		assert.Equal(t, "93701", values.Get("postal_code"))
	})
}

func TestFilterBadges(t *testing.T) {
	filter := models.ProviderFilter{State: "TX", City: "Austin"}

	badges := FilterBadges(filter)

	require.Len(t, badges, 2)
	assert.Equal(t, "state", badges[0].Key)
	assert.Equal(t, "TX", badges[0].Value)
	assert.Equal(t, "city", badges[1].Key)
}
