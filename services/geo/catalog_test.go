package geo

import (
	"testing"

	"tembea/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegionsCatalog(t *testing.T) {
	names := Regions()
	assert.Contains(t, names, "Arusha")
	assert.Contains(t, names, "Zanzibar Urban/West")
}

func TestDistrictsLookup(t *testing.T) {
	districts, err := Districts("Arusha")
	require.NoError(t, err)
	assert.Contains(t, districts, "Karatu")

	_, err = Districts("Atlantis")
	assert.Error(t, err)
}

func TestWardsLookup(t *testing.T) {
	wards, err := Wards("Arusha", "Karatu")
	require.NoError(t, err)
	assert.Contains(t, wards, "Rhotia")

	// A district with no listed wards is still valid.
	wards, err = Wards("Kilimanjaro", "Hai")
	require.NoError(t, err)
	assert.Empty(t, wards)

	_, err = Wards("Kilimanjaro", "Karatu")
	assert.Error(t, err, "district from another region")
}

func TestStreetsLookup(t *testing.T) {
	streets, err := Streets("Arusha", "Karatu", "Karatu Mjini")
	require.NoError(t, err)
	assert.Equal(t, []string{"Ngorongoro Road"}, streets)

	_, err = Streets("Arusha", "Karatu", "Nowhere")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		loc     models.Location
		wantErr bool
	}{
		{"empty", models.Location{}, false},
		{"region only", models.Location{Region: "Mwanza"}, false},
		{"full chain", models.Location{Region: "Arusha", District: "Karatu", Ward: "Karatu Mjini", Street: "Ngorongoro Road"}, false},
		{"ward without streets", models.Location{Region: "Arusha", District: "Karatu", Ward: "Rhotia"}, false},
		{"unknown region", models.Location{Region: "Atlantis"}, true},
		{"district in wrong region", models.Location{Region: "Mwanza", District: "Karatu"}, true},
		{"district without region", models.Location{District: "Karatu"}, true},
		{"ward without district", models.Location{Region: "Arusha", Ward: "Rhotia"}, true},
		{"street without ward", models.Location{Region: "Arusha", District: "Karatu", Street: "Ngorongoro Road"}, true},
		{"unknown street", models.Location{Region: "Arusha", District: "Karatu", Ward: "Karatu Mjini", Street: "Fifth Avenue"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.loc)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
