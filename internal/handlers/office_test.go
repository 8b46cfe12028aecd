package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teamdash-backend/internal/models"
)

func TestCreateOfficeRequiresAdmin(t *testing.T) {
	router, _ := setupTest(t)

	admin := adminToken(t, router)
	employee := registerEmployee(t, router, admin, "jane")

	payload := map[string]any{"name": "HQ", "latitude": 40.7128, "longitude": -74.0060}

	w := doJSON(t, router, http.MethodPost, "/api/office-locations", employee, payload)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/office-locations", admin, payload)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateOfficeDefaultRadius(t *testing.T) {
	router, _ := setupTest(t)

	admin := adminToken(t, router)
	w := doJSON(t, router, http.MethodPost, "/api/office-locations", admin, map[string]any{
		"name":      "HQ",
		"latitude":  40.7128,
		"longitude": -74.0060,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var location models.OfficeLocation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &location))
	assert.Equal(t, 100, location.RadiusMeters)
}

func TestCreateOfficeRejectsNonPositiveRadius(t *testing.T) {
	router, _ := setupTest(t)

	admin := adminToken(t, router)
	w := doJSON(t, router, http.MethodPost, "/api/office-locations", admin, map[string]any{
		"name":          "HQ",
		"latitude":      40.7128,
		"longitude":     -74.0060,
		"radius_meters": -5,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListOfficesIsPublic(t *testing.T) {
	router, _ := setupTest(t)

	admin := adminToken(t, router)
	w := doJSON(t, router, http.MethodPost, "/api/office-locations", admin, map[string]any{
		"name":      "HQ",
		"latitude":  40.7128,
		"longitude": -74.0060,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/office-locations", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var locations []models.OfficeLocation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &locations))
	require.Len(t, locations, 1)
	assert.Equal(t, "HQ", locations[0].Name)
}
