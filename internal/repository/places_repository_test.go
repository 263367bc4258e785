package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogJSON = `[
  {
    "nameTH": "ศาลพระพรหมเอราวัณ",
    "nameEN": "Erawan Shrine",
    "descriptionTH": "ศาลพระพรหม",
    "descriptionEN": "Famous Brahma shrine",
    "locationTH": "ราชประสงค์ กรุงเทพฯ",
    "locationEN": "Ratchaprasong, Bangkok",
    "latitude": 13.74434,
    "longitude": 100.54033,
    "imageName": "erawan",
    "tags": ["shrine", " luck ", "luck", ""],
    "rating": 4.7,
    "details": [
      {"key": {"th": "เวลาเปิด", "en": "Opening hours"}, "value": {"th": "06:00-23:00", "en": "06:00-23:00"}}
    ]
  },
  {
    "id": "wat-pho",
    "nameTH": "วัดโพธิ์",
    "nameEN": "Wat Pho",
    "locationEN": "Phra Nakhon, Bangkok",
    "latitude": 13.74654,
    "longitude": 100.49297,
    "tags": ["temple", "health"],
    "rating": 4.8
  }
]`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "places.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestStablePlaceID(t *testing.T) {
	a := StablePlaceID("Erawan Shrine", "Ratchaprasong, Bangkok")
	b := StablePlaceID("  erawan shrine ", "RATCHAPRASONG, BANGKOK")
	c := StablePlaceID("Wat Pho", "Phra Nakhon, Bangkok")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	_, err := uuid.Parse(a)
	assert.NoError(t, err)
}

func TestJSONPlacesRepository_GetAll(t *testing.T) {
	repo := NewJSONPlacesRepository(writeCatalog(t, catalogJSON))

	places, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, places, 2)

	erawan := places[0]
	assert.Equal(t, StablePlaceID("Erawan Shrine", "Ratchaprasong, Bangkok"), erawan.ID)
	assert.Equal(t, []string{"shrine", "luck"}, erawan.Tags)
	require.Len(t, erawan.Details, 1)
	assert.Equal(t, "Opening hours", erawan.Details[0].Key.EN)

	assert.Equal(t, "wat-pho", places[1].ID)
}

func TestJSONPlacesRepository_IDsStableAcrossReloads(t *testing.T) {
	repo := NewJSONPlacesRepository(writeCatalog(t, catalogJSON))

	first, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	second, err := repo.GetAll(context.Background())
	require.NoError(t, err)

	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
	}
}

func TestJSONPlacesRepository_Errors(t *testing.T) {
	_, err := NewJSONPlacesRepository(filepath.Join(t.TempDir(), "none.json")).GetAll(context.Background())
	assert.Error(t, err)

	_, err = NewJSONPlacesRepository(writeCatalog(t, `{"not": "an array"}`)).GetAll(context.Background())
	assert.Error(t, err)

	empty, err := NewJSONPlacesRepository(writeCatalog(t, `[]`)).GetAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestDecodePlaceRows_GeoPointLocation(t *testing.T) {
	data := []byte(`[
		{"id": "p1", "nameEN": "A", "latitude": 1, "longitude": 2, "tags": ["temple"],
		 "location": {"type": "Point", "coordinates": [100.5, 13.7]}},
		{"id": "p2", "nameEN": "B", "latitude": 13.1, "longitude": 100.1, "tags": ["shrine"]}
	]`)

	places, err := decodePlaceRows(data)
	require.NoError(t, err)
	require.Len(t, places, 2)

	assert.Equal(t, 13.7, places[0].Latitude)
	assert.Equal(t, 100.5, places[0].Longitude)
	assert.Equal(t, 13.1, places[1].Latitude)
	assert.Equal(t, 100.1, places[1].Longitude)
}

func TestGeoPointToLatLng(t *testing.T) {
	_, _, ok := GeoPointToLatLng(nil)
	assert.False(t, ok)

	_, _, ok = GeoPointToLatLng(&GeoPoint{Type: "Point", Coordinates: []float64{1}})
	assert.False(t, ok)

	lat, lng, ok := GeoPointToLatLng(&GeoPoint{Type: "Point", Coordinates: []float64{100.5, 13.7}})
	assert.True(t, ok)
	assert.Equal(t, 13.7, lat)
	assert.Equal(t, 100.5, lng)
}
