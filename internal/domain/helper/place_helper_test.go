package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MuTeLu-App/internal/domain/model"
)

// バンコク周辺のテスト用スポット
func testPlaces() []model.Place {
	return []model.Place{
		{ID: "erawan", NameEN: "Erawan Shrine", Latitude: 13.744340, Longitude: 100.540330, Tags: []string{"shrine", "luck"}, Rating: 4.7},
		{ID: "trimurti", NameEN: "Trimurti Shrine", Latitude: 13.746210, Longitude: 100.539950, Tags: []string{"shrine", "love"}, Rating: 4.5},
		{ID: "watpho", NameEN: "Wat Pho", Latitude: 13.746540, Longitude: 100.492970, Tags: []string{"temple", "health"}, Rating: 4.8},
	}
}

func TestDistanceMeters(t *testing.T) {
	a := model.LatLng{Lat: 13.744340, Lng: 100.540330}
	b := model.LatLng{Lat: 13.746210, Lng: 100.539950}

	d := DistanceMeters(a, b)
	assert.InDelta(t, 212, d, 15)
	assert.Equal(t, 0.0, DistanceMeters(a, a))
}

func TestWithinRadius(t *testing.T) {
	places := testPlaces()
	near := model.LatLng{Lat: 13.744500, Lng: 100.540300} // 約20m
	far := model.LatLng{Lat: 13.750000, Lng: 100.540330}  // 約630m

	assert.True(t, WithinRadius(near, &places[0], model.DefaultCheckInRadiusMeters))
	assert.False(t, WithinRadius(far, &places[0], model.DefaultCheckInRadiusMeters))
}

func TestFilterByTag(t *testing.T) {
	shrines := FilterByTag(testPlaces(), "shrine")
	assert.Len(t, shrines, 2)

	none := FilterByTag(testPlaces(), "money")
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestFilterByBound(t *testing.T) {
	bound, err := NewBound(100.53, 13.74, 100.55, 13.75)
	require.NoError(t, err)

	got := FilterByBound(testPlaces(), bound)
	require.Len(t, got, 2)
	assert.Equal(t, "erawan", got[0].ID)
	assert.Equal(t, "trimurti", got[1].ID)
}

func TestNewBound_Invalid(t *testing.T) {
	_, err := NewBound(100.55, 13.74, 100.53, 13.75)
	assert.Error(t, err)

	_, err = NewBound(-200, 13.74, 100.53, 13.75)
	assert.Error(t, err)
}

func TestFindNearby(t *testing.T) {
	origin := model.LatLng{Lat: 13.746300, Lng: 100.539900}

	got := FindNearby(origin, testPlaces(), 1000)
	require.Len(t, got, 2)
	assert.Equal(t, "trimurti", got[0].ID)
	assert.Equal(t, "erawan", got[1].ID)
}

func TestFindByIDAndHighestRated(t *testing.T) {
	places := testPlaces()

	p, ok := FindByID(places, "watpho")
	require.True(t, ok)
	assert.Equal(t, "Wat Pho", p.NameEN)

	_, ok = FindByID(places, "missing")
	assert.False(t, ok)

	assert.Equal(t, "watpho", FindHighestRated(places).ID)
	assert.Nil(t, FindHighestRated(nil))
}

func TestSortByRating(t *testing.T) {
	places := testPlaces()
	SortByRating(places)
	assert.Equal(t, "watpho", places[0].ID)
	assert.Equal(t, "trimurti", places[2].ID)
}

func TestMapsURL(t *testing.T) {
	p := testPlaces()[0]
	assert.Equal(t, "http://maps.apple.com/?daddr=13.744340,100.540330&dirflg=d", MapsURL(&p))
}
