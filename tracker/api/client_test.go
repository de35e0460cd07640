package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tautracker/tracker/scrape"

	"github.com/stretchr/testify/require"
)

func jsonHandler(t testing.TB, wantPath string, response string, capture *map[string]any) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, wantPath, r.URL.EscapedPath())
		if capture != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(capture))
		}
		w.Header().Set("content-type", "application/json")
		_, _ = w.Write([]byte(response))
	}
}

func TestAddCareerTasks(t *testing.T) {
	var payload map[string]any
	server := httptest.NewServer(jsonHandler(
		t, "/v1/career-task/add",
		`{"recorded": true, "factor": 1.23456, "system_factors": {"Taungoo Station": 0.9}}`,
		&payload,
	))
	defer server.Close()

	client := NewClient(server.URL+"/v1/", "secret")
	res, err := client.AddCareerTasks(
		context.Background(),
		scrape.Location{Station: "Tau Station", System: "Sol"},
		scrape.CareerTasks{
			Career: "Technologist",
			Rank:   "Fuel Technician",
			Tasks:  map[string]string{"Trade Goods": "1,234"},
		},
	)
	require.NoError(t, err)

	require.Equal(t, "secret", payload["token"])
	require.Equal(t, ScriptVersion, payload["script_version"])
	require.Equal(t, "Tau Station", payload["station"])
	require.Equal(t, "Sol", payload["system"])
	require.Equal(t, map[string]any{"Trade Goods": "1,234"}, payload["tasks"])

	require.True(t, res.Recorded)
	require.NotNil(t, res.Factor)
	require.Equal(t, 1.23456, *res.Factor)
	require.Equal(t, map[string]float64{"Taungoo Station": 0.9}, res.SystemFactors)
}

func TestAddCareerTasksRejection(t *testing.T) {
	server := httptest.NewServer(jsonHandler(
		t, "/v1/career-task/add",
		`{"recorded": false, "message": "Invalid token"}`,
		nil,
	))
	defer server.Close()

	client := NewClient(server.URL+"/v1/", "bogus")
	res, err := client.AddCareerTasks(context.Background(), scrape.Location{}, scrape.CareerTasks{})
	require.NoError(t, err)
	require.False(t, res.Recorded)
	require.Equal(t, "Invalid token", res.Message)
}

func TestAddDistancesPayloadShape(t *testing.T) {
	var payload map[string]any
	server := httptest.NewServer(jsonHandler(
		t, "/v1/distance/add",
		`{"recorded": true, "message": "Success"}`,
		&payload,
	))
	defer server.Close()

	client := NewClient(server.URL+"/v1/", "secret")
	res, err := client.AddDistances(
		context.Background(),
		scrape.Location{Station: "Tau Station", System: "Sol"},
		[]scrape.Schedule{{
			Destination: "Nouveau Limoges",
			Legs: []scrape.ShuttleLeg{
				{Departure: "198.04/51:902", DistanceKm: 1234},
			},
		}},
	)
	require.NoError(t, err)
	require.True(t, res.Recorded)

	require.Equal(t, "Tau Station", payload["source"])
	schedules := payload["schedules"].([]any)
	require.Len(t, schedules, 1)
	schedule := schedules[0].(map[string]any)
	require.Equal(t, "Nouveau Limoges", schedule["destination"])
	legs := schedule["distances"].([]any)
	require.Equal(t, []any{"198.04/51:902", float64(1234)}, legs[0])
}

func TestAddShipsSuccessKey(t *testing.T) {
	var payload map[string]any
	server := httptest.NewServer(jsonHandler(
		t, "/v1/ship/add",
		`{"success": true, "num_recorded": 2}`,
		&payload,
	))
	defer server.Close()

	client := NewClient(server.URL+"/v1/", "secret")
	res, err := client.AddShips(
		context.Background(),
		scrape.Location{Station: "Taungoo Station", System: "Sol"},
		[]scrape.Ship{
			{Name: "Razorback", Captain: "Dotsent", Registration: "YZ-2204", Class: "Freighter"},
			{Name: "Wanderer", Captain: "Kol", Registration: "unknown", Class: "unknown"},
		},
	)
	require.NoError(t, err)
	require.True(t, res.Success)
	require.Equal(t, 2, res.NumRecorded)

	ships := payload["ships"].([]any)
	require.Len(t, ships, 2)
	require.Equal(t, "unknown", ships[1].(map[string]any)["registration"])
}

func TestAddItemFlattensAspect(t *testing.T) {
	var payload map[string]any
	server := httptest.NewServer(jsonHandler(
		t, "/v1/item/add",
		`{"recorded": true, "message": ""}`,
		&payload,
	))
	defer server.Close()

	client := NewClient(server.URL+"/v1/", "secret")
	_, err := client.AddItem(context.Background(), scrape.ItemRecord{
		Slug:   "two-handed-sword",
		Name:   "Two-Handed Sword",
		MassKg: 12.5,
		Rarity: "Rare",
		Type:   "Weapon",
		Tier:   2,
		Weapon: &scrape.WeaponAspect{
			Accuracy:       0.7,
			HandToHand:     true,
			Range:          "Short",
			WeaponType:     "Blade",
			PiercingDamage: 6.31,
			ImpactDamage:   4.2,
		},
	})
	require.NoError(t, err)

	require.Equal(t, "two-handed-sword", payload["slug"])
	require.Equal(t, 0.7, payload["accuracy"])
	require.Equal(t, true, payload["hand_to_hand"])
	require.Equal(t, "Blade", payload["weapon_type"])
	_, hasArmor := payload["piercing_defense"]
	require.False(t, hasArmor)
}

func TestStationNeedsUpdateEscapesNames(t *testing.T) {
	server := httptest.NewServer(jsonHandler(
		t, "/v1/career-task/station-needs-update/YZ%20Ceti/Cape%20Verde%20Stronghold",
		`{"needs_update": true}`,
		nil,
	))
	defer server.Close()

	client := NewClient(server.URL+"/v1/", "secret")
	needsUpdate, err := client.StationNeedsUpdate(context.Background(), scrape.Location{
		Station: "Cape Verde Stronghold",
		System:  "YZ Ceti",
	})
	require.NoError(t, err)
	require.True(t, needsUpdate)
}

func TestTransportFailure(t *testing.T) {
	client := NewClient("http://127.0.0.1:1/v1/", "secret")
	_, err := client.AddFuel(context.Background(), scrape.Location{}, scrape.FuelQuote{FuelGrams: 60, Price: 25.5})
	require.Error(t, err)
}
