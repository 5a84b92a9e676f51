package main

import (
	"strconv"
)

// vehiclesFrom walks a decoded vehicles.json value: either a top-level array
// or an object wrapping one under "vehicles". Elements without an id or a
// usable position are skipped.
func vehiclesFrom(v any) []Vehicle {
	arr, ok := v.([]any)
	if !ok {
		root, _ := v.(map[string]any)
		arr, _ = root["vehicles"].([]any)
	}
	vehicles := make([]Vehicle, 0, len(arr))
	for _, elem := range arr {
		m, _ := elem.(map[string]any)
		if m == nil {
			continue
		}
		id := firstString(m, "id", "vehicleId", "plate")
		lat, lon := firstFloat(m, "lat", "latitude"), firstFloat(m, "lon", "lng", "longitude")
		if loc, ok := m["location"].(map[string]any); ok && lat == 0 && lon == 0 {
			lat, lon = firstFloat(loc, "lat", "latitude"), firstFloat(loc, "lon", "lng", "longitude")
		}
		if id == "" || (lat == 0 && lon == 0) {
			continue
		}
		vehicles = append(vehicles, Vehicle{ID: id, Lat: lat, Lon: lon})
	}
	return vehicles
}

func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s := stringFrom(m[k]); s != "" {
			return s
		}
	}
	return ""
}

func firstFloat(m map[string]any, keys ...string) float64 {
	for _, k := range keys {
		if f := floatFrom(m[k]); f != 0 {
			return f
		}
	}
	return 0
}

func stringFrom(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

func floatFrom(v any) float64 {
	switch v := v.(type) {
	case float64:
		return v
	case string:
		f, _ := strconv.ParseFloat(v, 64)
		return f
	default:
		return 0
	}
}
