package main

// Vehicle is the position record extracted from vehicles.json for the
// GTFS-realtime export.
type Vehicle struct {
	ID  string  `json:"id"`
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}
