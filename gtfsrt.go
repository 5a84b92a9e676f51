package main

import (
	"log"
	"net/http"

	gtfs "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"github.com/dsk-ducdn2/car-rental-app-sub001/mockdata"
	"google.golang.org/protobuf/proto"
)

// vehicleFeed converts the vehicles of a snapshot into a GTFS-realtime
// VehiclePositions feed.
func vehicleFeed(snap mockdata.Snapshot) *gtfs.FeedMessage {
	vehicles := vehiclesFrom(snap.Vehicles)
	feed := &gtfs.FeedMessage{
		Header: &gtfs.FeedHeader{
			GtfsRealtimeVersion: proto.String("2.0"),
			Incrementality:      gtfs.FeedHeader_FULL_DATASET.Enum(),
			Timestamp:           proto.Uint64(uint64(snap.FetchedAt / 1000)),
		},
		Entity: make([]*gtfs.FeedEntity, 0, len(vehicles)),
	}
	for _, v := range vehicles {
		feed.Entity = append(feed.Entity, &gtfs.FeedEntity{
			Id: proto.String(v.ID),
			Vehicle: &gtfs.VehiclePosition{
				Vehicle: &gtfs.VehicleDescriptor{Id: proto.String(v.ID)},
				Position: &gtfs.Position{
					Latitude:  proto.Float32(float32(v.Lat)),
					Longitude: proto.Float32(float32(v.Lon)),
				},
				Timestamp: proto.Uint64(uint64(snap.FetchedAt / 1000)),
			},
		})
	}
	return feed
}

func handleVehicleFeed(p *poller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := p.snapshot()
		if snap == nil {
			http.Error(w, "no snapshot yet", http.StatusServiceUnavailable)
			return
		}
		body, err := proto.Marshal(vehicleFeed(*snap))
		if err != nil {
			log.Printf("gtfs-rt encode error: %v", err)
			http.Error(w, "encode error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/x-protobuf")
		_, _ = w.Write(body)
	}
}
