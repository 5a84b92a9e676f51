package main

import (
	"log"
	"net/http"
)

func registerRoutes(mux *http.ServeMux, dataDir string, h *wsHub, p *poller) {
	mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("/ws", handleWebSocket(h, p))
	mux.HandleFunc("/gtfs-rt/vehicles.pb", handleVehicleFeed(p))

	fs := http.FileServer(http.Dir(dataDir))
	mux.Handle("/mock-data/", withLogging(fs))
}

func withLogging(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("%s %s", r.Method, r.URL.Path)
		h.ServeHTTP(w, r)
	})
}
