// Package mockdata fetches the static mock data documents (users, vehicles,
// bookings and stats) and returns their decoded JSON.
package mockdata

// Resource names one of the mock data documents.
type Resource string

const (
	Users    Resource = "users"
	Vehicles Resource = "vehicles"
	Bookings Resource = "bookings"
	Stats    Resource = "stats"
)

// Path is the fixed request path of the resource.
func (r Resource) Path() string {
	return "/mock-data/" + string(r) + ".json"
}

// Resources lists every resource in a stable order.
func Resources() []Resource {
	return []Resource{Users, Vehicles, Bookings, Stats}
}
