package models

import "time"

type Schedule struct {
	ID          int64     `json:"id"`
	RouteID     int64     `json:"routeId"`
	BusNumber   string    `json:"busNumber"`
	DepartureAt time.Time `json:"departureAt"`
	ArrivalAt   time.Time `json:"arrivalAt"`
	BasePrice   float64   `json:"basePrice"`
}

type Route struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	OriginCity      string `json:"originCity"`
	DestinationCity string `json:"destinationCity"`
}

type Station struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	City string `json:"city"`
}
