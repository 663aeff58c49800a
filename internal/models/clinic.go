package models

// Clinic is a medical facility found around a point on the live map. It is
// never persisted.
type Clinic struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Lat          float64 `json:"lat"`
	Lon          float64 `json:"lon"`
	Address      string  `json:"address"`
	Phone        string  `json:"phone"`
	Website      string  `json:"website,omitempty"`
	Email        string  `json:"email,omitempty"`
	OpeningHours string  `json:"openingHours,omitempty"`
	Emergency    string  `json:"emergency,omitempty"`
	Wheelchair   string  `json:"wheelchair,omitempty"`
	Beds         string  `json:"beds,omitempty"`
	Speciality   string  `json:"speciality,omitempty"`
	Type         string  `json:"type"`
}

// Location is a geocoded place.
type Location struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}
