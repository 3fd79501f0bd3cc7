package entity

// Region is one entry of the closed set of selectable delivery regions.
// Each region carries the default map framing used when no route points
// are available.
type Region struct {
	Country     string  `json:"country"`      // Country name, e.g. "South Africa".
	Name        string  `json:"name"`         // Region/province name, e.g. "Gauteng".
	CenterLat   float64 `json:"center_lat"`   // Default map center latitude.
	CenterLng   float64 `json:"center_lng"`   // Default map center longitude.
	DefaultZoom int     `json:"default_zoom"` // Default map zoom level.
}

// RegionSelection is the operator's active country/region choice.
type RegionSelection struct {
	Country string `json:"country"`
	Region  string `json:"region"`
}

// IsZero reports whether no region has been selected yet.
func (s RegionSelection) IsZero() bool {
	return s.Country == "" && s.Region == ""
}
