package api

import "github.com/ecotrip/go-trip-carbon/internal/registry"

type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}
type Feature struct {
	Type       string         `json:"type"`
	Geometry   Geometry       `json:"geometry"`
	Properties map[string]any `json:"properties"`
}
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// toGeoJSON renders the city registry as a FeatureCollection so map frontends
// can plot selectable cities directly.
func toGeoJSON(reg *registry.Registry) FeatureCollection {
	names := reg.List()
	features := make([]Feature, 0, len(names))

	for _, name := range names {
		coords, err := reg.Lookup(name)
		if err != nil {
			continue
		}
		f := Feature{
			Type: "Feature",
			Geometry: Geometry{
				Type:        "Point",
				Coordinates: []float64{coords.Longitude, coords.Latitude},
			},
			Properties: map[string]any{
				"name": name,
			},
		}
		features = append(features, f)
	}

	return FeatureCollection{
		Type:     "FeatureCollection",
		Features: features,
	}
}
