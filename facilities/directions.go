package facilities

import (
	"fmt"
	"net/url"

	"github.com/hospice/hospital-locator-api/geo"
)

const directionsBaseURL = "https://www.google.com/maps/dir/"

// DirectionsURL builds a map-application deep link from origin to the facility.
// Curated records carry a destination address that is used verbatim.
func DirectionsURL(origin geo.Coordinate, f *Facility) string {
	destination := fmt.Sprintf("%f,%f", f.Latitude, f.Longitude)
	if f.DestinationAddress != "" {
		destination = f.DestinationAddress
	}

	params := url.Values{}
	params.Set("api", "1")
	params.Set("origin", fmt.Sprintf("%f,%f", origin.Latitude, origin.Longitude))
	params.Set("destination", destination)

	return directionsBaseURL + "?" + params.Encode()
}
