package constants

// Redis key formats
const (
	// Geospatial set of available driver locations
	KeyDriverGeo = "drivers:geo"

	// KeyDriverLocation holds the last reported location of a driver.
	// Format: driver:location:{driver_id}
	KeyDriverLocation = "driver:location:%s"

	// Rate limiting. Format: rate:limit:{path}:{identifier}
	KeyRateLimit = "rate:limit"
)
