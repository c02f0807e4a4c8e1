package models

// UserStats aggregates account counts for the admin dashboard
type UserStats struct {
	TotalUsers        int `json:"total_users" db:"total_users"`
	BlockedUsers      int `json:"blocked_users" db:"blocked_users"`
	TotalRiders       int `json:"total_riders" db:"total_riders"`
	TotalDrivers      int `json:"total_drivers" db:"total_drivers"`
	NewUsersLast7Days int `json:"new_users_last_7_days" db:"new_users_last_7_days"`
	NewUsersLast30Day int `json:"new_users_last_30_days" db:"new_users_last_30_days"`
}

// DriverStats aggregates driver profile counts
type DriverStats struct {
	TotalDrivers        int `json:"total_drivers" db:"total_drivers"`
	ApprovedDrivers     int `json:"approved_drivers" db:"approved_drivers"`
	AvailableDrivers    int `json:"available_drivers" db:"available_drivers"`
	SuspendedDrivers    int `json:"suspended_drivers" db:"suspended_drivers"`
	NewDriversLast7Days int `json:"new_drivers_last_7_days" db:"new_drivers_last_7_days"`
	NewDriversLast30Day int `json:"new_drivers_last_30_days" db:"new_drivers_last_30_days"`
}

// RideStats aggregates ride counts and revenue
type RideStats struct {
	TotalRides        int     `json:"total_rides" db:"total_rides"`
	CompletedRides    int     `json:"completed_rides" db:"completed_rides"`
	CancelledRides    int     `json:"cancelled_rides" db:"cancelled_rides"`
	ActiveRides       int     `json:"active_rides" db:"active_rides"`
	RidesToday        int     `json:"rides_today" db:"rides_today"`
	NewRidesLast7Days int     `json:"new_rides_last_7_days" db:"new_rides_last_7_days"`
	UniqueRiders      int     `json:"unique_riders" db:"unique_riders"`
	UniqueDrivers     int     `json:"unique_drivers" db:"unique_drivers"`
	TotalRevenue      float64 `json:"total_revenue" db:"total_revenue"`
}

// PlatformStats bundles all aggregate views for the admin dashboard
type PlatformStats struct {
	Users   UserStats   `json:"users"`
	Drivers DriverStats `json:"drivers"`
	Rides   RideStats   `json:"rides"`
}
