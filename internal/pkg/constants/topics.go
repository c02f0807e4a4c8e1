package constants

// NSQ topics for ride lifecycle events
const (
	TopicRideRequested = "ride.requested"
	TopicRideAccepted  = "ride.accepted"
	TopicRideCancelled = "ride.cancelled"
	TopicRidePickedUp  = "ride.picked_up"
	TopicRideInTransit = "ride.in_transit"
	TopicRideCompleted = "ride.completed"
)
