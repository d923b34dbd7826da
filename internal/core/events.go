package core

// EventKind classifies a feedback event emitted by a simulation frame.
type EventKind int

const (
	EventShoot   EventKind = iota // Projectile volley left the craft
	EventHit                      // Something took damage without dying
	EventDestroy                  // A hostile was destroyed
	EventPickup                   // The craft collected a pickup
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventShoot:
		return "Shoot"
	case EventHit:
		return "Hit"
	case EventDestroy:
		return "Destroy"
	case EventPickup:
		return "Pickup"
	default:
		return "Unknown"
	}
}

// Event is a fire-and-forget feedback signal for the platform layer, used to
// drive audio. X is the horizontal position of the source normalized to
// [0, 1] so sounds can be panned; it never feeds back into the simulation.
type Event struct {
	Kind EventKind
	X    float64
}
