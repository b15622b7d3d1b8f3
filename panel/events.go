package panel

// EventKind enumerates the discrete notifications the simulation hands to
// whatever presents it: renderer, sound, or the online client forwarding
// attacks to the opponent.
type EventKind int

const (
	EventTilePopped EventKind = iota
	EventTileLanded
	EventComboStarted
	EventComboEnded
	EventMatchScored
	EventGarbageSent
	EventGarbageCountered
	EventGarbageReceived
	EventGarbageDropped
	EventRowRisen
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventTilePopped:
		return "tile-popped"
	case EventTileLanded:
		return "tile-landed"
	case EventComboStarted:
		return "combo-started"
	case EventComboEnded:
		return "combo-ended"
	case EventMatchScored:
		return "match-scored"
	case EventGarbageSent:
		return "garbage-sent"
	case EventGarbageCountered:
		return "garbage-countered"
	case EventGarbageReceived:
		return "garbage-received"
	case EventGarbageDropped:
		return "garbage-dropped"
	case EventRowRisen:
		return "row-risen"
	case EventGameOver:
		return "game-over"
	}
	return "unknown"
}

// Event carries the fields relevant to its kind; unused fields are zero.
type Event struct {
	Kind  EventKind
	X, Y  int
	Size  int // tiles in the match (EventMatchScored)
	Combo int
	Chain int
	Score int // attack score for the garbage events
}

// emit queues an event for the next snapshot. Snapshot() drains the queue,
// so each event is delivered exactly once.
func (g *Grid) emit(e Event) {
	g.pendingEvents = append(g.pendingEvents, e)
}
