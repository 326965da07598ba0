package runner

// EventKind identifies what happened to an object during a tick.
type EventKind int

const (
	EventSpawned EventKind = iota
	EventCollected
	EventExited
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventSpawned:
		return "spawned"
	case EventCollected:
		return "collected"
	case EventExited:
		return "exited"
	default:
		return "unknown"
	}
}

// Event records a lifecycle change of one object.
type Event struct {
	Kind     EventKind
	Frame    int
	ObjectID int
	Variant  Kind
	Lane     Lane
	Points   int // Score change; zero unless collected
}

// KindStats counts lifecycle events for one variant.
type KindStats struct {
	Spawned   int
	Collected int
	Exited    int
}

// Stats counts lifecycle events per variant since Reset.
type Stats struct {
	ByKind [kindCount]KindStats
}

func (s *Stats) record(e Event) {
	ks := &s.ByKind[e.Variant]
	switch e.Kind {
	case EventSpawned:
		ks.Spawned++
	case EventCollected:
		ks.Collected++
	case EventExited:
		ks.Exited++
	}
}

// Total sums the counters over all variants.
func (s Stats) Total() KindStats {
	var t KindStats
	for _, ks := range s.ByKind {
		t.Spawned += ks.Spawned
		t.Collected += ks.Collected
		t.Exited += ks.Exited
	}
	return t
}

// ObjectSnapshot is the observable state of one live object.
type ObjectSnapshot struct {
	ID   int
	Kind Kind
	Lane Lane
	X, Y int
}

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Frame   int
	Score   int
	PlayerX int
	Objects []ObjectSnapshot
	Stats   Stats
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	objs := make([]ObjectSnapshot, 0, len(g.objects))
	for _, o := range g.objects {
		objs = append(objs, ObjectSnapshot{
			ID:   o.id,
			Kind: o.kind,
			Lane: o.lane,
			X:    o.x,
			Y:    o.y,
		})
	}
	px, _ := g.player.BoundingBox().Center()
	return Snapshot{
		Frame:   g.frame,
		Score:   g.score,
		PlayerX: px,
		Objects: objs,
		Stats:   g.stats,
	}
}
