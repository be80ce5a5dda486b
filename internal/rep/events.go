package rep

// EventKind identifies what a counter event announces.
type EventKind string

const (
	// KindRepCompleted fires once per completed repetition.
	KindRepCompleted EventKind = "rep_completed"
	// KindMilestone fires when the count hits a configured milestone
	// below the target.
	KindMilestone EventKind = "milestone"
	// KindSessionComplete fires exactly once, when the count reaches
	// the target.
	KindSessionComplete EventKind = "session_complete"
)

// Event is a feedback event produced by the Counter and consumed at
// most once by whoever announces progress to the user.
type Event struct {
	Kind   EventKind
	Count  int
	Target int
}
