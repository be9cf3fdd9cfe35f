package boundary

// State is the boundary's lifecycle variant. The zero value is Healthy.
//
// The two observable flags (failed, recovering) are derived from it, so the
// combination "recovering but not failed" cannot be represented.
type State int

const (
	Healthy    State = iota // guarded subtree is mounted and rendered
	Failed                  // fallback shown, retry enabled
	Recovering              // fallback shown, retry disabled while the remount runs
)

func (s State) String() string {
	switch s {
	case Healthy:
		return "Healthy"
	case Failed:
		return "Failed"
	case Recovering:
		return "Recovering"
	default:
		return "Unknown"
	}
}

// Phase names the point in the subtree's lifecycle where a failure happened.
type Phase string

const (
	PhaseMount  Phase = "mount"  // building the subtree
	PhaseInit   Phase = "init"   // the subtree's Init
	PhaseUpdate Phase = "update" // the subtree's Update
	PhaseRender Phase = "render" // the subtree's View
	PhaseRetry  Phase = "retry"  // remounting after a user retry
)
