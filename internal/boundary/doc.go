// Package boundary provides a fault-isolation boundary for Bubble Tea views.
//
// A Boundary mounts a guarded subtree (any tea.Model) and contains panics
// raised while the subtree is built, initialised, updated or rendered. A
// contained failure is reported once to a Reporter and the subtree is replaced
// by a fallback view with a single retry action.
//
// State machine:
//
//	Healthy ──failure──▶ Failed ──Retry──▶ Recovering ──remount ok──▶ Healthy
//	                        ▲                   │
//	                        └──remount fails────┘
//
// Recovery is always user-initiated. There is no timer, backoff or failure
// budget. A panic raised by the Reporter is not contained.
package boundary
