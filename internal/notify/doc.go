// Package notify implements the best-effort announcement side-channel.
//
// Announcements never affect store correctness: whether the failure is a
// missing channel, a denied permission, a delivery error or an exhausted
// rate budget, it degrades to a silent (logged) drop.
//
// The permission flow is an explicit three-state machine owned by
// [GatedNotifier]: unknown transitions exactly once to granted or denied
// on the user's decision, and both outcomes are terminal for the process
// lifetime. The platform does not allow re-asking once answered, so the
// machine never loops back to unknown.
//
// [Limited] wraps any notifier with a token-bucket budget so a burst of
// mutations does not flood the user's desktop.
package notify
