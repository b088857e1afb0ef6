// Package care implements the care scheduling policy of the service: the
// per-category care strategies, the resolver that picks a strategy for a
// plant, and the generator that turns strategy tables and care history into
// concrete reminders. All computation here is pure; persistence and season
// resolution are the caller's concern.
package care
