// Package store defines the persistence interfaces for plants, reminders,
// care events, and health observations, plus the transaction helper the
// services use to group writes. Implementations live under
// internal/platform; the rest of the application depends only on these
// interfaces.
package store
