// Package domain contains the core business entities and value objects of
// the plant care service: plants, care events, reminders, recurrence rules
// and health observations. It is independent of any delivery mechanism or
// storage backend.
package domain
