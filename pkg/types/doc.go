// Package types defines the Store and Collection interfaces, the record
// entities (passengers, tellers, destinations, tickets), the registration
// status enumeration, per-collection field schemas, and the standard error
// types for the boletera record-maintenance system.
package types
