// Package delivery contains the Delivery aggregate and its status lifecycle.
//
// The lifecycle is encoded as an explicit transition table plus a per-status
// effect table (see status.go) instead of a branch on the new status value, so
// illegal transitions are rejectable and side effects are auditable in one
// place. Command handlers apply the courier-side half of each effect.
package delivery
