// Package courier contains the Courier aggregate: availability state, the QR
// badge identifier, and the rating aggregation that feeds assignment and
// reporting.
package courier
