// Package kernel contains shared value objects used across aggregates.
package kernel
