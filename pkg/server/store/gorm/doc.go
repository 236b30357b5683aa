// Package gorm provides GORM-based implementations of the store interfaces
// defined in the parent store package.
//
// Uniqueness and foreign key preconditions are checked with reads before
// each write. The database constraints remain the second line of defense:
// a race between two concurrent creates surfaces as a Postgres constraint
// violation, which these stores translate back into the same sentinel
// errors the pre-checks produce.
package gorm
