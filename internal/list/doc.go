// Package list provides an insertion-ordered set with O(1) removal by key,
// used by eviction policies that need to drop arbitrary members.
package list
