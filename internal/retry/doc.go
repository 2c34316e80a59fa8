// Package retry provides bounded fixed-delay retry logic for transient failures.
//
// The [Do] function retries an operation with configurable attempts and delay.
// It is used for network-bound operations (installer downloads, repository
// clones, remote API calls) and shell commands that may fail transiently.
package retry
