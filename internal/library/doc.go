// Package library stores the generated audio clips of the current
// identity, together with the last played clip. Remote sync round trips
// are simulated with configurable latency and failure rate.
package library
