// Package combined holds cross-implementation benchmarks pitting the
// chunked queue against the bounded baselines and against the
// third-party sharded MPSC ring.
//
// These benchmarks are more representative of real-world performance
// than the package-level micro-benchmarks, as they run full
// producer/consumer pipelines and capture the cost of the signaling
// each queue needs around it.
package combined
