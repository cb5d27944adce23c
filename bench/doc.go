// Package bench times the splay tree against hashicorp LRU and ARC caches.
//
// Two workloads are provided:
//
//   - RunFibonacci sweeps n over [0, Max) in Step increments and times a
//     memoized Fibonacci call per cache. The LRU and ARC caches are shared
//     across the sweep (like a decorated function's cache), while every row
//     gets a fresh splay tree.
//   - RunAccess replays a seeded, skewed read-through workload against each
//     cache and reports hits, misses and wall-clock duration.
//
// Results can be rendered with WriteFibonacciTable and WriteAccessTable.
// Metrics flow through splaycache.MetricsCollector; PrometheusCollector is a
// Prometheus-backed implementation and Summarize flattens any Gatherer into
// rows for WriteMetricsTable.
//
// Each run owns its caches and uses them from a single goroutine.
package bench
