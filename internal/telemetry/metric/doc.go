// Package metric provides Prometheus metrics for keva.
//
// Collectors are registered with the default registry via promauto and
// exposed through the admin HTTP server's /metrics endpoint.
package metric
