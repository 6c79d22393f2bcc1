/*
Package observability provides Prometheus metrics for an ipcli session.

Metrics are fed by the runner's lifecycle hooks, so the session itself never
imports the Prometheus client.
*/
package observability
