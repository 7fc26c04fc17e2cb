// Package flow contains channel plumbing for running Result stages over many
// items with controlled concurrency: channel helpers, worker configuration
// via context, and the locomotive loop that drives each worker. It does not
// define business logic; stages lift fn combinators into per-item channel
// processing.
package flow
