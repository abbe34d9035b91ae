// Package fulfillment derives the view-state of design orders: completion,
// SLA deadlines, urgency tiers and operator queue ordering.
//
// Every function is pure. Callers pass one snapshot of orders, packages, SLA
// configuration and a single `now` per render pass, so the operator queue and
// the customer status page always derive the same values. Nothing here is
// persisted; the lifecycle helpers only validate transitions that the
// persistence layer applies atomically.
package fulfillment
