// Package metrics defines the custom Prometheus metrics for the adoption
// platform. It is the single source of truth for metric names, labels, and
// help strings; promauto registers everything with the default registry at
// package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "adopet"

// RegistrationsTotal counts completed account registrations.
// Label:
//   - kind: "usuario" or "ong"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of completed account registrations, by account kind.",
	},
	[]string{"kind"},
)

// LoginsTotal counts login attempts.
// Labels:
//   - kind: "usuario" or "ong"
//   - result: "success", "not_found", or "wrong_password"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by account kind and result.",
	},
	[]string{"kind", "result"},
)

// PetsCreatedTotal counts new pet listings.
// Label:
//   - especie: the species submitted on the form (e.g. "cachorro", "gato")
var PetsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "pets_created_total",
		Help:      "Total number of pet listings created, by species.",
	},
	[]string{"especie"},
)

// PetsDeletedTotal counts owner delete requests. Deletes are idempotent, so
// a request may map to zero removed rows.
var PetsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "pets_deleted_total",
		Help:      "Total number of pet delete requests issued by owners.",
	},
)
