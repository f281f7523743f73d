package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// InventoryMetrics records reservation-engine activity counts.
type InventoryMetrics struct {
	reservations *prometheus.CounterVec
	settlements  *prometheus.CounterVec
	lowStock     prometheus.Counter
	maintenance  *prometheus.CounterVec
}

// NewInventoryMetrics registers the inventory metrics on the provided registerer.
func NewInventoryMetrics(reg prometheus.Registerer) *InventoryMetrics {
	if reg == nil {
		return &InventoryMetrics{}
	}
	reservations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "inventory_reservations_committed_total",
		Help: "Reservation batches committed, by activity kind.",
	}, []string{"kind"})
	settlements := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "inventory_settlements_total",
		Help: "Activities settled into a terminal status, by kind and status.",
	}, []string{"kind", "status"})
	lowStock := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "inventory_low_stock_alerts_total",
		Help: "Low-stock notifications emitted.",
	})
	maintenance := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "inventory_maintenance_moves_total",
		Help: "Maintenance ledger moves, by direction.",
	}, []string{"direction"})
	reg.MustRegister(reservations, settlements, lowStock, maintenance)
	return &InventoryMetrics{
		reservations: reservations,
		settlements:  settlements,
		lowStock:     lowStock,
		maintenance:  maintenance,
	}
}

// ObserveReservation counts one committed reservation batch.
func (m *InventoryMetrics) ObserveReservation(kind string) {
	if m == nil || m.reservations == nil {
		return
	}
	m.reservations.WithLabelValues(kind).Inc()
}

// ObserveSettlement counts one settled activity.
func (m *InventoryMetrics) ObserveSettlement(kind, status string) {
	if m == nil || m.settlements == nil {
		return
	}
	m.settlements.WithLabelValues(kind, status).Inc()
}

// ObserveLowStock counts one emitted low-stock alert.
func (m *InventoryMetrics) ObserveLowStock() {
	if m == nil || m.lowStock == nil {
		return
	}
	m.lowStock.Inc()
}

// ObserveMaintenance counts one maintenance move ("send" or "return").
func (m *InventoryMetrics) ObserveMaintenance(direction string) {
	if m == nil || m.maintenance == nil {
		return
	}
	m.maintenance.WithLabelValues(direction).Inc()
}
