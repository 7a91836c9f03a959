package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RoyaltyMetrics holds every metric of the transactional core.
type RoyaltyMetrics struct {
	PaymentsProcessedTotal prometheus.Counter
	PaymentsAmountTotal    prometheus.Counter
	PaymentsFailedTotal    *prometheus.CounterVec
	OrdersRefundedTotal    prometheus.Counter
	OrdersRefundedAmount   prometheus.Counter

	SalesRecordedTotal  *prometheus.CounterVec
	SalesNetAmountTotal *prometheus.CounterVec
	CommissionFeeTotal  prometheus.Counter

	WithdrawalsRequestedTotal  *prometheus.CounterVec
	WithdrawalsRequestedAmount *prometheus.CounterVec

	RegistrationsCreatedTotal  *prometheus.CounterVec
	RegistrationsReviewedTotal *prometheus.CounterVec
}

func NewRoyaltyMetrics() *RoyaltyMetrics {
	return newRoyaltyMetrics(promauto.With(prometheus.DefaultRegisterer))
}

// NewRoyaltyMetricsWith registers against an explicit registry. Tests
// use this to avoid double registration on the default registry.
func NewRoyaltyMetricsWith(reg prometheus.Registerer) *RoyaltyMetrics {
	return newRoyaltyMetrics(promauto.With(reg))
}

func newRoyaltyMetrics(factory promauto.Factory) *RoyaltyMetrics {
	return &RoyaltyMetrics{
		PaymentsProcessedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "payments_processed_total",
			Help: "Successfully processed checkout payments",
		}),
		PaymentsAmountTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "payments_amount_total",
			Help: "Total amount of successfully processed payments",
		}),
		PaymentsFailedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "payments_failed_total",
			Help: "Failed payments by validation category",
		}, []string{"category"}),
		OrdersRefundedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "orders_refunded_total",
			Help: "Refunded orders",
		}),
		OrdersRefundedAmount: factory.NewCounter(prometheus.CounterOpts{
			Name: "orders_refunded_amount_total",
			Help: "Total amount of refunded orders",
		}),
		SalesRecordedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "wallet_sales_recorded_total",
			Help: "Sale transactions posted to wallets",
		}, []string{"user_id"}),
		SalesNetAmountTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "wallet_sales_net_amount_total",
			Help: "Net sale amount posted to wallets",
		}, []string{"user_id"}),
		CommissionFeeTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "commission_fee_total",
			Help: "Total platform commission collected",
		}),
		WithdrawalsRequestedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "withdrawals_requested_total",
			Help: "Withdrawal requests accepted",
		}, []string{"user_id"}),
		WithdrawalsRequestedAmount: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "withdrawals_requested_amount_total",
			Help: "Total amount of accepted withdrawal requests",
		}, []string{"user_id"}),
		RegistrationsCreatedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "copyright_registrations_created_total",
			Help: "Copyright registrations created",
		}, []string{"type", "protection_level"}),
		RegistrationsReviewedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "copyright_registrations_reviewed_total",
			Help: "Copyright registrations moved out of pending",
		}, []string{"status"}),
	}
}

func (m *RoyaltyMetrics) RecordPaymentProcessed(amount float64) {
	if m == nil {
		return
	}
	m.PaymentsProcessedTotal.Inc()
	m.PaymentsAmountTotal.Add(amount)
}

func (m *RoyaltyMetrics) RecordPaymentFailed(category string) {
	if m == nil {
		return
	}
	m.PaymentsFailedTotal.WithLabelValues(category).Inc()
}

func (m *RoyaltyMetrics) RecordOrderRefunded(amount float64) {
	if m == nil {
		return
	}
	m.OrdersRefundedTotal.Inc()
	m.OrdersRefundedAmount.Add(amount)
}

func (m *RoyaltyMetrics) RecordSale(userID string, netAmount, commission float64) {
	if m == nil {
		return
	}
	m.SalesRecordedTotal.WithLabelValues(userID).Inc()
	m.SalesNetAmountTotal.WithLabelValues(userID).Add(netAmount)
	m.CommissionFeeTotal.Add(commission)
}

func (m *RoyaltyMetrics) RecordWithdrawalRequested(userID string, amount float64) {
	if m == nil {
		return
	}
	m.WithdrawalsRequestedTotal.WithLabelValues(userID).Inc()
	m.WithdrawalsRequestedAmount.WithLabelValues(userID).Add(amount)
}

func (m *RoyaltyMetrics) RecordRegistrationCreated(regType, protectionLevel string) {
	if m == nil {
		return
	}
	m.RegistrationsCreatedTotal.WithLabelValues(regType, protectionLevel).Inc()
}

func (m *RoyaltyMetrics) RecordRegistrationReviewed(status string) {
	if m == nil {
		return
	}
	m.RegistrationsReviewedTotal.WithLabelValues(status).Inc()
}
