// Package domain provides core domain models shared by every analysis engine.
package domain

import (
	"encoding/json"
	"time"
)

// Severity represents how serious a finding is.
// The ordering LOW < MEDIUM < HIGH < CRITICAL is relied upon everywhere a
// severity is derived from counts or thresholds.
type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

// String returns the canonical uppercase name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "LOW"
	case SeverityMedium:
		return "MEDIUM"
	case SeverityHigh:
		return "HIGH"
	case SeverityCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// MarshalJSON encodes the severity as its string name.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// MaxSeverity returns the higher of two severities.
func MaxSeverity(a, b Severity) Severity {
	if a > b {
		return a
	}
	return b
}

// RiskAction is the action the tax authority mandates for a matched
// transaction scenario. The ordering MONITOR < INFO_REQUEST <
// EXPLANATION_REQUEST < AUDIT_REFERRAL is a total priority order: when a
// transaction matches several scenarios, the highest-priority action wins.
type RiskAction int

const (
	ActionMonitor RiskAction = iota
	ActionInfoRequest
	ActionExplanationRequest
	ActionAuditReferral
)

// String returns the canonical name of the action.
func (a RiskAction) String() string {
	switch a {
	case ActionMonitor:
		return "MONITOR"
	case ActionInfoRequest:
		return "INFO_REQUEST"
	case ActionExplanationRequest:
		return "EXPLANATION_REQUEST"
	case ActionAuditReferral:
		return "AUDIT_REFERRAL"
	default:
		return "UNKNOWN"
	}
}

// MaxAction returns the higher-priority of two actions.
func MaxAction(a, b RiskAction) RiskAction {
	if a > b {
		return a
	}
	return b
}

// AccountBalance is a single trial-balance line: an account code following
// the chart-of-accounts prefix convention and its signed period balance.
// Debit balances are positive, credit balances negative.
type AccountBalance struct {
	Code    string  `json:"code"`
	Balance float64 `json:"balance"`
}

// EvidenceItem is one contributing figure attached to a finding.
type EvidenceItem struct {
	Category string `json:"category"`
	Label    string `json:"label"`
	Value    string `json:"value"`
	Note     string `json:"note,omitempty"`
	Critical bool   `json:"critical,omitempty"`
}

// Payment method values for Transaction.PaymentMethod.
const (
	PaymentCash  = "CASH"
	PaymentBank  = "BANK"
	PaymentCheck = "CHECK"
	PaymentNote  = "PROMISSORY_NOTE"
)

// Transaction type values for Transaction.Type.
const (
	TxGoodsPurchase = "GOODS_PURCHASE"
	TxGoodsSale     = "GOODS_SALE"
	TxService       = "SERVICE"
	TxCommission    = "COMMISSION"
	TxRent          = "RENT"
	TxPartnerLoan   = "PARTNER_LOAN"
)

// Transaction is a single ledger transaction supplied for scenario scoring.
// The core never persists transactions; they live for one request.
type Transaction struct {
	Date              time.Time `json:"date"`
	Type              string    `json:"type"`
	Amount            float64   `json:"amount"`
	Counterparty      string    `json:"counterparty"`
	CounterpartyTaxID string    `json:"counterparty_tax_id"`
	PaymentMethod     string    `json:"payment_method"`
	HasInvoice        bool      `json:"has_invoice"`
	HasDeliveryNote   bool      `json:"has_delivery_note"`
	HasContract       bool      `json:"has_contract"`
}

// PriorPeriod carries optional prior-period closing figures. When present,
// average-based activity ratios use the average of opening and closing
// balances; when absent they fall back to the closing balance.
type PriorPeriod struct {
	Inventory        float64 `json:"inventory"`
	TradeReceivables float64 `json:"trade_receivables"`
	TradePayables    float64 `json:"trade_payables"`
	TotalAssets      float64 `json:"total_assets"`
	Equity           float64 `json:"equity"`
}
