package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Ledger metric names
const (
	MetricNameCrownsCredited   = "crowns_credited_total"
	MetricNameCrownsDebited    = "crowns_debited_total"
	MetricNameTransfers        = "crown_transfers_total"
	MetricNameMessagesRewarded = "messages_rewarded_total"
)

// Shop and catalog metric names
const (
	MetricNameItemsBought           = "items_bought_total"
	MetricNameCatalogItemsImported  = "catalog_items_imported_total"
	MetricNameCatalogImportFailures = "catalog_import_failures_total"
)

// Payout metric names
const (
	MetricNamePayoutRuns            = "perk_payout_runs_total"
	MetricNamePayoutMembersCredited = "perk_payout_members_credited_total"
	MetricNamePayoutFailures        = "perk_payout_member_failures_total"
	MetricNamePayoutLastSuccess     = "perk_payout_last_success_timestamp_seconds"
)

// Chat command metric names
const (
	MetricNameCommandsTotal = "chat_commands_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Ledger metric help text
const (
	HelpTextCrownsCredited   = "Total crowns added to balances"
	HelpTextCrownsDebited    = "Total crowns removed from balances"
	HelpTextTransfers        = "Total number of crown transfers attempted"
	HelpTextMessagesRewarded = "Total number of chat messages that earned crowns"
)

// Shop and catalog metric help text
const (
	HelpTextItemsBought           = "Total number of items bought"
	HelpTextCatalogItemsImported  = "Total number of catalog entries upserted"
	HelpTextCatalogImportFailures = "Total number of catalog entries rejected during import"
)

// Payout metric help text
const (
	HelpTextPayoutRuns            = "Total number of perk payout runs"
	HelpTextPayoutMembersCredited = "Total number of members credited by perk payouts"
	HelpTextPayoutFailures        = "Total number of member credits that failed during perk payouts"
	HelpTextPayoutLastSuccess     = "Unix time of the last payout run that finished without aborting"
)

// Chat command metric help text
const (
	HelpTextCommandsTotal = "Total number of chat commands handled, by command and result"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelRoute   = "route"
	LabelStatus  = "status"
	LabelSource  = "source"
	LabelResult  = "result"
	LabelItem    = "item"
	LabelCommand = "command"
)

// Label values
const (
	SourceMessage  = "message"
	SourceAdmin    = "admin"
	SourceTransfer = "transfer"
	SourcePerk     = "perk"
	SourcePurchase = "purchase"
	SourceCredit   = "credit"
	SourceDebit    = "debit"

	ResultSuccess   = "success"
	ResultFailed    = "failed"
	ResultRejected  = "rejected"
	ResultAborted   = "aborted"
	ResultCancelled = "cancelled"
	ResultDenied    = "denied"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
