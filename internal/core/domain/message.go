package domain

// MirrorFailureKind classifies why a spreadsheet mirror attempt failed.
type MirrorFailureKind string

const (
	MirrorFailureNone     MirrorFailureKind = ""
	MirrorUnrecognizedURL MirrorFailureKind = "UNRECOGNIZED_DOCUMENT_URL"
	MirrorProviderError   MirrorFailureKind = "PROVIDER_ERROR"
	MirrorNoLedger        MirrorFailureKind = "NO_LEDGER"
)

// MirrorResult is the per-invocation outcome of one mirror attempt. It is a
// returned value, not a thrown error: the orchestrator's continue policy must
// stay visible in code.
type MirrorResult struct {
	OK    bool
	Kind  MirrorFailureKind
	Cause error // retained for logging only
}

// MirrorSuccess returns a successful mirror result.
func MirrorSuccess() MirrorResult {
	return MirrorResult{OK: true}
}

// MirrorFailed returns a failed mirror result with its classification and cause.
func MirrorFailed(kind MirrorFailureKind, cause error) MirrorResult {
	return MirrorResult{Kind: kind, Cause: cause}
}

// ReplyKind selects the acknowledgment template sent back to the sender.
type ReplyKind string

const (
	ReplyRecorded              ReplyKind = "RECORDED"
	ReplyRecordedMirrorWarning ReplyKind = "RECORDED_MIRROR_WARNING"
	ReplyRejected              ReplyKind = "REJECTED"
)

// ReplyOutcome describes what the notifier should tell the sender.
type ReplyOutcome struct {
	Kind    ReplyKind
	Expense *ParsedExpense // set for RECORDED kinds
	Reason  string         // set for REJECTED
}

// NotifyResult is the soft outcome of one acknowledgment attempt.
type NotifyResult struct {
	OK    bool
	Cause error
}
