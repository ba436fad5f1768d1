package combat

import "time"

// ComboType classifies a chain. It governs chain length and animation set.
type ComboType int

const (
	ComboNone ComboType = iota
	ComboLight
	ComboHeavy
)

func (t ComboType) String() string {
	switch t {
	case ComboLight:
		return "light"
	case ComboHeavy:
		return "heavy"
	default:
		return "none"
	}
}

// Intent is one classified attack press.
type Intent struct {
	Heavy bool
}

var (
	LightIntent = Intent{Heavy: false}
	HeavyIntent = Intent{Heavy: true}
)

func (i Intent) Type() ComboType {
	if i.Heavy {
		return ComboHeavy
	}
	return ComboLight
}

func (i Intent) String() string {
	return i.Type().String()
}

// ComboState is the authoritative record of combo progress and timing gates.
// Step == 0 if and only if Type == ComboNone.
type ComboState struct {
	Step            int
	Type            ComboType
	Attacking       bool
	InRecovery      bool
	Processing      bool
	CanAttack       bool
	LastAttackTime  time.Duration
	NextAllowedTime time.Duration
}

func freshState() ComboState {
	return ComboState{CanAttack: true}
}

// Locked reports whether now falls inside the lockout interval.
func (s ComboState) Locked(now time.Duration) bool {
	return now < s.NextAllowedTime
}

// BufferedInput is the single-slot memory of a retryable intent.
type BufferedInput struct {
	Present      bool
	IsHeavy      bool
	CapturedAt   time.Duration
	ExpectedStep int
}

func (b BufferedInput) Intent() Intent {
	return Intent{Heavy: b.IsHeavy}
}

// AttackSnapshot freezes the attack that was committed so deferred work
// acts on it rather than on whatever the combo holds when the work runs.
type AttackSnapshot struct {
	ID      uint64
	IsHeavy bool
	Step    int
	State   string // animator state chosen for the attack, empty on lookup failure

	live bool
}

// Live reports whether the snapshot still belongs to an in-flight attack
// whose hit window has not been closed.
func (s AttackSnapshot) Live() bool {
	return s.live
}

// BlockPhase is the block state machine's phase.
type BlockPhase int

const (
	BlockUnblocked BlockPhase = iota
	BlockStarting
	BlockActive
	BlockRecovery
)

func (p BlockPhase) String() string {
	switch p {
	case BlockStarting:
		return "starting"
	case BlockActive:
		return "active"
	case BlockRecovery:
		return "recovery"
	default:
		return "unblocked"
	}
}

// Outcome is what a trigger attempt did.
type Outcome int

const (
	OutcomeCommitted Outcome = iota
	OutcomeBuffered
	OutcomeRejected
	OutcomeEnded
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCommitted:
		return "committed"
	case OutcomeBuffered:
		return "buffered"
	case OutcomeEnded:
		return "ended"
	default:
		return "rejected"
	}
}

// RejectReason explains why an attack did not commit.
type RejectReason int

const (
	ReasonNone RejectReason = iota
	ReasonProcessing
	ReasonLocked
	ReasonRecovery
	ReasonBlocking
	ReasonResources
	ReasonMixingDisabled
	ReasonDeescalation
)

// Retryable reasons are buffered; the rest are terminal.
func (r RejectReason) Retryable() bool {
	switch r {
	case ReasonProcessing, ReasonLocked, ReasonRecovery:
		return true
	}
	return false
}

func (r RejectReason) String() string {
	switch r {
	case ReasonProcessing:
		return "processing"
	case ReasonLocked:
		return "locked"
	case ReasonRecovery:
		return "recovery"
	case ReasonBlocking:
		return "blocking"
	case ReasonResources:
		return "resources"
	case ReasonMixingDisabled:
		return "mixing_disabled"
	case ReasonDeescalation:
		return "deescalation"
	default:
		return "none"
	}
}

// DropReason explains why a buffered intent was discarded.
type DropReason int

const (
	DropExpired DropReason = iota
	DropStale
	DropSuperseded
	DropRejected
	DropReset
)

func (r DropReason) String() string {
	switch r {
	case DropExpired:
		return "expired"
	case DropStale:
		return "stale"
	case DropSuperseded:
		return "superseded"
	case DropRejected:
		return "rejected"
	default:
		return "reset"
	}
}

// ResetCause says what cleared the combo.
type ResetCause int

const (
	CauseTimeout ResetCause = iota
	CauseEnd
	CauseBlock
	CauseExternal
)

func (c ResetCause) String() string {
	switch c {
	case CauseTimeout:
		return "timeout"
	case CauseEnd:
		return "end"
	case CauseBlock:
		return "block"
	default:
		return "external"
	}
}
