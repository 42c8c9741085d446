package shift

import "github.com/shiftwise/roster-backend-go/internal/domain/worker"

type RuleKind string

const (
	RuleAllowAny           RuleKind = "allow_any"
	RuleRequiredCapability RuleKind = "required_capability"
	RuleNamedAllowlist     RuleKind = "named_allowlist"
)

// EligibilityRule is the tagged form of a shift type's eligibility
// configuration. Exactly one kind applies per shift type.
type EligibilityRule struct {
	Kind       RuleKind
	Capability string
	Allowlist  []string
}

// Rule collapses the stored eligibility columns into a single rule.
// When more than one column is populated the precedence is
// AllowAny, then RequiredCapability, then NamedAllowlist.
// A shift type with nothing configured allows anyone.
func (s ShiftType) Rule() EligibilityRule {
	if s.AllowAny {
		return EligibilityRule{Kind: RuleAllowAny}
	}
	if s.RequiredCapability != nil && *s.RequiredCapability != "" {
		return EligibilityRule{Kind: RuleRequiredCapability, Capability: *s.RequiredCapability}
	}
	if len(s.AllowlistEmails) > 0 {
		return EligibilityRule{Kind: RuleNamedAllowlist, Allowlist: s.AllowlistEmails}
	}
	return EligibilityRule{Kind: RuleAllowAny}
}

// Allows reports whether the given worker may work a shift governed by
// this rule.
func (r EligibilityRule) Allows(w worker.Worker) bool {
	switch r.Kind {
	case RuleAllowAny:
		return true
	case RuleRequiredCapability:
		return w.HasCapability(r.Capability)
	case RuleNamedAllowlist:
		for _, email := range r.Allowlist {
			if email == w.Email {
				return true
			}
		}
		return false
	}
	return false
}
