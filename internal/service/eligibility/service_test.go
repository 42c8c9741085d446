package eligibility

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftwise/roster-backend-go/internal/domain/shift"
	"github.com/shiftwise/roster-backend-go/internal/domain/worker"
)

const orgID = "org-1"

type mockShiftRepo struct {
	shiftTypes map[string]shift.ShiftType
	sets       []shift.EquivalenceSet
}

func (m *mockShiftRepo) GetByCode(_ context.Context, _, code string) (shift.ShiftType, error) {
	st, ok := m.shiftTypes[code]
	if !ok {
		return shift.ShiftType{}, shift.ErrShiftTypeNotFound
	}
	return st, nil
}

func (m *mockShiftRepo) ListByOrg(_ context.Context, _ string) ([]shift.ShiftType, error) {
	var out []shift.ShiftType
	for _, st := range m.shiftTypes {
		out = append(out, st)
	}
	return out, nil
}

func (m *mockShiftRepo) ListEquivalenceSets(_ context.Context, _ string) ([]shift.EquivalenceSet, error) {
	return m.sets, nil
}

func strPtr(s string) *string { return &s }

func TestCanWork(t *testing.T) {
	repo := &mockShiftRepo{shiftTypes: map[string]shift.ShiftType{
		"DAY":     {Code: "DAY", AllowAny: true},
		"ICU_ON":  {Code: "ICU_ON", RequiredCapability: strPtr("ICU")},
		"CHARGE":  {Code: "CHARGE", AllowlistEmails: []string{"alice@example.com"}},
		"UNSET":   {Code: "UNSET"},
		"TANGLED": {Code: "TANGLED", AllowAny: true, RequiredCapability: strPtr("ICU"), AllowlistEmails: []string{"nobody@example.com"}},
	}}
	evaluator := NewEvaluator(repo)

	alice := worker.Worker{ID: "alice", Email: "alice@example.com", CapabilityCode: strPtr("ICU")}
	bob := worker.Worker{ID: "bob", Email: "bob@example.com"}

	tests := []struct {
		name          string
		w             worker.Worker
		shiftTypeCode string
		want          bool
	}{
		{"allow any admits anyone", bob, "DAY", true},
		{"capability rule admits the holder", alice, "ICU_ON", true},
		{"capability rule rejects a non-holder", bob, "ICU_ON", false},
		{"allowlist admits a listed email", alice, "CHARGE", true},
		{"allowlist rejects an unlisted email", bob, "CHARGE", false},
		{"nothing configured admits anyone", bob, "UNSET", true},
		{"allow any wins when every column is populated", bob, "TANGLED", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := evaluator.CanWork(context.Background(), tt.w, orgID, tt.shiftTypeCode)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown shift type is an error", func(t *testing.T) {
		_, err := evaluator.CanWork(context.Background(), bob, orgID, "MISSING")
		assert.ErrorIs(t, err, shift.ErrShiftTypeNotFound)
	})
}

func TestRulePrecedence(t *testing.T) {
	icu := strPtr("ICU")

	tests := []struct {
		name string
		st   shift.ShiftType
		want shift.RuleKind
	}{
		{"allow any beats capability", shift.ShiftType{AllowAny: true, RequiredCapability: icu}, shift.RuleAllowAny},
		{"capability beats allowlist", shift.ShiftType{RequiredCapability: icu, AllowlistEmails: []string{"x"}}, shift.RuleRequiredCapability},
		{"allowlist alone applies", shift.ShiftType{AllowlistEmails: []string{"x"}}, shift.RuleNamedAllowlist},
		{"empty capability string is ignored", shift.ShiftType{RequiredCapability: strPtr(""), AllowlistEmails: []string{"x"}}, shift.RuleNamedAllowlist},
		{"nothing configured defaults open", shift.ShiftType{}, shift.RuleAllowAny},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.st.Rule().Kind)
		})
	}
}

func TestRegistry(t *testing.T) {
	repo := &mockShiftRepo{sets: []shift.EquivalenceSet{
		{Code: "CORE", Members: []string{"DAY", "EVENING"}},
		{Code: "NIGHTS", Members: []string{"NIGHT", "LATE"}},
	}}
	evaluator := NewEvaluator(repo)

	registry, err := evaluator.Registry(context.Background(), orgID)
	require.NoError(t, err)

	t.Run("members of the same set are equivalent both ways", func(t *testing.T) {
		assert.True(t, registry.AreEquivalent("DAY", "EVENING", "CORE"))
		assert.True(t, registry.AreEquivalent("EVENING", "DAY", "CORE"))
	})

	t.Run("codes from different sets are not equivalent", func(t *testing.T) {
		assert.False(t, registry.AreEquivalent("DAY", "NIGHT", "CORE"))
		assert.False(t, registry.AreEquivalent("DAY", "NIGHT", "NIGHTS"))
	})

	t.Run("unknown set code fails closed", func(t *testing.T) {
		assert.False(t, registry.AreEquivalent("DAY", "EVENING", "MISSING"))
	})

	t.Run("a code is equivalent to itself within its set only", func(t *testing.T) {
		assert.True(t, registry.AreEquivalent("DAY", "DAY", "CORE"))
		assert.False(t, registry.AreEquivalent("DAY", "DAY", "NIGHTS"))
	})
}
