package checklist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeys_DefinitionOrder(t *testing.T) {
	keys := Keys()

	require.Len(t, keys, len(CautiKeys())+len(VapKeys()))
	assert.Equal(t, append(append([]string{}, CautiKeys()...), VapKeys()...), keys)

	// Keys are unique and stable
	seen := map[string]bool{}
	for _, key := range keys {
		assert.False(t, seen[key], key)
		seen[key] = true
		assert.NotEmpty(t, ItemText(key), key)
	}
}

func TestParseScope(t *testing.T) {
	for _, valid := range []string{"cauti", "vap", "both"} {
		scope, ok := ParseScope(valid)
		assert.True(t, ok, valid)
		assert.Equal(t, Scope(valid), scope)
	}

	for _, invalid := range []string{"", "all", "BOTH", "cauti "} {
		_, ok := ParseScope(invalid)
		assert.False(t, ok, invalid)
	}
}

func TestScopeKeys(t *testing.T) {
	assert.Equal(t, CautiKeys(), ScopeKeys(ScopeCauti))
	assert.Equal(t, VapKeys(), ScopeKeys(ScopeVap))
	assert.Equal(t, Keys(), ScopeKeys(ScopeBoth))
}

func TestSectionKeys(t *testing.T) {
	assert.Equal(t, CautiKeys(), SectionKeys(SectionCauti))
	assert.Equal(t, VapKeys(), SectionKeys(SectionVap))
	assert.Equal(t, Keys(), SectionKeys(SectionAll))
	assert.Equal(t, Keys(), SectionKeys(Section("unknown")))
}

func TestReasonFields_TriggersExist(t *testing.T) {
	fields := ReasonFields()
	require.Len(t, fields, 2)

	for _, field := range fields {
		assert.NotEmpty(t, field.Options, field.Key)
		assert.NotEmpty(t, ItemText(field.TriggerKey), field.Key)
	}
}

func TestReasonFieldsForSection(t *testing.T) {
	cauti := ReasonFieldsForSection(SectionCauti)
	require.Len(t, cauti, 1)
	assert.Equal(t, "cauti_1_no_reason", cauti[0].Key)

	vap := ReasonFieldsForSection(SectionVap)
	require.Len(t, vap, 1)
	assert.Equal(t, "vap_4_no_reason", vap[0].Key)

	all := ReasonFieldsForSection(SectionAll)
	assert.Len(t, all, 2)
}
