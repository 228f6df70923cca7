package rules

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const csvIndex = `# collector index
Template, Vendor, Command, Function, Description

cisco_ios_show_interfaces.textfsm, Cisco, sh[[ow]] int[[erfaces]], syncInterfaces, Interfaces with state and MTU
cisco_ios_show_inventory.textfsm, Cisco, sh[[ow]] inv[[entory]], syncInventory
generic_inventory.textfsm, .*, sh[[ow]] inv[[entory]], syncInventory
linux_virsh.textfsm, Linux, virsh, syncVMs
`

func TestExpand(t *testing.T) {
	assert.Equal(t, "sh(o(w)?)?", Expand("sh[[ow]]"))
	assert.Equal(t, "sh(o(w)?)? ver(s(i(o(n)?)?)?)?", Expand("sh[[ow]] ver[[sion]]"))
	assert.Equal(t, "virsh", Expand("virsh"))
}

func TestLoad(t *testing.T) {
	idx, err := Load(strings.NewReader(csvIndex))
	require.NoError(t, err)
	require.Len(t, idx.Rules(), 4)

	first := idx.Rules()[0]
	assert.Equal(t, "cisco_ios_show_interfaces.textfsm", first.Template)
	assert.Equal(t, "syncInterfaces", first.Handler)
	assert.Equal(t, "Interfaces with state and MTU", first.Description)
}

func TestMatch(t *testing.T) {
	idx, err := Load(strings.NewReader(csvIndex))
	require.NoError(t, err)

	tests := []struct {
		name     string
		vendor   string
		command  string
		template string
		found    bool
	}{
		{"Full", "Cisco", "show interfaces", "cisco_ios_show_interfaces.textfsm", true},
		{"Abbreviated", "Cisco", "sh int", "cisco_ios_show_interfaces.textfsm", true},
		{"VendorPrefix", "Cisco Systems", "show int", "cisco_ios_show_interfaces.textfsm", true},
		{"FirstWins", "Cisco", "show inventory", "cisco_ios_show_inventory.textfsm", true},
		{"Fallback", "Juniper", "show inventory", "generic_inventory.textfsm", true},
		{"AnchoredAtStart", "Cisco", "no show interfaces", "", false},
		{"CaseSensitive", "cisco", "show interfaces", "", false},
		{"UnknownCommand", "Cisco", "show clock", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, ok := idx.Match(tt.vendor, tt.command)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.template, rule.Template)
		})
	}
}

func TestMatch_FirstRowAlwaysWins(t *testing.T) {
	rules := []Rule{
		{Template: "a", Vendor: ".*", Command: "show", Handler: "h1"},
		{Template: "b", Vendor: "Cisco", Command: "show version", Handler: "h2"},
		{Template: "c", Vendor: "Cisco", Command: "show", Handler: "h3"},
	}
	idx, err := New(rules)
	require.NoError(t, err)

	for _, cmd := range []string{"show", "show version", "show anything"} {
		rule, ok := idx.Match("Cisco", cmd)
		require.True(t, ok)
		assert.Equal(t, "a", rule.Template, cmd)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Run("MissingColumn", func(t *testing.T) {
		_, err := Load(strings.NewReader("Template, Vendor, Command\na, b, c\n"))
		assert.ErrorIs(t, err, ErrMissingColumn)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := Load(strings.NewReader("# only comments\n"))
		assert.ErrorIs(t, err, ErrMissingColumn)
	})

	t.Run("InvalidRegex", func(t *testing.T) {
		_, err := Load(strings.NewReader("Template, Vendor, Command, Function\na, Cisco(, show, syncInventory\n"))
		assert.ErrorContains(t, err, "invalid vendor pattern")
	})

	t.Run("MissingHandler", func(t *testing.T) {
		_, err := Load(strings.NewReader("Template, Vendor, Command, Function\na, Cisco, show,\n"))
		assert.ErrorContains(t, err, "template and handler are required")
	})
}

func TestLoadYAML(t *testing.T) {
	doc := `
rules:
  - template: linux_virsh.textfsm
    vendor: Linux
    command: virsh
    handler: syncVMs
    description: Virtual machines from virsh
  - template: cisco_ios_show_inventory.textfsm
    vendor: Cisco
    command: sh[[ow]] inv[[entory]]
    handler: syncInventory
`
	idx, err := LoadYAML(strings.NewReader(doc))
	require.NoError(t, err)

	rule, ok := idx.Match("Cisco", "sh inv")
	require.True(t, ok)
	assert.Equal(t, "syncInventory", rule.Handler)
	assert.Equal(t, "Virtual machines from virsh", idx.Commands()["virsh"])
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "index")
	require.NoError(t, os.WriteFile(csvPath, []byte(csvIndex), 0o644))

	idx, err := LoadFile(csvPath)
	require.NoError(t, err)
	assert.Len(t, idx.Rules(), 4)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestRulesReturnsCopy(t *testing.T) {
	idx, err := Load(strings.NewReader(csvIndex))
	require.NoError(t, err)

	rules := idx.Rules()
	rules[0].Template = "changed"
	assert.Equal(t, "cisco_ios_show_interfaces.textfsm", idx.Rules()[0].Template)
}

func TestMatchCommand(t *testing.T) {
	idx, err := Load(strings.NewReader(csvIndex))
	require.NoError(t, err)

	rule, ok := idx.MatchCommand("virsh")
	require.True(t, ok)
	assert.Equal(t, "syncVMs", rule.Handler)
}
