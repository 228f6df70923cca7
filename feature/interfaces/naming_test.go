package interfaces

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareInterfaces(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"eth0/1", "Ethernet0/1", true},
		{"Ethernet0/1", "eth0/1", true},
		{"eth0/2", "Ethernet0/1", false},
		{"Gi1/0/1", "GigabitEthernet1/0/1", true},
		{"Te1/0/1", "GigabitEthernet1/0/1", false},
		{"Port-channel1", "po1", true},
		{"Vlan100.10", "vlan100.10", true},
		{"eth", "Ethernet0/1", false},
		{"0/1", "Ethernet0/1", false},
		{"", "", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CompareInterfaces(tt.a, tt.b), "%s vs %s", tt.a, tt.b)
	}
}

func TestNormalizeAddress(t *testing.T) {
	tests := []struct {
		in, want string
		wantErr  bool
	}{
		{"10.0.0.1/24", "10.0.0.1/24", false},
		{"10.0.0.1", "10.0.0.1/32", false},
		{" 2001:db8::1 ", "2001:db8::1/128", false},
		{"2001:db8::1/64", "2001:db8::1/64", false},
		{"10.0.0.1 255.255.255.0", "10.0.0.1/24", false},
		{"10.0.0.1 255.0.255.0", "", true},
		{"unassigned", "", true},
	}
	for _, tt := range tests {
		got, err := NormalizeAddress(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		assert.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestNormalizeMAC(t *testing.T) {
	assert.Equal(t, "00:11:22:33:44:55", NormalizeMAC("0011.2233.4455"))
	assert.Equal(t, "AA:BB:CC:DD:EE:FF", NormalizeMAC("aa-bb-cc-dd-ee-ff"))
	assert.Equal(t, "", NormalizeMAC(""))
	assert.Equal(t, "n/a", NormalizeMAC("n/a"))
}

func TestParseConnectionHint(t *testing.T) {
	tag, port, ok := ParseConnectionHint("SRV42|eth0/1")
	assert.True(t, ok)
	assert.Equal(t, "SRV42", tag)
	assert.Equal(t, "eth0/1", port)

	for _, desc := range []string{"uplink to core", "a|b|c", "|eth0", "SRV42|", ""} {
		_, _, ok := ParseConnectionHint(desc)
		assert.False(t, ok, desc)
	}
}
