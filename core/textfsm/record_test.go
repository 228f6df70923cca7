package textfsm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRecord_Normalises(t *testing.T) {
	rec := NewRecord(map[string]any{
		"name":      "Gi0/1",
		"Ip":        []any{"10.0.0.1/24", "10.0.0.2/24"},
		"disk_name": []any{map[string]any{"index": "0", "name": "vda"}},
		"mtu":       1500,
		"empty":     nil,
	})

	assert.Equal(t, "Gi0/1", rec.String("NAME"))
	assert.Equal(t, []string{"10.0.0.1/24", "10.0.0.2/24"}, rec.Strings("IP"))
	assert.Equal(t, []map[string]string{{"index": "0", "name": "vda"}}, rec["DISK_NAME"])
	assert.Equal(t, "1500", rec["MTU"])
	assert.True(t, rec.Has("empty"))
	assert.Equal(t, "", rec.String("EMPTY"))
	assert.Equal(t, []string{"DISK_NAME", "EMPTY", "IP", "MTU", "NAME"}, rec.Keys())
}

func TestRecord_Aliases(t *testing.T) {
	rec := Record{"INTERFACE": "Gi0/1", "DESCR": "  uplink  "}

	assert.Equal(t, "Gi0/1", rec.String("NAME", "INTERFACE"))
	assert.Equal(t, "uplink", rec.String("DESCRIPTION", "DESCR"))
	assert.True(t, rec.Has("DESCRIPTION", "DESCR"))
	assert.False(t, rec.Has("MTU"))
	assert.Equal(t, "", rec.String("MTU"))
}

func TestRecord_Int(t *testing.T) {
	tests := []struct {
		value string
		want  int64
		ok    bool
	}{
		{"1500", 1500, true},
		{" 9000 ", 9000, true},
		{"", 0, false},
		{"auto", 0, false},
		{"01500", 1500, true},
		{"0900", 900, true},
		{"09000", 9000, true},
		{"9000.0", 9000, true},
	}
	for _, tt := range tests {
		n, ok := Record{"MTU": tt.value}.Int("MTU")
		assert.Equal(t, tt.ok, ok, tt.value)
		assert.Equal(t, tt.want, n, tt.value)
	}
}

func TestRecord_Strings(t *testing.T) {
	assert.Equal(t, []string{"10.0.0.1/24"}, Record{"IP": "10.0.0.1/24"}.Strings("IP"))
	assert.Nil(t, Record{"IP": " "}.Strings("IP"))
	assert.Equal(t, []string{"a", "b"}, Record{"IP": []string{"a", "", "b"}}.Strings("IP"))
	assert.Nil(t, Record{}.Strings("IP"))
}

func TestRecord_Entries(t *testing.T) {
	rec := Record{
		"DISK_NAME": []map[string]string{{"index": "0", "name": "vda"}},
		"DISK_SIZE": []string{`{"index": 0, "size": 1024}`},
		"DISK_PATH": "",
	}

	assert.Equal(t, []any{map[string]string{"index": "0", "name": "vda"}}, rec.Entries("DISK_NAME"))
	assert.Equal(t, []any{`{"index": 0, "size": 1024}`}, rec.Entries("DISK_SIZE"))
	assert.Nil(t, rec.Entries("DISK_PATH"))
	assert.Nil(t, rec.Entries("MISSING"))
}
