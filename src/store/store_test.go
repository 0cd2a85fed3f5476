package store

import (
	"testing"

	"github.com/peterbourgon/diskv/v3"
)

func TestTransformRoundTrip(t *testing.T) {
	var tests = []struct {
		name string
		key  string
	}{
		{"flat key", "guild_configs"},
		{"nested key", "logs/panel"},
		{"deeply nested key", "logs/guilds/panel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pk := AdvancedTransform(tt.key)
			if got := InverseTransform(pk); got != tt.key {
				t.Errorf("InverseTransform(AdvancedTransform(%q)) = %q", tt.key, got)
			}
		})
	}
}

func TestAdvancedTransformFileName(t *testing.T) {
	pk := AdvancedTransform("logs/panel")
	if pk.FileName != "panel.json" {
		t.Errorf("FileName = %q, want panel.json", pk.FileName)
	}
	if len(pk.Path) != 1 || pk.Path[0] != "logs" {
		t.Errorf("Path = %v, want [logs]", pk.Path)
	}
}

func TestInverseTransformRejectsForeignFiles(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for non-json file")
		}
	}()
	InverseTransform(&diskv.PathKey{FileName: "panel.txt"})
}

func TestDiskStoreRoundTrip(t *testing.T) {
	s := NewDisk(t.TempDir())

	if err := s.Write("logs/panel", []byte(`[{"guildId":"1"}]`)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	b, err := s.Read("logs/panel")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(b) != `[{"guildId":"1"}]` {
		t.Errorf("Read = %s", b)
	}

	if err := s.Erase("logs/panel"); err != nil {
		t.Fatalf("Erase: %v", err)
	}
	if _, err := s.Read("logs/panel"); err == nil {
		t.Error("Read after Erase should fail")
	}
}

func TestReadJSONMissingKey(t *testing.T) {
	s := NewMemory()
	out := map[string]int{"keep": 1}
	if ReadJSON(s, "nope", &out) {
		t.Error("ReadJSON on missing key should report false")
	}
	if out["keep"] != 1 {
		t.Error("ReadJSON on missing key must not touch out")
	}
}

func TestReadJSONMalformed(t *testing.T) {
	s := NewMemory()
	if err := s.Write("bad", []byte("{not json")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	var out map[string]int
	if ReadJSON(s, "bad", &out) {
		t.Error("ReadJSON on malformed document should report false")
	}
}

func TestAppendLog(t *testing.T) {
	s := NewMemory()

	type entry struct {
		GuildID string `json:"guildId"`
	}
	if err := AppendLog(s, LogPanel, entry{GuildID: "1"}); err != nil {
		t.Fatalf("AppendLog: %v", err)
	}
	if err := AppendLog(s, LogPanel, entry{GuildID: "2"}); err != nil {
		t.Fatalf("AppendLog: %v", err)
	}

	var got []entry
	ReadLog(s, LogPanel, &got)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].GuildID != "1" || got[1].GuildID != "2" {
		t.Errorf("entries out of order: %v", got)
	}
}

func TestMemStoreCopies(t *testing.T) {
	s := NewMemory()
	buf := []byte("abc")
	if err := s.Write("k", buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	buf[0] = 'x'

	got, err := s.Read("k")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != "abc" {
		t.Errorf("stored value aliased caller buffer: %s", got)
	}
}
