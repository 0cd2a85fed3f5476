package admin

import (
	"testing"

	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/config"
	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/store"
)

func TestIsOwner(t *testing.T) {
	old := config.OwnerID
	defer func() { config.OwnerID = old }()

	config.OwnerID = "42"
	if !IsOwner("42") {
		t.Error("configured owner should pass the gate")
	}
	if IsOwner("43") {
		t.Error("other users must not pass the gate")
	}

	config.OwnerID = ""
	if IsOwner("") {
		t.Error("empty owner config must never match")
	}
}

func TestTrackAndTopCommands(t *testing.T) {
	Init(store.NewMemory())

	Track("/daily")
	Track("/daily")
	Track("/daily")
	Track("!admin")
	Track("/perfil")
	Track("/perfil")

	top := TopCommands()
	if len(top) != 3 {
		t.Fatalf("len = %d, want 3", len(top))
	}
	if top[0].Command != "/daily" || top[0].Count != 3 {
		t.Errorf("top[0] = %+v", top[0])
	}
	if top[1].Command != "/perfil" || top[1].Count != 2 {
		t.Errorf("top[1] = %+v", top[1])
	}
}

func TestTopCommandsTieBreaksByName(t *testing.T) {
	Init(store.NewMemory())
	Track("/b")
	Track("/a")

	top := TopCommands()
	if top[0].Command != "/a" {
		t.Errorf("tie should order by name, got %v", top)
	}
}

func TestUsagePersists(t *testing.T) {
	st := store.NewMemory()
	Init(st)
	Track("/daily")

	Init(st)
	top := TopCommands()
	if len(top) != 1 || top[0].Count != 1 {
		t.Errorf("usage lost across restart: %v", top)
	}
}

func TestAddAdmin(t *testing.T) {
	Init(store.NewMemory())

	if !AddAdmin("u1") {
		t.Error("first add should succeed")
	}
	if AddAdmin("u1") {
		t.Error("duplicate add should report false")
	}
	if got := Admins(); len(got) != 1 || got[0] != "u1" {
		t.Errorf("Admins = %v", got)
	}
}
