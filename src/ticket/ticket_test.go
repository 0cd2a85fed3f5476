package ticket

import (
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"

	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/guildconfig"
)

func TestSlug(t *testing.T) {
	var tests = []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"lowercase passthrough", "joao", 12, "joao"},
		{"uppercase folded", "JoAo", 12, "joao"},
		{"symbols stripped", "jo.ão_123!", 12, "joo123"},
		{"truncated at max", "abcdefghijklmnop", 8, "abcdefgh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slug(tt.in, tt.max); got != tt.want {
				t.Errorf("Slug(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}

func TestSlugEmptyGetsGeneratedName(t *testing.T) {
	got := Slug("!!!", 20)
	if got == "" {
		t.Fatal("empty slug should get a generated name")
	}
	if len(got) > 20 {
		t.Errorf("generated name exceeds max: %q", got)
	}
}

func TestChannelName(t *testing.T) {
	got := ChannelName("SomeVeryLongUsername", "Problemas com minha compra")
	parts := strings.SplitN(got, "-", 2)
	if len(parts) != 2 {
		t.Fatalf("ChannelName = %q, want two dash-joined slugs", got)
	}
	if len(parts[0]) > 12 || len(parts[1]) > 12 {
		t.Errorf("slug parts too long: %q", got)
	}
}

func TestCartChannelName(t *testing.T) {
	got := CartChannelName("Buyer", "Plano VPS Premium Gigante")
	if !strings.HasPrefix(got, "🛒-") {
		t.Errorf("CartChannelName = %q, want cart prefix", got)
	}
}

func TestBuildOverwrites(t *testing.T) {
	guild := &discordgo.Guild{
		ID:      "g1",
		OwnerID: "owner",
		Roles: []*discordgo.Role{
			{ID: "admin-role", Permissions: discordgo.PermissionAdministrator},
			{ID: "normal-role"},
		},
		Members: []*discordgo.Member{
			{User: &discordgo.User{ID: "owner"}},
			{User: &discordgo.User{ID: "staff"}, Roles: []string{"admin-role"}},
			{User: &discordgo.User{ID: "pleb"}, Roles: []string{"normal-role"}},
			{User: &discordgo.User{ID: "adminbot", Bot: true}, Roles: []string{"admin-role"}},
			{User: &discordgo.User{ID: "requester"}},
		},
	}
	cfg := &guildconfig.GuildConfig{SupportRoles: []string{"support-role"}}

	over := BuildOverwrites(guild, "requester", "bot", cfg)

	byID := make(map[string]*discordgo.PermissionOverwrite)
	for _, o := range over {
		byID[o.ID] = o
	}

	if o := byID["g1"]; o == nil || o.Deny&discordgo.PermissionViewChannel == 0 {
		t.Error("@everyone must be denied view")
	}
	for _, id := range []string{"requester", "bot", "support-role", "owner", "staff"} {
		if o := byID[id]; o == nil || o.Allow&discordgo.PermissionViewChannel == 0 {
			t.Errorf("%s must be allowed view", id)
		}
	}
	if byID["pleb"] != nil {
		t.Error("regular member must not get an overwrite")
	}
	if byID["adminbot"] != nil {
		t.Error("bots must not get admin overwrites")
	}
	if len(over) != len(byID) {
		t.Error("duplicate overwrites for the same ID")
	}
}
