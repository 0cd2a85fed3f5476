package panel

import (
	"testing"

	"github.com/bwmarrin/discordgo"

	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/config"
	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/guildconfig"
)

func customIDs(components []discordgo.MessageComponent) []string {
	var ids []string
	for _, c := range components {
		r, ok := c.(discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, inner := range r.Components {
			switch v := inner.(type) {
			case discordgo.Button:
				ids = append(ids, v.CustomID)
			case discordgo.SelectMenu:
				ids = append(ids, v.CustomID)
			}
		}
	}
	return ids
}

func TestBuildLivePanelComponentsDefault(t *testing.T) {
	p := guildconfig.DefaultPanel()
	components := BuildLivePanelComponents(p, nil)
	if components == nil {
		t.Fatal("default panel with options rendered nil")
	}

	ids := customIDs(components)
	if len(ids) == 0 || ids[0] != "ticket-select" {
		t.Errorf("custom IDs = %v, want ticket-select first", ids)
	}
	for _, id := range ids {
		if id == "save-panel" || id == "toggle-panel-type" {
			t.Errorf("editor control %q leaked into the live panel", id)
		}
	}
}

func TestBuildLivePanelComponentsSimple(t *testing.T) {
	p := guildconfig.PanelDefinition{PanelType: "simple"}
	ids := customIDs(BuildLivePanelComponents(p, nil))
	if len(ids) != 1 || ids[0] != "simple-ticket-open" {
		t.Errorf("custom IDs = %v, want only simple-ticket-open", ids)
	}
}

func TestBuildLivePanelComponentsNoOptions(t *testing.T) {
	p := guildconfig.PanelDefinition{PanelType: "default"}
	if got := BuildLivePanelComponents(p, nil); got != nil {
		t.Errorf("panel without options = %v, want nil", got)
	}
}

func TestFreekeyRowGating(t *testing.T) {
	old := config.FreekeyWebhookURL
	defer func() { config.FreekeyWebhookURL = old }()

	config.FreekeyWebhookURL = "https://discord.com/api/webhooks/1/x"
	p := guildconfig.PanelDefinition{PanelType: "simple"}
	ids := customIDs(BuildLivePanelComponents(p, nil))
	if len(ids) != 2 || ids[1] != "freekey" {
		t.Errorf("custom IDs = %v, want freekey row appended", ids)
	}

	config.FreekeyWebhookURL = ""
	ids = customIDs(BuildLivePanelComponents(p, nil))
	if len(ids) != 1 {
		t.Errorf("custom IDs = %v, want no freekey row", ids)
	}
}
