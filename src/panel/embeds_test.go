package panel

import (
	"reflect"
	"strings"
	"testing"

	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/guildconfig"
)

func TestClamp(t *testing.T) {
	var tests = []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short string unchanged", "hello", 10, "hello"},
		{"whitespace trimmed", "  hello  ", 10, "hello"},
		{"whitespace only clamps to empty", "   ", 10, ""},
		{"truncated at max", "abcdefgh", 5, "abcde"},
		{"multibyte runes counted once", strings.Repeat("ç", 6), 5, strings.Repeat("ç", 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.in, tt.max); got != tt.want {
				t.Errorf("Clamp(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}

func TestClampIdempotent(t *testing.T) {
	in := "  " + strings.Repeat("x", 300)
	once := Clamp(in, MaxTitle)
	twice := Clamp(once, MaxTitle)
	if once != twice {
		t.Error("Clamp should be idempotent")
	}
}

func TestBuildPanelEmbedFallbacks(t *testing.T) {
	cfg := &guildconfig.GuildConfig{}
	embed := BuildPanelEmbed(cfg)
	if embed.Title != "Support" {
		t.Errorf("Title = %q", embed.Title)
	}
	if embed.Description != "Abra um ticket" {
		t.Errorf("Description = %q", embed.Description)
	}
	if embed.Color != guildconfig.DefaultColor {
		t.Errorf("Color = %#x", embed.Color)
	}
	if embed.Footer != nil {
		t.Error("empty footer text should render without footer")
	}
}

func TestBuildEditorEmbedFieldCap(t *testing.T) {
	e := &guildconfig.EmbedData{
		Title: "t", Description: "d",
		Fields: []guildconfig.EmbedField{
			{Name: "1"}, {Name: "2"}, {Name: "3"}, {Name: "4"}, {Name: "5"},
		},
	}
	embed := BuildEditorEmbed(e)
	if len(embed.Fields) != MaxFields {
		t.Errorf("len(Fields) = %d, want %d", len(embed.Fields), MaxFields)
	}
}

func TestBuildEditorEmbedNilUsesDefault(t *testing.T) {
	embed := BuildEditorEmbed(nil)
	if embed.Title != "Embed de Exemplo" {
		t.Errorf("Title = %q", embed.Title)
	}
}

func TestBuildEditorEmbedDoubleRender(t *testing.T) {
	e := &guildconfig.EmbedData{
		Title: "t", Description: "d", Color: 0x112233,
		ImageURL: "https://x/banner.png", FooterText: "f",
		Fields: []guildconfig.EmbedField{{Name: "n", Value: "v", Inline: true}},
	}
	first := BuildEditorEmbed(e)
	second := BuildEditorEmbed(e)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("re-render differs:\n%+v\n%+v", first, second)
	}
}

func TestBuildEditorEmbedFieldNameFallback(t *testing.T) {
	e := &guildconfig.EmbedData{Fields: []guildconfig.EmbedField{{Name: "  ", Value: "v"}}}
	embed := BuildEditorEmbed(e)
	if embed.Fields[0].Name != "Campo" {
		t.Errorf("empty field name = %q, want Campo", embed.Fields[0].Name)
	}
}

func TestStockLabel(t *testing.T) {
	var tests = []struct {
		name  string
		stock int
		want  string
	}{
		{"unlimited sentinel", -1, "Ilimitado"},
		{"zero stock", 0, "0 unidades"},
		{"positive stock", 7, "7 unidades"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StockLabel(tt.stock); got != tt.want {
				t.Errorf("StockLabel(%d) = %q, want %q", tt.stock, got, tt.want)
			}
		})
	}
}

func TestPriceLabel(t *testing.T) {
	if got := PriceLabel(9.9); got != "R$ 9.90" {
		t.Errorf("PriceLabel = %q", got)
	}
}

func TestBuildProductEmbedFields(t *testing.T) {
	p := &guildconfig.ProductDefinition{Title: "VPS", Description: "d", Price: 19.99, Stock: -1}
	embed := BuildProductEmbed(p)
	if len(embed.Fields) != 2 {
		t.Fatalf("len(Fields) = %d", len(embed.Fields))
	}
	if embed.Fields[0].Value != "R$ 19.99" {
		t.Errorf("price field = %q", embed.Fields[0].Value)
	}
	if embed.Fields[1].Value != "Ilimitado" {
		t.Errorf("stock field = %q", embed.Fields[1].Value)
	}
}

func TestBuildTicketOpenEmbedReasonFallback(t *testing.T) {
	embed := BuildTicketOpenEmbed("1", "user", "", guildconfig.DefaultPanel(), "")
	if embed.Fields[1].Value != "Suporte Geral" {
		t.Errorf("reason field = %q", embed.Fields[1].Value)
	}
}
