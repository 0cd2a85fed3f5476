package guildconfig

// DefaultColor is the accent used everywhere a guild has not picked one.
const DefaultColor = 0x32cd32

// PanelOption is one entry of the ticket panel select menu. Value is assigned
// once and survives later label edits so deployed menus keep working.
type PanelOption struct {
	Label       string `json:"label"`
	Description string `json:"description"`
	Value       string `json:"value"`
	Emoji       string `json:"emoji"`
}

// PanelDefinition is the committed, live ticket panel for a guild.
type PanelDefinition struct {
	Title             string        `json:"title"`
	Description       string        `json:"description"`
	Color             int           `json:"color"`
	BannerURL         string        `json:"bannerURL,omitempty"`
	ThumbnailURL      string        `json:"thumbnailURL,omitempty"`
	FooterText        string        `json:"footerText,omitempty"`
	FooterIcon        string        `json:"footerIcon,omitempty"`
	PanelType         string        `json:"panelType"` // "default" (select) or "simple" (button)
	AdvancedConfig    bool          `json:"advancedConfig"`
	SimpleButtonLabel string        `json:"simpleButtonLabel"`
	Options           []PanelOption `json:"options"`
}

// EmbedField is one field slot of the embed editor, capped at three per embed.
type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// EmbedData is the scratch buffer behind the /embed editor.
type EmbedData struct {
	Title        string       `json:"title,omitempty"`
	Description  string       `json:"description,omitempty"`
	Color        int          `json:"color"`
	ImageURL     string       `json:"imageURL,omitempty"`
	ThumbnailURL string       `json:"thumbnailURL,omitempty"`
	FooterText   string       `json:"footerText,omitempty"`
	FooterIcon   string       `json:"footerIcon,omitempty"`
	Fields       []EmbedField `json:"fields"`
}

// ProductDefinition is the scratch buffer behind /criarproduto. Stock -1 means
// unlimited, anything else must be >= 0.
type ProductDefinition struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Color        int     `json:"color"`
	Price        float64 `json:"price"`
	Stock        int     `json:"stock"`
	BannerURL    string  `json:"bannerURL,omitempty"`
	ThumbnailURL string  `json:"thumbnailURL,omitempty"`
	FooterText   string  `json:"footerText,omitempty"`
	FooterIcon   string  `json:"footerIcon,omitempty"`
}

// PaymentConfig selects between the gateway token and manual Pix display.
type PaymentConfig struct {
	Enabled bool   `json:"enabled"`
	MPToken string `json:"mpToken,omitempty"`
	PixType string `json:"pixType,omitempty"`
	PixKey  string `json:"pixKey,omitempty"`
	PixMode string `json:"pixMode,omitempty"` // "text" or "qrcode_static"
}

// VertraConfig holds the credentials for the hosting lifecycle API.
type VertraConfig struct {
	BaseURL   string `json:"baseUrl,omitempty"`
	ServiceID string `json:"serviceId,omitempty"`
	APIKey    string `json:"apiKey,omitempty"`
}

// GuildConfig is the per-guild aggregate. One instance per guild, shared by
// reference between handlers; last write wins at the field level.
type GuildConfig struct {
	SupportRoles []string        `json:"supportRoles"`
	AutoRoles    []string        `json:"autoRoles"`
	CategoryID   string          `json:"categoryId,omitempty"`
	Panel        PanelDefinition `json:"panel"`

	WelcomeChannelID   string `json:"welcomeChannelId,omitempty"`
	LeaveChannelID     string `json:"leaveChannelId,omitempty"`
	StatusLogChannelID string `json:"statusLogChannelId,omitempty"`

	TempEmbed          *EmbedData         `json:"tempEmbed,omitempty"`
	TempEmbedMessageID string             `json:"tempEmbedMessageId,omitempty"`
	TempEmbedChannelID string             `json:"tempEmbedChannelId,omitempty"`
	TempProduct        *ProductDefinition `json:"tempProduct,omitempty"`

	PaymentConfig PaymentConfig                `json:"paymentConfig"`
	Products      map[string]ProductDefinition `json:"products"`

	AIChannels     []string `json:"aiChannels,omitempty"`
	UploadChannels []string `json:"uploadChannels,omitempty"`

	Language     string `json:"language,omitempty"`
	TempLanguage string `json:"tempLanguage,omitempty"`

	VertraConfig VertraConfig `json:"vertraConfig"`

	LastCodeSignature string `json:"lastCodeSignature,omitempty"`
	LastStartTime     string `json:"lastStartTime,omitempty"`
}

// clone returns an independent copy of the aggregate. Nested maps, slices
// and scratch-buffer pointers are all duplicated, so readers can never touch
// the registry's live state.
func (c *GuildConfig) clone() *GuildConfig {
	out := *c
	out.SupportRoles = append([]string(nil), c.SupportRoles...)
	out.AutoRoles = append([]string(nil), c.AutoRoles...)
	out.AIChannels = append([]string(nil), c.AIChannels...)
	out.UploadChannels = append([]string(nil), c.UploadChannels...)
	out.Panel.Options = append([]PanelOption(nil), c.Panel.Options...)
	if c.TempEmbed != nil {
		e := *c.TempEmbed
		e.Fields = append([]EmbedField(nil), c.TempEmbed.Fields...)
		out.TempEmbed = &e
	}
	if c.TempProduct != nil {
		p := *c.TempProduct
		out.TempProduct = &p
	}
	out.Products = make(map[string]ProductDefinition, len(c.Products))
	for id, p := range c.Products {
		out.Products[id] = p
	}
	return &out
}

// DefaultPanel returns the stock ticket panel new guilds start with.
func DefaultPanel() PanelDefinition {
	return PanelDefinition{
		Title:             "Support Yoloo Cloud",
		Description:       "Abra um ticket selecionando a opção abaixo.",
		Color:             DefaultColor,
		FooterText:        "Powered By Yoloo Cloud",
		PanelType:         "default",
		AdvancedConfig:    false,
		SimpleButtonLabel: "Abrir Ticket",
		Options: []PanelOption{
			{Label: "Problemas com minha compra", Description: "Cobrança, PIX, entrega", Value: "compra", Emoji: "pix"},
			{Label: "Meu Produto não chegou", Description: "Atraso / extravio", Value: "atraso", Emoji: "package1"},
			{Label: "Preciso de ajuda!", Description: "Suporte geral", Value: "ajuda", Emoji: "sino"},
		},
	}
}

// DefaultEmbed returns the starting buffer for the embed editor.
func DefaultEmbed() *EmbedData {
	return &EmbedData{
		Title:       "Embed de Exemplo",
		Description: "Use os botões para editar o conteúdo desta embed.",
		Color:       DefaultColor,
		FooterText:  "Editor de Embed",
	}
}

// DefaultProduct returns the starting buffer for the product editor.
func DefaultProduct() *ProductDefinition {
	return &ProductDefinition{
		Title:       "Insira o nome do produto aqui",
		Description: "Insira a descrição do produto aqui",
		Color:       DefaultColor,
		Price:       9.99,
		Stock:       -1,
		FooterText:  "Powered By Yoloo Cloud, CDS Network inc. © Todos os direitos reservados",
	}
}
