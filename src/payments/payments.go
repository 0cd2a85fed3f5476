// Package payments builds the checkout artifacts for a cart: a Mercado Pago
// charge when a token is configured, otherwise a Pix transfer (manual key or
// a static EMV "copia e cola" payload).
package payments

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/xid"

	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/guildconfig"
	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/panel"
)

const mercadoPagoColor = 0x00A6FF

// PixTypeLabel maps a stored key type to its display name.
func PixTypeLabel(pixType string) string {
	switch pixType {
	case "cpf":
		return "CPF"
	case "cnpj":
		return "CNPJ"
	case "email":
		return "E-mail"
	case "phone":
		return "Telefone"
	case "random":
		return "Chave Aleatória"
	}
	return pixType
}

// NewTransactionID returns a fresh payment reference.
func NewTransactionID() string {
	return xid.New().String()
}

// BuildMercadoPagoEmbed renders the charge for a Mercado Pago checkout.
// The copia-e-cola content is a placeholder reference until the charge is
// confirmed server side.
func BuildMercadoPagoEmbed(product guildconfig.ProductDefinition, txID string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "💳 Pagamento Gerado",
		Description: "Use o código abaixo para concluir o pagamento via Mercado Pago.",
		Color:       mercadoPagoColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "📦 Produto", Value: panel.Clamp(product.Title, panel.MaxFieldValue), Inline: true},
			{Name: "💰 Valor", Value: panel.PriceLabel(product.Price), Inline: true},
			{Name: "🔖 Referência", Value: txID, Inline: false},
			{Name: "📋 Copia e Cola", Value: "```mp-" + txID + "```", Inline: false},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "Mercado Pago"},
	}
}

// BuildPixEmbed renders the manual Pix instructions for a cart.
func BuildPixEmbed(cfg guildconfig.PaymentConfig, product guildconfig.ProductDefinition, txID string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       "💳 Pagamento via Pix",
		Description: "Realize a transferência com os dados abaixo e envie o comprovante neste canal.",
		Color:       guildconfig.DefaultColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "📦 Produto", Value: panel.Clamp(product.Title, panel.MaxFieldValue), Inline: true},
			{Name: "💰 Valor", Value: panel.PriceLabel(product.Price), Inline: true},
			{Name: "🔑 Tipo de Chave", Value: PixTypeLabel(cfg.PixType), Inline: true},
			{Name: "📋 Chave Pix", Value: "```" + cfg.PixKey + "```", Inline: false},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "Referência: " + txID},
	}
	if cfg.PixMode == "qrcode_static" {
		payload := StaticPixPayload(cfg.PixKey, product.Price, txID)
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "📱 Pix Copia e Cola",
			Value:  "```" + payload + "```",
			Inline: false,
		})
	}
	return embed
}

// emv encodes one EMV tag-length-value element.
func emv(id, value string) string {
	return fmt.Sprintf("%s%02d%s", id, len(value), value)
}

// StaticPixPayload builds a BR Code (static Pix) payload for the given key
// and amount, suitable for "copia e cola" or QR rendering.
func StaticPixPayload(pixKey string, amount float64, txID string) string {
	if len(txID) > 25 {
		txID = txID[:25]
	}
	merchant := emv("00", "br.gov.bcb.pix") + emv("01", pixKey)

	var b strings.Builder
	b.WriteString(emv("00", "01"))
	b.WriteString(emv("26", merchant))
	b.WriteString(emv("52", "0000"))
	b.WriteString(emv("53", "986"))
	if amount > 0 {
		b.WriteString(emv("54", fmt.Sprintf("%.2f", amount)))
	}
	b.WriteString(emv("58", "BR"))
	b.WriteString(emv("59", "Yoloo Cloud"))
	b.WriteString(emv("60", "SAO PAULO"))
	b.WriteString(emv("62", emv("05", txID)))
	b.WriteString("6304")

	payload := b.String()
	return payload + fmt.Sprintf("%04X", crc16(payload))
}

// crc16 is CRC-16/CCITT-FALSE as required by the BR Code spec.
func crc16(s string) uint16 {
	crc := uint16(0xFFFF)
	for i := 0; i < len(s); i++ {
		crc ^= uint16(s[i]) << 8
		for bit := 0; bit < 8; bit++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
