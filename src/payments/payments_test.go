package payments

import (
	"strings"
	"testing"

	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/guildconfig"
)

func TestCRC16CheckValue(t *testing.T) {
	// CRC-16/CCITT-FALSE standard check value.
	if got := crc16("123456789"); got != 0x29B1 {
		t.Errorf("crc16 = %#04x, want 0x29b1", got)
	}
}

func TestEMVEncoding(t *testing.T) {
	if got := emv("00", "01"); got != "000201" {
		t.Errorf("emv = %q, want 000201", got)
	}
	if got := emv("59", "Yoloo Cloud"); got != "5911Yoloo Cloud" {
		t.Errorf("emv = %q", got)
	}
}

func TestStaticPixPayload(t *testing.T) {
	payload := StaticPixPayload("chave@exemplo.com", 19.99, "tx123456")

	if !strings.HasPrefix(payload, "000201") {
		t.Errorf("payload should start with the format indicator: %q", payload)
	}
	if !strings.Contains(payload, "br.gov.bcb.pix") {
		t.Error("payload missing the pix GUI")
	}
	if !strings.Contains(payload, "chave@exemplo.com") {
		t.Error("payload missing the key")
	}
	if !strings.Contains(payload, "540519.99") {
		t.Error("payload missing the amount element")
	}
	if !strings.Contains(payload, "5802BR") {
		t.Error("payload missing the country element")
	}

	idx := strings.LastIndex(payload, "6304")
	if idx < 0 || idx != len(payload)-8 {
		t.Fatalf("payload must end with 6304 plus four CRC digits: %q", payload)
	}
	want := payload[:idx+4]
	crc := payload[idx+4:]
	if got := crc16(want); got != mustParseHex(t, crc) {
		t.Errorf("crc mismatch: payload has %s, computed %04X", crc, got)
	}
}

func TestStaticPixPayloadZeroAmountOmitted(t *testing.T) {
	with := StaticPixPayload("key", 1, "tx")
	without := StaticPixPayload("key", 0, "tx")

	if !strings.Contains(with, "54041.00") {
		t.Errorf("amount element missing: %q", with)
	}
	if len(without) != len(with)-len("54041.00") {
		t.Errorf("zero amount must omit the amount element: %q", without)
	}
}

func TestStaticPixPayloadTruncatesTxID(t *testing.T) {
	long := strings.Repeat("a", 40)
	payload := StaticPixPayload("key", 1, long)
	if strings.Contains(payload, long) {
		t.Error("txid must be truncated to 25 characters")
	}
	if !strings.Contains(payload, strings.Repeat("a", 25)) {
		t.Error("truncated txid missing from payload")
	}
}

func TestPixTypeLabel(t *testing.T) {
	var tests = []struct {
		in, want string
	}{
		{"cpf", "CPF"},
		{"cnpj", "CNPJ"},
		{"email", "E-mail"},
		{"phone", "Telefone"},
		{"random", "Chave Aleatória"},
		{"custom", "custom"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := PixTypeLabel(tt.in); got != tt.want {
				t.Errorf("PixTypeLabel(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestBuildPixEmbedStaticModeAddsPayload(t *testing.T) {
	cfg := guildconfig.PaymentConfig{PixType: "email", PixKey: "k@e.com", PixMode: "qrcode_static"}
	product := guildconfig.ProductDefinition{Title: "VPS", Price: 10}

	embed := BuildPixEmbed(cfg, product, "tx1")
	found := false
	for _, f := range embed.Fields {
		if strings.Contains(f.Name, "Copia e Cola") {
			found = true
		}
	}
	if !found {
		t.Error("static mode should include the copia e cola field")
	}

	cfg.PixMode = "text"
	embed = BuildPixEmbed(cfg, product, "tx1")
	for _, f := range embed.Fields {
		if strings.Contains(f.Name, "Copia e Cola") {
			t.Error("text mode should not include the payload field")
		}
	}
}

func mustParseHex(t *testing.T, s string) uint16 {
	t.Helper()
	var v uint16
	for i := 0; i < len(s); i++ {
		c := s[i]
		var d uint16
		switch {
		case c >= '0' && c <= '9':
			d = uint16(c - '0')
		case c >= 'A' && c <= 'F':
			d = uint16(c-'A') + 10
		case c >= 'a' && c <= 'f':
			d = uint16(c-'a') + 10
		default:
			t.Fatalf("bad hex %q", s)
		}
		v = v<<4 | d
	}
	return v
}
