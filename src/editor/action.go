// Package editor owns the interactive configuration surfaces: the ticket
// panel editor, the embed editor, the product editor, payment settings and
// the language picker. Component and modal custom IDs are parsed once into a
// typed Action and dispatched on its kind, so dynamic suffixes (product and
// payment references) never leak into string comparisons downstream.
package editor

import "strings"

// Kind discriminates the action union.
type Kind int

const (
	Unknown Kind = iota
	PanelEdit
	PanelToggle
	PanelReady
	PanelSave
	ThemeSelect
	TicketOpen
	TicketClose
	TicketReschedule
	ProductEdit
	ProductSend
	EmbedEdit
	EmbedOp
	PaymentToggle
	PaymentConfig
	Buy
	GeneratePayment
	LanguageSelect
	LanguageSave
	Freekey
	Admin
	Noop
)

var kindNames = map[Kind]string{
	Unknown:          "unknown",
	PanelEdit:        "panel-edit",
	PanelToggle:      "panel-toggle",
	PanelReady:       "panel-ready",
	PanelSave:        "panel-save",
	ThemeSelect:      "theme-select",
	TicketOpen:       "ticket-open",
	TicketClose:      "ticket-close",
	TicketReschedule: "ticket-reschedule",
	ProductEdit:      "product-edit",
	ProductSend:      "product-send",
	EmbedEdit:        "embed-edit",
	EmbedOp:          "embed-op",
	PaymentToggle:    "payment-toggle",
	PaymentConfig:    "payment-config",
	Buy:              "buy",
	GeneratePayment:  "generate-payment",
	LanguageSelect:   "language-select",
	LanguageSave:     "language-save",
	Freekey:          "freekey",
	Admin:            "admin",
	Noop:             "noop",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "unknown"
}

// Action is one parsed custom ID. Target names the field or sub-operation,
// Arg carries a dynamic suffix (product ID, guild ID), Modal marks a modal
// submission rather than a component press.
type Action struct {
	Kind   Kind
	Target string
	Arg    string
	Modal  bool
}

// fixed maps every static custom ID to its action.
var fixed = map[string]Action{
	"edit-title":             {Kind: PanelEdit, Target: "title"},
	"edit-desc":              {Kind: PanelEdit, Target: "desc"},
	"edit-color":             {Kind: PanelEdit, Target: "color"},
	"edit-banner":            {Kind: PanelEdit, Target: "banner"},
	"edit-thumb":             {Kind: PanelEdit, Target: "thumb"},
	"edit-footer":            {Kind: PanelEdit, Target: "footer"},
	"edit-selects":           {Kind: PanelEdit, Target: "selects"},
	"edit-emojis":            {Kind: PanelEdit, Target: "emojis"},
	"edit-simple-label":      {Kind: PanelEdit, Target: "simple-label"},
	"toggle-panel-type":      {Kind: PanelToggle, Target: "panel-type"},
	"toggle-advanced-config": {Kind: PanelToggle, Target: "advanced-config"},
	"ready-panel":            {Kind: PanelReady},
	"save-panel":             {Kind: PanelSave},
	"select-theme":           {Kind: ThemeSelect},

	"ticket-select":        {Kind: TicketOpen, Target: "select"},
	"simple-ticket-open":   {Kind: TicketOpen, Target: "simple"},
	"ticket-close":         {Kind: TicketClose},
	"ticket-close-confirm": {Kind: TicketClose, Target: "confirm"},
	"ticket-close-cancel":  {Kind: TicketClose, Target: "cancel"},
	"ticket-reschedule":    {Kind: TicketReschedule},

	"edit-prod-title":  {Kind: ProductEdit, Target: "title"},
	"edit-prod-desc":   {Kind: ProductEdit, Target: "desc"},
	"edit-prod-color":  {Kind: ProductEdit, Target: "color"},
	"edit-prod-price":  {Kind: ProductEdit, Target: "price"},
	"edit-prod-stock":  {Kind: ProductEdit, Target: "stock"},
	"edit-prod-banner": {Kind: ProductEdit, Target: "banner"},
	"edit-prod-thumb":  {Kind: ProductEdit, Target: "thumb"},
	"edit-prod-footer": {Kind: ProductEdit, Target: "footer"},
	"send-product":     {Kind: ProductSend},

	"edit-embed-title":        {Kind: EmbedEdit, Target: "title"},
	"edit-embed-desc":         {Kind: EmbedEdit, Target: "desc"},
	"edit-embed-color":        {Kind: EmbedEdit, Target: "color"},
	"edit-embed-banner":       {Kind: EmbedEdit, Target: "banner"},
	"edit-embed-thumb":        {Kind: EmbedEdit, Target: "thumb"},
	"edit-embed-footer":       {Kind: EmbedEdit, Target: "footer"},
	"edit-embed-field1":       {Kind: EmbedEdit, Target: "field1"},
	"edit-embed-field2":       {Kind: EmbedEdit, Target: "field2"},
	"edit-embed-field3":       {Kind: EmbedEdit, Target: "field3"},
	"edit-embed-clear-fields": {Kind: EmbedOp, Target: "clear-fields"},
	"post-embed":              {Kind: EmbedOp, Target: "post"},
	"post-embed-webhook":      {Kind: EmbedOp, Target: "webhook"},
	"export-embed":            {Kind: EmbedOp, Target: "export"},
	"import-embed":            {Kind: EmbedOp, Target: "import"},

	"toggle-payment": {Kind: PaymentToggle},
	"config-mp":      {Kind: PaymentConfig, Target: "mp"},
	"config-pix":     {Kind: PaymentConfig, Target: "pix"},

	"select-language": {Kind: LanguageSelect},
	"save-language":   {Kind: LanguageSave},

	"freekey":      {Kind: Freekey},
	"freekey-form": {Kind: Freekey, Target: "form"},

	"noop-pix-mode-display":  {Kind: Noop},
	"noop-payment-generated": {Kind: Noop},
}

// dynamic prefixes carry a trailing argument.
var dynamic = []struct {
	prefix string
	action Action
}{
	{"product-buy-", Action{Kind: Buy}},
	{"generate-payment-", Action{Kind: GeneratePayment}},
	{"admin-remove-confirm-", Action{Kind: Admin, Target: "remove-confirm"}},
}

// Parse turns a component or modal custom ID into its Action. Unknown IDs
// come back as Kind Unknown with the raw ID in Target so callers can log it.
func Parse(customID string) Action {
	id := customID
	modal := false
	if strings.HasPrefix(id, "modal-") {
		modal = true
		id = strings.TrimPrefix(id, "modal-")
	}

	for _, d := range dynamic {
		if strings.HasPrefix(id, d.prefix) {
			act := d.action
			act.Arg = strings.TrimPrefix(id, d.prefix)
			act.Modal = modal
			return act
		}
	}

	if strings.HasPrefix(id, "admin-") {
		act := Action{Kind: Admin, Target: strings.TrimPrefix(id, "admin-"), Modal: modal}
		return act
	}
	if strings.HasPrefix(id, "vertra-") {
		return Action{Kind: Admin, Target: id, Modal: modal}
	}

	if act, ok := fixed[id]; ok {
		act.Modal = modal
		return act
	}
	return Action{Kind: Unknown, Target: customID, Modal: modal}
}
