package admin

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/olekukonko/tablewriter"

	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/economy"
	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/gofile"
	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/guildconfig"
	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/vertra"
)

func replyEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("[Admin] ephemeral reply: %v", err)
	}
}

func showModal(s *discordgo.Session, i *discordgo.InteractionCreate, customID, title string, inputs ...discordgo.TextInput) {
	components := make([]discordgo.MessageComponent, len(inputs))
	for idx, in := range inputs {
		components[idx] = discordgo.ActionsRow{Components: []discordgo.MessageComponent{in}}
	}
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID:   customID,
			Title:      title,
			Components: components,
		},
	})
	if err != nil {
		log.Printf("[Admin] show modal: %v", err)
	}
}

func modalValues(i *discordgo.InteractionCreate) []string {
	var values []string
	for _, comp := range i.ModalSubmitData().Components {
		row, ok := comp.(*discordgo.ActionsRow)
		if !ok || len(row.Components) == 0 {
			continue
		}
		if in, ok := row.Components[0].(*discordgo.TextInput); ok {
			values = append(values, in.Value)
		}
	}
	return values
}

func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

// HandleComponent dispatches one admin panel button press. Everything is
// re-gated here; the hidden channel alone is not an authorization boundary.
func HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate, target, arg string) {
	if !IsOwner(interactionUserID(i)) {
		replyEphemeral(s, i, "❌ Apenas o dono do bot pode usar este painel.")
		return
	}

	switch target {
	case "export-servers":
		exportServers(s, i)
	case "top-command":
		topCommands(s, i)
	case "list-owners":
		listOwners(s, i)
	case "broadcast":
		showModal(s, i, "modal-admin-broadcast", "Broadcast",
			discordgo.TextInput{CustomID: "message", Label: "Mensagem", Style: discordgo.TextInputParagraph, Required: true, MaxLength: 2000})
	case "remove":
		showModal(s, i, "modal-admin-remove", "Remover Servidor",
			discordgo.TextInput{CustomID: "guild", Label: "ID do Servidor", Style: discordgo.TextInputShort, Required: true, MaxLength: 32})
	case "remove-confirm":
		if err := s.GuildLeave(arg); err != nil {
			log.Printf("[Admin] guild leave %s: %v", arg, err)
			replyEphemeral(s, i, "❌ Não consegui sair do servidor "+arg+".")
			return
		}
		replyEphemeral(s, i, "✅ Saí do servidor "+arg+".")
	case "remove-cancel":
		replyEphemeral(s, i, "Remoção cancelada.")
	case "clean-spam":
		cleanSpam(s, i)
	case "advanced-config":
		cfg := guildconfig.GetOrCreate(i.GuildID).VertraConfig
		showModal(s, i, "modal-admin-advanced-config", "Config Avançada",
			discordgo.TextInput{CustomID: "baseUrl", Label: "Base URL", Value: cfg.BaseURL, Style: discordgo.TextInputShort, Required: true},
			discordgo.TextInput{CustomID: "serviceId", Label: "Service ID", Value: cfg.ServiceID, Style: discordgo.TextInputShort, Required: true},
			discordgo.TextInput{CustomID: "apiKey", Label: "API Key", Value: cfg.APIKey, Style: discordgo.TextInputShort, Required: true})
	case "add-yc":
		showModal(s, i, "modal-admin-add-yc", "Adicionar YC",
			discordgo.TextInput{CustomID: "user", Label: "ID do Usuário", Style: discordgo.TextInputShort, Required: true, MaxLength: 32},
			discordgo.TextInput{CustomID: "amount", Label: "Quantidade", Placeholder: "1500", Style: discordgo.TextInputShort, Required: true, MaxLength: 9})
	case "vertra-start", "vertra-stop", "vertra-restart", "vertra-pause":
		lifecycle(s, i, strings.TrimPrefix(target, "vertra-"))
	}
}

// HandleModal dispatches one admin modal submission.
func HandleModal(s *discordgo.Session, i *discordgo.InteractionCreate, target string) {
	if !IsOwner(interactionUserID(i)) {
		replyEphemeral(s, i, "❌ Apenas o dono do bot pode usar este painel.")
		return
	}
	values := modalValues(i)

	switch target {
	case "broadcast":
		if len(values) == 0 {
			return
		}
		broadcast(s, i, values[0])
	case "remove":
		if len(values) == 0 {
			return
		}
		confirmRemove(s, i, strings.TrimSpace(values[0]))
	case "advanced-config":
		if len(values) < 3 {
			return
		}
		guildconfig.Mutate(i.GuildID, func(cfg *guildconfig.GuildConfig) {
			cfg.VertraConfig.BaseURL = strings.TrimSpace(values[0])
			cfg.VertraConfig.ServiceID = strings.TrimSpace(values[1])
			cfg.VertraConfig.APIKey = strings.TrimSpace(values[2])
		})
		replyEphemeral(s, i, "✅ Configuração avançada salva.")
	case "add-yc":
		if len(values) < 2 {
			return
		}
		id := strings.TrimSpace(values[0])
		if id == "" {
			replyEphemeral(s, i, "❌ ID vazio.")
			return
		}
		amount, err := strconv.Atoi(strings.TrimSpace(values[1]))
		if err != nil || amount <= 0 {
			replyEphemeral(s, i, "❌ Quantidade inválida. Use um número positivo.")
			return
		}
		balance, err := economy.AddBalance(id, amount, i.GuildID)
		if err != nil {
			replyEphemeral(s, i, "❌ "+err.Error())
			return
		}
		replyEphemeral(s, i, fmt.Sprintf("✅ %d YC adicionados a <@%s>. Saldo atual: %d.", amount, id, balance))
	}
}

type serverExport struct {
	GuildID string `json:"guildId"`
	Name    string `json:"name"`
	OwnerID string `json:"ownerId"`
	Members int    `json:"members"`
}

// exportServers dumps every connected guild as JSON. Small dumps go inline,
// large ones through the file host with the link sent by DM.
func exportServers(s *discordgo.Session, i *discordgo.InteractionCreate) {
	var servers []serverExport
	for _, g := range s.State.Guilds {
		servers = append(servers, serverExport{
			GuildID: g.ID,
			Name:    g.Name,
			OwnerID: g.OwnerID,
			Members: g.MemberCount,
		})
	}
	raw, err := json.MarshalIndent(servers, "", "  ")
	if err != nil {
		replyEphemeral(s, i, "❌ Falha ao exportar os servidores.")
		return
	}

	if len(raw) <= 1900 {
		replyEphemeral(s, i, "```json\n"+string(raw)+"\n```")
		return
	}

	res := gofile.Upload(raw, "servers.json")
	if !res.OK {
		log.Printf("[Admin] export upload: %v", res.Err)
		replyEphemeral(s, i, "❌ Falha ao enviar o arquivo de exportação.")
		return
	}
	replyEphemeral(s, i, "📤 Exportação concluída: "+res.URL)
}

func topCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	entries := TopCommands()
	if len(entries) == 0 {
		replyEphemeral(s, i, "Nenhum comando registrado ainda.")
		return
	}

	var buf strings.Builder
	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Comando", "Usos"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for idx, e := range entries {
		if idx >= 15 {
			break
		}
		table.Append([]string{e.Command, fmt.Sprintf("%d", e.Count)})
	}
	table.Render()
	replyEphemeral(s, i, "```\n"+buf.String()+"```")
}

func listOwners(s *discordgo.Session, i *discordgo.InteractionCreate) {
	var buf strings.Builder
	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Servidor", "Dono"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, g := range s.State.Guilds {
		name := g.Name
		if len(name) > 24 {
			name = name[:24]
		}
		table.Append([]string{name, g.OwnerID})
	}
	table.Render()
	out := buf.String()
	if len(out) > 1900 {
		out = out[:1900]
	}
	replyEphemeral(s, i, "```\n"+out+"```")
}

// broadcast DMs the owner of every connected guild plus the staff list.
func broadcast(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	targets := make(map[string]bool)
	for _, g := range s.State.Guilds {
		if g.OwnerID != "" {
			targets[g.OwnerID] = true
		}
	}
	for _, id := range Admins() {
		targets[id] = true
	}

	sent := 0
	embed := &discordgo.MessageEmbed{
		Title:       "📢 Comunicado Yoloo Cloud",
		Description: message,
		Color:       guildconfig.DefaultColor,
	}
	for id := range targets {
		dm, err := s.UserChannelCreate(id)
		if err != nil {
			continue
		}
		if _, err := s.ChannelMessageSendEmbed(dm.ID, embed); err == nil {
			sent++
		}
	}
	replyEphemeral(s, i, fmt.Sprintf("✅ Comunicado enviado para %d usuário(s).", sent))
}

func confirmRemove(s *discordgo.Session, i *discordgo.InteractionCreate, guildID string) {
	if guildID == "" {
		replyEphemeral(s, i, "❌ Informe o ID do servidor.")
		return
	}
	name := guildID
	if g, err := s.State.Guild(guildID); err == nil {
		name = g.Name
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: "Confirma a saída do servidor **" + name + "**?",
			Flags:   discordgo.MessageFlagsEphemeral,
			Components: []discordgo.MessageComponent{discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.Button{CustomID: "admin-remove-confirm-" + guildID, Label: "Sim, sair", Style: discordgo.DangerButton},
				discordgo.Button{CustomID: "admin-remove-cancel", Label: "Cancelar", Style: discordgo.SecondaryButton},
			}}},
		},
	})
	if err != nil {
		log.Printf("[Admin] remove confirm: %v", err)
	}
}

// cleanSpam bulk-deletes the bot's own recent messages in the channel.
func cleanSpam(s *discordgo.Session, i *discordgo.InteractionCreate) {
	botID := ""
	if s.State.User != nil {
		botID = s.State.User.ID
	}

	msgs, err := s.ChannelMessages(i.ChannelID, 50, "", "", "")
	if err != nil {
		replyEphemeral(s, i, "❌ Não consegui listar as mensagens do canal.")
		return
	}
	var ids []string
	for _, m := range msgs {
		if m.Author != nil && m.Author.ID == botID {
			ids = append(ids, m.ID)
		}
	}
	if len(ids) == 0 {
		replyEphemeral(s, i, "Nenhuma mensagem minha para limpar.")
		return
	}
	if err := s.ChannelMessagesBulkDelete(i.ChannelID, ids); err != nil {
		log.Printf("[Admin] bulk delete: %v", err)
		replyEphemeral(s, i, "❌ Falha ao apagar as mensagens.")
		return
	}
	replyEphemeral(s, i, fmt.Sprintf("🧹 %d mensagem(ns) apagada(s).", len(ids)))
}

func lifecycle(s *discordgo.Session, i *discordgo.InteractionCreate, action string) {
	cfg := guildconfig.GetOrCreate(i.GuildID)
	res := vertra.Do(cfg.VertraConfig, action)
	if !res.OK {
		log.Printf("[Admin] vertra %s: %v", action, res.Err)
		replyEphemeral(s, i, "❌ Falha ao executar `"+action+"` no serviço.")
		return
	}
	replyEphemeral(s, i, "✅ Ação `"+action+"` executada com sucesso.")
}
