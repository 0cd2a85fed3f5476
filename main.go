package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/admin"
	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/aichat"
	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/config"
	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/db"
	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/economy"
	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/editor"
	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/events"
	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/guildconfig"
	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/panel"
	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/store"
	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/tasks"
	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/ticket"
	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/version"
)

// Slash Command Constants
const slashConfigChannel string = "config-channel"
const slashConfigUsers string = "config-users"
const slashConfigPanel string = "config-painel"
const slashConfigPay string = "configpay"
const slashEmbed string = "embed"
const slashCreateProduct string = "criarproduto"
const slashDMService string = "dmservice"
const slashDaily string = "daily"
const slashProfile string = "perfil"
const slashRanking string = "ranking"
const slashStatus string = "status"
const slashLanguage string = "language"

// Bot parameters to override .config.json parameters
var (
	GuildID  = flag.String("guild", "", "Test guild ID")
	BotToken = flag.String("token", "", "Bot access token")
	AppID    = flag.String("app", "", "Application ID")
)

var s *discordgo.Session

var startTime time.Time

// main init to call other init functions in sequence
func init() {
	initLaunchParameters()
	initDiscordBot()
	initStorage()
}

func initLaunchParameters() {
	// Read application parameters
	flag.Parse()

	// Read values from .env file
	err := config.ReadConfig()

	if err != nil {
		fmt.Println(err.Error())
		return
	}

	if *BotToken == "" {
		BotToken = &config.DiscordToken
	}

	if *AppID == "" {
		AppID = &config.DiscordAppID
	}

	if *GuildID == "" {
		GuildID = &config.DiscordGuildID
	}
}

func initDiscordBot() {
	var err error

	s, err = discordgo.New("Bot " + *BotToken)
	if err != nil {
		log.Fatalf("Invalid bot parameters: %v", err)
	}
}

func initStorage() {
	st := store.NewDisk(config.DataDir)
	guildconfig.Init(st)
	economy.Init(st)
	admin.Init(st)
	tasks.Start(st)
}

// commandOptions flattens the interaction options by name.
func commandOptions(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	options := i.ApplicationCommandData().Options
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}

func replyEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("ephemeral reply: %v", err)
	}
}

func replyEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
	if err != nil {
		log.Printf("embed reply: %v", err)
	}
}

var commandsHandlers = map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate){
	slashConfigChannel: func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		opts := commandOptions(i)
		now := time.Now().UTC().Format(time.RFC3339)
		uid := interactionUserID(i)
		var applied []string
		var categoryID, welcomeID, leaveID, statusID string

		if opt, ok := opts["categoria"]; ok {
			ch := opt.ChannelValue(s)
			if ch == nil || ch.Type != discordgo.ChannelTypeGuildCategory {
				guildconfig.AppendFailure(slashConfigChannel, uid, i.GuildID, "option is not a category")
				replyEphemeral(s, i, "❌ O canal informado não é uma categoria.")
				return
			}
			categoryID = ch.ID
			guildconfig.AppendLog(store.LogCategory, guildconfig.ChannelLogEntry{
				UserID: uid, GuildID: i.GuildID, ChannelID: ch.ID, Timestamp: now,
			})
			applied = append(applied, "categoria de tickets")
		}
		if opt, ok := opts["bemvindo"]; ok {
			if ch := opt.ChannelValue(s); ch != nil {
				welcomeID = ch.ID
				guildconfig.AppendLog(store.LogWelcome, guildconfig.ChannelLogEntry{
					UserID: uid, GuildID: i.GuildID, ChannelID: ch.ID, Timestamp: now,
				})
				applied = append(applied, "canal de boas-vindas")
			}
		}
		if opt, ok := opts["saida"]; ok {
			if ch := opt.ChannelValue(s); ch != nil {
				leaveID = ch.ID
				guildconfig.AppendLog(store.LogLeave, guildconfig.ChannelLogEntry{
					UserID: uid, GuildID: i.GuildID, ChannelID: ch.ID, Timestamp: now,
				})
				applied = append(applied, "canal de saída")
			}
		}
		if opt, ok := opts["logs"]; ok {
			if ch := opt.ChannelValue(s); ch != nil {
				statusID = ch.ID
				applied = append(applied, "canal de status")
			}
		}

		if len(applied) == 0 {
			replyEphemeral(s, i, "Nenhuma opção informada. Use as opções do comando para configurar os canais.")
			return
		}
		guildconfig.Mutate(i.GuildID, func(cfg *guildconfig.GuildConfig) {
			if categoryID != "" {
				cfg.CategoryID = categoryID
			}
			if welcomeID != "" {
				cfg.WelcomeChannelID = welcomeID
			}
			if leaveID != "" {
				cfg.LeaveChannelID = leaveID
			}
			if statusID != "" {
				cfg.StatusLogChannelID = statusID
			}
		})
		replyEphemeral(s, i, "✅ Configurado: "+strings.Join(applied, ", ")+".")
	},

	slashConfigUsers: func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		opts := commandOptions(i)
		now := time.Now().UTC().Format(time.RFC3339)
		uid := interactionUserID(i)
		var applied []string

		var supportID, autoID string
		if opt, ok := opts["suporte"]; ok {
			if role := opt.RoleValue(s, i.GuildID); role != nil {
				supportID = role.ID
			}
		}
		if opt, ok := opts["autorole"]; ok {
			if role := opt.RoleValue(s, i.GuildID); role != nil {
				autoID = role.ID
			}
		}

		guildconfig.Mutate(i.GuildID, func(cfg *guildconfig.GuildConfig) {
			if supportID != "" && !containsString(cfg.SupportRoles, supportID) {
				cfg.SupportRoles = append(cfg.SupportRoles, supportID)
				guildconfig.AppendLog(store.LogSupportRoles, guildconfig.RolesLogEntry{
					UserID: uid, GuildID: i.GuildID, RoleIDs: cfg.SupportRoles, Timestamp: now,
				})
				applied = append(applied, "cargo de suporte <@&"+supportID+">")
			}
			if autoID != "" && !containsString(cfg.AutoRoles, autoID) {
				cfg.AutoRoles = append(cfg.AutoRoles, autoID)
				guildconfig.AppendLog(store.LogAutoRoles, guildconfig.RolesLogEntry{
					UserID: uid, GuildID: i.GuildID, RoleIDs: cfg.AutoRoles, Timestamp: now,
				})
				applied = append(applied, "autorole <@&"+autoID+">")
			}
		})

		if len(applied) == 0 {
			replyEphemeral(s, i, "Nenhum cargo novo para adicionar.")
			return
		}
		replyEphemeral(s, i, "✅ Configurado: "+strings.Join(applied, ", ")+".")
	},

	slashConfigPanel: func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		editor.ShowPanelEditor(s, i)
	},

	slashConfigPay: func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		editor.ShowPaymentPanel(s, i)
	},

	slashEmbed: func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		editor.ShowEmbedEditor(s, i)
	},

	slashCreateProduct: func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		editor.ShowProductEditor(s, i)
	},

	slashDMService: func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		opts := commandOptions(i)
		userOpt, okUser := opts["usuario"]
		msgOpt, okMsg := opts["mensagem"]
		if !okUser || !okMsg {
			replyEphemeral(s, i, "❌ Informe o usuário e a mensagem.")
			return
		}
		target := userOpt.UserValue(s)
		if target == nil {
			replyEphemeral(s, i, "❌ Usuário inválido.")
			return
		}
		dm, err := s.UserChannelCreate(target.ID)
		if err != nil {
			replyEphemeral(s, i, "❌ Não consegui abrir o privado deste usuário.")
			return
		}
		_, err = s.ChannelMessageSendEmbed(dm.ID, &discordgo.MessageEmbed{
			Title:       "📨 Mensagem da Equipe",
			Description: msgOpt.StringValue(),
			Color:       guildconfig.DefaultColor,
		})
		if err != nil {
			guildconfig.AppendFailure(slashDMService, interactionUserID(i), i.GuildID, "dm closed")
			replyEphemeral(s, i, "❌ O usuário está com o privado fechado.")
			return
		}
		replyEphemeral(s, i, "✅ Mensagem enviada para **"+target.Username+"**.")
	},

	slashDaily: func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		uid := interactionUserID(i)
		res := economy.ClaimDaily(uid, i.GuildID, time.Now().UTC())
		if !res.Granted {
			replyEphemeral(s, i, "⏳ Você já resgatou hoje. Tente novamente em "+economy.FormatCooldown(res.Remaining)+".")
			return
		}
		replyEmbed(s, i, &discordgo.MessageEmbed{
			Title:       "💰 Recompensa Diária",
			Description: fmt.Sprintf("<@%s> resgatou **%d** moedas!", uid, res.Amount),
			Color:       guildconfig.DefaultColor,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Saldo", Value: fmt.Sprintf("%d", res.Balance), Inline: true},
			},
		})
	},

	slashProfile: func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		uid := interactionUserID(i)
		replyEmbed(s, i, &discordgo.MessageEmbed{
			Title: "👤 Perfil",
			Color: guildconfig.DefaultColor,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Usuário", Value: "<@" + uid + ">", Inline: true},
				{Name: "Saldo", Value: fmt.Sprintf("%d moedas", economy.Balance(uid)), Inline: true},
			},
		})
	},

	slashRanking: func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		entries := economy.Ranking(20)
		if len(entries) == 0 {
			replyEphemeral(s, i, "Ninguém resgatou moedas ainda.")
			return
		}
		var b strings.Builder
		for idx, e := range entries {
			fmt.Fprintf(&b, "**%d.** <@%s> — %d moedas\n", idx+1, e.UserID, e.Balance)
		}
		replyEmbed(s, i, &discordgo.MessageEmbed{
			Title:       "🏆 Ranking de Moedas",
			Description: b.String(),
			Color:       guildconfig.DefaultColor,
		})
	},

	slashStatus: func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		uptime := time.Since(startTime).Round(time.Second)
		replyEmbed(s, i, &discordgo.MessageEmbed{
			Title: "📡 Status do Bot",
			Color: guildconfig.DefaultColor,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Versão", Value: version.Release, Inline: true},
				{Name: "Servidores", Value: fmt.Sprintf("%d", len(s.State.Guilds)), Inline: true},
				{Name: "Uptime", Value: uptime.String(), Inline: true},
			},
		})
	},

	slashLanguage: func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		editor.ShowLanguagePicker(s, i)
	},
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

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// dispatchComponent routes one component press by its parsed action.
func dispatchComponent(s *discordgo.Session, i *discordgo.InteractionCreate, act editor.Action) {
	switch act.Kind {
	case editor.PanelEdit:
		editor.HandlePanelEdit(s, i, act)
	case editor.PanelToggle:
		editor.HandlePanelToggle(s, i, act)
	case editor.PanelReady:
		editor.HandleReadyPanel(s, i)
	case editor.PanelSave:
		editor.HandleSavePanel(s, i)
	case editor.ThemeSelect:
		editor.HandleThemeSelect(s, i)
	case editor.TicketOpen:
		ticket.HandleOpen(s, i)
	case editor.TicketClose:
		switch act.Target {
		case "confirm":
			ticket.HandleCloseConfirm(s, i)
		case "cancel":
			ticket.HandleCloseCancel(s, i)
		default:
			ticket.HandleClose(s, i)
		}
	case editor.TicketReschedule:
		ticket.HandleReschedule(s, i)
	case editor.ProductEdit:
		editor.HandleProductEdit(s, i, act)
	case editor.ProductSend:
		editor.HandleSendProduct(s, i)
	case editor.EmbedEdit:
		editor.HandleEmbedEdit(s, i, act)
	case editor.EmbedOp:
		editor.HandleEmbedOp(s, i, act)
	case editor.PaymentToggle:
		editor.HandlePaymentToggle(s, i)
	case editor.PaymentConfig:
		editor.HandlePaymentConfig(s, i, act)
	case editor.Buy:
		ticket.HandleBuy(s, i, act.Arg)
	case editor.GeneratePayment:
		ticket.HandleGeneratePayment(s, i, act.Arg)
	case editor.LanguageSelect:
		editor.HandleLanguageSelect(s, i)
	case editor.LanguageSave:
		editor.HandleLanguageSave(s, i)
	case editor.Freekey:
		editor.HandleFreekey(s, i, act)
	case editor.Admin:
		admin.HandleComponent(s, i, act.Target, act.Arg)
	case editor.Noop:
	default:
		log.Printf("unhandled component %q", act.Target)
	}
}

// dispatchModal routes one modal submission by its parsed action.
func dispatchModal(s *discordgo.Session, i *discordgo.InteractionCreate, act editor.Action) {
	switch act.Kind {
	case editor.PanelEdit:
		editor.HandlePanelModal(s, i, act)
	case editor.EmbedEdit:
		editor.HandleEmbedModal(s, i, act)
	case editor.EmbedOp:
		editor.HandleEmbedOpModal(s, i, act)
	case editor.ProductEdit:
		editor.HandleProductModal(s, i, act)
	case editor.PaymentConfig:
		editor.HandlePaymentModal(s, i, act)
	case editor.Freekey:
		editor.HandleFreekeyModal(s, i)
	case editor.Admin:
		admin.HandleModal(s, i, act.Target)
	default:
		log.Printf("unhandled modal %q", act.Target)
	}
}

// hasManageServer reports whether the author can run config commands here.
func hasManageServer(s *discordgo.Session, userID, channelID string) bool {
	perms, err := s.UserChannelPermissions(userID, channelID)
	if err != nil {
		return false
	}
	return perms&discordgo.PermissionManageServer != 0
}

func handleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	if m.GuildID == "" {
		return
	}

	if aichat.IsUploadChannel(m.GuildID, m.ChannelID) {
		events.HandleUploadMessage(s, m)
		return
	}
	if aichat.IsAIChannel(m.GuildID, m.ChannelID) {
		events.HandleAIMessage(s, m)
		return
	}

	if !strings.HasPrefix(m.Content, "!") {
		return
	}
	command := strings.Fields(m.Content)[0]
	admin.Track(command)

	switch command {
	case "!admin":
		admin.HandleAdminMessage(s, m)

	case "!staff":
		if !admin.IsOwner(m.Author.ID) {
			return
		}
		fields := strings.Fields(m.Content)
		if len(fields) < 2 {
			_, _ = s.ChannelMessageSend(m.ChannelID, "Uso: `!staff <id do usuário>`")
			return
		}
		if !admin.AddAdmin(fields[1]) {
			_, _ = s.ChannelMessageSend(m.ChannelID, "Este usuário já está na equipe.")
			return
		}
		_, _ = s.ChannelMessageSend(m.ChannelID, "✅ <@"+fields[1]+"> adicionado à equipe.")

	case "!tickets":
		if !hasManageServer(s, m.Author.ID, m.ChannelID) {
			return
		}
		cfg := guildconfig.GetOrCreate(m.GuildID)
		var emojis []*discordgo.Emoji
		if g, err := s.State.Guild(m.GuildID); err == nil {
			emojis = g.Emojis
		}
		components := panel.BuildLivePanelComponents(cfg.Panel, emojis)
		if components == nil {
			_, _ = s.ChannelMessageSend(m.ChannelID, "❌ Configure as opções do painel antes de publicar. Use /config-painel.")
			return
		}
		_, err := s.ChannelMessageSendComplex(m.ChannelID, &discordgo.MessageSend{
			Embeds:     []*discordgo.MessageEmbed{panel.BuildPanelEmbed(cfg)},
			Components: components,
		})
		if err != nil {
			log.Printf("!tickets panel: %v", err)
		}

	case "!criarproduto":
		if !hasManageServer(s, m.Author.ID, m.ChannelID) {
			return
		}
		_, _ = s.ChannelMessageSend(m.ChannelID, "🛒 Use o comando `/criarproduto` para abrir o editor de produtos.")

	case "!canalia":
		if !hasManageServer(s, m.Author.ID, m.ChannelID) {
			return
		}
		aichat.RegisterAIChannel(m.GuildID, m.ChannelID)
		_, _ = s.ChannelMessageSend(m.ChannelID, "🤖 Este canal agora responde com IA.")

	case "!canalupload":
		if !hasManageServer(s, m.Author.ID, m.ChannelID) {
			return
		}
		aichat.RegisterUploadChannel(m.GuildID, m.ChannelID)
		_, _ = s.ChannelMessageSend(m.ChannelID, "📎 Este canal agora recebe uploads.")
	}
}

// announceStatus posts the startup or shutdown notice in every guild that
// configured a status log channel. On startup a changed build signature turns
// the notice into an update announcement.
func announceStatus(online bool) {
	signature := version.Release + "-" + version.GitHash
	now := time.Now().UTC().Format(time.RFC3339)

	for _, guildID := range guildconfig.GuildIDs() {
		cfg := guildconfig.GetOrCreate(guildID)
		if cfg.StatusLogChannelID == "" {
			continue
		}

		var embed *discordgo.MessageEmbed
		switch {
		case !online:
			embed = &discordgo.MessageEmbed{
				Title:     "🔴 Bot Offline",
				Color:     0xff0000,
				Timestamp: now,
			}
		case cfg.LastCodeSignature != "" && cfg.LastCodeSignature != signature:
			embed = &discordgo.MessageEmbed{
				Title:       "🔁 Bot Atualizado",
				Description: "Nova versão: **" + version.Release + "**",
				Color:       guildconfig.DefaultColor,
				Timestamp:   now,
			}
		default:
			embed = &discordgo.MessageEmbed{
				Title:     "✅ Bot Online",
				Color:     guildconfig.DefaultColor,
				Timestamp: now,
			}
		}
		if _, err := s.ChannelMessageSendEmbed(cfg.StatusLogChannelID, embed); err != nil {
			log.Printf("status notice for %s: %v", guildID, err)
		}

		if online {
			guildconfig.Mutate(guildID, func(cfg *guildconfig.GuildConfig) {
				cfg.LastCodeSignature = signature
				cfg.LastStartTime = now
			})
		}
	}
}

func main() {
	startTime = time.Now()

	s.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Printf("Bot is up! Logged in as %s (v%s)", r.User.Username, version.Release)
		_ = s.UpdateGameStatus(0, "Yoloo Cloud | /config-painel")
		announceStatus(true)
	})

	// Components and modals are part of interactions, so we register a single
	// InteractionCreate handler and fan out on the parsed custom ID. One bad
	// interaction must not take the gateway loop down with it.
	s.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("interaction handler panic: %v", r)
			}
		}()
		switch i.Type {
		case discordgo.InteractionApplicationCommand:
			name := i.ApplicationCommandData().Name
			if h, ok := commandsHandlers[name]; ok {
				admin.Track("/" + name)
				h(s, i)
			}
		case discordgo.InteractionMessageComponent:
			dispatchComponent(s, i, editor.Parse(i.MessageComponentData().CustomID))
		case discordgo.InteractionModalSubmit:
			dispatchModal(s, i, editor.Parse(i.ModalSubmitData().CustomID))
		}
	})

	s.AddHandler(handleMessage)
	s.AddHandler(events.HandleGuildMemberAdd)
	s.AddHandler(events.HandleGuildMemberRemove)
	s.AddHandler(events.HandleChannelDelete)

	s.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsMessageContent |
		discordgo.IntentsGuildEmojis

	_, err := s.ApplicationCommandCreate(*AppID, *GuildID, &discordgo.ApplicationCommand{
		Name:        slashConfigChannel,
		Description: "Configura os canais do bot neste servidor.",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionChannel,
				Name:        "categoria",
				Description: "Categoria onde os tickets serão criados",
				ChannelTypes: []discordgo.ChannelType{
					discordgo.ChannelTypeGuildCategory,
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionChannel,
				Name:        "bemvindo",
				Description: "Canal de boas-vindas",
			},
			{
				Type:        discordgo.ApplicationCommandOptionChannel,
				Name:        "saida",
				Description: "Canal de saída de membros",
			},
			{
				Type:        discordgo.ApplicationCommandOptionChannel,
				Name:        "logs",
				Description: "Canal de status do bot",
			},
		},
	})
	if err != nil {
		fmt.Println(err)
	}

	_, err = s.ApplicationCommandCreate(*AppID, *GuildID, &discordgo.ApplicationCommand{
		Name:        slashConfigUsers,
		Description: "Configura os cargos de suporte e autorole.",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionRole,
				Name:        "suporte",
				Description: "Cargo com acesso aos tickets",
			},
			{
				Type:        discordgo.ApplicationCommandOptionRole,
				Name:        "autorole",
				Description: "Cargo aplicado a novos membros",
			},
		},
	})
	if err != nil {
		fmt.Println(err)
	}

	_, err = s.ApplicationCommandCreate(*AppID, *GuildID, &discordgo.ApplicationCommand{
		Name:        slashConfigPanel,
		Description: "Abre o editor do painel de tickets.",
	})
	if err != nil {
		fmt.Println(err)
	}

	_, err = s.ApplicationCommandCreate(*AppID, *GuildID, &discordgo.ApplicationCommand{
		Name:        slashConfigPay,
		Description: "Configura os pagamentos deste servidor.",
	})
	if err != nil {
		fmt.Println(err)
	}

	_, err = s.ApplicationCommandCreate(*AppID, *GuildID, &discordgo.ApplicationCommand{
		Name:        slashEmbed,
		Description: "Abre o editor de embeds.",
	})
	if err != nil {
		fmt.Println(err)
	}

	_, err = s.ApplicationCommandCreate(*AppID, *GuildID, &discordgo.ApplicationCommand{
		Name:        slashCreateProduct,
		Description: "Abre o editor de produtos.",
	})
	if err != nil {
		fmt.Println(err)
	}

	_, err = s.ApplicationCommandCreate(*AppID, *GuildID, &discordgo.ApplicationCommand{
		Name:        slashDMService,
		Description: "Envia uma mensagem da equipe no privado de um usuário.",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "usuario",
				Description: "Destinatário",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "mensagem",
				Description: "Conteúdo da mensagem",
				Required:    true,
			},
		},
	})
	if err != nil {
		fmt.Println(err)
	}

	_, err = s.ApplicationCommandCreate(*AppID, *GuildID, &discordgo.ApplicationCommand{
		Name:        slashDaily,
		Description: "Resgata sua recompensa diária de moedas.",
	})
	if err != nil {
		fmt.Println(err)
	}

	_, err = s.ApplicationCommandCreate(*AppID, *GuildID, &discordgo.ApplicationCommand{
		Name:        slashProfile,
		Description: "Mostra seu perfil e saldo.",
	})
	if err != nil {
		fmt.Println(err)
	}

	_, err = s.ApplicationCommandCreate(*AppID, *GuildID, &discordgo.ApplicationCommand{
		Name:        slashRanking,
		Description: "Mostra os 20 maiores saldos.",
	})
	if err != nil {
		fmt.Println(err)
	}

	_, err = s.ApplicationCommandCreate(*AppID, *GuildID, &discordgo.ApplicationCommand{
		Name:        slashStatus,
		Description: "Mostra o status do bot.",
	})
	if err != nil {
		fmt.Println(err)
	}

	_, err = s.ApplicationCommandCreate(*AppID, *GuildID, &discordgo.ApplicationCommand{
		Name:        slashLanguage,
		Description: "Escolhe o idioma do servidor.",
	})
	if err != nil {
		fmt.Println(err)
	}

	if err := db.Connect(context.Background()); err != nil {
		log.Printf("mongo mirror unavailable: %v", err)
	}

	err = s.Open()
	if err != nil {
		log.Fatalf("Cannot open the session: %v", err)
	}
	defer s.Close()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	announceStatus(false)
	tasks.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	db.Close(ctx)

	log.Println("Graceful shutdown")
}
