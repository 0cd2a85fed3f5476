package editor

import (
	"testing"

	"github.com/bwmarrin/discordgo"

	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/guildconfig"
	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/store"
)

type embedEditRecorder struct {
	channelID string
	messageID string
	embed     *discordgo.MessageEmbed
	calls     int
}

func (r *embedEditRecorder) ChannelMessageEditEmbed(channelID, messageID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	r.channelID = channelID
	r.messageID = messageID
	r.embed = embed
	r.calls++
	return &discordgo.Message{ID: messageID}, nil
}

func TestRefreshPostedEmbed(t *testing.T) {
	guildconfig.Init(store.NewMemory())
	guildconfig.Mutate("g1", func(cfg *guildconfig.GuildConfig) {
		cfg.TempEmbed = &guildconfig.EmbedData{Title: "Promoção", Description: "50% off"}
		cfg.TempEmbedChannelID = "c1"
		cfg.TempEmbedMessageID = "m1"
	})

	rec := &embedEditRecorder{}
	refreshPostedEmbed(rec, guildconfig.GetOrCreate("g1"))

	if rec.calls != 1 {
		t.Fatalf("calls = %d, want 1", rec.calls)
	}
	if rec.channelID != "c1" || rec.messageID != "m1" {
		t.Errorf("edited %s/%s, want c1/m1", rec.channelID, rec.messageID)
	}
	if rec.embed == nil || rec.embed.Title != "Promoção" {
		t.Errorf("embed = %+v, want current buffer", rec.embed)
	}
}

func TestRefreshPostedEmbedSkipsWithoutPost(t *testing.T) {
	guildconfig.Init(store.NewMemory())
	guildconfig.Mutate("g1", func(cfg *guildconfig.GuildConfig) {
		cfg.TempEmbed = &guildconfig.EmbedData{Title: "Sem post"}
	})

	rec := &embedEditRecorder{}
	refreshPostedEmbed(rec, guildconfig.GetOrCreate("g1"))
	if rec.calls != 0 {
		t.Errorf("calls = %d, want 0 when nothing was posted", rec.calls)
	}
}
