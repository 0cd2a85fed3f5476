// Package aichat answers messages posted in the guild's registered AI
// channels. Gemini is the primary backend, OpenAI the fallback when the
// Google key is missing or the call fails.
package aichat

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/google/generative-ai-go/genai"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/api/option"

	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/config"
	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/guildconfig"
)

// ErrNoBackend means neither API key is configured.
var ErrNoBackend = errors.New("aichat: no backend configured")

const geminiModel = "gemini-1.5-flash"

// RegisterAIChannel marks a channel as an AI chat channel for the guild.
func RegisterAIChannel(guildID, channelID string) {
	guildconfig.Mutate(guildID, func(cfg *guildconfig.GuildConfig) {
		if contains(cfg.AIChannels, channelID) {
			return
		}
		cfg.AIChannels = append(cfg.AIChannels, channelID)
	})
}

// RegisterUploadChannel marks a channel as a file upload channel for the guild.
func RegisterUploadChannel(guildID, channelID string) {
	guildconfig.Mutate(guildID, func(cfg *guildconfig.GuildConfig) {
		if contains(cfg.UploadChannels, channelID) {
			return
		}
		cfg.UploadChannels = append(cfg.UploadChannels, channelID)
	})
}

// IsAIChannel reports whether the channel is registered for AI chat.
func IsAIChannel(guildID, channelID string) bool {
	return contains(guildconfig.GetOrCreate(guildID).AIChannels, channelID)
}

// IsUploadChannel reports whether the channel is registered for uploads.
func IsUploadChannel(guildID, channelID string) bool {
	return contains(guildconfig.GetOrCreate(guildID).UploadChannels, channelID)
}

// PruneChannel drops a deleted channel from both registries.
func PruneChannel(guildID, channelID string) {
	guildconfig.Mutate(guildID, func(cfg *guildconfig.GuildConfig) {
		cfg.AIChannels = remove(cfg.AIChannels, channelID)
		cfg.UploadChannels = remove(cfg.UploadChannels, channelID)
	})
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func remove(list []string, v string) []string {
	out := list[:0:0]
	for _, s := range list {
		if s != v {
			out = append(out, s)
		}
	}
	return out
}

// Answer generates a reply for the prompt, preferring Gemini.
func Answer(ctx context.Context, prompt string) (string, error) {
	if config.GoogleAPIKey != "" {
		text, err := askGemini(ctx, prompt)
		if err == nil {
			return text, nil
		}
		log.Printf("[AIChat] gemini failed, trying fallback: %v", err)
	}
	if config.OpenAIKey != "" {
		return askOpenAI(ctx, prompt)
	}
	return "", ErrNoBackend
}

func askGemini(ctx context.Context, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(config.GoogleAPIKey))
	if err != nil {
		return "", err
	}
	defer client.Close()

	model := client.GenerativeModel(geminiModel)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if txt, ok := part.(genai.Text); ok {
				b.WriteString(string(txt))
			}
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("aichat: empty gemini response")
	}
	return b.String(), nil
}

func askOpenAI(ctx context.Context, prompt string) (string, error) {
	client := openai.NewClient(config.OpenAIKey)
	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT3Dot5Turbo,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("aichat: empty openai response")
	}
	return resp.Choices[0].Message.Content, nil
}

// BuildReplyEmbed wraps an AI answer for the channel.
func BuildReplyEmbed(answer string) *discordgo.MessageEmbed {
	if len(answer) > 4000 {
		answer = answer[:4000]
	}
	return &discordgo.MessageEmbed{
		Title:       "🤖 Yoloo IA",
		Description: answer,
		Color:       guildconfig.DefaultColor,
		Footer:      &discordgo.MessageEmbedFooter{Text: "Powered by Gemini"},
	}
}

// BuildPlaceholderEmbed is shown when no AI backend is configured.
func BuildPlaceholderEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "🤖 Yoloo IA",
		Description: "O módulo de inteligência artificial está em desenvolvimento e ainda não foi ativado neste servidor.",
		Color:       guildconfig.DefaultColor,
		Footer:      &discordgo.MessageEmbedFooter{Text: "Powered by Gemini"},
	}
}
