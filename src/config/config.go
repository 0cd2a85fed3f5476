package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

var (
	// DiscordToken holds the API Token for discord.
	DiscordToken      string
	DiscordAppID      string
	DiscordGuildID    string
	OwnerID           string
	OpenAIKey         string
	GoogleAPIKey      string
	SupportWebhookURL string
	FreekeyWebhookURL string
	GofileToken       string
	MongoURI          string
	CartExpiry        string
	DataDir           string
	config            *configStruct
)

type configStruct struct {
	DiscordToken      string `json:"DiscordToken"`
	DiscordAppID      string `json:"DiscordAppID"`
	DiscordGuildID    string `json:"DiscordGuildID"`
	OwnerID           string `json:"OwnerID"`
	OpenAIKey         string `json:"OpenAIKey"`
	GoogleAPIKey      string `json:"GoogleAPIKey"`
	SupportWebhookURL string `json:"SupportWebhookURL"`
	FreekeyWebhookURL string `json:"FreekeyWebhookURL"`
	GofileToken       string `json:"GofileToken"`
	MongoURI          string `json:"MongoURI"`
	CartExpiry        string `json:"CartExpiry"`
	DataDir           string `json:"DataDir"`
}

// ReadConfig will load the configuration files for API tokens.
func ReadConfig() error {
	fmt.Println("Reading from config file...")

	// Secrets may also arrive through the environment.
	_ = godotenv.Load()

	file, err := os.ReadFile("./.config.json")

	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	err = json.Unmarshal(file, &config)

	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	DiscordToken = config.DiscordToken
	DiscordAppID = config.DiscordAppID
	DiscordGuildID = config.DiscordGuildID
	OwnerID = config.OwnerID
	OpenAIKey = config.OpenAIKey
	GoogleAPIKey = config.GoogleAPIKey
	SupportWebhookURL = config.SupportWebhookURL
	FreekeyWebhookURL = config.FreekeyWebhookURL
	GofileToken = config.GofileToken
	MongoURI = config.MongoURI
	CartExpiry = config.CartExpiry
	DataDir = config.DataDir

	if v := os.Getenv("DISCORD_TOKEN"); v != "" {
		DiscordToken = v
	}
	if v := os.Getenv("OWNER_ID"); v != "" {
		OwnerID = v
	}
	if v := os.Getenv("OPENAI_KEY"); v != "" {
		OpenAIKey = v
	}
	if v := os.Getenv("GOOGLE_API_KEY"); v != "" {
		GoogleAPIKey = v
	}
	if v := os.Getenv("MONGODB_URI"); v != "" {
		MongoURI = v
	}

	if DataDir == "" {
		DataDir = "yoloo-data"
	}
	if CartExpiry == "" {
		CartExpiry = "10m"
	}

	return nil
}
