package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LedgerMode controls what happens when an inbound expense carries no ledger id.
type LedgerMode string

const (
	// LedgerModeDefault associates the expense with the account's first registered ledger.
	LedgerModeDefault LedgerMode = "default_ledger"
	// LedgerModeAccountOnly records the expense with no ledger association.
	LedgerModeAccountOnly LedgerMode = "account_only"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	FrontendBaseURL   string

	// Messaging provider (Twilio WhatsApp)
	TwilioAccountSID     string
	TwilioAuthToken      string
	TwilioWhatsAppNumber string

	// Spreadsheet provider (Google Sheets service account)
	GoogleServiceAccountKey string

	// Phone normalization
	CountryCallingCode string
	ChannelPrefix      string

	// Expense recording
	LedgerMode LedgerMode

	// Analytics
	PosthogAPIKey string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "24h")
	viper.SetDefault("JWT_ISSUER", "expense-chat-app")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("TWILIO_ACCOUNT_SID", "")
	viper.SetDefault("TWILIO_AUTH_TOKEN", "")
	viper.SetDefault("TWILIO_WHATSAPP_NUMBER", "")
	viper.SetDefault("GOOGLE_SERVICE_ACCOUNT_KEY", "")
	viper.SetDefault("COUNTRY_CALLING_CODE", "94")
	viper.SetDefault("CHANNEL_PREFIX", "whatsapp:")
	viper.SetDefault("LEDGER_MODE", string(LedgerModeDefault))
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour * 24
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")

	cfg.TwilioAccountSID = viper.GetString("TWILIO_ACCOUNT_SID")
	cfg.TwilioAuthToken = viper.GetString("TWILIO_AUTH_TOKEN")
	cfg.TwilioWhatsAppNumber = viper.GetString("TWILIO_WHATSAPP_NUMBER")
	if cfg.TwilioAccountSID == "" || cfg.TwilioAuthToken == "" {
		log.Println("Warning: Twilio credentials not set. Confirmation messages will not be sent.")
	}
	if cfg.TwilioWhatsAppNumber == "" {
		log.Println("Warning: TWILIO_WHATSAPP_NUMBER not set. Confirmation messages will not be sent.")
	}

	cfg.GoogleServiceAccountKey = viper.GetString("GOOGLE_SERVICE_ACCOUNT_KEY")
	if cfg.GoogleServiceAccountKey == "" {
		log.Println("Warning: GOOGLE_SERVICE_ACCOUNT_KEY not set. Spreadsheet mirroring will not function.")
	}

	cfg.CountryCallingCode = viper.GetString("COUNTRY_CALLING_CODE")
	if len(cfg.CountryCallingCode) != 2 {
		log.Printf("Warning: COUNTRY_CALLING_CODE ('%s') is not 2 digits. Phone matching may misbehave.\n", cfg.CountryCallingCode)
	}
	cfg.ChannelPrefix = viper.GetString("CHANNEL_PREFIX")

	mode := LedgerMode(viper.GetString("LEDGER_MODE"))
	if mode != LedgerModeDefault && mode != LedgerModeAccountOnly {
		log.Printf("Warning: Invalid LEDGER_MODE ('%s'). Defaulting to %s.\n", mode, LedgerModeDefault)
		mode = LedgerModeDefault
	}
	cfg.LedgerMode = mode

	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	return cfg, nil
}
