package config

import (
	"time"
)

// RazorpayConfig holds the single process-wide gateway credentials. The
// client is constructed once at startup and injected; handlers never build
// their own.
type RazorpayConfig struct {
	KeyID          string        `yaml:"key_id"`
	KeySecret      string        `yaml:"key_secret"`
	WebhookSecret  string        `yaml:"webhook_secret"`
	Currency       string        `yaml:"currency"`
	CommissionRate float64       `yaml:"commission_rate"`
	TransferMode   string        `yaml:"transfer_mode"`
	CallTimeout    time.Duration `yaml:"call_timeout"`
}

func loadRazorpayConfig() *RazorpayConfig {
	return &RazorpayConfig{
		KeyID:          getEnv("RAZORPAY_KEY_ID", ""),
		KeySecret:      getEnv("RAZORPAY_KEY_SECRET", ""),
		WebhookSecret:  getEnv("RAZORPAY_WEBHOOK_SECRET", ""),
		Currency:       getEnv("RAZORPAY_CURRENCY", "INR"),
		CommissionRate: getEnvAsFloat64("RAZORPAY_COMMISSION_RATE", 0.05), // 5%
		TransferMode:   getEnv("RAZORPAY_TRANSFER_MODE", "IMPS"),
		CallTimeout:    getEnvAsDuration("RAZORPAY_CALL_TIMEOUT", 15*time.Second),
	}
}
