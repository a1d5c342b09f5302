// Package defaults centralizes the declared default values of the data
// model. Create shapes pull from here so default policy lives in one place.
package defaults

import "github.com/shopspring/decimal"

const (
	// StorageQuotaBytes is the per-user storage allowance (5 GiB).
	StorageQuotaBytes int64 = 5368709120

	ChatTitle        = "New Chat"
	AIModel          = "gpt-3.5-turbo"
	ChatSystemPrompt = ""
	ChatMaxTokens    = 2048

	SearchMaxResults = 10
	SearchLanguage   = "en"
	SearchRegion     = "us"
)

// ChatTemperature is the sampling temperature applied when a session omits one.
func ChatTemperature() decimal.Decimal { return decimal.NewFromFloat(0.7) }

// SearchEngines returns a fresh copy of the default engine list.
func SearchEngines() []string { return []string{"google"} }
