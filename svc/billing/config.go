package billing

// Config holds Stripe configuration.
type Config struct {
	SecretKey      string `env:"STRIPE_SECRET_KEY,required"`
	PublishableKey string `env:"STRIPE_PUBLISHABLE_KEY,required"`
	TrialPriceID   string `env:"STRIPE_TRIAL_PRICE_ID,required"`

	// TrialPeriodDays is the free trial length for new signups.
	TrialPeriodDays int64 `env:"STRIPE_TRIAL_PERIOD_DAYS" envDefault:"14"`
}
