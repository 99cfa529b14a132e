package config

import "time"

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	DatabaseURL string `env:"DATABASE_URL,required"`

	Auth     Auth
	Razorpay Razorpay `envPrefix:"RAZORPAY_"`
	Checkout Checkout `envPrefix:"CHECKOUT_"`
}

type Auth struct {
	// signing secret is a startup precondition, not a runtime error
	JWTSecret string        `env:"JWT_SECRET,required"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"168h"`
}

type Razorpay struct {
	BaseApiURL string `env:"BASE_API_URL" envDefault:"https://api.razorpay.com"`
	KeyID      string `env:"KEY_ID"`
	KeySecret  string `env:"KEY_SECRET"`
}

// Configured reports whether gateway credentials were provided. Their absence
// disables payment operations but not auth routes.
func (r *Razorpay) Configured() bool {
	return r.KeyID != "" && r.KeySecret != ""
}

type Checkout struct {
	CouponCode  string `env:"COUPON_CODE" envDefault:"UPSKILL50"`
	RedirectURL string `env:"REDIRECT_URL" envDefault:"https://www.udemy.com/course/the-complete-web-development-bootcamp/"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

func (e *Environment) IsProduction() bool {
	return e.Name == "production"
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}
