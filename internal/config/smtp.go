package config

type SMTP struct {
	Host     string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	Port     int    `env:"SMTP_PORT" envDefault:"587"`
	Sender   string `env:"SMTP_SENDER,required" validate:"required,email"`
	Password string `env:"SMTP_PASSWORD,required" json:"-" validate:"required"`
	Receiver string `env:"SMTP_RECEIVER,required" validate:"required,email"`
}
