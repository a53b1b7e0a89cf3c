package servicemail

import "time"

// Config holds the HTTP shell settings.
type Config struct {
	CountdownSeconds  int           `env:"COUNTDOWN_SECONDS" envDefault:"5"`
	CountdownInterval time.Duration `env:"COUNTDOWN_INTERVAL" envDefault:"1s"`
	QRCodeSize        int           `env:"QRCODE_SIZE" envDefault:"256"`
	QRCodeCacheSize   int           `env:"QRCODE_CACHE_SIZE" envDefault:"128"`
}

func (c Config) withDefaults() Config {
	if c.CountdownSeconds < 0 {
		c.CountdownSeconds = 0
	}
	if c.CountdownInterval <= 0 {
		c.CountdownInterval = time.Second
	}
	if c.QRCodeSize <= 0 {
		c.QRCodeSize = 256
	}
	return c
}
