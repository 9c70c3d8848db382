package log

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/ggwhite/go-masker"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

func init() {
	encoderConfig := zap.NewProductionConfig()
	encoderConfig.Level.SetLevel(zapcore.InfoLevel)
	if os.Getenv("ENV") == "local" {
		encoderConfig.Level.SetLevel(zapcore.DebugLevel)
	}
	encoderConfig.EncoderConfig.TimeKey = "timestamp"
	encoderConfig.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339Nano)

	zapLogger, err := encoderConfig.Build()
	if err != nil {
		log.Fatalf("fail to build log. err: %s", err)
	}

	logger = zapLogger.With(zap.String("app", "hospital-locator-api"))
}

func Logger() *zap.Logger {
	return logger
}

// Phone is a log field carrying a masked phone number. Only the last four
// digits survive, whatever the number's format.
func Phone(key, phone string) zap.Field {
	return zap.String(key, MaskPhone(phone))
}

func MaskPhone(phone string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)

	if len(digits) <= 4 {
		return masker.Password(digits)
	}
	return masker.Password(digits[:len(digits)-4]) + digits[len(digits)-4:]
}
