package logger

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Палитра уровней для консольного вывода
var levelColors = map[string]string{
	"TRACE": "\x1b[90m",   // серый
	"DEBUG": "\x1b[36m",   // голубой
	"INFO":  "\x1b[32m",   // зелёный
	"WARN":  "\x1b[33m",   // жёлтый
	"ERROR": "\x1b[31m",   // красный
	"FATAL": "\x1b[31;1m", // ярко-красный
	"PANIC": "\x1b[35m",   // пурпурный
}

const colorReset = "\x1b[0m"

func NewLogger() *zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}

	output.FormatLevel = func(i interface{}) string {
		level, _ := i.(string)
		level = strings.ToUpper(level)

		color, ok := levelColors[level]
		if !ok {
			color = colorReset
		}
		return fmt.Sprintf("%s%-5s%s |", color, level, colorReset)
	}

	output.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("\x1b[1m%s%s", i, colorReset)
	}

	output.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("\x1b[90m%s=%s", i, colorReset)
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.DurationFieldInteger = true

	log := zerolog.New(output).
		With().
		Timestamp().
		Logger()
	return &log
}
