package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

const appName = "chelwa"

// appHook добавляет имя приложения в каждую запись
type appHook struct{}

func (appHook) Levels() []logrus.Level { return logrus.AllLevels }

func (appHook) Fire(entry *logrus.Entry) error {
	if _, ok := entry.Data["app"]; !ok {
		entry.Data["app"] = appName
	}
	return nil
}

// New создает JSON-логгер, пишущий в stdout
func New(logLevel string) *logrus.Logger {
	return NewWithOutput(logLevel, os.Stdout)
}

func NewWithOutput(logLevel string, out io.Writer) *logrus.Logger {
	log := logrus.New()

	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(out)
	log.AddHook(appHook{})

	// Уровень логирования
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel // Уровень по умолчанию, если передан некорректный
	}
	log.SetLevel(level)
	return log
}
