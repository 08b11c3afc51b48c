package notify

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// Notifier is the fire-and-forget sink the cart and checkout flows report to.
// Messages are short and human-readable; delivery is never acknowledged.
type Notifier interface {
	Notify(title, message string)
}

func NewLogger() *logrus.Logger {
	log := logrus.New()
	log.Level = logrus.InfoLevel
	log.Formatter = &logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "severity",
			logrus.FieldKeyMsg:   "message",
		},
		TimestampFormat: time.RFC3339Nano,
	}
	log.Out = os.Stdout
	return log
}

// LogNotifier writes notifications to structured logs.
type LogNotifier struct {
	log *logrus.Logger
}

func NewLogNotifier(log *logrus.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(title, message string) {
	n.log.WithField("title", title).Info(message)
}

// Nop discards every notification.
type Nop struct{}

func (Nop) Notify(title, message string) {}
