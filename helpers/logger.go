package helpers

import (
	"fmt"
	log "github.com/sirupsen/logrus"
	tb "gopkg.in/tucnak/telebot.v2"
	"io"
	"os"
	"time"
)

type FileLogger struct {
	logger         *log.Logger
	telegramOutput bool
	telegramChatId string
	telegramBot    *tb.Bot
}

func NewFileLogger(output io.Writer) *FileLogger {
	plainFormatter := new(PlainFormatter)
	plainFormatter.TimestampFormat = "2006-01-02 15:04:05"
	plainFormatter.LevelDesc = []string{"PANIC", "FATAL", "ERROR", "WARN ", "INFO ", "DEBUG", "TRACE"}

	logger := log.New()
	logger.SetOutput(output)
	logger.SetFormatter(plainFormatter)
	logger.SetLevel(log.InfoLevel)

	return &FileLogger{logger: logger}
}

var Logger = NewFileLogger(os.Stderr)

// ConfigureLogger points the shared Logger at the configured file and level.
// The returned closer releases the log file.
func ConfigureLogger(c *Config) (io.Closer, error) {
	f, err := os.OpenFile(c.LogFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("error opening log file: %w", err)
	}

	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		f.Close()
		return nil, err
	}

	Logger.logger.SetOutput(f)
	Logger.logger.SetLevel(level)

	if c.TelegramOutput {
		bot, err := tb.NewBot(tb.Settings{
			Token:  c.TelegramToken,
			Poller: &tb.LongPoller{Timeout: 10 * time.Second},
		})
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("error starting telegram bot: %w", err)
		}
		Logger.telegramBot = bot
		Logger.telegramChatId = c.TelegramChatId
		Logger.telegramOutput = true
	}

	return f, nil
}

func (l *FileLogger) SetOutput(output io.Writer) {
	l.logger.SetOutput(output)
}

func (l *FileLogger) SetLevel(level log.Level) {
	l.logger.SetLevel(level)
}

func (l *FileLogger) Errorln(args ...interface{}) {
	l.logger.Errorln(args...)
}

func (l *FileLogger) Fatalln(args ...interface{}) {
	l.logger.Fatalln(args...)
}

func (l *FileLogger) Warnln(args ...interface{}) {
	l.logger.Warnln(args...)
}

func (l *FileLogger) Infoln(args ...interface{}) {
	l.logger.Infoln(args...)
	if l.telegramOutput && len(args) > 0 {
		err := l.sendOnTelegramChannel(fmt.Sprint(args...))
		if err != nil {
			l.logger.Errorln("telegram: " + err.Error())
		}
	}
}

func (l *FileLogger) Debugln(args ...interface{}) {
	l.logger.Debugln(args...)
}

func (l *FileLogger) Traceln(args ...interface{}) {
	l.logger.Traceln(args...)
}

type PlainFormatter struct {
	TimestampFormat string
	LevelDesc       []string
}

func (f PlainFormatter) Format(entry *log.Entry) ([]byte, error) {
	timestamp := entry.Time.Format(f.TimestampFormat)
	return []byte(fmt.Sprintf("%s %s %s\n", f.LevelDesc[entry.Level], timestamp, entry.Message)), nil
}

func (l *FileLogger) sendOnTelegramChannel(message string) error {
	chat, err := l.telegramBot.ChatByID(l.telegramChatId)
	if err != nil {
		return err
	}
	_, err = l.telegramBot.Send(chat, message)
	return err
}
