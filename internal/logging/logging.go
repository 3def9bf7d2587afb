// Package logging builds the run logger: one line per event, written to a
// rotated log file and duplicated to the console.
package logging

import (
	"fmt"
	"io"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// TimestampFormat is the timestamp layout of every log line.
const TimestampFormat = "2006-01-02 15:04:05,000"

// Formatter renders entries as "<timestamp> - <LEVEL> - <message>".
// Fields, if any, are appended as sorted key=value pairs.
type Formatter struct{}

func (f *Formatter) Format(entry *log.Entry) ([]byte, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s - %s - %s",
		entry.Time.Format(TimestampFormat),
		levelName(entry.Level),
		entry.Message)

	for _, key := range sortedKeys(entry.Data) {
		fmt.Fprintf(&b, " %s=%v", key, entry.Data[key])
	}
	b.WriteByte('\n')
	return []byte(b.String()), nil
}

func levelName(level log.Level) string {
	if level == log.WarnLevel {
		return "WARNING"
	}
	return strings.ToUpper(level.String())
}

func sortedKeys(fields log.Fields) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// New returns a logger writing to logFile and to console.
// The file is created on the first write and rotated at 200 MB.
func New(logFile string, console io.Writer) (*log.Logger, io.Closer) {
	rotator := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    200, // megabytes
		MaxBackups: 10,
	}

	logger := log.New()
	logger.SetOutput(io.MultiWriter(rotator, console))
	logger.SetFormatter(&Formatter{})
	logger.SetLevel(log.InfoLevel)
	return logger, rotator
}
