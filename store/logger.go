package store

import (
	"strings"

	"github.com/MixinNetwork/mixin/logger"
)

// badgerLogger routes the badger internals into the process logger, only
// errors are printed at the default level.
type badgerLogger struct{}

func (l *badgerLogger) Errorf(f string, v ...interface{}) {
	logger.Printf("Badger ERROR "+trimNewline(f)+"\n", v...)
}

func (l *badgerLogger) Warningf(f string, v ...interface{}) {
	logger.Verbosef("Badger WARNING "+trimNewline(f)+"\n", v...)
}

func (l *badgerLogger) Infof(f string, v ...interface{}) {
	logger.Verbosef("Badger INFO "+trimNewline(f)+"\n", v...)
}

func (l *badgerLogger) Debugf(f string, v ...interface{}) {}

func trimNewline(f string) string {
	return strings.TrimRight(f, "\n")
}
