package main

import (
	"fmt"
	"strings"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"

	"killtree/process"
)

// logEnv overrides every log level flag when set
const logEnv = "KILL_TREE_LOG"

type logLevel int

const (
	levelQuiet logLevel = iota
	levelInfo
	levelVerbose
)

func (l logLevel) String() string {
	switch l {
	case levelQuiet:
		return "quiet"
	case levelInfo:
		return "info"
	case levelVerbose:
		return "verbose"
	default:
		return "unknown"
	}
}

func parseLogLevel(s string) (logLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "quiet", "off", "none":
		return levelQuiet, nil
	case "info":
		return levelInfo, nil
	case "verbose", "debug":
		return levelVerbose, nil
	default:
		return levelQuiet, fmt.Errorf("unknown log level %q, expected quiet, info or verbose", s)
	}
}

// resolveLogLevel picks the level from the environment first, then the flags
func resolveLogLevel(env, flag string, verbose bool) (logLevel, error) {
	if env != "" {
		level, err := parseLogLevel(env)
		if err != nil {
			return levelQuiet, fmt.Errorf("%s: %w", logEnv, err)
		}
		return level, nil
	}

	switch {
	case flag != "":
		return parseLogLevel(flag)
	case verbose:
		return levelVerbose, nil
	default:
		return levelQuiet, nil
	}
}

// levelLogger drops gologger calls below its level
type levelLogger struct {
	level logLevel
	log   *logger.Logger
}

func newLevelLogger(level logLevel) process.Logger {
	if level == levelQuiet {
		return process.Discard
	}
	return &levelLogger{
		level: level,
		log:   logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, "kill-tree")),
	}
}

func (l *levelLogger) Debugln(v ...interface{}) {
	if l.level >= levelVerbose {
		l.log.Debugln(v...)
	}
}

func (l *levelLogger) Infoln(v ...interface{}) {
	if l.level >= levelInfo {
		l.log.Infoln(v...)
	}
}

func (l *levelLogger) Warn(v ...interface{}) {
	if l.level >= levelInfo {
		l.log.Warn(v...)
	}
}
