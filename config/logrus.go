package config

import (
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
)

var logrusInstance *logrus.Logger

func GetLogrusInstance() *logrus.Logger {
	if logrusInstance == nil {
		logrusInstance = logrus.New()
		logrusInstance.SetFormatter(&logrus.JSONFormatter{})
	}
	return logrusInstance
}

const (
	green  = "\033[32m" // 200 series
	yellow = "\033[33m" // 300 series
	red    = "\033[31m" // 400 and 500 series
	reset  = "\033[0m"
)

func PrintLogInfo(username *string, statusCode int, functionName string) {
	var logColor string

	switch {
	case statusCode < 300:
		logColor = green
	case statusCode < 400:
		logColor = yellow
	default:
		logColor = red
	}

	user := "Unknown"
	if username != nil {
		user = *username
	}

	GetLogrusInstance().Info(fmt.Sprintf("User: %s, (%s) => Status: %s[%d] - %s%s",
		user, functionName, logColor, statusCode, http.StatusText(statusCode), reset))
}
