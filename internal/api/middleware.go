package api

import (
	"fmt"
	"io"
	"strings"

	"github.com/gin-gonic/gin"
)

// AccessLogger is gin's request logger with query strings removed from the
// logged path, so credentials sent as query parameters never reach the log.
func AccessLogger(out io.Writer) gin.HandlerFunc {
	return gin.LoggerWithConfig(gin.LoggerConfig{
		Output:    out,
		Formatter: accessLogFormatter,
	})
}

func accessLogFormatter(p gin.LogFormatterParams) string {
	path, _, _ := strings.Cut(p.Path, "?")
	return fmt.Sprintf("[GIN] %v | %3d | %13v | %15s | %-7s %#v\n%s",
		p.TimeStamp.Format("2006/01/02 - 15:04:05"),
		p.StatusCode,
		p.Latency,
		p.ClientIP,
		p.Method,
		path,
		p.ErrorMessage,
	)
}
