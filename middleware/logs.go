package middleware

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"

	"Apar/Models"
)

// LogData is one JSON line in the request log
type LogData struct {
	Timestamp time.Time     `json:"timestamp"`
	Method    string        `json:"method"`
	Path      string        `json:"path"`
	Status    int           `json:"status"`
	Latency   time.Duration `json:"latency"`
	IP        string        `json:"ip"`
	UserAgent string        `json:"user_agent"`
	Error     string        `json:"error,omitempty"`
	UserID    uint          `json:"user_id,omitempty"`
	Username  string        `json:"username,omitempty"`
}

// RequestLogger logs every request as a JSON line to logs/requests.log and
// a short line to the console. The /healthy probe is skipped.
func RequestLogger() fiber.Handler {
	if err := os.MkdirAll("logs", 0755); err != nil {
		log.Printf("Error creating logs directory: %v\n", err)
	}

	return func(c *fiber.Ctx) error {
		if c.Path() == "/healthy" {
			return c.Next()
		}

		start := time.Now()
		err := c.Next()

		data := LogData{
			Timestamp: start,
			Method:    c.Method(),
			Path:      c.Path(),
			Status:    c.Response().StatusCode(),
			Latency:   time.Since(start),
			IP:        c.IP(),
			UserAgent: c.Get("User-Agent"),
		}
		if err != nil {
			data.Error = err.Error()
		}
		if user, ok := c.Locals("user").(Models.User); ok {
			data.UserID = user.ID
			data.Username = user.Username
		}

		log.Println(data.Method, data.Path, data.Status, data.Latency)
		writeLogLine(data)

		return err
	}
}

func writeLogLine(data LogData) {
	file, err := os.OpenFile("logs/requests.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Error opening request log file: %v\n", err)
		return
	}
	defer file.Close()

	line, err := json.Marshal(data)
	if err != nil {
		log.Printf("Error marshaling log data: %v\n", err)
		return
	}
	line = append(line, '\n')
	if _, err := file.Write(line); err != nil {
		log.Printf("Error writing request log: %v\n", err)
	}
}
