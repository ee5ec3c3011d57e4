package fiber_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	adapter "github.com/Greengage-project/interlinker-ceditor/internal/logger/adapter/fiber"

	"github.com/Greengage-project/interlinker-ceditor/internal/logger"
)

// expectedLoggerJSONFormat implements loggers default json format.
type expectedLoggerJSONFormat struct {
	IP           net.IP    `json:"IP"`
	Status       int       `json:"status"`
	XPerformance float32   `json:"X-Performance"`
	URI          string    `json:"URI"`
	Method       string    `json:"method"`
	Host         string    `json:"host"`
	Time         time.Time `json:"time"`
}

func TestNew(t *testing.T) {
	consoleConfig := adapter.Config{
		Config: logger.Log{
			EnableAccessLogToConsole: true,
			Console:                  logger.Console{Enabled: true},
		},
	}

	tests := []struct {
		name       string
		targetPath string
		config     adapter.Config
		want       *expectedLoggerJSONFormat
	}{
		{
			name:       "empty config no output at all",
			targetPath: "/healthcheck",
		},
		{
			name:       "get healthcheck log to console json",
			targetPath: "/healthcheck",
			config:     consoleConfig,
			want: &expectedLoggerJSONFormat{
				IP:     net.ParseIP("0.0.0.0"),
				Status: 200,
				URI:    "/healthcheck",
				Method: fiber.MethodGet,
				Host:   "example.com",
			},
		},
		{
			name:       "unknown route logs 404",
			targetPath: "/assets/missing/view",
			config:     consoleConfig,
			want: &expectedLoggerJSONFormat{
				IP:     net.ParseIP("0.0.0.0"),
				Status: 404,
				URI:    "/assets/missing/view",
				Method: fiber.MethodGet,
				Host:   "example.com",
			},
		},
		{
			name:       "query string preserved",
			targetPath: "/healthcheck?verbose=1",
			config:     consoleConfig,
			want: &expectedLoggerJSONFormat{
				IP:     net.ParseIP("0.0.0.0"),
				Status: 200,
				URI:    "/healthcheck?verbose=1",
				Method: fiber.MethodGet,
				Host:   "example.com",
			},
		},
		{
			name:       "healthcheck suppressed",
			targetPath: "/healthcheck",
			config: adapter.Config{
				Config: logger.Log{
					EnableAccessLogToConsole: true,
					DisableHealthcheck:       true,
					Console:                  logger.Console{Enabled: true},
				},
				HealthcheckURI: "/healthcheck",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := testMiddlewareHelper(t, tt.targetPath, tt.config)
			assert.NoError(t, err)

			if tt.want == nil {
				assert.Empty(t, output)
				return
			}

			if output == "" {
				t.Fatal("expected output but got no output")
			}

			var decodedOutput expectedLoggerJSONFormat
			if err = json.Unmarshal([]byte(output), &decodedOutput); err != nil {
				t.Fatal(err)
			}

			assert.Equal(t, tt.want.Host, decodedOutput.Host)
			assert.Equal(t, tt.want.Method, decodedOutput.Method)
			assert.Equal(t, tt.want.Status, decodedOutput.Status)
			assert.Equal(t, tt.want.IP, decodedOutput.IP)
			assert.Equal(t, tt.want.URI, decodedOutput.URI)
		})
	}
}

func testMiddlewareHelper(t *testing.T, targetPath string, adapterConfig adapter.Config) (string, error) {
	t.Helper()

	stdout := os.Stdout
	stderr := os.Stderr

	// capture stdout
	r, w, _ := os.Pipe()
	os.Stdout = w
	os.Stderr = w

	// create new fiber app
	app := fiber.New(fiber.Config{
		CaseSensitive: true,
		Immutable:     true,
	})

	// use logger
	app.Use(adapter.New(adapterConfig))

	// create minimal endpoint
	app.Get("/healthcheck", func(ctx *fiber.Ctx) error {
		return ctx.JSON(true)
	})

	_, err := app.Test(httptest.NewRequest(fiber.MethodGet, targetPath, nil), 100000)
	if err != nil {
		_ = w.Close()
		return "", err
	}

	outC := make(chan string)
	// copy the output in a separate goroutine so printing can't block indefinitely
	go func() {
		var buf bytes.Buffer
		_, err = io.Copy(&buf, r)
		if err != nil {
			return
		}

		outC <- buf.String()
	}()

	// back to normal state
	_ = w.Close()
	os.Stdout = stdout // restoring the real stdout
	os.Stderr = stderr // restoring the real stderr
	out := <-outC

	return out, err
}
