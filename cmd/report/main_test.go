package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/product-stats/internal/domain"
	"github.com/jhoicas/product-stats/pkg/config"
	"github.com/jhoicas/product-stats/pkg/logger"
)

func testConfig(format string) *config.Config {
	return &config.Config{
		App:    config.AppConfig{Env: "test", Name: "product-stats"},
		Log:    config.LogConfig{Level: "debug"},
		Report: config.ReportConfig{Format: format},
	}
}

func TestRun_Texto(t *testing.T) {
	var out, logs bytes.Buffer
	log := logger.New(logger.Config{Env: "test", Level: "debug", Out: &logs})

	require.NoError(t, run(context.Background(), testConfig("text"), log, &out))

	got := out.String()
	assert.True(t, strings.HasPrefix(got, "Total number of products: 20\n"))
	assert.True(t, strings.HasSuffix(got, "Number of products below average price: 13\n"))
	assert.Contains(t, logs.String(), `"products":20`, "los logs van al logger, no a la salida")
	assert.NotContains(t, got, "estadísticas calculadas")
}

func TestRun_FormatoDesconocido(t *testing.T) {
	err := run(context.Background(), testConfig("yaml"), logger.Nop(), &bytes.Buffer{})
	assert.ErrorIs(t, err, domain.ErrUnknownFormat)
}

func TestRun_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := run(ctx, testConfig("text"), logger.Nop(), &out)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}
