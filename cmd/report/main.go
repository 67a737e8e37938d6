package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jhoicas/product-stats/internal/application/usecase"
	"github.com/jhoicas/product-stats/internal/infrastructure/memory"
	"github.com/jhoicas/product-stats/internal/interfaces/report"
	"github.com/jhoicas/product-stats/pkg/config"
	"github.com/jhoicas/product-stats/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("format", cfg.Report.Format).
		Msg("generando reporte")

	if err := run(context.Background(), cfg, log, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("reporte")
	}

	log.Info().Msg("reporte completado")
}

// run lee el catálogo embebido, calcula las estadísticas y las escribe en out.
func run(ctx context.Context, cfg *config.Config, log *logger.Logger, out io.Writer) error {
	writer, err := report.NewWriter(cfg.Report.Format, out)
	if err != nil {
		return fmt.Errorf("writer: %w", err)
	}

	productRepo, err := memory.NewCatalogRepository()
	if err != nil {
		return err
	}
	reportUC := usecase.NewReportUseCase(productRepo)

	r, err := reportUC.Generate(ctx)
	if err != nil {
		return err
	}
	log.Debug().
		Int("products", r.TotalCount).
		Int("categories", len(r.CategoryCounts)).
		Int("above_average", r.AboveAverageCount).
		Msg("estadísticas calculadas")

	return writer.Write(r)
}
