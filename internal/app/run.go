package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/smallgraph/internal/report"
	"github.com/specialistvlad/smallgraph/internal/scenario"
)

// Run loads every scenario under the configured path and replays each one
// against a fresh graph. It stops at the first scenario that fails, renders
// the reports gathered so far and returns that failure.
func (a *App) Run(ctx context.Context) error {
	ctx = a.Context(ctx)
	a.logger.Debug("App.Run method started.")

	format, err := report.ParseFormat(a.config.OutputFormat)
	if err != nil {
		return err
	}

	scenarios, err := a.loader.Load(ctx, a.config.ScenarioPath)
	if err != nil {
		return fmt.Errorf("failed to load scenarios: %w", err)
	}
	a.logger.Info("Scenarios loaded.", "count", len(scenarios))

	opts := scenario.Options{Strict: a.config.Strict}
	reports := make([]*report.Report, 0, len(scenarios))
	var failure error

	for _, sc := range scenarios {
		res, runErr := scenario.Run(ctx, sc, opts)
		rep, err := report.Build(res, runErr)
		if err != nil {
			return fmt.Errorf("failed to build report for %s: %w", sc.Name, err)
		}
		reports = append(reports, rep)

		if runErr != nil {
			a.logger.Error("Scenario failed.", "scenario", sc.Name, "error", runErr)
			failure = fmt.Errorf("scenario %s failed: %w", sc.Name, runErr)
			break
		}
		a.logger.Info("Scenario passed.", "scenario", sc.Name, "nodes", rep.Nodes, "edges", rep.Edges)
	}

	if err := report.Render(a.outW, format, reports...); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	a.logger.Debug("App.Run method finished.", "scenarios_run", len(reports))
	return failure
}
