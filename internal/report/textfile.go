package report

import (
	"fmt"
	"os"
	"path/filepath"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// WriteTextfile renders the report as Prometheus text exposition for
// the node_exporter textfile collector. The file is written to a
// temporary name and renamed so the collector never reads a partial
// scrape.
func (r *Report) WriteTextfile(path string) error {
	reg := promclient.NewRegistry()

	stepDuration := promclient.NewGaugeVec(promclient.GaugeOpts{
		Name: "venvup_step_duration_seconds",
		Help: "Wall time of each bootstrap step",
	}, []string{"step"})

	stepExitCode := promclient.NewGaugeVec(promclient.GaugeOpts{
		Name: "venvup_step_exit_code",
		Help: "Exit code of each bootstrap step",
	}, []string{"step"})

	success := promclient.NewGauge(promclient.GaugeOpts{
		Name: "venvup_bootstrap_success",
		Help: "1 if every step exited zero, 0 otherwise",
	})

	lastRun := promclient.NewGauge(promclient.GaugeOpts{
		Name: "venvup_last_run_timestamp_seconds",
		Help: "Unix time the bootstrap run started",
	})

	reg.MustRegister(stepDuration, stepExitCode, success, lastRun)

	for _, o := range r.Outcomes {
		stepDuration.WithLabelValues(o.Name).Set(o.Duration.Seconds())
		stepExitCode.WithLabelValues(o.Name).Set(float64(o.ExitCode))
	}
	if r.Succeeded() {
		success.Set(1)
	} else {
		success.Set(0)
	}
	lastRun.Set(float64(r.StartedAt.Unix()))

	metricFamilies, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating metrics file: %w", err)
	}
	defer os.Remove(tmp.Name())

	encoder := expfmt.NewEncoder(tmp, expfmt.FmtText)
	for _, mf := range metricFamilies {
		if err := encoder.Encode(mf); err != nil {
			tmp.Close()
			return fmt.Errorf("encoding metrics: %w", err)
		}
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing metrics file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("publishing metrics file: %w", err)
	}
	return nil
}
