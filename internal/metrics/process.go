package metrics

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shirou/gopsutil/v3/process"

	"github.com/annel0/tilecraft/internal/logging"
)

// ProcessSampler периодически снимает RSS и загрузку CPU процесса
type ProcessSampler struct {
	proc   *process.Process
	rss    prometheus.Gauge
	cpu    prometheus.Gauge
	logger *logging.Logger
}

// NewProcessSampler создаёт сэмплер для текущего процесса
func NewProcessSampler(reg prometheus.Registerer) (*ProcessSampler, error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, fmt.Errorf("процесс %d: %w", os.Getpid(), err)
	}

	ps := &ProcessSampler{
		proc: proc,
		rss: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "process_rss_bytes",
			Help:      "Резидентная память процесса.",
		}),
		cpu: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "process_cpu_percent",
			Help:      "Загрузка CPU процессом в процентах.",
		}),
		logger: logging.GetMetricsLogger(),
	}
	reg.MustRegister(ps.rss, ps.cpu)
	return ps, nil
}

// Sample снимает показания один раз
func (ps *ProcessSampler) Sample() error {
	mem, err := ps.proc.MemoryInfo()
	if err != nil {
		return fmt.Errorf("память процесса: %w", err)
	}
	ps.rss.Set(float64(mem.RSS))

	cpuPercent, err := ps.proc.CPUPercent()
	if err != nil {
		return fmt.Errorf("CPU процесса: %w", err)
	}
	ps.cpu.Set(cpuPercent)
	return nil
}

// Run снимает показания каждые interval до отмены контекста
func (ps *ProcessSampler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := ps.Sample(); err != nil {
				ps.logger.Warn("сэмплер процесса: %v", err)
			}
		case <-ctx.Done():
			return
		}
	}
}
