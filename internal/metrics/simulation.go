package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/annel0/tilecraft/internal/world/block"
	"github.com/annel0/tilecraft/internal/world/entity"
)

const namespace = "sandbox"

// Snapshot - мгновенное состояние мира для gauge-метрик
type Snapshot struct {
	ChunksLoaded   int
	ChunksUnused   int
	EntitiesActive int
	PlayerLife     uint8
}

// Simulation собирает Prometheus-метрики симуляции. Реализует
// world.Observer, поэтому подключается к миру напрямую.
type Simulation struct {
	chunksGenerated prometheus.Counter
	chunksReclaimed prometheus.Counter
	chunksUnloaded  prometheus.Counter
	chunksEvicted   prometheus.Counter
	blocksDestroyed *prometheus.CounterVec
	entitySpawned   *prometheus.CounterVec
	entityRemoved   *prometheus.CounterVec

	chunksLoaded   prometheus.Gauge
	chunksUnused   prometheus.Gauge
	entitiesActive prometheus.Gauge
	playerLife     prometheus.Gauge
	ticks          prometheus.Counter
	tickDuration   prometheus.Histogram
}

// NewSimulation создаёт метрики и регистрирует их в reg
func NewSimulation(reg prometheus.Registerer) *Simulation {
	s := &Simulation{
		chunksGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chunks_generated_total",
			Help:      "Чанков сгенерировано заново.",
		}),
		chunksReclaimed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chunks_reclaimed_total",
			Help:      "Чанков возвращено из пула выгруженных.",
		}),
		chunksUnloaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chunks_unloaded_total",
			Help:      "Чанков перенесено в пул выгруженных.",
		}),
		chunksEvicted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chunks_evicted_total",
			Help:      "Чанков вытеснено из пула вместе с правками.",
		}),
		blocksDestroyed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "blocks_destroyed_total",
			Help:      "Разрушенные блоки по видам.",
		}, []string{"kind"}),
		entitySpawned: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entities_spawned_total",
			Help:      "Появившиеся сущности по видам.",
		}, []string{"kind"}),
		entityRemoved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entities_removed_total",
			Help:      "Удалённые сущности по видам.",
		}, []string{"kind"}),
		chunksLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "chunks_loaded",
			Help:      "Загруженные чанки.",
		}),
		chunksUnused: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "chunks_unused",
			Help:      "Чанки в пуле выгруженных.",
		}),
		entitiesActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "entities_active",
			Help:      "Сущности в списке мира.",
		}),
		playerLife: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "player_life",
			Help:      "Жизнь игрока.",
		}),
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticks_total",
			Help:      "Выполненные тики симуляции.",
		}),
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tick_duration_seconds",
			Help:      "Длительность обновления мира за тик.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 12),
		}),
	}

	reg.MustRegister(
		s.chunksGenerated, s.chunksReclaimed, s.chunksUnloaded, s.chunksEvicted,
		s.blocksDestroyed, s.entitySpawned, s.entityRemoved,
		s.chunksLoaded, s.chunksUnused, s.entitiesActive, s.playerLife,
		s.ticks, s.tickDuration,
	)
	return s
}

func (s *Simulation) ChunkGenerated() { s.chunksGenerated.Inc() }
func (s *Simulation) ChunkReclaimed() { s.chunksReclaimed.Inc() }
func (s *Simulation) ChunkUnloaded()  { s.chunksUnloaded.Inc() }
func (s *Simulation) ChunkEvicted()   { s.chunksEvicted.Inc() }

func (s *Simulation) BlockDestroyed(kind block.Kind) {
	s.blocksDestroyed.WithLabelValues(kind.String()).Inc()
}

func (s *Simulation) EntitySpawned(kind entity.Kind) {
	s.entitySpawned.WithLabelValues(kind.String()).Inc()
}

func (s *Simulation) EntityRemoved(kind entity.Kind) {
	s.entityRemoved.WithLabelValues(kind.String()).Inc()
}

// ObserveTick учитывает тик и его длительность
func (s *Simulation) ObserveTick(d time.Duration) {
	s.ticks.Inc()
	s.tickDuration.Observe(d.Seconds())
}

// Observe обновляет gauge-метрики по снимку
func (s *Simulation) Observe(snap Snapshot) {
	s.chunksLoaded.Set(float64(snap.ChunksLoaded))
	s.chunksUnused.Set(float64(snap.ChunksUnused))
	s.entitiesActive.Set(float64(snap.EntitiesActive))
	s.playerLife.Set(float64(snap.PlayerLife))
}
