package region

import "github.com/prometheus/client_golang/prometheus"

// Prometheus-метрики загрузчика регионов.
var (
	chunksLoaded = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "region",
		Name:      "chunks_loaded_total",
		Help:      "Общее число чанков, загруженных из хранилища.",
	})
	chunksGenerated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "region",
		Name:      "chunks_generated_total",
		Help:      "Общее число чанков, сгенерированных заново.",
	})
	chunksSaved = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "region",
		Name:      "chunks_saved_total",
		Help:      "Общее число чанков, сохранённых в хранилище.",
	})
	chunksEvicted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "region",
		Name:      "chunks_evicted_total",
		Help:      "Общее число чанков, выгруженных из кэша.",
	})
)

func init() {
	// Регистрируем метрики в глобальном регистре Prometheus.
	prometheus.MustRegister(chunksLoaded, chunksGenerated, chunksSaved, chunksEvicted)
}
