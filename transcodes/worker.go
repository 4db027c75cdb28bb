package transcodes

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gorm.io/gorm"

	"videoflix-site/database"
	"videoflix-site/ffmpeg"
	"videoflix-site/storage"
)

var (
	jobDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "videoflix_transcode_duration_seconds",
		Help:    "Duration of HLS conversion jobs in seconds",
		Buckets: prometheus.LinearBuckets(10, 10, 10),
	}, []string{"status"})

	jobsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "videoflix_transcode_jobs_total",
		Help: "Total number of HLS conversion jobs handled",
	}, []string{"status"})
)

// Worker drains the job table and runs the conversion pipeline, one job
// at a time. External clients are injected so tests can run the whole
// pipeline against fakes.
type Worker struct {
	runner ffmpeg.Runner
	pub    *storage.Publisher
}

func NewWorker(runner ffmpeg.Runner, store storage.ObjectStore) *Worker {
	return &Worker{
		runner: runner,
		pub:    storage.NewPublisher(store),
	}
}

// Run polls for pending jobs forever. Call it in its own goroutine.
func (w *Worker) Run() {
	w.resetStuck()
	w.processPending()
	ticker := time.NewTicker(10 * time.Second)
	for range ticker.C {
		w.processPending()
	}
}

// jobs stuck in running died with a previous process, run them again
func (w *Worker) resetStuck() {
	db := database.Get()
	db.Model(&Job{}).Where("status = ?", StatusRunning).Update("status", StatusPending)
}

// loop until no more pending jobs
func (w *Worker) processPending() {
	log.Debugln("processPending...")
	db := database.Get()

	for {
		var job Job
		err := db.Where("status = ?", StatusPending).
			Order("time_submit").
			First(&job).Error
		if err == gorm.ErrRecordNotFound {
			log.Debugln("no pending transcode jobs")
			break
		}
		if err != nil {
			log.Errorln("failed to fetch pending job:", err)
			break
		}

		db.Model(&Job{}).Where("id = ?", job.ID).Update("status", StatusRunning)

		start := time.Now()
		status := "success"
		if err := w.ConvertToHLS(job.VideoID, job.VideoName); err != nil {
			// only unrecoverable failures surface here; retrying
			// a job whose record is gone would never succeed
			log.Errorf("job %s for video %d failed: %v", job.Token, job.VideoID, err)
			status = "error"
		}
		jobDuration.WithLabelValues(status).Observe(time.Since(start).Seconds())
		jobsTotal.WithLabelValues(status).Inc()

		db.Delete(&job)
	}
}
