package transcodes

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending = "pending"
	StatusRunning = "running"
)

// Job is one queued HLS conversion. Rows double as the durable queue:
// a job survives process restarts and a row stuck in "running" is
// re-delivered on the next worker start, so delivery is at-least-once
// and every pipeline stage must tolerate replay.
type Job struct {
	gorm.Model
	Token      string // uuid, for log correlation
	VideoID    uint   // Video.ID
	VideoName  string // base name of the source file
	Status     string // "pending", "running"
	TimeSubmit time.Time
}

// Enqueue inserts a job through tx. Callers pass the transaction that
// creates the video record, so the worker cannot observe the job before
// the record is committed.
func Enqueue(tx *gorm.DB, videoID uint, videoName string) error {
	job := Job{
		Token:      uuid.Must(uuid.NewV7()).String(),
		VideoID:    videoID,
		VideoName:  videoName,
		Status:     StatusPending,
		TimeSubmit: time.Now(),
	}
	return tx.Create(&job).Error
}
