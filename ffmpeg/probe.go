package ffmpeg

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// SentinelDuration is returned whenever the duration cannot be
// determined. Probe failures are not fatal to a transcode job.
const SentinelDuration = "00:00:00"

type probeOutput struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// Duration returns the container duration of path as HH:MM:SS (hours
// unbounded). Any failure is logged and yields SentinelDuration.
func Duration(r Runner, path string) string {
	stdout, _, err := r.Run("ffprobe",
		"-v", "quiet",
		"-show_entries", "format=duration",
		"-of", "json",
		path)
	if err != nil {
		log.Errorln("ffprobe error for", path, ":", err)
		return SentinelDuration
	}

	var out probeOutput
	if err := json.Unmarshal(stdout, &out); err != nil {
		log.Errorln("failed to parse ffprobe output:", err)
		return SentinelDuration
	}
	if out.Format.Duration == "" {
		log.Errorln("no duration in ffprobe output for", path)
		return SentinelDuration
	}

	seconds, err := strconv.ParseFloat(out.Format.Duration, 64)
	if err != nil {
		log.Errorln("failed to parse duration:", out.Format.Duration, err)
		return SentinelDuration
	}

	return formatDuration(int(seconds))
}

func formatDuration(totalSeconds int) string {
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
