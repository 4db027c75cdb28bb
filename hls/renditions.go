package hls

import "fmt"

// Rendition is one target variant of a source video. The bitrate is the
// ffmpeg -b:v value; Bandwidth is what the master playlist advertises.
type Rendition struct {
	Bandwidth int
	Width     int
	Height    int
	Bitrate   string
}

// Ladder is the fixed encode order. The master playlist lists renditions
// in this order too.
var Ladder = []string{"360", "480", "720", "1080"}

var renditions = map[string]Rendition{
	"360":  {Bandwidth: 800000, Width: 640, Height: 360, Bitrate: "800k"},
	"480":  {Bandwidth: 1400000, Width: 854, Height: 480, Bitrate: "1400k"},
	"720":  {Bandwidth: 2800000, Width: 1280, Height: 720, Bitrate: "2800k"},
	"1080": {Bandwidth: 5000000, Width: 1920, Height: 1080, Bitrate: "5000k"},
}

func Lookup(label string) (Rendition, error) {
	r, ok := renditions[label]
	if !ok {
		return Rendition{}, fmt.Errorf("unsupported resolution: %s", label)
	}
	return r, nil
}
