package ffmpeg

import (
	"bytes"
	"os/exec"
	"strings"
)

// Runner invokes an external media tool and returns its captured output.
// The prober and transcoder take a Runner so tests can substitute a fake
// instead of shelling out to real binaries.
type Runner interface {
	Run(name string, args ...string) (stdout, stderr []byte, err error)
}

type ExecRunner struct{}

func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

func (r *ExecRunner) Run(name string, args ...string) ([]byte, []byte, error) {
	log.Infoln(name, strings.Join(args, " "))
	cmd := exec.Command(name, args...)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()

	if err != nil {
		log.Errorf("%s error: %v", name, err)
		log.Infoln("stdout:", stdout.String())
		log.Infoln("stderr:", stderr.String())
	}
	return stdout.Bytes(), stderr.Bytes(), err
}
