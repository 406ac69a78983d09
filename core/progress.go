package core

import (
	"io"
	"math"
	"strconv"

	"github.com/smarty/s25update/contracts"
)

var (
	suffixes = [5]string{"B", "KB", "MB", "GB", "TB"}
)

func round(val float64, roundOn float64, places int) (newVal float64) {
	var round float64
	pow := math.Pow(10, float64(places))
	digit := pow * val
	_, div := math.Modf(digit)
	if div >= roundOn {
		round = math.Ceil(digit)
	} else {
		round = math.Floor(digit)
	}
	newVal = round / pow
	return
}

func HumanFileSize(size float64) string {
	if size < 1 {
		return "0 B"
	}
	base := math.Log(size) / math.Log(1024)
	index := int(math.Floor(base))
	if index >= len(suffixes) {
		index = len(suffixes) - 1
	}
	getSize := round(size/math.Pow(1024, float64(index)), .5, 2)
	return strconv.FormatFloat(getSize, 'f', -1, 64) + " " + suffixes[index]
}

type progressWriter struct {
	label    string
	written  int64
	total    int64
	reporter contracts.ProgressReporter
}

// NewProgressWriter counts bytes written through it and reports them,
// on the writing goroutine, to reporter under label.
func NewProgressWriter(label string, total int64, reporter contracts.ProgressReporter) io.WriteCloser {
	return &progressWriter{label: label, total: total, reporter: reporter}
}

func (this *progressWriter) Write(p []byte) (n int, e error) {
	n = len(p)
	this.written += int64(n)
	this.reporter.Report(this.label, this.written, this.total)
	return
}

func (this *progressWriter) Close() error {
	this.reporter.Finish(this.label)
	return nil
}
