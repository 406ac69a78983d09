package shell

import (
	"io"

	"github.com/mholt/archiver"
)

type Bz2Decompressor struct {
	codec *archiver.Bz2
}

func NewBz2Decompressor() *Bz2Decompressor {
	return &Bz2Decompressor{codec: archiver.NewBz2()}
}

func (this *Bz2Decompressor) Decompress(source io.Reader, target io.Writer) error {
	return this.codec.Decompress(source, target)
}
