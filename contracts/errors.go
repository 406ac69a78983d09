package contracts

import "errors"

var (
	ErrNoManifest           = errors.New("could not get any update filelist")
	ErrMalformedFileList    = errors.New("invalid line in filelist")
	ErrMalformedLinkList    = errors.New("invalid line in linklist")
	ErrDownloadFailed       = errors.New("download failed")
	ErrDecompressionFailed  = errors.New("decompression failed")
	ErrDirectoryNotWritable = errors.New("current dir is not writeable")
	ErrElevationRefused     = errors.New("you refused to elevate - cannot update")
	ErrElevationUnsupported = errors.New("elevation is not supported on this platform")
)
