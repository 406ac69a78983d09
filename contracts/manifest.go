package contracts

// FileEntry is one line of the remote file list: the md5 digest (hex) the
// file at Path must have once the installation is current.
type FileEntry struct {
	Hash string
	Path string
}

// LinkEntry is one line of the remote link list. LinkPath is created as a
// symlink (or copy) resolving to TargetName, which lives in LinkPath's directory.
type LinkEntry struct {
	LinkPath   string
	TargetName string
}

const (
	HashLength         = 32
	HashSeparator      = "  "
	CompressedExt      = ".bz2"
	PendingSuffix      = ".new"
	BackupSuffix       = ".bak"
	RemoteFileList     = "files"
	RemoteLinkList     = "links"
	SavegameVersion    = "savegameversion"
	SavegameMarkerPath = "/" + SavegameVersion
)
